package vcs

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Checkout describes the local git checkout the tool runs from.
type Checkout struct {
	Owner  string
	Repo   string
	Root   string
	Branch string
}

// DiscoverCheckout walks up from path to the enclosing git repository and
// reads the origin remote, worktree root and current branch. Branch is empty
// when HEAD is detached or unborn.
func DiscoverCheckout(path string) (*Checkout, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open git repository at %s: %w", path, err)
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return nil, fmt.Errorf("get origin remote: %w", err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return nil, fmt.Errorf("origin remote has no URL")
	}
	owner, name, err := ParseGitHubRepo(urls[0])
	if err != nil {
		return nil, err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("get worktree: %w", err)
	}

	checkout := &Checkout{
		Owner: owner,
		Repo:  name,
		Root:  worktree.Filesystem.Root(),
	}

	head, err := repo.Head()
	if err == nil && head.Name().IsBranch() {
		checkout.Branch = head.Name().Short()
	}
	return checkout, nil
}
