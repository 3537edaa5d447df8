package vcs

import (
	"fmt"
	"strings"
)

// Release is a remote release object: notes published under a tag name.
type Release struct {
	ID              int64
	TagName         string
	Name            string
	Body            string
	TargetCommitish string
	HTMLURL         string
}

type ReleaseClient interface {
	// TagExists reports whether the tag exists in the given repository.
	TagExists(owner, repo, tag string) (bool, error)

	// GetReleaseByTag returns the release published for the tag, or nil
	// when no release exists.
	GetReleaseByTag(owner, repo, tag string) (*Release, error)

	// CreateRelease publishes a new release for rel.TagName.
	CreateRelease(owner, repo string, rel Release) (*Release, error)

	// UpdateRelease rewrites the release identified by id.
	UpdateRelease(owner, repo string, id int64, rel Release) (*Release, error)
}

// ParseGitHubRepo extracts owner and repository name from a GitHub remote.
// It accepts https URLs, ssh/scp-style remotes (git@github.com:owner/repo.git),
// and the bare "owner/repo" form.
func ParseGitHubRepo(remote string) (owner, repo string, err error) {
	s := strings.TrimSpace(remote)
	s = strings.TrimSuffix(s, "/")
	s = strings.TrimSuffix(s, ".git")

	for _, prefix := range []string{"git+ssh://", "ssh://", "git://", "https://", "http://"} {
		s = strings.TrimPrefix(s, prefix)
	}
	s = strings.TrimPrefix(s, "git@")
	s = strings.Replace(s, "github.com:", "github.com/", 1)

	// A leading host segment must be github.com; bare owner/repo has none.
	if host, rest, ok := strings.Cut(s, "/"); ok && strings.Contains(host, ".") {
		if host != "github.com" {
			return "", "", fmt.Errorf("%q is not a github.com remote", remote)
		}
		s = rest
	}

	parts := strings.SplitN(s, "/", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("cannot parse GitHub repo from %q", remote)
	}
	return parts[0], parts[1], nil
}
