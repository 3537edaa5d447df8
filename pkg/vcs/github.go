package vcs

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v60/github"
	"golang.org/x/oauth2"
)

type GitHubClient struct {
	client *github.Client
	ctx    context.Context
}

func NewGitHubClient(token string) *GitHubClient {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	return &GitHubClient{
		client: github.NewClient(tc),
		ctx:    ctx,
	}
}

func (g *GitHubClient) TagExists(owner, repo, tag string) (bool, error) {
	_, _, err := g.client.Git.GetRef(g.ctx, owner, repo, "tags/"+tag)
	if err != nil {
		if strings.Contains(err.Error(), "404") {
			return false, nil
		}
		return false, fmt.Errorf("check tag %s in %s/%s: %w", tag, owner, repo, err)
	}
	return true, nil
}

func (g *GitHubClient) GetReleaseByTag(owner, repo, tag string) (*Release, error) {
	release, _, err := g.client.Repositories.GetReleaseByTag(g.ctx, owner, repo, tag)
	if err != nil {
		if strings.Contains(err.Error(), "404") {
			return nil, nil
		}
		return nil, fmt.Errorf("get release %s in %s/%s: %w", tag, owner, repo, err)
	}
	return fromGitHub(release), nil
}

func (g *GitHubClient) CreateRelease(owner, repo string, rel Release) (*Release, error) {
	created, _, err := g.client.Repositories.CreateRelease(g.ctx, owner, repo, toGitHub(rel))
	if err != nil {
		return nil, fmt.Errorf("create release %s in %s/%s: %w", rel.TagName, owner, repo, err)
	}
	return fromGitHub(created), nil
}

func (g *GitHubClient) UpdateRelease(owner, repo string, id int64, rel Release) (*Release, error) {
	updated, _, err := g.client.Repositories.EditRelease(g.ctx, owner, repo, id, toGitHub(rel))
	if err != nil {
		return nil, fmt.Errorf("update release %s in %s/%s: %w", rel.TagName, owner, repo, err)
	}
	return fromGitHub(updated), nil
}

func toGitHub(rel Release) *github.RepositoryRelease {
	r := &github.RepositoryRelease{
		TagName: github.String(rel.TagName),
		Name:    github.String(rel.Name),
		Body:    github.String(rel.Body),
	}
	if rel.TargetCommitish != "" {
		r.TargetCommitish = github.String(rel.TargetCommitish)
	}
	return r
}

func fromGitHub(r *github.RepositoryRelease) *Release {
	return &Release{
		ID:              r.GetID(),
		TagName:         r.GetTagName(),
		Name:            r.GetName(),
		Body:            r.GetBody(),
		TargetCommitish: r.GetTargetCommitish(),
		HTMLURL:         r.GetHTMLURL(),
	}
}
