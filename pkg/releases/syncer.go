package releases

import (
	"fmt"
	"io"

	"github.com/changelog-release-sync/pkg/changelog"
	"github.com/changelog-release-sync/pkg/config"
	"github.com/changelog-release-sync/pkg/vcs"
)

// Outcome classifies what Sync did (or, in dry-run mode, would have done)
// with a single changelog entry.
type Outcome int

const (
	Created Outcome = iota
	Updated
	SkippedExists
	SkippedMissingTag
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case Updated:
		return "updated"
	case SkippedExists:
		return "skipped-exists"
	case SkippedMissingTag:
		return "skipped-missing-tag"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Pushed reports whether the outcome counts as an entry pushed to github.
func (o Outcome) Pushed() bool {
	return o == Created || o == Updated
}

type Result struct {
	Tag     string
	Outcome Outcome
	URL     string
	Err     error
}

type Syncer struct {
	client   vcs.ReleaseClient
	owner    string
	repo     string
	config   *config.Config
	progress io.Writer
}

func New(client vcs.ReleaseClient, owner, repo string, cfg *config.Config, progress io.Writer) *Syncer {
	return &Syncer{
		client:   client,
		owner:    owner,
		repo:     repo,
		config:   cfg,
		progress: progress,
	}
}

// Sync reconciles one changelog entry against the remote repository. The
// entry's tag must be non-empty. A tag absent at the remote is never
// created here; a typo in a changelog heading must not mint a new tag.
// At most one mutating call is made per invocation, and none in dry-run
// mode.
func (s *Syncer) Sync(entry changelog.Entry, overwrite bool) Result {
	tag := entry.Tag

	exists, err := s.client.TagExists(s.owner, s.repo, tag)
	if err != nil {
		return Result{Tag: tag, Outcome: Failed, Err: err}
	}
	if !exists {
		return Result{Tag: tag, Outcome: SkippedMissingTag}
	}

	existing, err := s.client.GetReleaseByTag(s.owner, s.repo, tag)
	if err != nil {
		return Result{Tag: tag, Outcome: Failed, Err: err}
	}

	if existing != nil && !overwrite {
		return Result{Tag: tag, Outcome: SkippedExists, URL: existing.HTMLURL}
	}

	rel := vcs.Release{
		TagName:         tag,
		Name:            tag,
		Body:            entry.Body,
		TargetCommitish: s.config.Branch,
	}

	if existing != nil {
		if s.config.DryRun {
			return Result{Tag: tag, Outcome: Updated, URL: existing.HTMLURL}
		}
		updated, err := s.client.UpdateRelease(s.owner, s.repo, existing.ID, rel)
		if err != nil {
			return Result{Tag: tag, Outcome: Failed, Err: err}
		}
		return Result{Tag: tag, Outcome: Updated, URL: updated.HTMLURL}
	}

	if s.config.DryRun {
		return Result{Tag: tag, Outcome: Created}
	}
	created, err := s.client.CreateRelease(s.owner, s.repo, rel)
	if err != nil {
		return Result{Tag: tag, Outcome: Failed, Err: err}
	}
	return Result{Tag: tag, Outcome: Created, URL: created.HTMLURL}
}

// SyncAll syncs entries in document order. Failures are isolated per
// entry and never stop the batch. Entries with an empty tag come from
// malformed headings; they are reported and skipped without any remote
// call.
func (s *Syncer) SyncAll(entries changelog.Entries, overwrite bool) []Result {
	results := make([]Result, 0, len(entries))

	for _, entry := range entries {
		if entry.Tag == "" {
			fmt.Fprintf(s.progress, "Skipping heading at line %d: no tag\n", entry.Line)
			continue
		}

		fmt.Fprintf(s.progress, "Syncing %q to github...\n", entry.Tag)
		result := s.Sync(entry, overwrite)
		s.announce(result)
		results = append(results, result)
	}
	return results
}

func (s *Syncer) announce(r Result) {
	switch r.Outcome {
	case Created, Updated:
		if r.URL != "" {
			fmt.Fprintf(s.progress, "%q synced, see %s\n", r.Tag, r.URL)
		} else {
			fmt.Fprintf(s.progress, "%q synced\n", r.Tag)
		}
	case SkippedExists:
		fmt.Fprintf(s.progress, "Github release %q already exists\n", r.Tag)
	case SkippedMissingTag:
		fmt.Fprintf(s.progress, "Tag %q does not exist at the remote\n", r.Tag)
	case Failed:
		fmt.Fprintf(s.progress, "Failed to sync %q: %v\n", r.Tag, r.Err)
	}
}
