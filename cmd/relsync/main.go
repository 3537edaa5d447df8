package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/changelog-release-sync/pkg/changelog"
	"github.com/changelog-release-sync/pkg/config"
	"github.com/changelog-release-sync/pkg/releases"
	"github.com/changelog-release-sync/pkg/reporter"
	"github.com/changelog-release-sync/pkg/vcs"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(2)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "changelog-release-sync [TAG]",
		Short:        "Sync github release notes with your project's changelog",
		Long:         `Reads the project changelog, splits it into per-version sections, and publishes each section as github release notes under the matching tag. Without arguments the most recent entry is synced.`,
		Version:      fmt.Sprintf("%s (%s)", version, commit),
		Args:         cobra.MaximumNArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().BoolP("all", "a", false, "Sync all tags; TAG must not be given")
	rootCmd.Flags().BoolP("list", "l", false, "List tags present in changelog, and exit")
	rootCmd.Flags().BoolP("overwrite", "o", false, "Overwrite github release if it exists")
	rootCmd.Flags().Bool("dry-run", false, "Run existence checks but write nothing to github")
	rootCmd.Flags().String("repo", os.Getenv("GITHUB_REPOSITORY"), "GitHub repo (owner/name); discovered from the origin remote if omitted")
	rootCmd.Flags().String("github-token", os.Getenv("GITHUB_TOKEN"), "GitHub token for API access")
	rootCmd.Flags().String("changelog", "", "Path to changelog (default CHANGELOG.md at the repo root)")
	rootCmd.Flags().String("branch", "", "Target commitish for created releases (default current branch)")
	rootCmd.Flags().String("config", ".changelog-release-sync.yml", "Path to config file")
	rootCmd.Flags().String("output", "", "Output format: text | json")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	all, _ := flags.GetBool("all")
	list, _ := flags.GetBool("list")

	if len(args) == 1 && all {
		return fmt.Errorf("do not provide TAG with --all")
	}

	cfgPath, _ := flags.GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		if flags.Changed("config") || !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "warning: could not load config file: %v (using defaults)\n", err)
		}
		cfg = config.Default()
	}
	cfg = config.MergeFlags(cfg, flags)

	if cfg.Token == "" {
		return fmt.Errorf("github token required; set --github-token or $GITHUB_TOKEN")
	}

	if err := resolveCheckout(cfg, "."); err != nil {
		return err
	}

	entries, err := changelog.Load(cfg.Changelog)
	if err != nil {
		return fmt.Errorf("read changelog: %w", err)
	}

	if list {
		return listTags(os.Stdout, os.Stderr, entries, cfg.Changelog)
	}

	selected, err := selectEntries(entries, args, all, cfg.Changelog)
	if err != nil {
		return err
	}

	owner, repoName, err := vcs.ParseGitHubRepo(cfg.Repo)
	if err != nil {
		return err
	}

	if cfg.DryRun {
		fmt.Fprintln(os.Stderr, "dry-run mode: no releases will be created or updated")
	}

	client := vcs.NewGitHubClient(cfg.Token)
	syncer := releases.New(client, owner, repoName, cfg, os.Stderr)

	results := syncer.SyncAll(selected, cfg.Overwrite)

	rep := reporter.New(cfg.Output, os.Stdout)
	if err := rep.Report(results); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return exitError(results, all)
}

// resolveCheckout fills repo, changelog path, and branch from the git
// checkout containing path when flags and config left them unset. With
// --repo and --changelog both given, no checkout is needed; a discovery
// failure then only means created releases carry no target commitish.
func resolveCheckout(cfg *config.Config, path string) error {
	if cfg.Repo != "" && cfg.Changelog != "" && cfg.Branch != "" {
		return nil
	}

	checkout, err := vcs.DiscoverCheckout(path)
	if err != nil {
		if cfg.Repo == "" || cfg.Changelog == "" {
			return err
		}
		return nil
	}

	if cfg.Repo == "" {
		cfg.Repo = checkout.Owner + "/" + checkout.Repo
	}
	if cfg.Changelog == "" {
		cfg.Changelog = filepath.Join(checkout.Root, "CHANGELOG.md")
	}
	if cfg.Branch == "" {
		cfg.Branch = checkout.Branch
	}
	return nil
}

func listTags(out, errOut io.Writer, entries changelog.Entries, path string) error {
	for _, e := range entries {
		if e.Tag == "" {
			fmt.Fprintf(errOut, "warning: heading at line %d of %s has no tag\n", e.Line, path)
		}
	}

	tags := entries.Tags()
	if len(tags) == 0 {
		return fmt.Errorf("no tags in changelog")
	}
	for _, tag := range tags {
		fmt.Fprintln(out, tag)
	}
	return nil
}

func selectEntries(entries changelog.Entries, args []string, all bool, path string) (changelog.Entries, error) {
	if all {
		if len(entries.Tags()) == 0 {
			return nil, fmt.Errorf("no changelog entries")
		}
		return entries, nil
	}

	if len(args) == 1 {
		entry, ok := entries.Find(args[0])
		if !ok {
			return nil, fmt.Errorf("no entry for tag %q in %s", args[0], path)
		}
		return changelog.Entries{entry}, nil
	}

	latest, ok := entries.Latest()
	if !ok {
		return nil, fmt.Errorf("no changelog entries")
	}
	if latest.Tag == "" {
		return nil, fmt.Errorf("latest changelog heading at line %d has no tag", latest.Line)
	}
	return changelog.Entries{latest}, nil
}

// exitError decides the run's exit status from the sync results. In batch
// mode skips are warnings; only failed entries make the run fail. A single
// requested sync must actually have reached github, except that an existing
// release without --overwrite stays a warning.
func exitError(results []releases.Result, all bool) error {
	if all {
		failed := 0
		for _, r := range results {
			if r.Outcome == releases.Failed {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d entries failed to sync", failed, len(results))
		}
		return nil
	}

	for _, r := range results {
		switch r.Outcome {
		case releases.Failed:
			return r.Err
		case releases.SkippedMissingTag:
			return fmt.Errorf("tag %q does not exist at the remote", r.Tag)
		}
	}
	return nil
}
