package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("repo", "", "")
	flags.String("changelog", "", "")
	flags.String("branch", "", "")
	flags.String("output", "", "")
	flags.String("github-token", "", "")
	flags.Bool("overwrite", false, "")
	flags.Bool("dry-run", false, "")
	return flags
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "text", cfg.Output)
	assert.Empty(t, cfg.Repo)
	assert.Empty(t, cfg.Changelog)
	assert.False(t, cfg.Overwrite)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `repo: acme/widgets
changelog: docs/CHANGES.md
branch: release
output: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "acme/widgets", cfg.Repo)
	assert.Equal(t, "docs/CHANGES.md", cfg.Changelog)
	assert.Equal(t, "release", cfg.Branch)
	assert.Equal(t, "json", cfg.Output)
}

func TestLoadNeverReadsTokenFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("token: secret\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Token)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("repo: [unclosed\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestMergeFlagsOverridesFileValues(t *testing.T) {
	cfg := &Config{Repo: "acme/widgets", Branch: "release", Output: "text"}

	flags := newFlagSet()
	require.NoError(t, flags.Set("repo", "acme/gadgets"))
	require.NoError(t, flags.Set("github-token", "tok123"))
	require.NoError(t, flags.Set("overwrite", "true"))
	require.NoError(t, flags.Set("dry-run", "true"))

	cfg = MergeFlags(cfg, flags)
	assert.Equal(t, "acme/gadgets", cfg.Repo)
	assert.Equal(t, "tok123", cfg.Token)
	assert.True(t, cfg.Overwrite)
	assert.True(t, cfg.DryRun)

	// unset string flags leave file values alone
	assert.Equal(t, "release", cfg.Branch)
	assert.Equal(t, "text", cfg.Output)
}

func TestMergeFlagsEmptyStringsIgnored(t *testing.T) {
	cfg := &Config{Changelog: "docs/CHANGES.md"}

	flags := newFlagSet()
	require.NoError(t, flags.Set("changelog", ""))

	cfg = MergeFlags(cfg, flags)
	assert.Equal(t, "docs/CHANGES.md", cfg.Changelog)
}
