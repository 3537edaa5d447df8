package changelog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := map[string]struct {
		text string
		want Entries
	}{
		"sections split on level-2 headings": {
			text: `# Changelog

## 2.60.1 (2020-05-23)

### Fixed

- broken pipe handling

## 2.60.0 (2020-05-01)

Notes here.
`,
			want: Entries{
				{Tag: "2.60.1", Body: "### Fixed\n\n- broken pipe handling", Line: 3},
				{Tag: "2.60.0", Body: "Notes here.", Line: 9},
			},
		},
		"heading with no token yields empty tag": {
			text: `##
orphaned notes

## v1.2.0
- change
`,
			want: Entries{
				{Tag: "", Body: "orphaned notes", Line: 1},
				{Tag: "v1.2.0", Body: "- change", Line: 4},
			},
		},
		"trailing whitespace heading also yields empty tag": {
			text: "## \nbody\n",
			want: Entries{
				{Tag: "", Body: "body", Line: 1},
			},
		},
		"back-to-back headings yield empty bodies": {
			text: "## 2.0.0\n## 1.0.0\n",
			want: Entries{
				{Tag: "2.0.0", Body: "", Line: 1},
				{Tag: "1.0.0", Body: "", Line: 2},
			},
		},
		"duplicate tags kept in document order": {
			text: `## 1.0.0
first
## 1.0.0
second
`,
			want: Entries{
				{Tag: "1.0.0", Body: "first", Line: 1},
				{Tag: "1.0.0", Body: "second", Line: 3},
			},
		},
		"fused and deeper markers belong to the body": {
			text: `## 1.0.0
##fused line
### sub-heading
#### deeper
`,
			want: Entries{
				{Tag: "1.0.0", Body: "##fused line\n### sub-heading\n#### deeper", Line: 1},
			},
		},
		"indented heading still opens a section": {
			text: "prose preamble\n  ## 0.9.0 hotfix\nbody line\n",
			want: Entries{
				{Tag: "0.9.0", Body: "body line", Line: 2},
			},
		},
		"interior blank lines survive edge trimming": {
			text: "## 3.0.0\n\n\npara one\n\npara two\n\n\n",
			want: Entries{
				{Tag: "3.0.0", Body: "para one\n\npara two", Line: 1},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.text))
		})
	}
}

func TestParseNoHeadings(t *testing.T) {
	assert.Empty(t, Parse("# Title\n\nprose only, no sections\n"))
	assert.Empty(t, Parse(""))
}

func TestParseOrderFollowsDocument(t *testing.T) {
	text := "## c\n\n## a\n\n## b\n"
	entries := Parse(text)

	require.Len(t, entries, 3)
	assert.Equal(t, []string{"c", "a", "b"}, entries.Tags())
	for i := 1; i < len(entries); i++ {
		assert.Greater(t, entries[i].Line, entries[i-1].Line)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "CHANGELOG.md")
	require.NoError(t, os.WriteFile(path, []byte("## 1.0.0\n- initial\n"), 0o644))

	entries, err := Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "1.0.0", entries[0].Tag)
	assert.Equal(t, "- initial", entries[0].Body)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.md"))
	require.Error(t, err)
}
