package changelog

import (
	"os"
	"strings"
)

// Entry is one changelog section: the version tag taken from a level-2
// heading and the verbatim text below it. Tag is empty when the heading
// carried no token after the "##" marker.
type Entry struct {
	Tag  string
	Body string
	Line int // 1-based heading line in the source document
}

// Parse splits a changelog document into entries, one per level-2 heading,
// in document order. A line is a heading when its first whitespace-delimited
// field is exactly "##"; the tag is the next field, and anything after it
// (dates, descriptions) is discarded. Text before the first heading belongs
// to no entry. A document with no level-2 headings yields an empty sequence.
func Parse(text string) Entries {
	var (
		entries Entries
		cur     *Entry
		body    []string
	)

	consume := func() {
		if cur != nil {
			cur.Body = joinBody(body)
			entries = append(entries, *cur)
		}
	}

	for i, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)

		if len(fields) > 0 && fields[0] == "##" {
			consume()
			cur = &Entry{Line: i + 1}
			if len(fields) > 1 {
				cur.Tag = fields[1]
			}
			body = nil
		} else if cur != nil {
			body = append(body, line)
		}
	}
	consume()

	return entries
}

// Load reads and parses the changelog at path.
func Load(path string) (Entries, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data)), nil
}

// joinBody joins body lines, dropping blank lines at either edge while
// keeping interior content byte-for-byte.
func joinBody(lines []string) string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
