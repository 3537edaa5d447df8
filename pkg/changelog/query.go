package changelog

// Entries is an ordered changelog section list. Document order is trusted as
// recency order (newest first, by changelog convention); no date semantics
// are imposed.
type Entries []Entry

// Tags returns the non-empty tags in document order.
func (e Entries) Tags() []string {
	tags := make([]string, 0, len(e))
	for _, entry := range e {
		if entry.Tag != "" {
			tags = append(tags, entry.Tag)
		}
	}
	return tags
}

// Find returns the first entry whose tag equals tag. An empty requested tag
// never matches: a malformed heading cannot be addressed by name.
func (e Entries) Find(tag string) (Entry, bool) {
	if tag == "" {
		return Entry{}, false
	}
	for _, entry := range e {
		if entry.Tag == tag {
			return entry, true
		}
	}
	return Entry{}, false
}

// Latest returns the first entry in document order.
func (e Entries) Latest() (Entry, bool) {
	if len(e) == 0 {
		return Entry{}, false
	}
	return e[0], true
}
