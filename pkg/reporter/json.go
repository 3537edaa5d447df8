package reporter

import (
	"encoding/json"
	"io"

	"github.com/changelog-release-sync/pkg/releases"
)

type JSONReporter struct {
	out io.Writer
}

func (r *JSONReporter) Report(results []releases.Result) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")

	type entry struct {
		Tag     string `json:"tag"`
		Outcome string `json:"outcome"`
		URL     string `json:"url,omitempty"`
		Error   string `json:"error,omitempty"`
	}
	type output struct {
		Pushed  int     `json:"pushed"`
		Results []entry `json:"results"`
	}

	out := output{Results: make([]entry, 0, len(results))}
	for _, res := range results {
		e := entry{
			Tag:     res.Tag,
			Outcome: res.Outcome.String(),
			URL:     res.URL,
		}
		if res.Err != nil {
			e.Error = res.Err.Error()
		}
		if res.Outcome.Pushed() {
			out.Pushed++
		}
		out.Results = append(out.Results, e)
	}
	return enc.Encode(out)
}
