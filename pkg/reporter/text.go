package reporter

import (
	"fmt"
	"io"

	"github.com/changelog-release-sync/pkg/releases"
)

type TextReporter struct {
	out io.Writer
}

func (r *TextReporter) Report(results []releases.Result) error {
	pushed := 0
	for _, res := range results {
		if res.Outcome == releases.Failed {
			fmt.Fprintf(r.out, "failed to sync %s: %v\n", res.Tag, res.Err)
		}
		if res.Outcome.Pushed() {
			pushed++
		}
	}
	_, err := fmt.Fprintf(r.out, "\n%d changelog entries pushed to github\n", pushed)
	return err
}
