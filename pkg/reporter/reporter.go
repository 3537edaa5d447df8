package reporter

import (
	"io"

	"github.com/changelog-release-sync/pkg/releases"
)

type Reporter interface {
	Report(results []releases.Result) error
}

func New(format string, out io.Writer) Reporter {
	switch format {
	case "json":
		return &JSONReporter{out: out}
	default:
		return &TextReporter{out: out}
	}
}
