package report

import (
	"io"

	"github.com/askiada/go-jsondiff/pkg/jsondiff"
)

// Reporter is an interface that defines the methods for rendering a set of
// JSON differences.
type Reporter interface {
	// AddDifference records one difference in the report.
	AddDifference(diff jsondiff.Difference) error
	// Count returns the number of recorded differences.
	Count() int
	// Render writes the report.
	Render(wrt io.Writer) error
}
