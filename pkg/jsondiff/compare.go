package jsondiff

import (
	"strings"

	"github.com/pkg/errors"
)

// Diff compares two values according to a configuration and returns every
// difference between their JSON representations. Both arguments may be any
// JSON-serialisable Go value; they are round-tripped through encoding/json
// before comparison.
//
// An empty slice means the values match. The error is only non-nil when a
// value cannot be serialised or the config is missing.
func Diff(lhs, rhs any, cfg *Config) ([]Difference, error) {
	if cfg == nil {
		return nil, ErrConfigMustBeSet
	}

	lv, err := toValue(lhs)
	if err != nil {
		return nil, errors.Wrap(err, "left-hand side value")
	}
	rv, err := toValue(rhs)
	if err != nil {
		return nil, errors.Wrap(err, "right-hand side value")
	}

	return diffValues(lv, rv, cfg), nil
}

// Compare compares two values according to a configuration and returns nil
// when they match. Otherwise the error message lists every difference, in
// the same format the assertion helpers report.
func Compare(lhs, rhs any, cfg *Config) error {
	diffs, err := Diff(lhs, rhs, cfg)
	if err != nil {
		return err
	}
	if len(diffs) == 0 {
		return nil
	}

	msgs := make([]string, 0, len(diffs))
	for _, d := range diffs {
		msgs = append(msgs, d.String())
	}

	return errors.New(strings.Join(msgs, "\n\n"))
}
