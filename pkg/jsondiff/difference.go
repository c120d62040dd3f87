package jsondiff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// DifferenceKind classifies a single divergence between two JSON values.
type DifferenceKind int

const (
	// AtomsNotEqual means both sides hold a value at the path but the values
	// differ.
	AtomsNotEqual DifferenceKind = iota
	// MissingFromLhs means the value exists on the rhs (expected) side only.
	MissingFromLhs
	// MissingFromRhs means the value exists on the lhs side only. It is only
	// reported under Strict; Inclusive ignores extra data in actual.
	MissingFromRhs
)

// Difference is a single divergence between two compared JSON values.
//
// Under Inclusive the lhs side is "actual" and the rhs side is "expected",
// and String renders those labels. Under Strict the sides are labelled
// "lhs" and "rhs".
type Difference struct {
	Path Path
	// Lhs is the value on the lhs/actual side. It is nil when the kind is
	// MissingFromLhs.
	Lhs any
	// Rhs is the value on the rhs/expected side. It is nil when the kind is
	// MissingFromRhs.
	Rhs  any
	Kind DifferenceKind

	mode CompareMode
}

func (d Difference) String() string {
	switch d.Kind {
	case AtomsNotEqual:
		if d.mode == Inclusive {
			return fmt.Sprintf(
				"json atoms at path %q are not equal:\n    expected:\n%s\n    actual:\n%s",
				d.Path.String(), indentValue(d.Rhs), indentValue(d.Lhs),
			)
		}

		return fmt.Sprintf(
			"json atoms at path %q are not equal:\n    lhs:\n%s\n    rhs:\n%s",
			d.Path.String(), indentValue(d.Lhs), indentValue(d.Rhs),
		)
	case MissingFromLhs:
		side := "lhs"
		if d.mode == Inclusive {
			side = "actual"
		}

		return fmt.Sprintf("json atom at path %q is missing from %s", d.Path.String(), side)
	case MissingFromRhs:
		return fmt.Sprintf("json atom at path %q is missing from rhs", d.Path.String())
	}

	return ""
}

// indentValue pretty-prints a JSON value with two-space indentation and
// shifts the whole block right by eight spaces, the layout used in
// difference messages.
func indentValue(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	err := enc.Encode(v)
	if err != nil {
		// The value came out of a successful decode, so this only triggers
		// for NaN-style corruption introduced after the fact.
		return "        <unprintable value>"
	}

	pretty := strings.TrimRight(buf.String(), "\n")
	lines := strings.Split(pretty, "\n")
	for i, line := range lines {
		lines[i] = "        " + line
	}

	return strings.Join(lines, "\n")
}
