// Package jsondiff compares two JSON-serialisable values and reports the exact
// differences between their JSON representations. It is designed to give much
// more helpful failure output than a plain equality assertion: instead of two
// opaque blobs, it tells you every path at which the documents diverge.
//
// Values are round-tripped through encoding/json before comparison, so any
// combination of Go structs, maps, slices and raw json.RawMessage can be
// compared against each other.
//
// # Partial matching
//
// Include asserts that one JSON value is "included" in another. Extra data in
// the actual value is allowed at every level, which lets a test verify just a
// part of a large document:
//
//	jsondiff.Include(t,
//		map[string]any{"a": map[string]any{"b": 1}}, // actual
//		map[string]any{"a": map[string]any{}},       // expected
//	)
//
// A mismatch reports the offending paths:
//
//	json atoms at path ".data.users[0].country.name" are not equal:
//	    expected:
//	        "Sweden"
//	    actual:
//	        "Denmark"
//
// # Exact matching
//
// Equal asserts that two JSON values are exactly the same. Data present on
// only one side is reported as missing from the other:
//
//	json atom at path ".a.b" is missing from rhs
//
// # Containment
//
// Contains behaves like Include but additionally ignores array ordering: every
// contained element must match a distinct container element, repeated elements
// included, in any order.
//
// # Further customisation
//
// Diff, Compare and Matches accept a Config built with NewConfig, which
// controls the compare mode, how numbers of different JSON types relate, and
// how floating point values are compared.
package jsondiff
