package jsondiff

import (
	"bytes"
	"encoding/json"
	"math"
	"math/big"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

type valueKind int

const (
	kindNull valueKind = iota
	kindBool
	kindNumber
	kindString
	kindArray
	kindObject
)

// toValue normalises an arbitrary Go value into the tree produced by
// encoding/json: nil, bool, string, json.Number, []any and map[string]any.
// Numbers are kept as json.Number so the integer/float distinction survives
// the round trip.
func toValue(v any) (any, error) {
	buf, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "unable to serialise value to JSON")
	}

	dec := json.NewDecoder(bytes.NewReader(buf))
	dec.UseNumber()

	var out any
	err = dec.Decode(&out)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode serialised JSON")
	}

	return out, nil
}

func kindOf(v any) valueKind {
	switch v.(type) {
	case nil:
		return kindNull
	case bool:
		return kindBool
	case json.Number:
		return kindNumber
	case string:
		return kindString
	case []any:
		return kindArray
	case map[string]any:
		return kindObject
	}

	return kindNull
}

// isIntegerLiteral reports whether the number was written without a fraction
// or exponent, which is how the JSON grammar separates integers from floats.
func isIntegerLiteral(n json.Number) bool {
	return !strings.ContainsAny(n.String(), ".eE")
}

func integerEq(a, b json.Number) bool {
	ai, okA := new(big.Int).SetString(a.String(), 10)
	bi, okB := new(big.Int).SetString(b.String(), 10)
	if !okA || !okB {
		return a.String() == b.String()
	}

	return ai.Cmp(bi) == 0
}

func (c *Config) floatEq(a, b float64) bool {
	if c.floatCompareMode.hasEpsilon {
		return math.Abs(a-b) <= c.floatCompareMode.epsilon
	}

	return a == b
}

func (c *Config) numberEq(a, b json.Number) bool {
	if c.numericMode == AssumeFloat {
		af, errA := a.Float64()
		bf, errB := b.Float64()
		if errA != nil || errB != nil {
			return a.String() == b.String()
		}

		return c.floatEq(af, bf)
	}

	intA := isIntegerLiteral(a)
	intB := isIntegerLiteral(b)
	if intA != intB {
		return false
	}
	if intA {
		return integerEq(a, b)
	}

	af, errA := a.Float64()
	bf, errB := b.Float64()
	if errA != nil || errB != nil {
		return a.String() == b.String()
	}

	return c.floatEq(af, bf)
}

// atomEq compares two non-container values.
func (c *Config) atomEq(lhs, rhs any) bool {
	if kindOf(lhs) != kindOf(rhs) {
		return false
	}

	switch l := lhs.(type) {
	case nil:
		return true
	case bool:
		return l == rhs.(bool)
	case string:
		return l == rhs.(string)
	case json.Number:
		return c.numberEq(l, rhs.(json.Number))
	}

	return false
}

// sortedKeys returns the object's keys in lexical order so difference output
// is deterministic.
func sortedKeys(obj map[string]any) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
