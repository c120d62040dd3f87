package jsondiff

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsIntegerLiteral(t *testing.T) {
	t.Parallel()

	assert.True(t, isIntegerLiteral(json.Number("1")))
	assert.True(t, isIntegerLiteral(json.Number("-42")))
	assert.True(t, isIntegerLiteral(json.Number("18446744073709551615")))
	assert.False(t, isIntegerLiteral(json.Number("1.0")))
	assert.False(t, isIntegerLiteral(json.Number("1e2")))
	assert.False(t, isIntegerLiteral(json.Number("2.5E-3")))
}

func TestNumberEqStrict(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Strict)
	require.NoError(t, err)

	assert.True(t, cfg.numberEq(json.Number("1"), json.Number("1")))
	assert.True(t, cfg.numberEq(json.Number("1.5"), json.Number("1.5")))
	// integer and float are distinct atom kinds
	assert.False(t, cfg.numberEq(json.Number("1"), json.Number("1.0")))
	assert.False(t, cfg.numberEq(json.Number("1.0"), json.Number("1")))
	// beyond int64: compared by exact value, not 64-bit truncation
	assert.True(t, cfg.numberEq(
		json.Number("123456789012345678901234567890"),
		json.Number("123456789012345678901234567890"),
	))
	assert.False(t, cfg.numberEq(
		json.Number("123456789012345678901234567890"),
		json.Number("123456789012345678901234567891"),
	))
}

func TestNumberEqAssumeFloat(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Strict, WithNumericMode(AssumeFloat))
	require.NoError(t, err)

	assert.True(t, cfg.numberEq(json.Number("1"), json.Number("1.0")))
	assert.True(t, cfg.numberEq(json.Number("100"), json.Number("1e2")))
	assert.False(t, cfg.numberEq(json.Number("1"), json.Number("1.1")))
}

func TestFloatEqEpsilonBoundary(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Strict, WithFloatCompareMode(FloatEpsilon(0.5)))
	require.NoError(t, err)

	// the boundary itself passes
	assert.True(t, cfg.floatEq(1.0, 1.5))
	assert.True(t, cfg.floatEq(1.5, 1.0))
	assert.False(t, cfg.floatEq(1.0, 1.6))
}

func TestAtomEqKinds(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Strict)
	require.NoError(t, err)

	assert.True(t, cfg.atomEq(nil, nil))
	assert.True(t, cfg.atomEq(true, true))
	assert.True(t, cfg.atomEq("a", "a"))
	assert.False(t, cfg.atomEq(true, "true"))
	assert.False(t, cfg.atomEq(nil, false))
	assert.False(t, cfg.atomEq(json.Number("0"), false))
}

func TestToValueKeepsNumberLiterals(t *testing.T) {
	t.Parallel()

	v, err := toValue(map[string]any{"n": json.Number("1.0")})
	require.NoError(t, err)

	obj, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, json.Number("1.0"), obj["n"])
}
