package jsondiff

// CompareMode controls how two JSON values relate for a match.
type CompareMode int

const (
	// Inclusive requires the "expected" value to be contained inside the
	// "actual" value. The actual value may carry additional data at every
	// level. This is the mode used by Include and Contains.
	Inclusive CompareMode = iota
	// Strict requires the two JSON values to be exactly equal. This is the
	// mode used by Equal.
	Strict
)

// NumericMode controls how numbers of different JSON types are compared.
type NumericMode int

const (
	// NumericStrict keeps integers and floats apart: 1 and 1.0 are not equal.
	NumericStrict NumericMode = iota
	// AssumeFloat converts every number to a float64 before comparison.
	AssumeFloat
)

// ArraySortingMode controls whether array ordering is significant.
type ArraySortingMode int

const (
	// ConsiderOrder compares array elements index by index.
	ConsiderOrder ArraySortingMode = iota
	// IgnoreOrder matches every expected element against a distinct actual
	// element regardless of position. Only valid with Inclusive.
	IgnoreOrder
)

// FloatCompareMode controls how floating point numbers are compared.
// The zero value compares floats exactly.
type FloatCompareMode struct {
	epsilon    float64
	hasEpsilon bool
}

// FloatExact considers two floats equal only when they are identical.
var FloatExact = FloatCompareMode{}

// FloatEpsilon considers two floats equal when they differ by at most epsilon.
func FloatEpsilon(epsilon float64) FloatCompareMode {
	return FloatCompareMode{epsilon: epsilon, hasEpsilon: true}
}

// Config describes how two JSON values should be compared.
type Config struct {
	compareMode      CompareMode
	numericMode      NumericMode
	floatCompareMode FloatCompareMode
	arraySortingMode ArraySortingMode
}

// Option configures a Config.
type Option func(c *Config)

// WithNumericMode changes the config's numeric mode.
// The default is NumericStrict.
func WithNumericMode(mode NumericMode) Option {
	return func(c *Config) {
		c.numericMode = mode
	}
}

// WithFloatCompareMode changes how floating point numbers are compared.
// The default is FloatExact.
func WithFloatCompareMode(mode FloatCompareMode) Option {
	return func(c *Config) {
		c.floatCompareMode = mode
	}
}

// WithIgnoredArrayOrder disables array ordering when matching elements.
// Combining it with Strict makes NewConfig fail.
func WithIgnoredArrayOrder() Option {
	return func(c *Config) {
		c.arraySortingMode = IgnoreOrder
	}
}

// NewConfig creates a new Config using the given CompareMode.
func NewConfig(mode CompareMode, opts ...Option) (*Config, error) {
	cfg := &Config{
		compareMode: mode,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.arraySortingMode == IgnoreOrder && cfg.compareMode == Strict {
		return nil, ErrStrictArrayOrder
	}

	return cfg, nil
}

// CompareMode returns the config's compare mode.
func (c *Config) CompareMode() CompareMode {
	return c.compareMode
}
