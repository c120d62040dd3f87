package jsondiff_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// js decodes a JSON literal into a value tree, keeping numbers as json.Number
// so the integer/float distinction survives.
func js(t *testing.T, literal string) any {
	t.Helper()

	dec := json.NewDecoder(strings.NewReader(literal))
	dec.UseNumber()

	var v any
	require.NoError(t, dec.Decode(&v))

	return v
}

// recorderT captures assertion failures instead of failing the running test.
type recorderT struct {
	testing.TB

	failed bool
	msg    string
}

func (r *recorderT) Helper() {}

func (r *recorderT) Errorf(format string, args ...any) {
	r.failed = true
	r.msg = fmt.Sprintf(format, args...)
}
