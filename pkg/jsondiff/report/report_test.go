package report_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-jsondiff/pkg/jsondiff"
	"github.com/askiada/go-jsondiff/pkg/jsondiff/report"
)

func js(t *testing.T, literal string) any {
	t.Helper()

	dec := json.NewDecoder(strings.NewReader(literal))
	dec.UseNumber()

	var v any
	require.NoError(t, dec.Decode(&v))

	return v
}

func diffOf(t *testing.T, lhs, rhs string) []jsondiff.Difference {
	t.Helper()

	cfg, err := jsondiff.NewConfig(jsondiff.Strict)
	require.NoError(t, err)

	diffs, err := jsondiff.Diff(js(t, lhs), js(t, rhs), cfg)
	require.NoError(t, err)

	return diffs
}

func TestDOTReporterRender(t *testing.T) {
	t.Parallel()

	diffs := diffOf(t,
		`{"a": {"b": 1}, "c": [1, 2]}`,
		`{"a": {"b": 2}, "c": [1]}`,
	)
	require.Len(t, diffs, 2)

	rep, err := report.NewDOTReporter()
	require.NoError(t, err)

	for _, d := range diffs {
		require.NoError(t, rep.AddDifference(d))
	}
	assert.Equal(t, 2, rep.Count())

	var buf bytes.Buffer
	require.NoError(t, rep.Render(&buf))
	out := strings.ToLower(buf.String())

	assert.Contains(t, out, `strict digraph {`)
	assert.Contains(t, out, `"(root)" -> ".a"`)
	assert.Contains(t, out, `".a" -> ".a.b"`)
	assert.Contains(t, out, `"(root)" -> ".c"`)
	assert.Contains(t, out, `".c" -> ".c[1]"`)
	// changed atom is red, missing atom is orange
	assert.Contains(t, out, "#d62728")
	assert.Contains(t, out, "#ff7f0e")
}

func TestDOTReporterRootDifference(t *testing.T) {
	t.Parallel()

	diffs := diffOf(t, `true`, `false`)
	require.Len(t, diffs, 1)

	rep, err := report.NewDOTReporter()
	require.NoError(t, err)
	require.NoError(t, rep.AddDifference(diffs[0]))

	var buf bytes.Buffer
	require.NoError(t, rep.Render(&buf))
	out := strings.ToLower(buf.String())

	assert.Contains(t, out, `"(root)" [`)
	assert.Contains(t, out, "#d62728")
}

func TestDOTReporterSharedPrefix(t *testing.T) {
	t.Parallel()

	diffs := diffOf(t,
		`{"a": {"b": 1, "c": 1}}`,
		`{"a": {"b": 2, "c": 2}}`,
	)
	require.Len(t, diffs, 2)

	rep, err := report.NewDOTReporter()
	require.NoError(t, err)
	for _, d := range diffs {
		require.NoError(t, rep.AddDifference(d))
	}

	var buf bytes.Buffer
	require.NoError(t, rep.Render(&buf))

	// the shared ".a" vertex is emitted once
	assert.Equal(t, 1, strings.Count(buf.String(), `".a" [`))
}

func TestDOTReporterWriteFile(t *testing.T) {
	t.Parallel()

	diffs := diffOf(t, `{"a": 1}`, `{"a": 2}`)
	require.Len(t, diffs, 1)

	rep, err := report.NewDOTReporter()
	require.NoError(t, err)
	require.NoError(t, rep.AddDifference(diffs[0]))

	name := filepath.Join(t.TempDir(), "diff.dot")
	require.NoError(t, rep.WriteFile(name))

	content, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Contains(t, string(content), "strict digraph")
}
