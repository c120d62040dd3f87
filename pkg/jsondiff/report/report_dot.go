// Package report renders a set of JSON differences as a DOT graph of the
// touched document paths: one vertex per path segment from the root, with
// leaf vertices coloured by the kind of difference found there. Feeding the
// output to Graphviz gives a visual map of where two documents diverge.
package report

import (
	"io"
	"os"
	"sort"
	"text/template"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/go-jsondiff/internal/store"
	"github.com/askiada/go-jsondiff/pkg/jsondiff"
)

const rootVertex = "(root)"

// DOTReporter collects differences into a directed path graph and renders it
// in DOT format.
type DOTReporter struct {
	graph graph.Graph[string, string]
	store store.PathStore
	count int
}

// NewDOTReporter creates an empty DOT reporter.
func NewDOTReporter() (*DOTReporter, error) {
	st := store.NewPathStore()
	g := graph.NewWithStore[string, string](graph.StringHash, st, graph.Directed())

	err := g.AddVertex(rootVertex, graph.VertexAttribute("label", rootVertex))
	if err != nil {
		return nil, errors.Wrap(err, "unable to add root vertex")
	}

	return &DOTReporter{
		graph: g,
		store: st,
	}, nil
}

// AddDifference records one difference: every prefix of its path becomes a
// vertex, and the final vertex is coloured by the difference kind.
func (r *DOTReporter) AddDifference(diff jsondiff.Difference) error {
	prev := rootVertex
	for i := range diff.Path {
		curr := diff.Path[:i+1].String()

		err := r.graph.AddVertex(curr, graph.VertexAttribute("label", diff.Path[i].String()))
		if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return errors.Wrapf(err, "unable to add vertex %s", curr)
		}

		err = r.graph.AddEdge(prev, curr)
		if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
			return errors.Wrapf(err, "unable to add edge from %s to %s", prev, curr)
		}

		prev = curr
	}

	fill, err := kindColour(diff.Kind)
	if err != nil {
		return err
	}

	r.store.UpdateVertex(prev,
		graph.VertexAttribute("style", "filled"),
		graph.VertexAttribute("fillcolor", fill),
		graph.VertexAttribute("fontcolor", "white"),
	)
	r.count++

	return nil
}

// Count returns the number of recorded differences.
func (r *DOTReporter) Count() int {
	return r.count
}

// Render writes the graph in DOT format. Vertices and edges are emitted in
// lexical path order so the output is stable.
func (r *DOTReporter) Render(wrt io.Writer) error {
	adjacency, err := r.graph.AdjacencyMap()
	if err != nil {
		return errors.Wrap(err, "unable to get adjacency map")
	}

	sources := make([]string, 0, len(adjacency))
	for source := range adjacency {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	desc := description{}
	for _, source := range sources {
		_, properties, err := r.graph.VertexWithProperties(source)
		if err != nil {
			return errors.Wrap(err, "unable to get vertex properties")
		}

		desc.Statements = append(desc.Statements, statement{
			Source:     source,
			Attributes: properties.Attributes,
		})

		targets := make([]string, 0, len(adjacency[source]))
		for target := range adjacency[source] {
			targets = append(targets, target)
		}
		sort.Strings(targets)

		for _, target := range targets {
			desc.Statements = append(desc.Statements, statement{
				Source: source,
				Target: target,
			})
		}
	}

	tpl, err := template.New("diffGraph").Parse(dotTemplate)
	if err != nil {
		return errors.Wrap(err, "unable to parse template")
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

// WriteFile renders the graph into the named file.
func (r *DOTReporter) WriteFile(name string) error {
	file, err := os.Create(name)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", name)
	}
	defer file.Close()

	err = r.Render(file)
	if err != nil {
		return errors.Wrapf(err, "unable to render graph to %s", name)
	}

	return nil
}

const dotTemplate = `strict digraph {
{{- range .Statements}}
{{- if .Target}}
	"{{.Source}}" -> "{{.Target}}";
{{- else}}
	"{{.Source}}" [ {{range $k, $v := .Attributes}}{{$k}}="{{$v}}", {{end}}];
{{- end}}
{{- end}}
}
`

type description struct {
	Statements []statement
}

type statement struct {
	Source     string
	Target     string
	Attributes map[string]string
}

func kindColour(kind jsondiff.DifferenceKind) (string, error) {
	var rgb [3]uint8
	switch kind {
	case jsondiff.AtomsNotEqual:
		rgb = [3]uint8{214, 39, 40}
	case jsondiff.MissingFromLhs:
		rgb = [3]uint8{31, 119, 180}
	case jsondiff.MissingFromRhs:
		rgb = [3]uint8{255, 127, 14}
	}

	c, err := colors.RGB(rgb[0], rgb[1], rgb[2]) //nolint
	if err != nil {
		return "", errors.Wrap(err, "unable to get colour")
	}

	return c.ToHEX().String(), nil
}

var _ Reporter = (*DOTReporter)(nil)
