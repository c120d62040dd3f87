// Package store provides the vertex store backing the difference graph.
//
// The stock in-memory store shipped with dominikbraun/graph does not allow
// vertex properties to be changed after insertion. The report renderer adds
// every path segment as soon as it sees it and only learns the final colour
// of a vertex once all differences are recorded, so it needs UpdateVertex.
package store

import (
	"sync"

	"github.com/dominikbraun/graph"
)

// PathStore is a graph.Store keyed by rendered JSON paths whose vertex
// properties can be updated in place.
type PathStore interface {
	graph.Store[string, string]
	UpdateVertex(path string, options ...func(*graph.VertexProperties))
}

type memoryStore struct {
	lock             sync.RWMutex
	vertices         map[string]string
	vertexProperties map[string]*graph.VertexProperties

	// outEdges and inEdges hold every edge twice, keyed by the opposite
	// endpoint, so lookups in either direction stay O(1).
	outEdges map[string]map[string]graph.Edge[string]
	inEdges  map[string]map[string]graph.Edge[string]
}

// NewPathStore creates an empty in-memory path store.
func NewPathStore() PathStore {
	return &memoryStore{
		vertices:         make(map[string]string),
		vertexProperties: make(map[string]*graph.VertexProperties),
		outEdges:         make(map[string]map[string]graph.Edge[string]),
		inEdges:          make(map[string]map[string]graph.Edge[string]),
	}
}

func (s *memoryStore) AddVertex(path, value string, properties graph.VertexProperties) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.vertices[path]; ok {
		return graph.ErrVertexAlreadyExists
	}

	s.vertices[path] = value
	s.vertexProperties[path] = &properties

	return nil
}

func (s *memoryStore) Vertex(path string) (string, graph.VertexProperties, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	v, ok := s.vertices[path]
	if !ok {
		return v, graph.VertexProperties{}, graph.ErrVertexNotFound
	}

	return v, *s.vertexProperties[path], nil
}

func (s *memoryStore) UpdateVertex(path string, options ...func(*graph.VertexProperties)) {
	s.lock.Lock()
	defer s.lock.Unlock()

	props, ok := s.vertexProperties[path]
	if !ok {
		return
	}
	for _, opt := range options {
		opt(props)
	}
}

func (s *memoryStore) RemoveVertex(path string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.vertices[path]; !ok {
		return graph.ErrVertexNotFound
	}

	if len(s.inEdges[path]) > 0 || len(s.outEdges[path]) > 0 {
		return graph.ErrVertexHasEdges
	}

	delete(s.inEdges, path)
	delete(s.outEdges, path)
	delete(s.vertices, path)
	delete(s.vertexProperties, path)

	return nil
}

func (s *memoryStore) ListVertices() ([]string, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	paths := make([]string, 0, len(s.vertices))
	for path := range s.vertices {
		paths = append(paths, path)
	}

	return paths, nil
}

func (s *memoryStore) VertexCount() (int, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return len(s.vertices), nil
}

func (s *memoryStore) AddEdge(source, target string, edge graph.Edge[string]) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.outEdges[source]; !ok {
		s.outEdges[source] = make(map[string]graph.Edge[string])
	}
	s.outEdges[source][target] = edge

	if _, ok := s.inEdges[target]; !ok {
		s.inEdges[target] = make(map[string]graph.Edge[string])
	}
	s.inEdges[target][source] = edge

	return nil
}

func (s *memoryStore) UpdateEdge(source, target string, edge graph.Edge[string]) error {
	if _, err := s.Edge(source, target); err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.outEdges[source][target] = edge
	s.inEdges[target][source] = edge

	return nil
}

func (s *memoryStore) RemoveEdge(source, target string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	delete(s.inEdges[target], source)
	delete(s.outEdges[source], target)

	return nil
}

func (s *memoryStore) Edge(source, target string) (graph.Edge[string], error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	sourceEdges, ok := s.outEdges[source]
	if !ok {
		return graph.Edge[string]{}, graph.ErrEdgeNotFound
	}

	edge, ok := sourceEdges[target]
	if !ok {
		return graph.Edge[string]{}, graph.ErrEdgeNotFound
	}

	return edge, nil
}

func (s *memoryStore) ListEdges() ([]graph.Edge[string], error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	res := make([]graph.Edge[string], 0)
	for _, edges := range s.outEdges {
		for _, edge := range edges {
			res = append(res, edge)
		}
	}

	return res, nil
}
