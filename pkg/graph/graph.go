package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateVertex is returned by [New] when the vertex list contains
	// the same name more than once. Vertex names must be unique.
	ErrDuplicateVertex = errors.New("duplicate vertex")

	// ErrUnknownVertex is returned by lookup and edge operations when a
	// vertex name is not part of the graph's vertex set.
	ErrUnknownVertex = errors.New("unknown vertex")

	// ErrSelfLoop is returned by [Graph.AddEdge] when both endpoints are the
	// same vertex. The adjacency relation never contains self-loops.
	ErrSelfLoop = errors.New("self-loop not allowed")
)

// Edge is an undirected edge between two named vertices.
// The From/To split carries no direction; it only records the order in
// which the endpoints were given.
type Edge[V comparable] struct {
	From V
	To   V
}

// Graph is an undirected graph over a fixed set of named vertices with a
// dense symmetric adjacency matrix.
//
// The vertex set is fixed at construction: edges can be added, vertices
// cannot. Vertex iteration order is insertion order and is stable, which
// callers rely on for deterministic results and tie-breaking.
//
// The zero value is not usable - use [New] to create a Graph.
// Graph is not safe for concurrent mutation without external synchronization.
type Graph[V comparable] struct {
	names []V
	index map[V]int
	adj   [][]bool
}

// New creates a graph with the given vertex set and no edges.
// Returns ErrDuplicateVertex if the same name appears twice; silently
// aliasing duplicates would corrupt the name↔index bijection.
func New[V comparable](names []V) (*Graph[V], error) {
	g := &Graph[V]{
		names: make([]V, len(names)),
		index: make(map[V]int, len(names)),
		adj:   make([][]bool, len(names)),
	}
	for i, name := range names {
		if _, exists := g.index[name]; exists {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateVertex, name)
		}
		g.names[i] = name
		g.index[name] = i
		g.adj[i] = make([]bool, len(names))
	}
	return g, nil
}

// Order returns the number of vertices.
func (g *Graph[V]) Order() int { return len(g.names) }

// Size returns the number of undirected edges.
func (g *Graph[V]) Size() int {
	n := 0
	for i := range g.adj {
		for j := i + 1; j < len(g.adj); j++ {
			if g.adj[i][j] {
				n++
			}
		}
	}
	return n
}

// Vertices returns all vertex names in insertion order.
// The returned slice is a copy; modifying it does not affect the graph.
func (g *Graph[V]) Vertices() []V {
	out := make([]V, len(g.names))
	copy(out, g.names)
	return out
}

// Edges returns every undirected edge exactly once, ordered by ascending
// index pairs (i, j) with i < j.
func (g *Graph[V]) Edges() []Edge[V] {
	var out []Edge[V]
	for i := range g.adj {
		for j := i + 1; j < len(g.adj); j++ {
			if g.adj[i][j] {
				out = append(out, Edge[V]{From: g.names[i], To: g.names[j]})
			}
		}
	}
	return out
}

// IndexOf returns the index of the given vertex name.
// Returns ErrUnknownVertex if the name is not in the vertex set.
func (g *Graph[V]) IndexOf(name V) (int, error) {
	i, ok := g.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownVertex, name)
	}
	return i, nil
}

// IndicesOf returns the indices of the given names, preserving input order.
// It fails on the first unknown name with no partial result.
func (g *Graph[V]) IndicesOf(names ...V) ([]int, error) {
	out := make([]int, len(names))
	for k, name := range names {
		i, err := g.IndexOf(name)
		if err != nil {
			return nil, err
		}
		out[k] = i
	}
	return out, nil
}

// NameOf returns the vertex name at the given index.
// Passing an out-of-range index is a caller contract violation and panics.
func (g *Graph[V]) NameOf(i int) V { return g.names[i] }

// NamesOf returns the vertex names at the given indices, preserving order.
func (g *Graph[V]) NamesOf(indices ...int) []V {
	out := make([]V, len(indices))
	for k, i := range indices {
		out[k] = g.names[i]
	}
	return out
}

// AddEdge inserts the undirected edge u-v. Adding an existing edge is a
// no-op. Returns ErrUnknownVertex if either endpoint is not in the vertex
// set, or ErrSelfLoop if u == v.
func (g *Graph[V]) AddEdge(u, v V) error {
	i, err := g.IndexOf(u)
	if err != nil {
		return err
	}
	j, err := g.IndexOf(v)
	if err != nil {
		return err
	}
	if i == j {
		return fmt.Errorf("%w: %v", ErrSelfLoop, u)
	}
	g.adj[i][j] = true
	g.adj[j][i] = true
	return nil
}

// AddEdges inserts all given edges, failing on the first bad endpoint.
func (g *Graph[V]) AddEdges(edges []Edge[V]) error {
	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return err
		}
	}
	return nil
}

// AreAdjacent reports whether an edge u-v exists.
// Returns ErrUnknownVertex if either name is not in the vertex set.
func (g *Graph[V]) AreAdjacent(u, v V) (bool, error) {
	i, err := g.IndexOf(u)
	if err != nil {
		return false, err
	}
	j, err := g.IndexOf(v)
	if err != nil {
		return false, err
	}
	return g.adj[i][j], nil
}

// AdjacentToAny reports whether v is adjacent to at least one member of set.
// It short-circuits on the first match.
func (g *Graph[V]) AdjacentToAny(v V, set []V) (bool, error) {
	i, err := g.IndexOf(v)
	if err != nil {
		return false, err
	}
	for _, u := range set {
		j, err := g.IndexOf(u)
		if err != nil {
			return false, err
		}
		if g.adj[i][j] {
			return true, nil
		}
	}
	return false, nil
}

// Neighbors returns all vertices adjacent to v, in ascending index order.
func (g *Graph[V]) Neighbors(v V) ([]V, error) {
	i, err := g.IndexOf(v)
	if err != nil {
		return nil, err
	}
	var out []V
	for j, adjacent := range g.adj[i] {
		if adjacent {
			out = append(out, g.names[j])
		}
	}
	return out, nil
}

// WithoutNeighborsOf returns the sublist of candidates not adjacent to v,
// preserving relative order. This is a pruning primitive for search
// algorithms; it never mutates the graph.
func (g *Graph[V]) WithoutNeighborsOf(v V, candidates []V) ([]V, error) {
	i, err := g.IndexOf(v)
	if err != nil {
		return nil, err
	}
	out := make([]V, 0, len(candidates))
	for _, c := range candidates {
		j, err := g.IndexOf(c)
		if err != nil {
			return nil, err
		}
		if !g.adj[i][j] {
			out = append(out, c)
		}
	}
	return out, nil
}
