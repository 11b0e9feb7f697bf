// Package graph provides an undirected graph over a fixed set of named
// vertices with a dense symmetric adjacency matrix.
//
// The vertex type is any comparable key - plain strings work, and so do
// composite position keys like align.Pos, which avoids parsing vertex
// names back apart.
//
// # Invariants
//
// For every graph and every valid index pair (i, j):
//
//   - adjacency is symmetric: AreAdjacent(u, v) == AreAdjacent(v, u)
//   - the name↔index mapping is a bijection: IndexOf(NameOf(i)) == i
//   - no self-loops exist: AddEdge(v, v) is rejected
//
// The vertex set is fixed at construction. Edge insertion is idempotent.
//
// # Typical use
//
//	g, err := graph.New([]string{"x", "y", "z"})
//	if err != nil { ... }
//	g.AddEdge("x", "y")
//	for _, comp := range g.ConnectedComponents() {
//	    sub, _ := g.InducedSubgraph(comp)
//	    // solve each piece independently
//	}
//
// # Concurrency
//
// A Graph is safe for concurrent reads but not concurrent mutation.
package graph
