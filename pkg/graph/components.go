package graph

// ConnectedComponents splits the vertex set into its connected components.
// Each component is a maximal set of mutually reachable vertices; together
// the components partition the vertex set and no edge crosses between them.
//
// Discovery runs BFS from the first unvisited vertex in insertion order, so
// the result is deterministic for a fixed graph: components appear in order
// of their lowest-index vertex, and vertices within a component appear in
// traversal order.
func (g *Graph[V]) ConnectedComponents() [][]V {
	visited := make([]bool, len(g.names))
	var components [][]V

	for start := range g.names {
		if visited[start] {
			continue
		}
		var component []V
		queue := []int{start}
		visited[start] = true
		for len(queue) > 0 {
			i := queue[0]
			queue = queue[1:]
			component = append(component, g.names[i])
			for j, adjacent := range g.adj[i] {
				if adjacent && !visited[j] {
					visited[j] = true
					queue = append(queue, j)
				}
			}
		}
		components = append(components, component)
	}
	return components
}

// InducedSubgraph returns a new graph containing exactly the given vertex
// subset and every edge of g whose both endpoints lie in the subset.
// Returns ErrUnknownVertex if the subset names a vertex not in g, or
// ErrDuplicateVertex if the subset repeats a name.
func (g *Graph[V]) InducedSubgraph(subset []V) (*Graph[V], error) {
	indices, err := g.IndicesOf(subset...)
	if err != nil {
		return nil, err
	}
	sub, err := New(subset)
	if err != nil {
		return nil, err
	}
	for x := range indices {
		for y := x + 1; y < len(indices); y++ {
			if g.adj[indices[x]][indices[y]] {
				sub.adj[x][y] = true
				sub.adj[y][x] = true
			}
		}
	}
	return sub, nil
}
