package graph

import (
	"slices"
	"testing"
)

func TestConnectedComponents(t *testing.T) {
	tests := []struct {
		name  string
		build func(t *testing.T) *Graph[string]
		want  [][]string
	}{
		{
			name:  "Empty",
			build: func(t *testing.T) *Graph[string] { return mustNew(t) },
			want:  nil,
		},
		{
			name:  "AllSingletons",
			build: func(t *testing.T) *Graph[string] { return mustNew(t, "x", "y", "z") },
			want:  [][]string{{"x"}, {"y"}, {"z"}},
		},
		{
			name: "TwoComponents",
			build: func(t *testing.T) *Graph[string] {
				g := mustNew(t, "a", "b", "c", "d", "e")
				g.AddEdge("a", "c")
				g.AddEdge("c", "e")
				g.AddEdge("b", "d")
				return g
			},
			want: [][]string{{"a", "c", "e"}, {"b", "d"}},
		},
		{
			name: "SingleChain",
			build: func(t *testing.T) *Graph[string] {
				g := mustNew(t, "a", "b", "c")
				g.AddEdge("a", "b")
				g.AddEdge("b", "c")
				return g
			},
			want: [][]string{{"a", "b", "c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.build(t)
			got := g.ConnectedComponents()

			if len(got) != len(tt.want) {
				t.Fatalf("components = %v, want %v", got, tt.want)
			}
			for i := range got {
				if !slices.Equal(got[i], tt.want[i]) {
					t.Errorf("component %d = %v, want %v", i, got[i], tt.want[i])
				}
			}

			// Partition property: union is the vertex set, pieces disjoint.
			seen := make(map[string]bool)
			for _, comp := range got {
				for _, v := range comp {
					if seen[v] {
						t.Errorf("vertex %q in multiple components", v)
					}
					seen[v] = true
				}
			}
			if len(seen) != g.Order() {
				t.Errorf("components cover %d vertices, want %d", len(seen), g.Order())
			}

			// No edge crosses between distinct components.
			for i, ci := range got {
				for j, cj := range got {
					if i == j {
						continue
					}
					for _, u := range ci {
						adj, err := g.AdjacentToAny(u, cj)
						if err != nil {
							t.Fatalf("AdjacentToAny: %v", err)
						}
						if adj {
							t.Errorf("edge crosses components %d and %d at %q", i, j, u)
						}
					}
				}
			}
		})
	}
}

func TestInducedSubgraph(t *testing.T) {
	g := mustNew(t, "a", "b", "c", "d")
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "d")
	g.AddEdge("a", "d")

	sub, err := g.InducedSubgraph([]string{"a", "b", "d"})
	if err != nil {
		t.Fatalf("InducedSubgraph: %v", err)
	}

	if got := sub.Order(); got != 3 {
		t.Errorf("Order = %d, want 3", got)
	}
	want := []Edge[string]{{From: "a", To: "b"}, {From: "a", To: "d"}}
	if got := sub.Edges(); !slices.Equal(got, want) {
		t.Errorf("Edges = %v, want %v", got, want)
	}

	// The b-c and c-d edges must not leak into the subgraph.
	if adj, _ := sub.AreAdjacent("b", "d"); adj {
		t.Error("AreAdjacent(b, d) = true in subgraph")
	}
}

func TestInducedSubgraphUnknownVertex(t *testing.T) {
	g := mustNew(t, "a", "b")
	if _, err := g.InducedSubgraph([]string{"a", "zzz"}); err == nil {
		t.Fatal("InducedSubgraph with unknown vertex: want error")
	}
}
