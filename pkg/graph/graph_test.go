package graph

import (
	"errors"
	"slices"
	"testing"
)

func mustNew(t *testing.T, names ...string) *Graph[string] {
	t.Helper()
	g, err := New(names)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		names   []string
		wantErr error
	}{
		{name: "Empty", names: nil},
		{name: "Distinct", names: []string{"a", "b", "c"}},
		{name: "Duplicate", names: []string{"a", "b", "a"}, wantErr: ErrDuplicateVertex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.names)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("New = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if got := g.Order(); got != len(tt.names) {
				t.Errorf("Order = %d, want %d", got, len(tt.names))
			}
			if got := g.Size(); got != 0 {
				t.Errorf("Size = %d, want 0", got)
			}
		})
	}
}

func TestIndexBijection(t *testing.T) {
	g := mustNew(t, "a", "b", "c", "d")

	for i := 0; i < g.Order(); i++ {
		got, err := g.IndexOf(g.NameOf(i))
		if err != nil {
			t.Fatalf("IndexOf(NameOf(%d)): %v", i, err)
		}
		if got != i {
			t.Errorf("IndexOf(NameOf(%d)) = %d", i, got)
		}
	}
	for _, n := range g.Vertices() {
		i, err := g.IndexOf(n)
		if err != nil {
			t.Fatalf("IndexOf(%q): %v", n, err)
		}
		if got := g.NameOf(i); got != n {
			t.Errorf("NameOf(IndexOf(%q)) = %q", n, got)
		}
	}
}

func TestIndicesOf(t *testing.T) {
	g := mustNew(t, "a", "b", "c")

	got, err := g.IndicesOf("c", "a")
	if err != nil {
		t.Fatalf("IndicesOf: %v", err)
	}
	if !slices.Equal(got, []int{2, 0}) {
		t.Errorf("IndicesOf = %v, want [2 0]", got)
	}

	if _, err := g.IndicesOf("a", "nope", "b"); !errors.Is(err, ErrUnknownVertex) {
		t.Errorf("IndicesOf unknown = %v, want ErrUnknownVertex", err)
	}
}

func TestAddEdge(t *testing.T) {
	tests := []struct {
		name    string
		u, v    string
		wantErr error
	}{
		{name: "Valid", u: "a", v: "b"},
		{name: "UnknownFirst", u: "x", v: "b", wantErr: ErrUnknownVertex},
		{name: "UnknownSecond", u: "a", v: "x", wantErr: ErrUnknownVertex},
		{name: "SelfLoop", u: "a", v: "a", wantErr: ErrSelfLoop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustNew(t, "a", "b", "c")
			err := g.AddEdge(tt.u, tt.v)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("AddEdge = %v, want %v", err, tt.wantErr)
				}
				if g.Size() != 0 {
					t.Errorf("Size = %d after failed AddEdge", g.Size())
				}
				return
			}
			if err != nil {
				t.Fatalf("AddEdge: %v", err)
			}
			for _, pair := range [][2]string{{tt.u, tt.v}, {tt.v, tt.u}} {
				adj, err := g.AreAdjacent(pair[0], pair[1])
				if err != nil {
					t.Fatalf("AreAdjacent: %v", err)
				}
				if !adj {
					t.Errorf("AreAdjacent(%q, %q) = false", pair[0], pair[1])
				}
			}
		})
	}
}

func TestAddEdgeIdempotent(t *testing.T) {
	g := mustNew(t, "a", "b")
	for i := 0; i < 3; i++ {
		if err := g.AddEdge("a", "b"); err != nil {
			t.Fatalf("AddEdge #%d: %v", i, err)
		}
	}
	if got := g.Size(); got != 1 {
		t.Errorf("Size = %d, want 1", got)
	}
	if got := len(g.Edges()); got != 1 {
		t.Errorf("len(Edges) = %d, want 1", got)
	}
}

func TestEdgesUniqueAndOrdered(t *testing.T) {
	g := mustNew(t, "a", "b", "c")
	// Insert both directions; Edges must report each pair once.
	g.AddEdge("b", "a")
	g.AddEdge("a", "b")
	g.AddEdge("c", "b")

	want := []Edge[string]{{From: "a", To: "b"}, {From: "b", To: "c"}}
	if got := g.Edges(); !slices.Equal(got, want) {
		t.Errorf("Edges = %v, want %v", got, want)
	}
}

func TestNeighbors(t *testing.T) {
	g := mustNew(t, "a", "b", "c", "d")
	g.AddEdge("c", "a")
	g.AddEdge("c", "d")

	got, err := g.Neighbors("c")
	if err != nil {
		t.Fatalf("Neighbors: %v", err)
	}
	if !slices.Equal(got, []string{"a", "d"}) {
		t.Errorf("Neighbors = %v, want [a d]", got)
	}

	if _, err := g.Neighbors("x"); !errors.Is(err, ErrUnknownVertex) {
		t.Errorf("Neighbors unknown = %v, want ErrUnknownVertex", err)
	}
}

func TestAdjacentToAny(t *testing.T) {
	g := mustNew(t, "a", "b", "c", "d")
	g.AddEdge("a", "b")

	tests := []struct {
		name string
		v    string
		set  []string
		want bool
	}{
		{name: "Hit", v: "a", set: []string{"c", "b"}, want: true},
		{name: "Miss", v: "a", set: []string{"c", "d"}, want: false},
		{name: "EmptySet", v: "a", set: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.AdjacentToAny(tt.v, tt.set)
			if err != nil {
				t.Fatalf("AdjacentToAny: %v", err)
			}
			if got != tt.want {
				t.Errorf("AdjacentToAny = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithoutNeighborsOf(t *testing.T) {
	g := mustNew(t, "a", "b", "c", "d", "e")
	g.AddEdge("a", "b")
	g.AddEdge("a", "d")

	got, err := g.WithoutNeighborsOf("a", []string{"e", "d", "c", "b"})
	if err != nil {
		t.Fatalf("WithoutNeighborsOf: %v", err)
	}
	if !slices.Equal(got, []string{"e", "c"}) {
		t.Errorf("WithoutNeighborsOf = %v, want [e c]", got)
	}

	// Pruning must not mutate the graph.
	if g.Size() != 2 {
		t.Errorf("Size = %d after pruning, want 2", g.Size())
	}
}

func TestSymmetryInvariant(t *testing.T) {
	g := mustNew(t, "a", "b", "c", "d")
	g.AddEdge("a", "c")
	g.AddEdge("d", "b")
	g.AddEdge("c", "d")

	names := g.Vertices()
	for _, u := range names {
		for _, v := range names {
			uv, _ := g.AreAdjacent(u, v)
			vu, _ := g.AreAdjacent(v, u)
			if uv != vu {
				t.Errorf("AreAdjacent(%q, %q)=%v but (%q, %q)=%v", u, v, uv, v, u, vu)
			}
		}
	}
}
