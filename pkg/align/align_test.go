package align

import (
	"slices"
	"testing"

	"github.com/anagraph/anagraph/pkg/graph"
)

func TestBuildGraph(t *testing.T) {
	tests := []struct {
		name      string
		a, b      string
		wantVerts []Pos
		wantEdges int
	}{
		{
			name: "AllSameLetter",
			a:    "aaa",
			b:    "aaa",
			wantVerts: []Pos{
				{A: 0, B: 0}, {A: 0, B: 1},
				{A: 1, B: 0}, {A: 1, B: 1},
			},
			// Every pair conflicts except (0,0)-(1,1).
			wantEdges: 5,
		},
		{
			name:      "NoSharedCharacters",
			a:         "ab",
			b:         "cd",
			wantVerts: nil,
			wantEdges: 0,
		},
		{
			name:      "SingleWindow",
			a:         "abx",
			b:         "yab",
			wantVerts: []Pos{{A: 0, B: 1}},
			wantEdges: 0,
		},
		{
			name:      "TooShort",
			a:         "a",
			b:         "abc",
			wantVerts: nil,
			wantEdges: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := BuildGraph(tt.a, tt.b)
			if err != nil {
				t.Fatalf("BuildGraph: %v", err)
			}
			if got := g.Vertices(); !slices.Equal(got, tt.wantVerts) {
				t.Errorf("vertices = %v, want %v", got, tt.wantVerts)
			}
			if got := g.Size(); got != tt.wantEdges {
				t.Errorf("edges = %d, want %d", got, tt.wantEdges)
			}
		})
	}
}

func TestBuildGraphLiteralScenario(t *testing.T) {
	// The "aaa"/"aaa" case spelled out edge by edge.
	g, err := BuildGraph("aaa", "aaa")
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	wantEdges := []graph.Edge[Pos]{
		{From: Pos{0, 0}, To: Pos{0, 1}},
		{From: Pos{0, 0}, To: Pos{1, 0}},
		{From: Pos{0, 1}, To: Pos{1, 0}},
		{From: Pos{0, 1}, To: Pos{1, 1}},
		{From: Pos{1, 0}, To: Pos{1, 1}},
	}
	if got := g.Edges(); !slices.Equal(got, wantEdges) {
		t.Errorf("edges = %v, want %v", got, wantEdges)
	}

	// The single compatible pair.
	if adj, _ := g.AreAdjacent(Pos{0, 0}, Pos{1, 1}); adj {
		t.Error("(0,0) and (1,1) must be compatible")
	}

	if comps := g.ConnectedComponents(); len(comps) != 1 {
		t.Errorf("components = %d, want 1", len(comps))
	}
}

func TestConflicts(t *testing.T) {
	tests := []struct {
		name string
		p, q Pos
		want bool
	}{
		{name: "SameASameB", p: Pos{2, 3}, q: Pos{2, 3}, want: false},
		{name: "SameADifferentB", p: Pos{2, 3}, q: Pos{2, 5}, want: true},
		{name: "ConsecutiveAConsecutiveB", p: Pos{2, 3}, q: Pos{3, 4}, want: false},
		{name: "ConsecutiveANonConsecutiveB", p: Pos{2, 3}, q: Pos{3, 6}, want: true},
		{name: "FarApartDisjointB", p: Pos{0, 0}, q: Pos{5, 7}, want: false},
		{name: "FarApartOverlappingB", p: Pos{0, 4}, q: Pos{5, 5}, want: true},
		{name: "FarApartSameB", p: Pos{0, 4}, q: Pos{5, 4}, want: true},
		{name: "FarApartAdjacentBelow", p: Pos{0, 4}, q: Pos{5, 3}, want: true},
		{name: "FarApartTwoApart", p: Pos{0, 4}, q: Pos{5, 2}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Conflicts(tt.p, tt.q); got != tt.want {
				t.Errorf("Conflicts(%v, %v) = %v, want %v", tt.p, tt.q, got, tt.want)
			}
			// The predicate is symmetric by construction.
			if got := Conflicts(tt.q, tt.p); got != tt.want {
				t.Errorf("Conflicts(%v, %v) = %v, want %v", tt.q, tt.p, got, tt.want)
			}
		})
	}
}

func TestDiagonalFirst(t *testing.T) {
	in := []Pos{{1, 2}, {0, 0}, {3, 1}, {2, 2}, {4, 4}}
	got := DiagonalFirst(in)
	want := []Pos{{0, 0}, {2, 2}, {4, 4}, {1, 2}, {3, 1}}
	if !slices.Equal(got, want) {
		t.Errorf("DiagonalFirst = %v, want %v", got, want)
	}

	// Input untouched.
	if !slices.Equal(in, []Pos{{1, 2}, {0, 0}, {3, 1}, {2, 2}, {4, 4}}) {
		t.Errorf("input mutated: %v", in)
	}
}
