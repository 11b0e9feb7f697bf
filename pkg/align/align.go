// Package align builds conflict graphs from word pairs.
//
// Given two words A and B, every position pair (i, j) where the two-rune
// windows A[i:i+2] and B[j:j+2] match is a candidate alignment. Two
// candidates conflict when they cannot both be part of one consistent
// alignment of A onto B; the conflict graph has an edge for every such
// pair. The largest set of pairwise non-conflicting candidates - the
// maximum independent set of this graph - is the best alignment and drives
// the anagram-likeness score.
package align

import (
	"fmt"

	"github.com/anagraph/anagraph/pkg/graph"
)

// Pos is a candidate alignment: the two-rune window starting at A[Pos.A]
// matches the one starting at B[Pos.B]. Using a composite key instead of a
// formatted string keeps vertex names unambiguous.
type Pos struct {
	A int
	B int
}

// Diagonal reports whether the window sits at equal offsets in both words.
// Diagonal candidates tend to extend into long compatible chains, which is
// why the solver ordering heuristic fronts them.
func (p Pos) Diagonal() bool { return p.A == p.B }

// String renders the position pair for labels and logs.
func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.A, p.B) }

// BuildGraph constructs the conflict graph for words a and b.
//
// Vertex enumeration is O(len(a)·len(b)); edge construction evaluates the
// conflict predicate for every vertex pair and dominates at O(V²). Words
// with no shared two-rune window produce a valid empty graph.
func BuildGraph(a, b string) (*graph.Graph[Pos], error) {
	ra, rb := []rune(a), []rune(b)

	var verts []Pos
	for i := 0; i+1 < len(ra); i++ {
		for j := 0; j+1 < len(rb); j++ {
			if ra[i] == rb[j] && ra[i+1] == rb[j+1] {
				verts = append(verts, Pos{A: i, B: j})
			}
		}
	}

	g, err := graph.New(verts)
	if err != nil {
		return nil, fmt.Errorf("build conflict graph: %w", err)
	}
	for x := 0; x < len(verts); x++ {
		for y := x + 1; y < len(verts); y++ {
			if Conflicts(verts[x], verts[y]) {
				if err := g.AddEdge(verts[x], verts[y]); err != nil {
					return nil, fmt.Errorf("add conflict edge: %w", err)
				}
			}
		}
	}
	return g, nil
}

// Conflicts reports whether two candidate alignments are mutually
// inconsistent. With p ordered before q by A-position, a conflict exists
// when any of these holds:
//
//  1. p.A == q.A but p.B != q.B: one A-position mapped to two B-positions.
//  2. p.A+1 == q.A but p.B+1 != q.B: consecutive A-positions must map to
//     consecutive B-positions.
//  3. p.A+1 < q.A but the B-windows {p.B, p.B+1} and {q.B, q.B+1} overlap:
//     far-apart A-positions would reuse B-positions.
//
// No edge means the two candidates may coexist in a valid alignment.
func Conflicts(p, q Pos) bool {
	if q.A < p.A {
		p, q = q, p
	}
	switch {
	case p.A == q.A:
		return p.B != q.B
	case p.A+1 == q.A:
		return p.B+1 != q.B
	default:
		// Windows overlap iff the B offsets are within one of each other.
		d := p.B - q.B
		return d >= -1 && d <= 1
	}
}

// DiagonalFirst returns the positions reordered so diagonal candidates come
// before all others, otherwise preserving relative order. The input slice
// is not modified.
func DiagonalFirst(ps []Pos) []Pos {
	out := make([]Pos, 0, len(ps))
	for _, p := range ps {
		if p.Diagonal() {
			out = append(out, p)
		}
	}
	for _, p := range ps {
		if !p.Diagonal() {
			out = append(out, p)
		}
	}
	return out
}
