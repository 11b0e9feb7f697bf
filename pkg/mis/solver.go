// Package mis finds maximum independent sets with exact branch-and-bound.
//
// The search is exponential in the worst case; it is bounded by a
// wall-clock budget rather than by weakening the result. A completed solve
// always returns a set of provably maximum cardinality, and a solve that
// runs out of budget fails with [ErrSearchTimeout] instead of returning a
// partial answer.
//
// [MaximumIndependentSet] is the preferred entry point: it splits the graph
// into connected components and solves each piece separately, which is
// exact because no edge crosses components. [Solve] works on any graph but
// does no decomposition.
package mis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anagraph/anagraph/pkg/graph"
)

// ErrSearchTimeout is returned when the search exceeds its wall-clock
// budget. No best-effort result is attached; callers wanting one must
// decide their own recovery policy.
var ErrSearchTimeout = errors.New("independent-set search exceeded time budget")

// DefaultBudget is the wall-clock budget applied when Options.Budget is zero.
const DefaultBudget = 10 * time.Second

// deadlineCheckInterval is how many frame pops pass between deadline
// checks. Checking on every pop would dominate the cheap frames.
const deadlineCheckInterval = 100_000

// Options configures a solve. The zero value is usable.
type Options[V comparable] struct {
	// Budget is the wall-clock limit for the whole search.
	// Zero means DefaultBudget.
	Budget time.Duration

	// Ordering, when set, reorders the vertex pool before the search
	// starts. A good ordering fronts vertices likely to appear in large
	// independent sets, which tightens the incumbent early and prunes
	// harder. Nil keeps insertion order.
	Ordering func([]V) []V
}

// frame is one node of the explicit search stack: the set chosen so far
// and the ordered pool of vertices still eligible to join it.
type frame[V comparable] struct {
	chosen []V
	pool   []V
}

// Solve returns a maximum independent set of g.
//
// The search is iterative branch-and-bound over an explicit stack, so deep
// searches cannot exhaust the goroutine stack. Each popped frame is bound
// pruned: if even taking the whole pool cannot beat the incumbent, the
// frame dies. Otherwise the head of the pool is branched on - one child
// excludes it, one child includes it with the pool pruned of its neighbors.
//
// Returns ErrSearchTimeout if the budget runs out, or the context error if
// ctx is cancelled first. Deadline and cancellation are checked every
// 100 000 frame pops.
func Solve[V comparable](ctx context.Context, g *graph.Graph[V], opts Options[V]) ([]V, error) {
	budget := opts.Budget
	if budget == 0 {
		budget = DefaultBudget
	}
	deadline := time.Now().Add(budget)

	pool := g.Vertices()
	if opts.Ordering != nil {
		pool = opts.Ordering(pool)
	}

	var best []V
	stack := []frame[V]{{chosen: nil, pool: pool}}
	pops := 0

	for len(stack) > 0 {
		pops++
		if pops%deadlineCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if time.Now().After(deadline) {
				return nil, fmt.Errorf("%w after %s", ErrSearchTimeout, budget)
			}
		}

		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Even taking the entire pool cannot beat the incumbent.
		if len(f.chosen)+len(f.pool) <= len(best) {
			continue
		}
		if len(f.chosen) > len(best) {
			best = append(best[:0:0], f.chosen...)
		}
		if len(f.pool) == 0 {
			continue
		}

		first, rest := f.pool[0], f.pool[1:]

		// Exclude-first branch.
		stack = append(stack, frame[V]{chosen: f.chosen, pool: rest})

		// Include-first branch, if first is still compatible.
		adjacent, err := g.AdjacentToAny(first, f.chosen)
		if err != nil {
			return nil, err
		}
		if adjacent {
			continue
		}
		pruned, err := g.WithoutNeighborsOf(first, rest)
		if err != nil {
			return nil, err
		}
		if len(f.chosen)+1+len(pruned) > len(best) {
			chosen := make([]V, 0, len(f.chosen)+1)
			chosen = append(chosen, f.chosen...)
			chosen = append(chosen, first)
			stack = append(stack, frame[V]{chosen: chosen, pool: pruned})
		}
	}

	return best, nil
}

// MaximumIndependentSet returns a maximum independent set of g, possibly
// disconnected, by solving each connected component separately and
// concatenating the results. Since no edge crosses components, the union
// of per-component maxima is itself independent and no larger size is
// achievable, so the decomposition is exact, not a heuristic.
//
// The budget in opts applies to each component solve individually.
func MaximumIndependentSet[V comparable](ctx context.Context, g *graph.Graph[V], opts Options[V]) ([]V, error) {
	var result []V
	for _, component := range g.ConnectedComponents() {
		sub, err := g.InducedSubgraph(component)
		if err != nil {
			return nil, err
		}
		set, err := Solve(ctx, sub, opts)
		if err != nil {
			return nil, err
		}
		result = append(result, set...)
	}
	return result, nil
}
