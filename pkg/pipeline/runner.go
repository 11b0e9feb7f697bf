package pipeline

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/anagraph/anagraph/pkg/align"
	"github.com/anagraph/anagraph/pkg/cache"
	"github.com/anagraph/anagraph/pkg/dict"
	"github.com/anagraph/anagraph/pkg/graph"
	"github.com/anagraph/anagraph/pkg/mis"
	"github.com/anagraph/anagraph/pkg/observability"
	"github.com/anagraph/anagraph/pkg/score"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store results. Multiple goroutines can safely share one Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Close releases the runner's cache resources.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

// ScorePair runs the complete build → solve → score pipeline for one word
// pair, with caching.
//
// A timed-out search propagates mis.ErrSearchTimeout; deciding whether a
// pair is "too expensive to score" is the caller's policy.
func (r *Runner) ScorePair(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{RunID: uuid.NewString()}
	key := cache.ScoreKey(opts.WordA, opts.WordB)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var cached score.Score
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "score")
				result.Score = cached
				result.CacheHit = true
				opts.Logger.Debug("score cache hit", "a", opts.WordA, "b", opts.WordB)
				return result, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "score")
	}

	// Stage 1: Build
	buildStart := time.Now()
	g, err := align.BuildGraph(opts.WordA, opts.WordB)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.Vertices = g.Order()
	result.Stats.Edges = g.Size()
	result.Stats.Components = len(g.ConnectedComponents())
	observability.Solver().OnBuildComplete(ctx, g.Order(), g.Size(), result.Stats.BuildTime)

	opts.Logger.Debug("built conflict graph",
		"a", opts.WordA,
		"b", opts.WordB,
		"vertices", g.Order(),
		"edges", g.Size(),
		"components", result.Stats.Components,
		"duration", result.Stats.BuildTime)

	// Stage 2: Solve
	solveStart := time.Now()
	observability.Solver().OnSolveStart(ctx, g.Order(), g.Size())
	set, err := mis.MaximumIndependentSet(ctx, g, mis.Options[align.Pos]{
		Budget:   opts.Budget,
		Ordering: r.ordering(opts),
	})
	result.Stats.SolveTime = time.Since(solveStart)
	observability.Solver().OnSolveComplete(ctx, len(set), result.Stats.SolveTime, err)
	if err != nil {
		return nil, fmt.Errorf("solve %q/%q: %w", opts.WordA, opts.WordB, err)
	}

	for _, p := range set {
		result.Set = append(result.Set, p.String())
	}

	// Stage 3: Score
	result.Score = score.New(opts.WordA, opts.WordB, len(set))

	opts.Logger.Debug("solved",
		"set_size", len(set),
		"similarity", result.Score.Similarity,
		"duration", result.Stats.SolveTime)

	if data, err := json.Marshal(result.Score); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.DefaultTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "score", len(data))
		}
	}

	return result, nil
}

// BuildGraph constructs the conflict graph for the pair without solving.
// Used by callers that only want to inspect or render the graph.
func (r *Runner) BuildGraph(opts Options) (*graph.Graph[align.Pos], error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return align.BuildGraph(opts.WordA, opts.WordB)
}

// ScanDict scores the subject word against every word in the list.
//
// Pairs whose search exceeds the budget are skipped and reported in
// ScanResult.TimedOut rather than failing the scan; any other error stops
// the scan. Context cancellation stops the scan between pairs.
func (r *Runner) ScanDict(ctx context.Context, subject string, list *dict.List, opts Options) (*ScanResult, error) {
	out := &ScanResult{}
	for _, word := range list.Words() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if word == subject {
			continue
		}

		pair := opts
		pair.WordA = subject
		pair.WordB = word
		pair.validated = false

		res, err := r.ScorePair(ctx, pair)
		if stderrors.Is(err, mis.ErrSearchTimeout) {
			r.Logger.Warn("pair too expensive to score, skipping", "word", word)
			out.TimedOut = append(out.TimedOut, word)
			continue
		}
		if err != nil {
			return nil, err
		}
		out.Scores = append(out.Scores, res.Score)
	}

	sort.SliceStable(out.Scores, func(i, j int) bool {
		return out.Scores[i].Similarity > out.Scores[j].Similarity
	})
	return out, nil
}

// ordering maps the ordering name to the solver's ordering function.
func (r *Runner) ordering(opts Options) func([]align.Pos) []align.Pos {
	if opts.Ordering == OrderingDiagonal {
		return align.DiagonalFirst
	}
	return nil
}
