// Package pipeline provides the core scoring pipeline for Anagraph.
//
// This package implements the complete build → solve → score pipeline used
// by both the CLI and the HTTP API. Centralizing it keeps behavior
// consistent across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Build: Construct the conflict graph for a word pair
//  2. Solve: Find the maximum independent set per connected component
//  3. Score: Turn the set size into a similarity score
//
// # Usage
//
// Create a Runner and score a pair:
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{WordA: "listen", WordB: "silent"}
//	result, err := runner.ScorePair(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Score.Similarity)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/anagraph/anagraph/pkg/errors"
	"github.com/anagraph/anagraph/pkg/mis"
	"github.com/anagraph/anagraph/pkg/score"
)

// Ordering algorithm names.
const (
	// OrderingDiagonal fronts diagonal alignment positions, which tend to
	// chain and tighten the solver's incumbent early.
	OrderingDiagonal = "diagonal"

	// OrderingInsertion keeps the builder's vertex order.
	OrderingInsertion = "insertion"
)

// DefaultOrdering is the default ordering algorithm.
const DefaultOrdering = OrderingDiagonal

// DefaultBudget is the default per-component search budget.
const DefaultBudget = mis.DefaultBudget

// ValidOrderings is the set of supported ordering algorithms.
var ValidOrderings = map[string]bool{
	OrderingDiagonal:  true,
	OrderingInsertion: true,
}

// ValidateOrdering checks that an ordering algorithm name is valid.
func ValidateOrdering(ordering string) error {
	if !ValidOrderings[ordering] {
		return fmt.Errorf("invalid ordering: %q (must be one of: diagonal, insertion)", ordering)
	}
	return nil
}

// Options contains all configuration for the scoring pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// WordA and WordB are the pair to score.
	WordA string `json:"word_a"`
	WordB string `json:"word_b"`

	// Budget is the wall-clock limit for each component's search.
	// Zero means DefaultBudget.
	Budget time.Duration `json:"budget,omitempty"`

	// Ordering selects the solver's vertex ordering. Empty means diagonal.
	Ordering string `json:"ordering,omitempty"`

	// Refresh bypasses the cache and recomputes.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidateWord(o.WordA); err != nil {
		return err
	}
	if err := errors.ValidateWord(o.WordB); err != nil {
		return err
	}
	if o.Budget == 0 {
		o.Budget = DefaultBudget
	}
	if o.Ordering == "" {
		o.Ordering = DefaultOrdering
	}
	if err := ValidateOrdering(o.Ordering); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this pipeline execution.
	RunID string `json:"run_id"`

	// Score is the scored word pair.
	Score score.Score `json:"score"`

	// Set is the maximum independent set, formatted as "(i,j)" labels.
	Set []string `json:"set,omitempty"`

	// Stats contains timing and size information.
	Stats Stats `json:"stats"`

	// CacheHit reports whether the score came from cache.
	CacheHit bool `json:"cache_hit"`
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Vertices   int           `json:"vertices"`
	Edges      int           `json:"edges"`
	Components int           `json:"components"`
	BuildTime  time.Duration `json:"build_time"`
	SolveTime  time.Duration `json:"solve_time"`
}

// ScanResult contains the outputs of a dictionary scan.
type ScanResult struct {
	// Scores holds one entry per scored word, ordered by descending
	// similarity; ties keep dictionary order.
	Scores []score.Score `json:"scores"`

	// TimedOut lists words whose pair search exceeded the budget and was
	// skipped. Skipping is scan policy, not solver policy - the solver
	// itself never returns partial results.
	TimedOut []string `json:"timed_out,omitempty"`
}
