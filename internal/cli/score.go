package cli

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/anagraph/anagraph/pkg/errors"
	"github.com/anagraph/anagraph/pkg/mis"
	"github.com/anagraph/anagraph/pkg/pipeline"
)

// scoreCommand creates the score command for scoring a single word pair.
func (c *CLI) scoreCommand() *cobra.Command {
	var (
		budget   time.Duration
		ordering string
		refresh  bool
		noCache  bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "score WORD_A WORD_B",
		Short: "Score the similarity of a word pair",
		Long: `Score the similarity of a word pair.

The score command builds the conflict graph over the pair's shared letter
bigrams, finds the maximum set of alignments that can coexist, and turns
the set size into a similarity in [0, 1].

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{
				WordA:    args[0],
				WordB:    args[1],
				Budget:   budget,
				Ordering: ordering,
				Refresh:  refresh,
				Logger:   c.Logger,
			}
			return c.runScore(cmd.Context(), opts, noCache, asJSON)
		},
	}

	cmd.Flags().DurationVar(&budget, "budget", c.Config.BudgetDuration(pipeline.DefaultBudget), "wall-clock limit per component search")
	cmd.Flags().StringVar(&ordering, "ordering", c.defaultOrdering(), "vertex ordering: diagonal (default), insertion")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if the pair is cached")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the full result as JSON")

	return cmd
}

// runScore executes the pipeline for one pair and prints the result.
func (c *CLI) runScore(ctx context.Context, opts pipeline.Options, noCache, asJSON bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Scoring %s / %s...", opts.WordA, opts.WordB))
	spinner.Start()

	result, err := runner.ScorePair(ctx, opts)
	if err != nil {
		spinner.StopWithError("Scoring failed")
		if stderrors.Is(err, mis.ErrSearchTimeout) {
			return errors.Wrap(errors.ErrCodeTimeout, err,
				"pair %q/%q exceeded the %s search budget", opts.WordA, opts.WordB, opts.Budget)
		}
		return err
	}
	spinner.Stop()

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printSuccess("%s %s %s", StyleValue.Render(opts.WordA), StyleDim.Render(iconArrow), StyleValue.Render(opts.WordB))
	printKeyValue("similarity", StyleNumber.Render(formatSimilarity(result.Score.Similarity)))
	printKeyValue("set size", fmt.Sprintf("%d", result.Score.SetSize))
	if len(result.Set) > 0 {
		printKeyValue("alignments", fmt.Sprintf("%v", result.Set))
	}
	printStats(result.Stats.Vertices, result.Stats.Edges, result.Stats.Components, result.CacheHit)
	printNewline()
	printNextStep("Inspect the conflict graph", fmt.Sprintf("anagraph graph %s %s", opts.WordA, opts.WordB))
	return nil
}

// defaultOrdering returns the config's ordering or the pipeline default.
func (c *CLI) defaultOrdering() string {
	if c.Config.Ordering != "" {
		return c.Config.Ordering
	}
	return pipeline.DefaultOrdering
}
