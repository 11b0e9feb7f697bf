package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/anagraph/anagraph/pkg/dict"
	"github.com/anagraph/anagraph/pkg/errors"
	"github.com/anagraph/anagraph/pkg/pipeline"
)

// scanCommand creates the scan command for scoring against a dictionary.
func (c *CLI) scanCommand() *cobra.Command {
	var (
		dictPath    string
		budget      time.Duration
		ordering    string
		top         int
		noCache     bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "scan SUBJECT",
		Short: "Score a word against every word in a dictionary",
		Long: `Score a word against every word in a dictionary.

The scan command runs the scoring pipeline for the subject against each
dictionary word and ranks the results by similarity. Pairs whose search
exceeds the budget are skipped and reported, not treated as failures.

With --interactive the ranked results open in a browsable list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dictPath == "" {
				dictPath = c.Config.Dict
			}
			if dictPath == "" {
				return errors.New(errors.ErrCodeInvalidInput, "no dictionary: pass --dict or set dict in the config file")
			}
			opts := pipeline.Options{
				Budget:   budget,
				Ordering: ordering,
				Logger:   c.Logger,
			}
			return c.runScan(cmd.Context(), args[0], dictPath, opts, top, noCache, interactive)
		},
	}

	cmd.Flags().StringVarP(&dictPath, "dict", "d", "", "dictionary file (one word per line)")
	cmd.Flags().DurationVar(&budget, "budget", c.Config.BudgetDuration(pipeline.DefaultBudget), "wall-clock limit per component search")
	cmd.Flags().StringVar(&ordering, "ordering", c.defaultOrdering(), "vertex ordering: diagonal (default), insertion")
	cmd.Flags().IntVarP(&top, "top", "n", 20, "number of results to show")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse results interactively")

	return cmd
}

// runScan loads the dictionary, scores the subject against it, and shows
// the ranked results.
func (c *CLI) runScan(ctx context.Context, subject, dictPath string, opts pipeline.Options, top int, noCache, interactive bool) error {
	list, err := dict.Load(dictPath)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "dictionary %s not found", dictPath)
		}
		return fmt.Errorf("load dictionary %s: %w", dictPath, err)
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Scanning %d words...", list.Len()))
	spinner.Start()

	result, err := runner.ScanDict(ctx, subject, list, opts)
	if err != nil {
		spinner.StopWithError("Scan failed")
		return fmt.Errorf("scan %q: %w", subject, err)
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Scored %d words", len(result.Scores)))

	for _, word := range result.TimedOut {
		printWarning("skipped %s (search budget exceeded)", word)
	}

	if interactive {
		final, err := tea.NewProgram(newScanBrowserModel(subject, result.Scores), tea.WithContext(ctx)).Run()
		if err != nil {
			return err
		}
		if m, ok := final.(scanBrowserModel); ok && m.Selected != nil {
			printNextStep("Inspect the pair", fmt.Sprintf("anagraph graph %s %s", subject, m.Selected.WordB))
		}
		return nil
	}

	printSuccess("Best matches for %s", StyleHighlight.Render(subject))
	limit := top
	if limit > len(result.Scores) {
		limit = len(result.Scores)
	}
	for i := 0; i < limit; i++ {
		s := result.Scores[i]
		fmt.Printf("  %s %-20s %s\n",
			StyleDim.Render(fmt.Sprintf("%2d.", i+1)),
			StyleValue.Render(s.WordB),
			StyleNumber.Render(formatSimilarity(s.Similarity)))
	}
	if limit < len(result.Scores) {
		printDetail("… and %d more (use --top or --interactive)", len(result.Scores)-limit)
	}
	return nil
}
