package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crystal-run/internal/registry"
	"github.com/vovakirdan/crystal-run/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show the best runs for a mode",
	Long: `Display the best runs and totals for the specified mode.

Examples:
  crystalrun scores crystal
  crystalrun scores crystal-survival --limit 20
  crystalrun scores crystal --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all runs for the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'crystalrun list' to see available modes", gameID)
	}

	game, err := registry.Create(gameID, registry.Options{})
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearRuns(gameID); err != nil {
			return fmt.Errorf("clearing runs: %w", err)
		}
		fmt.Fprintf(out, "Cleared runs for %s.\n", game.Title())
		return nil
	}

	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Fprintf(out, "Best Runs - %s\n\n", game.Title())

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'crystalrun play %s' to set the first one!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-5s  %-7s  %s\n", "Rank", "Score", "Hits", "Time", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-5s  %-7s  %s\n", "----", "-----", "----", "----", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-6d  %-5d  %-7s  %s\n",
			i+1, r.Score, r.Hits, fmt.Sprintf("%.1fs", r.Duration), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  Runs: %d  Average: %.1f  Total hits: %d\n",
			stats.HighScore, stats.RunsCount, stats.AvgScore, stats.TotalHits)
	}
	return nil
}
