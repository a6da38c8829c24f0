package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagLimit       int
	flagClearScores bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores and overall statistics.

Examples:
  t2048 scores
  t2048 scores --limit 25
  t2048 scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", storage.DefaultLimit, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClearScores {
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Fprintln(out, "All scores cleared.")
		return nil
	}

	scores, err := store.TopScores(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	stats, err := store.Stats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	printScores(out, scores, stats)
	return nil
}

// printScores writes the score table and a stats summary.
func printScores(out io.Writer, scores []storage.ScoreEntry, stats storage.Stats) {
	fmt.Fprintln(out, "High Scores - 2048")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 't2048' to set the first high score!")
		return
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-9s  %-6s  %-12s  %s\n", "Rank", "Score", "Tile", "Result", "Moves", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-9s  %-6s  %-12s  %s\n", "----", "-----", "----", "------", "-----", "------", "----")

	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "local"
		}
		fmt.Fprintf(out, "  %-4d  %-8d  %-6d  %-9s  %-6d  %-12s  %s\n",
			i+1, e.Score, e.MaxTile, e.Outcome, e.Moves, player, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Games: %d  Wins: %d  Best: %d  Best tile: %d  Average: %.0f\n",
		stats.GamesCount, stats.Wins, stats.HighScore, stats.BestTile, stats.AvgScore)
}
