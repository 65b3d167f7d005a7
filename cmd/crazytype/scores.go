package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crazytype/internal/platform/tui"
	"github.com/vovakirdan/crazytype/internal/registry"
	"github.com/vovakirdan/crazytype/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [timer|endless]",
	Short: "Show the best runs for a mode",
	Long: `Display the best runs and personal records for the given mode
(timer when omitted).

Examples:
  crazytype scores
  crazytype scores endless --limit 20
  crazytype scores --tui
  crazytype scores endless --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse all modes in the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every stored score, run and record of the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	mode := ""
	if len(args) > 0 {
		mode = args[0]
	}
	gameID, err := resolveMode(mode)
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagScoresTUI {
		cfg := runtimeConfig()
		if _, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH); err != nil {
			fail("running scoreboard: %v", err)
		}
		return
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Cleared all scores for %s.\n", registry.Title(gameID))
		return
	}

	if err := printScores(store, gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID string) error {
	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", registry.Title(gameID))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'crazytype play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-4s  %-4s  %-6s  %-5s  %s\n", "Rank", "Score", "WPM", "Acc", "Streak", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-4s  %-4s  %-6s  %-5s  %s\n", "----", "-----", "---", "---", "------", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-4d  %-4s  %-6d  %-5d  %s\n",
			i+1, r.Score, r.WPM, fmt.Sprintf("%d%%", r.Accuracy), r.LongestStreak, r.Level,
			r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	records, err := store.Records(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d   Longest streak: %d\n",
		records[storage.RecordHighScore], records[storage.RecordLongestStreak])
	return nil
}
