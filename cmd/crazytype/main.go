// crazytype is a falling-word typing game for the terminal.
//
// Usage:
//
//	crazytype list              - List game modes
//	crazytype play [mode]       - Play timer (default) or endless mode
//	crazytype menu              - Start the menu to pick a mode interactively
//	crazytype scores [mode]     - Show the best runs for a mode
//	crazytype serve             - Start SSH server for remote play
//	crazytype api               - Serve the leaderboard as JSON over HTTP
//	crazytype config            - Print or check the game configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.crazytype/scores.db)
//	--config <path>       - Use a custom YAML or TOML game config
//	--difficulty <preset> - easy, normal, hard or fixed
//	--words <path>        - Use a custom word list
//	--log-file <path>     - Write logs to a file while the TUI is running
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagWords      string
	flagLogFile    string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crazytype",
	Short: "CrazyType - type the falling words before they land",
	Long: `CrazyType is a terminal typing game. Words fall down the screen and
you destroy them by typing them. Missed words cost lives, streaks multiply
your score and power-ups (Double, Slow, Clear) drop from completed words.

Available commands:
  list     - Show the game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  scores   - View the best runs
  serve    - Start SSH server for remote play
  api      - Serve the leaderboard over HTTP
  config   - Print or check the game configuration

Examples:
  crazytype play
  crazytype play endless --difficulty hard
  crazytype play --timer 120 --hotseat
  crazytype menu --words ./my-words.txt
  crazytype serve --ssh :2222
  crazytype api --addr :8080`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.crazytype/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagWords, "words", "", "Path to a custom word list")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(configCmd)
}
