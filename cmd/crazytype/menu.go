package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/crazytype/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the mode picker menu",
	Long: `Start in interactive menu mode.

Pick a timer length or endless mode, toggle hot-seat play and the
difficulty, or open the high score table. After a game you return to
the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change hot-seat or difficulty
  Enter/Space     - Select
  Tab             - High scores
  Q               - Quit

Examples:
  crazytype menu
  crazytype menu --fps 30
  crazytype menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := tuiLogger()
	defer closeLog()

	store := openStore(flagDBPath)
	if store != nil {
		defer store.Close()
	}

	if err := tui.RunSession(loadServices(store, logger), runtimeConfig()); err != nil {
		fail("running menu: %v", err)
	}
}
