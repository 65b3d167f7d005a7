package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/crazytype/internal/platform/tui"
)

var (
	flagTimer   int
	flagHotseat bool
)

var playCmd = &cobra.Command{
	Use:   "play [timer|endless]",
	Short: "Play a game mode",
	Long: `Start playing the given mode (timer when omitted).

Controls:
  Letters      - Type the falling words
  Enter        - Start the session
  Esc/Ctrl+P   - Pause / resume
  Ctrl+D       - Toggle debug overlay
  Ctrl+S       - Save a screenshot
  Ctrl+C       - Quit

After game over:
  R  - Restart    E - Export summary as JSON
  B  - Back       Q - Quit

Difficulty options:
  easy   - Slower words
  normal - Default speeds
  hard   - Faster words
  fixed  - No level progression

Examples:
  crazytype play
  crazytype play --timer 120
  crazytype play endless --difficulty hard
  crazytype play --hotseat
  crazytype play --config ./my-crazytype.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagTimer, "timer", 0, "Timer length in seconds (default: first configured timer mode)")
	playCmd.Flags().BoolVar(&flagHotseat, "hotseat", false, "Two players alternate at the keyboard")
}

func runPlay(cmd *cobra.Command, args []string) {
	mode := ""
	if len(args) > 0 {
		mode = args[0]
	}
	gameID, err := resolveMode(mode)
	if err != nil {
		fail("%v", err)
	}
	if flagTimer < 0 {
		fail("--timer must be positive")
	}

	logger, closeLog := tuiLogger()
	defer closeLog()

	store := openStore(flagDBPath)
	if store != nil {
		defer store.Close()
	}

	svc := loadServices(store, logger)
	game, err := svc.NewGame(tui.Selection{
		GameID:      gameID,
		TimerLength: flagTimer,
		Hotseat:     flagHotseat,
	})
	if err != nil {
		fail("creating game: %v", err)
	}

	if err := tui.Run(game, svc, runtimeConfig()); err != nil {
		logger.Error("game failed", "error", err)
		fail("running game: %v", err)
	}
}
