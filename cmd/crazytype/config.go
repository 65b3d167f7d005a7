package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crazytype/internal/config"
)

var flagConfigCheck bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check the game configuration",
	Long: `Print the default configuration, ready to copy to
~/.crazytype/configs/crazytype.yaml. With --check, load the config the
game would use (honouring --config) and report whether it is valid.

Examples:
  crazytype config > ~/.crazytype/configs/crazytype.yaml
  crazytype config --check --config ./my-crazytype.toml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigCheck, "check", false, "Validate the effective configuration")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagConfigCheck {
		_, _ = os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if preset := config.ParsePreset(flagDifficulty); preset != "" {
		config.ApplyPreset(&cfg, preset)
	}
	fmt.Printf("Configuration OK: %d tiers, timer modes %v, %d lives\n",
		len(cfg.Tiers), cfg.Gameplay.TimerModes, cfg.Gameplay.MaxLives)
}
