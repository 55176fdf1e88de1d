package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game",
	Long: `Start playing. Without a mode a selector offers Classic and Full
compaction.

Controls:
  Arrows/WASD/hjkl - Move
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Examples:
  t2048 play
  t2048 play 2048_full --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	// Get terminal size early for mode selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var gameID string
	if len(args) == 1 {
		gameID = args[0]
	} else {
		selected, err := tui.RunModeSelector(cfg)
		if err != nil {
			return fmt.Errorf("mode selector: %w", err)
		}
		if selected == "" {
			return nil
		}
		gameID = selected
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 't2048 list' to see available modes)", err)
	}

	logger.Debug("starting game", "game", gameID, "seed", cfg.Seed, "size", fmt.Sprintf("%dx%d", width, height))

	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
