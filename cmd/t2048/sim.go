package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var (
	flagMoves   string
	flagSimMode string
	flagQuiet   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a move script without a UI",
	Long: `Play a scripted sequence of moves and print the board.

Moves are the letters L, R, U and D (case-insensitive); spaces and
commas are ignored. Use --seed for reproducible spawns.

Examples:
  t2048 sim --moves LLURD --seed 42
  t2048 sim --moves "l,l,u,r" --mode 2048_full --quiet`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagMoves, "moves", "", "Move script, e.g. LLURD")
	simCmd.Flags().StringVar(&flagSimMode, "mode", t2048.ID, "Game mode")
	simCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Only print the final board")
}

func runSim(cmd *cobra.Command, _ []string) error {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return simulate(cmd.OutOrStdout(), flagSimMode, seed, flagMoves, flagQuiet, gameCfg)
}

// simulate plays script on a fresh game and writes the boards to w.
func simulate(w io.Writer, gameID string, seed int64, script string, quiet bool, cfg config.T2048Config) error {
	dirs, err := t2048.ParseMoves(script)
	if err != nil {
		return fmt.Errorf("invalid --moves: %w", err)
	}

	created, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	game, ok := created.(*t2048.Game)
	if !ok {
		return fmt.Errorf("mode %q cannot be simulated", gameID)
	}

	rc := core.DefaultConfig()
	rc.Seed = seed
	game.ResetWithConfig(rc, cfg)

	if !quiet {
		fmt.Fprintf(w, "start (seed %d, %s)\n", seed, game.Snapshot().Mode)
		printSnapshot(w, game.Snapshot())
	}

	for i, d := range dirs {
		in := core.NewInputFrame()
		in.Set(t2048.ActionFor(d))
		game.Step(in)

		if !quiet {
			fmt.Fprintf(w, "\nmove %d: %s\n", i+1, d)
			printSnapshot(w, game.Snapshot())
		}
	}

	if quiet {
		printSnapshot(w, game.Snapshot())
	}
	return nil
}

func printSnapshot(w io.Writer, snap t2048.Snapshot) {
	fmt.Fprintln(w, t2048.FormatValues(snap.Board))
	fmt.Fprintf(w, "score %d  max %d  moves %d  state %s\n", snap.Score, snap.MaxTile, snap.Moves, snap.State)
}
