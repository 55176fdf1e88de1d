// Package t2048 implements the 2048 sliding-tile puzzle: the board with its
// pairwise collapse rule, bounded-retry spawning and game-over detection,
// plus the adapter that lets the platform drive and draw it.
package t2048

import (
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Registry IDs.
const (
	ID     = "2048"
	IDFull = "2048_full"
)

// Game adapts a Board to the registry.Game interface.
type Game struct {
	id    string
	force *Compaction // overrides board.compaction from config
	cfg   config.T2048Config
	board *Board
	tick  uint64

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool

	configErr error // last config load failure; defaults were used
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the YAML file Reset loads. Empty means the default
// search order.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a game whose compaction comes from config.
func New() *Game {
	return &Game{id: ID}
}

// NewFull creates a game that always uses full compaction.
func NewFull() *Game {
	full := CompactionFull
	return &Game{id: IDFull, force: &full}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
	registry.Register(IDFull, func() registry.Game {
		return NewFull()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.id == IDFull {
		return "2048 (Full Compaction)"
	}
	return "2048"
}

// Reset loads config and starts a fresh board seeded from cfg.Seed.
// A config that fails to load is replaced by the defaults and reported
// through ConfigErr.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.Load2048(configPath)
	if err != nil {
		gameCfg = config.Default2048Config()
	}
	g.ResetWithConfig(cfg, gameCfg)
	g.configErr = err
}

// ConfigErr returns the error of the last config load by Reset, if any.
func (g *Game) ConfigErr() error {
	return g.configErr
}

// ResetWithConfig starts a fresh board using an already loaded config.
func (g *Game) ResetWithConfig(cfg core.RuntimeConfig, gameCfg config.T2048Config) {
	g.cfg = gameCfg
	g.configErr = nil
	g.tick = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	compaction, err := ParseCompaction(gameCfg.Board.Compaction)
	if err != nil {
		compaction = CompactionSinglePass
	}
	if g.force != nil {
		compaction = *g.force
	}

	attempts := gameCfg.Board.SpawnAttempts
	if attempts <= 0 {
		attempts = DefaultSpawnAttempts
	}

	g.board = NewBoard(
		WithSource(NewSource(cfg.Seed)),
		WithSpawnAttempts(attempts),
		WithCompaction(compaction),
	)

	g.checkScreenSize()
}

// Resize adapts to new terminal dimensions without touching the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step applies the frame's actions in arrival order. Every directional
// action is one complete move, so several presses queued between two
// ticks are all honored before the next render.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	moves := 0
	for _, a := range in.Actions {
		if a == core.ActionPause {
			if !g.board.Terminal() {
				g.paused = !g.paused
			}
			continue
		}

		dir, ok := directionForAction(a)
		if !ok || g.paused || g.board.Terminal() {
			continue
		}
		g.board.Move(dir)
		moves++
	}

	return core.StepResult{State: g.State(), Moves: moves}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.board.Score(),
		GameOver: g.board.Terminal(),
		Paused:   g.paused || g.tooSmall,
	}
}
