package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Tick    uint64
	Mode    string // compaction name
	Score   int
	Moves   int
	Board   [Size][Size]int
	MaxTile int
	Empty   int
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.board.Terminal():
		state = StateGameOver
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:    g.tick,
		Mode:    g.board.Compaction().String(),
		Score:   g.board.Score(),
		Moves:   g.board.Moves(),
		Board:   g.board.Values(),
		MaxTile: g.board.MaxTile(),
		Empty:   g.board.EmptyCount(),
		State:   state,
	}
}
