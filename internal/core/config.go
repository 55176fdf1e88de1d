package core

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // columns available to the game
	ScreenH  int   // rows available to the game
	TickRate int   // input drains per second
	Seed     int64 // spawn RNG seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns an 80x24 screen at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the platform-facing summary of a game.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool // paused by the player or by a too-small window
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
	Moves int // directional moves applied during the tick
}
