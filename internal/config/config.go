// Package config provides YAML-based configuration loading for the 2048
// board and its terminal renderer.
package config

import "errors"

// ErrInvalidConfig wraps every validation failure reported by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Compaction mode names accepted in board.compaction.
const (
	CompactionSinglePass = "single_pass"
	CompactionFull       = "full"
)

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Board  BoardConfig  `yaml:"board"`
	Render RenderConfig `yaml:"render"`
}

// BoardConfig defines board mechanics.
type BoardConfig struct {
	// SpawnAttempts bounds the random placement retries of a spawn pass.
	// Running out of attempts ends the game.
	SpawnAttempts int `yaml:"spawn_attempts"`

	// Compaction selects CompactionSinglePass or CompactionFull.
	Compaction string `yaml:"compaction"`
}

// RenderConfig defines tile colors for the terminal renderer.
type RenderConfig struct {
	EmptyColor string         `yaml:"empty_color"`
	Palette    map[int]string `yaml:"palette"`  // tile value -> color name
	Fallback   string         `yaml:"fallback"` // color for values missing from the palette
}
