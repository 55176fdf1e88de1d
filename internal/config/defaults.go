package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var default2048YAML []byte

// Default2048Config returns the built-in 2048 configuration.
func Default2048Config() T2048Config {
	return T2048Config{
		Board: BoardConfig{
			SpawnAttempts: 2000,
			Compaction:    CompactionSinglePass,
		},
		Render: RenderConfig{
			EmptyColor: "gray",
			Fallback:   "bright_magenta",
			Palette: map[int]string{
				2:    "white",
				4:    "bright_white",
				8:    "yellow",
				16:   "orange",
				32:   "bright_red",
				64:   "red",
				128:  "bright_yellow",
				256:  "bright_green",
				512:  "green",
				1024: "bright_cyan",
				2048: "cyan",
			},
		},
	}
}
