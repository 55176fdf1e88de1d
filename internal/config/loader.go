package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Load2048 loads the 2048 configuration.
// Search order: customPath -> ~/.t2048/config.yaml -> ./configs/t2048.yaml -> embedded default.
// Files are decoded over the defaults, so a file may set only the keys it cares about.
// Only a broken customPath is reported; the other locations fall through silently.
func Load2048(customPath string) (T2048Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default2048Config(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse2048(data)
		if err != nil {
			return Default2048Config(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse2048(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "t2048.yaml")); err == nil {
		if cfg, err := Parse2048(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse2048(default2048YAML)
	if err != nil {
		return Default2048Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse2048 decodes YAML over the defaults and validates the result.
func Parse2048(data []byte) (T2048Config, error) {
	cfg := Default2048Config()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Board.Compaction == "" {
		cfg.Board.Compaction = CompactionSinglePass
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks value ranges and names.
func (c T2048Config) Validate() error {
	if c.Board.SpawnAttempts <= 0 {
		return fmt.Errorf("%w: board.spawn_attempts must be positive, got %d", ErrInvalidConfig, c.Board.SpawnAttempts)
	}

	switch c.Board.Compaction {
	case CompactionSinglePass, CompactionFull:
	default:
		return fmt.Errorf("%w: board.compaction %q (want %q or %q)",
			ErrInvalidConfig, c.Board.Compaction, CompactionSinglePass, CompactionFull)
	}

	for _, name := range []string{c.Render.EmptyColor, c.Render.Fallback} {
		if name == "" {
			continue
		}
		if _, ok := core.ParseColor(name); !ok {
			return fmt.Errorf("%w: unknown color %q", ErrInvalidConfig, name)
		}
	}

	for value, name := range c.Render.Palette {
		if value < 2 || value&(value-1) != 0 {
			return fmt.Errorf("%w: render.palette key %d is not a power of two", ErrInvalidConfig, value)
		}
		if _, ok := core.ParseColor(name); !ok {
			return fmt.Errorf("%w: render.palette[%d]: unknown color %q", ErrInvalidConfig, value, name)
		}
	}

	return nil
}

// TileColor resolves the color for a tile value; 0 is the empty cell.
func (c RenderConfig) TileColor(value int) core.Color {
	name := c.Fallback
	if value == 0 {
		name = c.EmptyColor
	} else if n, ok := c.Palette[value]; ok {
		name = n
	}
	color, _ := core.ParseColor(name)
	return color
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".t2048", filename)
}
