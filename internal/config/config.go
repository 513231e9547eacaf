// Package config provides YAML-based configuration loading for the display,
// feedback effects, SSH server and logging. Game rules are fixed and live in
// the game package.
package config

import (
	"fmt"
	"time"
)

// Config contains all user-tunable settings.
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Feedback FeedbackConfig `yaml:"feedback"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
}

// DisplayConfig defines the board geometry in terminal cells.
type DisplayConfig struct {
	TileWidth   int    `yaml:"tile_width"`
	TileHeight  int    `yaml:"tile_height"`
	GapX        int    `yaml:"gap_x"`
	GapY        int    `yaml:"gap_y"`
	CursorGlyph string `yaml:"cursor_glyph"`
}

// FeedbackConfig defines transient effects.
type FeedbackConfig struct {
	ShakeDuration time.Duration `yaml:"shake_duration"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"` // Empty means ~/.huehunt/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig defines logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	d := c.Display
	if d.TileWidth < 2 {
		return fmt.Errorf("config: display.tile_width must be at least 2, got %d", d.TileWidth)
	}
	if d.TileHeight < 1 {
		return fmt.Errorf("config: display.tile_height must be at least 1, got %d", d.TileHeight)
	}
	if d.GapX < 0 || d.GapY < 0 {
		return fmt.Errorf("config: display gaps must not be negative, got %d/%d", d.GapX, d.GapY)
	}
	if len([]rune(d.CursorGlyph)) != 1 {
		return fmt.Errorf("config: display.cursor_glyph must be a single character, got %q", d.CursorGlyph)
	}

	if c.Feedback.ShakeDuration <= 0 {
		return fmt.Errorf("config: feedback.shake_duration must be positive, got %s", c.Feedback.ShakeDuration)
	}

	if c.Server.Address == "" {
		return fmt.Errorf("config: server.address must not be empty")
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("config: server.idle_timeout must not be negative, got %s", c.Server.IdleTimeout)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}

	return nil
}
