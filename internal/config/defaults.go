package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/huehunt.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It matches defaults/huehunt.yaml and is used if the embedded file is unusable.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			TileWidth:   4,
			TileHeight:  2,
			GapX:        1,
			GapY:        0,
			CursorGlyph: "◆",
		},
		Feedback: FeedbackConfig{
			ShakeDuration: 400 * time.Millisecond,
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
