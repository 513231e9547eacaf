package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/huehunt/internal/core"
	"github.com/vovakirdan/huehunt/internal/game"
	"github.com/vovakirdan/huehunt/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Hue Hunt in this terminal",
	Long: `Start a local game.

Controls:
  Mouse click      - Pick a tile
  Arrows/hjkl      - Move the cursor
  Enter/Space      - Pick the tile under the cursor, or start a game
  ?                - Show all keys
  Q/Ctrl+C         - Quit

The game needs a terminal with mouse support for clicking; the keyboard
works everywhere.

Examples:
  huehunt play
  huehunt play --seed 42
  huehunt play --log-file ~/huehunt.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	// Get terminal size early so the first frame is laid out correctly
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	logger, closeLog, err := playLogger(appConfig.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	session := game.NewSession(rc.Seed)
	runErr := tui.Run(session, appConfig, rc, tui.Options{Logger: logger})

	// Close log before potential exit
	//nolint:errcheck // Best-effort close
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
