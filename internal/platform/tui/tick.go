// Package tui provides the Bubble Tea integration for Hue Hunt.
// It handles the terminal UI loop, input mapping, rendering and SSH serving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/huehunt/internal/game"
)

// ClockTickMsg is one second of the game countdown.
// It carries the ID of the countdown that scheduled it so ticks from a
// replaced game are dropped by the session.
type ClockTickMsg struct {
	ID   game.ClockID
	Time time.Time
}

// clockCmd schedules the next countdown tick.
func clockCmd(id game.ClockID) tea.Cmd {
	return tea.Tick(game.TickInterval, func(t time.Time) tea.Msg {
		return ClockTickMsg{ID: id, Time: t}
	})
}

// shakeDoneMsg ends the shake of one tile.
type shakeDoneMsg struct {
	Tile  int
	Token uint64
}

// shakeCmd clears a tile shake after d.
func shakeCmd(tile int, token uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return shakeDoneMsg{Tile: tile, Token: token}
	})
}
