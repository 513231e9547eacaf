package tui

import (
	"fmt"
	"time"

	"github.com/vovakirdan/huehunt/internal/core"
	"github.com/vovakirdan/huehunt/internal/game"
)

const title = "H U E   H U N T"

// Countdown thresholds for the HUD time color.
const (
	timeWarn     = 10
	timeCritical = 5
)

// timeColor returns the HUD color for the seconds left.
func timeColor(seconds int) core.Color {
	switch {
	case seconds <= timeCritical:
		return core.ColorBrightRed
	case seconds <= timeWarn:
		return core.ColorYellow
	default:
		return core.ColorBrightGreen
	}
}

// draw renders the current phase into s.
func (m Model) draw(s *core.Screen) {
	s.Clear()
	drawTitle(s)

	switch st := m.session.State().(type) {
	case game.Start:
		m.drawStart(s)
	case game.Playing:
		m.drawPlaying(s, st)
	case game.GameOver:
		m.drawGameOver(s, st)
	}
}

// drawTitle paints the title with one hue per letter.
func drawTitle(s *core.Screen) {
	runes := []rune(title)
	x := (s.Width() - len(runes)) / 2
	for i, r := range runes {
		hue := core.HSL{H: float64(i) * 360 / float64(len(runes)), S: 80, L: 60}
		s.DrawTextColor(x+i, 0, string(r), hue.Color())
	}
}

func (m Model) drawStart(s *core.Screen) {
	y := 2
	lines := []string{
		"One tile is a slightly different shade.",
		"Find it before the time runs out.",
		"",
		fmt.Sprintf("You start with %ds. A hit adds %ds, a miss costs %ds.", game.StartTime, game.TimeBonus, game.TimePenalty),
		"The grid grows and the shades get closer every level.",
	}
	for _, line := range lines {
		s.DrawTextCentered(y, line, core.ColorWhite)
		y++
	}

	// Sample swatches getting closer in lightness
	y++
	base := core.HSL{H: 200, S: 70, L: 50}
	const swatches = 5
	w := m.display.TileWidth
	total := swatches*w + (swatches-1)*core.Max(1, m.display.GapX)
	x := (s.Width() - total) / 2
	for i := 0; i < swatches; i++ {
		shade := base.WithLightness(base.L + game.Delta(1+i*10))
		r := core.NewRect(x+i*(w+core.Max(1, m.display.GapX)), y, w, m.display.TileHeight)
		s.FillRect(r, shade.Color())
	}
	y += m.display.TileHeight + 1

	s.DrawTextCentered(y, "Press Enter or click to start", core.ColorBrightCyan)
}

func (m Model) drawHUD(s *core.Screen, score, level, timeLeft int) {
	parts := []struct {
		text  string
		color core.Color
	}{
		{fmt.Sprintf("Score %d", score), core.ColorBrightWhite},
		{"   ", core.ColorDefault},
		{fmt.Sprintf("Level %d", level), core.ColorBrightWhite},
		{"   ", core.ColorDefault},
		{fmt.Sprintf("Time %2ds", timeLeft), timeColor(timeLeft)},
	}

	width := 0
	for _, p := range parts {
		width += core.TextWidth(p.text)
	}
	x := (s.Width() - width) / 2
	for _, p := range parts {
		s.DrawTextColor(x, 1, p.text, p.color)
		x += core.TextWidth(p.text)
	}
}

func (m Model) drawPlaying(s *core.Screen, p game.Playing) {
	m.drawHUD(s, p.Stats.Score, p.Stats.Level, p.TimeLeft)

	board, visible := m.board(p.GridSize())
	if !visible {
		_, areaH := m.boardArea()
		need := board.bounds.Bottom() + boardGap + m.screen.Height() - areaH
		s.DrawTextCentered(boardTop+1, "Window too small", core.ColorOrange)
		s.DrawTextCentered(boardTop+2,
			fmt.Sprintf("need %dx%d, have %dx%d", board.bounds.W, need, m.screen.Width(), m.screen.Height()),
			core.ColorGray)
		s.DrawTextCentered(boardTop+3, "The clock is still running!", core.ColorGray)
		return
	}

	cursorGlyph := m.display.CursorGlyph
	if cursorGlyph == "" {
		cursorGlyph = "◆"
	}
	for tile := 0; tile < p.Level.TileCount(); tile++ {
		color := p.Level.ColorAt(tile)
		r := board.TileRect(tile)
		s.FillRect(r, color.Color())

		if _, shaking := m.shakes[tile]; shaking {
			for y := r.Y; y < r.Bottom(); y++ {
				for x := r.X; x < r.Right(); x++ {
					s.DrawTextColor(x, y, "╳", core.ColorBrightRed)
				}
			}
		}

		if tile == m.cursor {
			cx, cy := r.Center()
			s.DrawTextColor(cx, cy, cursorGlyph, color.Contrast())
		}
	}
}

func (m Model) drawGameOver(s *core.Screen, over game.GameOver) {
	stats := over.Stats
	y := 2
	s.DrawTextCentered(y, "TIME'S UP!", core.ColorBrightRed)
	y += 2

	s.DrawTextCentered(y, fmt.Sprintf("Score %d   Level %d", stats.Score, stats.Level), core.ColorBrightWhite)
	y++
	s.DrawTextCentered(y,
		fmt.Sprintf("Played %s   %.1f picks/min", stats.Duration().Round(time.Second), stats.PicksPerMinute()),
		core.ColorGray)
	y += 2

	// Base and target of the last round side by side
	last := over.Last
	boxW := core.Max(12, m.display.TileWidth*3)
	boxH := m.display.TileHeight + 2
	gap := 4
	x := (s.Width() - 2*boxW - gap) / 2
	swatches := []struct {
		label string
		color core.HSL
	}{
		{"base", last.Base},
		{"odd one", last.Target},
	}
	for i, sw := range swatches {
		box := core.NewRect(x+i*(boxW+gap), y, boxW, boxH)
		s.DrawBox(box, core.ColorDarkGray)
		s.FillRect(box.Inset(1), sw.color.Color())
		s.DrawTextColor(box.X+(boxW-core.TextWidth(sw.label))/2, box.Bottom(), sw.label, core.ColorGray)
		label := sw.color.String()
		s.DrawTextColor(box.X+(boxW-core.TextWidth(label))/2, box.Bottom()+1, label, core.ColorWhite)
	}
	y += boxH + 3

	s.DrawTextCentered(y, fmt.Sprintf("lightness difference %.1f%%", last.Delta), core.ColorGray)
	y += 2
	s.DrawTextCentered(y, "Press Enter or click to play again", core.ColorBrightCyan)
}
