package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/huehunt/internal/core"
)

// cellStyle is the color pair of a run of cells.
type cellStyle struct {
	fg core.Color
	bg core.Color
}

// styleFor builds the lipgloss style for a color pair.
func styleFor(r *lipgloss.Renderer, cs cellStyle) lipgloss.Style {
	style := r.NewStyle()
	if !cs.fg.IsDefault() {
		style = style.Foreground(lipgloss.Color(cs.fg))
	}
	if !cs.bg.IsDefault() {
		style = style.Background(lipgloss.Color(cs.bg))
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
// A nil renderer uses the lipgloss default renderer.
func RenderScreen(s *core.Screen, r *lipgloss.Renderer) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := make(map[cellStyle]lipgloss.Style)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.Fg, bg: cell.Bg}

			// Collect consecutive cells with same colors
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.Fg, bg: cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.fg.IsDefault() && start.bg.IsDefault() {
				sb.WriteString(run.String())
				continue
			}

			style, ok := styles[start]
			if !ok {
				style = styleFor(r, start)
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
