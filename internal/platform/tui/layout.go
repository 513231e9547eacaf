package tui

import (
	"github.com/vovakirdan/huehunt/internal/config"
	"github.com/vovakirdan/huehunt/internal/core"
)

// Screen rows around the board. The help footer is not part of the board
// area and is measured when drawn.
const (
	boardTop = 3 // Title, HUD, blank line
	boardGap = 1 // Blank line below the board
)

// boardLayout places the tiles of a size×size grid on the screen.
type boardLayout struct {
	size   int
	tileW  int
	tileH  int
	gapX   int
	gapY   int
	bounds core.Rect // Area covered by all tiles including inner gaps
}

// newBoardLayout centers a grid horizontally at boardTop.
func newBoardLayout(d config.DisplayConfig, size, screenW int) boardLayout {
	b := boardLayout{
		size:  size,
		tileW: d.TileWidth,
		tileH: d.TileHeight,
		gapX:  d.GapX,
		gapY:  d.GapY,
	}
	w := size*b.tileW + core.Max(0, size-1)*b.gapX
	h := size*b.tileH + core.Max(0, size-1)*b.gapY
	b.bounds = core.NewRect(core.Max(0, (screenW-w)/2), boardTop, w, h)
	return b
}

// Fits reports whether the whole board and the blank line below it fit an
// area of the given size.
func (b boardLayout) Fits(areaW, areaH int) bool {
	return b.bounds.W <= areaW && b.bounds.Bottom()+boardGap <= areaH
}

// TileRect returns the screen area of a tile (row-major index).
func (b boardLayout) TileRect(tile int) core.Rect {
	row, col := tile/b.size, tile%b.size
	return core.NewRect(
		b.bounds.X+col*(b.tileW+b.gapX),
		b.bounds.Y+row*(b.tileH+b.gapY),
		b.tileW,
		b.tileH,
	)
}

// TileAt maps a screen position to a tile index.
// Positions on gaps or outside the board map to no tile.
func (b boardLayout) TileAt(x, y int) (int, bool) {
	if b.size <= 0 || !b.bounds.Contains(x, y) {
		return -1, false
	}

	col := (x - b.bounds.X) / (b.tileW + b.gapX)
	row := (y - b.bounds.Y) / (b.tileH + b.gapY)
	if col >= b.size || row >= b.size {
		return -1, false
	}

	tile := row*b.size + col
	if !b.TileRect(tile).Contains(x, y) {
		return -1, false
	}
	return tile, true
}
