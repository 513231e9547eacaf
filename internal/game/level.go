// Package game implements the Hue Hunt rules: level generation, the session
// state machine, its countdown clock and tile picks. It has no dependency on
// the terminal; the platform reads State and forwards events.
package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/huehunt/internal/core"
)

// Grid progression.
const (
	MinGridSize     = 5
	MaxGridSize     = 9
	levelsPerGrowth = 5 // Grid grows by one tile per side every N levels
)

// Color delta progression on the 0-100 lightness scale.
const (
	initialDelta  = 15.0
	deltaPerLevel = 0.8
	MinDelta      = 1.0
)

// Base color ranges.
const (
	minSaturation = 60.0
	maxSaturation = 100.0
	minLightness  = 30.0
	maxLightness  = 70.0
)

// Level holds the colors of one round. A new Level replaces the previous one
// on every advance.
type Level struct {
	Number      int
	GridSize    int      // Tiles per side
	Base        core.HSL // Color of every tile except the target
	Target      core.HSL // Color of the single odd tile
	TargetIndex int      // Row-major index in [0, GridSize*GridSize)
	Delta       float64  // Lightness difference between Base and Target
}

// TileCount returns the number of tiles on the grid.
func (l Level) TileCount() int {
	return l.GridSize * l.GridSize
}

// Contains reports whether tile is a valid index on this grid.
func (l Level) Contains(tile int) bool {
	return tile >= 0 && tile < l.TileCount()
}

// IsTarget reports whether tile holds the target color.
func (l Level) IsTarget(tile int) bool {
	return tile == l.TargetIndex
}

// ColorAt returns the color of the given tile.
func (l Level) ColorAt(tile int) core.HSL {
	if l.IsTarget(tile) {
		return l.Target
	}
	return l.Base
}

// GridSize returns the tiles per side for a level: 5 at level 1, one more
// every 5 levels, capped at 9.
func GridSize(level int) int {
	level = normalizeLevel(level)
	return core.Min(MaxGridSize, MinGridSize+(level-1)/levelsPerGrowth)
}

// Delta returns the lightness difference for a level. It shrinks by 0.8 per
// level and never drops below MinDelta, so the odd tile always exists.
func Delta(level int) float64 {
	level = normalizeLevel(level)
	return math.Max(MinDelta, initialDelta-float64(level)*deltaPerLevel)
}

// Generate builds the colors for a level using rng.
// Given the same rng state it always returns the same Level.
func Generate(level int, rng *rand.Rand) Level {
	level = normalizeLevel(level)
	size := GridSize(level)
	delta := Delta(level)

	base := core.HSL{
		H: rng.Float64() * 360,
		S: minSaturation + rng.Float64()*(maxSaturation-minSaturation),
		L: minLightness + rng.Float64()*(maxLightness-minLightness),
	}

	shift := delta
	if rng.Intn(2) == 0 {
		shift = -delta
	}

	return Level{
		Number:      level,
		GridSize:    size,
		Base:        base,
		Target:      base.WithLightness(base.L + shift),
		TargetIndex: rng.Intn(size * size),
		Delta:       delta,
	}
}

// normalizeLevel treats anything below 1 as the first level.
func normalizeLevel(level int) int {
	return core.Max(1, level)
}
