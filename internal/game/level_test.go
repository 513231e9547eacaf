package game

import (
	"math"
	"math/rand"
	"testing"
)

func TestGridSize(t *testing.T) {
	tests := []struct {
		level    int
		expected int
	}{
		{0, 5}, // below 1 is treated as level 1
		{1, 5},
		{5, 5},
		{6, 6},
		{10, 6},
		{11, 7},
		{16, 8},
		{21, 9},
		{25, 9},
		{26, 9},
		{1000, 9},
	}

	for _, tc := range tests {
		if got := GridSize(tc.level); got != tc.expected {
			t.Errorf("GridSize(%d) = %d, want %d", tc.level, got, tc.expected)
		}
	}
}

func TestGridSizeMatchesFormula(t *testing.T) {
	prev := GridSize(1)
	for level := 1; level <= 200; level++ {
		want := int(math.Min(9, math.Floor(5+float64(level-1)/5)))
		got := GridSize(level)
		if got != want {
			t.Fatalf("GridSize(%d) = %d, want %d", level, got, want)
		}
		if got < prev {
			t.Fatalf("GridSize must be non-decreasing: level %d went %d -> %d", level, prev, got)
		}
		prev = got
	}
}

func TestDelta(t *testing.T) {
	tests := []struct {
		level    int
		expected float64
	}{
		{1, 14.2},
		{5, 11.0},
		{10, 7.0},
		{17, 1.4},
		{18, 1.0}, // 15 - 14.4 = 0.6, floored
		{100, 1.0},
	}

	for _, tc := range tests {
		if got := Delta(tc.level); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Delta(%d) = %f, want %f", tc.level, got, tc.expected)
		}
	}
}

func TestDeltaNeverBelowMinimum(t *testing.T) {
	prev := Delta(1)
	for level := 1; level <= 500; level++ {
		d := Delta(level)
		if d < MinDelta {
			t.Fatalf("Delta(%d) = %f, below minimum", level, d)
		}
		if d > prev {
			t.Fatalf("Delta must be non-increasing: level %d went %f -> %f", level, prev, d)
		}
		prev = d
	}
}

func TestGenerateInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for level := 1; level <= 60; level++ {
		l := Generate(level, rng)

		if l.Number != level {
			t.Errorf("level %d: Number = %d", level, l.Number)
		}
		if l.GridSize != GridSize(level) {
			t.Errorf("level %d: GridSize = %d, want %d", level, l.GridSize, GridSize(level))
		}
		if l.Delta != Delta(level) {
			t.Errorf("level %d: Delta = %f, want %f", level, l.Delta, Delta(level))
		}
		if l.TargetIndex < 0 || l.TargetIndex >= l.GridSize*l.GridSize {
			t.Errorf("level %d: TargetIndex %d out of range", level, l.TargetIndex)
		}

		// Base color ranges
		if l.Base.H < 0 || l.Base.H >= 360 {
			t.Errorf("level %d: hue %f out of range", level, l.Base.H)
		}
		if l.Base.S < 60 || l.Base.S > 100 {
			t.Errorf("level %d: saturation %f out of range", level, l.Base.S)
		}
		if l.Base.L < 30 || l.Base.L > 70 {
			t.Errorf("level %d: lightness %f out of range", level, l.Base.L)
		}

		// Target differs only in lightness, by exactly delta
		if l.Target.H != l.Base.H || l.Target.S != l.Base.S {
			t.Errorf("level %d: target hue/saturation changed: %+v vs %+v", level, l.Target, l.Base)
		}
		if diff := math.Abs(l.Target.L - l.Base.L); math.Abs(diff-l.Delta) > 1e-9 {
			t.Errorf("level %d: lightness diff = %f, want %f", level, diff, l.Delta)
		}

		// Exactly one tile holds the target color
		odd := 0
		for i := 0; i < l.TileCount(); i++ {
			c := l.ColorAt(i)
			switch c {
			case l.Target:
				odd++
				if i != l.TargetIndex {
					t.Errorf("level %d: tile %d has target color", level, i)
				}
			case l.Base:
			default:
				t.Errorf("level %d: tile %d has unexpected color %+v", level, i, c)
			}
		}
		if odd != 1 {
			t.Errorf("level %d: %d tiles hold the target color, want 1", level, odd)
		}
	}
}

func TestGenerateShiftsBothDirections(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	lighter, darker := 0, 0

	for i := 0; i < 200; i++ {
		l := Generate(1, rng)
		if l.Target.L > l.Base.L {
			lighter++
		} else {
			darker++
		}
	}

	if lighter == 0 || darker == 0 {
		t.Errorf("target should be both lighter and darker over many rounds: lighter=%d darker=%d", lighter, darker)
	}
}

func TestGenerateDeterminism(t *testing.T) {
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	for level := 1; level <= 30; level++ {
		l1 := Generate(level, rng1)
		l2 := Generate(level, rng2)
		if l1 != l2 {
			t.Fatalf("level %d differs with same seed: %+v vs %+v", level, l1, l2)
		}
	}
}

func TestLevelContains(t *testing.T) {
	l := Level{GridSize: 5}

	tests := []struct {
		tile     int
		expected bool
	}{
		{-1, false},
		{0, true},
		{24, true},
		{25, false},
	}

	for _, tc := range tests {
		if got := l.Contains(tc.tile); got != tc.expected {
			t.Errorf("Contains(%d) = %v, want %v", tc.tile, got, tc.expected)
		}
	}
}
