package core

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a terminal color for a screen cell.
// Holds either an ANSI 256-color code ("9") or a hex RGB value ("#ff8800").
// The zero value means the terminal default.
type Color string

// Predefined colors for HUD and overlay elements.
const (
	ColorDefault     Color = ""
	ColorYellow      Color = "3"
	ColorWhite       Color = "7"
	ColorBrightRed   Color = "9"
	ColorBrightGreen Color = "10"
	ColorBrightCyan  Color = "14"
	ColorBrightWhite Color = "15"
	ColorOrange      Color = "208"
	ColorGray        Color = "245"
	ColorDarkGray    Color = "238"
)

// IsDefault reports whether the color falls back to the terminal default.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}

// HSL is a color in hue-saturation-lightness space.
// H is in degrees [0, 360); S and L are percentages [0, 100].
type HSL struct {
	H float64
	S float64
	L float64
}

// Colorful converts to a go-colorful RGB color.
func (c HSL) Colorful() colorful.Color {
	return colorful.Hsl(c.H, c.S/100, c.L/100).Clamped()
}

// Hex returns the "#rrggbb" form of the color.
func (c HSL) Hex() string {
	return c.Colorful().Hex()
}

// Color returns the color as a screen cell color.
func (c HSL) Color() Color {
	return Color(c.Hex())
}

// WithLightness returns a copy with the lightness replaced, clamped to [0, 100].
func (c HSL) WithLightness(l float64) HSL {
	c.L = ClampF(l, 0, 100)
	return c
}

// String formats the color the way CSS does, e.g. "hsl(210, 80%, 45%)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", c.H, c.S, c.L)
}

// Contrast picks a readable text color for the given background lightness.
func (c HSL) Contrast() Color {
	if c.L > 55 {
		return Color("#000000")
	}
	return Color("#ffffff")
}
