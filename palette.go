package mandel

import "image/color"

// Gradient maps an escape-time iteration count to a pixel color. Counts are
// never negative; At may assume count >= 0.
//
// Implementations must be pure: the same count always yields the same color,
// and At must be safe to call from concurrent rasterizer workers.
type Gradient interface {
	At(count int) color.RGBA
}

// Compile-time checks that both shipped policies satisfy Gradient.
var (
	_ Gradient = Palette{}
	_ Gradient = ThresholdGray{}
)

// Palette is a cyclic 16-color gradient: the color of a count is
// entry count mod 16, for every count including those at the iteration cap.
// This is the engine's canonical color policy.
type Palette [16]color.RGBA

// At returns the palette entry for count. Count must be non-negative.
func (p Palette) At(count int) color.RGBA {
	return p[count%16]
}

// DefaultPalette is the well-known 16-entry gradient cycling from dark brown
// through blue and white to orange, indexed by iteration count mod 16.
var DefaultPalette = Palette{
	{R: 66, G: 30, B: 15, A: 255},
	{R: 25, G: 7, B: 26, A: 255},
	{R: 9, G: 1, B: 47, A: 255},
	{R: 4, G: 4, B: 73, A: 255},
	{R: 0, G: 7, B: 100, A: 255},
	{R: 12, G: 44, B: 138, A: 255},
	{R: 24, G: 82, B: 177, A: 255},
	{R: 57, G: 125, B: 209, A: 255},
	{R: 134, G: 181, B: 229, A: 255},
	{R: 211, G: 236, B: 248, A: 255},
	{R: 241, G: 233, B: 191, A: 255},
	{R: 248, G: 201, B: 95, A: 255},
	{R: 255, G: 170, B: 0, A: 255},
	{R: 204, G: 128, B: 0, A: 255},
	{R: 153, G: 87, B: 0, A: 255},
	{R: 106, G: 52, B: 3, A: 255},
}

// ThresholdGray is the alternative six-level grayscale policy: counts are
// bucketed by fixed fractions of the iteration limit and shaded monotonically
// darker, with a solid black interior for points that never escape. Install
// it with WithGrayscale, which fills Limit in from the renderer's budget.
type ThresholdGray struct {
	// Limit is the escape budget the bucket boundaries are fractions of.
	Limit int
}

// At returns the gray level for count.
func (g ThresholdGray) At(count int) color.RGBA {
	var v uint8
	switch {
	case count < g.Limit/512:
		v = 0xFF
	case count < g.Limit/300:
		v = 0x96
	case count < g.Limit/256:
		v = 0x80
	case count < g.Limit/128:
		v = 0x40
	case count < g.Limit/64:
		v = 0x20
	case count < g.Limit/16:
		v = 0x10
	}
	return color.RGBA{R: v, G: v, B: v, A: 0xFF}
}
