package mandel

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// DrawPolyline strokes a connected line through pts into pm, anti-aliased
// and blended over the existing pixels. Hosts use it to bake a traced orbit
// into a frame before presenting it. Points may lie outside the frame; the
// rasterizer clips them.
//
// A polyline needs at least two points and a positive width to produce any
// coverage; lesser input leaves pm untouched.
func DrawPolyline(pm *Pixmap, pts []ScreenPoint, c color.RGBA, width float32) {
	if pm == nil || len(pts) < 2 || width <= 0 {
		return
	}

	z := vector.NewRasterizer(pm.width, pm.height)
	half := width / 2
	segments := 0
	for i := 1; i < len(pts); i++ {
		if strokeSegment(z, pts[i-1], pts[i], half) {
			segments++
		}
	}
	if segments == 0 {
		return
	}

	dst := &image.RGBA{
		Pix:    pm.data,
		Stride: pm.width * 4,
		Rect:   image.Rect(0, 0, pm.width, pm.height),
	}
	z.Draw(dst, dst.Rect, image.NewUniform(c), image.Point{})
}

// strokeSegment appends the quad outline of the segment a-b, widened by
// halfWidth on both sides. Zero-length segments contribute nothing and are
// skipped, so orbits that linger on one pixel do not pile up coverage.
func strokeSegment(z *vector.Rasterizer, a, b ScreenPoint, halfWidth float32) bool {
	if a.Dist2(b) == 0 {
		return false
	}
	ax, ay := float32(a.X), float32(a.Y)
	bx, by := float32(b.X), float32(b.Y)
	dx, dy := bx-ax, by-ay
	inv := 1 / float32(math.Sqrt(float64(dx*dx + dy*dy)))

	// Unit normal scaled to half the stroke width.
	nx := -dy * inv * halfWidth
	ny := dx * inv * halfWidth

	z.MoveTo(ax+nx, ay+ny)
	z.LineTo(bx+nx, by+ny)
	z.LineTo(bx-nx, by-ny)
	z.LineTo(ax-nx, ay-ny)
	z.ClosePath()
	return true
}
