package mandel

// DefaultOrbitCap bounds the number of traced orbit points when the host has
// no better idea.
const DefaultOrbitCap = 256

// orbitEpsilon guards the tracer against pointers mapped almost exactly onto
// the plane origin, whose orbit collapses to a sub-pixel speck. Fixed at
// 1e-3 plane units, well under one pixel at the default scale (a pixel spans
// 1/350 units).
const orbitEpsilon = 1e-3

// Tracer turns a pointer position into the orbit of the plane point under
// it, expressed as screen points for overlay drawing.
//
// The tracer shares no mutable state with the Renderer; hosts run both in
// the same frame without coordination.
type Tracer struct {
	width  int
	height int
	view   Viewport
}

// NewTracer creates a tracer for the frame size derived from factor,
// matching the renderer built from the same factor.
func NewTracer(factor int) (*Tracer, error) {
	if factor < 1 {
		return nil, ErrInvalidFactor
	}
	w, h := frameSize(factor)
	return &Tracer{width: w, height: h, view: StandardView()}, nil
}

// Trace returns the orbit of the plane point under pointer p as a connected
// polyline of screen points: p itself first, then up to maxLen orbit points.
// Callers clamp the pointer into the frame beforehand; the result carries no
// meaning beyond "draw a line through these".
//
// The vertical axis flips on the way in and out: raster rows grow downward
// while the plane's imaginary axis grows upward, and orbits should plot in
// plane orientation.
//
// Degenerate pointers yield an empty trace: points within orbitEpsilon of
// the origin (the orbit would be a sub-pixel speck) and points of magnitude
// 2 or more (the orbit escapes immediately).
func (t *Tracer) Trace(p ScreenPoint, maxLen int) []ScreenPoint {
	if maxLen < 0 {
		maxLen = 0
	}
	flipped := Pt(p.X, t.height-p.Y)
	c := t.view.ToPlane(flipped, t.width, t.height)

	r2 := c.Abs2()
	if r2 < orbitEpsilon*orbitEpsilon || r2 >= escapeRadius2 {
		return nil
	}

	pts := make([]ScreenPoint, 0, maxLen+1)
	pts = append(pts, p)
	orbit := NewOrbit(c)
	for len(pts) <= maxLen {
		z, ok := orbit.Next()
		if !ok {
			break
		}
		s := t.view.ToScreen(z, t.width, t.height)
		pts = append(pts, Pt(s.X, t.height-s.Y))
	}
	return pts
}
