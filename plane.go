package mandel

// DefaultFactor is the frame scale the engine was tuned with; it yields the
// standard 1050x700 raster.
const DefaultFactor = 350

// Scalar constrains the component type of a Coord: screen coordinates are
// integers, plane coordinates are single-precision floats.
type Scalar interface {
	~int | ~float32
}

// Coord is a 2D coordinate pair. The concrete kinds used by the engine are
// instantiations of this one generic type: ScreenPoint for pixel and pointer
// positions, PlanePoint for points of the complex plane. Coords are small
// immutable values, created per pixel or per pointer sample and discarded
// after use.
type Coord[T Scalar] struct {
	X, Y T
}

// XY returns both components.
func (p Coord[T]) XY() (T, T) { return p.X, p.Y }

// Abs2 returns the squared distance from the origin.
func (p Coord[T]) Abs2() T { return p.X*p.X + p.Y*p.Y }

// Dist2 returns the squared distance between p and q.
func (p Coord[T]) Dist2(q Coord[T]) T {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// ScreenPoint is an integer pixel position in the rendered raster. Pointer
// positions supplied by hosts are ScreenPoints too.
type ScreenPoint = Coord[int]

// PlanePoint is a point of the complex plane: X holds the real part, Y the
// imaginary part.
type PlanePoint = Coord[float32]

// Pt is shorthand for ScreenPoint{X: x, Y: y}.
func Pt(x, y int) ScreenPoint { return ScreenPoint{X: x, Y: y} }

// PlanePt is shorthand for PlanePoint{X: re, Y: im}.
func PlanePt(re, im float32) PlanePoint { return PlanePoint{X: re, Y: im} }

// Viewport is the window of the complex plane a raster maps onto.
//
// The engine always renders the standard window; the type exists so the two
// affine maps between raster and plane have an explicit owner that can be
// tested on its own.
type Viewport struct {
	ReMin, ReMax float32
	ImMin, ImMax float32
}

// StandardView returns the classic full-set window: re in [-2, 1],
// im in [-1, 1]. Its 3:2 aspect ratio is what ties frame sizes to scale
// factors (a factor f frame is 3f by 2f pixels).
func StandardView() Viewport {
	return Viewport{ReMin: -2, ReMax: 1, ImMin: -1, ImMax: 1}
}

// Width returns the plane width of the window.
func (v Viewport) Width() float32 { return v.ReMax - v.ReMin }

// Height returns the plane height of the window.
func (v Viewport) Height() float32 { return v.ImMax - v.ImMin }

// ToPlane maps a raster position to its plane coordinate, for a raster of
// w by h pixels. Pure arithmetic; positions outside the raster map to plane
// points outside the window.
func (v Viewport) ToPlane(p ScreenPoint, w, h int) PlanePoint {
	re := v.Width()*float32(p.X)/float32(w) + v.ReMin
	im := v.Height()*float32(p.Y)/float32(h) + v.ImMin
	return PlanePt(re, im)
}

// ToScreen is the inverse affine map, truncating to integer pixel
// coordinates. Plane points outside the window legally land outside
// [0,w) x [0,h); clamping is the caller's business. Mapping a pixel to the
// plane and back reproduces it within one pixel of truncation error.
func (v Viewport) ToScreen(q PlanePoint, w, h int) ScreenPoint {
	x := int((q.X - v.ReMin) * float32(w) / v.Width())
	y := int((q.Y - v.ImMin) * float32(h) / v.Height())
	return Pt(x, y)
}

// frameSize derives raster dimensions from a scale factor: the standard
// window is 3 plane units wide and 2 tall.
func frameSize(factor int) (w, h int) {
	return 3 * factor, 2 * factor
}
