package mandel

// DefaultMaxIter is the default escape budget: the iteration cap after which
// a plane point is treated as a member of the set.
const DefaultMaxIter = 1024

// escapeRadius2 is the squared escape radius. An orbit whose magnitude ever
// exceeds 2 cannot return, so |z|^2 > 4 ends the sequence without a square
// root.
const escapeRadius2 = 4.0

// Orbit is the escape-time iterator for one plane point c: the lazy sequence
// of values produced by z <- z*z + c starting from z = 0.
//
// An Orbit is a small value meant to live on its caller's stack. Each pixel
// or trace owns its own; none is ever shared. Once escaped the sequence is
// over for good; it cannot be restarted.
type Orbit struct {
	c       complex64
	curr    complex64
	escaped bool
}

// NewOrbit returns the orbit of c, positioned before the first iterate.
func NewOrbit(c PlanePoint) Orbit {
	return Orbit{c: complex(c.X, c.Y)}
}

// Next advances the orbit one step and returns the new iterate. The escape
// check runs first: once |curr|^2 exceeds 4 the orbit is finished and Next
// reports false forever. Otherwise curr <- curr*curr + c and the new value
// is emitted.
func (o *Orbit) Next() (PlanePoint, bool) {
	if o.escaped || abs2(o.curr) > escapeRadius2 {
		o.escaped = true
		return PlanePoint{}, false
	}
	o.curr = o.curr*o.curr + o.c
	return PlanePt(real(o.curr), imag(o.curr)), true
}

// Escaped reports whether the orbit has left the escape radius.
func (o *Orbit) Escaped() bool { return o.escaped }

// EscapeCount runs the orbit of c and counts the emitted values, stopping at
// escape or once limit values have been consumed. A count equal to limit
// means the point did not escape within the budget and is treated as inside
// the set. Counts land in [0, limit]; a point with |c| > 2 counts exactly 1,
// since its first iterate z = c already clears the radius.
func EscapeCount(c PlanePoint, limit int) int {
	o := NewOrbit(c)
	n := 0
	for n < limit {
		if _, ok := o.Next(); !ok {
			break
		}
		n++
	}
	return n
}

func abs2(z complex64) float32 {
	re, im := real(z), imag(z)
	return re*re + im*im
}
