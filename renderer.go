package mandel

import (
	"math"
	"time"

	"github.com/gogpu/mandel/internal/parallel"
)

// bandsPerWorker controls rasterization granularity. Rows crossing the set
// interior cost the full iteration budget while exterior rows escape almost
// immediately, so handing each worker several smaller bands lets the pool's
// work stealing even the load out.
const bandsPerWorker = 4

// Renderer computes full frames of the set into fresh RGBA pixel buffers.
//
// All configuration is validated by NewRenderer and read-only afterwards, so
// Render cannot fail and a Renderer is safe for concurrent use. Close
// releases the worker pool when the renderer is no longer needed.
type Renderer struct {
	width   int
	height  int
	maxIter int
	view    Viewport
	grad    Gradient
	pool    *parallel.WorkerPool
	bands   int
}

// NewRenderer creates a renderer for the frame size derived from factor:
// the standard 3:2 window makes frames 3*factor by 2*factor pixels.
// Options adjust the escape budget, color policy, and worker count.
//
// The configuration is validated here, once. A non-positive factor or
// budget, a nil gradient, and frame sizes whose byte length would overflow
// the platform are rejected; after that, per-frame rendering is infallible.
func NewRenderer(factor int, opts ...Option) (*Renderer, error) {
	if factor < 1 {
		return nil, ErrInvalidFactor
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxIter < 1 {
		return nil, ErrInvalidMaxIter
	}
	if cfg.grayscale {
		cfg.grad = ThresholdGray{Limit: cfg.maxIter}
	}
	if cfg.grad == nil {
		return nil, ErrNilGradient
	}
	if factor > math.MaxInt/3 {
		return nil, ErrFrameTooLarge
	}
	w, h := frameSize(factor)
	if w > math.MaxInt/4/h {
		return nil, ErrFrameTooLarge
	}

	pool := parallel.NewWorkerPool(cfg.workers)
	r := &Renderer{
		width:   w,
		height:  h,
		maxIter: cfg.maxIter,
		view:    StandardView(),
		grad:    cfg.grad,
		pool:    pool,
		bands:   pool.Workers() * bandsPerWorker,
	}
	Logger().Info("renderer ready",
		"width", w, "height", h, "maxIter", cfg.maxIter, "workers", pool.Workers())
	return r, nil
}

// Size returns the frame dimensions in pixels.
func (r *Renderer) Size() (w, h int) {
	return r.width, r.height
}

// MaxIter returns the escape budget.
func (r *Renderer) MaxIter() int {
	return r.maxIter
}

// View returns the plane window the renderer maps pixels into.
func (r *Renderer) View() Viewport {
	return r.view
}

// Render computes one full frame and returns it as a fresh pixel buffer.
//
// The output is deterministic: bytes depend only on the renderer's
// configuration, never on worker count or scheduling. Every pixel is pure
// arithmetic over its own coordinates and writes only its own 4-byte slot,
// so the concurrent fill needs no locks.
func (r *Renderer) Render() *Pixmap {
	start := time.Now()
	pm := NewPixmap(r.width, r.height)
	bands := parallel.SplitRows(r.height, r.bands)

	work := make([]func(), len(bands))
	for i, b := range bands {
		band := b // capture for closure
		work[i] = func() { r.fillBand(pm, band) }
	}
	r.pool.ExecuteAll(work)

	Logger().Debug("frame rendered",
		"elapsed", time.Since(start), "bands", len(bands))
	return pm
}

// fillBand rasterizes rows [b.Y0, b.Y1) straight into pm's buffer.
func (r *Renderer) fillBand(pm *Pixmap, b parallel.Band) {
	for y := b.Y0; y < b.Y1; y++ {
		row := pm.data[y*r.width*4 : (y+1)*r.width*4]
		for x := 0; x < r.width; x++ {
			c := r.view.ToPlane(Pt(x, y), r.width, r.height)
			n := EscapeCount(c, r.maxIter)
			col := r.grad.At(n)
			i := x * 4
			row[i+0] = col.R
			row[i+1] = col.G
			row[i+2] = col.B
			row[i+3] = col.A
		}
	}
}

// Close releases the renderer's worker pool. The renderer must not be used
// afterwards. Close is safe to call more than once.
func (r *Renderer) Close() {
	r.pool.Close()
}
