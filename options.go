package mandel

// Option configures a Renderer during creation.
//
// Example:
//
//	// Default 1050x700 frame, 1024-iteration budget, all CPUs:
//	r, err := mandel.NewRenderer(mandel.DefaultFactor)
//
//	// Coarser budget on four workers:
//	r, err := mandel.NewRenderer(mandel.DefaultFactor,
//	    mandel.WithMaxIter(128),
//	    mandel.WithWorkers(4))
type Option func(*config)

// config holds optional Renderer configuration collected before validation.
type config struct {
	maxIter   int
	workers   int
	grad      Gradient
	grayscale bool
}

// defaultConfig returns the default renderer options.
func defaultConfig() config {
	return config{
		maxIter: DefaultMaxIter,
		workers: 0, // resolved to GOMAXPROCS by the worker pool
		grad:    DefaultPalette,
	}
}

// WithMaxIter sets the escape budget: the iteration cap after which a point
// counts as inside the set. Higher budgets sharpen the boundary at
// proportional CPU cost. The default is DefaultMaxIter.
func WithMaxIter(n int) Option {
	return func(c *config) { c.maxIter = n }
}

// WithWorkers sets the number of rasterizer workers. Zero or negative
// selects one worker per CPU. The choice never changes rendered bytes, only
// how rows are spread over goroutines.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithGradient installs a custom color policy in place of the default
// cyclic palette.
func WithGradient(g Gradient) Option {
	return func(c *config) {
		c.grad = g
		c.grayscale = false
	}
}

// WithGrayscale selects the six-level threshold grayscale policy, with
// bucket boundaries derived from the renderer's iteration limit.
func WithGrayscale() Option {
	return func(c *config) { c.grayscale = true }
}
