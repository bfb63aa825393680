// Command mandelview opens an interactive window on the Mandelbrot set.
// Moving the pointer traces the orbit of the complex point under it and
// bakes the trace into the frame as a polyline overlay.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/gogpu/mandel"
)

var orbitColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

type game struct {
	renderer *mandel.Renderer
	tracer   *mandel.Tracer
	width    int
	height   int
	orbitCap int

	// base holds the rendered set; the overlay is baked into a clone so
	// the expensive render runs exactly once.
	base  *mandel.Pixmap
	frame *ebiten.Image

	cursor mandel.ScreenPoint
	orbit  []mandel.ScreenPoint
	dirty  bool
}

func newGame(r *mandel.Renderer, t *mandel.Tracer, orbitCap int) *game {
	w, h := r.Size()
	g := &game{
		renderer: r,
		tracer:   t,
		width:    w,
		height:   h,
		orbitCap: orbitCap,
		base:     r.Render(),
		frame:    ebiten.NewImage(w, h),
		cursor:   mandel.Pt(-1, -1),
	}
	g.frame.WritePixels(g.base.Data())
	return g
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	p := mandel.Pt(clamp(x, g.width-1), clamp(y, g.height-1))
	if p == g.cursor {
		return nil
	}
	g.cursor = p
	g.orbit = g.tracer.Trace(p, g.orbitCap)
	g.dirty = true
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.dirty {
		pm := g.base.Clone()
		if len(g.orbit) > 2 {
			// Skip the pointer prefix; stroke the orbit itself.
			mandel.DrawPolyline(pm, g.orbit[1:], orbitColor, 2)
		}
		g.frame.WritePixels(pm.Data())
		g.dirty = false
	}
	screen.DrawImage(g.frame, nil)
	ebitenutil.DebugPrint(screen, g.hud())
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func (g *game) hud() string {
	// The tracer flips the vertical axis before mapping; mirror that here
	// so the HUD shows the same c the orbit starts from.
	flipped := mandel.Pt(g.cursor.X, g.height-g.cursor.Y)
	c := g.renderer.View().ToPlane(flipped, g.width, g.height)

	points := len(g.orbit)
	if points > 0 {
		points--
	}
	return fmt.Sprintf("c = %.4f%+.4fi\norbit: %d points\nfps: %.0f",
		c.X, c.Y, points, ebiten.ActualFPS())
}

func clamp(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}

func main() {
	var (
		factor   = flag.Int("factor", mandel.DefaultFactor, "frame scale; the window is 3*factor x 2*factor")
		maxIter  = flag.Int("iter", mandel.DefaultMaxIter, "escape iteration budget")
		workers  = flag.Int("workers", 0, "render workers (0 = all CPUs)")
		gray     = flag.Bool("gray", false, "use the threshold grayscale gradient")
		orbitCap = flag.Int("orbit-cap", mandel.DefaultOrbitCap, "maximum orbit points per trace")
		verbose  = flag.Bool("v", false, "log frame diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		mandel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := []mandel.Option{
		mandel.WithMaxIter(*maxIter),
		mandel.WithWorkers(*workers),
	}
	if *gray {
		opts = append(opts, mandel.WithGrayscale())
	}

	r, err := mandel.NewRenderer(*factor, opts...)
	if err != nil {
		log.Fatalf("Failed to build renderer: %v", err)
	}
	defer r.Close()

	t, err := mandel.NewTracer(*factor)
	if err != nil {
		log.Fatalf("Failed to build tracer: %v", err)
	}

	w, h := r.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Mandelbrot Orbit Explorer")
	if err := ebiten.RunGame(newGame(r, t, *orbitCap)); err != nil {
		log.Fatalf("Window closed with error: %v", err)
	}
}
