// Command mandelsnap renders the Mandelbrot set to a PNG file, optionally
// with the orbit of one chosen pixel baked in as an overlay.
package main

import (
	"context"
	"fmt"
	"image/color"
	"image/png"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/mandel"
)

type snapConfig struct {
	factor   int
	maxIter  int
	workers  int
	gray     bool
	out      string
	orbitAt  string
	orbitCap int
	verbose  bool
}

func mainCmd() *cobra.Command {
	var cfg snapConfig

	cmd := &cobra.Command{
		Use:   "mandelsnap",
		Short: "Render the Mandelbrot set to a PNG file",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return snap(cfg)
		},
	}

	f := cmd.Flags()
	f.IntVar(&cfg.factor, "factor", mandel.DefaultFactor, "frame scale; the image is 3*factor x 2*factor")
	f.IntVar(&cfg.maxIter, "iter", mandel.DefaultMaxIter, "escape iteration budget")
	f.IntVar(&cfg.workers, "workers", 0, "render workers (0 = all CPUs)")
	f.BoolVar(&cfg.gray, "gray", false, "use the threshold grayscale gradient")
	f.StringVarP(&cfg.out, "out", "o", "mandel.png", "output file")
	f.StringVar(&cfg.orbitAt, "orbit", "", "overlay the orbit of the pixel at \"x,y\"")
	f.IntVar(&cfg.orbitCap, "orbit-cap", mandel.DefaultOrbitCap, "maximum orbit points in the overlay")
	f.BoolVarP(&cfg.verbose, "verbose", "v", false, "log render diagnostics to stderr")

	return cmd
}

func snap(cfg snapConfig) error {
	if cfg.verbose {
		mandel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := []mandel.Option{
		mandel.WithMaxIter(cfg.maxIter),
		mandel.WithWorkers(cfg.workers),
	}
	if cfg.gray {
		opts = append(opts, mandel.WithGrayscale())
	}

	r, err := mandel.NewRenderer(cfg.factor, opts...)
	if err != nil {
		return err
	}
	defer r.Close()

	pm := r.Render()

	if cfg.orbitAt != "" {
		if err := overlayOrbit(pm, cfg); err != nil {
			return err
		}
	}

	return savePNG(pm, cfg.out)
}

func overlayOrbit(pm *mandel.Pixmap, cfg snapConfig) error {
	var x, y int
	if n, err := fmt.Sscanf(cfg.orbitAt, "%d,%d", &x, &y); n != 2 || err != nil {
		return fmt.Errorf("invalid --orbit %q, want \"x,y\"", cfg.orbitAt)
	}
	if x < 0 || x >= pm.Width() || y < 0 || y >= pm.Height() {
		return fmt.Errorf("--orbit %q is outside the %dx%d frame", cfg.orbitAt, pm.Width(), pm.Height())
	}

	t, err := mandel.NewTracer(cfg.factor)
	if err != nil {
		return err
	}

	pts := t.Trace(mandel.Pt(x, y), cfg.orbitCap)
	if len(pts) < 2 {
		return fmt.Errorf("pixel (%d,%d) has no traceable orbit", x, y)
	}

	mandel.DrawPolyline(pm, pts[1:], color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, 2)
	return nil
}

func savePNG(pm *mandel.Pixmap, path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, pm)
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
