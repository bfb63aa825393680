package mandel

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/gogpu/mandel/internal/parallel"
)

// BenchmarkRenderer_Render measures full-frame throughput at several scales.
func BenchmarkRenderer_Render(b *testing.B) {
	factors := []struct {
		name   string
		factor int
	}{
		{"192x128", 64},
		{"384x256", 128},
		{"1050x700", 350},
	}

	for _, f := range factors {
		b.Run(f.name, func(b *testing.B) {
			r, err := NewRenderer(f.factor)
			if err != nil {
				b.Fatalf("NewRenderer() error = %v", err)
			}
			defer r.Close()

			w, h := r.Size()
			b.SetBytes(int64(w * h * 4))
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				pm := r.Render()
				if pm == nil {
					b.Fatal("Render() returned nil")
				}
			}
		})
	}
}

// BenchmarkRenderer_FillRow is the single-row baseline: one band of the
// 1050x700 frame, crossing the set interior, filled without the pool.
func BenchmarkRenderer_FillRow(b *testing.B) {
	r, err := NewRenderer(350)
	if err != nil {
		b.Fatalf("NewRenderer() error = %v", err)
	}
	defer r.Close()

	w, h := r.Size()
	pm := NewPixmap(w, h)
	row := parallel.Band{Y0: h / 2, Y1: h/2 + 1}

	b.SetBytes(int64(w * 4))
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r.fillBand(pm, row)
	}
}

// BenchmarkRenderer_Workers shows how frame time scales with the pool size.
func BenchmarkRenderer_Workers(b *testing.B) {
	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers-%d", workers), func(b *testing.B) {
			r, err := NewRenderer(350, WithWorkers(workers))
			if err != nil {
				b.Fatalf("NewRenderer() error = %v", err)
			}
			defer r.Close()

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				r.Render()
			}
		})
	}
}

// BenchmarkRenderer_Gradient compares the two coloring policies. The
// per-pixel iteration dominates, so the gap should be small.
func BenchmarkRenderer_Gradient(b *testing.B) {
	options := []struct {
		name string
		opts []Option
	}{
		{"palette", nil},
		{"grayscale", []Option{WithGrayscale()}},
	}

	for _, o := range options {
		b.Run(o.name, func(b *testing.B) {
			r, err := NewRenderer(128, o.opts...)
			if err != nil {
				b.Fatalf("NewRenderer() error = %v", err)
			}
			defer r.Close()

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				r.Render()
			}
		})
	}
}

// BenchmarkEscapeCount isolates the per-point iteration cost.
func BenchmarkEscapeCount(b *testing.B) {
	// The interior point runs the full budget, the boundary point escapes
	// late, the far point escapes immediately.
	points := []struct {
		name string
		c    PlanePoint
	}{
		{"interior", PlanePt(0, 0)},
		{"near boundary", PlanePt(-0.75, 0.05)},
		{"far", PlanePt(2.5, 2.5)},
	}

	for _, p := range points {
		b.Run(p.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				EscapeCount(p.c, DefaultMaxIter)
			}
		})
	}
}

func BenchmarkTracer_Trace(b *testing.B) {
	tr, err := NewTracer(350)
	if err != nil {
		b.Fatalf("NewTracer() error = %v", err)
	}

	// The interior pointer hits the full cap, the escaping one stops
	// after a few points.
	pointers := []struct {
		name string
		p    ScreenPoint
	}{
		{"interior", Pt(787, 263)},
		{"escaping", Pt(945, 116)},
	}

	for _, p := range pointers {
		b.Run(p.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				tr.Trace(p.p, DefaultOrbitCap)
			}
		})
	}
}

func BenchmarkDrawPolyline(b *testing.B) {
	pm := NewPixmap(1050, 700)
	tr, err := NewTracer(350)
	if err != nil {
		b.Fatalf("NewTracer() error = %v", err)
	}
	pts := tr.Trace(Pt(787, 263), DefaultOrbitCap)
	if len(pts) < 2 {
		b.Fatal("trace produced no polyline")
	}
	stroke := color.RGBA{R: 0xFF, A: 0xFF}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		DrawPolyline(pm, pts, stroke, 2)
	}
}
