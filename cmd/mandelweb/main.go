// Command mandelweb serves the rendered Mandelbrot set to a browser. The
// page receives the frame once over a websocket, then streams pointer
// positions back and gets orbit polylines to draw as an overlay.
package main

import (
	"context"
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/gogpu/mandel"
)

//go:embed index.html
var indexHTML []byte

// frameMeta is the first message on a fresh websocket. It tells the page
// how to size its canvases and interpret the binary frame that follows.
type frameMeta struct {
	Type     string `json:"type"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	MaxIter  int    `json:"maxIter"`
	OrbitCap int    `json:"orbitCap"`
}

// pointerMsg is what the page sends on every pointer move.
type pointerMsg struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type orbitMsg struct {
	Type   string   `json:"type"`
	Points [][2]int `json:"points"`
}

type server struct {
	tracer   *mandel.Tracer
	frame    *mandel.Pixmap
	width    int
	height   int
	maxIter  int
	orbitCap int
	log      *slog.Logger
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

func (s *server) handleWS(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		s.log.Error("websocket accept failed", "err", err)
		return
	}
	defer c.CloseNow()

	ctx := r.Context()
	s.log.Info("client connected", "remote", r.RemoteAddr)

	meta := frameMeta{
		Type:     "meta",
		Width:    s.width,
		Height:   s.height,
		MaxIter:  s.maxIter,
		OrbitCap: s.orbitCap,
	}
	if err := wsjson.Write(ctx, c, meta); err != nil {
		s.log.Debug("meta write failed", "err", err)
		return
	}
	if err := c.Write(ctx, websocket.MessageBinary, s.frame.Data()); err != nil {
		s.log.Debug("frame write failed", "err", err)
		return
	}

	for {
		var p pointerMsg
		if err := wsjson.Read(ctx, c, &p); err != nil {
			// Normal exit path: tab closed or connection dropped.
			s.log.Info("client disconnected", "remote", r.RemoteAddr)
			return
		}

		pts := s.tracer.Trace(mandel.Pt(clamp(p.X, s.width-1), clamp(p.Y, s.height-1)), s.orbitCap)
		msg := orbitMsg{Type: "orbit", Points: make([][2]int, len(pts))}
		for i, q := range pts {
			msg.Points[i] = [2]int{q.X, q.Y}
		}
		if err := wsjson.Write(ctx, c, msg); err != nil {
			s.log.Debug("orbit write failed", "err", err)
			return
		}
	}
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
	if err := run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run() error {
	var (
		addr     = flag.String("addr", ":8080", "listen address")
		factor   = flag.Int("factor", mandel.DefaultFactor, "frame scale; the canvas is 3*factor x 2*factor")
		maxIter  = flag.Int("iter", mandel.DefaultMaxIter, "escape iteration budget")
		workers  = flag.Int("workers", 0, "render workers (0 = all CPUs)")
		gray     = flag.Bool("gray", false, "use the threshold grayscale gradient")
		orbitCap = flag.Int("orbit-cap", mandel.DefaultOrbitCap, "maximum orbit points per trace")
		verbose  = flag.Bool("v", false, "log render diagnostics")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	mandel.SetLogger(logger)

	opts := []mandel.Option{
		mandel.WithMaxIter(*maxIter),
		mandel.WithWorkers(*workers),
	}
	if *gray {
		opts = append(opts, mandel.WithGrayscale())
	}

	r, err := mandel.NewRenderer(*factor, opts...)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer r.Close()

	t, err := mandel.NewTracer(*factor)
	if err != nil {
		return fmt.Errorf("tracer: %w", err)
	}

	// The view never changes, so one render serves every connection.
	w, h := r.Size()
	s := &server{
		tracer:   t,
		frame:    r.Render(),
		width:    w,
		height:   h,
		maxIter:  r.MaxIter(),
		orbitCap: *orbitCap,
		log:      logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ws", s.handleWS)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", *addr, "frame", w*h*4)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
