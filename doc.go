// Package mandel computes and renders the Mandelbrot set.
//
// # Overview
//
// For every pixel of a fixed-size raster the engine determines how many
// iterations of z <- z*z + c the orbit of the pixel's plane point survives
// before escaping, then maps that count to a color. The work is
// embarrassingly parallel: a pixel depends only on its own coordinates, so
// frames fill in lock-free over a pool of workers and come out byte-for-byte
// identical no matter how the rows were scheduled.
//
// # Quick Start
//
//	r, err := mandel.NewRenderer(mandel.DefaultFactor)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer r.Close()
//
//	pm := r.Render() // 1050x700 RGBA frame
//
// # Coordinate System
//
// The raster maps onto the plane window re in [-2, 1], im in [-1, 1]. Frames
// are 3*factor by 2*factor pixels, preserving the window's 3:2 aspect.
// Raster rows grow downward; the Tracer flips the vertical axis so traced
// orbits plot in mathematical orientation.
//
// # Orbit Overlay
//
// Tracer turns a pointer position into the orbit polyline of the plane point
// under it, and DrawPolyline bakes such a polyline into a frame. The host
// programs under cmd/ show the two together: a windowed viewer (mandelview),
// a browser-canvas host (mandelweb), and a snapshot CLI (mandelsnap).
//
// # Determinism
//
// A frame is a pure function of the frame scale, the iteration limit, and
// the color policy. Worker count changes speed, never bytes.
package mandel

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
