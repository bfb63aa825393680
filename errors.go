package mandel

import "errors"

// Construction errors. Configuration is validated once, up front; after a
// constructor succeeds, per-frame calls cannot fail.
var (
	// ErrInvalidFactor is returned when the frame scale factor is not positive.
	ErrInvalidFactor = errors.New("mandel: scale factor must be positive")

	// ErrInvalidMaxIter is returned when the escape budget is not positive.
	ErrInvalidMaxIter = errors.New("mandel: iteration limit must be positive")

	// ErrNilGradient is returned when a nil color gradient is supplied.
	ErrNilGradient = errors.New("mandel: nil gradient")

	// ErrFrameTooLarge is returned when w*h*4 bytes would overflow the
	// addressable buffer size for the platform.
	ErrFrameTooLarge = errors.New("mandel: frame dimensions overflow buffer size")
)
