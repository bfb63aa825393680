package parallel

// Band is a contiguous horizontal slice of a frame: rows y with
// Y0 <= y < Y1. Bands produced by SplitRows never overlap and jointly cover
// the full height, so workers filling different bands write to disjoint
// regions of the frame buffer and need no synchronization.
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// SplitRows partitions height rows into at most n contiguous bands of
// near-equal size, top to bottom. A non-positive n is treated as 1; an n
// beyond height produces one band per row. The split depends only on
// (height, n), keeping work assignment deterministic run to run.
func SplitRows(height, n int) []Band {
	if height <= 0 {
		return nil
	}
	if n <= 0 {
		n = 1
	}
	if n > height {
		n = height
	}

	bands := make([]Band, 0, n)
	step := height / n
	extra := height % n
	y := 0
	for i := 0; i < n; i++ {
		h := step
		if i < extra {
			h++
		}
		bands = append(bands, Band{Y0: y, Y1: y + h})
		y += h
	}
	return bands
}
