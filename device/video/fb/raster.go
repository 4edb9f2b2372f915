package fb

import (
	"gopherboot/kernel"

	"golang.org/x/exp/constraints"
)

// ErrOutOfRange is returned when a drawing operation's coordinates fall
// outside the canvas. It is recoverable; the caller decides whether to skip
// the primitive or abort the frame.
var ErrOutOfRange = &kernel.Error{Module: "fb", Message: "coordinates out of range"}

// DrawPoint writes color at (x, y) through the checked accessor.
func DrawPoint(b Bitmap, x, y int, color uint32) *kernel.Error {
	px := PixelAt(b, x, y)
	if px == nil {
		return ErrOutOfRange
	}
	*px = color
	return nil
}

// FillRect fills the w*h rectangle with top-left corner (x, y). The top-left
// and bottom-right corners are validated before any pixel is touched, so a
// partially out-of-range rectangle leaves the canvas unchanged.
func FillRect(b Bitmap, x, y, w, h int, color uint32) *kernel.Error {
	if !InXRange(b, x) || !InYRange(b, y) ||
		!InXRange(b, x+w-1) || !InYRange(b, y+h-1) {
		return ErrOutOfRange
	}

	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			*b.UncheckedPixelAt(cx, cy) = color
		}
	}
	return nil
}

// DrawLine draws the segment from (x0, y0) to (x1, y1), emitting exactly one
// pixel per step along the major axis. Only the endpoints are validated:
// every interpolated point lies on the segment between two in-range
// endpoints and therefore inside the canvas.
func DrawLine(b Bitmap, x0, y0, x1, y1 int, color uint32) *kernel.Error {
	if !InXRange(b, x0) || !InYRange(b, y0) ||
		!InXRange(b, x1) || !InYRange(b, y1) {
		return ErrOutOfRange
	}

	dx, sx := abs(x1-x0), sign(x1-x0)
	dy, sy := abs(y1-y0), sign(y1-y0)

	if dx >= dy {
		for ix := 0; ix <= dx; ix++ {
			iy := slopePoint(dx, dy, ix)
			*b.UncheckedPixelAt(x0+ix*sx, y0+iy*sy) = color
		}
	} else {
		for iy := 0; iy <= dy; iy++ {
			ix := slopePoint(dy, dx, iy)
			*b.UncheckedPixelAt(x0+ix*sx, y0+iy*sy) = color
		}
	}
	return nil
}

// slopePoint interpolates the minor-axis offset for position ia along the
// major axis of a line with major length da and minor length db (db <= da),
// rounding the intersection to the nearest pixel. A zero-length major axis
// maps everything to offset 0.
func slopePoint(da, db, ia int) int {
	if da == 0 {
		return 0
	}
	return (2*db*ia + da) / (2 * da)
}

// abs returns the absolute value of v.
func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// sign returns -1, 0 or 1 matching the sign of v.
func sign[T constraints.Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
