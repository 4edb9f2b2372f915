package fb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPixelWriteReadback(t *testing.T) {
	img := NewImage(8, 4, 10)

	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			color := RGB(uint8(x), uint8(y), 0xaa)
			require.Nil(t, DrawPoint(img, x, y, color))
			require.Equal(t, color, *PixelAt(img, x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestDrawPointOutOfRange(t *testing.T) {
	img := NewImage(8, 4, 10)

	specs := []struct{ x, y int }{
		{-1, 0},
		{0, -1},
		{8, 0}, // columns 8 and 9 exist in the scan line but are not visible
		{9, 0},
		{0, 4},
	}

	for specIndex, spec := range specs {
		if err := DrawPoint(img, spec.x, spec.y, 0xffffff); err != ErrOutOfRange {
			t.Fatalf("[spec %d] expected ErrOutOfRange for (%d,%d); got %v", specIndex, spec.x, spec.y, err)
		}
	}

	for _, px := range img.Pix() {
		assert.Zero(t, px, "out-of-range draws must not touch the buffer")
	}
}

func TestFillRect(t *testing.T) {
	img := NewImage(8, 8, 8)
	color := RGB(0, 0, 0xff)

	require.Nil(t, FillRect(img, 2, 1, 4, 3, color))

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			inside := x >= 2 && x < 6 && y >= 1 && y < 4
			if inside {
				assert.Equal(t, color, *PixelAt(img, x, y), "pixel (%d,%d)", x, y)
			} else {
				assert.Zero(t, *PixelAt(img, x, y), "pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestFillRectAllOrNothing(t *testing.T) {
	specs := []struct {
		x, y, w, h int
	}{
		{6, 6, 4, 4},   // bottom-right corner out of range
		{-1, 0, 4, 4},  // top-left corner out of range
		{0, 6, 1, 4},   // height overflow
		{6, 0, 4, 1},   // width overflow
		{0, 0, 9, 1},   // wider than the canvas
		{4, 4, -2, -2}, // negative extent puts the second corner before the first
	}

	for specIndex, spec := range specs {
		img := NewImage(8, 8, 8)
		err := FillRect(img, spec.x, spec.y, spec.w, spec.h, 0xffffff)
		if err != ErrOutOfRange {
			t.Fatalf("[spec %d] expected ErrOutOfRange; got %v", specIndex, err)
		}

		for _, px := range img.Pix() {
			if px != 0 {
				t.Fatalf("[spec %d] rejected fill must leave the buffer unchanged", specIndex)
			}
		}
	}
}

func TestDrawLineDegeneratePoint(t *testing.T) {
	img := NewImage(8, 8, 8)

	require.Nil(t, DrawLine(img, 3, 5, 3, 5, 0xffffff))
	assert.Equal(t, 1, countSetPixels(img))
	assert.EqualValues(t, 0xffffff, *PixelAt(img, 3, 5))
}

func TestDrawLineHorizontal(t *testing.T) {
	img := NewImage(8, 8, 8)

	require.Nil(t, DrawLine(img, 0, 0, 7, 0, 0x00ff00))

	assert.Equal(t, 8, countSetPixels(img), "one pixel per column")
	for x := 0; x < 8; x++ {
		assert.EqualValues(t, 0x00ff00, *PixelAt(img, x, 0), "column %d row 0", x)
	}
}

func TestDrawLineOnePixelPerMajorStep(t *testing.T) {
	specs := []struct {
		x0, y0, x1, y1 int
		expCount       int
	}{
		{0, 0, 7, 2, 8},  // shallow: major axis x
		{0, 0, 2, 7, 8},  // steep: major axis y
		{7, 7, 0, 0, 8},  // diagonal, reverse direction
		{0, 7, 7, 0, 8},  // rising diagonal
		{5, 0, 5, 7, 8},  // vertical
	}

	for specIndex, spec := range specs {
		img := NewImage(8, 8, 8)
		if err := DrawLine(img, spec.x0, spec.y0, spec.x1, spec.y1, 0xffffff); err != nil {
			t.Fatalf("[spec %d] unexpected error: %v", specIndex, err)
		}
		if got := countSetPixels(img); got != spec.expCount {
			t.Fatalf("[spec %d] expected %d pixels; got %d", specIndex, spec.expCount, got)
		}
	}
}

func TestDrawLineReversalSymmetry(t *testing.T) {
	endpoints := []struct {
		x0, y0, x1, y1 int
	}{
		{0, 0, 15, 9},
		{2, 14, 13, 1},
		{0, 8, 15, 8},
		{7, 0, 7, 15},
		{1, 1, 14, 14},
		{12, 3, 4, 11},
	}

	for specIndex, spec := range endpoints {
		forward := NewImage(16, 16, 16)
		backward := NewImage(16, 16, 16)

		require.Nil(t, DrawLine(forward, spec.x0, spec.y0, spec.x1, spec.y1, 0xffffff))
		require.Nil(t, DrawLine(backward, spec.x1, spec.y1, spec.x0, spec.y0, 0xffffff))

		if !assert.ObjectsAreEqual(forward.Pix(), backward.Pix()) {
			t.Fatalf("[spec %d] pixel sets differ between traversal directions", specIndex)
		}
	}
}

func TestDrawLineEndpointValidation(t *testing.T) {
	img := NewImage(8, 8, 8)

	if err := DrawLine(img, 0, 0, 8, 8, 0xffffff); err != ErrOutOfRange {
		t.Fatalf("expected ErrOutOfRange; got %v", err)
	}
	assert.Equal(t, 0, countSetPixels(img))
}

func TestSlopePoint(t *testing.T) {
	specs := []struct {
		da, db, ia int
		exp        int
	}{
		// Regression fixture: floor((2*3*5 + 10) / 20) = 2.
		{10, 3, 5, 2},
		{0, 0, 0, 0},
		{10, 0, 7, 0},
		{10, 10, 10, 10},
		{7, 3, 0, 0},
		{7, 3, 7, 3},
	}

	for specIndex, spec := range specs {
		if got := slopePoint(spec.da, spec.db, spec.ia); got != spec.exp {
			t.Fatalf("[spec %d] expected slopePoint(%d,%d,%d) to be %d; got %d",
				specIndex, spec.da, spec.db, spec.ia, spec.exp, got)
		}
	}
}

func countSetPixels(img *Image) int {
	var count int
	for _, px := range img.Pix() {
		if px != 0 {
			count++
		}
	}
	return count
}
