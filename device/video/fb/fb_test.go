package fb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPixelAtBounds(t *testing.T) {
	img := NewImage(4, 3, 6)

	specs := []struct {
		x, y  int
		expOK bool
	}{
		{0, 0, true},
		{3, 2, true},
		{-1, 0, false},
		{0, -1, false},
		{4, 0, false}, // scan line padding is not addressable
		{5, 0, false},
		{0, 3, false},
	}

	for specIndex, spec := range specs {
		px := PixelAt(img, spec.x, spec.y)
		if gotOK := px != nil; gotOK != spec.expOK {
			t.Fatalf("[spec %d] expected PixelAt(%d,%d) != nil to be %t", specIndex, spec.x, spec.y, spec.expOK)
		}
	}
}

func TestPixelAtNarrowScanLine(t *testing.T) {
	// A scan line narrower than the width bounds x by the scan line.
	img := &Image{width: 8, height: 2, pixelsPerLine: 6, pix: make([]uint32, 12)}

	assert.NotNil(t, PixelAt(img, 5, 0))
	assert.Nil(t, PixelAt(img, 6, 0))
}

func TestRGBPacking(t *testing.T) {
	specs := []struct {
		r, g, b uint8
		exp     uint32
	}{
		{0xff, 0, 0, 0xff0000},
		{0, 0xff, 0, 0x00ff00},
		{0, 0, 0xff, 0x0000ff},
		{0x12, 0x34, 0x56, 0x123456},
	}

	for specIndex, spec := range specs {
		if got := RGB(spec.r, spec.g, spec.b); got != spec.exp {
			t.Fatalf("[spec %d] expected 0x%06x; got 0x%06x", specIndex, spec.exp, got)
		}
	}
}

func TestNewImageWidensNarrowScanLine(t *testing.T) {
	img := NewImage(8, 2, 4)
	assert.Equal(t, 8, img.PixelsPerLine())
	assert.Len(t, img.Pix(), 16)
}
