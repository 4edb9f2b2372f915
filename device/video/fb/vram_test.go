package fb

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopherboot/kernel/hal/uefi"
)

// backingSink forces every backing slice onto the heap. Storing the slice's
// address as a uintptr hides it from escape analysis, so without this pin the
// slice could live on the goroutine stack and the recorded frame buffer base
// would go stale when the stack moves.
var backingSink []uint32

// fakeGraphicsOutput builds a protocol record whose frame buffer base points
// at an ordinary slice, so the unsafe addressing path can be exercised
// without firmware.
func fakeGraphicsOutput(width, height, pixelsPerLine uint32, backing []uint32) *uefi.GraphicsOutput {
	backingSink = backing
	var gop uefi.GraphicsOutput
	gop.Mode = &uefi.GraphicsOutputMode{
		Info: &uefi.GraphicsModeInfo{
			HorizontalResolution: width,
			VerticalResolution:   height,
			PixelsPerScanLine:    pixelsPerLine,
		},
	}
	if len(backing) != 0 {
		gop.Mode.FrameBufferBase = uintptr(unsafe.Pointer(&backing[0]))
		gop.Mode.FrameBufferSize = uintptr(len(backing) * 4)
	}
	return &gop
}

func TestNewVRAMGeometry(t *testing.T) {
	backing := make([]uint32, 6*4)
	vram, err := NewVRAM(fakeGraphicsOutput(5, 4, 6, backing))
	require.Nil(t, err)

	assert.Equal(t, 5, vram.Width())
	assert.Equal(t, 4, vram.Height())
	assert.Equal(t, 6, vram.PixelsPerLine())
}

func TestNewVRAMRejectsUnusableModes(t *testing.T) {
	backing := make([]uint32, 16)

	specs := []*uefi.GraphicsOutput{
		fakeGraphicsOutput(4, 4, 4, nil),        // no frame buffer base
		fakeGraphicsOutput(0, 4, 4, backing),    // zero width
		fakeGraphicsOutput(4, 0, 4, backing),    // zero height
		fakeGraphicsOutput(4, 4, 2, backing),    // scan line narrower than width
	}

	for specIndex, gop := range specs {
		if _, err := NewVRAM(gop); err != ErrBadMode {
			t.Fatalf("[spec %d] expected ErrBadMode; got %v", specIndex, err)
		}
	}
}

func TestVRAMPixelAddressing(t *testing.T) {
	const (
		width         = 4
		height        = 3
		pixelsPerLine = 6
	)
	backing := make([]uint32, height*pixelsPerLine)

	vram, err := NewVRAM(fakeGraphicsOutput(width, height, pixelsPerLine, backing))
	require.Nil(t, err)

	// A write through the capability must land at the scan-line-relative
	// slot of the backing memory.
	*vram.UncheckedPixelAt(2, 1) = 0xdeadbe
	assert.EqualValues(t, 0xdeadbe, backing[1*pixelsPerLine+2])

	require.Nil(t, DrawPoint(vram, 3, 2, 0x123456))
	assert.EqualValues(t, 0x123456, backing[2*pixelsPerLine+3])

	// Columns inside the scan line padding stay unreachable through the
	// checked accessor.
	assert.Nil(t, PixelAt(vram, width, 0))
}
