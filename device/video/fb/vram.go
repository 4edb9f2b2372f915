package fb

import (
	"gopherboot/kernel"
	"gopherboot/kernel/hal/uefi"
	"unsafe"
)

// VRAM is a Bitmap backed by the firmware-mapped linear frame buffer. The
// backing region is owned by firmware, spans exactly height * pixelsPerLine
// * 4 bytes and stays valid for the whole program run, so VRAM carries no
// lifecycle management of its own.
type VRAM struct {
	width         int
	height        int
	pixelsPerLine int
	base          uintptr
}

// ErrBadMode is returned when the graphics mode reported by firmware cannot
// back a drawable frame buffer.
var ErrBadMode = &kernel.Error{Module: "fb", Message: "unusable graphics mode"}

// NewVRAM builds the frame buffer capability from an already-located
// graphics output protocol record.
func NewVRAM(gop *uefi.GraphicsOutput) (*VRAM, *kernel.Error) {
	info := gop.Mode.Info
	v := &VRAM{
		width:         int(info.HorizontalResolution),
		height:        int(info.VerticalResolution),
		pixelsPerLine: int(info.PixelsPerScanLine),
		base:          gop.Mode.FrameBufferBase,
	}

	if v.base == 0 || v.width <= 0 || v.height <= 0 || v.pixelsPerLine < v.width {
		return nil, ErrBadMode
	}

	return v, nil
}

// Width returns the visible width in pixels.
func (v *VRAM) Width() int { return v.width }

// Height returns the visible height in pixels.
func (v *VRAM) Height() int { return v.height }

// PixelsPerLine returns the scan line width in pixels.
func (v *VRAM) PixelsPerLine() int { return v.pixelsPerLine }

// UncheckedPixelAt returns the pixel word at (x, y). See Bitmap for the
// bounds precondition.
func (v *VRAM) UncheckedPixelAt(x, y int) *uint32 {
	offset := uintptr(y*v.pixelsPerLine+x) * 4
	return (*uint32)(unsafe.Pointer(v.base + offset))
}
