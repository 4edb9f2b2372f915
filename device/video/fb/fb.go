// Package fb provides the frame buffer capability and the rasterizer built on
// top of it. A Bitmap is any linear 32-bit-per-pixel canvas; the package
// supplies one backend for the firmware-owned VRAM region and one for
// off-screen memory so the drawing primitives and tests share the same code
// paths.
package fb

// Bitmap is implemented by linear frame buffers with a fixed 4 bytes per
// pixel. PixelsPerLine may exceed Width when the hardware pads scan lines;
// the pixels between Width and PixelsPerLine exist but are never visible.
type Bitmap interface {
	// Width returns the visible width in pixels.
	Width() int

	// Height returns the visible height in pixels.
	Height() int

	// PixelsPerLine returns the number of pixel slots between the start
	// of consecutive rows.
	PixelsPerLine() int

	// UncheckedPixelAt returns the 32-bit pixel word at (x, y) without
	// validating the coordinates.
	//
	// The caller must have already proven that (x, y) lies inside the
	// canvas, either through PixelAt or by validating the bounding region
	// of the full operation once before entering its pixel loop.
	UncheckedPixelAt(x, y int) *uint32
}

// PixelAt returns the pixel word at (x, y), or nil when the coordinates fall
// outside the canvas. This is the only way to reach a pixel without an
// explicit bounds proof at the call site.
func PixelAt(b Bitmap, x, y int) *uint32 {
	if !InXRange(b, x) || !InYRange(b, y) {
		return nil
	}
	return b.UncheckedPixelAt(x, y)
}

// InXRange reports whether column x is addressable on b. Columns between the
// visible width and the scan line width are excluded so that drawing never
// touches the padding pixels.
func InXRange(b Bitmap, x int) bool {
	return 0 <= x && x < min(b.Width(), b.PixelsPerLine())
}

// InYRange reports whether row y is addressable on b.
func InYRange(b Bitmap, y int) bool {
	return 0 <= y && y < b.Height()
}

// RGB packs a color into the 32-bit pixel format: bits 0-23 hold the color
// with red in the highest of the three bytes, the top byte is unused.
func RGB(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}
