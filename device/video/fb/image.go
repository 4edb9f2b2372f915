package fb

// Image is a Bitmap backed by ordinary memory. It serves as an off-screen
// drawing target and as the canvas used by the package tests; the rasterizer
// treats it exactly like the VRAM backend.
type Image struct {
	width         int
	height        int
	pixelsPerLine int
	pix           []uint32
}

// NewImage allocates an off-screen bitmap. A pixelsPerLine smaller than
// width is widened to width.
func NewImage(width, height, pixelsPerLine int) *Image {
	if pixelsPerLine < width {
		pixelsPerLine = width
	}
	return &Image{
		width:         width,
		height:        height,
		pixelsPerLine: pixelsPerLine,
		pix:           make([]uint32, height*pixelsPerLine),
	}
}

// Width returns the visible width in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the visible height in pixels.
func (img *Image) Height() int { return img.height }

// PixelsPerLine returns the scan line width in pixels.
func (img *Image) PixelsPerLine() int { return img.pixelsPerLine }

// UncheckedPixelAt returns the pixel word at (x, y). See Bitmap for the
// bounds precondition.
func (img *Image) UncheckedPixelAt(x, y int) *uint32 {
	return &img.pix[y*img.pixelsPerLine+x]
}

// Pix exposes the raw pixel words, one row every PixelsPerLine entries.
func (img *Image) Pix() []uint32 { return img.pix }
