// Package console renders text into a frame buffer using the embedded bitmap
// font, and provides the console device that adapts a character stream into
// glyph placements with cursor tracking and scrolling.
package console

import (
	"io"

	"gopherboot/device/video/console/font"
	"gopherboot/device/video/fb"
	"gopherboot/kernel"
	"gopherboot/kernel/kfmt"
)

// DrawGlyph renders the glyph for c with its top-left corner at (x, y). Only
// ink cells are written; blank cells leave the buffer untouched so glyphs
// blit transparently over existing content. A codepoint without a glyph in
// the font table renders nothing. Cells falling outside the canvas are
// skipped.
func DrawGlyph(b fb.Bitmap, x, y int, color uint32, c rune) {
	glyph := font.Lookup(c)
	if glyph == nil {
		return
	}

	for dy := 0; dy < font.GlyphHeight; dy++ {
		for dx := 0; dx < font.GlyphWidth; dx++ {
			if glyph.Bit(dx, dy) {
				fb.DrawPoint(b, x+dx, y+dy, color)
			}
		}
	}
}

// DrawString renders text left to right starting at (x, y) with a fixed
// advance of one glyph width per character. Newlines are not interpreted;
// multi-line layout belongs to the console device, which tracks vertical
// advance itself.
func DrawString(b fb.Bitmap, x, y int, color uint32, text string) {
	for i := 0; i < len(text); i++ {
		DrawGlyph(b, x+i*font.GlyphWidth, y, color, rune(text[i]))
	}
}

// FbConsole is a text console on top of a frame buffer. It implements
// io.Writer so it can serve as the kfmt output sink, and device.Driver so
// the hal probe flow can activate it.
type FbConsole struct {
	bitmap fb.Bitmap

	fg, bg uint32

	// Cursor position in pixels; always a multiple of the glyph size.
	cursorX, cursorY int
}

// NewFbConsole returns a console drawing white text on a black background.
func NewFbConsole(b fb.Bitmap) *FbConsole {
	return &FbConsole{
		bitmap: b,
		fg:     fb.RGB(255, 255, 255),
		bg:     fb.RGB(0, 0, 0),
	}
}

// Bitmap returns the frame buffer this console draws into.
func (cons *FbConsole) Bitmap() fb.Bitmap {
	return cons.bitmap
}

// Dimensions returns the console size in characters.
func (cons *FbConsole) Dimensions() (widthInChars, heightInChars int) {
	return cons.bitmap.Width() / font.GlyphWidth, cons.bitmap.Height() / font.GlyphHeight
}

// SetColors selects the foreground and background colors for subsequent
// writes.
func (cons *FbConsole) SetColors(fg, bg uint32) {
	cons.fg, cons.bg = fg, bg
}

// MoveCursor places the cursor at the supplied character cell. Out-of-range
// cells are clamped to the closest valid cell.
func (cons *FbConsole) MoveCursor(col, row int) {
	widthInChars, heightInChars := cons.Dimensions()
	col = clamp(col, 0, widthInChars-1)
	row = clamp(row, 0, heightInChars-1)
	cons.cursorX = col * font.GlyphWidth
	cons.cursorY = row * font.GlyphHeight
}

// Clear fills the whole canvas with the background color and homes the
// cursor.
func (cons *FbConsole) Clear() {
	fb.FillRect(cons.bitmap, 0, 0, cons.bitmap.Width(), cons.bitmap.Height(), cons.bg)
	cons.cursorX, cons.cursorY = 0, 0
}

// Write renders p at the cursor. A newline moves the cursor to the start of
// the next text line; long lines wrap; once the cursor passes the bottom of
// the canvas the contents scroll up by one text line.
func (cons *FbConsole) Write(p []byte) (int, error) {
	for _, ch := range p {
		if ch == '\n' {
			cons.lineFeed()
			continue
		}

		if cons.cursorX+font.GlyphWidth > cons.bitmap.Width() {
			cons.lineFeed()
		}

		DrawGlyph(cons.bitmap, cons.cursorX, cons.cursorY, cons.fg, rune(ch))
		cons.cursorX += font.GlyphWidth
	}

	return len(p), nil
}

// lineFeed advances the cursor to the start of the next text line, scrolling
// the canvas when the new line would not fit.
func (cons *FbConsole) lineFeed() {
	cons.cursorX = 0
	cons.cursorY += font.GlyphHeight

	for cons.cursorY+font.GlyphHeight > cons.bitmap.Height() {
		cons.scrollUp(font.GlyphHeight)
		cons.cursorY -= font.GlyphHeight
	}
}

// scrollUp moves the canvas contents up by the supplied number of pixel rows
// and clears the vacated band to the background color.
func (cons *FbConsole) scrollUp(rows int) {
	var (
		b      = cons.bitmap
		width  = b.Width()
		height = b.Height()
	)

	if rows <= 0 || rows > height {
		return
	}

	for y := 0; y < height-rows; y++ {
		for x := 0; x < width; x++ {
			*b.UncheckedPixelAt(x, y) = *b.UncheckedPixelAt(x, y+rows)
		}
	}

	fb.FillRect(b, 0, height-rows, width, rows, cons.bg)
}

// DriverName returns the name of this driver.
func (cons *FbConsole) DriverName() string {
	return "fb_console"
}

// DriverVersion returns the version of this driver.
func (cons *FbConsole) DriverVersion() (uint16, uint16, uint16) {
	return 0, 1, 0
}

// DriverInit initializes this driver.
func (cons *FbConsole) DriverInit(w io.Writer) *kernel.Error {
	cons.Clear()
	kfmt.Fprintf(w, "framebuffer %dx%d, %d pixels per scan line\n",
		cons.bitmap.Width(), cons.bitmap.Height(), cons.bitmap.PixelsPerLine())
	return nil
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
