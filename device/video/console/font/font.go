// Package font provides the embedded bitmap font used for direct-to-buffer
// text rendering. The font ships as a plain text resource: each glyph entry
// is a header line holding the codepoint in hexadecimal ("0x" plus two hex
// digits) followed immediately by 16 rows of 8 characters, where '*' marks
// an ink cell and any other character a blank cell.
package font

import (
	_ "embed"
	"strconv"
	"strings"
)

// Glyph dimensions in pixels. Text rendered with this font advances 8 pixels
// per character horizontally and 16 pixels per line vertically.
const (
	GlyphWidth  = 8
	GlyphHeight = 16
)

// inkChar marks an ink cell in the font source.
const inkChar = '*'

//go:embed font.txt
var fontSource string

// Glyph is one character's ink/blank bitmap. Each entry holds a row with the
// leftmost column in the most significant bit.
type Glyph [GlyphHeight]uint8

// Bit reports whether the cell at (x, y) is ink.
func (g *Glyph) Bit(x, y int) bool {
	if x < 0 || x >= GlyphWidth || y < 0 || y >= GlyphHeight {
		return false
	}
	return g[y]&(1<<(GlyphWidth-1-x)) != 0
}

// glyphs is the sparse lookup table built from the font source once at
// program start. The table trades a one-time parse for O(1) lookups; the
// source is small and fixed.
var glyphs = parseSource(fontSource)

// Lookup returns the glyph for the supplied codepoint, or nil when the
// codepoint lies outside the single-byte range or is absent from the table.
// A miss is a normal outcome, not an error; the table is sparse.
func Lookup(c rune) *Glyph {
	if c < 0 || c > 0xff {
		return nil
	}
	return glyphs[c]
}

// parseSource scans the text resource into a sparse table keyed by
// codepoint. Rows shorter than the glyph width leave the remaining cells
// blank; when a codepoint appears more than once the first entry wins.
func parseSource(src string) [256]*Glyph {
	var table [256]*Glyph

	lines := strings.Split(src, "\n")
	for i := 0; i < len(lines); i++ {
		cp, ok := headerCodepoint(lines[i])
		if !ok {
			continue
		}

		var glyph Glyph
		for row := 0; row < GlyphHeight && i+1+row < len(lines); row++ {
			line := lines[i+1+row]
			for col := 0; col < GlyphWidth && col < len(line); col++ {
				if line[col] == inkChar {
					glyph[row] |= 1 << (GlyphWidth - 1 - col)
				}
			}
		}

		if table[cp] == nil {
			table[cp] = &glyph
		}
		i += GlyphHeight
	}

	return table
}

// headerCodepoint parses a glyph header line of the form "0x" plus two hex
// digits.
func headerCodepoint(line string) (uint8, bool) {
	if !strings.HasPrefix(line, "0x") {
		return 0, false
	}
	cp, err := strconv.ParseUint(line[2:], 16, 8)
	if err != nil {
		return 0, false
	}
	return uint8(cp), true
}
