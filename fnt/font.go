// Package fnt implements the Font/Char data model shared by every codec
// in this module, and the codec for the Windows FNT raster-font resource
// itself (version 2.00 and 3.00).
package fnt

import "fmt"

// Char is a single glyph: a cell width in pixels and one packed scanline
// per row of the font. Each scanline holds its bits left-to-right with
// the leftmost pixel in bit Width-1; bits at or above bit Width are
// always zero.
type Char struct {
	Width uint16
	Data  []uint16
}

// Equal reports whether c and other describe the same glyph.
func (c *Char) Equal(other *Char) bool {
	if c.Width != other.Width || len(c.Data) != len(other.Data) {
		return false
	}
	for i, v := range c.Data {
		if other.Data[i] != v {
			return false
		}
	}
	return true
}

// Font is the in-memory representation of a Windows bitmap font, shared
// by the FNT, FD, FON and JSON codecs. See package fon for the container
// format that embeds one or more FNT-encoded Fonts, and package fd for
// the textual rendering of a Font.
type Font struct {
	FaceName  string
	Copyright string

	PointSize uint16
	Height    uint16
	Ascent    uint16

	InLeading uint16
	ExLeading uint16

	Italic    bool
	Underline bool
	Strikeout bool

	Weight  int
	Charset uint8

	// Width is the nominal cell width: 0 for variable pitch, otherwise
	// the fixed cell width shared by every glyph.
	Width uint16

	ResX uint16
	ResY uint16

	// Chars holds exactly 256 glyphs, indexed by byte value.
	Chars [256]Char
}

// New returns a Font with 256 zero-width, all-blank glyphs of the given
// height and the Windows defaults (96 dpi, weight 400).
func New(height uint16) *Font {
	f := &Font{
		Height: height,
		ResX:   96,
		ResY:   96,
		Weight: 400,
	}
	for i := range f.Chars {
		f.Chars[i] = Char{Data: make([]uint16, height)}
	}
	return f
}

// Validate checks the structural invariants every encoder assumes of a
// well-formed Font: exactly 256 chars, each with Height scanlines, each
// scanline free of bits at or above bit Width, zero-filled data for
// zero-width glyphs, and a weight in [1,1000].
func (f *Font) Validate() error {
	if f.Weight < 1 || f.Weight > 1000 {
		return fmt.Errorf("fnt: weight %d out of range [1,1000]", f.Weight)
	}
	for i := range f.Chars {
		c := &f.Chars[i]
		if len(c.Data) != int(f.Height) {
			return fmt.Errorf("fnt: char %d has %d scanlines, want %d", i, len(c.Data), f.Height)
		}
		if c.Width == 0 {
			for j, v := range c.Data {
				if v != 0 {
					return fmt.Errorf("fnt: char %d is zero-width but scanline %d is non-zero", i, j)
				}
			}
			continue
		}
		mask := ^uint16(0)
		if c.Width < 16 {
			mask = (uint16(1) << c.Width) - 1
		}
		for j, v := range c.Data {
			if v&^mask != 0 {
				return fmt.Errorf("fnt: char %d scanline %d has bits set above width %d", i, j, c.Width)
			}
		}
	}
	return nil
}

// Equal reports whether f and other describe the same font, field for
// field. Used by the round-trip test suite.
func (f *Font) Equal(other *Font) bool {
	if f.FaceName != other.FaceName ||
		f.Copyright != other.Copyright ||
		f.PointSize != other.PointSize ||
		f.Height != other.Height ||
		f.Ascent != other.Ascent ||
		f.InLeading != other.InLeading ||
		f.ExLeading != other.ExLeading ||
		f.Italic != other.Italic ||
		f.Underline != other.Underline ||
		f.Strikeout != other.Strikeout ||
		f.Weight != other.Weight ||
		f.Charset != other.Charset ||
		f.Width != other.Width ||
		f.ResX != other.ResX ||
		f.ResY != other.ResY {
		return false
	}
	for i := range f.Chars {
		if !f.Chars[i].Equal(&other.Chars[i]) {
			return false
		}
	}
	return true
}
