package fnt

import (
	"github.com/dewinfont/winfont/internal/bin"
	"github.com/dewinfont/winfont/wincp"
)

// floorDiv is integer division rounding toward negative infinity, the way
// Python's // operates (and the way the width-bytes formula below was
// derived against original_source). Go's / truncates toward zero, which
// only differs from floorDiv when exactly one operand is negative — the
// degenerate all-zero-width font.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}

// Encode renders f as a version 3.00 FNT resource. The header layout
// follows original_source/src/winfont/fnt.py byte for byte, including the
// 148-byte prefix ahead of the 257-entry character table (256 real glyphs
// plus the trailing sentinel entry GDI expects at dfLastChar+1).
func Encode(f *Font) ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	avgwidth := f.Chars['X'].Width
	var maxwidth uint16
	fixed := true
	for i := range f.Chars {
		if f.Chars[i].Width != avgwidth {
			fixed = false
		}
		if f.Chars[i].Width > maxwidth {
			maxwidth = f.Chars[i].Width
		}
	}
	widthBytes := (floorDiv(int(maxwidth)-1, 16) + 1) * 2

	b := bin.NewBuilder()
	b.U16(0x0300)
	sizePatch := b.Placeholder(4)

	copyrightBytes := make([]byte, 60)
	copy(copyrightBytes, wincp.Encode(f.Copyright))
	b.Write(copyrightBytes)

	b.U16(0) // raster font, bits stored in file
	b.U16(f.PointSize)
	b.U16(96) // vertical resolution (dpi)
	b.U16(96) // horizontal resolution (dpi)
	b.U16(f.Ascent)
	b.U16(f.InLeading)
	b.U16(f.ExLeading)
	b.U8(boolByte(f.Italic))
	b.U8(boolByte(f.Underline))
	b.U8(boolByte(f.Strikeout))
	b.U16(uint16(f.Weight))
	b.U8(f.Charset)

	var pixwidth uint16
	if fixed {
		pixwidth = avgwidth
	}
	b.U16(pixwidth)
	b.U16(f.Height)

	var pitchFamily byte = 1
	if fixed {
		pitchFamily = 0
	}
	b.U8(pitchFamily)
	b.U16(avgwidth)
	b.U16(maxwidth)
	b.U8(0)   // first char
	b.U8(255) // last char
	b.U8(63)  // default char, relative to first char ('?')
	b.U8(32)  // break char, relative to first char (space)
	b.U16(uint16(widthBytes))
	b.U32(0) // device name offset, unused
	faceNamePatch := b.Placeholder(4)
	b.U32(0) // bits-pointer, filled in by the loader, always 0 on disk
	bitsOffsetPatch := b.Placeholder(4)
	b.U8(0) // reserved

	var dfFlags uint32 = 2
	if fixed {
		dfFlags = 1
	}
	b.U32(dfFlags)
	b.U16(0) // Aspace
	b.U16(0) // Bspace
	b.U16(0) // Cspace
	b.U32(0) // colour pointer
	b.Write(make([]byte, 16))

	offsetChartbl := b.Len()
	offsetBitmaps := offsetChartbl + 257*6
	b.PatchU32(bitsOffsetPatch, uint32(offsetBitmaps))

	bitmaps := make([]byte, 0, widthBytes*int(f.Height)*257)
	for i := 0; i < 257; i++ {
		width := avgwidth
		if i < 256 {
			width = f.Chars[i].Width
		}
		b.U16(width)
		b.U32(uint32(offsetBitmaps + len(bitmaps)))
		for j := 0; j < widthBytes; j++ {
			for k := 0; k < int(f.Height); k++ {
				var chardata uint32
				if i < 256 {
					chardata = uint32(f.Chars[i].Data[k])
				}
				chardata <<= uint(8*widthBytes - int(width))
				bitmaps = append(bitmaps, byte(chardata>>uint(8*(widthBytes-j-1))))
			}
		}
	}
	b.Write(bitmaps)

	b.PatchU32(faceNamePatch, uint32(b.Len()))
	b.Write(wincp.Encode(f.FaceName))
	b.U8(0)

	b.PatchU32(sizePatch, uint32(b.Len()))

	return b.Bytes(), nil
}
