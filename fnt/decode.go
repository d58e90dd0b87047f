package fnt

import (
	"github.com/dewinfont/winfont/internal/bin"
	"github.com/dewinfont/winfont/wincp"
)

// Header field offsets within the first 113 bytes of a FNT resource, as
// laid out by Windows GDI (and read back, byte for byte, by
// fnt_bytes_to_font in the original Python implementation this package
// is grounded on).
const (
	offVersion     = 0x00
	offSize        = 0x02
	offCopyright   = 0x06
	offFtype       = 0x42
	offPointSize   = 0x44
	offResY        = 0x46
	offResX        = 0x48
	offAscent      = 0x4A
	offInLeading   = 0x4C
	offExLeading   = 0x4E
	offItalic      = 0x50
	offUnderline   = 0x51
	offStrikeout   = 0x52
	offWeight      = 0x53
	offCharset     = 0x55
	offWidth       = 0x56
	offHeight      = 0x58
	offPitchFamily = 0x5A
	offAvgWidth    = 0x5B
	offMaxWidth    = 0x5D
	offFirstChar   = 0x5F
	offLastChar    = 0x60
	offDefaultChar = 0x61
	offBreakChar   = 0x62
	offWidthBytes  = 0x63
	offDevicePtr   = 0x65
	offFaceNamePtr = 0x69
	offBitsPtr     = 0x6D

	headerSize = 0x71 // 113

	ctStartV2 = 0x76
	ctEntryV2 = 4
	ctStartV3 = 0x94
	ctEntryV3 = 6
)

// Decode parses a standalone FNT byte slice (as produced by Encode, or
// extracted from a FON container by package fon) into a Font.
func Decode(data []byte) (*Font, error) {
	if len(data) < headerSize {
		return nil, &ErrMalformed{Reason: "buffer shorter than the 113-byte FNT header"}
	}

	version := bin.Uint16(data[offVersion:])
	ftype := bin.Uint16(data[offFtype:])
	if ftype&1 != 0 {
		return nil, &ErrVectorFont{}
	}

	offFaceName := int(bin.Uint32(data[offFaceNamePtr:]))
	if offFaceName < 0 || offFaceName > len(data) {
		return nil, &ErrFaceNameRange{Offset: offFaceName, Size: len(data)}
	}

	height := bin.Uint16(data[offHeight:])

	f := &Font{
		FaceName:  wincp.Decode(bin.ASCIZ(data[offFaceName:])),
		Copyright: wincp.Decode(bin.ASCIZ(data[offCopyright : offCopyright+60])),
		PointSize: bin.Uint16(data[offPointSize:]),
		Height:    height,
		Ascent:    bin.Uint16(data[offAscent:]),
		InLeading: bin.Uint16(data[offInLeading:]),
		ExLeading: bin.Uint16(data[offExLeading:]),
		Italic:    data[offItalic] != 0,
		Underline: data[offUnderline] != 0,
		Strikeout: data[offStrikeout] != 0,
		Weight:    int(bin.Uint16(data[offWeight:])),
		Charset:   data[offCharset],
		Width:     bin.Uint16(data[offWidth:]),
		ResX:      bin.Uint16(data[offResX:]),
		ResY:      bin.Uint16(data[offResY:]),
	}

	ctStart, ctEntry := ctStartV3, ctEntryV3
	if version == 0x0200 {
		ctStart, ctEntry = ctStartV2, ctEntryV2
	}

	for i := range f.Chars {
		f.Chars[i] = Char{Data: make([]uint16, height)}
	}

	firstChar := int(data[offFirstChar])
	lastChar := int(data[offLastChar])
	for i := firstChar; i <= lastChar && i < 256; i++ {
		entry := ctStart + ctEntry*(i-firstChar)
		if entry+ctEntry > len(data) {
			return nil, &ErrMalformed{Reason: "character table runs past end of buffer"}
		}
		w := bin.Uint16(data[entry:])
		var off int
		if ctEntry == 4 {
			off = int(bin.Uint16(data[entry+2:]))
		} else {
			off = int(bin.Uint32(data[entry+2:]))
		}

		widthBytes := (int(w) + 7) / 8
		rowData := make([]uint16, height)
		for j := 0; j < int(height); j++ {
			var acc uint32
			for k := 0; k < widthBytes; k++ {
				bytePos := off + k*int(height) + j
				if bytePos < 0 || bytePos >= len(data) {
					return nil, &ErrMalformed{Reason: "glyph bitmap runs past end of buffer"}
				}
				acc = acc<<8 | uint32(data[bytePos])
			}
			if widthBytes > 0 {
				acc >>= uint(8*widthBytes - int(w))
			}
			rowData[j] = uint16(acc)
		}
		f.Chars[i] = Char{Width: w, Data: rowData}
	}

	return f, nil
}
