package fnt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func monospace(height uint16, width uint16) *Font {
	f := New(height)
	f.FaceName = "Test"
	f.PointSize = 10
	f.Ascent = height
	f.Width = width
	for i := range f.Chars {
		f.Chars[i].Width = width
		f.Chars[i].Data = make([]uint16, height)
	}
	return f
}

func TestRoundTrip(t *testing.T) {
	f := monospace(8, 8)
	// Set every scanline of 'X' to all-ones; everything else stays zero.
	for j := range f.Chars['X'].Data {
		f.Chars['X'].Data[j] = 0xFF
	}

	data, err := Encode(f)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !f.Equal(got) {
		t.Errorf("round trip mismatch:\n%s", cmp.Diff(f, got))
	}
}

func TestBitPackingBoundary(t *testing.T) {
	// Width 3 is not a multiple of 8; the 3-bit patterns below must
	// survive encode+decode with correct MSB alignment.
	f := monospace(3, 3)
	f.Chars['A'].Width = 3
	f.Chars['A'].Data = []uint16{0b101, 0b010, 0b111}

	data, err := Encode(f)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !got.Chars['A'].Equal(&f.Chars['A']) {
		t.Errorf("char 'A' mismatch: got %+v, want %+v", got.Chars['A'], f.Chars['A'])
	}
}

func TestFixedPitchFlag(t *testing.T) {
	fixed := monospace(8, 8)
	data, err := Encode(fixed)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if dfFlags := data[0x76]; dfFlags != 1 {
		t.Errorf("dfFlags = %d, want 1 for a fixed-pitch font", dfFlags)
	}
	if pixWidth := int(data[offWidth]) | int(data[offWidth+1])<<8; pixWidth != 8 {
		t.Errorf("dfPixWidth = %d, want 8", pixWidth)
	}

	variable := monospace(8, 8)
	variable.Chars['Y'].Width = 5
	variable.Width = 0 // no longer fixed pitch now that one glyph differs
	data, err = Encode(variable)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if dfFlags := data[0x76]; dfFlags != 2 {
		t.Errorf("dfFlags = %d, want 2 for a variable-pitch font", dfFlags)
	}
	if pixWidth := int(data[offWidth]) | int(data[offWidth+1])<<8; pixWidth != 0 {
		t.Errorf("dfPixWidth = %d, want 0", pixWidth)
	}
}

func TestCopyrightTrim(t *testing.T) {
	f := monospace(1, 0)
	f.Copyright = "hello"
	data, err := Encode(f)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Copyright != "hello" {
		t.Errorf("Copyright = %q, want %q", got.Copyright, "hello")
	}

	// A 60-byte payload with no NUL decodes to the full string.
	full := make([]byte, 60)
	for i := range full {
		full[i] = 'a'
	}
	copy(data[offCopyright:offCopyright+60], full)
	got, err = Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Copyright != string(full) {
		t.Errorf("Copyright = %q, want 60 'a' characters", got.Copyright)
	}
}

func TestEncodeHeaderLength(t *testing.T) {
	f := monospace(8, 8)
	for j := range f.Chars['X'].Data {
		f.Chars['X'].Data[j] = 0xFF
	}

	data, err := Encode(f)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	// widthBytes for an all-8-pixel-wide font rounds up to 2 (the
	// encoder always pads to a whole number of 16-bit columns), and the
	// character table carries 257 entries (256 real glyphs plus the
	// dfLastChar+1 sentinel GDI expects).
	const widthBytes = 2
	wantLen := 148 + 257*6 + widthBytes*8*257 + len("Test\x00")
	if len(data) != wantLen {
		t.Errorf("len(data) = %d, want %d", len(data), wantLen)
	}
	gotSize := int(data[2]) | int(data[3])<<8 | int(data[4])<<16 | int(data[5])<<24
	if gotSize != len(data) {
		t.Errorf("header size field = %d, want %d", gotSize, len(data))
	}
}
