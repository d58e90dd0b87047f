package fon

import (
	"testing"
)

// sampleFNT builds a minimal, syntactically valid FNT-shaped buffer large
// enough to exercise the FONTDIR/NE plumbing without depending on package
// fnt (fon operates purely on bytes).
func sampleFNT(pointSize uint16, faceName string) []byte {
	const headerLen = 148
	buf := make([]byte, headerLen+len(faceName)+1)
	buf[0x44], buf[0x45] = byte(pointSize), byte(pointSize>>8) // dfPointSize
	faceOff := headerLen
	buf[0x69] = byte(faceOff)
	buf[0x6A] = byte(faceOff >> 8)
	buf[0x6B] = byte(faceOff >> 16)
	buf[0x6C] = byte(faceOff >> 24)
	copy(buf[faceOff:], faceName)
	return buf
}

func TestBuildAndSplitNE(t *testing.T) {
	fnts := [][]byte{sampleFNT(8, "Test"), sampleFNT(10, "Test")}
	fon := BuildNE("Test", fnts)

	got, err := Split(fon)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(got) != len(fnts) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(fnts))
	}
	for i := range fnts {
		// Each resource is NUL-padded up to a 16-byte boundary, so the
		// split-out slice is the original FNT bytes plus trailing zero
		// padding, not a byte-for-byte match.
		want := fnts[i]
		if len(got[i]) < len(want) {
			t.Errorf("font %d: len(got) = %d, shorter than source %d", i, len(got[i]), len(want))
			continue
		}
		if string(got[i][:len(want)]) != string(want) {
			t.Errorf("font %d: resource prefix does not match source FNT bytes", i)
		}
		for _, b := range got[i][len(want):] {
			if b != 0 {
				t.Errorf("font %d: padding byte = %#x, want 0", i, b)
				break
			}
		}
		if len(got[i])%16 != 0 {
			t.Errorf("font %d: padded length %d is not 16-byte aligned", i, len(got[i]))
		}
	}
}

func TestSplitRejectsNonMZ(t *testing.T) {
	_, err := Split([]byte("not an exe"))
	if _, ok := err.(*ErrBadMZ); !ok {
		t.Errorf("err = %v, want *ErrBadMZ", err)
	}
}

func TestFontDirEntryPrefix(t *testing.T) {
	f := sampleFNT(8, "Test")
	entry := direntry(f)
	if string(entry[:fntDirEntryPrefix]) != string(f[:fntDirEntryPrefix]) {
		t.Errorf("FONTDIR entry prefix does not match source FNT header")
	}
}
