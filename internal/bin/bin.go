// Package bin provides the little-endian byte primitives shared by the
// fnt and fon packages, plus a placeholder-patching byte buffer for
// emitting formats (FNT, FON/NE) whose headers record offsets and sizes
// that are only known once the rest of the file has been laid out.
package bin

// Uint16 reads a little-endian uint16 starting at b[0].
func Uint16(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}

// Uint32 reads a little-endian uint32 starting at b[0].
func Uint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// PutUint16 appends the little-endian encoding of x to b.
func PutUint16(b []byte, x uint16) []byte {
	return append(b, byte(x), byte(x>>8))
}

// PutUint32 appends the little-endian encoding of x to b.
func PutUint32(b []byte, x uint32) []byte {
	return append(b, byte(x), byte(x>>8), byte(x>>16), byte(x>>24))
}

// ASCIZ returns the prefix of b preceding the first NUL byte. If b
// contains no NUL byte, the whole of b is returned.
func ASCIZ(b []byte) []byte {
	for i, c := range b {
		if c == 0 {
			return b[:i]
		}
	}
	return b
}

// BoolString renders a boolean the way the FD text format does.
func BoolString(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
