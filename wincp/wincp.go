// Package wincp implements the Windows-1252 encoding used for the
// facename and copyright fields of a FNT resource.
//
// This mirrors the role the teacher's mac package plays for MacRoman:
// a small, self-contained codepage codec that other packages use to move
// between on-disk bytes and Go strings.
package wincp

import (
	"golang.org/x/text/encoding/charmap"
)

// Decode decodes a Windows-1252 encoded byte slice into a string. Bytes
// that charmap.Windows1252 cannot represent are replaced with the Unicode
// replacement character, matching the permissive behaviour real Windows
// GDI implementations show when loading slightly corrupt resources.
func Decode(b []byte) string {
	s, _ := charmap.Windows1252.NewDecoder().String(string(b))
	return s
}

// Encode encodes a string as Windows-1252. Runes that cannot be
// represented are replaced with '?'.
func Encode(s string) []byte {
	b, err := charmap.Windows1252.NewEncoder().Bytes([]byte(s))
	if err != nil {
		// Fall back to a byte-by-byte pass so that a single
		// unencodable rune doesn't lose the rest of the string.
		out := make([]byte, 0, len(s))
		enc := charmap.Windows1252.NewEncoder()
		for _, r := range s {
			rb, err := enc.Bytes([]byte(string(r)))
			if err != nil || len(rb) == 0 {
				out = append(out, '?')
				continue
			}
			out = append(out, rb...)
		}
		return out
	}
	return b
}
