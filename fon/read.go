package fon

import "github.com/dewinfont/winfont/internal/bin"

// Split walks a FON container and returns the raw bytes of each embedded
// FNT resource, in resource-table order. It does not itself decode the
// FNT payloads.
func Split(data []byte) ([][]byte, error) {
	if len(data) < 2 || data[0] != 'M' || data[1] != 'Z' {
		return nil, &ErrBadMZ{}
	}
	if len(data) < 0x40 {
		return nil, &ErrMalformed{Reason: "too short to hold an MZ header"}
	}
	neoff := int(bin.Uint32(data[0x3C:]))
	if neoff < 0 || neoff+4 > len(data) {
		return nil, &ErrMalformed{Reason: "e_lfanew points outside the file"}
	}
	switch {
	case data[neoff] == 'N' && data[neoff+1] == 'E':
		return splitNE(data, neoff)
	case data[neoff] == 'P' && data[neoff+1] == 'E' && data[neoff+2] == 0 && data[neoff+3] == 0:
		return splitPE(data, neoff)
	default:
		return nil, &ErrBadExeSignature{}
	}
}
