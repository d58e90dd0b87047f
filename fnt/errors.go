package fnt

import "fmt"

// ErrVectorFont indicates that the ftype field marks the resource as a
// vector (outline) font, which this codec does not support.
type ErrVectorFont struct{}

func (*ErrVectorFont) Error() string {
	return "fnt: vector fonts are not supported"
}

// ErrFaceNameRange indicates that the face-name pointer in the header
// falls outside the supplied buffer.
type ErrFaceNameRange struct {
	Offset, Size int
}

func (e *ErrFaceNameRange) Error() string {
	return fmt.Sprintf("fnt: face name offset %d out of range for %d-byte buffer", e.Offset, e.Size)
}

// ErrUnknownVersion indicates a dfVersion other than 0x0200 or 0x0300.
// Decode never returns this: any dfVersion is accepted, and only the
// character-table entry size depends on it (see DESIGN.md). The type is
// defined to complete the error taxonomy even though nothing in this
// package currently constructs one.
type ErrUnknownVersion struct {
	Version uint16
}

func (e *ErrUnknownVersion) Error() string {
	return fmt.Sprintf("fnt: unknown FNT version 0x%04x", e.Version)
}

// ErrMalformed is the catch-all for a buffer too short to contain the
// structure being read at the point of failure.
type ErrMalformed struct {
	Reason string
}

func (e *ErrMalformed) Error() string {
	return "fnt: malformed font data: " + e.Reason
}
