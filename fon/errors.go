// Package fon implements the Windows FON font-library container: an MZ
// executable stub wrapping either a 16-bit NE or a 32-bit PE resource
// section, with one or more FNT resources (plus a FONTDIR resource)
// embedded inside. fon operates purely on byte slices — the FNT payloads
// it extracts or embeds are opaque to it; package fnt interprets them.
package fon

import "fmt"

// ErrBadMZ indicates the input does not start with the "MZ" signature.
type ErrBadMZ struct{}

func (*ErrBadMZ) Error() string { return "fon: MZ signature not found" }

// ErrBadExeSignature indicates the header the MZ e_lfanew field points to
// is neither "NE" nor "PE\x00\x00".
type ErrBadExeSignature struct{}

func (*ErrBadExeSignature) Error() string { return "fon: NE or PE signature not found" }

// ErrNoRsrcSection indicates a PE file with no ".rsrc" section.
type ErrNoRsrcSection struct{}

func (*ErrNoRsrcSection) Error() string { return "fon: unable to locate resource section" }

// ErrResourceOverrun indicates a resource table entry whose start/size
// would read past the end of the file.
type ErrResourceOverrun struct{}

func (*ErrResourceOverrun) Error() string { return "fon: resource overruns file boundaries" }

// ErrMalformed is the catch-all for a buffer too short to contain the
// structure being read at the point of failure.
type ErrMalformed struct {
	Reason string
}

func (e *ErrMalformed) Error() string { return "fon: malformed font library: " + e.Reason }

// errMalformedAt is a convenience for building ErrMalformed with context.
func errMalformedAt(reason string, offset int) error {
	return &ErrMalformed{Reason: fmt.Sprintf("%s (offset %d)", reason, offset)}
}
