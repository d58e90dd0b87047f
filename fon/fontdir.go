package fon

import "github.com/dewinfont/winfont/internal/bin"

const (
	fntDevicePtrOffset   = 0x65
	fntFaceNamePtrOffset = 0x69
	fntDirEntryPrefix    = 0x71
)

// direntry builds a FONTDIRENTRY from the raw bytes of a single FNT
// resource: the 113-byte decoder-visible header prefix, followed by the
// device name (empty if dfDeviceOffset is zero) and the face name, each
// NUL-terminated.
func direntry(fnt []byte) []byte {
	device := int(bin.Uint32(fnt[fntDevicePtrOffset:]))
	face := int(bin.Uint32(fnt[fntFaceNamePtrOffset:]))

	var devname []byte
	if device != 0 {
		devname = bin.ASCIZ(fnt[device:])
	}
	facename := bin.ASCIZ(fnt[face:])

	b := bin.NewBuilder()
	b.Write(fnt[0:fntDirEntryPrefix])
	b.Write(devname)
	b.U8(0)
	b.Write(facename)
	b.U8(0)
	return b.Bytes()
}
