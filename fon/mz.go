package fon

import "github.com/dewinfont/winfont/internal/bin"

// stubCode is a tiny real-mode DOS program that prints stubMessage and
// exits; it runs if the .FON is ever executed directly under DOS.
var stubCode = []byte{
	0xBA, 0x0E, 0x00, // mov dx,0xe
	0x0E,       // push cs
	0x1F,       // pop ds
	0xB4, 0x09, // mov ah,0x9
	0xCD, 0x21, // int 0x21
	0xB8, 0x01, 0x4C, // mov ax,0x4c01
	0xCD, 0x21, // int 0x21
}

const stubMessage = "This is not a program!\r\nFont library created by mkwinfont.\r\n"

// buildMZStub constructs the MZ executable stub that precedes the NE
// header in a .FON file: a minimal DOS EXE header, the real-mode stub
// code above, and a placeholder e_lfanew pointing at the NE header that
// immediately follows.
func buildMZStub() []byte {
	b := bin.NewBuilder()
	b.Write([]byte("MZ"))
	lastPagePatch := b.Placeholder(2)
	pagesPatch := b.Placeholder(2)
	b.U16(0)      // no relocations
	b.U16(4)      // 4-paragraph header
	b.U16(0x10)   // 16 extra paragraphs for the stack
	b.U16(0xFFFF) // maximum extra paragraphs: lots
	b.U16(0)
	b.U16(0x100) // SS:SP = 0000:0100
	b.U16(0)     // no checksum
	b.U16(0)
	b.U16(0) // CS:IP = 0000:0000
	b.U16(0x40)
	b.U16(0) // overlay number
	for i := 0; i < 4; i++ {
		b.U16(0)
	}
	b.U16(0)
	b.U16(0) // OEM id, OEM info
	for i := 0; i < 10; i++ {
		b.U16(0)
	}
	nePointerPatch := b.Placeholder(4)

	if b.Len() != 0x40 {
		panic("fon: MZ header prefix drifted from 0x40 bytes")
	}

	b.Write(stubCode)
	b.Write([]byte(stubMessage))
	b.U8('$')

	n := b.Len()
	pages := (n + 511) / 512
	lastPage := n - (pages-1)*512
	b.PatchU16(lastPagePatch, uint16(lastPage))
	b.PatchU16(pagesPatch, uint16(pages))

	b.Pad(16)
	b.PatchU32(nePointerPatch, uint32(b.Len()))

	return b.Bytes()
}
