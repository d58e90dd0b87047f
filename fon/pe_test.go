package fon

import (
	"bytes"
	"testing"

	"github.com/dewinfont/winfont/internal/bin"
)

// buildRsrc constructs a resource section whose RT_FONT (type 0x08) entry
// nests three levels deep: type -> name -> language -> data, matching the
// shape real rc.exe-built resource sections always have.
func buildRsrc(fontBytes []byte) []byte {
	b := bin.NewBuilder()

	b.Write(make([]byte, 12))
	b.U16(0)
	b.U16(1)
	b.U32(0x08)
	rootEntryOffset := b.Placeholder(4)
	nameDirOffset := b.Len()
	b.PatchU32(rootEntryOffset, uint32(0x80000000|nameDirOffset))

	b.Write(make([]byte, 12))
	b.U16(0)
	b.U16(1)
	b.U32(1)
	nameEntryOffset := b.Placeholder(4)
	langDirOffset := b.Len()
	b.PatchU32(nameEntryOffset, uint32(0x80000000|langDirOffset))

	b.Write(make([]byte, 12))
	b.U16(0)
	b.U16(1)
	b.U32(0x409)
	langEntryOffset := b.Placeholder(4)
	dataEntryOffset := b.Len()
	b.PatchU32(langEntryOffset, uint32(dataEntryOffset))

	rvaPatch := b.Placeholder(4)
	sizePatch := b.Placeholder(4)
	b.U32(0) // codepage
	b.U32(0) // reserved
	fontOffset := b.Len()
	b.PatchU32(rvaPatch, uint32(fontOffset))
	b.PatchU32(sizePatch, uint32(len(fontBytes)))

	b.Write(fontBytes)
	return b.Bytes()
}

func buildPE(rsrc []byte) []byte {
	b := bin.NewBuilder()
	b.Write([]byte("MZ"))
	b.Write(make([]byte, 0x3A))
	b.U32(0x40) // e_lfanew
	peOff := b.Len()
	if peOff != 0x40 {
		panic("test harness offset drift")
	}
	b.Write([]byte("PE\x00\x00"))
	b.U16(0) // Machine
	b.U16(1) // NumberOfSections
	b.Write(make([]byte, 12))
	b.U16(0) // SizeOfOptionalHeader
	b.U16(0) // Characteristics

	name := make([]byte, 8)
	copy(name, ".rsrc")
	b.Write(name)
	b.U32(0) // virtual size
	b.U32(0) // virtual address (RVA base 0 for this test)
	b.U32(uint32(len(rsrc)))
	rsrcPtrPatch := b.Placeholder(4)
	b.Write(make([]byte, 16))

	b.Pad(16)
	rsrcStart := b.Len()
	b.PatchU32(rsrcPtrPatch, uint32(rsrcStart))
	b.Write(rsrc)

	return b.Bytes()
}

func TestSplitPENestedResourceDirectory(t *testing.T) {
	want := []byte("sample FNT bytes for PE test")
	pe := buildPE(buildRsrc(want))

	got, err := Split(pe)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(got) = %d, want 1", len(got))
	}
	if !bytes.Equal(got[0], want) {
		t.Errorf("got %q, want %q", got[0], want)
	}
}
