package fon

import "github.com/dewinfont/winfont/internal/bin"

const peFontResourceType = 0x08

// splitPE walks the resource directory tree of a 32-bit PE image and
// returns the bytes of every RT_FONT (type 0x08) resource it finds. It
// descends into subdirectories at any depth — the real resource trees
// produced by rc.exe nest type -> name -> language, not just type -> data.
func splitPE(data []byte, peoff int) ([][]byte, error) {
	if !need(data, peoff+0x16, 2) {
		return nil, errMalformedAt("PE header too short", peoff)
	}
	secEntries := int(bin.Uint16(data[peoff+0x06:]))
	optHeaderSize := int(bin.Uint16(data[peoff+0x14:]))
	secTable := peoff + 0x18 + optHeaderSize

	var secRVA, secPtr, secSize int
	found := false
	for i := 0; i < secEntries; i++ {
		entry := secTable + i*0x28
		if !need(data, entry, 0x28) {
			return nil, errMalformedAt("truncated section table", entry)
		}
		name := bin.ASCIZ(data[entry : entry+8])
		if string(name) == ".rsrc" {
			secRVA = int(bin.Uint32(data[entry+0x0C:]))
			secSize = int(bin.Uint32(data[entry+0x10:]))
			secPtr = int(bin.Uint32(data[entry+0x14:]))
			found = true
			break
		}
	}
	if !found {
		return nil, &ErrNoRsrcSection{}
	}
	if !need(data, secPtr, secSize) {
		return nil, errMalformedAt("resource section out of range", secPtr)
	}
	rsrc := data[secPtr : secPtr+secSize]

	var dirTables, dataEntries []int
	gotOffset := func(off uint32) {
		if off&0x80000000 != 0 {
			dirTables = append(dirTables, int(off&^0x80000000))
		} else {
			dataEntries = append(dataEntries, int(off))
		}
	}
	doDirTable := func(off int, rtype int) error {
		if !need(rsrc, off+16, 2) {
			return errMalformedAt("truncated resource directory table", off)
		}
		number := int(bin.Uint16(rsrc[off+12:])) + int(bin.Uint16(rsrc[off+14:]))
		for i := 0; i < number; i++ {
			entry := off + 16 + 8*i
			if !need(rsrc, entry, 8) {
				return errMalformedAt("truncated resource directory entry", entry)
			}
			thetype := int(bin.Uint32(rsrc[entry:]))
			theoff := bin.Uint32(rsrc[entry+4:])
			if rtype == -1 || rtype == thetype {
				gotOffset(theoff)
			}
		}
		return nil
	}

	if err := doDirTable(0, peFontResourceType); err != nil {
		return nil, err
	}
	for len(dirTables) > 0 {
		table := dirTables[0]
		dirTables = dirTables[1:]
		if err := doDirTable(table, -1); err != nil {
			return nil, err
		}
	}

	var out [][]byte
	for _, off := range dataEntries {
		if !need(rsrc, off, 8) {
			return nil, errMalformedAt("truncated resource data entry", off)
		}
		rva := int(bin.Uint32(rsrc[off:]))
		size := int(bin.Uint32(rsrc[off+4:]))
		start := rva - secRVA
		if !need(rsrc, start, size) {
			return nil, &ErrResourceOverrun{}
		}
		out = append(out, rsrc[start:start+size])
	}
	return out, nil
}
