package fon

import "github.com/dewinfont/winfont/internal/bin"

const neFontResourceType = 0x8008

func need(data []byte, off, n int) bool {
	return off >= 0 && n >= 0 && off+n <= len(data)
}

// splitNE walks the resource table of a 16-bit NE executable and returns
// the bytes of every RT_FONT (0x8008) resource it finds.
func splitNE(data []byte, neoff int) ([][]byte, error) {
	if !need(data, neoff+0x24, 2) {
		return nil, &ErrMalformed{Reason: "NE header too short for resource table offset"}
	}
	rtable := int(bin.Uint16(data[neoff+0x24:])) + neoff
	if !need(data, rtable, 2) {
		return nil, errMalformedAt("resource table out of range", rtable)
	}
	shift := uint(bin.Uint16(data[rtable:]))

	var out [][]byte
	p := rtable + 2
	for {
		if !need(data, p, 8) {
			return nil, errMalformedAt("truncated TYPEINFO", p)
		}
		rtype := bin.Uint16(data[p:])
		if rtype == 0 {
			break
		}
		count := int(bin.Uint16(data[p+2:]))
		p += 8
		for i := 0; i < count; i++ {
			if !need(data, p, 12) {
				return nil, errMalformedAt("truncated NAMEINFO", p)
			}
			start := int(bin.Uint16(data[p:])) << shift
			size := int(bin.Uint16(data[p+2:])) << shift
			if start < 0 || size < 0 || start+size > len(data) {
				return nil, &ErrResourceOverrun{}
			}
			if rtype == neFontResourceType {
				out = append(out, data[start:start+size])
			}
			p += 12
		}
	}
	return out, nil
}

// BuildNE assembles a 16-bit NE .FON file embedding fnts (raw FNT
// resource bytes, in the order they should appear), with the given shared
// face name written into the FONTRES non-resident-name-table entry and
// the NE module name.
func BuildNE(name string, fnts [][]byte) []byte {
	nameBytes := []byte(name)

	fontdir := bin.NewBuilder()
	fontdir.U16(uint16(len(fnts)))
	for i, fnt := range fnts {
		fontdir.U16(uint16(i + 1))
		fontdir.Write(direntry(fnt))
	}

	stubdata := buildMZStub()

	nonres := bin.NewBuilder()
	fontres := append([]byte("FONTRES 100,96,96 : "), nameBytes...)
	nonres.U8(byte(len(fontres)))
	nonres.Write(fontres)
	nonres.Write([]byte{0, 0, 0})

	res := bin.NewBuilder()
	mname := filterModuleName(nameBytes)
	res.U8(byte(len(mname)))
	res.Write(mname)
	res.Write([]byte{0, 0, 0})

	entry := []byte{0, 0} // entry table: a single zero word

	resrcsize := 12 + 20 + 8 + 12*len(fnts)
	resrcpad := (align16(resrcsize)) - resrcsize

	p := 0x40
	offSegTable := p
	offResTable := p
	p += resrcsize + resrcpad
	offRes := p
	p += res.Len()
	offModRef := p
	offImport := p
	offEntry := p
	p += len(entry)
	offNonRes := p
	p += nonres.Len()

	pad := align16(p) - p
	p += pad
	q := p + len(stubdata)

	restable := bin.NewBuilder()
	restable.U16(4) // shift count

	resdata := bin.NewBuilder()

	restable.U16(0x8007) // RT_FONTDIR, high bit set marks integer type id
	restable.U16(1)
	restable.U32(0)
	restable.U16(uint16((q + resdata.Len()) >> 4))
	start := resdata.Len()
	resdata.Write(fontdir.Bytes())
	resdata.Pad(16)
	restable.U16(uint16((resdata.Len() - start) >> 4))
	restable.U16(0x0C50)
	restable.U16(uint16(resrcsize - 8))
	restable.U32(0)

	restable.U16(neFontResourceType)
	restable.U16(uint16(len(fnts)))
	restable.U32(0)
	for i, f := range fnts {
		restable.U16(uint16((q + resdata.Len()) >> 4))
		start := resdata.Len()
		resdata.Write(f)
		resdata.Pad(16)
		restable.U16(uint16((resdata.Len() - start) >> 4))
		restable.U16(0x1C30)
		restable.U16(uint16(0x8001 + i))
		restable.U32(0)
	}
	restable.U16(0) // end of resource table

	restable.Write([]byte("\x07FONTDIR"))
	restable.Write(make([]byte, resrcpad))

	out := bin.NewBuilder()
	out.Write(stubdata)
	out.Write([]byte("NE"))
	out.U8(5)
	out.U8(10)
	out.U16(uint16(offEntry))
	out.U16(uint16(len(entry)))
	out.U32(0)      // no CRC
	out.U16(0x8308) // program flags
	out.U16(0)
	out.U16(0)
	out.U16(0)
	out.U32(0)
	out.U32(0)
	out.U16(0)
	out.U16(0)
	out.U16(uint16(len(nonres.Bytes())))
	out.U16(uint16(offSegTable))
	out.U16(uint16(offResTable))
	out.U16(uint16(offRes))
	out.U16(uint16(offModRef))
	out.U16(uint16(offImport))
	out.U32(uint32(len(stubdata) + offNonRes))
	out.U16(0) // no movable entries
	out.U16(4) // segment alignment shift count
	out.U16(0) // no resource segments
	out.U8(2)  // target OS: Windows
	out.U8(8)
	out.U16(0)
	out.U16(0)
	out.U16(0)
	out.U16(0x300)

	out.Write(restable.Bytes())
	out.Write(res.Bytes())
	out.Write(entry)
	out.Write(nonres.Bytes())
	out.Write(make([]byte, pad))
	out.Write(resdata.Bytes())

	return out.Bytes()
}

func align16(n int) int {
	return (n + 15) &^ 15
}

func filterModuleName(name []byte) []byte {
	const alphanum = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	out := make([]byte, 0, len(name))
	for _, c := range name {
		for i := 0; i < len(alphanum); i++ {
			if alphanum[i] == c {
				out = append(out, c)
				break
			}
		}
	}
	return out
}
