package fd

import (
	"bufio"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/dewinfont/winfont/fnt"
)

var fdTranslate = strings.NewReplacer(".", "0", "-", "0", "x", "1", "#", "1")

func lookupIntAttr(keyword string) (func(*fnt.Font, int), bool) {
	switch keyword {
	case "ascent":
		return func(f *fnt.Font, v int) { f.Ascent = uint16(v) }, true
	case "charset":
		return func(f *fnt.Font, v int) { f.Charset = uint8(v) }, true
	case "exleading":
		return func(f *fnt.Font, v int) { f.ExLeading = uint16(v) }, true
	case "font_width":
		return func(f *fnt.Font, v int) { f.Width = uint16(v) }, true
	case "height":
		return func(f *fnt.Font, v int) { f.Height = uint16(v) }, true
	case "inleading":
		return func(f *fnt.Font, v int) { f.InLeading = uint16(v) }, true
	case "pointsize":
		return func(f *fnt.Font, v int) { f.PointSize = uint16(v) }, true
	case "res_x":
		return func(f *fnt.Font, v int) { f.ResX = uint16(v) }, true
	case "res_y":
		return func(f *fnt.Font, v int) { f.ResY = uint16(v) }, true
	case "weight":
		return func(f *fnt.Font, v int) { f.Weight = v }, true
	}
	return nil, false
}

func lookupBoolAttr(keyword string) (func(*fnt.Font, bool), bool) {
	switch keyword {
	case "italic":
		return func(f *fnt.Font, v bool) { f.Italic = v }, true
	case "underline":
		return func(f *fnt.Font, v bool) { f.Underline = v }, true
	case "strikeout":
		return func(f *fnt.Font, v bool) { f.Strikeout = v }, true
	}
	return nil, false
}

// Decode parses an FD text stream into a Font. Height must appear before
// the first "char" line, since every glyph's scanline slice is allocated
// at that point (matching the original reader, which allocates char data
// against whatever height has been seen so far).
func Decode(r io.Reader) (*fnt.Font, error) {
	f := &fnt.Font{Copyright: "(unknown)", FaceName: "(unknown)"}
	chars := map[int]*fnt.Char{}

	curChar := -1
	dataY := 0

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimLeft(strings.TrimRight(scanner.Text(), "\r\n"), " ")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		space := strings.IndexByte(line, ' ')
		var keyword, rest string
		if space == -1 {
			keyword, rest = line, ""
		} else {
			keyword, rest = line[:space], line[space+1:]
		}

		switch {
		case keyword == "copyright":
			if len(rest) > 59 {
				return nil, &ErrCopyrightTooLong{}
			}
			f.Copyright = rest
			continue
		case keyword == "facename":
			f.FaceName = rest
			continue
		}

		if setter, ok := lookupIntAttr(keyword); ok {
			v, err := strconv.Atoi(rest)
			if err != nil {
				return nil, &ErrUnknownKeyword{Line: lineno, Token: keyword}
			}
			setter(f, v)
			continue
		}
		if setter, ok := lookupBoolAttr(keyword); ok {
			setter(f, rest == "yes")
			continue
		}
		if keyword == "char" {
			idx, err := strconv.Atoi(rest)
			if err != nil {
				return nil, &ErrUnknownKeyword{Line: lineno, Token: keyword}
			}
			curChar = idx
			dataY = 0
			chars[idx] = &fnt.Char{Data: make([]uint16, f.Height)}
			continue
		}
		if keyword == "width" {
			if curChar < 0 {
				return nil, &ErrUnknownKeyword{Line: lineno, Token: keyword}
			}
			v, err := strconv.Atoi(rest)
			if err != nil {
				return nil, &ErrUnknownKeyword{Line: lineno, Token: keyword}
			}
			chars[curChar].Width = uint16(v)
			continue
		}

		// Otherwise this must be a glyph row of './-/x/#'.
		if curChar < 0 {
			return nil, &ErrUnknownKeyword{Line: lineno, Token: keyword}
		}
		bits := fdTranslate.Replace(keyword)
		for _, c := range bits {
			if c != '0' && c != '1' {
				return nil, &ErrUnknownKeyword{Line: lineno, Token: keyword}
			}
		}
		value, err := strconv.ParseUint(bits, 2, 64)
		if err != nil {
			return nil, &ErrUnknownKeyword{Line: lineno, Token: keyword}
		}
		c := chars[curChar]
		nbits := len(bits)
		v := uint16(value)
		switch {
		case nbits < int(c.Width):
			v <<= uint(int(c.Width) - nbits)
		case nbits > int(c.Width):
			v >>= uint(nbits - int(c.Width))
		}
		if dataY < len(c.Data) {
			c.Data[dataY] = v
		}
		dataY++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if f.PointSize == 0 {
		f.PointSize = uint16(math.Round(float64(int(f.Height)-int(f.InLeading)) * 72 / 96))
	}

	seen := slices.Sorted(maps.Keys(chars))
	seenSet := make(map[int]bool, len(seen))
	for _, i := range seen {
		seenSet[i] = true
	}
	var missing []int
	for i := 0; i < 256; i++ {
		if !seenSet[i] {
			missing = append(missing, i)
		}
	}
	if len(missing) > 0 {
		return nil, &ErrMissingChars{Indices: missing}
	}
	for _, i := range seen {
		f.Chars[i] = *chars[i]
	}
	return f, nil
}
