// Package fd implements the human-editable textual FD font description
// format: one attribute per line, followed by 256 "char"/"width"/glyph-row
// blocks.
package fd

import (
	"fmt"
	"io"

	"github.com/dewinfont/winfont/fnt"
	"github.com/dewinfont/winfont/internal/bin"
)

type intAttr struct {
	keyword string
	value   func(*fnt.Font) int
}

var integerAttrs = []intAttr{
	{"ascent", func(f *fnt.Font) int { return int(f.Ascent) }},
	{"charset", func(f *fnt.Font) int { return int(f.Charset) }},
	{"exleading", func(f *fnt.Font) int { return int(f.ExLeading) }},
	{"font_width", func(f *fnt.Font) int { return int(f.Width) }},
	{"height", func(f *fnt.Font) int { return int(f.Height) }},
	{"inleading", func(f *fnt.Font) int { return int(f.InLeading) }},
	{"pointsize", func(f *fnt.Font) int { return int(f.PointSize) }},
	{"res_x", func(f *fnt.Font) int { return int(f.ResX) }},
	{"res_y", func(f *fnt.Font) int { return int(f.ResY) }},
	{"weight", func(f *fnt.Font) int { return f.Weight }},
}

type boolAttr struct {
	keyword string
	value   func(*fnt.Font) bool
}

var boolAttrs = []boolAttr{
	{"italic", func(f *fnt.Font) bool { return f.Italic }},
	{"strikeout", func(f *fnt.Font) bool { return f.Strikeout }},
	{"underline", func(f *fnt.Font) bool { return f.Underline }},
}

// Encode writes f to w in FD text form.
func Encode(w io.Writer, f *fnt.Font) error {
	bw := func(format string, args ...interface{}) error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	}

	if err := bw("# .fd font description generated by dewinfont.\n\n"); err != nil {
		return err
	}
	if err := bw("facename %s\n", f.FaceName); err != nil {
		return err
	}
	if err := bw("copyright %s\n\n", f.Copyright); err != nil {
		return err
	}
	for _, a := range integerAttrs {
		if err := bw("%s %d\n", a.keyword, a.value(f)); err != nil {
			return err
		}
	}
	for _, a := range boolAttrs {
		if err := bw("%s %s\n", a.keyword, bin.BoolString(a.value(f))); err != nil {
			return err
		}
	}

	for i := 0; i < 256; i++ {
		c := &f.Chars[i]
		if err := bw("char %d\nwidth %d\n", i, c.Width); err != nil {
			return err
		}
		if c.Width != 0 {
			mask := uint16(1) << (c.Width - 1)
			for j := 0; j < int(f.Height); j++ {
				v := c.Data[j]
				row := make([]byte, c.Width)
				for k := uint16(0); k < c.Width; k++ {
					if v&mask != 0 {
						row[k] = 'x'
					} else {
						row[k] = '.'
					}
					v <<= 1
				}
				row = append(row, '\n')
				if _, err := w.Write(row); err != nil {
					return err
				}
			}
		}
		if err := bw("\n"); err != nil {
			return err
		}
	}
	return nil
}
