// Package fontjson implements the lossy JSON projection of a Font: every
// scalar field plus a compactly packed glyph list, with zero/empty
// "style" fields elided the way the original CLI's ad-hoc dict surgery
// did.
package fontjson

import (
	"encoding/json"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dewinfont/winfont/fnt"
)

// entry is the per-font JSON record. Field order matches encoding/json's
// struct-order marshalling, which reproduces the order the original
// Python dict ended up in once "src" and "chars" were (re)inserted last.
type entry struct {
	FaceName  string `json:"facename"`
	Copyright string `json:"copyright,omitempty"`
	PointSize uint16 `json:"pointsize"`
	Width     uint16 `json:"width"`
	Height    uint16 `json:"height"`
	Ascent    uint16 `json:"ascent"`
	ResX      uint16 `json:"res_x"`
	ResY      uint16 `json:"res_y"`
	InLeading uint16 `json:"inleading,omitempty"`
	ExLeading uint16 `json:"exleading,omitempty"`
	Italic    bool   `json:"italic,omitempty"`
	Underline bool   `json:"underline,omitempty"`
	Strikeout bool   `json:"strikeout,omitempty"`
	Weight    int    `json:"weight,omitempty"`
	Charset   uint8  `json:"charset,omitempty"`
	Src       [2]any `json:"src"`
	Chars     []any  `json:"chars"`
}

// Source names a font file and the fonts decoded from it, in file order.
type Source struct {
	Path  string
	Fonts []*fnt.Font
}

// Marshal renders sources as the compact JSON array fon2json prints to
// stdout: one record per font across all sources, sorted by (facename,
// pointsize).
func Marshal(sources []Source) ([]byte, error) {
	var entries []entry
	for _, src := range sources {
		base := strings.ToLower(filepath.Base(src.Path))
		for i, f := range src.Fonts {
			entries = append(entries, buildEntry(f, base, i))
		}
	}

	slices.SortFunc(entries, func(a, b entry) int {
		if a.FaceName != b.FaceName {
			if a.FaceName < b.FaceName {
				return -1
			}
			return 1
		}
		return int(a.PointSize) - int(b.PointSize)
	})

	return json.Marshal(entries)
}

func buildEntry(f *fnt.Font, basename string, index int) entry {
	weight := f.Weight
	if weight == 400 {
		weight = 0
	}

	chars := make([]any, len(f.Chars))
	for i := range f.Chars {
		chars[i] = packChar(&f.Chars[i])
	}

	return entry{
		FaceName:  f.FaceName,
		Copyright: strings.TrimSpace(f.Copyright),
		PointSize: f.PointSize,
		Width:     f.Width,
		Height:    f.Height,
		Ascent:    f.Ascent,
		ResX:      f.ResX,
		ResY:      f.ResY,
		InLeading: f.InLeading,
		ExLeading: f.ExLeading,
		Italic:    f.Italic,
		Underline: f.Underline,
		Strikeout: f.Strikeout,
		Weight:    weight,
		Charset:   f.Charset,
		Src:       [2]any{basename, index},
		Chars:     chars,
	}
}

// packChar packs a single glyph's scanlines into the compact form
// fon2json emits: a bare width integer for a blank glyph, a (width, data)
// pair, or a (width, yOffset, data) triple, with a run of identical
// scanlines collapsed to {"r": [value, count]}.
func packChar(c *fnt.Char) any {
	data := append([]uint16(nil), c.Data...)
	for len(data) > 0 && data[len(data)-1] == 0 {
		data = data[:len(data)-1]
	}
	y := 0
	for len(data) > 0 && data[0] == 0 {
		data = data[1:]
		y++
	}
	if len(data) == 0 {
		return c.Width
	}

	allEqual := true
	for _, v := range data {
		if v != data[0] {
			allEqual = false
			break
		}
	}

	var packed any = data
	if allEqual {
		packed = map[string]any{"r": [2]any{data[0], len(data)}}
	}

	if y != 0 {
		return []any{c.Width, y, packed}
	}
	return []any{c.Width, packed}
}
