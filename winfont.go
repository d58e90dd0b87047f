// Package winfont ties together the FNT, FD, FON and JSON codecs for
// Windows bitmap fonts. Most callers only need ParseFonts; the fnt, fd,
// fon and fontjson packages are exported for callers that work with one
// format directly.
package winfont

import (
	"fmt"

	"github.com/dewinfont/winfont/fnt"
	"github.com/dewinfont/winfont/fon"
	"github.com/dewinfont/winfont/internal/bin"
	"github.com/dewinfont/winfont/logging"
)

// Font is the shared in-memory font representation; see package fnt.
type Font = fnt.Font

// ParseFonts accepts the raw bytes of a standalone .FNT resource or a
// .FON font library (16-bit NE or 32-bit PE), and returns every Font it
// contains. A .FNT input always yields exactly one Font.
func ParseFonts(data []byte) ([]*Font, error) {
	kind, fnts, err := splitContainer(data)
	if err != nil {
		return nil, err
	}

	fonts := make([]*Font, 0, len(fnts))
	for i, raw := range fnts {
		f, err := fnt.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("winfont: decoding font %d of %s container: %w", i, kind, err)
		}
		fonts = append(fonts, f)
	}

	logging.Logger().Debug("parsed font container", "kind", kind, "count", len(fonts))
	return fonts, nil
}

// splitContainer returns the raw FNT byte slices embedded in data, along
// with a short tag identifying the container kind for logging.
func splitContainer(data []byte) (string, [][]byte, error) {
	if len(data) >= 2 && data[0] == 'M' && data[1] == 'Z' {
		kind := "fon"
		if len(data) >= 0x40 {
			neoff := int(bin.Uint32(data[0x3C:]))
			if neoff+4 <= len(data) {
				switch {
				case data[neoff] == 'N' && data[neoff+1] == 'E':
					kind = "fon-ne"
				case data[neoff] == 'P' && data[neoff+1] == 'E':
					kind = "fon-pe"
				}
			}
		}
		fnts, err := fon.Split(data)
		if err != nil {
			return kind, nil, fmt.Errorf("winfont: reading %s container: %w", kind, err)
		}
		return kind, fnts, nil
	}

	return "fnt", [][]byte{data}, nil
}
