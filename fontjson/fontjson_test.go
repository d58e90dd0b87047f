package fontjson

import (
	"encoding/json"
	"testing"

	"github.com/dewinfont/winfont/fnt"
)

func TestPackCharBlank(t *testing.T) {
	c := &fnt.Char{Width: 5, Data: []uint16{0, 0, 0}}
	got := packChar(c)
	if got != uint16(5) {
		t.Errorf("packChar(blank) = %#v, want 5", got)
	}
}

func TestPackCharRunLength(t *testing.T) {
	c := &fnt.Char{Width: 5, Data: []uint16{0, 0, 0b11111, 0b11111, 0b11111, 0, 0}}
	got, ok := packChar(c).([]any)
	if !ok || len(got) != 3 {
		t.Fatalf("packChar = %#v, want a 3-element tuple", got)
	}
	if got[0] != uint16(5) || got[1] != 2 {
		t.Errorf("packChar[0:2] = %v, %v, want 5, 2", got[0], got[1])
	}
	run, ok := got[2].(map[string]any)
	if !ok {
		t.Fatalf("packChar[2] = %#v, want a run-length map", got[2])
	}
	r := run["r"].([2]any)
	if r[0] != uint16(0b11111) || r[1] != 3 {
		t.Errorf("run = %v, want [31 3]", r)
	}
}

func TestMarshalElidesDefaults(t *testing.T) {
	f := fnt.New(1)
	f.FaceName = "Test"
	f.PointSize = 10
	f.Weight = 400

	out, err := Marshal([]Source{{Path: "a/B.FON", Fonts: []*fnt.Font{f}}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("len(decoded) = %d, want 1", len(decoded))
	}
	entry := decoded[0]
	if _, ok := entry["weight"]; ok {
		t.Errorf("weight should be elided when 400")
	}
	if _, ok := entry["italic"]; ok {
		t.Errorf("italic should be elided when false")
	}
	src, ok := entry["src"].([]any)
	if !ok || src[0] != "b.fon" {
		t.Errorf("src = %v, want [b.fon 0]", entry["src"])
	}
}
