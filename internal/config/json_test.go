package config

import (
	"testing"

	"github.com/dshills/chordkit/internal/hid"
	"github.com/dshills/chordkit/internal/key"
	"github.com/dshills/chordkit/internal/layout"
)

func TestImportJSONLayout(t *testing.T) {
	data := []byte(`{
		"name": "mini",
		"chords": [
			{"keys": ["o0"], "char": "r"},
			{"keys": ["o0", "o1"], "text": "th"},
			{"keys": ["i1", "i2", "i3"], "keycode": "enter"},
			{"keys": ["o1"], "keycode": "c", "mods": ["ctrl"]}
		]
	}`)

	entries, err := ImportJSONLayout(data)
	if err != nil {
		t.Fatalf("ImportJSONLayout failed: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4", len(entries))
	}
	if entries[0].Pattern != key.Mask(key.O0) || entries[0].Action != layout.NewChar('r') {
		t.Errorf("entry 0 = %+v", entries[0])
	}
	if entries[2].Action != layout.NewKeycode(hid.KeyEnter, 0) {
		t.Errorf("entry 2 = %s", entries[2].Action)
	}
	if entries[3].Action != layout.NewKeycode(hid.KeyC, hid.ModLeftCtrl) {
		t.Errorf("entry 3 = %s", entries[3].Action)
	}
}

func TestImportJSONLayoutErrors(t *testing.T) {
	cases := []string{
		`not json`,
		`{"name": "x"}`,
		`{"chords": [{"keys": ["zz"], "char": "a"}]}`,
		`{"chords": [{"keys": ["o0"]}]}`,
	}
	for _, data := range cases {
		if _, err := ImportJSONLayout([]byte(data)); err == nil {
			t.Errorf("ImportJSONLayout(%q) should fail", data)
		}
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	entries := []layout.Entry{
		{Pattern: key.Mask(key.O0), Action: layout.NewChar('r')},
		{Pattern: key.Mask(key.O0, key.O1), Action: layout.NewText("th")},
		{Pattern: key.Mask(key.I1, key.I2, key.I3), Action: layout.NewKeycode(hid.KeyEnter, 0)},
		{Pattern: key.Mask(key.I0, key.O0), Action: layout.NewKeycode(hid.KeyNone, hid.ModLeftGUI)},
	}

	data, err := ExportJSONLayout("round", entries)
	if err != nil {
		t.Fatalf("ExportJSONLayout failed: %v", err)
	}

	back, err := ImportJSONLayout(data)
	if err != nil {
		t.Fatalf("ImportJSONLayout failed: %v", err)
	}
	if len(back) != len(entries) {
		t.Fatalf("round trip lost entries: %d -> %d", len(entries), len(back))
	}

	byPattern := make(map[key.Chord]layout.Action)
	for _, e := range back {
		byPattern[e.Pattern] = e.Action
	}
	for _, e := range entries {
		got, ok := byPattern[e.Pattern]
		if !ok {
			t.Errorf("pattern %s missing after round trip", e.Pattern)
			continue
		}
		if got != e.Action {
			t.Errorf("pattern %s: %s != %s", e.Pattern, got, e.Action)
		}
	}
}

func TestExportDefaultLayout(t *testing.T) {
	data, err := ExportJSONLayout("default", layout.DefaultEntries())
	if err != nil {
		t.Fatalf("ExportJSONLayout(default) failed: %v", err)
	}

	back, err := ImportJSONLayout(data)
	if err != nil {
		t.Fatalf("reimport of default layout failed: %v", err)
	}
	if len(back) != len(layout.DefaultEntries()) {
		t.Errorf("round trip lost entries: %d -> %d", len(layout.DefaultEntries()), len(back))
	}
}
