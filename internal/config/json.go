package config

import (
	"fmt"
	"sort"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/chordkit/internal/hid"
	"github.com/dshills/chordkit/internal/layout"
)

// ImportJSONLayout parses a JSON layout document of the form
//
//	{"name": "...", "chords": [{"keys": ["o0"], "char": "r"}, ...]}
//
// as produced by ExportJSONLayout and by external layout editors.
func ImportJSONLayout(data []byte) ([]layout.Entry, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("config: invalid layout json")
	}

	chords := gjson.GetBytes(data, "chords")
	if !chords.IsArray() {
		return nil, fmt.Errorf("config: layout json missing chords array")
	}

	var entries []layout.Entry
	var convErr error
	chords.ForEach(func(idx, item gjson.Result) bool {
		var names []string
		for _, k := range item.Get("keys").Array() {
			names = append(names, k.String())
		}
		pattern, err := parsePattern(names)
		if err != nil {
			convErr = fmt.Errorf("config: chord %d: %w", int(idx.Int()), err)
			return false
		}

		var mods []string
		for _, m := range item.Get("mods").Array() {
			mods = append(mods, m.String())
		}
		action, err := parseAction(
			item.Get("char").String(),
			item.Get("text").String(),
			item.Get("keycode").String(),
			mods,
		)
		if err != nil {
			convErr = fmt.Errorf("config: chord %d: %w", int(idx.Int()), err)
			return false
		}

		entries = append(entries, layout.Entry{Pattern: pattern, Action: action})
		return true
	})
	if convErr != nil {
		return nil, convErr
	}
	return entries, nil
}

// ExportJSONLayout renders entries as a JSON layout document. Entries are
// ordered by pattern so exports are stable.
func ExportJSONLayout(name string, entries []layout.Entry) ([]byte, error) {
	sorted := make([]layout.Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Pattern < sorted[j].Pattern
	})

	out := []byte(`{}`)
	var err error
	if out, err = sjson.SetBytes(out, "name", name); err != nil {
		return nil, fmt.Errorf("config: export: %w", err)
	}

	for i, e := range sorted {
		prefix := fmt.Sprintf("chords.%d", i)

		var names []string
		for _, k := range e.Pattern.Keys() {
			names = append(names, k.String())
		}
		if out, err = sjson.SetBytes(out, prefix+".keys", names); err != nil {
			return nil, fmt.Errorf("config: export: %w", err)
		}

		switch e.Action.Kind {
		case layout.KindChar:
			out, err = sjson.SetBytes(out, prefix+".char", string(e.Action.Rune))
		case layout.KindText:
			out, err = sjson.SetBytes(out, prefix+".text", e.Action.Seq)
		case layout.KindKeycode:
			out, err = exportKeycode(out, prefix, e.Action)
		default:
			out, err = sjson.SetBytes(out, prefix+".noop", true)
		}
		if err != nil {
			return nil, fmt.Errorf("config: export: %w", err)
		}
	}
	return out, nil
}

func exportKeycode(out []byte, prefix string, a layout.Action) ([]byte, error) {
	name, ok := hid.NameByCode(a.Code)
	if !ok {
		return nil, fmt.Errorf("config: export: no name for usage 0x%02x", a.Code)
	}

	out, err := sjson.SetBytes(out, prefix+".keycode", name)
	if err != nil {
		return nil, err
	}
	if mods := hid.ModNames(a.Mods); len(mods) > 0 {
		if out, err = sjson.SetBytes(out, prefix+".mods", mods); err != nil {
			return nil, err
		}
	}
	return out, nil
}
