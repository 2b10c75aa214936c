package layout

import (
	"strings"
	"unicode"

	"github.com/dshills/chordkit/internal/hid"
	"github.com/dshills/chordkit/internal/key"
)

// shiftPairs are the non-letter shift transforms for the punctuation the
// default table emits.
var shiftPairs = map[rune]rune{
	'/':  '\\',
	'-':  '_',
	'?':  '!',
	',':  '.',
	';':  ':',
	'\'': '"',
}

// Shifted returns the shifted variant of r: letters are upcased, the
// layout's punctuation pairs are swapped, everything else passes through.
func Shifted(r rune) rune {
	if alt, ok := shiftPairs[r]; ok {
		return alt
	}
	return unicode.ToUpper(r)
}

func shiftText(s string) string {
	return strings.Map(Shifted, s)
}

// Apply applies modifier flags to a resolved action and returns the
// ordered output actions. Shift transforms first, then space-append, so a
// chord holding both thumbs emits "X " rather than "x" variants in any
// other order. Apply is called exactly once per chord window; a NoOp in
// yields no output regardless of flags.
func Apply(a Action, f key.Flags) []Action {
	if a.IsNoOp() {
		return nil
	}

	if f.ShiftActive {
		switch a.Kind {
		case KindChar:
			a = NewChar(Shifted(a.Rune))
		case KindText:
			a = NewText(shiftText(a.Seq))
		case KindKeycode:
			a = NewKeycode(a.Code, a.Mods|hid.ModLeftShift)
		}
	}

	if !f.SpaceAppend {
		return []Action{a}
	}

	switch a.Kind {
	case KindChar:
		return []Action{NewText(string(a.Rune) + " ")}
	case KindText:
		return []Action{NewText(a.Seq + " ")}
	default:
		// A raw keycode cannot absorb the space; it is followed by a
		// separate space character.
		return []Action{a, NewChar(' ')}
	}
}
