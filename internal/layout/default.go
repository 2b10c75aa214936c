package layout

import (
	"github.com/dshills/chordkit/internal/hid"
	"github.com/dshills/chordkit/internal/key"
)

// Default reserved thumb keys: the inner thumb appends a space, the outer
// thumb shifts (and is a plain backspace when pressed alone).
const (
	DefaultSpaceKey = key.I4
	DefaultShiftKey = key.O4
)

// Default returns the built-in half-board table. It panics only on a
// defect in the static entries.
func Default() *Table {
	t, err := New(DefaultEntries())
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultEntries returns the built-in chord entries. Base chords cover
// letters and punctuation; shifted variants come from the modifier layer,
// not from entries. Number, symbol, and function rows keep their own
// thumb-key combinations as exact entries because they mean something
// other than "base chord plus modifier".
func DefaultEntries() []Entry {
	m := key.Mask
	entries := []Entry{
		// Reserved thumbs pressed alone resolve to their literal actions.
		{m(key.I4), NewChar(' ')},
		{m(key.O4), NewKeycode(hid.KeyBackspace, 0)},

		// Home positions.
		{m(key.O0), NewChar('r')},
		{m(key.O1), NewChar('i')},
		{m(key.O2), NewChar('n')},
		{m(key.O3), NewChar('s')},
		{m(key.I0), NewChar('a')},
		{m(key.I1), NewChar('t')},
		{m(key.I2), NewChar('e')},
		{m(key.I3), NewChar('o')},

		// Two-finger letters.
		{m(key.I1, key.I3), NewChar('c')},
		{m(key.I2, key.I3), NewChar('u')},
		{m(key.I2, key.I0), NewChar('q')},
		{m(key.I3, key.I0), NewChar('l')},
		{m(key.O1, key.O2), NewChar('y')},
		{m(key.O1, key.O3), NewChar('f')},
		{m(key.O2, key.O3), NewChar('p')},
		{m(key.O2, key.O0), NewChar('z')},
		{m(key.O3, key.O0), NewChar('b')},
		{m(key.I1, key.I2), NewChar('h')},
		{m(key.I1, key.I0), NewChar('d')},
		{m(key.O1, key.O0), NewChar('g')},
		{m(key.I2, key.O0), NewChar('x')},
		{m(key.O1, key.I3), NewChar('k')},
		{m(key.I1, key.O3), NewChar('v')},
		{m(key.O2, key.I0), NewChar('j')},
		{m(key.I1, key.O0), NewChar('m')},
		{m(key.O1, key.I0), NewChar('w')},

		// Punctuation; the shift transform supplies \ _ ! . : " variants.
		{m(key.I2, key.O3), NewChar('/')},
		{m(key.O2, key.I3), NewChar('-')},
		{m(key.O1, key.I2), NewChar('?')},
		{m(key.I1, key.O2), NewChar(',')},
		{m(key.I3, key.O0), NewChar(';')},
		{m(key.I2, key.I3, key.I0), NewChar(';')},
		{m(key.O3, key.I0), NewChar('\'')},
		{m(key.O2, key.O3, key.O0), NewChar('\'')},

		// Number row: letter chord plus inner thumb.
		{m(key.I1, key.I3, key.I4), NewChar('1')},
		{m(key.I2, key.I3, key.I4), NewChar('2')},
		{m(key.I2, key.I0, key.I4), NewChar('3')},
		{m(key.I3, key.I0, key.I4), NewChar('4')},
		{m(key.O1, key.O2, key.I4), NewChar('5')},
		{m(key.O1, key.O3, key.I4), NewChar('6')},
		{m(key.O2, key.O3, key.I4), NewChar('7')},
		{m(key.O2, key.O0, key.I4), NewChar('8')},
		{m(key.O3, key.O0, key.I4), NewChar('9')},
		{m(key.I1, key.I2, key.I4), NewChar('0')},

		// Symbol row.
		{m(key.I1, key.I0, key.I4), NewChar('@')},
		{m(key.O1, key.O0, key.I4), NewChar('#')},
		{m(key.I2, key.O0, key.I4), NewChar('^')},
		{m(key.O1, key.I3, key.I4), NewChar('+')},
		{m(key.I1, key.O3, key.I4), NewChar('*')},
		{m(key.O2, key.I0, key.I4), NewChar('=')},
		{m(key.I1, key.O0, key.I4), NewChar('$')},
		{m(key.O1, key.I0, key.I4), NewChar('&')},
		{m(key.I2, key.O3, key.I4), NewChar('|')},
		{m(key.O2, key.I3, key.I4), NewChar('%')},
		{m(key.I1, key.O2, key.I4), NewChar('~')},

		// Brackets: single finger plus inner thumb.
		{m(key.O1, key.I4), NewChar(')')},
		{m(key.O2, key.I4), NewChar(']')},
		{m(key.O3, key.I4), NewChar('}')},
		{m(key.I0, key.I4), NewChar('<')},
		{m(key.I1, key.I4), NewChar('(')},
		{m(key.I2, key.I4), NewChar('[')},
		{m(key.I3, key.I4), NewChar('{')},
		{m(key.O0, key.O4, key.I4), NewChar('>')},

		// Function row: letter chord plus both thumbs.
		{m(key.I1, key.I3, key.O4, key.I4), NewKeycode(hid.KeyF1, 0)},
		{m(key.I2, key.I3, key.O4, key.I4), NewKeycode(hid.KeyF2, 0)},
		{m(key.I2, key.I0, key.O4, key.I4), NewKeycode(hid.KeyF3, 0)},
		{m(key.I3, key.I0, key.O4, key.I4), NewKeycode(hid.KeyF4, 0)},
		{m(key.O1, key.O2, key.O4, key.I4), NewKeycode(hid.KeyF5, 0)},
		{m(key.O1, key.O3, key.O4, key.I4), NewKeycode(hid.KeyF6, 0)},
		{m(key.O2, key.O3, key.O4, key.I4), NewKeycode(hid.KeyF7, 0)},
		{m(key.O2, key.O0, key.O4, key.I4), NewKeycode(hid.KeyF8, 0)},
		{m(key.O3, key.O0, key.O4, key.I4), NewKeycode(hid.KeyF9, 0)},
		{m(key.I1, key.I2, key.O4, key.I4), NewKeycode(hid.KeyF10, 0)},
		{m(key.I1, key.I0, key.O4, key.I4), NewKeycode(hid.KeyF11, 0)},
		{m(key.O1, key.O0, key.O4, key.I4), NewKeycode(hid.KeyF12, 0)},

		// Editing shortcuts on both thumbs.
		{m(key.I2, key.O0, key.O4, key.I4), NewKeycode(hid.KeyX, hid.ModLeftCtrl)},
		{m(key.O1, key.I3, key.O4, key.I4), NewKeycode(hid.KeyC, hid.ModLeftCtrl)},
		{m(key.I1, key.O3, key.O4, key.I4), NewKeycode(hid.KeyV, hid.ModLeftCtrl)},
		{m(key.O2, key.I0, key.O4, key.I4), NewKeycode(hid.KeyZ, hid.ModLeftCtrl)},
		{m(key.I2, key.O3, key.O4, key.I4), NewKeycode(hid.KeyPrintScreen, 0)},

		// Host modifiers and navigation: pinch chords (outer+inner same
		// finger) and their thumb variants stay exact entries.
		{m(key.I0, key.O0), NewKeycode(hid.KeyNone, hid.ModLeftGUI)},
		{m(key.I0, key.O0, key.O4), NewKeycode(hid.KeyRight, 0)},
		{m(key.I0, key.O0, key.I4), NewKeycode(hid.KeyPageUp, 0)},
		{m(key.I3, key.O3), NewKeycode(hid.KeyNone, hid.ModLeftAlt)},
		{m(key.I3, key.O3, key.O4), NewKeycode(hid.KeyUp, 0)},
		{m(key.I3, key.O3, key.I4), NewKeycode(hid.KeyHome, 0)},
		{m(key.I2, key.O2), NewKeycode(hid.KeyNone, hid.ModLeftCtrl)},
		{m(key.I2, key.O2, key.O4), NewKeycode(hid.KeyDown, 0)},
		{m(key.I2, key.O2, key.I4), NewKeycode(hid.KeyEnd, 0)},
		{m(key.I1, key.O1), NewKeycode(hid.KeyNone, hid.ModLeftShift)},
		{m(key.I1, key.O1, key.O4), NewKeycode(hid.KeyLeft, 0)},
		{m(key.I1, key.O1, key.I4), NewKeycode(hid.KeyPageDown, 0)},

		// Whitespace and control rows.
		{m(key.O1, key.O2, key.O3), NewKeycode(hid.KeyTab, 0)},
		{m(key.O1, key.O2, key.O3, key.O4), NewKeycode(hid.KeyDelete, 0)},
		{m(key.O1, key.O2, key.O3, key.I4), NewKeycode(hid.KeyInsert, 0)},
		{m(key.I1, key.I2, key.I3), NewKeycode(hid.KeyEnter, 0)},
		{m(key.I1, key.I2, key.I3, key.O4), NewKeycode(hid.KeyEscape, 0)},
		{m(key.I1, key.I2, key.I3, key.I4), NewKeycode(hid.KeyNone, hid.ModRightAlt)},
	}
	return entries
}
