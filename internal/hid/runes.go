package hid

type usage struct {
	code  uint8
	shift bool
}

// symbolUsages covers the printable ASCII characters that are not letters
// or digits. US layout.
var symbolUsages = map[rune]usage{
	' ':  {KeySpace, false},
	'-':  {KeyMinus, false},
	'_':  {KeyMinus, true},
	'=':  {KeyEqual, false},
	'+':  {KeyEqual, true},
	'[':  {KeyLeftBrace, false},
	'{':  {KeyLeftBrace, true},
	']':  {KeyRightBrace, false},
	'}':  {KeyRightBrace, true},
	'\\': {KeyBackslash, false},
	'|':  {KeyBackslash, true},
	';':  {KeySemicolon, false},
	':':  {KeySemicolon, true},
	'\'': {KeyApostrophe, false},
	'"':  {KeyApostrophe, true},
	'`':  {KeyGrave, false},
	'~':  {KeyGrave, true},
	',':  {KeyComma, false},
	'<':  {KeyComma, true},
	'.':  {KeyDot, false},
	'>':  {KeyDot, true},
	'/':  {KeySlash, false},
	'?':  {KeySlash, true},
	'!':  {Key1, true},
	'@':  {Key2, true},
	'#':  {Key3, true},
	'$':  {Key4, true},
	'%':  {Key5, true},
	'^':  {Key6, true},
	'&':  {Key7, true},
	'*':  {Key8, true},
	'(':  {Key9, true},
	')':  {Key0, true},
	'\n': {KeyEnter, false},
	'\t': {KeyTab, false},
}

// Usage maps a rune to its boot-keyboard usage code and shift requirement.
// The bool result is false for runes the US layout cannot produce.
func Usage(r rune) (code uint8, shift bool, ok bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + uint8(r-'a'), false, true
	case r >= 'A' && r <= 'Z':
		return KeyA + uint8(r-'A'), true, true
	case r >= '1' && r <= '9':
		return Key1 + uint8(r-'1'), false, true
	case r == '0':
		return Key0, false, true
	}

	u, found := symbolUsages[r]
	if !found {
		return 0, false, false
	}
	return u.code, u.shift, true
}
