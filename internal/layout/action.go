package layout

import "fmt"

// Kind discriminates the Action variants.
type Kind uint8

const (
	// KindNoOp produces no host output.
	KindNoOp Kind = iota

	// KindChar emits one character.
	KindChar

	// KindText emits a fixed character sequence.
	KindText

	// KindKeycode passes a raw HID usage code (with optional modifier
	// mask) straight through, for non-printable actions.
	KindKeycode
)

// Action is the immutable result of a chord lookup.
type Action struct {
	Kind Kind

	// Rune is the character for KindChar.
	Rune rune

	// Seq is the sequence for KindText.
	Seq string

	// Code and Mods are the usage code and modifier mask for KindKeycode.
	Code uint8
	Mods uint8
}

// NewChar creates a character action.
func NewChar(r rune) Action {
	return Action{Kind: KindChar, Rune: r}
}

// NewText creates a character-sequence action.
func NewText(s string) Action {
	return Action{Kind: KindText, Seq: s}
}

// NewKeycode creates a raw keycode action.
func NewKeycode(code, mods uint8) Action {
	return Action{Kind: KindKeycode, Code: code, Mods: mods}
}

// NoOp is the empty action.
var NoOp = Action{}

// IsNoOp returns true if the action produces no output.
func (a Action) IsNoOp() bool {
	return a.Kind == KindNoOp
}

// String returns a diagnostic form.
func (a Action) String() string {
	switch a.Kind {
	case KindChar:
		return fmt.Sprintf("char(%q)", a.Rune)
	case KindText:
		return fmt.Sprintf("text(%q)", a.Seq)
	case KindKeycode:
		return fmt.Sprintf("keycode(0x%02x/0x%02x)", a.Code, a.Mods)
	default:
		return "noop"
	}
}
