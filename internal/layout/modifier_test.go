package layout

import (
	"testing"

	"github.com/dshills/chordkit/internal/hid"
	"github.com/dshills/chordkit/internal/key"
)

func TestShifted(t *testing.T) {
	tests := []struct {
		in, want rune
	}{
		{'a', 'A'},
		{'z', 'Z'},
		{'/', '\\'},
		{'-', '_'},
		{'?', '!'},
		{',', '.'},
		{';', ':'},
		{'\'', '"'},
		{'3', '3'},
	}

	for _, tt := range tests {
		if got := Shifted(tt.in); got != tt.want {
			t.Errorf("Shifted(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyNoFlags(t *testing.T) {
	acts := Apply(NewChar('x'), key.Flags{})
	if len(acts) != 1 || acts[0] != NewChar('x') {
		t.Errorf("Apply with no flags should pass through, got %v", acts)
	}
}

func TestApplyShift(t *testing.T) {
	tests := []struct {
		in   Action
		want Action
	}{
		{NewChar('x'), NewChar('X')},
		{NewChar('/'), NewChar('\\')},
		{NewText("ab,"), NewText("AB.")},
		{NewKeycode(hid.KeyLeft, 0), NewKeycode(hid.KeyLeft, hid.ModLeftShift)},
	}

	for _, tt := range tests {
		acts := Apply(tt.in, key.Flags{ShiftActive: true})
		if len(acts) != 1 || acts[0] != tt.want {
			t.Errorf("Apply(%s, shift) = %v, want [%s]", tt.in, acts, tt.want)
		}
	}
}

func TestApplySpaceAppend(t *testing.T) {
	acts := Apply(NewChar('x'), key.Flags{SpaceAppend: true})
	if len(acts) != 1 || acts[0] != NewText("x ") {
		t.Errorf("Apply(char, space) = %v, want [text(\"x \")]", acts)
	}

	acts = Apply(NewText("hi"), key.Flags{SpaceAppend: true})
	if len(acts) != 1 || acts[0] != NewText("hi ") {
		t.Errorf("Apply(text, space) = %v, want [text(\"hi \")]", acts)
	}
}

func TestApplySpaceAfterKeycode(t *testing.T) {
	acts := Apply(NewKeycode(hid.KeyEnter, 0), key.Flags{SpaceAppend: true})
	if len(acts) != 2 {
		t.Fatalf("Apply(keycode, space) = %v, want keycode then space", acts)
	}
	if acts[0] != NewKeycode(hid.KeyEnter, 0) || acts[1] != NewChar(' ') {
		t.Errorf("Apply(keycode, space) = %v", acts)
	}
}

func TestApplyShiftBeforeSpace(t *testing.T) {
	// Both thumbs held: shift transforms first, the space lands last.
	acts := Apply(NewChar('x'), key.Flags{SpaceAppend: true, ShiftActive: true})
	if len(acts) != 1 || acts[0] != NewText("X ") {
		t.Errorf("Apply(char, shift+space) = %v, want [text(\"X \")]", acts)
	}
}

func TestApplyNoOpYieldsNothing(t *testing.T) {
	if acts := Apply(NoOp, key.Flags{SpaceAppend: true, ShiftActive: true}); len(acts) != 0 {
		t.Errorf("Apply(noop) = %v, want no output", acts)
	}
}
