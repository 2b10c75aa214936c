package layout

import (
	"errors"
	"testing"

	"github.com/dshills/chordkit/internal/hid"
	"github.com/dshills/chordkit/internal/key"
)

func testTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := New([]Entry{
		{key.Mask(key.O0), NewChar('a')},
		{key.Mask(key.O0, key.O1), NewChar('x')},
		{key.Mask(key.I4), NewChar(' ')},
		{key.Mask(key.O4), NewKeycode(hid.KeyBackspace, 0)},
		{key.Mask(key.O0, key.O1, key.I4), NewChar('5')},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return tbl
}

func TestResolveExactMatch(t *testing.T) {
	tbl := testTable(t)

	a, flags, ok := tbl.Resolve(key.Mask(key.O0, key.O1))
	if !ok {
		t.Fatal("exact entry should resolve")
	}
	if a != NewChar('x') {
		t.Errorf("action = %s, want char('x')", a)
	}
	if !flags.None() {
		t.Errorf("exact match must not carry flags, got %s", flags)
	}
}

func TestResolveExactBeatsFallback(t *testing.T) {
	tbl := testTable(t)

	// {o0,o1,i4} has its own entry; the space key must not be treated as
	// a modifier.
	a, flags, ok := tbl.Resolve(key.Mask(key.O0, key.O1, key.I4))
	if !ok || a != NewChar('5') {
		t.Fatalf("Resolve = (%s, %v), want the exact '5' entry", a, ok)
	}
	if flags.SpaceAppend {
		t.Error("exact entry consumed the thumb key; no space-append flag")
	}
}

func TestResolveFallbackStripsReserved(t *testing.T) {
	tbl := testTable(t)

	tests := []struct {
		chord key.Chord
		want  Action
		flags key.Flags
	}{
		{key.Mask(key.O0, key.I4), NewChar('a'), key.Flags{SpaceAppend: true}},
		{key.Mask(key.O0, key.O4), NewChar('a'), key.Flags{ShiftActive: true}},
		{key.Mask(key.O0, key.O4, key.I4), NewChar('a'), key.Flags{SpaceAppend: true, ShiftActive: true}},
	}

	for _, tt := range tests {
		a, flags, ok := tbl.Resolve(tt.chord)
		if !ok {
			t.Errorf("Resolve(%s) should match via fallback", tt.chord)
			continue
		}
		if a != tt.want || flags != tt.flags {
			t.Errorf("Resolve(%s) = (%s, %s), want (%s, %s)",
				tt.chord, a, flags, tt.want, tt.flags)
		}
	}
}

func TestResolveReservedAloneIsExact(t *testing.T) {
	tbl := testTable(t)

	a, flags, ok := tbl.Resolve(key.Mask(key.I4))
	if !ok || a != NewChar(' ') || !flags.None() {
		t.Errorf("space key alone = (%s, %s, %v), want plain space", a, flags, ok)
	}

	a, _, ok = tbl.Resolve(key.Mask(key.O4))
	if !ok || a.Kind != KindKeycode || a.Code != hid.KeyBackspace {
		t.Errorf("shift key alone = (%s, %v), want backspace keycode", a, ok)
	}
}

func TestResolveUnknownChord(t *testing.T) {
	tbl := testTable(t)

	a, _, ok := tbl.Resolve(key.Mask(key.I0, key.I1))
	if ok {
		t.Error("unknown chord should not resolve")
	}
	if !a.IsNoOp() {
		t.Errorf("unknown chord action = %s, want noop", a)
	}

	// Reserved keys plus an unknown base still miss.
	if _, _, ok := tbl.Resolve(key.Mask(key.I0, key.I1, key.I4)); ok {
		t.Error("fallback with unknown base should not resolve")
	}
}

func TestNewRejectsBadEntries(t *testing.T) {
	if _, err := New([]Entry{{0, NewChar('a')}}); !errors.Is(err, ErrEmptyPattern) {
		t.Errorf("empty pattern err = %v", err)
	}

	dup := []Entry{
		{key.Mask(key.O0), NewChar('a')},
		{key.Mask(key.O0), NewChar('b')},
	}
	if _, err := New(dup); !errors.Is(err, ErrDuplicatePattern) {
		t.Errorf("duplicate pattern err = %v", err)
	}

	out := []Entry{{key.Mask(key.LogicalKey(12)), NewChar('a')}}
	if _, err := New(out); !errors.Is(err, ErrPatternRange) {
		t.Errorf("out-of-range pattern err = %v", err)
	}

	if _, err := New(nil, WithKeyCount(4), WithReserved(key.I4, key.O4)); !errors.Is(err, ErrReservedRange) {
		t.Errorf("reserved out of range err = %v", err)
	}
}

func TestValidateSingletonTotality(t *testing.T) {
	// Missing singletons fail validation.
	tbl := testTable(t)
	if err := tbl.Validate(); !errors.Is(err, ErrSingletonGap) {
		t.Errorf("partial table Validate = %v, want ErrSingletonGap", err)
	}

	// The default table is total over singletons.
	if err := Default().Validate(); err != nil {
		t.Errorf("default table Validate failed: %v", err)
	}
}

func TestDefaultTableSpotChecks(t *testing.T) {
	tbl := Default()

	tests := []struct {
		chord key.Chord
		want  Action
	}{
		{key.Mask(key.O0), NewChar('r')},
		{key.Mask(key.I2), NewChar('e')},
		{key.Mask(key.I1, key.I3), NewChar('c')},
		{key.Mask(key.I1, key.I3, key.I4), NewChar('1')},
		{key.Mask(key.I1, key.I2, key.I3), NewKeycode(hid.KeyEnter, 0)},
		{key.Mask(key.I1, key.I2, key.I3, key.O4), NewKeycode(hid.KeyEscape, 0)},
		{key.Mask(key.I0, key.O0, key.O4), NewKeycode(hid.KeyRight, 0)},
		{key.Mask(key.O1, key.I3, key.O4, key.I4), NewKeycode(hid.KeyC, hid.ModLeftCtrl)},
		{key.Mask(key.I4), NewChar(' ')},
		{key.Mask(key.O4), NewKeycode(hid.KeyBackspace, 0)},
	}

	for _, tt := range tests {
		a, _, ok := tbl.Resolve(tt.chord)
		if !ok {
			t.Errorf("Resolve(%s) missing", tt.chord)
			continue
		}
		if a != tt.want {
			t.Errorf("Resolve(%s) = %s, want %s", tt.chord, a, tt.want)
		}
	}
}

func TestDefaultTableDerivedShift(t *testing.T) {
	tbl := Default()

	// 'r' + outer thumb has no exact entry; the modifier layer upcases it.
	a, flags, ok := tbl.Resolve(key.Mask(key.O0, key.O4))
	if !ok || a != NewChar('r') || !flags.ShiftActive {
		t.Fatalf("Resolve({o0,o4}) = (%s, %s, %v), want 'r' with shift", a, flags, ok)
	}

	// 'r' + inner thumb likewise appends a space.
	a, flags, ok = tbl.Resolve(key.Mask(key.O0, key.I4))
	if !ok || a != NewChar('r') || !flags.SpaceAppend {
		t.Fatalf("Resolve({o0,i4}) = (%s, %s, %v), want 'r' with space", a, flags, ok)
	}
}

func TestResolveOrderIndependence(t *testing.T) {
	tbl := Default()

	// The same membership always resolves identically; Chord is already
	// canonical, so any construction order gives the same key.
	a1, f1, _ := tbl.Resolve(key.Mask(key.I1, key.I3, key.I4))
	a2, f2, _ := tbl.Resolve(key.Mask(key.I4, key.I1, key.I3))
	if a1 != a2 || f1 != f2 {
		t.Errorf("resolution depends on construction order: %s/%s vs %s/%s", a1, f1, a2, f2)
	}
}
