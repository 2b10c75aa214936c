package hid

import (
	"errors"
	"testing"
)

func TestUsage(t *testing.T) {
	tests := []struct {
		r     rune
		code  uint8
		shift bool
		ok    bool
	}{
		{'a', KeyA, false, true},
		{'z', KeyZ, false, true},
		{'A', KeyA, true, true},
		{'X', KeyX, true, true},
		{'1', Key1, false, true},
		{'9', Key9, false, true},
		{'0', Key0, false, true},
		{' ', KeySpace, false, true},
		{'?', KeySlash, true, true},
		{'\\', KeyBackslash, false, true},
		{'_', KeyMinus, true, true},
		{'"', KeyApostrophe, true, true},
		{'\n', KeyEnter, false, true},
		{'é', 0, false, false},
	}

	for _, tt := range tests {
		code, shift, ok := Usage(tt.r)
		if ok != tt.ok {
			t.Errorf("Usage(%q) ok = %v, want %v", tt.r, ok, tt.ok)
			continue
		}
		if !tt.ok {
			continue
		}
		if code != tt.code || shift != tt.shift {
			t.Errorf("Usage(%q) = (0x%02x, %v), want (0x%02x, %v)",
				tt.r, code, shift, tt.code, tt.shift)
		}
	}
}

func TestTapCodeOrdering(t *testing.T) {
	rec := &Recorder{}
	d := NewDispatcher(rec)

	if err := d.TapCode(KeyEnter, 0); err != nil {
		t.Fatalf("TapCode failed: %v", err)
	}

	reports := rec.Reports()
	if len(reports) != 2 {
		t.Fatalf("got %d reports, want 2", len(reports))
	}
	if !reports[0].Pressed || reports[1].Pressed {
		t.Errorf("want press then release, got %v then %v", reports[0], reports[1])
	}
	if reports[0].Code != KeyEnter || reports[1].Code != KeyEnter {
		t.Errorf("press/release codes differ: %v %v", reports[0], reports[1])
	}
}

func TestTypeRuneShift(t *testing.T) {
	rec := &Recorder{}
	d := NewDispatcher(rec)

	if err := d.TypeRune('X'); err != nil {
		t.Fatalf("TypeRune failed: %v", err)
	}

	reports := rec.Reports()
	if len(reports) != 2 {
		t.Fatalf("got %d reports, want 2", len(reports))
	}
	for _, rep := range reports {
		if rep.Code != KeyX || rep.Mods != ModLeftShift {
			t.Errorf("report %v, want code KeyX with left shift", rep)
		}
	}
}

func TestTypeTextOrdering(t *testing.T) {
	rec := &Recorder{}
	d := NewDispatcher(rec)

	if err := d.TypeText("ab c"); err != nil {
		t.Fatalf("TypeText failed: %v", err)
	}

	reports := rec.Reports()
	wantCodes := []uint8{KeyA, KeyA, KeyB, KeyB, KeySpace, KeySpace, KeyC, KeyC}
	if len(reports) != len(wantCodes) {
		t.Fatalf("got %d reports, want %d", len(reports), len(wantCodes))
	}
	for i, rep := range reports {
		if rep.Code != wantCodes[i] {
			t.Errorf("report %d code = 0x%02x, want 0x%02x", i, rep.Code, wantCodes[i])
		}
		if rep.Pressed != (i%2 == 0) {
			t.Errorf("report %d: press/release pairs must not overlap", i)
		}
	}
}

func TestTypeTextSkipsUnknownRunes(t *testing.T) {
	rec := &Recorder{}
	d := NewDispatcher(rec)

	err := d.TypeText("aéb")
	if !errors.Is(err, ErrNoUsage) {
		t.Fatalf("err = %v, want ErrNoUsage", err)
	}

	reports := rec.Reports()
	if len(reports) != 4 {
		t.Fatalf("got %d reports, want 4 (unknown rune skipped)", len(reports))
	}
	if reports[0].Code != KeyA || reports[2].Code != KeyB {
		t.Errorf("surrounding characters should still be typed: %v", reports)
	}
}

func TestCodeByName(t *testing.T) {
	if code, ok := CodeByName("enter"); !ok || code != KeyEnter {
		t.Errorf("CodeByName(enter) = (0x%02x, %v)", code, ok)
	}
	if code, ok := CodeByName("f12"); !ok || code != KeyF12 {
		t.Errorf("CodeByName(f12) = (0x%02x, %v)", code, ok)
	}
	if _, ok := CodeByName("warp"); ok {
		t.Error("CodeByName(warp) should fail")
	}
	if mod, ok := ModByName("gui"); !ok || mod != ModLeftGUI {
		t.Errorf("ModByName(gui) = (0x%02x, %v)", mod, ok)
	}
}
