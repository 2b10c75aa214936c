package hid

import (
	"errors"
	"fmt"
)

// ErrNoUsage indicates a rune the layout cannot type.
var ErrNoUsage = errors.New("hid: no usage code for rune")

// Dispatcher serializes resolved output into press/release report pairs.
// Emission is synchronous: a call returns only after every report for the
// action has been handed to the transport, so actions can never overtake
// their triggering chord window.
type Dispatcher struct {
	tr Transport
}

// NewDispatcher creates a dispatcher over the given transport.
func NewDispatcher(tr Transport) *Dispatcher {
	return &Dispatcher{tr: tr}
}

// TapCode sends a full press/release pair for a raw usage code. A zero
// code with a non-zero mask taps the bare modifiers, which is how chords
// bound to host modifiers (GUI, Alt, ...) are emitted.
func (d *Dispatcher) TapCode(code, mods uint8) error {
	if err := d.tr.Send(Report{Code: code, Mods: mods, Pressed: true}); err != nil {
		return fmt.Errorf("hid: press 0x%02x: %w", code, err)
	}
	if err := d.tr.Send(Report{Code: code, Mods: mods, Pressed: false}); err != nil {
		return fmt.Errorf("hid: release 0x%02x: %w", code, err)
	}
	return nil
}

// TypeRune sends the press/release pair for one character, with the shift
// modifier applied when the character requires it.
func (d *Dispatcher) TypeRune(r rune) error {
	code, shift, ok := Usage(r)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoUsage, r)
	}
	var mods uint8
	if shift {
		mods = ModLeftShift
	}
	return d.TapCode(code, mods)
}

// TypeText sends each character of s in sequence, every pair fully
// released before the next begins. Runes without a usage code are skipped;
// the first skipped rune is reported after the rest of the text has been
// sent, so one bad character never truncates output.
func (d *Dispatcher) TypeText(s string) error {
	var skipped error
	for _, r := range s {
		err := d.TypeRune(r)
		if err == nil {
			continue
		}
		if errors.Is(err, ErrNoUsage) {
			if skipped == nil {
				skipped = err
			}
			continue
		}
		return err
	}
	return skipped
}
