// Package pointer routes trackball input. Button presses map through the
// programmable binding table to the same action space as chords but on an
// independent timing domain: a press is atomic, never part of a window.
// Motion deltas are passed through untouched.
package pointer
