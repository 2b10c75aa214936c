// Package chord implements the accumulator that turns the scan layer's
// press/release stream into discrete chord windows.
//
// A window opens on the first press while no window is open, grows as keys
// join, and closes when every participating key has been released or when
// the rollover deadline passes. Resolution always uses the union of keys
// observed during the window, so releasing one finger early does not shrink
// the chord.
package chord
