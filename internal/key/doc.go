// Package key defines the core input data model: logical key identifiers,
// press/release events from the scan layer, chord bitmasks, and the modifier
// flags derived per chord window.
//
// A LogicalKey is an opaque small integer assigned at configuration time.
// The default layout uses the ten half-board positions O0..O4 (outer row)
// and I0..I4 (inner row); a two-half device resolves left/right mirroring
// upstream before events reach this package.
//
// A Chord is a canonical bitmask over LogicalKeys. Because set membership is
// the only thing a Chord encodes, lookup by Chord is order-independent by
// construction.
package key
