package key

import "strings"

// Chord is a canonical set of LogicalKeys encoded as a bitmask. The zero
// value is the empty chord.
type Chord uint32

// Mask builds a chord from the given keys.
func Mask(keys ...LogicalKey) Chord {
	var c Chord
	for _, k := range keys {
		c = c.Add(k)
	}
	return c
}

// Add returns a new chord with k included.
func (c Chord) Add(k LogicalKey) Chord {
	return c | 1<<k
}

// Remove returns a new chord with k excluded.
func (c Chord) Remove(k LogicalKey) Chord {
	return c &^ (1 << k)
}

// Has returns true if k is part of the chord.
func (c Chord) Has(k LogicalKey) bool {
	return c&(1<<k) != 0
}

// Union returns the set union of two chords.
func (c Chord) Union(other Chord) Chord {
	return c | other
}

// Without returns the chord with every key in other removed.
func (c Chord) Without(other Chord) Chord {
	return c &^ other
}

// Overlaps returns true if the two chords share any key.
func (c Chord) Overlaps(other Chord) bool {
	return c&other != 0
}

// IsEmpty returns true if no keys are set.
func (c Chord) IsEmpty() bool {
	return c == 0
}

// Count returns the number of keys in the chord.
func (c Chord) Count() int {
	n := 0
	for v := c; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Keys returns the chord's members in ascending order.
func (c Chord) Keys() []LogicalKey {
	keys := make([]LogicalKey, 0, c.Count())
	for k := LogicalKey(0); k < MaxKeys; k++ {
		if c.Has(k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// String returns a readable form such as "{o0+i4}".
func (c Chord) String() string {
	if c.IsEmpty() {
		return "{}"
	}
	names := make([]string, 0, c.Count())
	for _, k := range c.Keys() {
		names = append(names, k.String())
	}
	return "{" + strings.Join(names, "+") + "}"
}
