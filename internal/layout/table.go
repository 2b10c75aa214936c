package layout

import (
	"fmt"

	"github.com/dshills/chordkit/internal/key"
)

// Entry pairs a chord pattern with its action. Patterns are unordered key
// sets; the temporal order keys were pressed in never matters.
type Entry struct {
	Pattern key.Chord
	Action  Action
}

// Table is the immutable chord resolution table.
type Table struct {
	entries  map[key.Chord]Action
	keyCount int

	space    key.LogicalKey
	shift    key.LogicalKey
	reserved key.Chord
}

// Option configures table construction.
type Option func(*Table)

// WithKeyCount sets the logical key space size (default 10).
func WithKeyCount(n int) Option {
	return func(t *Table) {
		if n > 0 && n <= key.MaxKeys {
			t.keyCount = n
		}
	}
}

// WithReserved declares the space-append and shift reserved keys
// (defaults: inner thumb I4 and outer thumb O4).
func WithReserved(space, shift key.LogicalKey) Option {
	return func(t *Table) {
		t.space = space
		t.shift = shift
	}
}

// New builds a table from entries. Entries must be unique, non-empty, and
// within the key space.
func New(entries []Entry, opts ...Option) (*Table, error) {
	t := &Table{
		entries:  make(map[key.Chord]Action, len(entries)),
		keyCount: key.DefaultKeyCount,
		space:    key.I4,
		shift:    key.O4,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.reserved = key.Mask(t.space, t.shift)

	if int(t.space) >= t.keyCount || int(t.shift) >= t.keyCount {
		return nil, fmt.Errorf("%w: space=%s shift=%s", ErrReservedRange, t.space, t.shift)
	}

	limit := key.Chord(1)<<t.keyCount - 1
	for _, e := range entries {
		if e.Pattern.IsEmpty() {
			return nil, ErrEmptyPattern
		}
		if e.Pattern&^limit != 0 {
			return nil, fmt.Errorf("%w: %s", ErrPatternRange, e.Pattern)
		}
		if _, exists := t.entries[e.Pattern]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePattern, e.Pattern)
		}
		t.entries[e.Pattern] = e.Action
	}

	return t, nil
}

// Resolve maps a chord to its action. The returned flags are non-empty
// only when the reserved-strip fallback matched, in which case the
// stripped keys carry modifier semantics instead of pattern membership.
// ok is false when neither path matched (the unknown-chord case).
func (t *Table) Resolve(c key.Chord) (Action, key.Flags, bool) {
	if a, found := t.entries[c]; found {
		return a, key.Flags{}, true
	}

	stripped := c.Without(t.reserved)
	if stripped == c || stripped.IsEmpty() {
		return NoOp, key.Flags{}, false
	}
	if a, found := t.entries[stripped]; found {
		return a, key.Flags{
			SpaceAppend: c.Has(t.space),
			ShiftActive: c.Has(t.shift),
		}, true
	}
	return NoOp, key.Flags{}, false
}

// Lookup is the exact-match path only.
func (t *Table) Lookup(c key.Chord) (Action, bool) {
	a, found := t.entries[c]
	return a, found
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// KeyCount returns the logical key space size.
func (t *Table) KeyCount() int {
	return t.keyCount
}

// Reserved returns the space-append and shift reserved keys.
func (t *Table) Reserved() (space, shift key.LogicalKey) {
	return t.space, t.shift
}

// Entries returns the table contents in unspecified order, for export.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for pattern, action := range t.entries {
		out = append(out, Entry{Pattern: pattern, Action: action})
	}
	return out
}

// Validate checks singleton totality: every individual key must resolve
// to a defined, non-NoOp entry on its own.
func (t *Table) Validate() error {
	for k := key.LogicalKey(0); int(k) < t.keyCount; k++ {
		a, found := t.entries[key.Mask(k)]
		if !found || a.IsNoOp() {
			return fmt.Errorf("%w: %s", ErrSingletonGap, k)
		}
	}
	return nil
}
