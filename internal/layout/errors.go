package layout

import "errors"

// Table construction and validation errors.
var (
	// ErrEmptyPattern indicates an entry with no keys.
	ErrEmptyPattern = errors.New("layout: entry with empty pattern")

	// ErrDuplicatePattern indicates two entries for the same key set.
	ErrDuplicatePattern = errors.New("layout: duplicate pattern")

	// ErrPatternRange indicates a pattern using keys outside the table's
	// logical key space.
	ErrPatternRange = errors.New("layout: pattern key out of range")

	// ErrReservedRange indicates a reserved key outside the logical key
	// space.
	ErrReservedRange = errors.New("layout: reserved key out of range")

	// ErrSingletonGap indicates a single key with no entry; the table must
	// be total over singletons.
	ErrSingletonGap = errors.New("layout: single key without entry")
)
