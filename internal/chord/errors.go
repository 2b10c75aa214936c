package chord

import "errors"

// Accumulator errors. All of them mean the offending event was dropped;
// none of them disturb an open window.
var (
	// ErrKeyRange indicates a key outside the configured logical key space.
	ErrKeyRange = errors.New("chord: key out of range")

	// ErrDuplicatePress indicates a press for a key that is already held.
	ErrDuplicatePress = errors.New("chord: duplicate press without release")

	// ErrReleaseNotHeld indicates a release for a key that is not held.
	ErrReleaseNotHeld = errors.New("chord: release for key not held")
)
