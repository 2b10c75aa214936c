package key

import "strings"

// Flags are the secondary modifier semantics derived from reserved keys
// that participated in a chord window. Flags never outlive one resolution
// cycle.
type Flags struct {
	// SpaceAppend appends a space after the resolved output.
	SpaceAppend bool

	// ShiftActive emits the shifted variant of the resolved output.
	ShiftActive bool
}

// None returns true if no modifier semantics are active.
func (f Flags) None() bool {
	return !f.SpaceAppend && !f.ShiftActive
}

// String returns a readable form such as "shift+space" or "none".
func (f Flags) String() string {
	var parts []string
	if f.ShiftActive {
		parts = append(parts, "shift")
	}
	if f.SpaceAppend {
		parts = append(parts, "space")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}
