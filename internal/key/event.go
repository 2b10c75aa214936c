package key

import (
	"fmt"
	"time"
)

// Edge is the direction of a key transition.
type Edge uint8

const (
	// Pressed indicates a key-down transition.
	Pressed Edge = iota

	// Released indicates a key-up transition.
	Released
)

// String returns the edge name.
func (e Edge) String() string {
	switch e {
	case Pressed:
		return "press"
	case Released:
		return "release"
	default:
		return "unknown"
	}
}

// Event is a single key transition from the scan layer. The scan layer
// guarantees monotonically non-decreasing times and alternating edges per
// key; violations are dropped downstream, not repaired.
type Event struct {
	// Key identifies the logical key position.
	Key LogicalKey

	// Edge is the transition direction.
	Edge Edge

	// Time is the monotonic timestamp of the transition.
	Time time.Time
}

// NewPress creates a press event.
func NewPress(k LogicalKey, t time.Time) Event {
	return Event{Key: k, Edge: Pressed, Time: t}
}

// NewRelease creates a release event.
func NewRelease(k LogicalKey, t time.Time) Event {
	return Event{Key: k, Edge: Released, Time: t}
}

// String returns a diagnostic form such as "press o0".
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Edge, e.Key)
}
