package chord

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/chordkit/internal/key"
)

// DefaultTimeout is the rollover deadline for forced window closure.
// Past this long after the last press, a window resolves even with keys
// still down.
const DefaultTimeout = 150 * time.Millisecond

// Config configures an Accumulator.
type Config struct {
	// Timeout is the rollover deadline. A window is force-closed this long
	// after its most recent press even if keys remain held.
	Timeout time.Duration

	// KeyCount is the size of the logical key space. Events outside
	// 0..KeyCount-1 are dropped.
	KeyCount int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:  DefaultTimeout,
		KeyCount: key.DefaultKeyCount,
	}
}

// Result is one closed chord window, ready for table resolution.
type Result struct {
	// Union is every key that was held at any point during the window.
	Union key.Chord

	// WindowID correlates diagnostics for this window.
	WindowID string

	// Forced is true when the rollover deadline closed the window.
	Forced bool

	// ClosedAt is when the window closed.
	ClosedAt time.Time
}

// Accumulator builds chord windows from a single ordered event stream.
// It is not safe for concurrent use; the engine serializes all calls.
type Accumulator struct {
	cfg Config

	open     bool
	id       string
	held     key.Chord
	union    key.Chord
	deadline time.Time
}

// New creates an accumulator. Zero or negative config values fall back to
// defaults.
func New(cfg Config) *Accumulator {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.KeyCount <= 0 || cfg.KeyCount > key.MaxKeys {
		cfg.KeyCount = key.DefaultKeyCount
	}
	return &Accumulator{cfg: cfg}
}

// Feed consumes one key event. When the event closes a window the returned
// bool is true and the Result carries the window's union. A non-nil error
// means the event was malformed and dropped; window state is untouched.
func (a *Accumulator) Feed(ev key.Event) (Result, bool, error) {
	if int(ev.Key) >= a.cfg.KeyCount {
		return Result{}, false, fmt.Errorf("%w: %d", ErrKeyRange, ev.Key)
	}

	switch ev.Edge {
	case key.Pressed:
		return a.press(ev)
	case key.Released:
		return a.release(ev)
	default:
		return Result{}, false, fmt.Errorf("chord: unknown edge %d", ev.Edge)
	}
}

func (a *Accumulator) press(ev key.Event) (Result, bool, error) {
	if a.held.Has(ev.Key) {
		return Result{}, false, fmt.Errorf("%w: %s", ErrDuplicatePress, ev.Key)
	}

	if !a.open {
		a.open = true
		a.id = uuid.New().String()
		a.held = 0
		a.union = 0
	}

	a.held = a.held.Add(ev.Key)
	a.union = a.union.Add(ev.Key)
	// Every press extends the window.
	a.deadline = ev.Time.Add(a.cfg.Timeout)
	return Result{}, false, nil
}

func (a *Accumulator) release(ev key.Event) (Result, bool, error) {
	if !a.open || !a.held.Has(ev.Key) {
		return Result{}, false, fmt.Errorf("%w: %s", ErrReleaseNotHeld, ev.Key)
	}

	a.held = a.held.Remove(ev.Key)
	if !a.held.IsEmpty() {
		return Result{}, false, nil
	}

	res := Result{
		Union:    a.union,
		WindowID: a.id,
		ClosedAt: ev.Time,
	}
	a.reset()
	return res, true, nil
}

// Expire force-closes the window if the rollover deadline has passed.
// Keys still physically held seed a fresh window immediately so that the
// next resolution sees only what happens after the forced closure.
func (a *Accumulator) Expire(now time.Time) (Result, bool) {
	if !a.open || now.Before(a.deadline) {
		return Result{}, false
	}

	res := Result{
		Union:    a.union,
		WindowID: a.id,
		Forced:   true,
		ClosedAt: now,
	}

	held := a.held
	a.reset()
	if !held.IsEmpty() {
		a.open = true
		a.id = uuid.New().String()
		a.held = held
		a.union = held
		a.deadline = now.Add(a.cfg.Timeout)
	}
	return res, true
}

// Deadline reports the open window's forced-resolution deadline. The bool
// is false when no window is open.
func (a *Accumulator) Deadline() (time.Time, bool) {
	return a.deadline, a.open
}

// Held returns the keys currently held in the open window.
func (a *Accumulator) Held() key.Chord {
	return a.held
}

// Open returns true while a window is collecting keys.
func (a *Accumulator) Open() bool {
	return a.open
}

// WindowID returns the open window's diagnostic identifier, or "" when no
// window is open.
func (a *Accumulator) WindowID() string {
	if !a.open {
		return ""
	}
	return a.id
}

func (a *Accumulator) reset() {
	a.open = false
	a.id = ""
	a.held = 0
	a.union = 0
	a.deadline = time.Time{}
}
