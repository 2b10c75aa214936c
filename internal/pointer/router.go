package pointer

import (
	"errors"
	"fmt"

	"github.com/dshills/chordkit/internal/key"
	"github.com/dshills/chordkit/internal/layout"
	"github.com/dshills/chordkit/internal/script"
)

// MaxButtons is the size of the programmable binding table.
const MaxButtons = 16

// Router errors.
var (
	// ErrButtonRange indicates a button index outside 0..MaxButtons-1.
	ErrButtonRange = errors.New("pointer: button index out of range")

	// ErrNoEvaluator indicates a script binding with no evaluator wired.
	ErrNoEvaluator = errors.New("pointer: script binding without evaluator")
)

// Event is a discrete trackball button transition.
type Event struct {
	// Index is the button number reported by the pointing device.
	Index int

	// Edge is the transition direction.
	Edge key.Edge
}

// Motion is a relative pointer movement, passed through untouched.
type Motion struct {
	DX, DY int
}

// MotionSink receives pass-through motion deltas.
type MotionSink interface {
	Move(dx, dy int)
}

// Binding maps one button to output. Either Action is set, or Script
// holds a Lua macro evaluated at press time.
type Binding struct {
	Action layout.Action
	Script string
}

// IsZero returns true for an unbound slot.
func (b Binding) IsZero() bool {
	return b.Action.IsNoOp() && b.Script == ""
}

// Router resolves button presses against the static binding table.
type Router struct {
	bindings [MaxButtons]Binding
	eval     *script.Evaluator
	motion   MotionSink
}

// NewRouter builds a router from the configured bindings. The evaluator
// may be nil when no script bindings exist; the motion sink may be nil
// when motion is unused.
func NewRouter(bindings map[int]Binding, eval *script.Evaluator, motion MotionSink) (*Router, error) {
	r := &Router{eval: eval, motion: motion}
	for idx, b := range bindings {
		if idx < 0 || idx >= MaxButtons {
			return nil, fmt.Errorf("%w: %d", ErrButtonRange, idx)
		}
		if b.Script != "" && eval == nil {
			return nil, fmt.Errorf("%w: button %d", ErrNoEvaluator, idx)
		}
		r.bindings[idx] = b
	}
	return r, nil
}

// Route resolves one button event. Only the press edge produces output;
// releases return ok=false. Out-of-range indices and script failures are
// returned as errors so the caller can record the diagnostic and continue.
func (r *Router) Route(ev Event) (layout.Action, bool, error) {
	if ev.Index < 0 || ev.Index >= MaxButtons {
		return layout.NoOp, false, fmt.Errorf("%w: %d", ErrButtonRange, ev.Index)
	}
	if ev.Edge != key.Pressed {
		return layout.NoOp, false, nil
	}

	b := r.bindings[ev.Index]
	if b.IsZero() {
		return layout.NoOp, false, nil
	}

	if b.Script != "" {
		text, err := r.eval.Eval(b.Script)
		if err != nil {
			return layout.NoOp, false, fmt.Errorf("pointer: button %d: %w", ev.Index, err)
		}
		return layout.NewText(text), true, nil
	}
	return b.Action, true, nil
}

// Move forwards a motion delta to the sink, if one is wired.
func (r *Router) Move(m Motion) {
	if r.motion != nil {
		r.motion.Move(m.DX, m.DY)
	}
}

// Binding returns the binding for a button index.
func (r *Router) Binding(idx int) (Binding, bool) {
	if idx < 0 || idx >= MaxButtons {
		return Binding{}, false
	}
	return r.bindings[idx], true
}
