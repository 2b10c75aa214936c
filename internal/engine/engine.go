package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dshills/chordkit/internal/chord"
	"github.com/dshills/chordkit/internal/config"
	"github.com/dshills/chordkit/internal/diag"
	"github.com/dshills/chordkit/internal/hid"
	"github.com/dshills/chordkit/internal/key"
	"github.com/dshills/chordkit/internal/layout"
	"github.com/dshills/chordkit/internal/pointer"
	"github.com/dshills/chordkit/internal/script"
)

// Engine is the full chord entry pipeline. Key events flow through the
// accumulator; closed windows are resolved against the table, have
// modifier flags applied, and are emitted through the HID dispatcher.
// Trackball button events bypass the accumulator entirely.
type Engine struct {
	mu      sync.Mutex
	acc     *chord.Accumulator
	table   *layout.Table
	disp    *hid.Dispatcher
	router  *pointer.Router
	eval    *script.Evaluator
	ownEval bool
	motion  pointer.MotionSink

	log     *diag.Logger
	metrics *Metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the diagnostic logger.
func WithLogger(l *diag.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithEvaluator supplies a script evaluator for button macros. When no
// option is given and the configuration binds scripts, the engine owns
// its own evaluator and closes it on Close.
func WithEvaluator(ev *script.Evaluator) Option {
	return func(e *Engine) { e.eval = ev }
}

// WithMotionSink wires pointer motion pass-through.
func WithMotionSink(sink pointer.MotionSink) Option {
	return func(e *Engine) { e.motion = sink }
}

// New builds an engine from a resolved configuration and an output
// transport. The chord table is validated for singleton totality before
// the engine starts.
func New(cfg config.Config, tr hid.Transport, opts ...Option) (*Engine, error) {
	e := &Engine{
		log:     diag.Null,
		metrics: &Metrics{},
	}
	for _, opt := range opts {
		opt(e)
	}

	table, err := cfg.BuildTable()
	if err != nil {
		return nil, err
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}

	if e.eval == nil && hasScripts(cfg.Buttons) {
		ev, err := script.New()
		if err != nil {
			return nil, err
		}
		e.eval = ev
		e.ownEval = true
	}

	router, err := pointer.NewRouter(cfg.Buttons, e.eval, e.motion)
	if err != nil {
		if e.ownEval {
			e.eval.Close()
		}
		return nil, err
	}

	e.acc = chord.New(chord.Config{Timeout: cfg.Timeout, KeyCount: cfg.KeyCount})
	e.table = table
	e.disp = hid.NewDispatcher(tr)
	e.router = router
	return e, nil
}

func hasScripts(buttons map[int]pointer.Binding) bool {
	for _, b := range buttons {
		if b.Script != "" {
			return true
		}
	}
	return false
}

// HandleKey consumes one logical key event. Malformed events are dropped
// with a diagnostic; they never abort the pipeline.
func (e *Engine) HandleKey(ev key.Event) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	res, closed, err := e.acc.Feed(ev)
	if err != nil {
		e.metrics.droppedEvent()
		e.log.Debug("event dropped: event=%s error=%v", ev, err)
		return nil
	}
	if !closed {
		return nil
	}
	return e.resolve(res)
}

// Tick force-closes the open window when the rollover deadline has
// passed. Callers drive it from a timer armed at Deadline.
func (e *Engine) Tick(now time.Time) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	res, closed := e.acc.Expire(now)
	if !closed {
		return nil
	}
	return e.resolve(res)
}

// Deadline reports the open window's rollover deadline, if any.
func (e *Engine) Deadline() (time.Time, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.acc.Deadline()
}

// HandleButton routes one trackball button event. Script failures are
// recorded and swallowed so a bad macro cannot wedge input.
func (e *Engine) HandleButton(ev pointer.Event) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	action, ok, err := e.router.Route(ev)
	if err != nil {
		if errors.Is(err, pointer.ErrButtonRange) {
			e.metrics.droppedEvent()
		} else {
			e.metrics.scriptError()
		}
		e.log.Warn("button routing failed: index=%d error=%v", ev.Index, err)
		return nil
	}
	if !ok {
		return nil
	}
	e.metrics.buttonPress()
	e.log.Debug("button press: index=%d action=%s", ev.Index, action)
	return e.emit(action)
}

// HandleMotion forwards a pointer motion delta.
func (e *Engine) HandleMotion(m pointer.Motion) {
	e.router.Move(m)
}

// SwapTable atomically replaces the chord table, for live config
// reloads. The new table must already be validated.
func (e *Engine) SwapTable(t *layout.Table) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.table = t
	e.log.Info("chord table swapped: entries=%d", t.Len())
}

// Metrics returns the engine's counters.
func (e *Engine) Metrics() *Metrics {
	return e.metrics
}

// Close releases the engine's resources. Only an evaluator the engine
// created itself is closed.
func (e *Engine) Close() {
	if e.ownEval && e.eval != nil {
		e.eval.Close()
	}
}

// resolve maps a closed window to host output. Called with the mutex
// held.
func (e *Engine) resolve(res chord.Result) error {
	e.metrics.windowResolved(res.Forced)

	action, flags, ok := e.table.Resolve(res.Union)
	if !ok {
		e.metrics.unknownChord()
		e.log.Debug("unknown chord: window=%s union=%s", res.WindowID, res.Union)
		return nil
	}

	e.log.Debug("chord resolved: window=%s union=%s action=%s flags=%s forced=%t",
		res.WindowID, res.Union, action, flags, res.Forced)

	for _, a := range layout.Apply(action, flags) {
		if err := e.emit(a); err != nil {
			return err
		}
	}
	return nil
}

// emit sends one action through the dispatcher. A rune the layout cannot
// type is a diagnostic, not a pipeline failure; only transport errors
// propagate.
func (e *Engine) emit(a layout.Action) error {
	var err error
	switch a.Kind {
	case layout.KindChar:
		err = e.disp.TypeRune(a.Rune)
	case layout.KindText:
		err = e.disp.TypeText(a.Seq)
	case layout.KindKeycode:
		err = e.disp.TapCode(a.Code, a.Mods)
	default:
		return nil
	}
	if errors.Is(err, hid.ErrNoUsage) {
		e.log.Debug("untypeable rune skipped: action=%s error=%v", a, err)
		err = nil
	}
	if err != nil {
		return err
	}
	e.metrics.actionEmitted()
	return nil
}

// Run drives the engine from event channels until ctx is canceled or
// both channels are closed. The rollover timer is re-armed after every
// event so forced closure fires even when input goes quiet.
func (e *Engine) Run(ctx context.Context, keys <-chan key.Event, buttons <-chan pointer.Event) error {
	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	rearm := func() {
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		if deadline, ok := e.Deadline(); ok {
			timer.Reset(time.Until(deadline))
		}
	}

	for keys != nil || buttons != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-keys:
			if !ok {
				keys = nil
				continue
			}
			if err := e.HandleKey(ev); err != nil {
				return err
			}
			rearm()

		case ev, ok := <-buttons:
			if !ok {
				buttons = nil
				continue
			}
			if err := e.HandleButton(ev); err != nil {
				return err
			}

		case now := <-timer.C:
			if err := e.Tick(now); err != nil {
				return err
			}
			rearm()
		}
	}
	return nil
}
