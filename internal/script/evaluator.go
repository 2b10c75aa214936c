package script

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// DefaultTimeout bounds one macro evaluation. Macros are tiny; anything
// slower is a runaway loop.
const DefaultTimeout = 100 * time.Millisecond

// Evaluator errors.
var (
	// ErrClosed indicates the evaluator has been closed.
	ErrClosed = errors.New("script: evaluator closed")

	// ErrNotString indicates a macro that did not return a string.
	ErrNotString = errors.New("script: macro must return a string")
)

// Evaluator runs button macros in one long-lived sandboxed Lua state.
//
// gopher-lua's LState is not goroutine-safe; the mutex serializes calls so
// the router can be driven from the engine loop while tests call Eval
// directly.
type Evaluator struct {
	mu      sync.Mutex
	state   *lua.LState
	timeout time.Duration
	closed  bool
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithTimeout sets the per-call execution deadline.
func WithTimeout(d time.Duration) Option {
	return func(e *Evaluator) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// New creates a sandboxed evaluator.
func New(opts ...Option) (*Evaluator, error) {
	e := &Evaluator{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(e)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	e.state = L

	// Open only the safe libraries.
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.StringLibName, lua.OpenString},
		{lua.TabLibName, lua.OpenTable},
		{lua.MathLibName, lua.OpenMath},
	} {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.fn),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			L.Close()
			return nil, fmt.Errorf("script: opening %s: %w", lib.name, err)
		}
	}

	// Remove the escape hatches the base library leaves behind.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "print"} {
		L.SetGlobal(name, lua.LNil)
	}

	return e, nil
}

// Eval runs one macro chunk and returns the string it produced. The chunk
// must end with a return statement.
func (e *Evaluator) Eval(src string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return "", ErrClosed
	}

	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()
	e.state.SetContext(ctx)
	defer e.state.RemoveContext()

	top := e.state.GetTop()
	if err := e.state.DoString(src); err != nil {
		e.state.SetTop(top)
		return "", fmt.Errorf("script: %w", err)
	}

	ret := e.state.Get(-1)
	e.state.SetTop(top)

	str, ok := ret.(lua.LString)
	if !ok {
		return "", fmt.Errorf("%w, got %s", ErrNotString, ret.Type())
	}
	return string(str), nil
}

// Close releases the Lua state.
func (e *Evaluator) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.state.Close()
}
