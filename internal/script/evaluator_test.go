package script

import (
	"errors"
	"testing"
	"time"
)

func newEvaluator(t *testing.T, opts ...Option) *Evaluator {
	t.Helper()
	e, err := New(opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(e.Close)
	return e
}

func TestEvalReturnsString(t *testing.T) {
	e := newEvaluator(t)

	got, err := e.Eval(`return "hello, "`)
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if got != "hello, " {
		t.Errorf("Eval = %q, want %q", got, "hello, ")
	}
}

func TestEvalUsesSafeLibraries(t *testing.T) {
	e := newEvaluator(t)

	got, err := e.Eval(`return string.upper("abc") .. tostring(math.floor(2.9))`)
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if got != "ABC2" {
		t.Errorf("Eval = %q, want %q", got, "ABC2")
	}
}

func TestEvalNonStringReturn(t *testing.T) {
	e := newEvaluator(t)

	if _, err := e.Eval(`return 42`); !errors.Is(err, ErrNotString) {
		t.Errorf("numeric return err = %v, want ErrNotString", err)
	}
	if _, err := e.Eval(`local x = 1`); !errors.Is(err, ErrNotString) {
		t.Errorf("no return err = %v, want ErrNotString", err)
	}
}

func TestSandboxBlocksUnsafeLibraries(t *testing.T) {
	e := newEvaluator(t)

	for _, src := range []string{
		`return os.getenv("HOME")`,
		`return io.read()`,
		`return loadstring("return 1")()`,
		`return dofile("/etc/passwd")`,
	} {
		if _, err := e.Eval(src); err == nil {
			t.Errorf("Eval(%q) should fail in the sandbox", src)
		}
	}
}

func TestEvalTimeout(t *testing.T) {
	e := newEvaluator(t, WithTimeout(20*time.Millisecond))

	if _, err := e.Eval(`while true do end`); err == nil {
		t.Error("runaway loop should hit the deadline")
	}

	// The state stays usable afterwards.
	got, err := e.Eval(`return "ok"`)
	if err != nil || got != "ok" {
		t.Errorf("Eval after timeout = (%q, %v), want (ok, nil)", got, err)
	}
}

func TestEvalAfterClose(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	e.Close()

	if _, err := e.Eval(`return "x"`); !errors.Is(err, ErrClosed) {
		t.Errorf("Eval after Close err = %v, want ErrClosed", err)
	}
}
