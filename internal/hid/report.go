package hid

import (
	"fmt"
	"sync"
)

// Report is one host-facing key report. A press and its matching release
// carry the same code and modifier mask.
type Report struct {
	// Code is the usage code from the keyboard/keypad page.
	Code uint8

	// Mods is the modifier byte sent with the report.
	Mods uint8

	// Pressed is true for the down report, false for the up report.
	Pressed bool
}

// String returns a diagnostic form such as "down 0x15 mods=0x02".
func (r Report) String() string {
	dir := "up"
	if r.Pressed {
		dir = "down"
	}
	return fmt.Sprintf("%s 0x%02x mods=0x%02x", dir, r.Code, r.Mods)
}

// Transport delivers reports to the host, in order. Implementations are
// the USB/BLE HID layer; Send must not be called concurrently.
type Transport interface {
	Send(Report) error
}

// Recorder is a Transport that captures the report stream for tests and
// the replay tool.
type Recorder struct {
	mu      sync.Mutex
	reports []Report
}

// Send appends the report to the captured stream.
func (r *Recorder) Send(rep Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, rep)
	return nil
}

// Reports returns a copy of the captured stream.
func (r *Recorder) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Report, len(r.reports))
	copy(out, r.reports)
	return out
}

// Reset clears the captured stream.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = nil
}
