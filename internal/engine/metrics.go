package engine

import "sync"

// Metrics counts pipeline activity for diagnostics. All methods are safe
// for concurrent use.
type Metrics struct {
	mu sync.Mutex

	windowsResolved uint64
	forcedTimeouts  uint64
	unknownChords   uint64
	droppedEvents   uint64
	actionsEmitted  uint64
	buttonPresses   uint64
	scriptErrors    uint64
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	WindowsResolved uint64
	ForcedTimeouts  uint64
	UnknownChords   uint64
	DroppedEvents   uint64
	ActionsEmitted  uint64
	ButtonPresses   uint64
	ScriptErrors    uint64
}

// Snapshot returns a copy of the current counters.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		WindowsResolved: m.windowsResolved,
		ForcedTimeouts:  m.forcedTimeouts,
		UnknownChords:   m.unknownChords,
		DroppedEvents:   m.droppedEvents,
		ActionsEmitted:  m.actionsEmitted,
		ButtonPresses:   m.buttonPresses,
		ScriptErrors:    m.scriptErrors,
	}
}

func (m *Metrics) windowResolved(forced bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.windowsResolved++
	if forced {
		m.forcedTimeouts++
	}
}

func (m *Metrics) unknownChord() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unknownChords++
}

func (m *Metrics) droppedEvent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.droppedEvents++
}

func (m *Metrics) actionEmitted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actionsEmitted++
}

func (m *Metrics) buttonPress() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buttonPresses++
}

func (m *Metrics) scriptError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scriptErrors++
}
