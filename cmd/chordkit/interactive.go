package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/chordkit/internal/config"
	"github.com/dshills/chordkit/internal/config/watcher"
	"github.com/dshills/chordkit/internal/diag"
	"github.com/dshills/chordkit/internal/engine"
	"github.com/dshills/chordkit/internal/hid"
	"github.com/dshills/chordkit/internal/key"
)

// runInteractive is the terminal chord tester. Home-row letters (or
// digits) toggle membership in a pending key set, Enter submits the set
// as a chord, and the resulting report stream is shown alongside the
// engine counters. Terminal input has no release edges, so submit
// synthesizes press-all then release-all. When a config file was given
// its chord table is live-reloaded on change.
func runInteractive(cfg config.Config, cfgPath string) int {
	rec := &hid.Recorder{}
	eng, err := engine.New(cfg, rec, engine.WithLogger(diag.Null))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to build engine: %v\n", err)
		return 1
	}
	defer eng.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	if cfgPath != "" {
		w, err := watcher.New(cfgPath)
		if err == nil {
			defer w.Close()
			go func() {
				for range w.Events() {
					// The reload result rides the interrupt event so the
					// UI loop owns all tester state.
					screen.PostEvent(tcell.NewEventInterrupt(reloadTable(eng, cfgPath)))
				}
			}()
		}
	}

	t := &tester{
		eng:     eng,
		rec:     rec,
		screen:  screen,
		pending: make(map[key.LogicalKey]bool),
	}

	for {
		t.draw()
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventInterrupt:
			t.reloadErr, _ = ev.Data().(error)
		case *tcell.EventKey:
			if done := t.handleKey(ev); done {
				return 0
			}
		}
	}
}

// reloadTable rebuilds the chord table from the config file and swaps
// it into the running engine.
func reloadTable(eng *engine.Engine, path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	table, err := cfg.BuildTable()
	if err != nil {
		return err
	}
	if err := table.Validate(); err != nil {
		return err
	}
	eng.SwapTable(table)
	return nil
}

type tester struct {
	eng       *engine.Engine
	rec       *hid.Recorder
	screen    tcell.Screen
	pending   map[key.LogicalKey]bool
	lastErr   error
	reloadErr error
}

// handleKey processes one terminal key event, returning true to quit.
func (t *tester) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		t.submit()
		return false
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r >= '0' && r <= '9':
			k := key.LogicalKey(r - '0')
			t.pending[k] = !t.pending[k]
		case r == 'c':
			t.pending = make(map[key.LogicalKey]bool)
		case r == 'r':
			t.rec.Reset()
		case r == 'q':
			return true
		default:
			if k, ok := homeRow[r]; ok {
				t.pending[k] = !t.pending[k]
			}
		}
	}
	return false
}

// homeRow maps qwerty home-row keys onto the half-board: left hand is the
// outer row, right hand the inner row. Digits 0..9 address logical keys
// directly for layouts beyond the default ten.
var homeRow = map[rune]key.LogicalKey{
	'a': key.O0, 's': key.O1, 'd': key.O2, 'f': key.O3, 'g': key.O4,
	'h': key.I0, 'j': key.I1, 'k': key.I2, 'l': key.I3, ';': key.I4,
}

// submit presses every pending key and releases them all, closing one
// chord window through the engine.
func (t *tester) submit() {
	keys := t.pendingKeys()
	if len(keys) == 0 {
		return
	}

	now := time.Now()
	t.lastErr = nil
	for i, k := range keys {
		if err := t.eng.HandleKey(key.NewPress(k, now.Add(time.Duration(i)*time.Millisecond))); err != nil {
			t.lastErr = err
		}
	}
	for i, k := range keys {
		if err := t.eng.HandleKey(key.NewRelease(k, now.Add(time.Duration(len(keys)+i)*time.Millisecond))); err != nil {
			t.lastErr = err
		}
	}
	t.pending = make(map[key.LogicalKey]bool)
}

func (t *tester) pendingKeys() []key.LogicalKey {
	keys := make([]key.LogicalKey, 0, len(t.pending))
	for k, held := range t.pending {
		if held {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (t *tester) draw() {
	s := t.screen
	s.Clear()

	title := tcell.StyleDefault.Bold(true)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	errStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)

	drawText(s, 0, 0, title, "chordkit tester")
	drawText(s, 0, 1, dim, "asdfg=o0..o4 hjkl;=i0..i4 (or digits), Enter submits, c clears, r resets output, q quits")

	pending := "(none)"
	if keys := t.pendingKeys(); len(keys) > 0 {
		pending = ""
		for i, k := range keys {
			if i > 0 {
				pending += "+"
			}
			pending += k.String()
		}
	}
	drawText(s, 0, 3, tcell.StyleDefault, "pending: "+pending)

	reports := t.rec.Reports()
	drawText(s, 0, 5, title, "output")
	start := 0
	if len(reports) > 10 {
		start = len(reports) - 10
	}
	row := 6
	for _, rep := range reports[start:] {
		drawText(s, 2, row, tcell.StyleDefault, rep.String())
		row++
	}

	snap := t.eng.Metrics().Snapshot()
	drawText(s, 0, row+1, dim, fmt.Sprintf(
		"windows=%d forced=%d unknown=%d dropped=%d actions=%d",
		snap.WindowsResolved, snap.ForcedTimeouts, snap.UnknownChords,
		snap.DroppedEvents, snap.ActionsEmitted))

	if t.lastErr != nil {
		drawText(s, 0, row+3, errStyle, "error: "+t.lastErr.Error())
	}
	if t.reloadErr != nil {
		drawText(s, 0, row+4, errStyle, "reload: "+t.reloadErr.Error())
	}

	s.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}
