package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dshills/chordkit/internal/config"
	"github.com/dshills/chordkit/internal/diag"
	"github.com/dshills/chordkit/internal/engine"
	"github.com/dshills/chordkit/internal/hid"
	"github.com/dshills/chordkit/internal/key"
	"github.com/dshills/chordkit/internal/pointer"
)

// replayEvent is one line of a replay script, ordered by timestamp.
type replayEvent struct {
	at     time.Duration
	key    key.LogicalKey
	edge   key.Edge
	button int
	isKey  bool
}

// runReplay feeds a recorded event script through the engine and prints
// the resulting report stream. Script lines are one event each:
//
//	+o0 10     press o0 at 10ms
//	-o0 25     release o0 at 25ms
//	b3 40      press and release button 3 at 40ms
//
// Blank lines and lines starting with # are skipped.
func runReplay(cfg config.Config, path string) int {
	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open replay script: %v\n", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	events, err := parseReplay(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	rec := &hid.Recorder{}
	log := diag.New(diag.Config{Level: cfg.LogLevel, Output: os.Stderr})
	eng, err := engine.New(cfg, rec, engine.WithLogger(log))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to build engine: %v\n", err)
		return 1
	}
	defer eng.Close()

	base := time.Unix(0, 0)
	for _, ev := range events {
		now := base.Add(ev.at)
		// Fire any rollover deadline that elapsed before this event.
		if deadline, ok := eng.Deadline(); ok && !deadline.After(now) {
			if err := eng.Tick(deadline); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return 1
			}
		}

		if ev.isKey {
			err = eng.HandleKey(key.Event{Key: ev.key, Edge: ev.edge, Time: now})
		} else {
			err = eng.HandleButton(pointer.Event{Index: ev.button, Edge: key.Pressed})
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	// Flush a window left open at end of script.
	if deadline, ok := eng.Deadline(); ok {
		if err := eng.Tick(deadline); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	for _, rep := range rec.Reports() {
		fmt.Println(rep.String())
	}

	snap := eng.Metrics().Snapshot()
	fmt.Fprintf(os.Stderr, "windows=%d forced=%d unknown=%d dropped=%d reports=%d\n",
		snap.WindowsResolved, snap.ForcedTimeouts, snap.UnknownChords,
		snap.DroppedEvents, len(rec.Reports()))
	return 0
}

func parseReplay(in io.Reader) ([]replayEvent, error) {
	var events []replayEvent
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("replay line %d: want \"<event> <ms>\", got %q", lineNo, line)
		}
		ms, err := strconv.Atoi(fields[1])
		if err != nil || ms < 0 {
			return nil, fmt.Errorf("replay line %d: bad timestamp %q", lineNo, fields[1])
		}

		ev := replayEvent{at: time.Duration(ms) * time.Millisecond}
		switch {
		case strings.HasPrefix(fields[0], "+"), strings.HasPrefix(fields[0], "-"):
			k, err := key.ParseName(fields[0][1:])
			if err != nil {
				return nil, fmt.Errorf("replay line %d: %w", lineNo, err)
			}
			ev.isKey = true
			ev.key = k
			ev.edge = key.Pressed
			if fields[0][0] == '-' {
				ev.edge = key.Released
			}
		case strings.HasPrefix(fields[0], "b"):
			idx, err := strconv.Atoi(fields[0][1:])
			if err != nil {
				return nil, fmt.Errorf("replay line %d: bad button %q", lineNo, fields[0])
			}
			ev.button = idx
		default:
			return nil, fmt.Errorf("replay line %d: unknown event %q", lineNo, fields[0])
		}

		if n := len(events); n > 0 && ev.at < events[n-1].at {
			return nil, fmt.Errorf("replay line %d: timestamps must not decrease", lineNo)
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	return events, nil
}
