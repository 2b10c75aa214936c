package config

import (
	"fmt"
	"time"

	"github.com/dshills/chordkit/internal/chord"
	"github.com/dshills/chordkit/internal/diag"
	"github.com/dshills/chordkit/internal/hid"
	"github.com/dshills/chordkit/internal/key"
	"github.com/dshills/chordkit/internal/layout"
	"github.com/dshills/chordkit/internal/pointer"
)

// Config is the resolved configuration the engine is built from.
type Config struct {
	// KeyCount is the size of the logical key space.
	KeyCount int

	// Timeout is the rollover deadline for forced chord resolution.
	Timeout time.Duration

	// SpaceKey and ShiftKey are the reserved modifier keys.
	SpaceKey key.LogicalKey
	ShiftKey key.LogicalKey

	// Entries is the chord table. Empty means the built-in layout.
	Entries []layout.Entry

	// Buttons maps trackball button indices to bindings.
	Buttons map[int]pointer.Binding

	// LogLevel is the diagnostic log level.
	LogLevel diag.Level
}

// Default returns the built-in configuration: the default layout, default
// reserved thumbs, and the standard rollover timeout.
func Default() Config {
	return Config{
		KeyCount: key.DefaultKeyCount,
		Timeout:  chord.DefaultTimeout,
		SpaceKey: layout.DefaultSpaceKey,
		ShiftKey: layout.DefaultShiftKey,
		LogLevel: diag.LevelInfo,
	}
}

// BuildTable constructs the immutable chord table for this configuration.
func (c Config) BuildTable() (*layout.Table, error) {
	entries := c.Entries
	if len(entries) == 0 {
		entries = layout.DefaultEntries()
	}
	return layout.New(entries,
		layout.WithKeyCount(c.KeyCount),
		layout.WithReserved(c.SpaceKey, c.ShiftKey),
	)
}

// File is the on-disk configuration schema, shared by the TOML and YAML
// loaders.
type File struct {
	Engine  engineSection   `toml:"engine" yaml:"engine"`
	Log     logSection      `toml:"log" yaml:"log"`
	Chords  []chordSection  `toml:"chord" yaml:"chords"`
	Buttons []buttonSection `toml:"button" yaml:"buttons"`
}

type engineSection struct {
	KeyCount  int    `toml:"key_count" yaml:"key_count"`
	TimeoutMS int    `toml:"timeout_ms" yaml:"timeout_ms"`
	SpaceKey  string `toml:"space_key" yaml:"space_key"`
	ShiftKey  string `toml:"shift_key" yaml:"shift_key"`
}

type logSection struct {
	Level string `toml:"level" yaml:"level"`
}

type chordSection struct {
	Keys    []string `toml:"keys" yaml:"keys"`
	Char    string   `toml:"char" yaml:"char"`
	Text    string   `toml:"text" yaml:"text"`
	Keycode string   `toml:"keycode" yaml:"keycode"`
	Mods    []string `toml:"mods" yaml:"mods"`
}

type buttonSection struct {
	Index   int      `toml:"index" yaml:"index"`
	Char    string   `toml:"char" yaml:"char"`
	Text    string   `toml:"text" yaml:"text"`
	Keycode string   `toml:"keycode" yaml:"keycode"`
	Mods    []string `toml:"mods" yaml:"mods"`
	Script  string   `toml:"script" yaml:"script"`
}

// Resolve turns the file schema into a validated Config. Unset engine
// fields fall back to defaults.
func (f File) Resolve() (Config, error) {
	cfg := Default()

	if f.Engine.KeyCount != 0 {
		if f.Engine.KeyCount < 2 || f.Engine.KeyCount > key.MaxKeys {
			return Config{}, fmt.Errorf("%w: %d", ErrKeyCount, f.Engine.KeyCount)
		}
		cfg.KeyCount = f.Engine.KeyCount
	}
	if f.Engine.TimeoutMS > 0 {
		cfg.Timeout = time.Duration(f.Engine.TimeoutMS) * time.Millisecond
	}
	if f.Engine.SpaceKey != "" {
		k, err := key.ParseName(f.Engine.SpaceKey)
		if err != nil {
			return Config{}, fmt.Errorf("config: space_key: %w", err)
		}
		cfg.SpaceKey = k
	}
	if f.Engine.ShiftKey != "" {
		k, err := key.ParseName(f.Engine.ShiftKey)
		if err != nil {
			return Config{}, fmt.Errorf("config: shift_key: %w", err)
		}
		cfg.ShiftKey = k
	}
	if f.Log.Level != "" {
		cfg.LogLevel = diag.ParseLevel(f.Log.Level)
	}

	for i, cs := range f.Chords {
		pattern, err := parsePattern(cs.Keys)
		if err != nil {
			return Config{}, fmt.Errorf("config: chord %d: %w", i, err)
		}
		action, err := parseAction(cs.Char, cs.Text, cs.Keycode, cs.Mods)
		if err != nil {
			return Config{}, fmt.Errorf("config: chord %d: %w", i, err)
		}
		cfg.Entries = append(cfg.Entries, layout.Entry{Pattern: pattern, Action: action})
	}

	for i, bs := range f.Buttons {
		if bs.Index < 0 || bs.Index >= pointer.MaxButtons {
			return Config{}, fmt.Errorf("%w: %d", ErrButtonIndex, bs.Index)
		}
		binding := pointer.Binding{Script: bs.Script}
		if bs.Script == "" {
			action, err := parseAction(bs.Char, bs.Text, bs.Keycode, bs.Mods)
			if err != nil {
				return Config{}, fmt.Errorf("config: button %d: %w", i, err)
			}
			binding.Action = action
		}
		if cfg.Buttons == nil {
			cfg.Buttons = make(map[int]pointer.Binding)
		}
		cfg.Buttons[bs.Index] = binding
	}

	return cfg, nil
}

func parsePattern(names []string) (key.Chord, error) {
	var c key.Chord
	for _, name := range names {
		k, err := key.ParseName(name)
		if err != nil {
			return 0, err
		}
		c = c.Add(k)
	}
	return c, nil
}

func parseAction(char, text, keycode string, mods []string) (layout.Action, error) {
	set := 0
	if char != "" {
		set++
	}
	if text != "" {
		set++
	}
	if keycode != "" {
		set++
	}
	if set != 1 {
		return layout.NoOp, ErrBadAction
	}

	switch {
	case char != "":
		runes := []rune(char)
		if len(runes) != 1 {
			return layout.NoOp, fmt.Errorf("%w: %q", ErrBadChar, char)
		}
		return layout.NewChar(runes[0]), nil
	case text != "":
		return layout.NewText(text), nil
	default:
		code, ok := hid.CodeByName(keycode)
		if !ok {
			return layout.NoOp, fmt.Errorf("%w: %q", ErrBadKeycode, keycode)
		}
		var mask uint8
		for _, m := range mods {
			bit, found := hid.ModByName(m)
			if !found {
				return layout.NoOp, fmt.Errorf("%w: modifier %q", ErrBadKeycode, m)
			}
			mask |= bit
		}
		return layout.NewKeycode(code, mask), nil
	}
}
