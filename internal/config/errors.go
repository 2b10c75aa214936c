package config

import "errors"

// Configuration errors.
var (
	// ErrUnsupportedFormat indicates a config file extension with no loader.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrBadAction indicates an entry that defines zero or multiple output
	// forms.
	ErrBadAction = errors.New("config: entry must define exactly one of char, text, or keycode")

	// ErrBadKeycode indicates an unknown keycode or modifier name.
	ErrBadKeycode = errors.New("config: unknown keycode name")

	// ErrBadChar indicates a char field that is not a single character.
	ErrBadChar = errors.New("config: char must be a single character")

	// ErrButtonIndex indicates a button binding outside the router's range.
	ErrButtonIndex = errors.New("config: button index out of range")

	// ErrKeyCount indicates an unusable logical key space size.
	ErrKeyCount = errors.New("config: key_count out of range")
)
