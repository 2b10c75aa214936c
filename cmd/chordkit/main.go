// Package main is the entry point for the chordkit tool.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/chordkit/internal/config"
	"github.com/dshills/chordkit/internal/diag"
	"github.com/dshills/chordkit/internal/layout"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

type options struct {
	ConfigPath   string
	LayoutPath   string
	Validate     bool
	ExportLayout string
	ReplayPath   string
	LogLevel     string
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = diag.ParseLevel(opts.LogLevel)
	}

	if opts.LayoutPath != "" {
		data, err := os.ReadFile(opts.LayoutPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to read layout: %v\n", err)
			return 1
		}
		entries, err := config.ImportJSONLayout(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to import layout: %v\n", err)
			return 1
		}
		cfg.Entries = entries
	}

	switch {
	case opts.Validate:
		return runValidate(cfg)
	case opts.ExportLayout != "":
		return runExport(cfg, opts.ExportLayout)
	case opts.ReplayPath != "":
		return runReplay(cfg, opts.ReplayPath)
	default:
		return runInteractive(cfg, opts.ConfigPath)
	}
}

// runValidate builds the chord table and checks singleton totality.
func runValidate(cfg config.Config) int {
	table, err := cfg.BuildTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid layout: %v\n", err)
		return 1
	}
	if err := table.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid layout: %v\n", err)
		return 1
	}
	fmt.Printf("OK: %d entries, %d keys, reserved ", table.Len(), table.KeyCount())
	space, shift := table.Reserved()
	fmt.Printf("space=%s shift=%s\n", space, shift)
	return 0
}

// runExport writes the active layout as JSON to the given path, or to
// stdout when the path is "-".
func runExport(cfg config.Config, path string) int {
	entries := cfg.Entries
	name := "custom"
	if len(entries) == 0 {
		entries = layout.DefaultEntries()
		name = "default"
	}
	data, err := config.ExportJSONLayout(name, entries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to export layout: %v\n", err)
		return 1
	}
	if path == "-" {
		fmt.Println(string(data))
		return 0
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to write layout: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (TOML or YAML)")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.LayoutPath, "layout", "", "JSON layout file overriding the configured chords")
	flag.BoolVar(&opts.Validate, "validate", false, "Validate the layout and exit")
	flag.StringVar(&opts.ExportLayout, "export-layout", "", "Write the active layout as JSON to a file, or - for stdout")
	flag.StringVar(&opts.ReplayPath, "replay", "", "Replay a key event script, or - for stdin")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "chordkit - chorded text entry engine\n\n")
		fmt.Fprintf(os.Stderr, "Usage: chordkit [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  chordkit                          Interactive chord tester\n")
		fmt.Fprintf(os.Stderr, "  chordkit -c chordkit.toml         Tester with a custom config\n")
		fmt.Fprintf(os.Stderr, "  chordkit -validate -layout l.json Check a layout file\n")
		fmt.Fprintf(os.Stderr, "  chordkit -export-layout -         Dump the built-in layout\n")
		fmt.Fprintf(os.Stderr, "  chordkit -replay session.txt      Replay a recorded session\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("chordkit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.LogLevel != "" {
		switch opts.LogLevel {
		case "debug", "info", "warn", "error":
		default:
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
			os.Exit(1)
		}
	}

	return opts
}
