// Package diag provides the engine's leveled diagnostic logger. Every
// failure in the core is non-fatal by design, so diagnostics are the only
// place malformed input, unknown chords, and script failures surface.
package diag
