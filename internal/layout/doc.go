// Package layout owns the static chord resolution table and the modifier
// layer that reinterprets reserved thumb keys.
//
// Lookup is a pure function of the chord's key set. An exact entry always
// wins; when none exists the reserved keys are stripped and the remainder
// retried, and only on that fallback path do the stripped keys contribute
// modifier semantics (space-append, shift). The table is built once at
// startup and never mutated afterwards.
package layout
