// Package engine wires the chord accumulator, resolution table, modifier
// layer, trackball router, and output dispatcher into one serialized
// pipeline. Input is handled by a single goroutine; the engine's mutex
// exists so a config reload can swap the chord table in between windows
// without pausing that loop.
package engine
