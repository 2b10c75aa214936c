// Package config loads the engine's static configuration: the logical key
// space, the reserved modifier keys, the chord table, the programmable
// button bindings, and the rollover timeout. Configuration is loaded once;
// the tables built from it are immutable for the life of the engine
// generation they feed.
//
// TOML is the primary format, YAML is accepted by extension, and layouts
// can additionally be exchanged as JSON documents for interoperability
// with external layout editors.
package config
