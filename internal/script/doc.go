// Package script evaluates the small Lua macros that programmable
// trackball buttons can be bound to. Scripts run in a sandboxed state with
// only the base, string, table, and math libraries available and a
// per-call execution deadline; a script's job is to return the text the
// button should type.
package script
