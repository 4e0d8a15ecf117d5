// Package global implements WebAssembly global variables.
//
// See https://webassembly.github.io/spec/core/syntax/modules.html#globals
package global

// Global is a mutable global variable cell. Translated code reads it with
// Get (global.get) and writes it with Set (global.set). Single-threaded,
// like the rest of the substrate.
type Global[T any] struct {
	value T
}

// New returns a global variable with the given initial value.
func New[T any](value T) *Global[T] {
	return &Global[T]{value: value}
}

// Get returns the current value.
func (g *Global[T]) Get() T {
	return g.value
}

// Set replaces the current value.
func (g *Global[T]) Set(value T) {
	g.value = value
}
