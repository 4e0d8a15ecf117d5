// Package table implements WebAssembly tables.
//
// A Table is generic over its address type and element type; the element
// type's designated null value is supplied at construction rather than
// derived from the type, so function references, extern handles, and test
// doubles all fit the same implementations.
//
// Elements that own resources must not be observable half-moved: With
// provides the scoped guard used to operate on a stored element, swapping
// the designated null into the slot for the duration of the call and
// restoring the element on every exit path, panics included.
//
// The helper functions (GetChecked, Init, Copy, ...) are the entry points
// called by translated code; they convert bounds failures into traps
// through a trap.Factory tagged with the accessed table's index.
package table
