// Package trap defines the capability through which precise runtime failures
// become an embedding's trap representation, and the frame-accumulation
// protocol a trap follows as it unwinds through generated calls.
//
// Low-level components (memory, table, funcref) return local error types and
// never bind to a concrete representation; conversion happens exactly once,
// through a Factory, at the call site that is semantically required to trap.
// Representations that retain WebAssembly frames implement Frames; Push costs
// nothing for those that do not.
package trap

import (
	"github.com/wasm2go/rt/symbol"
)

// Factory converts a failure cause into the embedding's trap representation.
//
// The generator wires one Factory through each module instance; every
// trapping call site receives it together with an optional static frame
// locating the origin of the trap.
type Factory interface {
	Trap(cause error, frame *symbol.Frame) error
}

// Frames is implemented by trap representations that accumulate WebAssembly
// stack frames. PushWasmFrame returns the annotated trap, which may be the
// receiver itself.
type Frames interface {
	PushWasmFrame(frame *symbol.Frame) error
}

// Push appends frame to err when its representation retains frames, and
// returns err unchanged otherwise.
func Push(err error, frame *symbol.Frame) error {
	if err == nil || frame == nil {
		return err
	}
	if t, ok := err.(Frames); ok {
		return t.PushWasmFrame(frame)
	}
	return err
}

// With converts the error path of (v, err) through the factory, leaving the
// success path untouched.
func With[T any](v T, err error, f Factory, frame *symbol.Frame) (T, error) {
	if err == nil {
		return v, nil
	}
	return v, f.Trap(err, frame)
}

// Unwind pushes frame onto the error path of (v, err). Generated functions
// apply it to each nested call result as a trap propagates upward.
func Unwind[T any](v T, err error, frame *symbol.Frame) (T, error) {
	if err == nil {
		return v, nil
	}
	return v, Push(err, frame)
}

// UnreachableError is the cause reported when the unreachable instruction
// executes.
//
// See https://webassembly.github.io/spec/core/syntax/instructions.html#syntax-instr-control
type UnreachableError struct{}

func (UnreachableError) Error() string { return "unreachable instruction executed" }

// Occurred is the zero-information trap representation: it reports that a
// trap happened and nothing else. Frame pushes are discarded.
type Occurred struct{}

func (Occurred) Error() string { return "WebAssembly trap occurred" }

func (o Occurred) PushWasmFrame(*symbol.Frame) error { return o }

// OccurredFactory produces Occurred for every cause.
type OccurredFactory struct{}

func (OccurredFactory) Trap(error, *symbol.Frame) error { return Occurred{} }
