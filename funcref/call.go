package funcref

import (
	"github.com/wasm2go/rt/symbol"
	"github.com/wasm2go/rt/trap"
)

// Call0 performs an indirect call with no arguments. The result type cannot
// be inferred and is always given explicitly; argument types are inferred on
// the higher arities, so call sites read
//
//	v, err := funcref.Call2[int32](f, a, b, tr, frame)
//
// A null reference or a signature token mismatch produces a trap through tr
// without invoking anything. On a match the erased callable runs and its
// results, including its own errors, pass through unchanged.
func Call0[R any](f FuncRef, tr trap.Factory, frame *symbol.Frame) (R, error) {
	invoke, err := f.cast(SignatureOf((func(any) (R, error))(nil)))
	if err != nil {
		var zero R
		return zero, tr.Trap(err, frame)
	}
	return invoke.(func(any) (R, error))(f.data)
}

// Call1 performs an indirect call with one argument.
func Call1[R, A0 any](f FuncRef, a0 A0, tr trap.Factory, frame *symbol.Frame) (R, error) {
	invoke, err := f.cast(SignatureOf((func(any, A0) (R, error))(nil)))
	if err != nil {
		var zero R
		return zero, tr.Trap(err, frame)
	}
	return invoke.(func(any, A0) (R, error))(f.data, a0)
}

// Call2 performs an indirect call with two arguments.
func Call2[R, A0, A1 any](f FuncRef, a0 A0, a1 A1, tr trap.Factory, frame *symbol.Frame) (R, error) {
	invoke, err := f.cast(SignatureOf((func(any, A0, A1) (R, error))(nil)))
	if err != nil {
		var zero R
		return zero, tr.Trap(err, frame)
	}
	return invoke.(func(any, A0, A1) (R, error))(f.data, a0, a1)
}

// Call3 performs an indirect call with three arguments.
func Call3[R, A0, A1, A2 any](f FuncRef, a0 A0, a1 A1, a2 A2, tr trap.Factory, frame *symbol.Frame) (R, error) {
	invoke, err := f.cast(SignatureOf((func(any, A0, A1, A2) (R, error))(nil)))
	if err != nil {
		var zero R
		return zero, tr.Trap(err, frame)
	}
	return invoke.(func(any, A0, A1, A2) (R, error))(f.data, a0, a1, a2)
}

// Call4 performs an indirect call with four arguments.
func Call4[R, A0, A1, A2, A3 any](f FuncRef, a0 A0, a1 A1, a2 A2, a3 A3, tr trap.Factory, frame *symbol.Frame) (R, error) {
	invoke, err := f.cast(SignatureOf((func(any, A0, A1, A2, A3) (R, error))(nil)))
	if err != nil {
		var zero R
		return zero, tr.Trap(err, frame)
	}
	return invoke.(func(any, A0, A1, A2, A3) (R, error))(f.data, a0, a1, a2, a3)
}

// Call5 performs an indirect call with five arguments.
func Call5[R, A0, A1, A2, A3, A4 any](f FuncRef, a0 A0, a1 A1, a2 A2, a3 A3, a4 A4, tr trap.Factory, frame *symbol.Frame) (R, error) {
	invoke, err := f.cast(SignatureOf((func(any, A0, A1, A2, A3, A4) (R, error))(nil)))
	if err != nil {
		var zero R
		return zero, tr.Trap(err, frame)
	}
	return invoke.(func(any, A0, A1, A2, A3, A4) (R, error))(f.data, a0, a1, a2, a3, a4)
}

// Call6 performs an indirect call with six arguments.
func Call6[R, A0, A1, A2, A3, A4, A5 any](f FuncRef, a0 A0, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, tr trap.Factory, frame *symbol.Frame) (R, error) {
	invoke, err := f.cast(SignatureOf((func(any, A0, A1, A2, A3, A4, A5) (R, error))(nil)))
	if err != nil {
		var zero R
		return zero, tr.Trap(err, frame)
	}
	return invoke.(func(any, A0, A1, A2, A3, A4, A5) (R, error))(f.data, a0, a1, a2, a3, a4, a5)
}

// Call7 performs an indirect call with seven arguments.
func Call7[R, A0, A1, A2, A3, A4, A5, A6 any](f FuncRef, a0 A0, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, tr trap.Factory, frame *symbol.Frame) (R, error) {
	invoke, err := f.cast(SignatureOf((func(any, A0, A1, A2, A3, A4, A5, A6) (R, error))(nil)))
	if err != nil {
		var zero R
		return zero, tr.Trap(err, frame)
	}
	return invoke.(func(any, A0, A1, A2, A3, A4, A5, A6) (R, error))(f.data, a0, a1, a2, a3, a4, a5, a6)
}

// Call8 performs an indirect call with eight arguments.
func Call8[R, A0, A1, A2, A3, A4, A5, A6, A7 any](f FuncRef, a0 A0, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, tr trap.Factory, frame *symbol.Frame) (R, error) {
	invoke, err := f.cast(SignatureOf((func(any, A0, A1, A2, A3, A4, A5, A6, A7) (R, error))(nil)))
	if err != nil {
		var zero R
		return zero, tr.Trap(err, frame)
	}
	return invoke.(func(any, A0, A1, A2, A3, A4, A5, A6, A7) (R, error))(f.data, a0, a1, a2, a3, a4, a5, a6, a7)
}

// Call9 performs an indirect call with nine arguments.
func Call9[R, A0, A1, A2, A3, A4, A5, A6, A7, A8 any](f FuncRef, a0 A0, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, a8 A8, tr trap.Factory, frame *symbol.Frame) (R, error) {
	invoke, err := f.cast(SignatureOf((func(any, A0, A1, A2, A3, A4, A5, A6, A7, A8) (R, error))(nil)))
	if err != nil {
		var zero R
		return zero, tr.Trap(err, frame)
	}
	return invoke.(func(any, A0, A1, A2, A3, A4, A5, A6, A7, A8) (R, error))(f.data, a0, a1, a2, a3, a4, a5, a6, a7, a8)
}
