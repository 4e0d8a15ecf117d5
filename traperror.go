package rt

import (
	"errors"
	"strings"

	"github.com/wasm2go/rt/funcref"
	"github.com/wasm2go/rt/math"
	"github.com/wasm2go/rt/memory"
	"github.com/wasm2go/rt/stack"
	"github.com/wasm2go/rt/symbol"
	"github.com/wasm2go/rt/table"
	"github.com/wasm2go/rt/trap"
)

// TrapError is the full-information trap representation: the classified
// code, the precise cause, and the WebAssembly frames accumulated while the
// trap unwound through generated calls, origin first.
type TrapError struct {
	code   TrapCode
	cause  error
	frames []*symbol.Frame
}

func (e *TrapError) Error() string {
	if len(e.frames) == 0 {
		return e.cause.Error()
	}
	var b strings.Builder
	b.WriteString(e.cause.Error())
	b.WriteString("\nwasm stack:")
	for _, f := range e.frames {
		b.WriteString("\n\t")
		b.WriteString(f.String())
	}
	return b.String()
}

func (e *TrapError) Unwrap() error {
	return e.cause
}

// Code returns the classified trap code.
func (e *TrapError) Code() TrapCode {
	return e.code
}

// Cause returns the precise error the trap was converted from.
func (e *TrapError) Cause() error {
	return e.cause
}

// Frames returns the accumulated frames, origin first. The slice is owned by
// the trap; callers must not modify it.
func (e *TrapError) Frames() []*symbol.Frame {
	return e.frames
}

// PushWasmFrame appends a frame as the trap unwinds through a generated
// call. It implements trap.Frames.
func (e *TrapError) PushWasmFrame(frame *symbol.Frame) error {
	if frame != nil {
		e.frames = append(e.frames, frame)
	}
	return e
}

// MatchesSpecFailure reports whether the trap corresponds to the given
// failure string from the WebAssembly test suite, such as
// "integer divide by zero" or "out of bounds memory access".
func (e *TrapError) MatchesSpecFailure(reason string) bool {
	s := e.code.specFailure()
	return s != "" && s == reason
}

// Classify maps a failure cause onto a TrapCode by its error type, walking
// wrapped causes. Causes outside the taxonomy map to CodeUnknown.
func Classify(cause error) TrapCode {
	var castErr *funcref.CastError
	if errors.As(cause, &castErr) {
		if castErr.Null {
			return CodeNullFunctionReference
		}
		return CodeIndirectCallSignatureMismatch
	}
	var sigErr *funcref.SignatureMismatchError
	if errors.As(cause, &sigErr) {
		return CodeIndirectCallSignatureMismatch
	}
	var memAccess *memory.AccessError
	if errors.As(cause, &memAccess) {
		return CodeMemoryBoundsCheck
	}
	var memAlloc *memory.AllocationError
	if errors.As(cause, &memAlloc) {
		return CodeMemoryAllocationFailure
	}
	var memLimits *memory.LimitsMismatchError
	if errors.As(cause, &memLimits) {
		return CodeMemoryLimitsMismatch
	}
	var tblAccess *table.AccessError
	if errors.As(cause, &tblAccess) {
		return CodeTableBoundsCheck
	}
	var tblAlloc *table.AllocationError
	if errors.As(cause, &tblAlloc) {
		return CodeTableAllocationFailure
	}
	var tblLimits *table.LimitsMismatchError
	if errors.As(cause, &tblLimits) {
		return CodeTableLimitsMismatch
	}
	var unreachable trap.UnreachableError
	if errors.As(cause, &unreachable) {
		return CodeUnreachable
	}
	var divByZero math.DivisionByZeroError
	if errors.As(cause, &divByZero) {
		return CodeIntegerDivisionByZero
	}
	var overflow math.IntegerOverflowError
	if errors.As(cause, &overflow) {
		return CodeIntegerOverflow
	}
	var nan math.NanToIntegerError
	if errors.As(cause, &nan) {
		return CodeConversionToInteger
	}
	var exhausted stack.OverflowError
	if errors.As(cause, &exhausted) {
		return CodeCallStackExhausted
	}
	return CodeUnknown
}

type trapFactory struct{}

// NewFactory returns the factory embeddings wire through generated code when
// they want full trap information. Every produced error is a *TrapError.
func NewFactory() trap.Factory {
	return trapFactory{}
}

func (trapFactory) Trap(cause error, frame *symbol.Frame) error {
	t := &TrapError{code: Classify(cause), cause: cause}
	if frame != nil {
		t.frames = append(t.frames, frame)
	}
	return t
}
