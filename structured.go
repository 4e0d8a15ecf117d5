package rt

import (
	"github.com/wasm2go/rt/errors"
	"github.com/wasm2go/rt/symbol"
)

// StructuredFactory is the adapter onto the structured application error
// type: every trap becomes a *errors.Error carrying the classified kind and
// the precise cause. Frames are not retained; embeddings that need the wasm
// stack use NewFactory instead.
//
// Stage labels the operation family the factory is wired to. The zero value
// labels traps as call failures.
type StructuredFactory struct {
	Stage errors.Stage
}

func (f StructuredFactory) Trap(cause error, frame *symbol.Frame) error {
	stage := f.Stage
	if stage == "" {
		stage = errors.StageCall
	}
	b := errors.New(stage, kindFor(Classify(cause))).Cause(cause)
	if frame != nil {
		b.Detail("trapped at %v", frame)
	}
	return b.Build()
}

func kindFor(code TrapCode) errors.Kind {
	switch code {
	case CodeUnreachable:
		return errors.KindUnreachable
	case CodeConversionToInteger:
		return errors.KindConversion
	case CodeIntegerDivisionByZero:
		return errors.KindDivisionByZero
	case CodeIntegerOverflow:
		return errors.KindOverflow
	case CodeMemoryBoundsCheck, CodeTableBoundsCheck:
		return errors.KindOutOfBounds
	case CodeMemoryAllocationFailure, CodeTableAllocationFailure:
		return errors.KindAllocationFailed
	case CodeMemoryLimitsMismatch, CodeTableLimitsMismatch:
		return errors.KindLimitsMismatch
	case CodeIndirectCallSignatureMismatch:
		return errors.KindSignatureMismatch
	case CodeNullFunctionReference:
		return errors.KindNullReference
	case CodeCallStackExhausted:
		return errors.KindStackExhausted
	default:
		return errors.Kind("unknown")
	}
}
