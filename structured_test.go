package rt

import (
	"strings"
	"testing"

	"github.com/wasm2go/rt/errors"
	"github.com/wasm2go/rt/funcref"
	"github.com/wasm2go/rt/math"
	"github.com/wasm2go/rt/memory"
	"github.com/wasm2go/rt/stack"
	"github.com/wasm2go/rt/symbol"
	"github.com/wasm2go/rt/table"
	"github.com/wasm2go/rt/trap"
)

func TestStructuredFactory(t *testing.T) {
	cause := &memory.AccessError{Memory: 0, Address: 0x80}

	t.Run("zero value labels call failures", func(t *testing.T) {
		var f StructuredFactory
		err := f.Trap(cause, nil)
		se, ok := err.(*errors.Error)
		if !ok {
			t.Fatalf("Trap returned %T; want *errors.Error", err)
		}
		if se.Stage != errors.StageCall {
			t.Errorf("Stage = %q; want call", se.Stage)
		}
		if se.Kind != errors.KindOutOfBounds {
			t.Errorf("Kind = %q; want out_of_bounds", se.Kind)
		}
		if se.Cause != error(cause) {
			t.Errorf("Cause = %v; want the original cause", se.Cause)
		}
		if se.Detail != "" {
			t.Errorf("Detail = %q; want empty without a frame", se.Detail)
		}
	})

	t.Run("configured stage", func(t *testing.T) {
		f := StructuredFactory{Stage: errors.StageLoad}
		se := f.Trap(cause, nil).(*errors.Error)
		if se.Stage != errors.StageLoad {
			t.Errorf("Stage = %q; want load", se.Stage)
		}
	})

	t.Run("frame lands in the detail", func(t *testing.T) {
		var f StructuredFactory
		frame := &symbol.Frame{Symbol: &symbol.Symbol{Index: 7, CustomName: "alloc"}, Offset: 0x1C}
		se := f.Trap(cause, frame).(*errors.Error)
		if !strings.Contains(se.Detail, "trapped at") {
			t.Errorf("Detail = %q; want a trapped at location", se.Detail)
		}
		if !strings.Contains(se.Detail, "$alloc") {
			t.Errorf("Detail = %q; want the frame rendering", se.Detail)
		}
	})
}

func TestStructuredFactory_Kinds(t *testing.T) {
	sig := funcref.SignatureOf((func(any) (int32, error))(nil))
	tests := []struct {
		name  string
		cause error
		want  errors.Kind
	}{
		{"memory access", &memory.AccessError{Address: 1}, errors.KindOutOfBounds},
		{"table access", &table.AccessError{Index: 1}, errors.KindOutOfBounds},
		{"memory allocation", &memory.AllocationError{Size: 1}, errors.KindAllocationFailed},
		{"table allocation", &table.AllocationError{Size: 1}, errors.KindAllocationFailed},
		{"limits", &memory.LimitsMismatchError{}, errors.KindLimitsMismatch},
		{"signature", &funcref.CastError{Expected: sig, Err: &funcref.SignatureMismatchError{}}, errors.KindSignatureMismatch},
		{"null", &funcref.CastError{Null: true, Expected: sig}, errors.KindNullReference},
		{"division", math.DivisionByZeroError{}, errors.KindDivisionByZero},
		{"overflow", math.IntegerOverflowError{}, errors.KindOverflow},
		{"conversion", math.NanToIntegerError{}, errors.KindConversion},
		{"unreachable", trap.UnreachableError{}, errors.KindUnreachable},
		{"exhausted", stack.OverflowError{}, errors.KindStackExhausted},
		{"unclassified", errUnclassified("io failure"), errors.Kind("unknown")},
	}
	var f StructuredFactory
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			se := f.Trap(tt.cause, nil).(*errors.Error)
			if se.Kind != tt.want {
				t.Errorf("Kind = %q; want %q", se.Kind, tt.want)
			}
		})
	}
}

type errUnclassified string

func (e errUnclassified) Error() string { return string(e) }
