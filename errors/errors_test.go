package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Stage:  StageLoad,
				Kind:   KindOutOfBounds,
				Path:   []string{"memory", "0"},
				Detail: "read past the end of the heap",
			},
			contains: []string{"[load]", "out_of_bounds", "memory.0", "read past the end of the heap"},
		},
		{
			name: "minimal error",
			err: &Error{
				Stage: StageStore,
				Kind:  KindOutOfBounds,
			},
			contains: []string{"[store]", "out_of_bounds"},
		},
		{
			name: "error with cause",
			err: &Error{
				Stage:  StageGrow,
				Kind:   KindAllocationFailed,
				Detail: "memory full",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[grow]", "allocation_failed", "memory full", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Stage: StageCall,
		Kind:  KindNullReference,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Stage: StageLoad,
		Kind:  KindOutOfBounds,
		Path:  []string{"memory", "1"},
	}

	if !err.Is(&Error{Stage: StageLoad, Kind: KindOutOfBounds}) {
		t.Error("Is should match same stage and kind")
	}

	if err.Is(&Error{Stage: StageStore, Kind: KindOutOfBounds}) {
		t.Error("Is should not match different stage")
	}

	if err.Is(&Error{Stage: StageLoad, Kind: KindOverflow}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Stage: StageLoad, Kind: KindOutOfBounds}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(StageGrow, KindAllocationFailed).
		Path("memory", "0").
		Value(uint64(65536)).
		Cause(cause).
		Detail("grow by %d pages", 65536).
		Build()

	if err.Stage != StageGrow {
		t.Errorf("Stage = %v, want %v", err.Stage, StageGrow)
	}
	if err.Kind != KindAllocationFailed {
		t.Errorf("Kind = %v, want %v", err.Kind, KindAllocationFailed)
	}
	if len(err.Path) != 2 || err.Path[0] != "memory" || err.Path[1] != "0" {
		t.Errorf("Path = %v, want [memory 0]", err.Path)
	}
	if err.Value != uint64(65536) {
		t.Errorf("Value = %v, want 65536", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "grow by 65536 pages" {
		t.Errorf("Detail = %v, want 'grow by 65536 pages'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(StageLoad, []string{"memory", "0"}, uint64(0x10000))
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if err.Value != uint64(0x10000) {
			t.Errorf("Value = %v, want 0x10000", err.Value)
		}
	})

	t.Run("AllocationFailed", func(t *testing.T) {
		err := AllocationFailed(StageGrow, []string{"memory", "0"}, 1024)
		if err.Kind != KindAllocationFailed {
			t.Errorf("Kind = %v, want %v", err.Kind, KindAllocationFailed)
		}
		if !strings.Contains(err.Detail, "1024") {
			t.Errorf("Detail = %v, should contain requested count", err.Detail)
		}
	})

	t.Run("LimitsMismatch", func(t *testing.T) {
		cause := errors.New("limits (1, 2) do not match expected (4, 4)")
		err := LimitsMismatch([]string{"table", "1"}, cause)
		if err.Kind != KindLimitsMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindLimitsMismatch)
		}
		if err.Stage != StageInstantiate {
			t.Errorf("Stage = %v, want %v", err.Stage, StageInstantiate)
		}
		if !errors.Is(errors.Unwrap(err), cause) {
			t.Error("cause chain broken")
		}
	})

	t.Run("SignatureMismatch", func(t *testing.T) {
		err := SignatureMismatch("func(int32) int32", "func(int64) int64")
		if err.Kind != KindSignatureMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindSignatureMismatch)
		}
		if !strings.Contains(err.Detail, "func(int32) int32") {
			t.Errorf("Detail = %v, should contain expected signature", err.Detail)
		}
	})

	t.Run("NullReference", func(t *testing.T) {
		err := NullReference("func() int32")
		if err.Kind != KindNullReference {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNullReference)
		}
	})

	t.Run("DivisionByZero", func(t *testing.T) {
		err := DivisionByZero()
		if err.Kind != KindDivisionByZero {
			t.Errorf("Kind = %v, want %v", err.Kind, KindDivisionByZero)
		}
	})

	t.Run("Overflow", func(t *testing.T) {
		err := Overflow(StageConvert, int64(1)<<40, "int32")
		if err.Kind != KindOverflow {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOverflow)
		}
		if err.Value != int64(1)<<40 {
			t.Errorf("Value = %v, want 1<<40", err.Value)
		}
	})

	t.Run("Conversion", func(t *testing.T) {
		err := Conversion("NaN", "int32")
		if err.Kind != KindConversion {
			t.Errorf("Kind = %v, want %v", err.Kind, KindConversion)
		}
		if err.Stage != StageConvert {
			t.Errorf("Stage = %v, want %v", err.Stage, StageConvert)
		}
	})

	t.Run("Unreachable", func(t *testing.T) {
		err := Unreachable()
		if err.Kind != KindUnreachable {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnreachable)
		}
	})

	t.Run("StackExhausted", func(t *testing.T) {
		err := StackExhausted(1000)
		if err.Kind != KindStackExhausted {
			t.Errorf("Kind = %v, want %v", err.Kind, KindStackExhausted)
		}
		if !strings.Contains(err.Detail, "1000") {
			t.Errorf("Detail = %v, should contain the limit", err.Detail)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("address 0x20 is out of bounds")
		err := Wrap(StageStore, KindOutOfBounds, cause, "i64 store")
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if !errors.Is(errors.Unwrap(err), cause) {
			t.Error("Wrap lost the cause")
		}
	})
}
