package math

import (
	"errors"
	stdmath "math"
	"testing"
)

func TestI32DivS(t *testing.T) {
	tests := []struct {
		name    string
		num     int32
		denom   int32
		want    int32
		wantErr error
	}{
		{name: "plain", num: 10, denom: 3, want: 3},
		{name: "negative", num: -10, denom: 3, want: -3},
		{name: "divide by zero", num: 1, denom: 0, wantErr: DivisionByZeroError{}},
		{name: "min by minus one overflows", num: stdmath.MinInt32, denom: -1, wantErr: IntegerOverflowError{}},
		{name: "min by one", num: stdmath.MinInt32, denom: 1, want: stdmath.MinInt32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := I32DivS(tt.num, tt.denom)
			if !errors.Is(err, tt.wantErr) && err != tt.wantErr {
				t.Fatalf("err = %v; want %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("I32DivS(%d, %d) = %d; want %d", tt.num, tt.denom, got, tt.want)
			}
		})
	}
}

func TestI32DivU(t *testing.T) {
	// -1 reinterpreted as unsigned is 0xffffffff.
	got, err := I32DivU(-1, 2)
	if err != nil {
		t.Fatalf("I32DivU(-1, 2) error: %v", err)
	}
	if want := int32(0x7fffffff); got != want {
		t.Errorf("I32DivU(-1, 2) = %#x; want %#x", uint32(got), uint32(want))
	}
	if _, err := I32DivU(1, 0); err == nil {
		t.Error("I32DivU(1, 0) did not fail")
	}
}

func TestI64Div(t *testing.T) {
	if _, err := I64DivS(stdmath.MinInt64, -1); err == nil {
		t.Error("I64DivS(min, -1) did not overflow")
	}
	got, err := I64DivU(-2, 2)
	if err != nil {
		t.Fatalf("I64DivU error: %v", err)
	}
	if want := int64(0x7fffffffffffffff); got != want {
		t.Errorf("I64DivU(-2, 2) = %#x; want %#x", uint64(got), uint64(want))
	}
}

func TestRem(t *testing.T) {
	got, err := I32RemS(stdmath.MinInt32, -1)
	if err != nil || got != 0 {
		t.Errorf("I32RemS(min, -1) = %d, %v; want 0, nil", got, err)
	}
	if _, err := I32RemS(1, 0); err == nil {
		t.Error("I32RemS(1, 0) did not fail")
	}
	got, err = I32RemU(-1, 10)
	if err != nil || got != int32(uint32(0xffffffff)%10) {
		t.Errorf("I32RemU(-1, 10) = %d, %v", got, err)
	}
	got64, err := I64RemS(stdmath.MinInt64, -1)
	if err != nil || got64 != 0 {
		t.Errorf("I64RemS(min, -1) = %d, %v; want 0, nil", got64, err)
	}
	if _, err := I64RemU(5, 0); err == nil {
		t.Error("I64RemU(5, 0) did not fail")
	}
}

func TestTruncSigned(t *testing.T) {
	got, err := I32TruncF64S(-3.9)
	if err != nil || got != -3 {
		t.Errorf("I32TruncF64S(-3.9) = %d, %v; want -3, nil", got, err)
	}

	// Truncation happens before the range check, so -2147483648.9 fits.
	got, err = I32TruncF64S(-2147483648.9)
	if err != nil || got != stdmath.MinInt32 {
		t.Errorf("I32TruncF64S(-2147483648.9) = %d, %v; want MinInt32, nil", got, err)
	}

	if _, err := I32TruncF64S(2147483648.0); !errors.Is(err, error(IntegerOverflowError{})) {
		t.Errorf("I32TruncF64S(2^31) err = %v; want overflow", err)
	}
	if _, err := I32TruncF32S(stdmath.MaxFloat32); err == nil {
		t.Error("I32TruncF32S(MaxFloat32) did not overflow")
	}
	if _, err := I32TruncF64S(stdmath.NaN()); !errors.Is(err, error(NanToIntegerError{})) {
		t.Errorf("NaN err = %v; want invalid conversion", err)
	}
	if _, err := I64TruncF64S(stdmath.Inf(1)); err == nil {
		t.Error("I64TruncF64S(+Inf) did not fail")
	}

	got64, err := I64TruncF64S(-9223372036854775808.0)
	if err != nil || got64 != stdmath.MinInt64 {
		t.Errorf("I64TruncF64S(-2^63) = %d, %v; want MinInt64, nil", got64, err)
	}
}

func TestTruncUnsigned(t *testing.T) {
	got, err := I32TruncF64U(4294967295.0)
	if err != nil || uint32(got) != 0xffffffff {
		t.Errorf("I32TruncF64U(2^32-1) = %#x, %v", uint32(got), err)
	}
	if _, err := I32TruncF64U(4294967296.0); err == nil {
		t.Error("I32TruncF64U(2^32) did not overflow")
	}
	if _, err := I32TruncF64U(-1.0); err == nil {
		t.Error("I32TruncF64U(-1.0) did not overflow")
	}
	// -0.9 truncates to 0.
	got, err = I32TruncF64U(-0.9)
	if err != nil || got != 0 {
		t.Errorf("I32TruncF64U(-0.9) = %d, %v; want 0, nil", got, err)
	}
	got64, err := I64TruncF64U(18446744073709549568.0)
	if err != nil {
		t.Fatalf("I64TruncF64U near 2^64 error: %v", err)
	}
	if uint64(got64) != 18446744073709549568 {
		t.Errorf("I64TruncF64U = %d", uint64(got64))
	}
	if _, err := I64TruncF64U(18446744073709551616.0); err == nil {
		t.Error("I64TruncF64U(2^64) did not overflow")
	}
}

func TestErrorMessages(t *testing.T) {
	if got := (DivisionByZeroError{}).Error(); got != "integer division by zero" {
		t.Errorf("DivisionByZeroError = %q", got)
	}
	if got := (IntegerOverflowError{}).Error(); got != "integer overflow" {
		t.Errorf("IntegerOverflowError = %q", got)
	}
	if got := (NanToIntegerError{}).Error(); got != "invalid conversion to integer" {
		t.Errorf("NanToIntegerError = %q", got)
	}
}
