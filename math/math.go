// Package math implements the trapping integer and conversion instructions:
// division, remainder, and float-to-integer truncation. Non-trapping float
// helpers (NaN propagation, min/max) are the generator's concern, not this
// package's.
//
// Error messages match the strings used by the WebAssembly test suite.
package math

import (
	stdmath "math"
)

// DivisionByZeroError is the cause for a zero divisor.
type DivisionByZeroError struct{}

func (DivisionByZeroError) Error() string { return "integer division by zero" }

// IntegerOverflowError is the cause for a division result or truncated float
// that does not fit the target type.
type IntegerOverflowError struct{}

func (IntegerOverflowError) Error() string { return "integer overflow" }

// NanToIntegerError is the cause for truncating a NaN to an integer.
type NanToIntegerError struct{}

func (NanToIntegerError) Error() string { return "invalid conversion to integer" }

// I32DivS implements i32.div_s, trapping on a zero divisor and on
// MinInt32 / -1.
//
// See https://webassembly.github.io/spec/core/syntax/instructions.html#syntax-instr-numeric
func I32DivS(num, denom int32) (int32, error) {
	if denom == 0 {
		return 0, DivisionByZeroError{}
	}
	if num == stdmath.MinInt32 && denom == -1 {
		return 0, IntegerOverflowError{}
	}
	return num / denom, nil
}

// I32DivU implements i32.div_u. The operands are interpreted as unsigned and
// the quotient is reinterpreted as an i32.
func I32DivU(num, denom int32) (int32, error) {
	if denom == 0 {
		return 0, DivisionByZeroError{}
	}
	return int32(uint32(num) / uint32(denom)), nil
}

// I64DivS implements i64.div_s, trapping on a zero divisor and on
// MinInt64 / -1.
func I64DivS(num, denom int64) (int64, error) {
	if denom == 0 {
		return 0, DivisionByZeroError{}
	}
	if num == stdmath.MinInt64 && denom == -1 {
		return 0, IntegerOverflowError{}
	}
	return num / denom, nil
}

// I64DivU implements i64.div_u.
func I64DivU(num, denom int64) (int64, error) {
	if denom == 0 {
		return 0, DivisionByZeroError{}
	}
	return int64(uint64(num) / uint64(denom)), nil
}

// I32RemS implements i32.rem_s, trapping only on a zero divisor.
// MinInt32 % -1 is 0, not a trap.
func I32RemS(num, denom int32) (int32, error) {
	if denom == 0 {
		return 0, DivisionByZeroError{}
	}
	return num % denom, nil
}

// I32RemU implements i32.rem_u.
func I32RemU(num, denom int32) (int32, error) {
	if denom == 0 {
		return 0, DivisionByZeroError{}
	}
	return int32(uint32(num) % uint32(denom)), nil
}

// I64RemS implements i64.rem_s, trapping only on a zero divisor.
func I64RemS(num, denom int64) (int64, error) {
	if denom == 0 {
		return 0, DivisionByZeroError{}
	}
	return num % denom, nil
}

// I64RemU implements i64.rem_u.
func I64RemU(num, denom int64) (int64, error) {
	if denom == 0 {
		return 0, DivisionByZeroError{}
	}
	return int64(uint64(num) % uint64(denom)), nil
}

// trunc truncates v toward zero and verifies the result lies in [lo, hi).
// The bounds are powers of two, exactly representable in a float64.
func trunc(v, lo, hi float64) (float64, error) {
	if stdmath.IsNaN(v) {
		return 0, NanToIntegerError{}
	}
	t := stdmath.Trunc(v)
	if t < lo || t >= hi {
		return 0, IntegerOverflowError{}
	}
	return t, nil
}

// I32TruncF32S implements i32.trunc_f32_s, trapping on NaN and on values
// whose truncation does not fit an i32.
func I32TruncF32S(v float32) (int32, error) {
	t, err := trunc(float64(v), -1<<31, 1<<31)
	if err != nil {
		return 0, err
	}
	return int32(t), nil
}

// I32TruncF64S implements i32.trunc_f64_s.
func I32TruncF64S(v float64) (int32, error) {
	t, err := trunc(v, -1<<31, 1<<31)
	if err != nil {
		return 0, err
	}
	return int32(t), nil
}

// I32TruncF32U implements i32.trunc_f32_u. The unsigned result is
// reinterpreted as an i32.
func I32TruncF32U(v float32) (int32, error) {
	t, err := trunc(float64(v), 0, 1<<32)
	if err != nil {
		return 0, err
	}
	return int32(uint32(t)), nil
}

// I32TruncF64U implements i32.trunc_f64_u.
func I32TruncF64U(v float64) (int32, error) {
	t, err := trunc(v, 0, 1<<32)
	if err != nil {
		return 0, err
	}
	return int32(uint32(t)), nil
}

// I64TruncF32S implements i64.trunc_f32_s.
func I64TruncF32S(v float32) (int64, error) {
	t, err := trunc(float64(v), -1<<63, 1<<63)
	if err != nil {
		return 0, err
	}
	return int64(t), nil
}

// I64TruncF64S implements i64.trunc_f64_s.
func I64TruncF64S(v float64) (int64, error) {
	t, err := trunc(v, -1<<63, 1<<63)
	if err != nil {
		return 0, err
	}
	return int64(t), nil
}

// I64TruncF32U implements i64.trunc_f32_u. The unsigned result is
// reinterpreted as an i64.
func I64TruncF32U(v float32) (int64, error) {
	t, err := trunc(float64(v), 0, 1<<64)
	if err != nil {
		return 0, err
	}
	return int64(uint64(t)), nil
}

// I64TruncF64U implements i64.trunc_f64_u.
func I64TruncF64U(v float64) (int64, error) {
	t, err := trunc(v, 0, 1<<64)
	if err != nil {
		return 0, err
	}
	return int64(uint64(t)), nil
}
