// Package limits validates WebAssembly limits, the (minimum, maximum) pairs
// declared by linear memories and tables.
//
// See https://webassembly.github.io/spec/core/syntax/types.html#limits
package limits

import (
	"fmt"

	"github.com/wasm2go/rt/bounds"
)

// Reason identifies which matching rule a pair of limits violated.
type Reason uint8

const (
	// Invalid means the minimum is greater than the maximum.
	Invalid Reason = iota
	// MinimumTooSmall means the minimum is less than expected.
	MinimumTooSmall
	// MaximumTooLarge means the maximum is greater than expected.
	MaximumTooLarge
)

func (r Reason) String() string {
	switch r {
	case Invalid:
		return "minimum is greater than maximum"
	case MinimumTooSmall:
		return "minimum is too small"
	case MaximumTooLarge:
		return "maximum is too large"
	default:
		return fmt.Sprintf("reason(%d)", uint8(r))
	}
}

// Error reports limits that do not match the expected pair. All values are
// widened to 64 bits for display.
type Error struct {
	Reason      Reason
	Minimum     uint64
	Maximum     uint64
	ExpectedMin uint64
	ExpectedMax uint64
}

func (e *Error) Error() string {
	return fmt.Sprintf("limits (%d, %d) do not match expected (%d, %d): %s",
		e.Minimum, e.Maximum, e.ExpectedMin, e.ExpectedMax, e.Reason)
}

// Check determines whether the limits (minimum, maximum) match the expected
// pair: the minimum must not exceed the maximum, the minimum must be at
// least expectedMin, and the maximum must not exceed expectedMax. The rules
// are checked in that order.
//
// See https://webassembly.github.io/spec/core/valid/types.html#match-limits
func Check[I bounds.Address](minimum, maximum, expectedMin, expectedMax I) error {
	var reason Reason
	switch {
	case minimum > maximum:
		reason = Invalid
	case minimum < expectedMin:
		reason = MinimumTooSmall
	case maximum > expectedMax:
		reason = MaximumTooLarge
	default:
		return nil
	}
	return &Error{
		Reason:      reason,
		Minimum:     uint64(minimum),
		Maximum:     uint64(maximum),
		ExpectedMin: uint64(expectedMin),
		ExpectedMax: uint64(expectedMax),
	}
}
