// Package bounds provides the address types and bounds-check primitives
// shared by the linear memory and table implementations.
package bounds

import (
	"fmt"
	"math/bits"
)

// PageSize is the size in bytes of a WebAssembly linear memory page.
//
// See https://webassembly.github.io/spec/core/exec/runtime.html#page-size
const PageSize = 65536

// MaxPageCount32 is the page count cap for a 32-bit linear memory.
const MaxPageCount32 = 65536

// MaxPageCount64 is the page count cap for a 64-bit linear memory.
const MaxPageCount64 = 1 << 48

// Address is the set of unsigned integer types usable as a byte offset into
// a linear memory or an index into a table. It parameterizes Memory and
// Table so the same algorithms serve 32-bit and 64-bit address spaces.
type Address interface {
	~uint32 | ~uint64
}

// Concrete grow-failure sentinels for the two address widths, matching the
// -1 result of the memory.grow and table.grow instructions.
const (
	GrowFailed32 = ^uint32(0)
	GrowFailed64 = ^uint64(0)
)

// GrowFailed returns the sentinel reported by a failed grow, the all-ones
// value of the address type.
func GrowFailed[I Address]() I {
	return ^I(0)
}

// MaxPages returns the page count cap for the address type: MaxPageCount32
// for 32-bit addresses, MaxPageCount64 for 64-bit ones.
func MaxPages[I Address]() I {
	if ^I(0) == I(GrowFailed32) {
		return I(MaxPageCount32)
	}
	pages := uint64(MaxPageCount64)
	return I(pages)
}

// Error reports an address or index outside the bounds of a memory or table.
type Error struct {
	// Address is the first offending address or index, widened to 64 bits.
	Address uint64
}

func (e *Error) Error() string {
	return fmt.Sprintf("address %#x is out of bounds", e.Address)
}

// Effective32 computes base+offset in a 32-bit address space. carry reports
// whether the sum wrapped; a wrapped address is out of bounds for every
// memory.
func Effective32(base, offset uint32) (sum uint32, carry bool) {
	s, c := bits.Add32(base, offset, 0)
	return s, c != 0
}

// Effective64 computes base+offset in a 64-bit address space.
func Effective64(base, offset uint64) (sum uint64, carry bool) {
	s, c := bits.Add64(base, offset, 0)
	return s, c != 0
}

// InRange reports whether length units starting at addr lie inside
// [0, size). The end address is computed in widened arithmetic so the check
// itself cannot overflow.
func InRange[I Address](addr, length, size I) bool {
	end, carry := bits.Add64(uint64(addr), uint64(length), 0)
	return carry == 0 && end <= uint64(size)
}

// Check returns a bounds error unless length units starting at addr lie
// inside [0, size).
func Check[I Address](addr, length, size I) error {
	if InRange(addr, length, size) {
		return nil
	}
	return &Error{Address: uint64(addr)}
}
