package memory

import (
	"fmt"

	"github.com/wasm2go/rt/bounds"
	"github.com/wasm2go/rt/limits"
)

// Memory is a WebAssembly linear memory addressed by I.
//
// Size, Max and Grow are measured in pages of bounds.PageSize bytes. All
// other operations take byte addresses. Every access validates addr+len
// against the current byte size with overflow detection; a failed access
// returns *bounds.Error and leaves the memory untouched.
type Memory[I bounds.Address] interface {
	// Size returns the current size in pages.
	Size() I

	// Max returns the maximum size in pages the memory may grow to.
	Max() I

	// Grow extends the memory by delta pages, zero-filling the new ones,
	// and returns the previous size in pages. It returns
	// bounds.GrowFailed[I]() if growing would exceed Max or the page
	// count cap, or if allocation fails. A failed grow changes nothing.
	Grow(delta I) I

	// CopyTo reads len(dst) bytes starting at addr into dst.
	CopyTo(addr I, dst []byte) error

	// CopyFrom writes len(src) bytes from src starting at addr.
	CopyFrom(addr I, src []byte) error

	// CopyWithin copies length bytes from srcAddr to dstAddr within the
	// memory, handling overlap like memmove.
	CopyWithin(dstAddr, srcAddr, length I) error

	// Fill sets length bytes starting at addr to value.
	Fill(addr, length I, value byte) error

	// Bytes returns the memory's contents as a byte slice, or nil if the
	// implementation cannot expose one. The slice is invalidated by Grow.
	Bytes() []byte
}

// ByteSize returns the current size of mem in bytes.
func ByteSize[I bounds.Address](mem Memory[I]) uint64 {
	return uint64(mem.Size()) * bounds.PageSize
}

// AllocationError reports that the minimum number of pages required by a
// linear memory could not be allocated.
type AllocationError struct {
	// Size is the requested minimum, in pages.
	Size uint64
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("couldn't allocate %d pages", e.Size)
}

// AccessError reports an out-of-bounds read or write of a linear memory.
// It wraps the underlying *bounds.Error.
type AccessError struct {
	// Memory is the index of the accessed memory within its module.
	Memory uint32
	// Address is the first offending byte address, widened to 64 bits.
	Address uint64
	// Err is the underlying bounds failure.
	Err error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("invalid access of linear memory #%d at address %#X", e.Memory, e.Address)
}

func (e *AccessError) Unwrap() error { return e.Err }

// LimitsMismatchError reports that a linear memory's actual limits do not
// match the limits its module expects. It wraps the *limits.Error carrying
// the violated rule.
type LimitsMismatchError struct {
	// Memory is the index of the checked memory within its module.
	Memory uint32
	// Err describes which matching rule failed.
	Err *limits.Error
}

func (e *LimitsMismatchError) Error() string {
	return fmt.Sprintf("linear memory #%d: %v", e.Memory, e.Err)
}

func (e *LimitsMismatchError) Unwrap() error { return e.Err }

// accessErr wraps a bounds failure with the memory index and the offending
// address. The bounds error's own address wins; addr is the fallback for
// causes that do not carry one.
func accessErr(memIdx uint32, addr uint64, err error) error {
	if err == nil {
		return nil
	}
	out := &AccessError{Memory: memIdx, Address: addr, Err: err}
	if berr, ok := err.(*bounds.Error); ok {
		out.Address = berr.Address
	}
	return out
}
