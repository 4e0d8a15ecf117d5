package memory

import "github.com/wasm2go/rt/bounds"

// Empty is a Memory with zero pages that cannot grow. Modules that declare
// no memory of their own still need one to satisfy the generated imports.
type Empty[I bounds.Address] struct{}

// Size returns 0.
func (Empty[I]) Size() I { return 0 }

// Max returns 0.
func (Empty[I]) Max() I { return 0 }

// Grow returns 0 for a zero delta and bounds.GrowFailed[I]() otherwise.
func (Empty[I]) Grow(delta I) I {
	if delta == 0 {
		return 0
	}
	return bounds.GrowFailed[I]()
}

// CopyTo fails unless the access is zero-length at address 0.
func (Empty[I]) CopyTo(addr I, dst []byte) error {
	return bounds.Check(uint64(addr), uint64(len(dst)), 0)
}

// CopyFrom fails unless the access is zero-length at address 0.
func (Empty[I]) CopyFrom(addr I, src []byte) error {
	return bounds.Check(uint64(addr), uint64(len(src)), 0)
}

// CopyWithin fails unless the copy is zero-length at address 0.
func (Empty[I]) CopyWithin(dstAddr, srcAddr, length I) error {
	if err := bounds.Check(uint64(srcAddr), uint64(length), 0); err != nil {
		return err
	}
	return bounds.Check(uint64(dstAddr), uint64(length), 0)
}

// Fill fails unless the fill is zero-length at address 0.
func (Empty[I]) Fill(addr, length I, value byte) error {
	return bounds.Check(uint64(addr), uint64(length), 0)
}

// Bytes returns an empty slice.
func (Empty[I]) Bytes() []byte { return []byte{} }
