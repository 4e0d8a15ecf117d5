package memory

import "github.com/wasm2go/rt/bounds"

// Shared is a reference-counted view over a Heap, for linear memories
// exported by one module instance and imported by others. All views access
// the same pages. The runtime is single-threaded, so the count is a plain
// integer shared by the views.
type Shared[I bounds.Address] struct {
	heap   *Heap[I]
	owners *int
}

// Share wraps heap in its first shared view.
func Share[I bounds.Address](heap *Heap[I]) *Shared[I] {
	n := 1
	return &Shared[I]{heap: heap, owners: &n}
}

// Clone returns a new view of the same memory.
func (s *Shared[I]) Clone() *Shared[I] {
	*s.owners++
	return &Shared[I]{heap: s.heap, owners: s.owners}
}

// Release drops this view. Using a released view panics.
func (s *Shared[I]) Release() {
	if s.heap == nil {
		return
	}
	*s.owners--
	s.heap = nil
	s.owners = nil
}

// Owners returns the number of live views.
func (s *Shared[I]) Owners() int {
	if s.owners == nil {
		return 0
	}
	return *s.owners
}

// Size returns the current size in pages.
func (s *Shared[I]) Size() I { return s.heap.Size() }

// Max returns the maximum size in pages.
func (s *Shared[I]) Max() I { return s.heap.Max() }

// Grow extends the memory seen by every view.
func (s *Shared[I]) Grow(delta I) I { return s.heap.Grow(delta) }

// CopyTo reads len(dst) bytes starting at addr into dst.
func (s *Shared[I]) CopyTo(addr I, dst []byte) error { return s.heap.CopyTo(addr, dst) }

// CopyFrom writes len(src) bytes from src starting at addr.
func (s *Shared[I]) CopyFrom(addr I, src []byte) error { return s.heap.CopyFrom(addr, src) }

// CopyWithin copies length bytes from srcAddr to dstAddr.
func (s *Shared[I]) CopyWithin(dstAddr, srcAddr, length I) error {
	return s.heap.CopyWithin(dstAddr, srcAddr, length)
}

// Fill sets length bytes starting at addr to value.
func (s *Shared[I]) Fill(addr, length I, value byte) error {
	return s.heap.Fill(addr, length, value)
}

// Bytes returns the backing slice when this is the only live view. Calling
// it while other views exist is a programming error and panics: the raw
// slice would bypass the views' accounting of who may alias the pages.
func (s *Shared[I]) Bytes() []byte {
	if *s.owners > 1 {
		panic("memory: Bytes called on a shared memory with multiple owners")
	}
	return s.heap.Bytes()
}
