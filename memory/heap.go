package memory

import (
	"math"
	"math/bits"

	"github.com/wasm2go/rt/bounds"
)

// Heap is a Memory backed by a heap-allocated byte slice.
type Heap[I bounds.Address] struct {
	// data always holds a whole number of pages.
	data []byte
	max  I
}

// NewHeap allocates a linear memory of minimum pages that may grow up to
// the page count cap of the address type.
func NewHeap[I bounds.Address](minimum I) (*Heap[I], error) {
	return WithLimits(minimum, bounds.MaxPages[I]())
}

// WithLimits allocates a linear memory of minimum pages that may grow up to
// maximum pages. It returns *AllocationError if maximum exceeds the page
// count cap or the minimum pages cannot be allocated.
func WithLimits[I bounds.Address](minimum, maximum I) (*Heap[I], error) {
	if maximum > bounds.MaxPages[I]() {
		return nil, &AllocationError{Size: uint64(maximum)}
	}
	m := &Heap[I]{max: maximum}
	if err := m.tryGrow(minimum); err != nil {
		return nil, err
	}
	return m, nil
}

// byteLength converts a page count to a slice length, reporting false when
// the result would not fit in int.
func byteLength(pages uint64) (int, bool) {
	if pages > math.MaxInt/bounds.PageSize {
		return 0, false
	}
	return int(pages) * bounds.PageSize, true
}

func (m *Heap[I]) tryGrow(delta I) error {
	if delta == 0 {
		return nil
	}
	newSize, carry := bits.Add64(uint64(m.Size()), uint64(delta), 0)
	if carry != 0 || newSize > uint64(m.max) {
		return &AllocationError{Size: uint64(delta)}
	}
	length, ok := byteLength(newSize)
	if !ok {
		return &AllocationError{Size: uint64(delta)}
	}
	grown := make([]byte, length)
	copy(grown, m.data)
	m.data = grown
	return nil
}

// Size returns the current size in pages.
func (m *Heap[I]) Size() I {
	return I(uint64(len(m.data)) / bounds.PageSize)
}

// Max returns the maximum size in pages.
func (m *Heap[I]) Max() I {
	return m.max
}

// Grow extends the memory by delta zero-filled pages and returns the
// previous size, or bounds.GrowFailed[I]() leaving the memory unchanged.
func (m *Heap[I]) Grow(delta I) I {
	prior := m.Size()
	if err := m.tryGrow(delta); err != nil {
		return bounds.GrowFailed[I]()
	}
	return prior
}

func (m *Heap[I]) check(addr I, length uint64) error {
	return bounds.Check(uint64(addr), length, uint64(len(m.data)))
}

// CopyTo reads len(dst) bytes starting at addr into dst.
func (m *Heap[I]) CopyTo(addr I, dst []byte) error {
	if err := m.check(addr, uint64(len(dst))); err != nil {
		return err
	}
	copy(dst, m.data[addr:])
	return nil
}

// CopyFrom writes len(src) bytes from src starting at addr.
func (m *Heap[I]) CopyFrom(addr I, src []byte) error {
	if err := m.check(addr, uint64(len(src))); err != nil {
		return err
	}
	copy(m.data[addr:], src)
	return nil
}

// CopyWithin copies length bytes from srcAddr to dstAddr, handling
// overlapping ranges like memmove.
func (m *Heap[I]) CopyWithin(dstAddr, srcAddr, length I) error {
	if err := m.check(srcAddr, uint64(length)); err != nil {
		return err
	}
	if err := m.check(dstAddr, uint64(length)); err != nil {
		return err
	}
	d := uint64(dstAddr)
	copy(m.data[d:d+uint64(length)], m.data[srcAddr:])
	return nil
}

// Fill sets length bytes starting at addr to value.
func (m *Heap[I]) Fill(addr, length I, value byte) error {
	if err := m.check(addr, uint64(length)); err != nil {
		return err
	}
	a := uint64(addr)
	s := m.data[a : a+uint64(length)]
	for i := range s {
		s[i] = value
	}
	return nil
}

// Bytes returns the backing slice. Grow invalidates it.
func (m *Heap[I]) Bytes() []byte {
	return m.data
}
