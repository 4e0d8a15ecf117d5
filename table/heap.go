package table

import (
	"math"
	"math/bits"

	"github.com/wasm2go/rt/bounds"
)

// Heap is a Table backed by a heap-allocated element slice.
type Heap[I bounds.Address, E any] struct {
	elems []E
	max   I
	null  E
}

// NewHeap allocates a table of minimum elements with no declared maximum;
// per the table ABI the maximum defaults to the address type's full range.
func NewHeap[I bounds.Address, E any](null E, minimum I) (*Heap[I, E], error) {
	return WithLimits(null, minimum, ^I(0))
}

// WithLimits allocates a table of minimum elements, each holding null, that
// may grow up to maximum elements.
func WithLimits[I bounds.Address, E any](null E, minimum, maximum I) (*Heap[I, E], error) {
	t := &Heap[I, E]{max: maximum, null: null}
	if err := t.tryGrow(minimum); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Heap[I, E]) tryGrow(delta I) error {
	if delta == 0 {
		return nil
	}
	newSize, carry := bits.Add64(uint64(t.Size()), uint64(delta), 0)
	if carry != 0 || newSize > uint64(t.max) || newSize > math.MaxInt {
		return &AllocationError{Size: uint64(delta)}
	}
	grown := make([]E, newSize)
	copy(grown, t.elems)
	for i := len(t.elems); i < len(grown); i++ {
		grown[i] = t.null
	}
	t.elems = grown
	return nil
}

// Size returns the current number of elements.
func (t *Heap[I, E]) Size() I {
	return I(uint64(len(t.elems)))
}

// Max returns the maximum number of elements.
func (t *Heap[I, E]) Max() I {
	return t.max
}

// Grow extends the table by delta slots holding the designated null element
// and returns the previous size, or bounds.GrowFailed[I]() leaving the
// table unchanged.
func (t *Heap[I, E]) Grow(delta I) I {
	prior := t.Size()
	if err := t.tryGrow(delta); err != nil {
		return bounds.GrowFailed[I]()
	}
	return prior
}

// Null returns the designated null element.
func (t *Heap[I, E]) Null() E {
	return t.null
}

func (t *Heap[I, E]) check(idx I, length uint64) error {
	return bounds.Check(uint64(idx), length, uint64(len(t.elems)))
}

// Get returns the element at idx.
func (t *Heap[I, E]) Get(idx I) (E, error) {
	if err := t.check(idx, 1); err != nil {
		return t.null, err
	}
	return t.elems[idx], nil
}

// Set stores elem at idx.
func (t *Heap[I, E]) Set(idx I, elem E) error {
	if err := t.check(idx, 1); err != nil {
		return err
	}
	t.elems[idx] = elem
	return nil
}

// Replace stores elem at idx and returns the previous element.
func (t *Heap[I, E]) Replace(idx I, elem E) (E, error) {
	if err := t.check(idx, 1); err != nil {
		return t.null, err
	}
	prev := t.elems[idx]
	t.elems[idx] = elem
	return prev, nil
}

// CopyTo reads len(dst) elements starting at idx into dst.
func (t *Heap[I, E]) CopyTo(idx I, dst []E) error {
	if err := t.check(idx, uint64(len(dst))); err != nil {
		return err
	}
	copy(dst, t.elems[idx:])
	return nil
}

// CopyFrom stores len(src) elements from src starting at idx.
func (t *Heap[I, E]) CopyFrom(idx I, src []E) error {
	if err := t.check(idx, uint64(len(src))); err != nil {
		return err
	}
	copy(t.elems[idx:], src)
	return nil
}

// CopyWithin copies length elements from srcIdx to dstIdx, handling
// overlapping ranges like memmove.
func (t *Heap[I, E]) CopyWithin(dstIdx, srcIdx, length I) error {
	if err := t.check(srcIdx, uint64(length)); err != nil {
		return err
	}
	if err := t.check(dstIdx, uint64(length)); err != nil {
		return err
	}
	d := uint64(dstIdx)
	copy(t.elems[d:d+uint64(length)], t.elems[srcIdx:])
	return nil
}

// FillWith sets length slots starting at idx to elem.
func (t *Heap[I, E]) FillWith(idx, length I, elem E) error {
	if err := t.check(idx, uint64(length)); err != nil {
		return err
	}
	i := uint64(idx)
	s := t.elems[i : i+uint64(length)]
	for j := range s {
		s[j] = elem
	}
	return nil
}
