package table

import "github.com/wasm2go/rt/bounds"

// Empty is a Table with zero slots that cannot grow.
type Empty[I bounds.Address, E any] struct {
	null E
}

// NewEmpty returns an empty table whose designated null element is null.
func NewEmpty[I bounds.Address, E any](null E) Empty[I, E] {
	return Empty[I, E]{null: null}
}

// Size returns 0.
func (Empty[I, E]) Size() I { return 0 }

// Max returns 0.
func (Empty[I, E]) Max() I { return 0 }

// Grow returns 0 for a zero delta and bounds.GrowFailed[I]() otherwise.
func (Empty[I, E]) Grow(delta I) I {
	if delta == 0 {
		return 0
	}
	return bounds.GrowFailed[I]()
}

// Null returns the designated null element.
func (t Empty[I, E]) Null() E { return t.null }

// Get fails for every index.
func (t Empty[I, E]) Get(idx I) (E, error) {
	return t.null, bounds.Check(uint64(idx), 1, 0)
}

// Set fails for every index.
func (Empty[I, E]) Set(idx I, elem E) error {
	return bounds.Check(uint64(idx), 1, 0)
}

// Replace fails for every index.
func (t Empty[I, E]) Replace(idx I, elem E) (E, error) {
	return t.null, bounds.Check(uint64(idx), 1, 0)
}

// CopyTo fails unless the read is zero-length at index 0.
func (Empty[I, E]) CopyTo(idx I, dst []E) error {
	return bounds.Check(uint64(idx), uint64(len(dst)), 0)
}

// CopyFrom fails unless the write is zero-length at index 0.
func (Empty[I, E]) CopyFrom(idx I, src []E) error {
	return bounds.Check(uint64(idx), uint64(len(src)), 0)
}

// CopyWithin fails unless the copy is zero-length at index 0.
func (Empty[I, E]) CopyWithin(dstIdx, srcIdx, length I) error {
	if err := bounds.Check(uint64(srcIdx), uint64(length), 0); err != nil {
		return err
	}
	return bounds.Check(uint64(dstIdx), uint64(length), 0)
}

// FillWith fails unless the fill is zero-length at index 0.
func (Empty[I, E]) FillWith(idx, length I, elem E) error {
	return bounds.Check(uint64(idx), uint64(length), 0)
}
