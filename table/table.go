package table

import (
	"fmt"

	"github.com/wasm2go/rt/bounds"
	"github.com/wasm2go/rt/limits"
)

// Table is a WebAssembly table indexed by I and holding elements of type E.
//
// Size, Max and Grow are measured in elements. Every access validates
// idx+len against the current size with overflow detection; a failed access
// returns *bounds.Error and leaves the table untouched.
type Table[I bounds.Address, E any] interface {
	// Size returns the current number of elements.
	Size() I

	// Max returns the maximum number of elements the table may grow to.
	Max() I

	// Grow extends the table by delta slots holding the designated null
	// element and returns the previous size. It returns
	// bounds.GrowFailed[I]() if growing would exceed Max or allocation
	// fails. A failed grow changes nothing.
	Grow(delta I) I

	// Null returns the table's designated null element.
	Null() E

	// Get returns the element at idx.
	Get(idx I) (E, error)

	// Set stores elem at idx.
	Set(idx I, elem E) error

	// Replace stores elem at idx and returns the previous element.
	Replace(idx I, elem E) (E, error)

	// CopyTo reads len(dst) elements starting at idx into dst.
	CopyTo(idx I, dst []E) error

	// CopyFrom stores len(src) elements from src starting at idx.
	CopyFrom(idx I, src []E) error

	// CopyWithin copies length elements from srcIdx to dstIdx within the
	// table, handling overlap like memmove.
	CopyWithin(dstIdx, srcIdx, length I) error

	// FillWith sets length slots starting at idx to elem.
	FillWith(idx, length I, elem E) error
}

// AllocationError reports that space for the requested number of table
// elements could not be allocated.
type AllocationError struct {
	// Size is the requested element count.
	Size uint64
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("couldn't allocate %d elements", e.Size)
}

// AccessError reports an out-of-bounds table access. It wraps the
// underlying *bounds.Error.
type AccessError struct {
	// Table is the index of the accessed table within its module.
	Table uint32
	// Index is the first offending element index, widened to 64 bits.
	Index uint64
	// Err is the underlying bounds failure.
	Err error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("index %d is out of bounds for table #%d", e.Index, e.Table)
}

func (e *AccessError) Unwrap() error { return e.Err }

// LimitsMismatchError reports that a table's actual limits do not match the
// limits its module expects. It wraps the *limits.Error carrying the
// violated rule.
type LimitsMismatchError struct {
	// Table is the index of the checked table within its module.
	Table uint32
	// Err describes which matching rule failed.
	Err *limits.Error
}

func (e *LimitsMismatchError) Error() string {
	return fmt.Sprintf("table #%d: %v", e.Table, e.Err)
}

func (e *LimitsMismatchError) Unwrap() error { return e.Err }

// accessErr wraps a bounds failure with the table index and the offending
// element index. The bounds error's own address wins; idx is the fallback
// for causes that do not carry one.
func accessErr(tblIdx uint32, idx uint64, err error) error {
	if err == nil {
		return nil
	}
	out := &AccessError{Table: tblIdx, Index: idx, Err: err}
	if berr, ok := err.(*bounds.Error); ok {
		out.Index = berr.Address
	}
	return out
}
