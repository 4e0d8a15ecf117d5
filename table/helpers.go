package table

import (
	"github.com/wasm2go/rt/bounds"
	"github.com/wasm2go/rt/limits"
	"github.com/wasm2go/rt/symbol"
	"github.com/wasm2go/rt/trap"
)

// Entry points for translated code. Each converts a failed access into a
// trap through tr, tagged with the index of the accessed table and an
// optional frame.

// copyChunkLen bounds the scratch buffer used when copying between two
// tables that only expose the bulk contract.
const copyChunkLen = 256

// GetChecked implements the table.get instruction.
func GetChecked[I bounds.Address, E any](tbl Table[I, E], tblIdx uint32, idx I, tr trap.Factory, frame *symbol.Frame) (E, error) {
	elem, err := tbl.Get(idx)
	if err != nil {
		return elem, tr.Trap(accessErr(tblIdx, uint64(idx), err), frame)
	}
	return elem, nil
}

// SetChecked implements the table.set instruction.
func SetChecked[I bounds.Address, E any](tbl Table[I, E], tblIdx uint32, idx I, elem E, tr trap.Factory, frame *symbol.Frame) error {
	if err := tbl.Set(idx, elem); err != nil {
		return tr.Trap(accessErr(tblIdx, uint64(idx), err), frame)
	}
	return nil
}

// ReplaceChecked stores elem at idx and returns the previous element,
// trapping when idx is out of bounds.
func ReplaceChecked[I bounds.Address, E any](tbl Table[I, E], tblIdx uint32, idx I, elem E, tr trap.Factory, frame *symbol.Frame) (E, error) {
	prev, err := tbl.Replace(idx, elem)
	if err != nil {
		return prev, tr.Trap(accessErr(tblIdx, uint64(idx), err), frame)
	}
	return prev, nil
}

// Grow implements the table.grow instruction. It returns the previous size
// in elements, or bounds.GrowFailed[I](); it never traps.
func Grow[I bounds.Address, E any](tbl Table[I, E], delta I) I {
	return tbl.Grow(delta)
}

// CheckLimits implements the matching of a table against the limits its
// module expects, performed during instantiation.
func CheckLimits[I bounds.Address, E any](tbl Table[I, E], tblIdx uint32, minimum, maximum I, tr trap.Factory, frame *symbol.Frame) error {
	err := limits.Check(tbl.Size(), tbl.Max(), minimum, maximum)
	if err == nil {
		return nil
	}
	return tr.Trap(&LimitsMismatchError{Table: tblIdx, Err: err.(*limits.Error)}, frame)
}

// Init implements the table.init instruction and active element segment
// initialization: it stores length elements of segment, starting at
// segOffset, into the table at tblOffset.
func Init[I bounds.Address, E any](tbl Table[I, E], tblIdx uint32, segment []E, tblOffset, segOffset, length I, tr trap.Factory, frame *symbol.Frame) error {
	err := bounds.Check(uint64(segOffset), uint64(length), uint64(len(segment)))
	if err == nil {
		s := uint64(segOffset)
		err = tbl.CopyFrom(tblOffset, segment[s:s+uint64(length)])
	}
	if err != nil {
		return tr.Trap(accessErr(tblIdx, uint64(tblOffset), err), frame)
	}
	return nil
}

// CopyWithin implements the table.copy instruction when the source and
// destination are the same table.
func CopyWithin[I bounds.Address, E any](tbl Table[I, E], tblIdx uint32, dstIdx, srcIdx, length I, tr trap.Factory, frame *symbol.Frame) error {
	if err := tbl.CopyWithin(dstIdx, srcIdx, length); err != nil {
		return tr.Trap(accessErr(tblIdx, uint64(srcIdx), err), frame)
	}
	return nil
}

// Copy implements the table.copy instruction between two tables. Both
// ranges are validated before any element moves, so a failed copy changes
// neither table. srcIdx and dstIdx tag the trap with the table whose range
// failed.
func Copy[I bounds.Address, E any](dst, src Table[I, E], dstIdx, srcIdx uint32, dstOff, srcOff, length I, tr trap.Factory, frame *symbol.Frame) error {
	if dst == src {
		return CopyWithin(dst, dstIdx, dstOff, srcOff, length, tr, frame)
	}
	if err := bounds.Check(uint64(srcOff), uint64(length), uint64(src.Size())); err != nil {
		return tr.Trap(accessErr(srcIdx, uint64(srcOff), err), frame)
	}
	if err := bounds.Check(uint64(dstOff), uint64(length), uint64(dst.Size())); err != nil {
		return tr.Trap(accessErr(dstIdx, uint64(dstOff), err), frame)
	}
	var buf [copyChunkLen]E
	d, s, remaining := uint64(dstOff), uint64(srcOff), uint64(length)
	for remaining > 0 {
		n := remaining
		if n > copyChunkLen {
			n = copyChunkLen
		}
		chunk := buf[:n]
		if err := src.CopyTo(I(s), chunk); err != nil {
			return tr.Trap(accessErr(srcIdx, s, err), frame)
		}
		if err := dst.CopyFrom(I(d), chunk); err != nil {
			return tr.Trap(accessErr(dstIdx, d, err), frame)
		}
		d += n
		s += n
		remaining -= n
	}
	return nil
}

// Fill implements the table.fill instruction.
func Fill[I bounds.Address, E any](tbl Table[I, E], tblIdx uint32, idx, length I, elem E, tr trap.Factory, frame *symbol.Frame) error {
	if err := tbl.FillWith(idx, length, elem); err != nil {
		return tr.Trap(accessErr(tblIdx, uint64(idx), err), frame)
	}
	return nil
}
