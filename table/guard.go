package table

import "github.com/wasm2go/rt/bounds"

// With applies fn to the element at idx under the scoped-access guard: the
// element is taken out of the slot, the table's designated null is left in
// its place, and the taken element is written back when fn returns, whether
// it returns normally, with an error, or by panicking.
//
// While the guard is active the slot holds null, so code reentering the
// table (through the element itself, typically an indirect call) observes a
// consistent value rather than a half-moved one. A write made to the slot
// during that window is overwritten by the restore. fn may mutate the
// element through the pointer; the restore writes the mutated value.
func With[I bounds.Address, E, R any](tbl Table[I, E], idx I, fn func(*E) (R, error)) (R, error) {
	taken, err := tbl.Replace(idx, tbl.Null())
	if err != nil {
		var zero R
		return zero, err
	}
	defer func() {
		_ = tbl.Set(idx, taken)
	}()
	return fn(&taken)
}
