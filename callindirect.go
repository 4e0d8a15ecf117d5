package rt

import (
	"github.com/wasm2go/rt/bounds"
	"github.com/wasm2go/rt/funcref"
	"github.com/wasm2go/rt/symbol"
	"github.com/wasm2go/rt/table"
	"github.com/wasm2go/rt/trap"
)

// CallIndirect0 implements call_indirect for a target taking no arguments:
// the reference is fetched from the table with a checked access, then gated
// and invoked. Both the table fetch and the call trap through tr, so an out
// of bounds index, a null entry, and a signature mismatch each surface with
// their own cause. The result type is given explicitly, as with
// funcref.Call0.
func CallIndirect0[R any, I bounds.Address](tbl table.Table[I, funcref.FuncRef], tblIdx uint32, idx I, tr trap.Factory, frame *symbol.Frame) (R, error) {
	f, err := table.GetChecked(tbl, tblIdx, idx, tr, frame)
	if err != nil {
		var zero R
		return zero, err
	}
	return funcref.Call0[R](f, tr, frame)
}

// CallIndirect1 implements call_indirect for one argument targets.
func CallIndirect1[R, A0 any, I bounds.Address](tbl table.Table[I, funcref.FuncRef], tblIdx uint32, idx I, a0 A0, tr trap.Factory, frame *symbol.Frame) (R, error) {
	f, err := table.GetChecked(tbl, tblIdx, idx, tr, frame)
	if err != nil {
		var zero R
		return zero, err
	}
	return funcref.Call1[R](f, a0, tr, frame)
}

// CallIndirect2 implements call_indirect for two argument targets.
func CallIndirect2[R, A0, A1 any, I bounds.Address](tbl table.Table[I, funcref.FuncRef], tblIdx uint32, idx I, a0 A0, a1 A1, tr trap.Factory, frame *symbol.Frame) (R, error) {
	f, err := table.GetChecked(tbl, tblIdx, idx, tr, frame)
	if err != nil {
		var zero R
		return zero, err
	}
	return funcref.Call2[R](f, a0, a1, tr, frame)
}

// CallIndirect3 implements call_indirect for three argument targets.
func CallIndirect3[R, A0, A1, A2 any, I bounds.Address](tbl table.Table[I, funcref.FuncRef], tblIdx uint32, idx I, a0 A0, a1 A1, a2 A2, tr trap.Factory, frame *symbol.Frame) (R, error) {
	f, err := table.GetChecked(tbl, tblIdx, idx, tr, frame)
	if err != nil {
		var zero R
		return zero, err
	}
	return funcref.Call3[R](f, a0, a1, a2, tr, frame)
}

// CallIndirect4 implements call_indirect for four argument targets.
func CallIndirect4[R, A0, A1, A2, A3 any, I bounds.Address](tbl table.Table[I, funcref.FuncRef], tblIdx uint32, idx I, a0 A0, a1 A1, a2 A2, a3 A3, tr trap.Factory, frame *symbol.Frame) (R, error) {
	f, err := table.GetChecked(tbl, tblIdx, idx, tr, frame)
	if err != nil {
		var zero R
		return zero, err
	}
	return funcref.Call4[R](f, a0, a1, a2, a3, tr, frame)
}

// CallIndirect5 implements call_indirect for five argument targets.
func CallIndirect5[R, A0, A1, A2, A3, A4 any, I bounds.Address](tbl table.Table[I, funcref.FuncRef], tblIdx uint32, idx I, a0 A0, a1 A1, a2 A2, a3 A3, a4 A4, tr trap.Factory, frame *symbol.Frame) (R, error) {
	f, err := table.GetChecked(tbl, tblIdx, idx, tr, frame)
	if err != nil {
		var zero R
		return zero, err
	}
	return funcref.Call5[R](f, a0, a1, a2, a3, a4, tr, frame)
}

// CallIndirect6 implements call_indirect for six argument targets.
func CallIndirect6[R, A0, A1, A2, A3, A4, A5 any, I bounds.Address](tbl table.Table[I, funcref.FuncRef], tblIdx uint32, idx I, a0 A0, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, tr trap.Factory, frame *symbol.Frame) (R, error) {
	f, err := table.GetChecked(tbl, tblIdx, idx, tr, frame)
	if err != nil {
		var zero R
		return zero, err
	}
	return funcref.Call6[R](f, a0, a1, a2, a3, a4, a5, tr, frame)
}

// CallIndirect7 implements call_indirect for seven argument targets.
func CallIndirect7[R, A0, A1, A2, A3, A4, A5, A6 any, I bounds.Address](tbl table.Table[I, funcref.FuncRef], tblIdx uint32, idx I, a0 A0, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, tr trap.Factory, frame *symbol.Frame) (R, error) {
	f, err := table.GetChecked(tbl, tblIdx, idx, tr, frame)
	if err != nil {
		var zero R
		return zero, err
	}
	return funcref.Call7[R](f, a0, a1, a2, a3, a4, a5, a6, tr, frame)
}

// CallIndirect8 implements call_indirect for eight argument targets.
func CallIndirect8[R, A0, A1, A2, A3, A4, A5, A6, A7 any, I bounds.Address](tbl table.Table[I, funcref.FuncRef], tblIdx uint32, idx I, a0 A0, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, tr trap.Factory, frame *symbol.Frame) (R, error) {
	f, err := table.GetChecked(tbl, tblIdx, idx, tr, frame)
	if err != nil {
		var zero R
		return zero, err
	}
	return funcref.Call8[R](f, a0, a1, a2, a3, a4, a5, a6, a7, tr, frame)
}

// CallIndirect9 implements call_indirect for nine argument targets.
func CallIndirect9[R, A0, A1, A2, A3, A4, A5, A6, A7, A8 any, I bounds.Address](tbl table.Table[I, funcref.FuncRef], tblIdx uint32, idx I, a0 A0, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, a8 A8, tr trap.Factory, frame *symbol.Frame) (R, error) {
	f, err := table.GetChecked(tbl, tblIdx, idx, tr, frame)
	if err != nil {
		var zero R
		return zero, err
	}
	return funcref.Call9[R](f, a0, a1, a2, a3, a4, a5, a6, a7, a8, tr, frame)
}
