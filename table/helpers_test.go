package table

import (
	"errors"
	"testing"

	"github.com/wasm2go/rt/bounds"
	"github.com/wasm2go/rt/limits"
	"github.com/wasm2go/rt/symbol"
)

// trapRecorder passes causes through unchanged so tests can inspect them.
type trapRecorder struct {
	causes []error
	frames []*symbol.Frame
}

func (r *trapRecorder) Trap(cause error, frame *symbol.Frame) error {
	r.causes = append(r.causes, cause)
	r.frames = append(r.frames, frame)
	return cause
}

func TestGetSetReplaceChecked(t *testing.T) {
	tbl := newTestTable(t, 2, 2)
	var tr trapRecorder

	if err := SetChecked(Table[uint32, int](tbl), 3, 0, 11, &tr, nil); err != nil {
		t.Fatalf("SetChecked: %v", err)
	}
	if got, err := GetChecked(Table[uint32, int](tbl), 3, 0, &tr, nil); err != nil || got != 11 {
		t.Errorf("GetChecked = %d, %v; want 11, nil", got, err)
	}
	prev, err := ReplaceChecked(Table[uint32, int](tbl), 3, 0, 12, &tr, nil)
	if err != nil || prev != 11 {
		t.Errorf("ReplaceChecked = %d, %v; want 11, nil", prev, err)
	}

	t.Run("out of bounds traps", func(t *testing.T) {
		var tr trapRecorder
		frame := &symbol.Frame{Offset: 8}
		_, err := GetChecked(Table[uint32, int](tbl), 3, 2, &tr, frame)
		if err == nil {
			t.Fatal("GetChecked(2) = nil; want trap")
		}
		var aerr *AccessError
		if !errors.As(err, &aerr) {
			t.Fatalf("error = %v; want *AccessError", err)
		}
		if aerr.Table != 3 {
			t.Errorf("AccessError.Table = %d; want 3", aerr.Table)
		}
		if aerr.Index != 2 {
			t.Errorf("AccessError.Index = %d; want 2", aerr.Index)
		}
		var berr *bounds.Error
		if !errors.As(err, &berr) {
			t.Error("AccessError does not wrap *bounds.Error")
		}
		if len(tr.frames) != 1 || tr.frames[0] != frame {
			t.Error("frame was not handed to the trap factory")
		}
	})
}

func TestInitHelper(t *testing.T) {
	segment := []int{100, 200, 300, 400}

	t.Run("stores the segment window", func(t *testing.T) {
		tbl := newTestTable(t, 4, 4)
		var tr trapRecorder
		if err := Init(Table[uint32, int](tbl), 0, segment, 1, 2, 2, &tr, nil); err != nil {
			t.Fatalf("Init: %v", err)
		}
		if v, _ := tbl.Get(1); v != 300 {
			t.Errorf("Get(1) = %d; want 300", v)
		}
		if v, _ := tbl.Get(2); v != 400 {
			t.Errorf("Get(2) = %d; want 400", v)
		}
		if v, _ := tbl.Get(0); v != nullElem {
			t.Errorf("Get(0) = %d; want untouched null", v)
		}
	})

	t.Run("segment window out of bounds", func(t *testing.T) {
		tbl := newTestTable(t, 4, 4)
		var tr trapRecorder
		err := Init(Table[uint32, int](tbl), 0, segment, 0, 3, 2, &tr, nil)
		var aerr *AccessError
		if !errors.As(err, &aerr) {
			t.Fatalf("error = %v; want *AccessError", err)
		}
	})

	t.Run("table range out of bounds leaves it unchanged", func(t *testing.T) {
		tbl := newTestTable(t, 2, 2)
		var tr trapRecorder
		if err := Init(Table[uint32, int](tbl), 0, segment, 1, 0, 3, &tr, nil); err == nil {
			t.Fatal("Init past the end = nil; want trap")
		}
		if v, _ := tbl.Get(1); v != nullElem {
			t.Errorf("Get(1) after failed Init = %d; want null", v)
		}
	})
}

func TestCopyBetweenTables(t *testing.T) {
	t.Run("moves elements across", func(t *testing.T) {
		src := newTestTable(t, 4, 4)
		dst := newTestTable(t, 4, 4)
		var tr trapRecorder
		if err := src.CopyFrom(0, []int{1, 2, 3}); err != nil {
			t.Fatalf("CopyFrom: %v", err)
		}
		if err := Copy[uint32, int](dst, src, 1, 0, 1, 0, 3, &tr, nil); err != nil {
			t.Fatalf("Copy: %v", err)
		}
		want := []int{nullElem, 1, 2, 3}
		for i, w := range want {
			if v, _ := dst.Get(uint32(i)); v != w {
				t.Errorf("dst.Get(%d) = %d; want %d", i, v, w)
			}
		}
	})

	t.Run("copies larger than the chunk buffer", func(t *testing.T) {
		const n = copyChunkLen*2 + 13
		src := newTestTable(t, n, n)
		dst := newTestTable(t, n, n)
		var tr trapRecorder
		for i := uint32(0); i < n; i++ {
			if err := src.Set(i, int(i)+1); err != nil {
				t.Fatalf("Set: %v", err)
			}
		}
		if err := Copy[uint32, int](dst, src, 1, 0, 0, 0, n, &tr, nil); err != nil {
			t.Fatalf("Copy: %v", err)
		}
		for i := uint32(0); i < n; i++ {
			if v, _ := dst.Get(i); v != int(i)+1 {
				t.Fatalf("dst.Get(%d) = %d; want %d", i, v, int(i)+1)
			}
		}
	})

	t.Run("same table falls back to CopyWithin", func(t *testing.T) {
		tbl := newTestTable(t, 4, 4)
		var tr trapRecorder
		if err := tbl.CopyFrom(0, []int{1, 2, 3}); err != nil {
			t.Fatalf("CopyFrom: %v", err)
		}
		if err := Copy[uint32, int](tbl, tbl, 0, 0, 1, 0, 3, &tr, nil); err != nil {
			t.Fatalf("Copy: %v", err)
		}
		want := []int{1, 1, 2, 3}
		for i, w := range want {
			if v, _ := tbl.Get(uint32(i)); v != w {
				t.Errorf("Get(%d) = %d; want %d", i, v, w)
			}
		}
	})

	t.Run("source range checked before any write", func(t *testing.T) {
		src := newTestTable(t, 2, 2)
		dst := newTestTable(t, 4, 4)
		var tr trapRecorder
		err := Copy[uint32, int](dst, src, 1, 0, 0, 1, 2, &tr, nil)
		if err == nil {
			t.Fatal("Copy with out of bounds source = nil; want trap")
		}
		var aerr *AccessError
		if !errors.As(err, &aerr) {
			t.Fatalf("error = %v; want *AccessError", err)
		}
		if aerr.Table != 0 {
			t.Errorf("AccessError.Table = %d; want source index 0", aerr.Table)
		}
		for i := uint32(0); i < 4; i++ {
			if v, _ := dst.Get(i); v != nullElem {
				t.Errorf("dst.Get(%d) = %d; want untouched null", i, v)
			}
		}
	})
}

func TestFillHelper(t *testing.T) {
	tbl := newTestTable(t, 5, 5)
	var tr trapRecorder

	if err := Fill(Table[uint32, int](tbl), 0, 1, 3, 42, &tr, nil); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	want := []int{nullElem, 42, 42, 42, nullElem}
	for i, w := range want {
		if v, _ := tbl.Get(uint32(i)); v != w {
			t.Errorf("Get(%d) = %d; want %d", i, v, w)
		}
	}

	err := Fill(Table[uint32, int](tbl), 6, 4, 2, 0, &tr, nil)
	var aerr *AccessError
	if !errors.As(err, &aerr) {
		t.Fatalf("error = %v; want *AccessError", err)
	}
	if aerr.Table != 6 {
		t.Errorf("AccessError.Table = %d; want 6", aerr.Table)
	}
}

func TestGrowHelper(t *testing.T) {
	tbl := newTestTable(t, 1, 2)
	if got := Grow(Table[uint32, int](tbl), 1); got != 1 {
		t.Errorf("Grow(1) = %d; want 1", got)
	}
	if got := Grow(Table[uint32, int](tbl), 1); got != bounds.GrowFailed32 {
		t.Errorf("Grow(1) at max = %#x; want %#x", got, bounds.GrowFailed32)
	}
}

func TestCheckLimitsHelper(t *testing.T) {
	tbl := newTestTable(t, 1, 2)

	t.Run("matching limits", func(t *testing.T) {
		var tr trapRecorder
		if err := CheckLimits(Table[uint32, int](tbl), 0, 1, 2, &tr, nil); err != nil {
			t.Errorf("CheckLimits(1, 2) = %v; want nil", err)
		}
	})

	t.Run("mismatch traps with the violated rule", func(t *testing.T) {
		var tr trapRecorder
		err := CheckLimits(Table[uint32, int](tbl), 4, 2, 2, &tr, nil)
		var merr *LimitsMismatchError
		if !errors.As(err, &merr) {
			t.Fatalf("error = %v; want *LimitsMismatchError", err)
		}
		if merr.Table != 4 {
			t.Errorf("LimitsMismatchError.Table = %d; want 4", merr.Table)
		}
		if merr.Err.Reason != limits.MinimumTooSmall {
			t.Errorf("reason = %v; want MinimumTooSmall", merr.Err.Reason)
		}
	})
}
