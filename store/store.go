package store

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wasm2go/rt/bounds"
	"github.com/wasm2go/rt/memory"
	"github.com/wasm2go/rt/symbol"
	"github.com/wasm2go/rt/table"
	"github.com/wasm2go/rt/trap"
)

// AllocateMemory allocates linear memories during module instantiation.
//
// minimum and maximum are in pages. The returned memory must start at
// minimum pages and refuse to grow past maximum. A failed allocation
// returns *memory.AllocationError.
type AllocateMemory[I bounds.Address] interface {
	AllocateMemory(minimum, maximum I) (memory.Memory[I], error)
}

// AllocateTable allocates tables during module instantiation.
//
// minimum and maximum are in elements. New slots hold the allocator's null
// element. A failed allocation returns *table.AllocationError.
type AllocateTable[I bounds.Address, E any] interface {
	AllocateTable(minimum, maximum I) (table.Table[I, E], error)
}

// HeapMemoryAllocator is the default AllocateMemory, producing
// *memory.Heap instances.
type HeapMemoryAllocator[I bounds.Address] struct{}

func (HeapMemoryAllocator[I]) AllocateMemory(minimum, maximum I) (memory.Memory[I], error) {
	return memory.WithLimits(minimum, maximum)
}

// HeapTableAllocator is the default AllocateTable, producing *table.Heap
// instances filled with Null. The zero value uses E's zero value as null,
// which is the right null for funcref.FuncRef tables.
type HeapTableAllocator[I bounds.Address, E any] struct {
	Null E
}

func (a HeapTableAllocator[I, E]) AllocateTable(minimum, maximum I) (table.Table[I, E], error) {
	return table.WithLimits(a.Null, minimum, maximum)
}

// MemoryAllocationError reports which linear memory could not be allocated.
// It wraps the allocator's failure.
type MemoryAllocationError struct {
	// Memory is the index of the memory within its module.
	Memory uint32
	// Err is the allocator's failure.
	Err error
}

func (e *MemoryAllocationError) Error() string {
	return fmt.Sprintf("memory #%d: %v", e.Memory, e.Err)
}

func (e *MemoryAllocationError) Unwrap() error { return e.Err }

// TableAllocationError reports which table could not be allocated. It wraps
// the allocator's failure.
type TableAllocationError struct {
	// Table is the index of the table within its module.
	Table uint32
	// Err is the allocator's failure.
	Err error
}

func (e *TableAllocationError) Error() string {
	return fmt.Sprintf("table #%d: %v", e.Table, e.Err)
}

func (e *TableAllocationError) Unwrap() error { return e.Err }

// NewMemory allocates linear memory memIdx with the declared limits,
// converting an allocation failure into a trap tagged with the memory index.
func NewMemory[I bounds.Address](alloc AllocateMemory[I], memIdx uint32, minimum, maximum I, tr trap.Factory, frame *symbol.Frame) (memory.Memory[I], error) {
	mem, err := alloc.AllocateMemory(minimum, maximum)
	if err != nil {
		Logger().Debug("memory allocation failed",
			zap.Uint32("memory", memIdx),
			zap.Uint64("minimum", uint64(minimum)),
			zap.Uint64("maximum", uint64(maximum)),
			zap.Error(err))
		return nil, tr.Trap(&MemoryAllocationError{Memory: memIdx, Err: err}, frame)
	}
	Logger().Debug("allocated linear memory",
		zap.Uint32("memory", memIdx),
		zap.Uint64("minimum", uint64(minimum)),
		zap.Uint64("maximum", uint64(maximum)))
	return mem, nil
}

// NewTable allocates table tblIdx with the declared limits, converting an
// allocation failure into a trap tagged with the table index.
func NewTable[I bounds.Address, E any](alloc AllocateTable[I, E], tblIdx uint32, minimum, maximum I, tr trap.Factory, frame *symbol.Frame) (table.Table[I, E], error) {
	tbl, err := alloc.AllocateTable(minimum, maximum)
	if err != nil {
		Logger().Debug("table allocation failed",
			zap.Uint32("table", tblIdx),
			zap.Uint64("minimum", uint64(minimum)),
			zap.Uint64("maximum", uint64(maximum)),
			zap.Error(err))
		return nil, tr.Trap(&TableAllocationError{Table: tblIdx, Err: err}, frame)
	}
	Logger().Debug("allocated table",
		zap.Uint32("table", tblIdx),
		zap.Uint64("minimum", uint64(minimum)),
		zap.Uint64("maximum", uint64(maximum)))
	return tbl, nil
}

// CheckMemoryLimits validates an imported or externally provided memory
// against the limits its module declares.
func CheckMemoryLimits[I bounds.Address](mem memory.Memory[I], memIdx uint32, minimum, maximum I, tr trap.Factory, frame *symbol.Frame) error {
	return memory.CheckLimits(mem, memIdx, minimum, maximum, tr, frame)
}

// CheckTableLimits validates an imported or externally provided table
// against the limits its module declares.
func CheckTableLimits[I bounds.Address, E any](tbl table.Table[I, E], tblIdx uint32, minimum, maximum I, tr trap.Factory, frame *symbol.Frame) error {
	return table.CheckLimits(tbl, tblIdx, minimum, maximum, tr, frame)
}
