// Package store implements WebAssembly allocation: the instantiation-time
// creation of linear memories and tables with their declared limits.
//
// Generated module constructors receive allocators (or use the heap-backed
// defaults) and call NewMemory / NewTable for each defined object. Imported
// objects are validated instead, through CheckMemoryLimits / CheckTableLimits.
// All four are trapping contexts: failures convert through the trap.Factory
// at these call sites.
//
//	var alloc store.HeapMemoryAllocator[uint32]
//	mem, err := store.NewMemory(alloc, 0, 16, 16, tr, nil)
//	if err != nil {
//	    return err
//	}
//
// See https://webassembly.github.io/spec/core/exec/modules.html#allocation
package store
