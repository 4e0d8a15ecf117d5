// Package memory implements WebAssembly linear memory.
//
// The Memory interface is generic over the address type, so the same
// implementations serve 32-bit and 64-bit memories. Three implementations
// are provided:
//
//   - Heap: a growable byte buffer, the common case
//   - Empty: a zero-page memory for modules that declare none
//   - Shared: a reference-counted view over a Heap for memories passed
//     between module instances
//
// Bulk and typed accessors check bounds up front and never perform partial
// reads or writes. Typed access is little-endian regardless of host order.
//
// The helper functions (I32Load, Copy, Fill, ...) are the entry points
// called by translated code. They compute effective addresses, convert
// bounds failures into traps through a trap.Factory, and implement the
// exact semantics of the corresponding WebAssembly instructions:
//
//	v, err := memory.I32Load(mem, 0, addr, 16, tr, frame)
//	err := memory.Copy(dst, src, 0, 1, dstAddr, srcAddr, n, tr, frame)
package memory
