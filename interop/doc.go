// Package interop bridges objects owned by a wazero runtime into this
// module's contracts, so generated code can operate on memories that live
// inside an embedded WebAssembly runtime.
//
//	mem := interop.WrapMemory(instance.Memory())
//	v, err := memory.I32Load(mem, 0, addr, 0, tr, frame)
//
// The adapter delegates every access to the wazero object; it holds no
// state of its own.
package interop
