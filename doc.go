// Package rt is the runtime support substrate for Go code produced by a
// WebAssembly-to-Go translator. Generated functions call into this module for
// everything the WebAssembly abstract machine provides: linear memory, tables,
// globals, function references, trapping arithmetic, and call stack
// accounting.
//
// # Architecture Overview
//
// The module is organized into small packages, one per runtime concern:
//
//	rt/              Root package with trap classification and indirect calls
//	├── bounds/      Address arithmetic and range validation
//	├── symbol/      Function identity and stack frame descriptions
//	├── trap/        Trap factory contract and unwinding combinators
//	├── limits/      Minimum/maximum declarations for memories and tables
//	├── math/        Trapping and bit-exact numeric operations
//	├── stack/       Call depth accounting
//	├── global/      Mutable global cells
//	├── memory/      Linear memory with typed little-endian access
//	├── table/       Element tables for references
//	├── funcref/     First-class typed function references
//	├── errors/      Structured error types for host-facing reporting
//	├── store/       Allocation and instantiation of memories and tables
//	├── interop/     Adapters bridging wazero objects into this module
//	├── pool/        Scratch buffer reuse for hot paths
//	└── cmd/memview  Terminal viewer for linear-memory images
//
// # Quick Start
//
// Generated code threads a trap.Factory and the current frame through every
// operation that can fail:
//
//	tr := rt.NewFactory()
//	mem, _ := memory.WithLimits[uint32](1, 16)
//
//	frame := &symbol.Frame{Symbol: sym, Offset: 0x2A}
//	v, err := memory.I32Load(mem, 0, addr, 0, tr, frame)
//	if err != nil {
//	    return err // a *rt.TrapError carrying the faulting frame
//	}
//
// Indirect calls fetch a reference from a table and gate it against the
// expected signature in one step:
//
//	sum, err := rt.CallIndirect2[int32](tbl, 0, idx, a, b, tr, frame)
//
// # Trap Model
//
// Failures inside the substrate are plain error values describing one cause:
// an out of bounds access, a failed allocation, a signature mismatch, a
// division by zero. Conversion into a trap happens exactly once, at the call
// site that owns the faulting frame, through a trap.Factory. The factory
// returned by NewFactory wraps the cause in a *TrapError, classifies it into
// a TrapCode, and records the frame; frames accumulated while unwinding put
// the faulting function first.
//
// TrapError.MatchesSpecFailure reports whether a trap corresponds to a named
// failure from the WebAssembly test suite, which is how conformance harnesses
// assert on expected traps.
//
// # Addressing
//
// Memories and tables are generic over their address type. 32-bit objects
// index with uint32, 64-bit memories with uint64, and all bounds checks go
// through the bounds package so overflow near the top of the address space is
// handled uniformly.
package rt
