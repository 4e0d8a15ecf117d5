package interop

import (
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wasm2go/rt/bounds"
	"github.com/wasm2go/rt/memory"
)

// WrapMemory adapts a wazero-owned linear memory to the 32-bit Memory
// contract. Returns nil when mem is nil.
func WrapMemory(mem api.Memory) memory.Memory[uint32] {
	if mem == nil {
		return nil
	}
	return &Wrapper{Mem: mem}
}

// Wrapper adapts api.Memory to memory.Memory[uint32].
//
// wazero does not expose its backing buffer, so Bytes returns nil; use the
// bulk copy methods instead. Out-of-bounds accesses map wazero's ok=false
// results onto *bounds.Error, and a refused grow onto the sentinel, so the
// adapter behaves like the native implementations under the helper layer.
type Wrapper struct {
	Mem api.Memory
}

// Size returns the current size in pages. wazero reports bytes.
func (m *Wrapper) Size() uint32 {
	return m.Mem.Size() / bounds.PageSize
}

// Max returns the maximum size in pages, from the memory's definition. A
// memory declared without a maximum may grow to the page count cap.
func (m *Wrapper) Max() uint32 {
	if def := m.Mem.Definition(); def != nil {
		if max, ok := def.Max(); ok {
			return max
		}
	}
	return bounds.MaxPages[uint32]()
}

// Grow extends the memory by delta pages and returns the previous size in
// pages, or bounds.GrowFailed32 when wazero refuses the grow.
func (m *Wrapper) Grow(delta uint32) uint32 {
	prev, ok := m.Mem.Grow(delta)
	if !ok {
		Logger().Debug("wazero memory refused to grow",
			zap.Uint32("delta", delta),
			zap.Uint32("pages", m.Size()))
		return bounds.GrowFailed32
	}
	return prev
}

// view obtains a writable window of length bytes at addr. wazero's Read
// returns a live view of the memory, so writes through it land in the
// instance.
func (m *Wrapper) view(addr uint32, length uint64) ([]byte, error) {
	if length > uint64(bounds.GrowFailed32) {
		return nil, &bounds.Error{Address: uint64(addr)}
	}
	view, ok := m.Mem.Read(addr, uint32(length))
	if !ok {
		return nil, &bounds.Error{Address: uint64(addr)}
	}
	return view, nil
}

// CopyTo reads len(dst) bytes starting at addr into dst.
func (m *Wrapper) CopyTo(addr uint32, dst []byte) error {
	view, err := m.view(addr, uint64(len(dst)))
	if err != nil {
		return err
	}
	copy(dst, view)
	return nil
}

// CopyFrom writes len(src) bytes from src starting at addr.
func (m *Wrapper) CopyFrom(addr uint32, src []byte) error {
	if !m.Mem.Write(addr, src) {
		return &bounds.Error{Address: uint64(addr)}
	}
	return nil
}

// CopyWithin copies length bytes from srcAddr to dstAddr within the memory.
func (m *Wrapper) CopyWithin(dstAddr, srcAddr, length uint32) error {
	src, err := m.view(srcAddr, uint64(length))
	if err != nil {
		return err
	}
	dst, err := m.view(dstAddr, uint64(length))
	if err != nil {
		return err
	}
	copy(dst, src)
	return nil
}

// Fill sets length bytes starting at addr to value.
func (m *Wrapper) Fill(addr, length uint32, value byte) error {
	view, err := m.view(addr, uint64(length))
	if err != nil {
		return err
	}
	for i := range view {
		view[i] = value
	}
	return nil
}

// Bytes returns nil: wazero does not expose its buffer.
func (m *Wrapper) Bytes() []byte {
	return nil
}
