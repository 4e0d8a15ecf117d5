package memory

import (
	"encoding/binary"

	"github.com/wasm2go/rt/bounds"
)

// Typed accessors over the Memory contract. WebAssembly fixes linear memory
// to little-endian byte order, so these encode and decode explicitly
// instead of going through host order.

// ReadU8 reads the byte at addr.
func ReadU8[I bounds.Address](mem Memory[I], addr I) (uint8, error) {
	var b [1]byte
	if err := mem.CopyTo(addr, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU16 reads a little-endian 16-bit value at addr.
func ReadU16[I bounds.Address](mem Memory[I], addr I) (uint16, error) {
	var b [2]byte
	if err := mem.CopyTo(addr, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

// ReadU32 reads a little-endian 32-bit value at addr.
func ReadU32[I bounds.Address](mem Memory[I], addr I) (uint32, error) {
	var b [4]byte
	if err := mem.CopyTo(addr, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// ReadU64 reads a little-endian 64-bit value at addr.
func ReadU64[I bounds.Address](mem Memory[I], addr I) (uint64, error) {
	var b [8]byte
	if err := mem.CopyTo(addr, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// WriteU8 writes the byte v at addr.
func WriteU8[I bounds.Address](mem Memory[I], addr I, v uint8) error {
	b := [1]byte{v}
	return mem.CopyFrom(addr, b[:])
}

// WriteU16 writes v at addr in little-endian order.
func WriteU16[I bounds.Address](mem Memory[I], addr I, v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return mem.CopyFrom(addr, b[:])
}

// WriteU32 writes v at addr in little-endian order.
func WriteU32[I bounds.Address](mem Memory[I], addr I, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return mem.CopyFrom(addr, b[:])
}

// WriteU64 writes v at addr in little-endian order.
func WriteU64[I bounds.Address](mem Memory[I], addr I, v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return mem.CopyFrom(addr, b[:])
}
