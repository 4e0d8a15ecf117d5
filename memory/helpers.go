package memory

import (
	"encoding/binary"
	"math"
	"math/bits"

	"github.com/wasm2go/rt/bounds"
	"github.com/wasm2go/rt/limits"
	"github.com/wasm2go/rt/symbol"
	"github.com/wasm2go/rt/trap"
)

// Entry points for translated code. Each load and store composes the
// effective address from the dynamic address operand and the instruction's
// static offset, and converts a failed access into a trap through tr,
// tagged with the index of the accessed memory and an optional frame.

// copyBufferSize bounds the scratch buffer used when copying between two
// memories that only expose the bulk contract.
const copyBufferSize = 2048

// effective computes addr+offset, failing when the sum leaves the address
// space of I.
func effective[I bounds.Address](addr, offset I) (I, error) {
	sum, carry := bits.Add64(uint64(addr), uint64(offset), 0)
	if carry != 0 || sum > uint64(^I(0)) {
		return 0, &bounds.Error{Address: sum}
	}
	return I(sum), nil
}

func loadBytes[I bounds.Address](mem Memory[I], memIdx uint32, addr, offset I, dst []byte, tr trap.Factory, frame *symbol.Frame) error {
	ea, err := effective(addr, offset)
	if err == nil {
		err = mem.CopyTo(ea, dst)
	}
	if err != nil {
		return tr.Trap(accessErr(memIdx, uint64(addr)+uint64(offset), err), frame)
	}
	return nil
}

func storeBytes[I bounds.Address](mem Memory[I], memIdx uint32, addr, offset I, src []byte, tr trap.Factory, frame *symbol.Frame) error {
	ea, err := effective(addr, offset)
	if err == nil {
		err = mem.CopyFrom(ea, src)
	}
	if err != nil {
		return tr.Trap(accessErr(memIdx, uint64(addr)+uint64(offset), err), frame)
	}
	return nil
}

// Grow implements the memory.grow instruction. It returns the previous size
// in pages, or bounds.GrowFailed[I](); it never traps.
func Grow[I bounds.Address](mem Memory[I], delta I) I {
	return mem.Grow(delta)
}

// CheckLimits implements the matching of a linear memory against the limits
// its module expects, performed during instantiation.
func CheckLimits[I bounds.Address](mem Memory[I], memIdx uint32, minimum, maximum I, tr trap.Factory, frame *symbol.Frame) error {
	err := limits.Check(mem.Size(), mem.Max(), minimum, maximum)
	if err == nil {
		return nil
	}
	return tr.Trap(&LimitsMismatchError{Memory: memIdx, Err: err.(*limits.Error)}, frame)
}

// segment slices length bytes of data starting at offset, with the same
// widened bounds discipline memories use. The error address is the offset
// into the segment.
func segment(data []byte, offset, length uint64) ([]byte, error) {
	if err := bounds.Check(offset, length, uint64(len(data))); err != nil {
		return nil, err
	}
	return data[offset : offset+length], nil
}

// Init implements the memory.init instruction and active data segment
// initialization: it copies length bytes of the data segment, starting at
// segOffset, into the memory at memOffset.
func Init[I bounds.Address](mem Memory[I], memIdx uint32, data []byte, memOffset, segOffset, length I, tr trap.Factory, frame *symbol.Frame) error {
	src, err := segment(data, uint64(segOffset), uint64(length))
	if err == nil {
		err = mem.CopyFrom(memOffset, src)
	}
	if err != nil {
		return tr.Trap(accessErr(memIdx, uint64(memOffset), err), frame)
	}
	return nil
}

// CopyWithin implements the memory.copy instruction when the source and
// destination are the same memory.
func CopyWithin[I bounds.Address](mem Memory[I], memIdx uint32, dstAddr, srcAddr, length I, tr trap.Factory, frame *symbol.Frame) error {
	if err := mem.CopyWithin(dstAddr, srcAddr, length); err != nil {
		return tr.Trap(accessErr(memIdx, uint64(srcAddr), err), frame)
	}
	return nil
}

// Copy implements the memory.copy instruction between two memories. Both
// ranges are validated before any byte moves, so a failed copy changes
// neither memory. srcIdx and dstIdx tag the trap with the memory whose
// range failed.
func Copy[I bounds.Address](dst, src Memory[I], dstIdx, srcIdx uint32, dstAddr, srcAddr, length I, tr trap.Factory, frame *symbol.Frame) error {
	if dst == src {
		return CopyWithin(dst, dstIdx, dstAddr, srcAddr, length, tr, frame)
	}
	if err := bounds.Check(uint64(srcAddr), uint64(length), ByteSize(src)); err != nil {
		return tr.Trap(accessErr(srcIdx, uint64(srcAddr), err), frame)
	}
	if err := bounds.Check(uint64(dstAddr), uint64(length), ByteSize(dst)); err != nil {
		return tr.Trap(accessErr(dstIdx, uint64(dstAddr), err), frame)
	}
	var buf [copyBufferSize]byte
	d, s, remaining := uint64(dstAddr), uint64(srcAddr), uint64(length)
	for remaining > 0 {
		n := remaining
		if n > copyBufferSize {
			n = copyBufferSize
		}
		chunk := buf[:n]
		if err := src.CopyTo(I(s), chunk); err != nil {
			return tr.Trap(accessErr(srcIdx, s, err), frame)
		}
		if err := dst.CopyFrom(I(d), chunk); err != nil {
			return tr.Trap(accessErr(dstIdx, d, err), frame)
		}
		d += n
		s += n
		remaining -= n
	}
	return nil
}

// FillRange implements the memory.fill instruction.
func FillRange[I bounds.Address](mem Memory[I], memIdx uint32, addr, length I, value byte, tr trap.Factory, frame *symbol.Frame) error {
	if err := mem.Fill(addr, length, value); err != nil {
		return tr.Trap(accessErr(memIdx, uint64(addr), err), frame)
	}
	return nil
}

// I32Load8S implements the i32.load8_s instruction.
func I32Load8S[I bounds.Address](mem Memory[I], memIdx uint32, addr, offset I, tr trap.Factory, frame *symbol.Frame) (int32, error) {
	var b [1]byte
	if err := loadBytes(mem, memIdx, addr, offset, b[:], tr, frame); err != nil {
		return 0, err
	}
	return int32(int8(b[0])), nil
}

// I32Load8U implements the i32.load8_u instruction.
func I32Load8U[I bounds.Address](mem Memory[I], memIdx uint32, addr, offset I, tr trap.Factory, frame *symbol.Frame) (int32, error) {
	var b [1]byte
	if err := loadBytes(mem, memIdx, addr, offset, b[:], tr, frame); err != nil {
		return 0, err
	}
	return int32(b[0]), nil
}

// I32Load16S implements the i32.load16_s instruction.
func I32Load16S[I bounds.Address](mem Memory[I], memIdx uint32, addr, offset I, tr trap.Factory, frame *symbol.Frame) (int32, error) {
	var b [2]byte
	if err := loadBytes(mem, memIdx, addr, offset, b[:], tr, frame); err != nil {
		return 0, err
	}
	return int32(int16(binary.LittleEndian.Uint16(b[:]))), nil
}

// I32Load16U implements the i32.load16_u instruction.
func I32Load16U[I bounds.Address](mem Memory[I], memIdx uint32, addr, offset I, tr trap.Factory, frame *symbol.Frame) (int32, error) {
	var b [2]byte
	if err := loadBytes(mem, memIdx, addr, offset, b[:], tr, frame); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint16(b[:])), nil
}

// I32Load implements the i32.load instruction.
func I32Load[I bounds.Address](mem Memory[I], memIdx uint32, addr, offset I, tr trap.Factory, frame *symbol.Frame) (int32, error) {
	var b [4]byte
	if err := loadBytes(mem, memIdx, addr, offset, b[:], tr, frame); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b[:])), nil
}

// I64Load8S implements the i64.load8_s instruction.
func I64Load8S[I bounds.Address](mem Memory[I], memIdx uint32, addr, offset I, tr trap.Factory, frame *symbol.Frame) (int64, error) {
	var b [1]byte
	if err := loadBytes(mem, memIdx, addr, offset, b[:], tr, frame); err != nil {
		return 0, err
	}
	return int64(int8(b[0])), nil
}

// I64Load8U implements the i64.load8_u instruction.
func I64Load8U[I bounds.Address](mem Memory[I], memIdx uint32, addr, offset I, tr trap.Factory, frame *symbol.Frame) (int64, error) {
	var b [1]byte
	if err := loadBytes(mem, memIdx, addr, offset, b[:], tr, frame); err != nil {
		return 0, err
	}
	return int64(b[0]), nil
}

// I64Load16S implements the i64.load16_s instruction.
func I64Load16S[I bounds.Address](mem Memory[I], memIdx uint32, addr, offset I, tr trap.Factory, frame *symbol.Frame) (int64, error) {
	var b [2]byte
	if err := loadBytes(mem, memIdx, addr, offset, b[:], tr, frame); err != nil {
		return 0, err
	}
	return int64(int16(binary.LittleEndian.Uint16(b[:]))), nil
}

// I64Load16U implements the i64.load16_u instruction.
func I64Load16U[I bounds.Address](mem Memory[I], memIdx uint32, addr, offset I, tr trap.Factory, frame *symbol.Frame) (int64, error) {
	var b [2]byte
	if err := loadBytes(mem, memIdx, addr, offset, b[:], tr, frame); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint16(b[:])), nil
}

// I64Load32S implements the i64.load32_s instruction.
func I64Load32S[I bounds.Address](mem Memory[I], memIdx uint32, addr, offset I, tr trap.Factory, frame *symbol.Frame) (int64, error) {
	var b [4]byte
	if err := loadBytes(mem, memIdx, addr, offset, b[:], tr, frame); err != nil {
		return 0, err
	}
	return int64(int32(binary.LittleEndian.Uint32(b[:]))), nil
}

// I64Load32U implements the i64.load32_u instruction.
func I64Load32U[I bounds.Address](mem Memory[I], memIdx uint32, addr, offset I, tr trap.Factory, frame *symbol.Frame) (int64, error) {
	var b [4]byte
	if err := loadBytes(mem, memIdx, addr, offset, b[:], tr, frame); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint32(b[:])), nil
}

// I64Load implements the i64.load instruction.
func I64Load[I bounds.Address](mem Memory[I], memIdx uint32, addr, offset I, tr trap.Factory, frame *symbol.Frame) (int64, error) {
	var b [8]byte
	if err := loadBytes(mem, memIdx, addr, offset, b[:], tr, frame); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// F32Load implements the f32.load instruction.
func F32Load[I bounds.Address](mem Memory[I], memIdx uint32, addr, offset I, tr trap.Factory, frame *symbol.Frame) (float32, error) {
	var b [4]byte
	if err := loadBytes(mem, memIdx, addr, offset, b[:], tr, frame); err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b[:])), nil
}

// F64Load implements the f64.load instruction.
func F64Load[I bounds.Address](mem Memory[I], memIdx uint32, addr, offset I, tr trap.Factory, frame *symbol.Frame) (float64, error) {
	var b [8]byte
	if err := loadBytes(mem, memIdx, addr, offset, b[:], tr, frame); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b[:])), nil
}

// I32Store8 implements the i32.store8 instruction, storing the low 8 bits
// of v.
func I32Store8[I bounds.Address](mem Memory[I], memIdx uint32, addr, offset I, v int32, tr trap.Factory, frame *symbol.Frame) error {
	b := [1]byte{byte(v)}
	return storeBytes(mem, memIdx, addr, offset, b[:], tr, frame)
}

// I32Store16 implements the i32.store16 instruction, storing the low 16
// bits of v.
func I32Store16[I bounds.Address](mem Memory[I], memIdx uint32, addr, offset I, v int32, tr trap.Factory, frame *symbol.Frame) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], uint16(v))
	return storeBytes(mem, memIdx, addr, offset, b[:], tr, frame)
}

// I32Store implements the i32.store instruction.
func I32Store[I bounds.Address](mem Memory[I], memIdx uint32, addr, offset I, v int32, tr trap.Factory, frame *symbol.Frame) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	return storeBytes(mem, memIdx, addr, offset, b[:], tr, frame)
}

// I64Store8 implements the i64.store8 instruction.
func I64Store8[I bounds.Address](mem Memory[I], memIdx uint32, addr, offset I, v int64, tr trap.Factory, frame *symbol.Frame) error {
	b := [1]byte{byte(v)}
	return storeBytes(mem, memIdx, addr, offset, b[:], tr, frame)
}

// I64Store16 implements the i64.store16 instruction.
func I64Store16[I bounds.Address](mem Memory[I], memIdx uint32, addr, offset I, v int64, tr trap.Factory, frame *symbol.Frame) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], uint16(v))
	return storeBytes(mem, memIdx, addr, offset, b[:], tr, frame)
}

// I64Store32 implements the i64.store32 instruction.
func I64Store32[I bounds.Address](mem Memory[I], memIdx uint32, addr, offset I, v int64, tr trap.Factory, frame *symbol.Frame) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	return storeBytes(mem, memIdx, addr, offset, b[:], tr, frame)
}

// I64Store implements the i64.store instruction.
func I64Store[I bounds.Address](mem Memory[I], memIdx uint32, addr, offset I, v int64, tr trap.Factory, frame *symbol.Frame) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	return storeBytes(mem, memIdx, addr, offset, b[:], tr, frame)
}

// F32Store implements the f32.store instruction.
func F32Store[I bounds.Address](mem Memory[I], memIdx uint32, addr, offset I, v float32, tr trap.Factory, frame *symbol.Frame) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
	return storeBytes(mem, memIdx, addr, offset, b[:], tr, frame)
}

// F64Store implements the f64.store instruction.
func F64Store[I bounds.Address](mem Memory[I], memIdx uint32, addr, offset I, v float64, tr trap.Factory, frame *symbol.Frame) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	return storeBytes(mem, memIdx, addr, offset, b[:], tr, frame)
}
