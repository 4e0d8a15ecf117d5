package bounds

import (
	"errors"
	"testing"
)

func TestEffective32(t *testing.T) {
	tests := []struct {
		name   string
		base   uint32
		offset uint32
		sum    uint32
		carry  bool
	}{
		{name: "zero", base: 0, offset: 0, sum: 0},
		{name: "plain", base: 16, offset: 4, sum: 20},
		{name: "top of space", base: 0xfffffffc, offset: 3, sum: 0xffffffff},
		{name: "wraps by one", base: 0xffffffff, offset: 1, sum: 0, carry: true},
		{name: "wraps far", base: 0x80000000, offset: 0x80000000, sum: 0, carry: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, carry := Effective32(tt.base, tt.offset)
			if sum != tt.sum || carry != tt.carry {
				t.Errorf("Effective32(%#x, %#x) = %#x, %v; want %#x, %v",
					tt.base, tt.offset, sum, carry, tt.sum, tt.carry)
			}
		})
	}
}

func TestEffective64(t *testing.T) {
	sum, carry := Effective64(^uint64(0), 1)
	if sum != 0 || !carry {
		t.Errorf("Effective64(max, 1) = %#x, %v; want 0, true", sum, carry)
	}
	sum, carry = Effective64(1<<48, 42)
	if sum != 1<<48+42 || carry {
		t.Errorf("Effective64(2^48, 42) = %#x, %v; want %#x, false", sum, carry, uint64(1<<48+42))
	}
}

func TestInRange(t *testing.T) {
	tests := []struct {
		name   string
		addr   uint32
		length uint32
		size   uint32
		want   bool
	}{
		{name: "empty access at zero", addr: 0, length: 0, size: 0, want: true},
		{name: "empty access at size", addr: 8, length: 0, size: 8, want: true},
		{name: "empty access past size", addr: 9, length: 0, size: 8, want: false},
		{name: "full range", addr: 0, length: 8, size: 8, want: true},
		{name: "one past end", addr: 1, length: 8, size: 8, want: false},
		{name: "length overflows", addr: 0xffffffff, length: 0xffffffff, size: 0xffffffff, want: false},
		{name: "end wraps to small", addr: 0xfffffffe, length: 4, size: 16, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InRange(tt.addr, tt.length, tt.size); got != tt.want {
				t.Errorf("InRange(%#x, %#x, %#x) = %v; want %v",
					tt.addr, tt.length, tt.size, got, tt.want)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	if err := Check[uint32](0, 4, 8); err != nil {
		t.Fatalf("Check(0, 4, 8) = %v; want nil", err)
	}
	err := Check[uint32](6, 4, 8)
	if err == nil {
		t.Fatal("Check(6, 4, 8) = nil; want error")
	}
	var be *Error
	if !errors.As(err, &be) {
		t.Fatalf("Check error type = %T; want *bounds.Error", err)
	}
	if be.Address != 6 {
		t.Errorf("error address = %#x; want 0x6", be.Address)
	}
}

func TestGrowFailed(t *testing.T) {
	if got := GrowFailed[uint32](); got != GrowFailed32 {
		t.Errorf("GrowFailed[uint32]() = %#x; want %#x", got, GrowFailed32)
	}
	if got := GrowFailed[uint64](); got != GrowFailed64 {
		t.Errorf("GrowFailed[uint64]() = %#x; want %#x", got, GrowFailed64)
	}
}

func TestMaxPages(t *testing.T) {
	if got := MaxPages[uint32](); got != MaxPageCount32 {
		t.Errorf("MaxPages[uint32]() = %d; want %d", got, MaxPageCount32)
	}
	if got := MaxPages[uint64](); got != MaxPageCount64 {
		t.Errorf("MaxPages[uint64]() = %d; want %d", got, uint64(MaxPageCount64))
	}
}
