package memory

import (
	"testing"

	"github.com/wasm2go/rt/trap"
)

func BenchmarkTypedAccess(b *testing.B) {
	m, err := NewHeap[uint32](1)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := WriteU32(m, 0x100, 0xcafebabe); err != nil {
			b.Fatal(err)
		}
		if _, err := ReadU32(m, 0x100); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLoadStoreHelpers(b *testing.B) {
	m, err := NewHeap[uint32](1)
	if err != nil {
		b.Fatal(err)
	}
	tr := trap.OccurredFactory{}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := I32Store(m, 0, 0x40, 8, int32(i), tr, nil); err != nil {
			b.Fatal(err)
		}
		if _, err := I32Load(m, 0, 0x40, 8, tr, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBulkCopy(b *testing.B) {
	m, err := NewHeap[uint32](1)
	if err != nil {
		b.Fatal(err)
	}
	data := []byte("benchmark data for memory access test")
	buf := make([]byte, len(data))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := m.CopyFrom(0, data); err != nil {
			b.Fatal(err)
		}
		if err := m.CopyTo(0, buf); err != nil {
			b.Fatal(err)
		}
	}
}
