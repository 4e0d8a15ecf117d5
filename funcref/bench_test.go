package funcref

import (
	"testing"

	"github.com/wasm2go/rt/trap"
)

func BenchmarkCall2(b *testing.B) {
	f := From2(func(x, y int32) (int32, error) {
		return x + y, nil
	})
	tr := trap.OccurredFactory{}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Call2[int32](f, 10, 20, tr, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCloneDrop(b *testing.B) {
	f := From0(func() (int32, error) {
		return 42, nil
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := f.Clone()
		g.Drop()
	}
}
