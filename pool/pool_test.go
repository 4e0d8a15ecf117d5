package pool

import "testing"

func TestBuffers(t *testing.T) {
	b := NewBuffers(64)

	buf := b.Get(16)
	if len(buf) != 16 {
		t.Fatalf("Get(16) returned length %d", len(buf))
	}
	for i := range buf {
		buf[i] = byte(i)
	}
	b.Put(buf)

	reused := b.Get(8)
	if len(reused) != 8 {
		t.Fatalf("Get(8) returned length %d", len(reused))
	}

	t.Run("grows past pooled capacity", func(t *testing.T) {
		big := b.Get(128)
		if len(big) != 128 {
			t.Fatalf("Get(128) returned length %d", len(big))
		}
	})

	t.Run("default bound", func(t *testing.T) {
		b := NewBuffers(0)
		if b.maxCap != defaultMaxCap {
			t.Errorf("maxCap = %d; want the default", b.maxCap)
		}
	})
}

func TestBuffersRetention(t *testing.T) {
	b := NewBuffers(32)

	// An oversized buffer must not come back out of the pool.
	big := make([]byte, 64)
	big[0] = 0xFF
	b.Put(big)
	got := b.Get(64)
	if len(got) != 64 {
		t.Fatalf("Get(64) returned length %d", len(got))
	}
	if got[0] != 0 {
		t.Error("oversized buffer was retained")
	}

	b.Put(nil)
	if buf := b.Get(4); len(buf) != 4 {
		t.Errorf("Get after Put(nil) returned length %d", len(buf))
	}
}
