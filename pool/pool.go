// Package pool provides reusable byte buffers for the scratch copies host
// glue makes when moving data in and out of linear memory.
//
// A Buffers instance is constructed by the generated driver and passed to
// whatever needs scratch space; there is no package-level pool.
package pool

import "sync"

// defaultMaxCap is the largest buffer capacity retained when the Buffers
// was constructed with no explicit bound. One linear memory page.
const defaultMaxCap = 65536

// Buffers is a pool of byte buffers with bounded retention: buffers whose
// capacity exceeds the bound are not kept, so one oversized request cannot
// pin memory for the pool's lifetime.
type Buffers struct {
	pool   sync.Pool
	maxCap int
}

// NewBuffers returns a pool retaining buffers up to maxCap bytes of
// capacity. A maxCap of zero or less selects the default bound.
func NewBuffers(maxCap int) *Buffers {
	if maxCap <= 0 {
		maxCap = defaultMaxCap
	}
	return &Buffers{maxCap: maxCap}
}

// Get returns a buffer of length n. The contents are unspecified; callers
// overwrite before reading.
func (b *Buffers) Get(n int) []byte {
	if p, ok := b.pool.Get().(*[]byte); ok && cap(*p) >= n {
		return (*p)[:n]
	}
	return make([]byte, n)
}

// Put returns a buffer to the pool. Oversized and zero-capacity buffers
// are dropped. The caller must not use buf afterwards.
func (b *Buffers) Put(buf []byte) {
	if cap(buf) == 0 || cap(buf) > b.maxCap {
		return
	}
	buf = buf[:0]
	b.pool.Put(&buf)
}
