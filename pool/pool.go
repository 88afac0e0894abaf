package pool

import "sync"

// Buffers hands out byte slices of a fixed size, recycling them between
// callers.
type Buffers struct {
	size int
	pool sync.Pool
}

func (b *Buffers) Get() (buf []byte) {
	return *b.pool.Get().(*[]byte)
}

func (b *Buffers) Put(buf []byte) {
	if cap(buf) < b.size {
		return
	}
	buf = buf[:b.size]
	b.pool.Put(&buf)
}

func NewBuffers(size int) (b *Buffers) {
	return &Buffers{
		size: size,
		pool: sync.Pool{
			New: func() any {
				buf := make([]byte, size)
				return &buf
			},
		},
	}
}
