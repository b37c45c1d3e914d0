package braces

import "sync"

// Allocator supplies and reclaims the storage behind a [Buffer].
//
// Allocate returns a zero-length slice with capacity of at least the
// requested size. Deallocate hands a slice back once its owner is done
// with it; the caller must not touch the slice afterwards.
type Allocator interface {
	Allocate(capacity int) []byte
	Deallocate(buf []byte)
}

type heapAllocator struct{}

func (heapAllocator) Allocate(capacity int) []byte { return make([]byte, 0, capacity) }
func (heapAllocator) Deallocate([]byte)            {}

// DefaultAllocator returns the allocator used by [Format] and [Render].
// Storage comes from the Go heap and is reclaimed by the garbage collector.
func DefaultAllocator() Allocator { return heapAllocator{} }

// maxPooledCapacity caps the size of slices kept by a PoolAllocator so one
// huge format call does not pin memory forever.
const maxPooledCapacity = 64 << 10

// PoolAllocator recycles buffer storage through a [sync.Pool]. It is safe
// for concurrent use.
type PoolAllocator struct {
	pool sync.Pool
}

// NewPoolAllocator returns an empty PoolAllocator.
func NewPoolAllocator() *PoolAllocator {
	return &PoolAllocator{}
}

// Allocate returns a pooled slice when one is large enough, else a new one.
func (p *PoolAllocator) Allocate(capacity int) []byte {
	if v, ok := p.pool.Get().(*[]byte); ok {
		if cap(*v) >= capacity {
			return (*v)[:0]
		}
		p.pool.Put(v)
	}
	return make([]byte, 0, capacity)
}

// Deallocate returns buf to the pool.
func (p *PoolAllocator) Deallocate(buf []byte) {
	if buf == nil || cap(buf) > maxPooledCapacity {
		return
	}
	buf = buf[:0]
	p.pool.Put(&buf)
}

// Buffer is a growable, owned text buffer. The zero value is an empty
// buffer backed by the heap.
type Buffer struct {
	buf   []byte
	alloc Allocator
}

// NewBuffer returns an empty buffer with at least the given capacity,
// drawing its storage from alloc. A nil alloc means [DefaultAllocator].
func NewBuffer(capacity int, alloc Allocator) *Buffer {
	if alloc == nil {
		alloc = DefaultAllocator()
	}
	return &Buffer{buf: alloc.Allocate(capacity), alloc: alloc}
}

// Len returns the number of bytes written.
func (b *Buffer) Len() int { return len(b.buf) }

// Cap returns the capacity of the underlying storage.
func (b *Buffer) Cap() int { return cap(b.buf) }

// WriteByte appends c. It never fails.
func (b *Buffer) WriteByte(c byte) error {
	b.buf = append(b.buf, c)
	return nil
}

// WriteString appends s.
func (b *Buffer) WriteString(s string) (int, error) {
	b.buf = append(b.buf, s...)
	return len(s), nil
}

// Write appends p, making Buffer an [io.Writer].
func (b *Buffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// Append appends the contents of other.
func (b *Buffer) Append(other *Buffer) {
	b.buf = append(b.buf, other.buf...)
}

// Bytes returns the written bytes. The slice is only valid until the next
// write or Free.
func (b *Buffer) Bytes() []byte { return b.buf }

// String returns a copy of the written bytes.
func (b *Buffer) String() string { return string(b.buf) }

// Clone returns an independent copy drawn from the same allocator.
func (b *Buffer) Clone() *Buffer {
	c := NewBuffer(len(b.buf), b.alloc)
	c.buf = append(c.buf, b.buf...)
	return c
}

// Free releases the storage to the allocator. The buffer is empty
// afterwards and may be reused; writes will allocate fresh storage.
func (b *Buffer) Free() {
	if b.buf != nil && b.alloc != nil {
		b.alloc.Deallocate(b.buf)
	}
	b.buf = nil
}
