package braces_test

import (
	"io"
	"strings"
	"testing"

	"github.com/bjaus/braces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferWrites(t *testing.T) {
	t.Parallel()
	b := braces.NewBuffer(4, nil)
	assert.GreaterOrEqual(t, b.Cap(), 4)
	assert.Zero(t, b.Len())

	require.NoError(t, b.WriteByte('a'))
	n, err := b.WriteString("bc")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	n, err = b.Write([]byte("def"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.Equal(t, "abcdef", b.String())
	assert.Equal(t, []byte("abcdef"), b.Bytes())
	assert.Equal(t, 6, b.Len())
}

func TestBufferIsWriter(t *testing.T) {
	t.Parallel()
	var b braces.Buffer
	_, err := io.Copy(&b, strings.NewReader("copied"))
	require.NoError(t, err)
	assert.Equal(t, "copied", b.String())
}

func TestBufferAppendAndClone(t *testing.T) {
	t.Parallel()
	a := braces.NewBuffer(0, nil)
	_, _ = a.WriteString("left")
	b := braces.NewBuffer(0, nil)
	_, _ = b.WriteString("right")

	a.Append(b)
	assert.Equal(t, "leftright", a.String())
	assert.Equal(t, "right", b.String())

	c := a.Clone()
	_, _ = c.WriteString("!")
	assert.Equal(t, "leftright", a.String())
	assert.Equal(t, "leftright!", c.String())
}

func TestBufferFreeThenReuse(t *testing.T) {
	t.Parallel()
	alloc := &countingAllocator{}
	b := braces.NewBuffer(8, alloc)
	_, _ = b.WriteString("data")
	b.Free()
	assert.Zero(t, b.Len())
	assert.Equal(t, int64(1), alloc.deallocated.Load())

	// A second Free has nothing to hand back.
	b.Free()
	assert.Equal(t, int64(1), alloc.deallocated.Load())

	_, _ = b.WriteString("again")
	assert.Equal(t, "again", b.String())
}

func TestBufferZeroValueFree(t *testing.T) {
	t.Parallel()
	var b braces.Buffer
	_ = b.WriteByte('x')
	assert.NotPanics(t, b.Free)
	assert.Zero(t, b.Len())
}

func TestPoolAllocator(t *testing.T) {
	t.Parallel()
	p := braces.NewPoolAllocator()

	buf := p.Allocate(32)
	assert.Empty(t, buf)
	assert.GreaterOrEqual(t, cap(buf), 32)
	p.Deallocate(append(buf, "junk"...))

	again := p.Allocate(16)
	assert.Empty(t, again)
	assert.GreaterOrEqual(t, cap(again), 16)

	bigger := p.Allocate(1 << 12)
	assert.GreaterOrEqual(t, cap(bigger), 1<<12)

	assert.NotPanics(t, func() {
		p.Deallocate(nil)
		p.Deallocate(make([]byte, 0, 1<<20))
	})
}

func TestDefaultAllocator(t *testing.T) {
	t.Parallel()
	a := braces.DefaultAllocator()
	buf := a.Allocate(10)
	assert.Empty(t, buf)
	assert.GreaterOrEqual(t, cap(buf), 10)
	assert.NotPanics(t, func() { a.Deallocate(buf) })
}
