package numfmt

import (
	"io"
	"unsafe"
)

// Buffer is fixed storage for one formatted number. Writers fill it from
// the end towards the front; the content is always inner[pos:end].
//
// The zero value is an empty, ready to use Buffer. A Buffer must not be
// copied while a string returned by String is still in use.
type Buffer struct {
	inner [Capacity]byte
	pos   int
	end   int
}

// New returns an empty Buffer.
func New() *Buffer {
	return &Buffer{}
}

// reset drops the content and moves the cursor to the end.
func (b *Buffer) reset() {
	b.pos = Capacity
	b.end = Capacity
}

// prepend writes s immediately before the current content.
func (b *Buffer) prepend(s string) {
	b.pos -= len(s)
	copy(b.inner[b.pos:], s)
}

func (b *Buffer) prependByte(c byte) {
	b.pos--
	b.inner[b.pos] = c
}

// String returns the content without copying. The string aliases the
// buffer and changes on the next write.
func (b *Buffer) String() string {
	if b.pos == b.end {
		return ""
	}
	return unsafe.String(&b.inner[b.pos], b.end-b.pos)
}

// Bytes returns the content as a slice of the buffer. It is valid until
// the next write.
func (b *Buffer) Bytes() []byte {
	return b.inner[b.pos:b.end]
}

// Len is the content length in bytes.
func (b *Buffer) Len() int {
	return b.end - b.pos
}

// IsEmpty reports whether nothing has been written since the last reset.
func (b *Buffer) IsEmpty() bool {
	return b.pos == b.end
}

// Capacity returns the fixed size of the buffer.
func (b *Buffer) Capacity() int {
	return len(b.inner)
}

// WriteTo writes the content to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Bytes())
	return int64(n), err
}
