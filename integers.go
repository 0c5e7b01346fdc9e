package numfmt

import (
	"math/bits"

	"github.com/shogo82148/int128"

	"github.com/tinywasm/numfmt/internal/itoa"
)

// Signed is the closed set of built-in signed integer kinds.
type Signed interface {
	int | int8 | int16 | int32 | int64
}

// Unsigned is the closed set of built-in unsigned integer kinds.
type Unsigned interface {
	uint | uint8 | uint16 | uint32 | uint64 | uintptr
}

// WriteInt formats n into b, replacing its content, and returns the number
// of bytes written.
func WriteInt[T Signed](b *Buffer, n T, f Format) int {
	u := uint64(int64(n))
	neg := n < 0
	if neg {
		u = ^u + 1
	}
	b.reset()
	b.writeMagnitude(u, f)
	if neg {
		b.prepend(f.MinusSign())
	}
	return b.Len()
}

// WriteUint formats n into b, replacing its content, and returns the number
// of bytes written.
func WriteUint[T Unsigned](b *Buffer, n T, f Format) int {
	b.reset()
	b.writeMagnitude(uint64(n), f)
	return b.Len()
}

// WriteInt128 formats n into b, replacing its content, and returns the
// number of bytes written.
func (b *Buffer) WriteInt128(n int128.Int128, f Format) int {
	u := int128.Uint128{H: uint64(n.H), L: n.L}
	neg := n.H < 0
	if neg {
		var carry uint64
		u.L, carry = bits.Add64(^u.L, 1, 0)
		u.H = ^u.H + carry
	}
	b.reset()
	b.writeMagnitude128(u, f)
	if neg {
		b.prepend(f.MinusSign())
	}
	return b.Len()
}

// WriteUint128 formats n into b, replacing its content, and returns the
// number of bytes written.
func (b *Buffer) WriteUint128(n int128.Uint128, f Format) int {
	b.reset()
	b.writeMagnitude128(n, f)
	return b.Len()
}

func (b *Buffer) writeMagnitude(u uint64, f Format) {
	if !grouped(f) {
		b.pos = itoa.Uint64(b.inner[:], b.pos, u)
		return
	}
	c := newSepCursor(f, b.pos)
	b.pos = c.writeUint64(b.inner[:], b.pos, u, 0)
}

func (b *Buffer) writeMagnitude128(u int128.Uint128, f Format) {
	if !grouped(f) {
		b.pos = itoa.Uint128(b.inner[:], b.pos, u)
		return
	}
	if u.H == 0 {
		c := newSepCursor(f, b.pos)
		b.pos = c.writeUint64(b.inner[:], b.pos, u.L, 0)
		return
	}

	// Same chunking as the plain path, with the digit count rather than
	// the index tracking the padding, since separators occupy bytes too.
	c := newSepCursor(f, b.pos)
	u, rem := itoa.DivMod1e19(u)
	if u.H == 0 && u.L == 0 {
		b.pos = c.writeUint64(b.inner[:], b.pos, rem, 0)
		return
	}
	b.pos = c.writeUint64(b.inner[:], b.pos, rem, 19)
	u, rem = itoa.DivMod1e19(u)
	if u.H == 0 && u.L == 0 {
		b.pos = c.writeUint64(b.inner[:], b.pos, rem, 0)
		return
	}
	b.pos = c.writeUint64(b.inner[:], b.pos, rem, 19)
	b.pos = c.writeByte(b.inner[:], b.pos, byte(u.L)+'0')
}

// FormatInt returns n formatted as a new string.
func FormatInt[T Signed](n T, f Format) string {
	var b Buffer
	WriteInt(&b, n, f)
	return string(b.Bytes())
}

// FormatUint returns n formatted as a new string.
func FormatUint[T Unsigned](n T, f Format) string {
	var b Buffer
	WriteUint(&b, n, f)
	return string(b.Bytes())
}

// FormatInt128 returns n formatted as a new string.
func FormatInt128(n int128.Int128, f Format) string {
	var b Buffer
	b.WriteInt128(n, f)
	return string(b.Bytes())
}

// FormatUint128 returns n formatted as a new string.
func FormatUint128(n int128.Uint128, f Format) string {
	var b Buffer
	b.WriteUint128(n, f)
	return string(b.Bytes())
}
