package numfmt

import (
	"github.com/shogo82148/int128"
)

// NonZeroable lists the kinds NonZero can wrap.
type NonZeroable interface {
	Unsigned | int128.Uint128
}

// NonZero is an unsigned value known not to be zero. It formats exactly
// like the value it wraps.
type NonZero[T NonZeroable] struct {
	v T
}

// NewNonZero wraps v, failing with ErrZero when v is zero.
func NewNonZero[T NonZeroable](v T) (NonZero[T], error) {
	var zero T
	if v == zero {
		return NonZero[T]{}, newError(ErrKindZero, "NonZero requires a value other than 0")
	}
	return NonZero[T]{v: v}, nil
}

// Get returns the wrapped value. It is zero only for the zero NonZero.
func (n NonZero[T]) Get() T {
	return n.v
}

// number converts the wrapped value into a Number.
func (n NonZero[T]) number() Number {
	switch v := any(n.v).(type) {
	case uint:
		return FromUint(v)
	case uint8:
		return FromUint8(v)
	case uint16:
		return FromUint16(v)
	case uint32:
		return FromUint32(v)
	case uint64:
		return FromUint64(v)
	case uintptr:
		return FromUintptr(v)
	case int128.Uint128:
		return FromUint128(v)
	}
	return Number{}
}

// WriteNonZero formats n into b, replacing its content, and returns the
// number of bytes written.
func WriteNonZero[T Unsigned](b *Buffer, n NonZero[T], f Format) int {
	return WriteUint(b, n.v, f)
}

// WriteNonZeroUint128 formats n into b, replacing its content, and returns
// the number of bytes written.
func (b *Buffer) WriteNonZeroUint128(n NonZero[int128.Uint128], f Format) int {
	return b.WriteUint128(n.v, f)
}
