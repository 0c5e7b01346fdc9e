package numfmt

import (
	"math"

	"github.com/shogo82148/int128"
)

// Kind identifies the concrete type held by a Number.
type Kind uint8

// K exposes the Kind values as fields, in the manner of an enum.
var K = struct {
	Invalid Kind
	Int     Kind
	Int8    Kind
	Int16   Kind
	Int32   Kind
	Int64   Kind
	Int128  Kind
	Uint    Kind
	Uint8   Kind
	Uint16  Kind
	Uint32  Kind
	Uint64  Kind
	Uintptr Kind
	Uint128 Kind
	Float32 Kind
	Float64 Kind
}{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
}

var kindNames = [...]string{
	"invalid",
	"int",
	"int8",
	"int16",
	"int32",
	"int64",
	"int128",
	"uint",
	"uint8",
	"uint16",
	"uint32",
	"uint64",
	"uintptr",
	"uint128",
	"float32",
	"float64",
}

// maxLens is the longest digit string of each integer kind, the minus
// sign counted as one byte. Floats hold their significant digit limit.
var maxLens = [...]int{
	0,
	IntMaxLen,
	I8MaxLen,
	I16MaxLen,
	I32MaxLen,
	I64MaxLen,
	I128MaxLen,
	UintMaxLen,
	U8MaxLen,
	U16MaxLen,
	U32MaxLen,
	U64MaxLen,
	UintMaxLen,
	U128MaxLen,
	9,
	17,
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[0]
}

// MaxLen returns the maximum digit count of an integer kind (sign
// included) or the maximum significant digits of a float kind.
func (k Kind) MaxLen() int {
	if int(k) < len(maxLens) {
		return maxLens[k]
	}
	return 0
}

// Signed reports whether the kind can hold negative values.
func (k Kind) Signed() bool {
	switch k {
	case K.Int, K.Int8, K.Int16, K.Int32, K.Int64, K.Int128, K.Float32, K.Float64:
		return true
	}
	return false
}

// Number holds one value of any supported kind. Integers keep their two's
// complement bits sign-extended to 128; floats keep their IEEE bits in lo.
type Number struct {
	kind Kind
	hi   uint64
	lo   uint64
}

func signedNumber(k Kind, v int64) Number {
	return Number{kind: k, hi: uint64(v >> 63), lo: uint64(v)}
}

func unsignedNumber(k Kind, v uint64) Number {
	return Number{kind: k, lo: v}
}

// FromInt and the other From constructors wrap one value of the named kind.
func FromInt(v int) Number     { return signedNumber(K.Int, int64(v)) }
func FromInt8(v int8) Number   { return signedNumber(K.Int8, int64(v)) }
func FromInt16(v int16) Number { return signedNumber(K.Int16, int64(v)) }
func FromInt32(v int32) Number { return signedNumber(K.Int32, int64(v)) }
func FromInt64(v int64) Number { return signedNumber(K.Int64, v) }

// FromInt128 keeps both words of v.
func FromInt128(v int128.Int128) Number {
	return Number{kind: K.Int128, hi: uint64(v.H), lo: v.L}
}

// FromUint and its siblings zero-extend v to 128 bits.
func FromUint(v uint) Number       { return unsignedNumber(K.Uint, uint64(v)) }
func FromUint8(v uint8) Number     { return unsignedNumber(K.Uint8, uint64(v)) }
func FromUint16(v uint16) Number   { return unsignedNumber(K.Uint16, uint64(v)) }
func FromUint32(v uint32) Number   { return unsignedNumber(K.Uint32, uint64(v)) }
func FromUint64(v uint64) Number   { return unsignedNumber(K.Uint64, v) }
func FromUintptr(v uintptr) Number { return unsignedNumber(K.Uintptr, uint64(v)) }

// FromUint128 keeps both words of v.
func FromUint128(v int128.Uint128) Number {
	return Number{kind: K.Uint128, hi: v.H, lo: v.L}
}

// FromFloat32 stores the IEEE bits of v.
func FromFloat32(v float32) Number {
	return Number{kind: K.Float32, lo: uint64(math.Float32bits(v))}
}

// FromFloat64 stores the IEEE bits of v.
func FromFloat64(v float64) Number {
	return Number{kind: K.Float64, lo: math.Float64bits(v)}
}

// NumberOf wraps v if its dynamic type is one of the supported kinds or a
// NonZero of one, and fails with ErrUnsupported otherwise.
func NumberOf(v any) (Number, error) {
	switch n := v.(type) {
	case int:
		return FromInt(n), nil
	case int8:
		return FromInt8(n), nil
	case int16:
		return FromInt16(n), nil
	case int32:
		return FromInt32(n), nil
	case int64:
		return FromInt64(n), nil
	case int128.Int128:
		return FromInt128(n), nil
	case uint:
		return FromUint(n), nil
	case uint8:
		return FromUint8(n), nil
	case uint16:
		return FromUint16(n), nil
	case uint32:
		return FromUint32(n), nil
	case uint64:
		return FromUint64(n), nil
	case uintptr:
		return FromUintptr(n), nil
	case int128.Uint128:
		return FromUint128(n), nil
	case float32:
		return FromFloat32(n), nil
	case float64:
		return FromFloat64(n), nil
	case interface{ number() Number }:
		return n.number(), nil
	case nil:
		return Number{}, newError(ErrKindUnsupported, "nil value")
	}
	return Number{}, newError(ErrKindUnsupported, "value is not an integer or float kind")
}

// Kind returns the kind of the held value; K.Invalid for the zero Number.
func (n Number) Kind() Kind {
	return n.kind
}

// Int128 returns the value of an integer Number widened to 128 bits. Float
// kinds return their bit pattern.
func (n Number) Int128() int128.Int128 {
	return int128.Int128{H: int64(n.hi), L: n.lo}
}

// Float64 returns the value of a float Number, or 0 for other kinds.
func (n Number) Float64() float64 {
	switch n.kind {
	case K.Float32:
		return float64(math.Float32frombits(uint32(n.lo)))
	case K.Float64:
		return math.Float64frombits(n.lo)
	}
	return 0
}

// WriteNumber formats n into b, replacing its content, and returns the
// number of bytes written. The zero Number writes nothing.
func (b *Buffer) WriteNumber(n Number, f Format) int {
	switch n.kind {
	case K.Int, K.Int8, K.Int16, K.Int32, K.Int64:
		return WriteInt(b, int64(n.lo), f)
	case K.Int128:
		return b.WriteInt128(n.Int128(), f)
	case K.Uint, K.Uint8, K.Uint16, K.Uint32, K.Uint64, K.Uintptr:
		return WriteUint(b, n.lo, f)
	case K.Uint128:
		return b.WriteUint128(int128.Uint128{H: n.hi, L: n.lo}, f)
	case K.Float32:
		return b.WriteFloat32(math.Float32frombits(uint32(n.lo)), f)
	case K.Float64:
		return b.WriteFloat64(math.Float64frombits(n.lo), f)
	}
	b.reset()
	return 0
}

// String formats n with EnUSPOSIX into a new string.
func (n Number) String() string {
	var b Buffer
	b.WriteNumber(n, EnUSPOSIX)
	return string(b.Bytes())
}
