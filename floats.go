package numfmt

import (
	"math"

	"github.com/tinywasm/numfmt/internal/itoa"
	"github.com/tinywasm/numfmt/internal/ryu"
)

// zeroFloat is written for both zeros whatever the policy says.
const zeroFloat = "0.0"

// WriteFloat64 formats v into b, replacing its content, and returns the
// number of bytes written.
//
// Finite values are printed with the shortest digits that round-trip,
// always in positional notation: 1e21 becomes
// "1,000,000,000,000,000,000,000.0" under EN. Infinities and NaN use the
// policy strings; only infinity carries a sign.
func (b *Buffer) WriteFloat64(v float64, f Format) int {
	b.reset()
	neg := math.Signbit(v)
	switch {
	case math.IsNaN(v):
		b.prepend(f.NaN())
		return b.Len()
	case math.IsInf(v, 0):
		b.writeInfinity(neg, f)
		return b.Len()
	case v == 0:
		b.prepend(zeroFloat)
		return b.Len()
	}
	d := ryu.Float64(v)
	m, e := trimZeros(d.Mantissa, int(d.Exponent))
	b.writeDecimal(m, e, f)
	if neg {
		b.prepend(f.MinusSign())
	}
	return b.Len()
}

// WriteFloat32 formats v into b like WriteFloat64, using the shortest
// digits that round-trip at binary32 precision.
func (b *Buffer) WriteFloat32(v float32, f Format) int {
	b.reset()
	w := float64(v)
	neg := math.Signbit(w)
	switch {
	case math.IsNaN(w):
		b.prepend(f.NaN())
		return b.Len()
	case math.IsInf(w, 0):
		b.writeInfinity(neg, f)
		return b.Len()
	case v == 0:
		b.prepend(zeroFloat)
		return b.Len()
	}
	d := ryu.Float32(v)
	m, e := trimZeros(uint64(d.Mantissa), int(d.Exponent))
	b.writeDecimal(m, e, f)
	if neg {
		b.prepend(f.MinusSign())
	}
	return b.Len()
}

func (b *Buffer) writeInfinity(neg bool, f Format) {
	b.prepend(f.Infinity())
	if neg {
		b.prepend(f.MinusSign())
	}
}

// writeDecimal lays out m·10^e, m > 0, in front of the current content.
//
// With kk = digits(m) + e the value lies in [10^(kk-1), 10^kk). Three
// layouts cover every case:
//
//	e >= 0       integral:  m, e zeros, point, "0"     1234e2  -> 123400.0
//	0 < kk       split:     point inside m             1234e-2 -> 12.34
//	kk <= 0      fraction:  "0", point, -kk zeros, m   1234e-6 -> 0.001234
//
// Magnitudes outside the usual compact ranges keep these layouts and are
// padded out with zeros rather than switching to exponent notation.
func (b *Buffer) writeDecimal(m uint64, e int, f Format) {
	kk := itoa.Len64(m) + e
	switch {
	case e >= 0:
		b.prependByte('0')
		b.prepend(f.Decimal())
		b.writeIntegral(m, e, f)
	case kk > 0:
		p := -e
		frac, whole := m%itoa.Pow10[p], m/itoa.Pow10[p]
		b.pos = itoa.Uint64Padded(b.inner[:], b.pos, frac, p)
		b.prepend(f.Decimal())
		b.writeIntegral(whole, 0, f)
	default:
		b.pos = itoa.Uint64(b.inner[:], b.pos, m)
		b.pos = itoa.Zeros(b.inner[:], b.pos, b.pos+kk)
		b.prepend(f.Decimal())
		b.prependByte('0')
	}
}

// writeIntegral writes m followed by zeros zeros, grouped if f asks for it.
func (b *Buffer) writeIntegral(m uint64, zeros int, f Format) {
	if !grouped(f) {
		b.pos = itoa.Zeros(b.inner[:], b.pos, b.pos-zeros)
		b.pos = itoa.Uint64(b.inner[:], b.pos, m)
		return
	}
	c := newSepCursor(f, b.pos)
	b.pos = c.writeZeros(b.inner[:], b.pos, zeros)
	b.pos = c.writeUint64(b.inner[:], b.pos, m, 0)
}

// FormatFloat64 returns v formatted as a new string.
func FormatFloat64(v float64, f Format) string {
	var b Buffer
	b.WriteFloat64(v, f)
	return string(b.Bytes())
}

// FormatFloat32 returns v formatted as a new string.
func FormatFloat32(v float32, f Format) string {
	var b Buffer
	b.WriteFloat32(v, f)
	return string(b.Bytes())
}
