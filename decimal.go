package numfmt

import (
	"math"

	"github.com/tinywasm/numfmt/internal/ryu"
)

// Decimal is the shortest decimal form Mantissa·10^Exponent of a finite
// float: parsing it back yields the original bits, and no representation
// with fewer significant digits does. Mantissa carries no trailing zeros.
type Decimal struct {
	Mantissa uint64
	Exponent int
	Negative bool
}

// Shortest64 returns the shortest decimal form of v. ok is false for NaN
// and infinities. Both zeros yield a zero Mantissa.
func Shortest64(v float64) (d Decimal, ok bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Decimal{}, false
	}
	r := ryu.Float64(v)
	d = Decimal{Mantissa: r.Mantissa, Exponent: int(r.Exponent), Negative: math.Signbit(v)}
	d.trim()
	return d, true
}

// Shortest32 returns the shortest decimal form of v. ok is false for NaN
// and infinities. Both zeros yield a zero Mantissa.
func Shortest32(v float32) (d Decimal, ok bool) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, false
	}
	r := ryu.Float32(v)
	d = Decimal{Mantissa: uint64(r.Mantissa), Exponent: int(r.Exponent), Negative: math.Signbit(f)}
	d.trim()
	return d, true
}

func (d *Decimal) trim() {
	if d.Mantissa == 0 {
		d.Exponent = 0
		return
	}
	d.Mantissa, d.Exponent = trimZeros(d.Mantissa, d.Exponent)
}

// trimZeros moves the trailing zeros of a nonzero m into the exponent.
func trimZeros(m uint64, e int) (uint64, int) {
	for m%10 == 0 {
		m /= 10
		e++
	}
	return m, e
}
