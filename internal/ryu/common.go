// Package ryu computes the shortest decimal representation of binary32 and
// binary64 values.
//
// See Ulf Adams, "Ryū: Fast Float-to-String Conversion"
// (doi:10.1145/3192366.3192369). The package only produces the decimal
// mantissa and exponent; laying them out as text is the caller's job.
package ryu

import "math/bits"

const (
	float64MantBits = 52
	float64ExpBits  = 11
	float64Bias     = 1023

	float32MantBits = 23
	float32ExpBits  = 8
	float32Bias     = 127
)

// log10Pow2 returns floor(log_10(2^e)) for 0 <= e <= 1650.
func log10Pow2(e int32) uint32 {
	// log10(2) ≈ 78913 / 2^18
	return (uint32(e) * 78913) >> 18
}

// log10Pow5 returns floor(log_10(5^e)) for 0 <= e <= 2620.
func log10Pow5(e int32) uint32 {
	// log10(5) ≈ 732923 / 2^20
	return (uint32(e) * 732923) >> 20
}

// pow5Bits returns ceil(log_2(5^e)), or 1 for e == 0, for 0 <= e <= 3528.
// That is the bit length of 5^e.
func pow5Bits(e int32) int32 {
	return int32((uint32(e)*1217359)>>19) + 1
}

func pow5Factor(v uint64) uint32 {
	var count uint32
	for v%5 == 0 {
		v /= 5
		count++
	}
	return count
}

func multipleOfPowerOf5(v uint64, p uint32) bool {
	return pow5Factor(v) >= p
}

func multipleOfPowerOf2(v uint64, p uint32) bool {
	return bits.TrailingZeros64(v) >= int(p)
}

// mulShift64 returns ((m * mul) >> j) for a 55-bit m and a 128-bit mul split
// into lo/hi words, where 64 <= j < 128.
func mulShift64(m uint64, mul [2]uint64, j int32) uint64 {
	b0Hi, _ := bits.Mul64(m, mul[0])
	b2Hi, b2Lo := bits.Mul64(m, mul[1])
	lo, carry := bits.Add64(b2Lo, b0Hi, 0)
	hi := b2Hi + carry
	shift := uint(j - 64)
	return lo>>shift | hi<<(64-shift)
}

// mulShiftAll64 evaluates the lower, central and upper interval bounds
// (4m-1-mmShift, 4m, 4m+2) against the same multiplier.
func mulShiftAll64(m uint64, mul [2]uint64, j int32, mmShift uint64) (vr, vp, vm uint64) {
	vp = mulShift64(4*m+2, mul, j)
	vm = mulShift64(4*m-1-mmShift, mul, j)
	vr = mulShift64(4*m, mul, j)
	return vr, vp, vm
}

// mulShift32 returns (m * factor) >> shift for 32 < shift.
func mulShift32(m uint32, factor uint64, shift int32) uint32 {
	factorLo := factor & 0xffffffff
	factorHi := factor >> 32
	bits0 := uint64(m) * factorLo
	bits1 := uint64(m) * factorHi
	sum := (bits0 >> 32) + bits1
	return uint32(sum >> uint(shift-32))
}
