package ryu

import "math"

// Decimal64 is the shortest decimal m·10^e that rounds back to the
// originating binary64 value.
type Decimal64 struct {
	Mantissa uint64
	Exponent int32
}

// Float64 splits a finite f into its decimal mantissa and exponent. The
// sign is dropped. Zero yields {0, 0}.
func Float64(f float64) Decimal64 {
	b := math.Float64bits(f)
	mant := b & (1<<float64MantBits - 1)
	exp := uint32(b>>float64MantBits) & (1<<float64ExpBits - 1)
	if mant == 0 && exp == 0 {
		return Decimal64{}
	}
	return D2D(mant, exp)
}

// D2D runs the shortest round-trip search on the raw IEEE fields of a
// finite, nonzero binary64.
func D2D(ieeeMantissa uint64, ieeeExponent uint32) Decimal64 {
	var e2 int32
	var m2 uint64
	if ieeeExponent == 0 {
		e2 = 1 - float64Bias - float64MantBits - 2
		m2 = ieeeMantissa
	} else {
		e2 = int32(ieeeExponent) - float64Bias - float64MantBits - 2
		m2 = 1<<float64MantBits | ieeeMantissa
	}
	acceptBounds := m2&1 == 0

	// Step 2: the interval of valid decimal representations.
	mv := 4 * m2
	var mmShift uint64
	if ieeeMantissa != 0 || ieeeExponent <= 1 {
		mmShift = 1
	}

	// Step 3: convert to a decimal power base using 128-bit arithmetic.
	var (
		vr, vp, vm      uint64
		e10             int32
		vmTrailingZeros bool
		vrTrailingZeros bool
	)
	if e2 >= 0 {
		q := log10Pow2(e2)
		if e2 > 3 {
			q--
		}
		e10 = int32(q)
		k := pow5InvBitcount + pow5Bits(int32(q)) - 1
		i := -e2 + int32(q) + k
		vr, vp, vm = mulShiftAll64(m2, computeInvPow5(q), i, mmShift)
		if q <= 21 {
			// Only one of mp, mv and mm can be a multiple of 5, if any.
			switch {
			case mv%5 == 0:
				vrTrailingZeros = multipleOfPowerOf5(mv, q)
			case acceptBounds:
				vmTrailingZeros = multipleOfPowerOf5(mv-1-mmShift, q)
			case multipleOfPowerOf5(mv+2, q):
				vp--
			}
		}
	} else {
		q := log10Pow5(-e2)
		if -e2 > 1 {
			q--
		}
		e10 = int32(q) + e2
		i := -e2 - int32(q)
		k := pow5Bits(i) - pow5Bitcount
		j := int32(q) - k
		vr, vp, vm = mulShiftAll64(m2, computePow5(uint32(i)), j, mmShift)
		if q <= 1 {
			// mv has at least q trailing zero bits, and so do mm and mp.
			vrTrailingZeros = true
			if acceptBounds {
				vmTrailingZeros = mmShift == 1
			} else {
				vp--
			}
		} else if q < 63 {
			vrTrailingZeros = multipleOfPowerOf2(mv, q)
		}
	}

	// Step 4: find the shortest representation in the interval.
	var (
		removed   int32
		lastDigit uint64
		output    uint64
	)
	if vmTrailingZeros || vrTrailingZeros {
		for vp/10 > vm/10 {
			vmTrailingZeros = vmTrailingZeros && vm%10 == 0
			vrTrailingZeros = vrTrailingZeros && lastDigit == 0
			lastDigit = vr % 10
			vr /= 10
			vp /= 10
			vm /= 10
			removed++
		}
		if vmTrailingZeros {
			for vm%10 == 0 {
				vrTrailingZeros = vrTrailingZeros && lastDigit == 0
				lastDigit = vr % 10
				vr /= 10
				vp /= 10
				vm /= 10
				removed++
			}
		}
		if vrTrailingZeros && lastDigit == 5 && vr%2 == 0 {
			// Exactly halfway: round to even.
			lastDigit = 4
		}
		output = vr
		if (vr == vm && (!acceptBounds || !vmTrailingZeros)) || lastDigit >= 5 {
			output++
		}
	} else {
		// Common case: no trailing zeros to track.
		roundUp := false
		if vp/100 > vm/100 {
			roundUp = vr%100 >= 50
			vr /= 100
			vp /= 100
			vm /= 100
			removed += 2
		}
		for vp/10 > vm/10 {
			roundUp = vr%10 >= 5
			vr /= 10
			vp /= 10
			vm /= 10
			removed++
		}
		output = vr
		if vr == vm || roundUp {
			output++
		}
	}
	return Decimal64{Mantissa: output, Exponent: e10 + removed}
}
