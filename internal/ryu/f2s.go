package ryu

import "math"

// Decimal32 is the shortest decimal m·10^e that rounds back to the
// originating binary32 value.
type Decimal32 struct {
	Mantissa uint32
	Exponent int32
}

// Float32 splits a finite f into its decimal mantissa and exponent. The
// sign is dropped. Zero yields {0, 0}.
func Float32(f float32) Decimal32 {
	b := math.Float32bits(f)
	mant := b & (1<<float32MantBits - 1)
	exp := (b >> float32MantBits) & (1<<float32ExpBits - 1)
	if mant == 0 && exp == 0 {
		return Decimal32{}
	}
	return F2D(mant, exp)
}

func mulPow5InvDivPow2(m, q uint32, j int32) uint32 {
	return mulShift32(m, computeInvPow5(q)[1]+1, j)
}

func mulPow5DivPow2(m, i uint32, j int32) uint32 {
	return mulShift32(m, computePow5(i)[1], j)
}

// F2D runs the shortest round-trip search on the raw IEEE fields of a
// finite, nonzero binary32.
func F2D(ieeeMantissa, ieeeExponent uint32) Decimal32 {
	var e2 int32
	var m2 uint32
	if ieeeExponent == 0 {
		e2 = 1 - float32Bias - float32MantBits - 2
		m2 = ieeeMantissa
	} else {
		e2 = int32(ieeeExponent) - float32Bias - float32MantBits - 2
		m2 = 1<<float32MantBits | ieeeMantissa
	}
	acceptBounds := m2&1 == 0

	mv := 4 * m2
	mp := 4*m2 + 2
	var mmShift uint32
	if ieeeMantissa != 0 || ieeeExponent <= 1 {
		mmShift = 1
	}
	mm := 4*m2 - 1 - mmShift

	var (
		vr, vp, vm      uint32
		e10             int32
		vmTrailingZeros bool
		vrTrailingZeros bool
		lastDigit       uint32
	)
	if e2 >= 0 {
		q := log10Pow2(e2)
		e10 = int32(q)
		k := float32Pow5InvBitcount + pow5Bits(int32(q)) - 1
		i := -e2 + int32(q) + k
		vr = mulPow5InvDivPow2(mv, q, i)
		vp = mulPow5InvDivPow2(mp, q, i)
		vm = mulPow5InvDivPow2(mm, q, i)
		if q != 0 && (vp-1)/10 <= vm/10 {
			// The loop below drops at most one digit here, so the last
			// removed digit has to be computed up front.
			l := float32Pow5InvBitcount + pow5Bits(int32(q-1)) - 1
			lastDigit = mulPow5InvDivPow2(mv, q-1, -e2+int32(q)-1+l) % 10
		}
		if q <= 9 {
			switch {
			case mv%5 == 0:
				vrTrailingZeros = multipleOfPowerOf5(uint64(mv), q)
			case acceptBounds:
				vmTrailingZeros = multipleOfPowerOf5(uint64(mm), q)
			case multipleOfPowerOf5(uint64(mp), q):
				vp--
			}
		}
	} else {
		q := log10Pow5(-e2)
		e10 = int32(q) + e2
		i := -e2 - int32(q)
		k := pow5Bits(i) - float32Pow5Bitcount
		j := int32(q) - k
		vr = mulPow5DivPow2(mv, uint32(i), j)
		vp = mulPow5DivPow2(mp, uint32(i), j)
		vm = mulPow5DivPow2(mm, uint32(i), j)
		if q != 0 && (vp-1)/10 <= vm/10 {
			j = int32(q) - 1 - (pow5Bits(i+1) - float32Pow5Bitcount)
			lastDigit = mulPow5DivPow2(mv, uint32(i+1), j) % 10
		}
		if q <= 1 {
			vrTrailingZeros = true
			if acceptBounds {
				vmTrailingZeros = mmShift == 1
			} else {
				vp--
			}
		} else if q < 31 {
			vrTrailingZeros = multipleOfPowerOf2(uint64(mv), q-1)
		}
	}

	var removed int32
	var output uint32
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
			lastDigit = 4
		}
		output = vr
		if (vr == vm && (!acceptBounds || !vmTrailingZeros)) || lastDigit >= 5 {
			output++
		}
	} else {
		for vp/10 > vm/10 {
			lastDigit = vr % 10
			vr /= 10
			vp /= 10
			vm /= 10
			removed++
		}
		output = vr
		if vr == vm || lastDigit >= 5 {
			output++
		}
	}
	return Decimal32{Mantissa: output, Exponent: e10 + removed}
}
