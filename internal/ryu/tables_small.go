//go:build numfmt_small

package ryu

import "math/bits"

// Small tables: one exact multiplier every pow5TableStep powers plus a
// 2-bit correction per power. The multipliers in between are rebuilt from
// a 64-bit power of five and come out identical to the full tables.
const pow5TableStep = 26

var (
	pow5Table      [pow5TableStep]uint64
	pow5Split2     [(pow5TableSize + pow5TableStep - 1) / pow5TableStep][2]uint64
	pow5InvSplit2  [(pow5InvTableSize+pow5TableStep-1)/pow5TableStep + 1][2]uint64
	pow5Offsets    [(pow5TableSize + 15) / 16]uint32
	pow5InvOffsets [(pow5InvTableSize + 15) / 16]uint32
)

func init() {
	pow5Table[0] = 1
	for i := 1; i < len(pow5Table); i++ {
		pow5Table[i] = pow5Table[i-1] * 5
	}
	for b := range pow5Split2 {
		pow5Split2[b] = exactPow5(int32(b * pow5TableStep))
	}
	for b := range pow5InvSplit2 {
		pow5InvSplit2[b] = exactInvPow5(int32(b * pow5TableStep))
	}
	for i := uint32(0); i < pow5TableSize; i++ {
		d := correction(exactPow5(int32(i)), approxPow5(i))
		pow5Offsets[i/16] |= d << ((i % 16) << 1)
	}
	for i := uint32(0); i < pow5InvTableSize; i++ {
		d := correction(exactInvPow5(int32(i)), approxInvPow5(i))
		pow5InvOffsets[i/16] |= d << ((i % 16) << 1)
	}
}

// SmallTables reports whether the on-demand table layout is compiled in.
const SmallTables = true

func computePow5(i uint32) [2]uint64 {
	return addWord(approxPow5(i), uint64((pow5Offsets[i/16]>>((i%16)<<1))&3))
}

func computeInvPow5(i uint32) [2]uint64 {
	return addWord(approxInvPow5(i), uint64((pow5InvOffsets[i/16]>>((i%16)<<1))&3))
}

func approxPow5(i uint32) [2]uint64 {
	base := i / pow5TableStep
	base2 := base * pow5TableStep
	offset := i - base2
	mul := pow5Split2[base]
	if offset == 0 {
		return mul
	}
	m := pow5Table[offset]
	b0Hi, b0Lo := bits.Mul64(m, mul[0])
	b2Hi, b2Lo := bits.Mul64(m, mul[1])
	delta := uint(pow5Bits(int32(i)) - pow5Bits(int32(base2)))
	return shiftedSum(b0Hi, b0Lo, b2Hi, b2Lo, delta)
}

func approxInvPow5(i uint32) [2]uint64 {
	base := (i + pow5TableStep - 1) / pow5TableStep
	base2 := base * pow5TableStep
	offset := base2 - i
	mul := pow5InvSplit2[base]
	if offset == 0 {
		return mul
	}
	m := pow5Table[offset]
	// drop the +1 rounding of the stored inverse before scaling it
	lo, borrow := bits.Sub64(mul[0], 1, 0)
	hi := mul[1] - borrow
	b0Hi, b0Lo := bits.Mul64(m, lo)
	b2Hi, b2Lo := bits.Mul64(m, hi)
	delta := uint(pow5Bits(int32(base2)) - pow5Bits(int32(i)))
	return addWord(shiftedSum(b0Hi, b0Lo, b2Hi, b2Lo, delta), 1)
}

// shiftedSum returns (b0 >> delta) + (b2 << (64 - delta)) truncated to 128
// bits, for 0 < delta < 64.
func shiftedSum(b0Hi, b0Lo, b2Hi, b2Lo uint64, delta uint) [2]uint64 {
	lo0 := b0Lo>>delta | b0Hi<<(64-delta)
	hi0 := b0Hi >> delta
	lo2 := b2Lo << (64 - delta)
	hi2 := b2Hi<<(64-delta) | b2Lo>>delta
	lo, carry := bits.Add64(lo0, lo2, 0)
	hi, _ := bits.Add64(hi0, hi2, carry)
	return [2]uint64{lo, hi}
}

func addWord(x [2]uint64, v uint64) [2]uint64 {
	lo, carry := bits.Add64(x[0], v, 0)
	return [2]uint64{lo, x[1] + carry}
}

// correction returns exact - approx, which must fit in two bits.
func correction(exact, approx [2]uint64) uint32 {
	lo, borrow := bits.Sub64(exact[0], approx[0], 0)
	hi, _ := bits.Sub64(exact[1], approx[1], borrow)
	if hi != 0 || lo > 3 {
		panic("ryu: power of five correction out of range")
	}
	return uint32(lo)
}
