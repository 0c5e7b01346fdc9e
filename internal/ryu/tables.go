package ryu

import "math/big"

// Multiplier precision shared by both table layouts. binary32 uses the
// high word of the same multipliers.
const (
	pow5InvBitcount = 125
	pow5Bitcount    = 125

	float32Pow5InvBitcount = pow5InvBitcount - 64
	float32Pow5Bitcount    = pow5Bitcount - 64

	// Entries needed to cover every binary64 exponent.
	pow5InvTableSize = 342
	pow5TableSize    = 326
)

var (
	bigFive = big.NewInt(5)
	bigOne  = big.NewInt(1)
	mask64  = new(big.Int).SetUint64(^uint64(0))
)

// exactPow5 returns the top pow5Bitcount bits of 5^i as lo/hi words.
func exactPow5(i int32) [2]uint64 {
	p := new(big.Int).Exp(bigFive, big.NewInt(int64(i)), nil)
	shift := pow5Bits(i) - pow5Bitcount
	if shift > 0 {
		p.Rsh(p, uint(shift))
	} else {
		p.Lsh(p, uint(-shift))
	}
	return words(p)
}

// exactInvPow5 returns floor(2^(pow5Bits(i)-1+pow5InvBitcount) / 5^i) + 1
// as lo/hi words.
func exactInvPow5(i int32) [2]uint64 {
	p := new(big.Int).Exp(bigFive, big.NewInt(int64(i)), nil)
	n := new(big.Int).Lsh(bigOne, uint(pow5Bits(i)-1+pow5InvBitcount))
	n.Quo(n, p)
	n.Add(n, bigOne)
	return words(n)
}

func words(x *big.Int) [2]uint64 {
	lo := new(big.Int).And(x, mask64).Uint64()
	hi := new(big.Int).Rsh(x, 64).Uint64()
	return [2]uint64{lo, hi}
}
