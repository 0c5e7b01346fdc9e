package itoa

import (
	"math/bits"

	"github.com/shogo82148/int128"
)

// Chunk19 is 10^19, the largest power of ten whose quotients fit a uint64.
const Chunk19 uint64 = 1e19

// DivMod1e19 divides n by 10^19 with two 64-bit steps instead of a generic
// 128-bit division.
func DivMod1e19(n int128.Uint128) (q int128.Uint128, r uint64) {
	// n.H % 1e19 < 1e19 satisfies the Div64 precondition hi < y.
	qHi, rHi := n.H/Chunk19, n.H%Chunk19
	qLo, r := bits.Div64(rHi, n.L, Chunk19)
	return int128.Uint128{H: qHi, L: qLo}, r
}

// Uint128 writes n so that it ends just before pos.
//
// The magnitude is peeled off in two 19-digit chunks; every chunk below a
// nonzero quotient is zero padded to exactly 19 digits. The max uint128
// spans 39 digits, so at most one digit remains after the second division.
func Uint128(buf []byte, pos int, n int128.Uint128) int {
	if n.H == 0 {
		return Uint64(buf, pos, n.L)
	}

	n, rem := DivMod1e19(n)
	cur := Uint64(buf, pos, rem)
	if isZero(n) {
		return cur
	}
	cur = Zeros(buf, cur, pos-19)

	n, rem = DivMod1e19(n)
	cur = Uint64(buf, cur, rem)
	if isZero(n) {
		return cur
	}
	cur = Zeros(buf, cur, pos-38)

	cur--
	buf[cur] = byte(n.L) + '0'
	return cur
}

func isZero(n int128.Uint128) bool {
	return n.H == 0 && n.L == 0
}
