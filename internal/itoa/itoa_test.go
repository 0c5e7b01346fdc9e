package itoa

import (
	"math"
	"math/big"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/shogo82148/int128"

	"github.com/tinywasm/numfmt/internal/testutils/assert"
	"github.com/tinywasm/numfmt/internal/testutils/require"
)

func writeUint64(n uint64) string {
	var buf [20]byte
	start := Uint64(buf[:], len(buf), n)
	return string(buf[start:])
}

func writeUint128(n int128.Uint128) string {
	var buf [39]byte
	start := Uint128(buf[:], len(buf), n)
	return string(buf[start:])
}

func bigOf(n int128.Uint128) *big.Int {
	b := new(big.Int).SetUint64(n.H)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(n.L))
}

func TestPairs(t *testing.T) {
	require.Len(t, Pairs, 200)
	for v := 0; v < 100; v++ {
		want := strconv.Itoa(v)
		if v < 10 {
			want = "0" + want
		}
		assert.Equal(t, want, Pairs[2*v:2*v+2])
	}
}

func TestUint64(t *testing.T) {
	fixed := []uint64{
		0, 1, 9, 10, 99, 100, 999, 1000, 9999, 10000, 10001, 99999, 100000,
		123456789, 4294967295, 4294967296, 9999999999999999999, math.MaxUint64,
	}
	for _, n := range fixed {
		assert.Equal(t, strconv.FormatUint(n, 10), writeUint64(n))
	}
	for _, p := range Pow10 {
		assert.Equal(t, strconv.FormatUint(p, 10), writeUint64(p))
		assert.Equal(t, strconv.FormatUint(p-1, 10), writeUint64(p-1))
	}

	r := rand.New(rand.NewPCG(1, 2))
	for range 10000 {
		n := r.Uint64() >> r.UintN(64)
		require.Equal(t, strconv.FormatUint(n, 10), writeUint64(n))
	}
}

func TestUint64WritesOnlyItsDigits(t *testing.T) {
	buf := []byte("xxxxxxxxxx")
	start := Uint64(buf, 8, 4217)
	assert.Equal(t, 4, start)
	assert.Equal(t, "xxxx4217xx", string(buf))
}

func TestUint64Padded(t *testing.T) {
	var buf [20]byte
	start := Uint64Padded(buf[:], 20, 42, 5)
	assert.Equal(t, "00042", string(buf[start:]))

	start = Uint64Padded(buf[:], 20, 123456, 3)
	assert.Equal(t, "123456", string(buf[start:]))

	start = Uint64Padded(buf[:], 20, 0, 4)
	assert.Equal(t, "0000", string(buf[start:]))
}

func TestLen64(t *testing.T) {
	assert.Equal(t, 1, Len64(0))
	assert.Equal(t, 1, Len64(9))
	assert.Equal(t, 2, Len64(10))
	assert.Equal(t, 19, Len64(9999999999999999999))
	assert.Equal(t, 20, Len64(10000000000000000000))
	assert.Equal(t, 20, Len64(math.MaxUint64))
	for i := 1; i < len(Pow10); i++ {
		assert.Equal(t, i+1, Len64(Pow10[i]))
		assert.Equal(t, i, Len64(Pow10[i]-1))
	}
}

func TestDivMod1e19(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	ten19 := new(big.Int).SetUint64(Chunk19)
	for range 1000 {
		n := int128.Uint128{H: r.Uint64(), L: r.Uint64()}
		q, rem := DivMod1e19(n)

		wantQ, wantR := new(big.Int).QuoRem(bigOf(n), ten19, new(big.Int))
		require.Equal(t, 0, wantQ.Cmp(bigOf(q)), "quotient of %v", bigOf(n))
		require.Equal(t, wantR.Uint64(), rem)
	}
}

func TestUint128(t *testing.T) {
	maxU := int128.Uint128{H: math.MaxUint64, L: math.MaxUint64}
	assert.Equal(t, "340282366920938463463374607431768211455", writeUint128(maxU))
	assert.Equal(t, "0", writeUint128(int128.Uint128{}))
	assert.Equal(t, "18446744073709551616", writeUint128(int128.Uint128{H: 1}))

	// 10^19 exactly leaves a zero remainder that must be padded.
	assert.Equal(t, "10000000000000000000", writeUint128(int128.Uint128{L: Chunk19}))
	// 10^38 pads both chunks.
	ten38, _ := new(big.Int).SetString("100000000000000000000000000000000000000", 10)
	n := int128.Uint128{
		H: new(big.Int).Rsh(ten38, 64).Uint64(),
		L: new(big.Int).And(ten38, new(big.Int).SetUint64(math.MaxUint64)).Uint64(),
	}
	assert.Equal(t, ten38.String(), writeUint128(n))

	r := rand.New(rand.NewPCG(5, 6))
	for range 5000 {
		n := int128.Uint128{H: r.Uint64() >> r.UintN(64), L: r.Uint64()}
		require.Equal(t, bigOf(n).String(), writeUint128(n))
	}
}
