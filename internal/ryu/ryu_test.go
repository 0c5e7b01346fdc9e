package ryu

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"github.com/tinywasm/numfmt/internal/testutils/assert"
	"github.com/tinywasm/numfmt/internal/testutils/require"
)

// parseShortest turns strconv's shortest 'e' output into mantissa and
// exponent with trailing zeros removed.
func parseShortest(t *testing.T, s string) (uint64, int32) {
	t.Helper()
	mant, exp, ok := strings.Cut(s, "e")
	require.True(t, ok, "no exponent in %q", s)
	digits := strings.Replace(mant, ".", "", 1)
	e, err := strconv.Atoi(exp)
	require.NoError(t, err)
	e -= len(digits) - 1
	m, err := strconv.ParseUint(digits, 10, 64)
	require.NoError(t, err)
	return trim(m, int32(e))
}

func trim(m uint64, e int32) (uint64, int32) {
	for m != 0 && m%10 == 0 {
		m /= 10
		e++
	}
	return m, e
}

func checkFloat64(t *testing.T, f float64) {
	t.Helper()
	d := Float64(f)
	gotM, gotE := trim(d.Mantissa, d.Exponent)
	wantM, wantE := parseShortest(t, strconv.FormatFloat(math.Abs(f), 'e', -1, 64))
	if gotM != wantM || gotE != wantE {
		t.Fatalf("Float64(%v) = %de%d, want %de%d", f, gotM, gotE, wantM, wantE)
	}
}

func checkFloat32(t *testing.T, f float32) {
	t.Helper()
	d := Float32(f)
	gotM, gotE := trim(uint64(d.Mantissa), d.Exponent)
	wantM, wantE := parseShortest(t, strconv.FormatFloat(math.Abs(float64(f)), 'e', -1, 32))
	if gotM != wantM || gotE != wantE {
		t.Fatalf("Float32(%v) = %de%d, want %de%d", f, gotM, gotE, wantM, wantE)
	}
}

func TestPowerTablesMatchExactValues(t *testing.T) {
	for i := uint32(0); i < pow5TableSize; i++ {
		require.Equal(t, exactPow5(int32(i)), computePow5(i), "pow5 %d (small tables: %v)", i, SmallTables)
	}
	for i := uint32(0); i < pow5InvTableSize; i++ {
		require.Equal(t, exactInvPow5(int32(i)), computeInvPow5(i), "inverse pow5 %d (small tables: %v)", i, SmallTables)
	}
}

func TestExactPow5Anchors(t *testing.T) {
	// 5^0 normalised to 125 bits is 2^124.
	assert.Equal(t, [2]uint64{0, 1 << 60}, exactPow5(0))
	// 5^1 = 101b, shifted left so the top bit lands on bit 124.
	assert.Equal(t, [2]uint64{0, 5 << 58}, exactPow5(1))
	// 2^125 / 5^0 + 1.
	assert.Equal(t, [2]uint64{1, 1 << 61}, exactInvPow5(0))
}

func TestLogApproximations(t *testing.T) {
	for e := int32(0); e <= 1650; e++ {
		want := uint32(math.Floor(float64(e) * math.Log10(2)))
		require.Equal(t, want, log10Pow2(e), "log10Pow2(%d)", e)
	}
	for e := int32(1); e <= 1000; e++ {
		want := int32(math.Ceil(float64(e) * math.Log2(5)))
		require.Equal(t, want, pow5Bits(e), "pow5Bits(%d)", e)
	}
	assert.Equal(t, int32(1), pow5Bits(0))
}

func TestFloat64Examples(t *testing.T) {
	cases := []struct {
		in   float64
		mant uint64
		exp  int32
	}{
		{1, 1, 0},
		{0.1, 1, -1},
		{0.3, 3, -1},
		{1.5, 15, -1},
		{123456.789, 123456789, -3},
		{1e23, 1, 23},
		{5e-324, 5, -324},
		{math.MaxFloat64, 17976931348623157, 292},
		{9007199254740992, 9007199254740992, 0},
	}
	for _, c := range cases {
		d := Float64(c.in)
		m, e := trim(d.Mantissa, d.Exponent)
		assert.Equal(t, c.mant, m, "mantissa of %v", c.in)
		assert.Equal(t, c.exp, e, "exponent of %v", c.in)
	}
	assert.Equal(t, Decimal64{}, Float64(0))
}

func TestFloat64MatchesStrconv(t *testing.T) {
	edges := []float64{
		math.SmallestNonzeroFloat64,
		math.MaxFloat64,
		0x1p-1022,
		0x1p-1022 - 0x1p-1074,
		2.2250738585072014e-308,
		1.7976931348623157e308,
		4.940656e-318,
		1.18575755e-316,
		2.989102097996e-312,
		9.0608011534336e15,
		4.708356024711512e18,
		9.409340012568248e18,
		1.2345678,
		4.294967294,
		4.294967295,
		4.294967296,
		4.294967297,
		1.8531501765868567e21,
		-3.347727380279489e33,
		1.9430376160308388e16,
		-6.9741824662760956e19,
		4.3816050601147837e29,
	}
	for _, f := range edges {
		checkFloat64(t, f)
	}
	for p := -324; p <= 308; p++ {
		checkFloat64(t, math.Pow(10, float64(p)))
	}
	for e := -1074; e <= 1023; e++ {
		checkFloat64(t, math.Ldexp(1, e))
	}

	r := rand.New(rand.NewPCG(0x5eed, 64))
	for range 200000 {
		f := math.Float64frombits(r.Uint64())
		if math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
			continue
		}
		checkFloat64(t, f)
	}
}

func TestFloat32MatchesStrconv(t *testing.T) {
	edges := []float32{
		math.SmallestNonzeroFloat32,
		math.MaxFloat32,
		0x1p-126,
		1.1754942e-38,
		3.3554432e7,
		8.999999e9,
		3.4366717e10,
		3.0540412e5,
		8.0990312e3,
		2.4414062e-4,
		2.4414062e-3,
		4.3945312e-3,
		6.3476562e-3,
		4.7223665e21,
		8388608,
		16777216,
		33554436,
		67131496,
		1.9310392e-38,
		-2.47e-43,
		1.993244e-38,
		4103.9003,
		5.3399997e9,
		6.0898e-39,
		0.0010310042,
		2.8823261e17,
		7.0385309e-26,
		9.2234038e17,
		6.7108872e7,
		1.0e-44,
		2.816025e14,
		9.223372e18,
		1.5846085e29,
		1.1811161e19,
		5.368709e18,
		4.6143165e18,
		0.007812537,
		1.4e-45,
		1.18697724e20,
		1.00014165e-36,
		200,
		3.3554432e7,
	}
	for _, f := range edges {
		checkFloat32(t, f)
	}
	for e := -149; e <= 127; e++ {
		checkFloat32(t, float32(math.Ldexp(1, e)))
	}

	r := rand.New(rand.NewPCG(0x5eed, 32))
	for range 200000 {
		f := math.Float32frombits(r.Uint32())
		if f != f || math.IsInf(float64(f), 0) || f == 0 {
			continue
		}
		checkFloat32(t, f)
	}
}

func TestFloat32Examples(t *testing.T) {
	d := Float32(0.1)
	m, e := trim(uint64(d.Mantissa), d.Exponent)
	assert.Equal(t, uint64(1), m)
	assert.Equal(t, int32(-1), e)
	d = Float32(1.5)
	m, e = trim(uint64(d.Mantissa), d.Exponent)
	assert.Equal(t, uint64(15), m)
	assert.Equal(t, int32(-1), e)
	assert.Equal(t, Decimal32{}, Float32(0))
}
