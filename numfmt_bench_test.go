package numfmt

import (
	"math"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/shogo82148/int128"
)

func benchFloats() []float64 {
	r := rand.New(rand.NewPCG(1, 2))
	out := make([]float64, 1024)
	for i := range out {
		out[i] = (r.Float64() - 0.5) * math.Pow(10, float64(r.IntN(40)-20))
	}
	return out
}

func BenchmarkWriteInt64(b *testing.B) {
	for _, f := range []Format{EnUSPOSIX, EN, HI} {
		b.Run(f.(Locale).Name(), func(b *testing.B) {
			var buf Buffer
			b.ReportAllocs()
			n := int64(math.MinInt64)
			for b.Loop() {
				WriteInt(&buf, n, f)
				n += 0x9e3779b97f4a7c15 >> 3
			}
		})
	}
}

func BenchmarkWriteUint128(b *testing.B) {
	var buf Buffer
	b.ReportAllocs()
	n := int128.Uint128{H: math.MaxUint64, L: math.MaxUint64}
	for b.Loop() {
		buf.WriteUint128(n, EN)
	}
}

func BenchmarkWriteFloat64(b *testing.B) {
	values := benchFloats()
	for _, f := range []Format{EnUSPOSIX, EN} {
		b.Run(f.(Locale).Name(), func(b *testing.B) {
			var buf Buffer
			b.ReportAllocs()
			i := 0
			for b.Loop() {
				buf.WriteFloat64(values[i&1023], f)
				i++
			}
		})
	}
}

func BenchmarkStrconvFloat64(b *testing.B) {
	values := benchFloats()
	var dst [64]byte
	b.ReportAllocs()
	i := 0
	for b.Loop() {
		strconv.AppendFloat(dst[:0], values[i&1023], 'f', -1, 64)
		i++
	}
}

func BenchmarkWriteFloat32(b *testing.B) {
	var buf Buffer
	b.ReportAllocs()
	v := float32(1.1754944e-38)
	for b.Loop() {
		buf.WriteFloat32(v, EN)
		v *= 1.0009765
		if math.IsInf(float64(v), 0) {
			v = 1.1754944e-38
		}
	}
}
