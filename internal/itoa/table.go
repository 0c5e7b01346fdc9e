package itoa

// Pairs holds the two ASCII digits of every value 0-99, so the digits of v
// live at Pairs[2*v : 2*v+2].
const Pairs = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// Pow10 holds 10^0 through 10^19, every power of ten that fits in a uint64.
var Pow10 = [20]uint64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
	100000000000000000,
	1000000000000000000,
	10000000000000000000,
}

// Len64 returns the number of decimal digits of v (1 for v == 0).
func Len64(v uint64) int {
	n := 1
	for n < len(Pow10) && v >= Pow10[n] {
		n++
	}
	return n
}
