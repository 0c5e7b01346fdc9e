// Package itoa writes unsigned magnitudes as ASCII decimal digits backwards
// into a caller-owned byte slice.
//
// Every writer takes the index one past the last byte to write and returns
// the index of the first byte written. Callers size the slice for the worst
// case; running out of room panics with an index error.
package itoa

// Uint64 writes n so that it ends just before pos.
func Uint64(buf []byte, pos int, n uint64) int {
	// four digits per division
	for n >= 10000 {
		rem := n % 10000
		n /= 10000

		d1 := (rem / 100) << 1
		d2 := (rem % 100) << 1
		pos -= 4
		copy(buf[pos:pos+2], Pairs[d1:d1+2])
		copy(buf[pos+2:pos+4], Pairs[d2:d2+2])
	}

	// n <= 9999 from here, stay in native word math
	m := uint(n)
	if m >= 100 {
		d := (m % 100) << 1
		m /= 100
		pos -= 2
		copy(buf[pos:pos+2], Pairs[d:d+2])
	}

	if m < 10 {
		pos--
		buf[pos] = byte(m) + '0'
		return pos
	}
	d := m << 1
	pos -= 2
	copy(buf[pos:pos+2], Pairs[d:d+2])
	return pos
}

// Uint64Padded writes n ending just before pos, left padded with '0' to at
// least width digits.
func Uint64Padded(buf []byte, pos int, n uint64, width int) int {
	start := Uint64(buf, pos, n)
	return Zeros(buf, start, pos-width)
}

// Zeros fills buf[target:pos] with '0' and returns target. It does nothing
// when target is not below pos.
func Zeros(buf []byte, pos, target int) int {
	for pos > target {
		pos--
		buf[pos] = '0'
	}
	return pos
}
