package numfmt

import (
	"github.com/tinywasm/numfmt/internal/itoa"
)

// sepCursor interleaves a separator into digits written backwards.
//
// pos is the index at which the next separator must end. Before a digit is
// stored at pos, the separator is copied in ending there and the digit
// moves below it.
type sepCursor struct {
	sep  string
	pos  int
	step int
}

// newSepCursor starts a cursor for an integer part ending just before end.
// Three digits precede the first separator in both grouping styles.
func newSepCursor(f Format, end int) sepCursor {
	return sepCursor{
		sep:  f.Separator(),
		pos:  end - 4,
		step: f.Grouping().step(),
	}
}

// writeByte stores c ending just before i and returns the new start.
func (s *sepCursor) writeByte(buf []byte, i int, c byte) int {
	i--
	if i == s.pos {
		i -= len(s.sep) - 1
		copy(buf[i:], s.sep)
		s.pos -= s.step + len(s.sep) - 1
		i--
	}
	buf[i] = c
	return i
}

// writePair stores the two digits of v < 100, low digit first.
func (s *sepCursor) writePair(buf []byte, i int, v uint64) int {
	d := v << 1
	i = s.writeByte(buf, i, itoa.Pairs[d+1])
	return s.writeByte(buf, i, itoa.Pairs[d])
}

// writeUint64 writes n ending just before i, padded with zeros to at least
// width digits. It returns the new start.
func (s *sepCursor) writeUint64(buf []byte, i int, n uint64, width int) int {
	digits := 0
	for n >= 100 {
		i = s.writePair(buf, i, n%100)
		n /= 100
		digits += 2
	}
	if n >= 10 {
		i = s.writePair(buf, i, n)
		digits += 2
	} else {
		i = s.writeByte(buf, i, byte(n)+'0')
		digits++
	}
	for ; digits < width; digits++ {
		i = s.writeByte(buf, i, '0')
	}
	return i
}

// writeZeros writes n '0' digits ending just before i.
func (s *sepCursor) writeZeros(buf []byte, i, n int) int {
	for range n {
		i = s.writeByte(buf, i, '0')
	}
	return i
}
