package numfmt

import (
	"github.com/tinywasm/fmt"
)

// Format is the punctuation policy consulted by every writer. Each string
// must respect its Max*Len limit; Locale and CustomFormat guarantee that,
// other implementations must do it themselves.
type Format interface {
	Decimal() string
	Grouping() Grouping
	Infinity() string
	MinusSign() string
	NaN() string
	PlusSign() string
	Separator() string
}

// Grouping selects where separators go in the integer part of a number.
type Grouping uint8

const (
	// Posix never groups digits.
	Posix Grouping = iota
	// Standard groups by thousands: 1,000,000.
	Standard
	// Indian groups the last three digits, then pairs: 10,00,000.
	Indian
)

func (g Grouping) String() string {
	switch g {
	case Standard:
		return "standard"
	case Indian:
		return "indian"
	default:
		return "posix"
	}
}

// ParseGrouping accepts the names printed by Grouping.String, in any case.
// "none" is an alias for posix.
func ParseGrouping(s string) (Grouping, error) {
	switch fmt.Convert(s).ToLower().String() {
	case "posix", "none":
		return Posix, nil
	case "standard":
		return Standard, nil
	case "indian":
		return Indian, nil
	}
	return Posix, newError(ErrKindConfig, "unknown grouping %q", s)
}

// step is the cursor distance between separator boundaries: the group
// width plus one.
func (g Grouping) step() int {
	if g == Indian {
		return 3
	}
	return 4
}

// grouped reports whether f asks for separators at all.
func grouped(f Format) bool {
	return f.Grouping() != Posix && f.Separator() != ""
}
