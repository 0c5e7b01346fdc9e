package numfmt

// Maximum byte lengths of the policy strings. Builder.Build and the config
// loader reject anything longer; the writers rely on these bounds to size
// Buffer and never check them again.
const (
	MaxDecimalLen   = 8
	MaxInfinityLen  = 128
	MaxMinusSignLen = 8
	MaxNaNLen       = 64
	MaxPlusSignLen  = 8
	MaxSeparatorLen = 8
)

// Maximum digit counts per integer width. The signed figures include one
// byte for an ASCII minus sign.
const (
	U8MaxLen   = 3
	I8MaxLen   = 4
	U16MaxLen  = 5
	I16MaxLen  = 6
	U32MaxLen  = 10
	I32MaxLen  = 11
	U64MaxLen  = 20
	I64MaxLen  = 20
	UintMaxLen = U64MaxLen
	IntMaxLen  = I64MaxLen
	U128MaxLen = 39
	I128MaxLen = 40
)

// Digit counts of the widest fully expanded binary64 values.
const (
	f64IntegralDigits = 309 // math.MaxFloat64
	f64FractionDigits = 324 // math.SmallestNonzeroFloat64
)

const (
	// Indian grouping puts (n-2)/2 separators between n digits.
	intCapacity = U128MaxLen + (U128MaxLen-2)/2*MaxSeparatorLen + MaxMinusSignLen

	// Largest finite binary64 printed in full with Indian grouping.
	floatIntegralCapacity = f64IntegralDigits + (f64IntegralDigits-2)/2*MaxSeparatorLen +
		MaxDecimalLen + 1 + MaxMinusSignLen

	// Smallest subnormal binary64: "0", the point and every fractional digit.
	floatFractionCapacity = 1 + MaxDecimalLen + f64FractionDigits + MaxMinusSignLen

	floatSpecialCapacity = MaxInfinityLen + MaxMinusSignLen

	// Capacity is the size of every Buffer: the worst case over all
	// supported kinds and every policy within the length limits above.
	Capacity = max(intCapacity, floatIntegralCapacity, floatFractionCapacity, floatSpecialCapacity)
)

// checkLen validates a policy string against its limit.
func checkLen(field, s string, limit int) error {
	if len(s) > limit {
		return newError(ErrKindCapacity, "%s is %d bytes, at most %d allowed", field, len(s), limit)
	}
	return nil
}
