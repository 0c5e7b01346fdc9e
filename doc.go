// Package numfmt writes integers and floating-point numbers as
// locale-aware decimal text into a fixed-capacity Buffer without touching
// the heap.
//
// A Format supplies the punctuation: decimal point, grouping style,
// separator, minus and plus signs, and the strings used for infinity and
// NaN. Built-in Locale values cover common conventions; CustomFormat and
// Builder cover the rest, and LoadFormats reads named policies from YAML.
//
//	var buf numfmt.Buffer
//	numfmt.WriteInt(&buf, int64(-1234567), numfmt.EN) // "-1,234,567"
//	buf.WriteFloat64(0.25, numfmt.DE)                  // "0,25"
//
// Floats are printed with the shortest digit string that parses back to the
// same value and are always fully expanded; there is no exponent notation.
package numfmt
