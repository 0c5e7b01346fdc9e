package numfmt

import (
	"github.com/tinywasm/fmt"
)

// Locale is a built-in Format with CLDR number symbols.
type Locale uint8

const (
	EN Locale = iota // English
	ES               // Spanish
	ZH               // Chinese
	HI               // Hindi
	AR               // Arabic
	PT               // Portuguese
	FR               // French
	DE               // German
	RU               // Russian

	// EnUSPOSIX is the POSIX "C" convention: ASCII only, no grouping.
	EnUSPOSIX
)

type localeData struct {
	code      string
	name      string
	decimal   string
	grouping  Grouping
	infinity  string
	minusSign string
	nan       string
	plusSign  string
	separator string
}

var locales = [...]localeData{
	EN: {"EN", "en", ".", Standard, "∞", "-", "NaN", "+", ","},
	ES: {"ES", "es", ",", Standard, "∞", "-", "NaN", "+", "."},
	ZH: {"ZH", "zh", ".", Standard, "∞", "-", "NaN", "+", ","},
	HI: {"HI", "hi", ".", Indian, "∞", "-", "NaN", "+", ","},
	AR: {"AR", "ar", "\u066b", Standard, "∞", "\u061c-", "ليس رقمًا", "\u061c+", "\u066c"},
	PT: {"PT", "pt", ",", Standard, "∞", "-", "NaN", "+", "."},
	FR: {"FR", "fr", ",", Standard, "∞", "-", "NaN", "+", "\u202f"},
	DE: {"DE", "de", ",", Standard, "∞", "-", "NaN", "+", "."},
	RU: {"RU", "ru", ",", Standard, "∞", "-", "не число", "+", "\u00a0"},

	EnUSPOSIX: {"EN_US_POSIX", "en-US-POSIX", ".", Posix, "INF", "-", "NaN", "+", ","},
}

// data falls back to EN for values outside the declared constants.
func (l Locale) data() *localeData {
	if int(l) < len(locales) {
		return &locales[l]
	}
	return &locales[EN]
}

// Decimal and the getters below implement Format with the CLDR data of l.
func (l Locale) Decimal() string    { return l.data().decimal }
func (l Locale) Grouping() Grouping { return l.data().grouping }
func (l Locale) Infinity() string   { return l.data().infinity }
func (l Locale) MinusSign() string  { return l.data().minusSign }
func (l Locale) NaN() string        { return l.data().nan }
func (l Locale) PlusSign() string   { return l.data().plusSign }
func (l Locale) Separator() string  { return l.data().separator }

// String returns the upper-case code, e.g. "EN".
func (l Locale) String() string {
	return l.data().code
}

// Name returns the CLDR identifier, e.g. "en" or "en-US-POSIX".
func (l Locale) Name() string {
	return l.data().name
}

// AvailableLocales lists every built-in locale in declaration order.
func AvailableLocales() []Locale {
	out := make([]Locale, len(locales))
	for i := range out {
		out[i] = Locale(i)
	}
	return out
}

// ParseLocale maps a locale name to a built-in Locale. It accepts plain
// language codes ("fr"), BCP 47 tags ("pt-BR"), POSIX names with encoding
// and modifier ("de_DE.UTF-8@euro") and the "C"/"POSIX" aliases, in any
// case. Only the language subtag selects the data.
//
// A name without a usable language code fails with ErrParseLocale; a valid
// code with no built-in data fails with ErrInvalidLocale.
func ParseLocale(name string) (Locale, error) {
	s := fmt.Convert(name).TrimSpace().ToLower().String()
	s = before(s, ".") // encoding, e.g. ".UTF-8"
	s = before(s, "@") // modifier, e.g. "@euro"

	switch s {
	case "":
		return EN, newError(ErrKindParseLocale, "empty locale name %q", name)
	case "c", "posix", "en_us_posix", "en-us-posix":
		return EnUSPOSIX, nil
	}

	code := before(before(s, "_"), "-")
	if !isLanguageCode(code) {
		return EN, newError(ErrKindParseLocale, "%q has no language code", name)
	}
	for i := range locales {
		if i != int(EnUSPOSIX) && locales[i].name == code {
			return Locale(i), nil
		}
	}
	return EN, newError(ErrKindInvalidLocale, "no built-in data for %q", name)
}

// before returns s up to the first sep, or all of s.
func before(s, sep string) string {
	if i := fmt.Index(s, sep); i >= 0 {
		return s[:i]
	}
	return s
}

// isLanguageCode reports whether s is a 2 or 3 letter ISO 639 code.
func isLanguageCode(s string) bool {
	if len(s) < 2 || len(s) > 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
