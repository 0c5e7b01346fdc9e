package numfmt

import (
	"github.com/tinywasm/fmt"
)

// ErrorKind classifies the failures of policy construction and parsing.
// Formatting itself never fails.
type ErrorKind uint8

const (
	_ ErrorKind = iota
	// ErrKindCapacity: a policy string is longer than its limit.
	ErrKindCapacity
	// ErrKindInvalidLocale: a well-formed locale name with no built-in data.
	ErrKindInvalidLocale
	// ErrKindParseLocale: a locale name that could not be parsed.
	ErrKindParseLocale
	// ErrKindConfig: a policy document that could not be read or decoded.
	ErrKindConfig
	// ErrKindUnsupported: a value outside the closed set of number kinds.
	ErrKindUnsupported
	// ErrKindZero: zero given where a non-zero value is required.
	ErrKindZero
)

var errorKindNames = [...]string{
	"unknown error",
	"capacity exceeded",
	"invalid locale",
	"cannot parse locale",
	"invalid configuration",
	"unsupported number kind",
	"zero value",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return errorKindNames[0]
}

// Error is returned by every fallible operation of the package.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error // underlying cause, if any
}

// Sentinels for errors.Is; they match any *Error of the same kind.
var (
	ErrCapacity      = &Error{Kind: ErrKindCapacity}
	ErrInvalidLocale = &Error{Kind: ErrKindInvalidLocale}
	ErrParseLocale   = &Error{Kind: ErrKindParseLocale}
	ErrConfig        = &Error{Kind: ErrKindConfig}
	ErrUnsupported   = &Error{Kind: ErrKindUnsupported}
	ErrZero          = &Error{Kind: ErrKindZero}
)

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func wrapError(kind ErrorKind, err error, format string, args ...any) *Error {
	e := newError(kind, format, args...)
	e.Err = err
	return e
}

func (e *Error) Error() string {
	msg := "numfmt: " + e.Kind.String()
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
