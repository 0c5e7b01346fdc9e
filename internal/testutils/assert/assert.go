// Package assert holds the non-fatal test checks used across numfmt. Each
// check reports through t.Error and returns whether it passed.
package assert

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func Equal(t testing.TB, expected, actual any, msgAndArgs ...any) bool {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		msg := fmt.Sprintf("Not equal: \nexpected: %#v\nactual  : %#v", expected, actual)
		if es, ok := expected.(string); ok {
			if as, ok := actual.(string); ok {
				msg = fmt.Sprintf("Not equal: \nexpected: %q\nactual  : %q", es, as)
			}
		}
		logError(t, msg, msgAndArgs...)
		return false
	}
	return true
}

func NotEqual(t testing.TB, expected, actual any, msgAndArgs ...any) bool {
	t.Helper()
	if reflect.DeepEqual(expected, actual) {
		logError(t, fmt.Sprintf("Should not be equal: %#v", actual), msgAndArgs...)
		return false
	}
	return true
}

func NoError(t testing.TB, err error, msgAndArgs ...any) bool {
	t.Helper()
	if err != nil {
		logError(t, fmt.Sprintf("Received unexpected error:\n%+v", err), msgAndArgs...)
		return false
	}
	return true
}

func Error(t testing.TB, err error, msgAndArgs ...any) bool {
	t.Helper()
	if err == nil {
		logError(t, "An error is expected but got nil.", msgAndArgs...)
		return false
	}
	return true
}

func ErrorIs(t testing.TB, err, target error, msgAndArgs ...any) bool {
	t.Helper()
	if !errors.Is(err, target) {
		logError(t, fmt.Sprintf("Target error should be in err chain:\nexpected: %v\nin chain: %v", target, err), msgAndArgs...)
		return false
	}
	return true
}

func True(t testing.TB, value bool, msgAndArgs ...any) bool {
	t.Helper()
	if !value {
		logError(t, "Should be true", msgAndArgs...)
		return false
	}
	return true
}

func False(t testing.TB, value bool, msgAndArgs ...any) bool {
	t.Helper()
	if value {
		logError(t, "Should be false", msgAndArgs...)
		return false
	}
	return true
}

// Contains checks a substring of a string or an element of a slice.
func Contains(t testing.TB, s, contains any, msgAndArgs ...any) bool {
	t.Helper()
	ok, found := includeElement(s, contains)
	if !ok {
		logError(t, fmt.Sprintf("%#v could not be searched", s), msgAndArgs...)
		return false
	}
	if !found {
		logError(t, fmt.Sprintf("%#v does not contain %#v", s, contains), msgAndArgs...)
		return false
	}
	return true
}

func Len(t testing.TB, object any, length int, msgAndArgs ...any) bool {
	t.Helper()
	v := reflect.ValueOf(object)
	switch v.Kind() {
	case reflect.Array, reflect.Chan, reflect.Map, reflect.Slice, reflect.String:
	default:
		logError(t, fmt.Sprintf("%#v has no length", object), msgAndArgs...)
		return false
	}
	if v.Len() != length {
		logError(t, fmt.Sprintf("%#v should have %d item(s), but has %d", object, length, v.Len()), msgAndArgs...)
		return false
	}
	return true
}

func Empty(t testing.TB, object any, msgAndArgs ...any) bool {
	t.Helper()
	if !isEmpty(object) {
		logError(t, fmt.Sprintf("Should be empty, but was %#v", object), msgAndArgs...)
		return false
	}
	return true
}

func Panics(t testing.TB, f func(), msgAndArgs ...any) bool {
	t.Helper()
	if !didPanic(f) {
		logError(t, "func should panic", msgAndArgs...)
		return false
	}
	return true
}

func NotPanics(t testing.TB, f func(), msgAndArgs ...any) bool {
	t.Helper()
	if didPanic(f) {
		logError(t, "func should not panic", msgAndArgs...)
		return false
	}
	return true
}

// Helpers

func didPanic(f func()) (panicked bool) {
	defer func() {
		if recover() != nil {
			panicked = true
		}
	}()
	f()
	return false
}

func logError(t testing.TB, msg string, msgAndArgs ...any) {
	t.Helper()
	if len(msgAndArgs) == 0 {
		t.Error(msg)
		return
	}

	t.Errorf("%s\n%s", msg, messageFromMsgAndArgs(msgAndArgs))
}

// messageFromMsgAndArgs treats the first argument as a format for the rest.
// A lone non-string argument is printed with %+v.
func messageFromMsgAndArgs(msgAndArgs []any) string {
	first := msgAndArgs[0]
	format, ok := first.(string)
	if !ok {
		if len(msgAndArgs) == 1 {
			return fmt.Sprintf("%+v", first)
		}
		format = fmt.Sprintf("%+v", first)
	}
	if len(msgAndArgs) == 1 {
		return format
	}
	return fmt.Sprintf(format, msgAndArgs[1:]...)
}

func isEmpty(object any) bool {
	if object == nil {
		return true
	}
	v := reflect.ValueOf(object)
	switch v.Kind() {
	case reflect.Array, reflect.Chan, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Ptr:
		return v.IsNil() || isEmpty(v.Elem().Interface())
	}
	return v.IsZero()
}

func includeElement(list, element any) (ok, found bool) {
	if s, isString := list.(string); isString {
		sub, isSub := element.(string)
		return isSub, isSub && strings.Contains(s, sub)
	}
	v := reflect.ValueOf(list)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return false, false
	}
	for i := 0; i < v.Len(); i++ {
		if reflect.DeepEqual(v.Index(i).Interface(), element) {
			return true, true
		}
	}
	return true, false
}
