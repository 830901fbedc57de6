// Package helpers holds constructor guards shared by services and adapters.
package helpers

import (
	"reflect"
	"strings"
	"time"
)

// StrPanic returns p, or panics with panicMessage when p is blank.
// Constructors use it for required strings such as bucket names and base URLs.
func StrPanic(p string, panicMessage string) string {
	if strings.TrimSpace(p) == "" {
		panic(panicMessage)
	}
	return p
}

// NilPanic returns v, or panics with panicMessage when v is nil. Typed nils count:
// a nil *Registry stored in an interface panics too.
func NilPanic[T any](v T, panicMessage string) T {
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Interface:
		if rv.IsNil() || isNilValue(rv.Elem()) {
			panic(panicMessage)
		}
	default:
		if isNilValue(rv) {
			panic(panicMessage)
		}
	}
	return v
}

func isNilValue(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// DurationOr returns d, or fallback when d is not positive.
func DurationOr(d time.Duration, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
