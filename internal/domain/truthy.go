package domain

import "reflect"

// Truthy normalizes an arbitrary value to a bool.
// nil, false, nil pointers/maps/slices/funcs/chans/interfaces and non-nil
// errors are falsy; everything else is truthy.
func Truthy(v any) bool {
	if v == nil {
		return false
	}

	switch t := v.(type) {
	case bool:
		return t
	case error:
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return !rv.IsNil()
	}

	return true
}

// IsBoolean reports whether v is of a boolean kind, including named bool types
func IsBoolean(v any) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v).Kind() == reflect.Bool
}
