package nilcheck

import "reflect"

// Interface reports whether value is nil, including typed-nil values held in
// an interface (nil pointer, map, slice, chan or func).
func Interface(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)

	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// Index returns the position of the first nil element in values, or -1 when
// every element is present.
func Index[E any](values []E) int {
	for i := range values {
		if Interface(values[i]) {
			return i
		}
	}

	return -1
}
