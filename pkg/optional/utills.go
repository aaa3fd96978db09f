package optional

import "reflect"

// isNilRef reports whether v is a nil reference of a nil-able kind,
// including a typed nil held in an interface. Values of non-nil-able
// kinds (ints, strings, structs) are never nil references.
func isNilRef(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
