package optional

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNilValue reports a nil reference passed where a present value or
	// a non-nil function is required.
	ErrNilValue = errors.New("optional: nil value where a present value is required")
	// ErrNilFunc reports a nil function, predicate or supplier argument.
	ErrNilFunc = errors.New("optional: nil function argument")
	// ErrAbsent reports an extraction from an absent value.
	ErrAbsent = errors.New("optional: value is absent")
)

// Optional holds either a single value (Present) or nothing (Absent).
// It is immutable; every operation returns a new value or a projection.
// The zero value is Absent. When T is comparable, Optional[T] is
// comparable too and == agrees with Equal.
type Optional[T any] struct {
	value   T
	present bool
}

// Absent returns the canonical absent value for T.
func Absent[T any]() Optional[T] {
	return Optional[T]{}
}

// Of wraps a value known to be present. It panics with ErrNilValue when
// v is a nil reference; use OfNullable to collapse nil into Absent.
func Of[T any](v T) Optional[T] {
	if isNilRef(v) {
		panic(ErrNilValue)
	}
	return Optional[T]{value: v, present: true}
}

// OfNullable wraps a possibly-nil value: a nil reference becomes Absent,
// anything else becomes Present.
func OfNullable[T any](v T) Optional[T] {
	if isNilRef(v) {
		return Absent[T]()
	}
	return Optional[T]{value: v, present: true}
}

// FromPtr converts Go's native nullable representation: nil becomes
// Absent, otherwise the pointee is captured by value.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return Absent[T]()
	}
	return Optional[T]{value: *p, present: true}
}

// IsPresent returns true if a value is held.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// IsAbsent returns true if no value is held.
func (o Optional[T]) IsAbsent() bool {
	return !o.present
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// MustGet returns the value or panics with ErrAbsent. Callers that have
// not already checked presence should prefer Get, OrElse or a combinator.
func (o Optional[T]) MustGet() T {
	if !o.present {
		panic(ErrAbsent)
	}
	return o.value
}

// OrElse returns the value if present, def otherwise. def is taken as-is,
// no nil check is applied to it.
func (o Optional[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// OrElseGet returns the value if present; otherwise it invokes supply
// exactly once and returns its result.
func (o Optional[T]) OrElseGet(supply func() T) T {
	if supply == nil {
		panic(ErrNilFunc)
	}
	if o.present {
		return o.value
	}
	return supply()
}

// GetOrErr returns the value if present; otherwise it invokes supply and
// returns the zero value together with the supplied error. This is the
// sanctioned way to convert absence into a domain error.
func (o Optional[T]) GetOrErr(supply func() error) (T, error) {
	if supply == nil {
		panic(ErrNilFunc)
	}
	if o.present {
		return o.value, nil
	}
	var zero T
	return zero, supply()
}

// Ptr is the escape hatch back to nullable form: nil when absent,
// otherwise a pointer to a copy of the value.
func (o Optional[T]) Ptr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

// AsSlice projects the value into a zero-or-one-element slice.
func (o Optional[T]) AsSlice() []T {
	if !o.present {
		return []T{}
	}
	return []T{o.value}
}

// Equal reports structural equality: both absent, or both present with
// deeply equal values.
func (o Optional[T]) Equal(other Optional[T]) bool {
	if o.present != other.present {
		return false
	}
	if !o.present {
		return true
	}
	return reflect.DeepEqual(o.value, other.value)
}

func (o Optional[T]) String() string {
	if !o.present {
		return "Absent"
	}
	return fmt.Sprintf("Present[%v]", o.value)
}
