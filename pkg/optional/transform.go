package optional

// Map transforms the value with fn when present; Absent passes through
// without invoking fn. A nil result from fn collapses into Absent, the
// same way OfNullable treats it. Map is a free function because methods
// cannot introduce the target type parameter U.
func Map[T, U any](o Optional[T], fn func(T) U) Optional[U] {
	if fn == nil {
		panic(ErrNilFunc)
	}
	if !o.present {
		return Absent[U]()
	}
	return OfNullable(fn(o.value))
}

// FlatMap transforms the value with a function that already returns an
// Optional; the result is taken verbatim, with no nil collapsing.
func FlatMap[T, U any](o Optional[T], fn func(T) Optional[U]) Optional[U] {
	if fn == nil {
		panic(ErrNilFunc)
	}
	if !o.present {
		return Absent[U]()
	}
	return fn(o.value)
}

// Filter keeps the value only if pred holds for it; Absent passes
// through without invoking pred.
func (o Optional[T]) Filter(pred func(T) bool) Optional[T] {
	if pred == nil {
		panic(ErrNilFunc)
	}
	if !o.present {
		return o
	}
	if pred(o.value) {
		return o
	}
	return Absent[T]()
}

// Or returns o if present, second otherwise. This is the value-level
// fallback; OrElse is the raw-value one.
func (o Optional[T]) Or(second Optional[T]) Optional[T] {
	if o.present {
		return o
	}
	return second
}

// IfPresent invokes action with the value when present and returns the
// receiver for chaining.
func (o Optional[T]) IfPresent(action func(T)) Optional[T] {
	if action == nil {
		panic(ErrNilFunc)
	}
	if o.present {
		action(o.value)
	}
	return o
}

// IfAbsent invokes action when absent and returns the receiver for
// chaining. The action takes no argument, absence carries no value.
func (o Optional[T]) IfAbsent(action func()) Optional[T] {
	if action == nil {
		panic(ErrNilFunc)
	}
	if !o.present {
		action()
	}
	return o
}
