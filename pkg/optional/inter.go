package optional

// Provider is the capability a foreign optional-like type must expose to
// be mirrored into an Optional: a presence check and a value accessor
// that is only meaningful while present.
type Provider[T any] interface {
	// IsPresent returns true if the foreign container holds a value
	IsPresent() bool
	// Value returns the held value; valid only when IsPresent is true
	Value() T
}

// FromProvider mirrors a foreign optional-like value: present becomes
// Present with the foreign value, absent (or a nil provider) becomes
// Absent. Validity of the foreign value is delegated to the source, so
// a nil reference from a present provider collapses into Absent.
func FromProvider[T any](p Provider[T]) Optional[T] {
	if isNilRef(p) || !p.IsPresent() {
		return Absent[T]()
	}
	return OfNullable(p.Value())
}
