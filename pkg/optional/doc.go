// Package optional provides an immutable Optional[T] holding either a
// single value (Present) or nothing (Absent), as a disciplined
// alternative to nil references. Absence propagates through combinator
// chains without nil checks, and the zero value is Absent.
//
// Key operations:
// - Absent/Of/OfNullable/FromPtr/FromProvider: construct a value
// - IsPresent/Get/MustGet/OrElse/OrElseGet/GetOrErr: inspect and extract
// - Ptr/AsSlice: project back to nullable or container form
// - Map/FlatMap/Filter/Or: transform without unwrapping
// - IfPresent/IfAbsent: trigger side effects while chaining
//
// Values are immutable and safe to share across goroutines without
// synchronization. Contract violations (a nil reference passed to Of, a
// nil function argument, MustGet on Absent) panic with the package
// sentinel errors; absence itself always flows through return values.
package optional
