package optional

import "testing"

type fakeForeign[T any] struct {
	value   T
	present bool
}

func (f fakeForeign[T]) IsPresent() bool { return f.present }
func (f fakeForeign[T]) Value() T        { return f.value }

func TestFromProvider_Present(t *testing.T) {
	t.Parallel()
	o := FromProvider[int](fakeForeign[int]{value: 3, present: true})
	if o.MustGet() != 3 {
		t.Fatalf("expected 3, got: %v", o)
	}
}

func TestFromProvider_Absent(t *testing.T) {
	t.Parallel()
	o := FromProvider[int](fakeForeign[int]{present: false})
	if !o.IsAbsent() {
		t.Fatalf("expected absent, got: %v", o)
	}
}

func TestFromProvider_NilProvider(t *testing.T) {
	t.Parallel()
	if !FromProvider[int](nil).IsAbsent() {
		t.Fatalf("nil provider should be absent")
	}
	var typed *fakeForeign[int]
	if !FromProvider[int](typedProvider(typed)).IsAbsent() {
		t.Fatalf("typed-nil provider should be absent")
	}
}

// typedProvider forces a typed nil into the Provider interface.
func typedProvider(p *fakeForeign[int]) Provider[int] { return p }

func TestFromProvider_PresentNilValueCollapses(t *testing.T) {
	t.Parallel()
	// a source that claims presence but yields a nil reference is the
	// source's problem; mirroring delegates validity and stays total
	o := FromProvider[*int](fakeForeign[*int]{value: nil, present: true})
	if !o.IsAbsent() {
		t.Fatalf("nil foreign value should mirror to absent, got: %v", o)
	}
}
