package ir

import "testing"

func TestBoundVarShifted(t *testing.T) {
	v := NewBoundVar(2)
	got := v.Shifted(3)
	if got.DebruijnIndex != 5 {
		t.Errorf("Shifted(3) = %d, want 5", got.DebruijnIndex)
	}
}

func TestMapBinders(t *testing.T) {
	b := NewBinders([]AnonParameterKind{
		{Kind: 0}, {Kind: 1},
	}, 41)

	mapped := MapBinders(b, func(v int) string {
		if v != 41 {
			t.Fatalf("unexpected wrapped value %d", v)
		}
		return "forty-two"
	})

	if mapped.Len() != 2 {
		t.Errorf("Len() = %d, want 2", mapped.Len())
	}
	if mapped.Value != "forty-two" {
		t.Errorf("Value = %q, want %q", mapped.Value, "forty-two")
	}
}

func TestItemIdRoundTrip(t *testing.T) {
	id := NewItemId(7)
	if id.Index() != 7 {
		t.Errorf("Index() = %d, want 7", id.Index())
	}
	if id.String() != "#7" {
		t.Errorf("String() = %q, want %q", id.String(), "#7")
	}
}
