package sparse

import (
	"testing"
)

type state uint32

func TestSet_Basic(t *testing.T) {
	s := NewSet[state](100)

	// Empty set
	if !s.IsEmpty() {
		t.Error("new set should be empty")
	}
	if s.Contains(0) {
		t.Error("empty set should not contain 0")
	}

	// Insert and contain
	if !s.Insert(5) {
		t.Error("first insert should return true")
	}
	if !s.Contains(5) {
		t.Error("set should contain 5 after insert")
	}
	if s.Insert(5) {
		t.Error("duplicate insert should return false")
	}
	if s.Len() != 1 {
		t.Errorf("len should be 1, got %d", s.Len())
	}

	s.Insert(10)
	s.Insert(3)
	s.Insert(7)
	if s.Len() != 4 {
		t.Errorf("len should be 4, got %d", s.Len())
	}

	s.Clear()
	if !s.IsEmpty() {
		t.Error("set should be empty after clear")
	}
	if s.Contains(5) {
		t.Error("cleared set should not contain 5")
	}
}

func TestSet_InsertionOrder(t *testing.T) {
	s := NewSet[state](100)
	s.Insert(5)
	s.Insert(2)
	s.Insert(8)
	s.Insert(1)

	expected := []state{5, 2, 8, 1}
	values := s.Values()
	if len(values) != len(expected) {
		t.Fatalf("expected %d values, got %d", len(expected), len(values))
	}
	for i, v := range values {
		if v != expected[i] {
			t.Errorf("at index %d: expected %d, got %d", i, expected[i], v)
		}
	}
}

func TestSet_CrossValidation(t *testing.T) {
	// Stale entries in sparse must not produce false positives
	s := NewSet[state](100)
	s.Insert(5)
	s.Insert(10)
	s.Clear()

	if s.Contains(5) || s.Contains(10) {
		t.Error("cleared set should not contain old values")
	}

	s.Insert(3)
	if !s.Contains(3) {
		t.Error("should contain 3")
	}
	if s.Contains(5) || s.Contains(10) {
		t.Error("should not contain old values")
	}
}

func TestSet_OutOfRange(t *testing.T) {
	s := NewSet[state](4)
	if s.Contains(4) || s.Contains(1000) {
		t.Error("out-of-range values are never members")
	}

	defer func() {
		if recover() == nil {
			t.Error("Insert beyond capacity should panic")
		}
	}()
	s.Insert(4)
}

func TestSet_AppendTo(t *testing.T) {
	s := NewSet[state](8)
	s.Insert(3)
	s.Insert(1)

	got := s.AppendTo([]state{7})
	if len(got) != 3 || got[0] != 7 || got[1] != 3 || got[2] != 1 {
		t.Errorf("AppendTo = %v, want [7 3 1]", got)
	}

	// The copy is independent of later mutations
	s.Clear()
	s.Insert(6)
	if got[1] != 3 {
		t.Error("AppendTo result aliases the set")
	}
}

func TestSet_ZeroValue(t *testing.T) {
	var s Set[state]
	if !s.IsEmpty() || s.Capacity() != 0 || s.Contains(0) {
		t.Error("zero value should be an empty set without capacity")
	}
}
