package iteratable

import "testing"

func TestAddContainsSize(t *testing.T) {
	s := NewSet(1, 2, 2, 3)
	if s.Size() != 3 {
		t.Fatalf("want size 3 (dup dropped), got %d", s.Size())
	}
	for _, v := range []int{1, 2, 3} {
		if !s.Contains(v) {
			t.Errorf("want set to contain %d", v)
		}
	}
	if s.Contains(4) {
		t.Error("set should not contain 4")
	}
}

func TestGrowWhileIterating(t *testing.T) {
	s := NewSet(1)
	s.IterateOnce()
	var seen []int
	for s.Next() {
		v := s.Item()
		seen = append(seen, v)
		if v < 3 {
			s.Add(v + 1) // grows the set mid-iteration
		}
	}
	if len(seen) != 3 {
		t.Fatalf("want 3 items visited via growth, got %d: %v", len(seen), seen)
	}
}

func TestUnionAndDifference(t *testing.T) {
	a := NewSet(1, 2, 3)
	b := NewSet(2, 3, 4)
	diff := a.Difference(b)
	if diff.Size() != 1 || !diff.Contains(1) {
		t.Fatalf("want difference {1}, got %v", diff.Values())
	}
	a.Union(b)
	for _, v := range []int{1, 2, 3, 4} {
		if !a.Contains(v) {
			t.Errorf("union should contain %d", v)
		}
	}
}

func TestEquals(t *testing.T) {
	a := NewSet(1, 2, 3)
	b := NewSet(3, 2, 1)
	if !a.Equals(b) {
		t.Fatal("sets with the same members in different insertion order should be equal")
	}
	c := NewSet(1, 2)
	if a.Equals(c) {
		t.Fatal("sets of different size should not be equal")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	a := NewSet(1, 2)
	b := a.Copy()
	b.Add(3)
	if a.Contains(3) {
		t.Fatal("mutating a copy should not affect the original")
	}
}
