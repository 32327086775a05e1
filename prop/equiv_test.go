package prop

import "testing"

func TestEquivalent(t *testing.T) {
	tests := []struct {
		f, g     string
		expected bool
	}{
		{"A→B", "¬A∨B", true},
		{"A↔B", "(A→B)∧(B→A)", true},
		{"¬(A∧B)", "¬A∨¬B", true},
		{"A→B", "B→A", false},
		{"A∧B", "A∨B", false},
		{"A∧B", "B∧C", true}, // Variables are matched by position.
		{"A", "A∧B", false},
	}
	for _, test := range tests {
		res, err := Equivalent(New(test.f), New(test.g))
		if err != nil {
			t.Errorf("could not compare %q and %q: %v", test.f, test.g, err)
		} else if res != test.expected {
			t.Errorf("equivalence of %q and %q: expected %t, got %t", test.f, test.g, test.expected, res)
		}
	}
}

func TestEquivalentShortCircuit(t *testing.T) {
	f, g := New("A"), New("A∧B")
	if res, err := Equivalent(f, g); err != nil || res {
		t.Fatalf("expected false without error, got %t, %v", res, err)
	}
	if f.table != nil || g.table != nil {
		t.Errorf("no table should have been computed")
	}
	// Malformed formulas are not even evaluated when their sizes differ.
	if res, err := Equivalent(New("A"), New("(A∧B")); err != nil || res {
		t.Errorf("expected false without error, got %t, %v", res, err)
	}
	if _, err := Equivalent(New("A∧B"), New("(A∧B")); err == nil {
		t.Errorf("expected an error for a malformed formula")
	}
}

func TestEquivalentReflexiveSymmetric(t *testing.T) {
	exprs := []string{"(A∧B→C)∨D", "A∨¬A", "A∧¬A", "A↔B", "¬A∨B", "A→B"}
	for _, e := range exprs {
		if res, err := Equivalent(New(e), New(e)); err != nil || !res {
			t.Errorf("%q should be equivalent to itself, got %t, %v", e, res, err)
		}
		for _, e2 := range exprs {
			r1, err1 := Equivalent(New(e), New(e2))
			r2, err2 := Equivalent(New(e2), New(e))
			if err1 != nil || err2 != nil {
				t.Errorf("could not compare %q and %q: %v, %v", e, e2, err1, err2)
			} else if r1 != r2 {
				t.Errorf("equivalence of %q and %q is not symmetric", e, e2)
			}
		}
	}
}
