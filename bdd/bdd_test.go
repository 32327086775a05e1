package bdd

import (
	"fmt"
	"testing"

	"github.com/crillab/proptab/prop"
)

var exprs = []string{
	"(A∧B→C)∨D",
	"A↔B",
	"A∨¬A",
	"A∧¬A",
	"(A→B)∧(B→C)→(A→C)",
	"¬(A∨B)↔(¬A∧¬B)",
	"1",
	"0",
	"A∧B∧C∧D∧E∧F∧G∧H",
}

func TestClassAgreesWithTable(t *testing.T) {
	for _, expr := range exprs {
		f := prop.New(expr)
		tab, err := f.Table()
		if err != nil {
			t.Fatalf("could not compute table of %q: %v", expr, err)
		}
		d, err := Compile(f)
		if err != nil {
			t.Errorf("could not compile %q: %v", expr, err)
			continue
		}
		expected := Contingent
		if tab.Tautology() {
			expected = Tautology
		} else if tab.Contradiction() {
			expected = Contradiction
		}
		if d.Class() != expected {
			t.Errorf("for %q, expected class %s, got %s", expr, expected, d.Class())
		}
		nbModels := 0
		for _, res := range tab.Results() {
			if res {
				nbModels++
			}
		}
		if got := d.Models(); got.Int64() != int64(nbModels) {
			t.Errorf("for %q, expected %d models, got %s", expr, nbModels, got)
		}
	}
}

func TestEquivalent(t *testing.T) {
	tests := []struct {
		f, g     string
		expected bool
	}{
		{"A→B", "¬A∨B", true},
		{"A∧B", "B∧C", false},
		{"A∧B", "B∧A", true},
		{"A∨¬A", "B∨¬B", true},
		{"A", "A∧(B∨¬B)", true},
		{"A→B", "B→A", false},
	}
	for _, test := range tests {
		res, err := Equivalent(prop.New(test.f), prop.New(test.g))
		if err != nil {
			t.Errorf("could not compare %q and %q: %v", test.f, test.g, err)
		} else if res != test.expected {
			t.Errorf("equivalence of %q and %q: expected %t, got %t", test.f, test.g, test.expected, res)
		}
	}
}

func TestCompileMalformed(t *testing.T) {
	if _, err := Compile(prop.New("A∧(B")); err == nil {
		t.Errorf("malformed formula should not be compiled")
	}
	if _, err := Equivalent(prop.New("A"), prop.New("¬¬A")); err == nil {
		t.Errorf("malformed formula should not be compared")
	}
}

func ExampleCompile() {
	d, err := Compile(prop.New("(A∧B→C)∨D"))
	if err != nil {
		fmt.Printf("could not compile formula: %v", err)
		return
	}
	fmt.Printf("%s with %s models", d.Class(), d.Models())
	// Output: contingent with 15 models
}
