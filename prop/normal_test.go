package prop

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// To each formula, associate its expected DNF and CNF.
var normalForms = map[string][2]string{
	"A→B":  {"(¬A∧¬B)∨(¬A∧B)∨(A∧B)", "(¬A∨B)"},
	"A∧B":  {"(A∧B)", "(A∨B)∧(A∨¬B)∧(¬A∨B)"},
	"A∨¬A": {"(¬A)∨(A)", Verum},
	"A∧¬A": {Falsum, "(A)∧(¬A)"},
	"1":    {Verum, Verum},
	"0∧1":  {Falsum, Falsum},
}

func TestNormalForms(t *testing.T) {
	for expr, expected := range normalForms {
		f := New(expr)
		dnf, err := f.DNF()
		if err != nil {
			t.Errorf("could not compute DNF of %q: %v", expr, err)
		} else if dnf != expected[0] {
			t.Errorf("for %q, expected DNF %q, got %q", expr, expected[0], dnf)
		}
		cnf, err := f.CNF()
		if err != nil {
			t.Errorf("could not compute CNF of %q: %v", expr, err)
		} else if cnf != expected[1] {
			t.Errorf("for %q, expected CNF %q, got %q", expr, expected[1], cnf)
		}
	}
}

var roundTrip = []string{
	"(A∧B→C)∨D",
	"A↔B",
	"(A↔B)↔C",
	"¬(A∨B)→C",
	"A∧¬B",
	"A→B∧C",
	"A∨B∨C∨D",
	"¬A∧¬B∧¬C",
}

func TestDNFRoundTrip(t *testing.T) {
	for _, expr := range roundTrip {
		f := New(expr)
		tab, err := f.Table()
		if err != nil {
			t.Fatalf("could not compute table of %q: %v", expr, err)
		}
		dnf, err := f.DNF()
		if err != nil {
			t.Fatalf("could not compute DNF of %q: %v", expr, err)
		}
		tab2, err := New(dnf).Table()
		if err != nil {
			t.Errorf("could not evaluate DNF %q of %q: %v", dnf, expr, err)
		} else if diff := cmp.Diff(tab.Rows, tab2.Rows); diff != "" {
			t.Errorf("DNF %q of %q has a different table (-orig +dnf):\n%s", dnf, expr, diff)
		}
	}
}

func TestCNFRoundTrip(t *testing.T) {
	for _, expr := range roundTrip {
		f := New(expr)
		tab, err := f.Table()
		if err != nil {
			t.Fatalf("could not compute table of %q: %v", expr, err)
		}
		cnf, err := f.CNF()
		if err != nil {
			t.Fatalf("could not compute CNF of %q: %v", expr, err)
		}
		tab2, err := New(cnf).Table()
		if err != nil {
			t.Errorf("could not evaluate CNF %q of %q: %v", cnf, expr, err)
		} else if diff := cmp.Diff(tab.Rows, tab2.Rows); diff != "" {
			t.Errorf("CNF %q of %q has a different table (-orig +cnf):\n%s", cnf, expr, diff)
		}
	}
}

func TestSentinels(t *testing.T) {
	taut := New("A∨¬A")
	tab, err := taut.Table()
	if err != nil {
		t.Fatalf("could not compute table: %v", err)
	}
	if !tab.Tautology() {
		t.Errorf("A∨¬A should be a tautology")
	}
	if cnf, _ := taut.CNF(); cnf != Verum {
		t.Errorf("CNF of a tautology should be %s, got %q", Verum, cnf)
	}
	contr := New("A∧¬A")
	tab, err = contr.Table()
	if err != nil {
		t.Fatalf("could not compute table: %v", err)
	}
	if !tab.Contradiction() {
		t.Errorf("A∧¬A should be a contradiction")
	}
	if dnf, _ := contr.DNF(); dnf != Falsum {
		t.Errorf("DNF of a contradiction should be %s, got %q", Falsum, dnf)
	}
}
