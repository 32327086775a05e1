package prop

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVariables(t *testing.T) {
	tests := map[string][]string{
		"(A∧B→C)∨D": {"A", "B", "C", "D"},
		"Z∨A∧Z":     {"A", "Z"},
		"¬(¬A)":     {"A"},
		"1∨0":       nil,
		"":          nil,
	}
	for expr, expected := range tests {
		if diff := cmp.Diff(expected, Variables(expr)); diff != "" {
			t.Errorf("variables of %q differ (-want +got):\n%s", expr, diff)
		}
	}
}

func TestTableShape(t *testing.T) {
	exprs := []string{"1", "A", "A∨B", "A∨B∨C", "(A∧B→C)∨D", "A∧B∧C∧D∧E"}
	for n, expr := range exprs {
		tab, err := New(expr).Table()
		if err != nil {
			t.Errorf("could not compute table of %q: %v", expr, err)
			continue
		}
		if tab.NbRows() != 1<<n {
			t.Errorf("table of %q should have %d rows, got %d", expr, 1<<n, tab.NbRows())
			continue
		}
		for i, row := range tab.Rows {
			if len(row) != n+1 {
				t.Errorf("row %d of %q should have %d columns, got %d", i, expr, n+1, len(row))
				continue
			}
			bits := ""
			for _, b := range row.Assignment() {
				if b {
					bits += "1"
				} else {
					bits += "0"
				}
			}
			if expected := fmt.Sprintf("%0*b", n, i); n > 0 && bits != expected {
				t.Errorf("row %d of %q should be assigned %s, got %s", i, expr, expected, bits)
			}
		}
	}
}

func TestTableScenario(t *testing.T) {
	f := New("(A∧B→C)∨D")
	if diff := cmp.Diff([]string{"A", "B", "C", "D"}, f.Vars()); diff != "" {
		t.Errorf("unexpected variables (-want +got):\n%s", diff)
	}
	tab, err := f.Table()
	if err != nil {
		t.Fatalf("could not compute table: %v", err)
	}
	if tab.NbRows() != 16 {
		t.Fatalf("expected 16 rows, got %d", tab.NbRows())
	}
	if !tab.Rows[0].Result() {
		t.Errorf("formula should be true when every variable is false")
	}
	// A=1, B=1, C=0, D=0 is the only falsifying assignment.
	for i, row := range tab.Rows {
		if row.Result() != (i != 12) {
			t.Errorf("unexpected result %t in row %d", row.Result(), i)
		}
	}
}

func TestTableResults(t *testing.T) {
	tests := map[string][]bool{
		"A→B": {true, true, false, true},
		"A↔B": {true, false, false, true},
		"A∧B": {false, false, false, true},
		"A∨B": {false, true, true, true},
		"¬A":  {true, false},
		"0":   {false},
	}
	for expr, expected := range tests {
		tab, err := New(expr).Table()
		if err != nil {
			t.Errorf("could not compute table of %q: %v", expr, err)
		} else if diff := cmp.Diff(expected, tab.Results()); diff != "" {
			t.Errorf("results of %q differ (-want +got):\n%s", expr, diff)
		}
	}
}

func TestTableMemoized(t *testing.T) {
	f := New("A→B∧C")
	t1, err := f.Table()
	if err != nil {
		t.Fatalf("could not compute table: %v", err)
	}
	t2, err := f.Table()
	if err != nil {
		t.Fatalf("could not compute table again: %v", err)
	}
	if &t1.Rows[0] != &t2.Rows[0] {
		t.Errorf("table was computed twice")
	}
	if diff := cmp.Diff(t1, t2); diff != "" {
		t.Errorf("tables differ (-first +second):\n%s", diff)
	}
}

func TestTableMalformed(t *testing.T) {
	for _, expr := range []string{"(A∧B", "A∧", "¬¬A", "A%B", ""} {
		f := New(expr)
		_, err := f.Table()
		var merr *MalformedExpressionError
		if !errors.As(err, &merr) {
			t.Errorf("for %q, expected a MalformedExpressionError, got %v", expr, err)
		}
		if f.table != nil {
			t.Errorf("table of %q should not be cached after a failure", expr)
		}
		if _, err := f.DNF(); err == nil {
			t.Errorf("DNF of %q should fail", expr)
		}
		if _, err := f.CNF(); err == nil {
			t.Errorf("CNF of %q should fail", expr)
		}
	}
}
