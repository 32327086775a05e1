package prop

import "strings"

// Sentinels returned when a principal normal form has no term.
const (
	Verum  = "⊤" // CNF of a tautology
	Falsum = "⊥" // DNF of a contradiction
)

// DNF returns the principal disjunctive normal form of f.
// Each row evaluating to 1 yields a minterm, in which a variable is negated iff it is assigned 0.
// If f is a contradiction, Falsum is returned.
func (f *Formula) DNF() (string, error) {
	t, err := f.Table()
	if err != nil {
		return "", err
	}
	return normalForm(t, true), nil
}

// CNF returns the principal conjunctive normal form of f.
// Each row evaluating to 0 yields a maxterm, in which a variable is negated iff it is assigned 1.
// If f is a tautology, Verum is returned.
func (f *Formula) CNF() (string, error) {
	t, err := f.Table()
	if err != nil {
		return "", err
	}
	return normalForm(t, false), nil
}

// normalForm builds the DNF (when dnf is true) or CNF of the formula whose table is t.
func normalForm(t Table, dnf bool) string {
	inner, outer := And, Or
	if !dnf {
		inner, outer = Or, And
	}
	var terms []string
	for _, row := range t.Rows {
		if row.Result() != dnf {
			continue
		}
		if len(t.Vars) == 0 { // Constant formula: its only row is enough.
			break
		}
		lits := make([]string, len(t.Vars))
		for i, v := range t.Vars {
			if row[i] == dnf {
				lits[i] = v
			} else {
				lits[i] = string(Not.Glyph()) + v
			}
		}
		terms = append(terms, "("+strings.Join(lits, string(inner.Glyph()))+")")
	}
	if len(terms) == 0 {
		if t.Results()[0] {
			return Verum
		}
		return Falsum
	}
	return strings.Join(terms, string(outer.Glyph()))
}
