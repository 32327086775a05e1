package prop

// Equivalent returns true iff f and g have the same number of variables and the same truth table.
//
// Tables are compared row by row, so variables are matched by position, not by name:
// A∧B and B∧C are considered equivalent. Use bdd.Equivalent or bf.Equivalent when names matter.
// When the numbers of variables differ, no table is computed.
func Equivalent(f, g *Formula) (bool, error) {
	if f.NbVars() != g.NbVars() {
		return false, nil
	}
	t1, err := f.Table()
	if err != nil {
		return false, err
	}
	t2, err := g.Table()
	if err != nil {
		return false, err
	}
	return t1.sameRows(t2), nil
}
