package prop

// A Row is a line of a truth table: one bit per variable, followed by the value of the formula.
type Row []bool

// Assignment returns the values of the variables in r, in the order of the table's variables.
func (r Row) Assignment() []bool { return r[:len(r)-1] }

// Result returns the value of the formula for r's assignment.
func (r Row) Result() bool { return r[len(r)-1] }

// Bits returns r as a sequence of 0s and 1s.
func (r Row) Bits() []int {
	res := make([]int, len(r))
	for i, b := range r {
		if b {
			res[i] = 1
		}
	}
	return res
}

// A Table is the truth table of a formula.
// For a formula with n variables, it has 2^n rows. Row i assigns its variables the n-bit binary
// representation of i, the first variable being the most significant bit.
// A Table is shared by all the callers asking for it and must not be modified.
type Table struct {
	Vars []string // Variables, in lexicographic order
	Expr string   // Canonical expression the table was computed for
	Rows []Row
}

// NbRows returns the number of rows in t.
func (t Table) NbRows() int { return len(t.Rows) }

// Results returns the last column of t.
func (t Table) Results() []bool {
	res := make([]bool, len(t.Rows))
	for i, row := range t.Rows {
		res[i] = row.Result()
	}
	return res
}

// Tautology returns true iff every row of t evaluates to 1.
func (t Table) Tautology() bool {
	for _, row := range t.Rows {
		if !row.Result() {
			return false
		}
	}
	return true
}

// Contradiction returns true iff every row of t evaluates to 0.
func (t Table) Contradiction() bool {
	for _, row := range t.Rows {
		if row.Result() {
			return false
		}
	}
	return true
}

// sameRows compares the rows of t and t2 position by position, ignoring variable names.
func (t Table) sameRows(t2 Table) bool {
	if len(t.Rows) != len(t2.Rows) {
		return false
	}
	for i, row := range t.Rows {
		row2 := t2.Rows[i]
		if len(row) != len(row2) {
			return false
		}
		for j := range row {
			if row[j] != row2[j] {
				return false
			}
		}
	}
	return true
}
