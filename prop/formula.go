package prop

import (
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"
)

// A Formula is a propositional formula in canonical form.
// Its truth table is computed on first request and reused afterwards.
// A Formula is not safe for concurrent use until its table has been computed.
type Formula struct {
	expr  string
	vars  []string
	table *Table
}

// New returns the formula associated with the given canonical expression.
// The expression is not checked: errors are reported when the formula is evaluated.
func New(expr string) *Formula {
	return &Formula{expr: expr, vars: Variables(expr)}
}

// Variables returns the distinct variables appearing in expr, in lexicographic order.
func Variables(expr string) []string {
	seen := make(map[rune]bool)
	var res []string
	for _, r := range expr {
		if isVar(r) && !seen[r] {
			seen[r] = true
			res = append(res, string(r))
		}
	}
	sort.Strings(res)
	return res
}

// Expr returns the canonical expression of f.
func (f *Formula) Expr() string { return f.expr }

func (f *Formula) String() string { return f.expr }

// Vars returns the variables of f, in lexicographic order.
func (f *Formula) Vars() []string {
	res := make([]string, len(f.vars))
	copy(res, f.vars)
	return res
}

// NbVars returns the number of distinct variables in f.
func (f *Formula) NbVars() int { return len(f.vars) }

// Postfix returns the postfix form of f, variables included.
func (f *Formula) Postfix() (Tokens, error) {
	infix, err := Tokenize(f.expr)
	if err != nil {
		return nil, err
	}
	return ToPostfix(infix)
}

// Table returns the truth table of f.
// It is only computed once: later calls return the same table.
// If f is malformed, an error is returned and nothing is cached.
func (f *Formula) Table() (Table, error) {
	if f.table != nil {
		return *f.table, nil
	}
	infix, err := Tokenize(f.expr)
	if err != nil {
		return Table{}, err
	}
	nbVars := len(f.vars)
	nbRows := 1 << nbVars
	log.Debugf("computing truth table of %s (%d vars, %d rows)", f.expr, nbVars, nbRows)
	index := make(map[rune]int, nbVars)
	for i, v := range f.vars {
		index[rune(v[0])] = i
	}
	rows := make([]Row, nbRows)
	assigned := make(Tokens, len(infix))
	for i := range rows {
		row := make(Row, nbVars+1)
		assign(row[:nbVars], i)
		substitute(assigned, infix, index, row)
		postfix, err := ToPostfix(assigned)
		if err != nil {
			return Table{}, fmt.Errorf("could not convert %s: %w", f.expr, err)
		}
		res, err := Eval(postfix)
		if err != nil {
			return Table{}, fmt.Errorf("could not evaluate %s: %w", f.expr, err)
		}
		row[nbVars] = res
		rows[i] = row
	}
	f.table = &Table{Vars: f.Vars(), Expr: f.expr, Rows: rows}
	return *f.table, nil
}

// assign fills bits with the binary representation of val, most significant bit first.
func assign(bits []bool, val int) {
	n := len(bits)
	for i := range bits {
		bits[i] = (val>>(n-1-i))&1 == 1
	}
}

// substitute copies infix into dst, replacing each variable with the constant it is given in values.
func substitute(dst, infix Tokens, index map[rune]int, values []bool) {
	for i, tok := range infix {
		if tok.Kind == Var {
			dst[i] = Const(values[index[tok.Name]])
		} else {
			dst[i] = tok
		}
	}
}
