package bf

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/crillab/gophersat/solver"
	"github.com/crillab/proptab/prop"
	log "github.com/sirupsen/logrus"
)

// A Formula is any kind of boolean formula, not necessarily in CNF.
type Formula interface {
	nnf() Formula
	String() string
	Eval(model map[string]bool) bool
}

// FromFormula translates a propositional formula into a Formula.
func FromFormula(f *prop.Formula) (Formula, error) {
	postfix, err := f.Postfix()
	if err != nil {
		return nil, err
	}
	return prop.Fold(postfix, leaf, Not, connect)
}

func leaf(t prop.Token) (Formula, error) {
	switch t.Kind {
	case prop.True:
		return True, nil
	case prop.False:
		return False, nil
	default:
		return Var(string(t.Name)), nil
	}
}

func connect(op prop.Kind, left, right Formula) Formula {
	switch op {
	case prop.And:
		return And(left, right)
	case prop.Or:
		return Or(left, right)
	case prop.Implies:
		return Implies(left, right)
	case prop.Iff:
		return Eq(left, right)
	default:
		panic("invalid binary operator")
	}
}

// Solve solves the given formula.
// f is first converted as a CNF formula. It is then given to gophersat.
// The function returns a model associating each variable name with its binding, or nil if the formula was not satisfiable.
// Variables that do not matter are bound to false.
func Solve(f Formula) map[string]bool {
	model := asCnf(f).solve()
	if model == nil {
		return nil
	}
	for name := range names(f) {
		if _, ok := model[name]; !ok {
			model[name] = false
		}
	}
	return model
}

// Satisfiable returns a model of f, or nil if f is a contradiction.
func Satisfiable(f *prop.Formula) (map[string]bool, error) {
	form, err := FromFormula(f)
	if err != nil {
		return nil, fmt.Errorf("could not translate %s: %w", f, err)
	}
	return Solve(form), nil
}

// Equivalent returns true iff f and g have the same value under every assignment of their variables.
// Variables are matched by name: a variable that only appears in one of the formulas is free in the other.
func Equivalent(f, g *prop.Formula) (bool, error) {
	f1, err := FromFormula(f)
	if err != nil {
		return false, fmt.Errorf("could not translate %s: %w", f, err)
	}
	f2, err := FromFormula(g)
	if err != nil {
		return false, fmt.Errorf("could not translate %s: %w", g, err)
	}
	return Solve(Not(Eq(f1, f2))) == nil, nil
}

// Dimacs writes the DIMACS CNF version of the formula on w.
// It is useful so as to feed it to any SAT solver.
// The names of variables are associated with their DIMACS integer counterparts
// in comments, between the prolog and the set of clauses.
// For instance, if the variable "A" is associated with the index 1, there will be a comment line
// "c A=1".
func Dimacs(f Formula, w io.Writer) error {
	cnf := asCnf(f)
	nbVars := len(cnf.vars.all)
	nbClauses := len(cnf.clauses)
	prefix := fmt.Sprintf("p cnf %d %d\n", nbVars, nbClauses)
	if _, err := io.WriteString(w, prefix); err != nil {
		return fmt.Errorf("could not write DIMACS output: %v", err)
	}
	var pbVars []string
	for v := range cnf.vars.pb {
		if !v.dummy {
			pbVars = append(pbVars, v.name)
		}
	}
	sort.Strings(pbVars)
	for _, v := range pbVars {
		idx := cnf.vars.pb[pbVar(v)]
		line := fmt.Sprintf("c %s=%d\n", v, idx)
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("could not write DIMACS output: %v", err)
		}
	}
	for _, clause := range cnf.clauses {
		strClause := make([]string, len(clause)+1)
		for i, lit := range clause {
			strClause[i] = strconv.Itoa(lit)
		}
		strClause[len(clause)] = "0"
		line := strings.Join(strClause, " ") + "\n"
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("could not write DIMACS output: %v", err)
		}
	}
	return nil
}

// The "true" constant.
type trueConst struct{}

// True is the constant denoting a tautology.
var True Formula = trueConst{}

func (t trueConst) nnf() Formula                    { return t }
func (t trueConst) String() string                  { return prop.Verum }
func (t trueConst) Eval(model map[string]bool) bool { return true }

// The "false" constant.
type falseConst struct{}

// False is the constant denoting a contradiction.
var False Formula = falseConst{}

func (f falseConst) nnf() Formula                    { return f }
func (f falseConst) String() string                  { return prop.Falsum }
func (f falseConst) Eval(model map[string]bool) bool { return false }

// Var generates a named boolean variable in a formula.
func Var(name string) Formula {
	return pbVar(name)
}

func pbVar(name string) variable {
	return variable{name: name, dummy: false}
}

func dummyVar(name string) variable {
	return variable{name: name, dummy: true}
}

type variable struct {
	name  string
	dummy bool
}

func (v variable) nnf() Formula {
	return lit{signed: false, v: v}
}

func (v variable) String() string {
	return v.name
}

func (v variable) Eval(model map[string]bool) bool {
	b, ok := model[v.name]
	if !ok {
		panic(fmt.Errorf("model lacks binding for variable %s", v.name))
	}
	return b
}

type lit struct {
	v      variable
	signed bool
}

func (l lit) nnf() Formula {
	return l
}

func (l lit) String() string {
	if l.signed {
		return "¬" + l.v.name
	}
	return l.v.name
}

func (l lit) Eval(model map[string]bool) bool {
	b := l.v.Eval(model)
	if l.signed {
		return !b
	}
	return b
}

// Not represents a negation. It negates the given subformula.
func Not(f Formula) Formula {
	return not{f}
}

type not [1]Formula

func (n not) nnf() Formula {
	switch f := n[0].(type) {
	case variable:
		l := f.nnf().(lit)
		l.signed = true
		return l
	case lit:
		f.signed = !f.signed
		return f
	case not:
		return f[0].nnf()
	case and:
		subs := make([]Formula, len(f))
		for i, sub := range f {
			subs[i] = not{sub}.nnf()
		}
		return or(subs).nnf()
	case or:
		subs := make([]Formula, len(f))
		for i, sub := range f {
			subs[i] = not{sub}.nnf()
		}
		return and(subs).nnf()
	case trueConst:
		return False
	case falseConst:
		return True
	default:
		panic("invalid formula type")
	}
}

func (n not) String() string {
	return "¬" + n[0].String()
}

func (n not) Eval(model map[string]bool) bool {
	return !n[0].Eval(model)
}

// And generates a conjunction of subformulas.
func And(subs ...Formula) Formula {
	return and(subs)
}

type and []Formula

func (a and) nnf() Formula {
	var res and
	for _, s := range a {
		nnf := s.nnf()
		switch nnf := nnf.(type) {
		case and: // Simplify: "and"s in the "and" get to the higher level
			res = append(res, nnf...)
		case trueConst: // True is ignored
		case falseConst:
			return False
		default:
			res = append(res, nnf)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	if len(res) == 0 {
		return True
	}
	return res
}

func (a and) String() string {
	return join(a, prop.And)
}

func (a and) Eval(model map[string]bool) bool {
	for _, s := range a {
		if !s.Eval(model) {
			return false
		}
	}
	return true
}

// Or generates a disjunction of subformulas.
func Or(subs ...Formula) Formula {
	return or(subs)
}

type or []Formula

func (o or) nnf() Formula {
	var res or
	for _, s := range o {
		nnf := s.nnf()
		switch nnf := nnf.(type) {
		case or: // Simplify: "or"s in the "or" get to the higher level
			res = append(res, nnf...)
		case falseConst: // False is ignored
		case trueConst:
			return True
		default:
			res = append(res, nnf)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	if len(res) == 0 {
		return False
	}
	return res
}

func (o or) String() string {
	return join(o, prop.Or)
}

func (o or) Eval(model map[string]bool) bool {
	for _, s := range o {
		if s.Eval(model) {
			return true
		}
	}
	return false
}

func join(subs []Formula, op prop.Kind) string {
	strs := make([]string, len(subs))
	for i, f := range subs {
		strs[i] = f.String()
	}
	return "(" + strings.Join(strs, string(op.Glyph())) + ")"
}

// Implies indicates a subformula implies another one.
func Implies(f1, f2 Formula) Formula {
	return or{not{f1}, f2}
}

// Eq indicates a subformula is equivalent to another one.
func Eq(f1, f2 Formula) Formula {
	return and{or{not{f1}, f2}, or{f1, not{f2}}}
}

// names returns the names of all the variables appearing in f.
func names(f Formula) map[string]struct{} {
	res := make(map[string]struct{})
	var rec func(f Formula)
	rec = func(f Formula) {
		switch f := f.(type) {
		case variable:
			res[f.name] = struct{}{}
		case lit:
			res[f.v.name] = struct{}{}
		case not:
			rec(f[0])
		case and:
			for _, sub := range f {
				rec(sub)
			}
		case or:
			for _, sub := range f {
				rec(sub)
			}
		}
	}
	rec(f)
	return res
}

// vars associate variable names with numeric indices.
type vars struct {
	all map[variable]int // all vars, including those created when converting the formula
	pb  map[variable]int // only the vars that appeared in the formula
}

// litValue returns the int value associated with the given problem var.
// If the var was not referenced yet, it is created first.
func (vars *vars) litValue(l lit) int {
	val, ok := vars.all[l.v]
	if !ok {
		val = len(vars.all) + 1
		vars.all[l.v] = val
		vars.pb[l.v] = val
	}
	if l.signed {
		return -val
	}
	return val
}

// Dummy creates a dummy variable and returns its associated index.
func (vars *vars) dummy() int {
	val := len(vars.all) + 1
	vars.all[dummyVar(fmt.Sprintf("dummy-%d", val))] = val
	return val
}

// A CNF is the representation of a boolean formula as a conjunction of disjunction.
// It can be solved by a SAT solver.
type cnf struct {
	vars    vars
	clauses [][]int
	trivial Formula // True or False when the NNF is a constant, nil otherwise
}

// solve solves the given formula.
// cnf is given to gophersat.
// If it is satisfiable, the function returns a model, associating each variable name with its binding.
// Else, the function returns nil.
func (cnf *cnf) solve() map[string]bool {
	switch cnf.trivial {
	case True:
		return make(map[string]bool)
	case False:
		return nil
	}
	if len(cnf.clauses) == 0 {
		return make(map[string]bool)
	}
	pb := solver.ParseSlice(cnf.clauses)
	s := solver.New(pb)
	if s.Solve() != solver.Sat {
		return nil
	}
	m := s.Model()
	vars := make(map[string]bool)
	for v, idx := range cnf.vars.pb {
		// A variable only found in dropped clauses is absent from the solver's model.
		vars[v.name] = idx <= len(m) && m[idx-1]
	}
	return vars
}

// simplify removes repeated literals from each clause and drops clauses containing both a literal and its negation.
// The solver expects clauses without duplicates.
func simplify(clauses [][]int) [][]int {
	res := clauses[:0]
	for _, clause := range clauses {
		seen := make(map[int]bool, len(clause))
		lits := clause[:0]
		tautology := false
		for _, lit := range clause {
			if seen[-lit] {
				tautology = true
				break
			}
			if !seen[lit] {
				seen[lit] = true
				lits = append(lits, lit)
			}
		}
		if !tautology {
			res = append(res, lits)
		}
	}
	return res
}

// asCnf returns a CNF representation of the given formula.
func asCnf(f Formula) *cnf {
	vars := vars{all: make(map[variable]int), pb: make(map[variable]int)}
	nnf := f.nnf()
	res := &cnf{vars: vars}
	switch nnf.(type) {
	case trueConst, falseConst:
		res.trivial = nnf
		if nnf == False {
			res.clauses = [][]int{{}}
		}
		return res
	}
	res.clauses = simplify(cnfRec(nnf, &res.vars))
	log.Debugf("translated %s into %d clauses over %d variables", nnf, len(res.clauses), len(res.vars.all))
	return res
}

// transforms the f NNF formula into a CNF formula.
// Nested conjunctions in a disjunction are replaced by a dummy variable implying each of their terms.
func cnfRec(f Formula, vars *vars) [][]int {
	switch f := f.(type) {
	case lit:
		return [][]int{{vars.litValue(f)}}
	case and:
		var res [][]int
		for _, sub := range f {
			res = append(res, cnfRec(sub, vars)...)
		}
		return res
	case or:
		var res [][]int
		var lits []int
		for _, sub := range f {
			switch sub := sub.(type) {
			case lit:
				lits = append(lits, vars.litValue(sub))
			case and:
				d := vars.dummy()
				lits = append(lits, d)
				for _, sub2 := range sub {
					cnf := cnfRec(sub2, vars)
					// The clause for sub2 itself comes last, after those of its own dummies.
					last := len(cnf) - 1
					cnf[last] = append(cnf[last], -d)
					res = append(res, cnf...)
				}
			default:
				panic("unexpected or in or")
			}
		}
		res = append(res, lits)
		return res
	default:
		panic("invalid NNF formula")
	}
}
