package bf

import (
	"fmt"
	"sort"
	"strings"

	"github.com/crillab/gophersat/solver"
	"github.com/crillab/proptab/prop"
	log "github.com/sirupsen/logrus"
)

// Explain returns a minimal unsatisfiable subset of the clauses of f: a set of clauses that cannot be
// satisfied together, but can as soon as any of them is removed.
// Clauses are sorted, and nil is returned if f is satisfiable.
// Clauses are written with the variables of f; dummy variables introduced by the translation
// are named x1, x2, etc. after their index.
func Explain(f Formula) ([]string, error) {
	cnf := asCnf(f)
	switch cnf.trivial {
	case True:
		return nil, nil
	case False:
		return []string{prop.Falsum}, nil
	}
	if cnf.solve() != nil {
		return nil, nil
	}
	names := make(map[int]string, len(cnf.vars.all))
	for v, idx := range cnf.vars.all {
		if v.dummy {
			names[idx] = fmt.Sprintf("x%d", idx)
		} else {
			names[idx] = v.name
		}
	}
	core := mus(cnf.clauses)
	if len(core) == 0 {
		return nil, fmt.Errorf("could not extract unsatisfiable subset of %s", f)
	}
	res := make([]string, len(core))
	for i, clause := range core {
		lits := make([]string, len(clause))
		for j, l := range clause {
			if l < 0 {
				lits[j] = string(prop.Not.Glyph()) + names[-l]
			} else {
				lits[j] = names[l]
			}
		}
		res[i] = strings.Join(lits, string(prop.Or.Glyph()))
		if len(lits) > 1 {
			res[i] = "(" + res[i] + ")"
		}
	}
	sort.Strings(res)
	return res, nil
}

// mus extracts a minimal unsatisfiable subset of the given unsatisfiable clauses with the deletion method:
// each clause is removed in turn, and kept out if the remaining clauses are still unsatisfiable.
// A fresh solver is called once per clause.
func mus(clauses [][]int) [][]int {
	kept := append([][]int(nil), clauses...)
	for i := 0; i < len(kept); {
		rest := make([][]int, 0, len(kept)-1)
		rest = append(rest, kept[:i]...)
		rest = append(rest, kept[i+1:]...)
		if unsat(rest) {
			kept = rest
		} else {
			i++
		}
	}
	log.Debugf("kept %d clauses out of %d in unsatisfiable subset", len(kept), len(clauses))
	return kept
}

// unsat is true iff the clauses cannot be satisfied.
// Contradicting unit clauses are detected while parsing, before any search.
func unsat(clauses [][]int) bool {
	if len(clauses) == 0 {
		return false
	}
	return solver.New(solver.ParseSlice(clauses)).Solve() == solver.Unsat
}
