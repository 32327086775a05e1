// Package bdd compiles propositional formulas into reduced ordered binary decision diagrams.
//
// A diagram is a canonical representation of a boolean function: two formulas over the same
// variables are equivalent iff their diagrams are the same node. This gives tautology and
// contradiction checks, model counting and name-aware equivalence without enumerating
// every assignment. Variables are ordered lexicographically.
package bdd

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/crillab/proptab/prop"
	"github.com/dalzilio/rudd"
	log "github.com/sirupsen/logrus"
)

// Class is the semantic class of a formula.
type Class int

// Possible classes of a formula.
const (
	Contingent Class = iota
	Tautology
	Contradiction
)

func (c Class) String() string {
	switch c {
	case Tautology:
		return "tautology"
	case Contradiction:
		return "contradiction"
	default:
		return "contingent"
	}
}

// A Diagram is the BDD of one or more formulas sharing the same variables.
type Diagram struct {
	bdd   *rudd.BDD
	vars  []string
	root  rudd.Node
	index map[rune]int
}

// Compile returns the diagram of f.
func Compile(f *prop.Formula) (*Diagram, error) {
	d, err := newDiagram(f.Vars())
	if err != nil {
		return nil, err
	}
	if d.root, err = d.node(f); err != nil {
		return nil, err
	}
	return d, nil
}

func newDiagram(vars []string) (*Diagram, error) {
	// rudd needs at least one variable.
	varnum := len(vars)
	if varnum == 0 {
		varnum = 1
	}
	b, err := rudd.New(varnum, rudd.Nodesize(1000), rudd.Cachesize(1000))
	if err != nil {
		return nil, fmt.Errorf("could not create BDD: %v", err)
	}
	index := make(map[rune]int, len(vars))
	for i, v := range vars {
		index[rune(v[0])] = i
	}
	return &Diagram{bdd: b, vars: vars, index: index}, nil
}

// node builds the node of f in d. Every variable of f must be known by d.
func (d *Diagram) node(f *prop.Formula) (rudd.Node, error) {
	postfix, err := f.Postfix()
	if err != nil {
		return nil, err
	}
	leaf := func(t prop.Token) (rudd.Node, error) {
		switch t.Kind {
		case prop.True:
			return d.bdd.True(), nil
		case prop.False:
			return d.bdd.False(), nil
		default:
			return d.bdd.Ithvar(d.index[t.Name]), nil
		}
	}
	n, err := prop.Fold(postfix, leaf, d.bdd.Not, d.apply)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, fmt.Errorf("could not build BDD of %s", f)
	}
	log.Debugf("compiled %s into a BDD over %d variables", f, len(d.vars))
	return n, nil
}

func (d *Diagram) apply(op prop.Kind, left, right rudd.Node) rudd.Node {
	switch op {
	case prop.And:
		return d.bdd.Apply(left, right, rudd.OPand)
	case prop.Or:
		return d.bdd.Apply(left, right, rudd.OPor)
	case prop.Implies:
		return d.bdd.Apply(left, right, rudd.OPimp)
	case prop.Iff:
		return d.bdd.Apply(left, right, rudd.OPbiimp)
	default:
		panic("invalid binary operator")
	}
}

// Vars returns the variables of the diagram, in lexicographic order.
func (d *Diagram) Vars() []string { return d.vars }

// Class returns the class of the compiled formula.
func (d *Diagram) Class() Class {
	switch {
	case d.bdd.Equal(d.root, d.bdd.True()):
		return Tautology
	case d.bdd.Equal(d.root, d.bdd.False()):
		return Contradiction
	default:
		return Contingent
	}
}

// Models returns the number of assignments of the diagram's variables satisfying the formula.
func (d *Diagram) Models() *big.Int {
	res := d.bdd.Satcount(d.root)
	if len(d.vars) == 0 {
		// The placeholder variable doubles the count.
		res.Rsh(res, 1)
	}
	return res
}

// Equivalent returns true iff f and g have the same value under every assignment of their variables.
// Variables are matched by name, over the union of the variables of both formulas.
func Equivalent(f, g *prop.Formula) (bool, error) {
	seen := make(map[string]bool)
	var vars []string
	for _, v := range append(f.Vars(), g.Vars()...) {
		if !seen[v] {
			seen[v] = true
			vars = append(vars, v)
		}
	}
	sort.Strings(vars)
	d, err := newDiagram(vars)
	if err != nil {
		return false, err
	}
	n1, err := d.node(f)
	if err != nil {
		return false, err
	}
	n2, err := d.node(g)
	if err != nil {
		return false, err
	}
	return d.bdd.Equal(n1, n2), nil
}
