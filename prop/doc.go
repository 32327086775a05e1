// Package prop evaluates propositional formulas written over single-letter variables.
//
// A formula is given in its canonical form: variables are the uppercase letters A to Z,
// operators are the glyphs ¬ (negation), ∧ (conjunction), ∨ (disjunction), → (implication)
// and ↔ (biconditional), and parentheses group subformulas. The constants 0 and 1 are accepted too.
// No whitespace is allowed; see package shorthand for turning user input into canonical form.
//
// Evaluation never builds a syntax tree. The expression is turned into postfix notation by
// a precedence stack, then the postfix sequence is run on a small stack machine.
// For a formula with n variables, each of the 2^n assignments is substituted in turn and the
// results are gathered in a truth table, which is computed once and memoized.
//
// For instance, the following formula:
//
// (A∧B→C)∨D
//
// has the postfix form AB∧C→D∨ and a 16-row truth table, from which the principal
// disjunctive and conjunctive normal forms are derived:
//
//	f := prop.New("(A∧B→C)∨D")
//	dnf, err := f.DNF() // (¬A∧¬B∧¬C∧¬D)∨(¬A∧¬B∧¬C∧D)∨...
//
// When a formula is a contradiction, its principal DNF is the sentinel ⊥.
// When it is a tautology, its principal CNF is the sentinel ⊤.
//
// Operator priorities, from highest to lowest, are ¬, ∧, ∨, →, ↔.
// Operators of equal priority group from left to right, and the priority comparison does
// not distinguish unary from binary operators. As a result, a doubled negation must be
// parenthesized: ¬(¬A) is valid while ¬¬A is rejected as malformed.
package prop
