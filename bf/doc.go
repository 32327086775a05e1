// Package bf checks propositional formulas with the gophersat SAT solver.
//
// Truth tables grow exponentially with the number of variables, and they compare formulas
// position by position. This package offers the symbolic counterpart: a formula is translated
// into a generic boolean formula, then into negation normal form, and finally into an
// equisatisfiable CNF that is handed to gophersat.
//
// For example, the formula:
//
// ¬(A∧B)→C
//
// Is translated from its postfix form AB∧¬C→ into:
//
// ((A∧B)∨C)
//
// whose CNF needs one dummy variable for the nested conjunction:
//
// (A∨¬x1) ∧ (B∨¬x1) ∧ (x1∨C)
//
// The translation is polynomial in time and space. Two formulas are equivalent iff the negation
// of their biconditional is unsatisfiable; unlike prop.Equivalent, variables are matched by name.
package bf
