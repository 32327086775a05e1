// Package shorthand turns formulas typed with a regular keyboard into the canonical form
// expected by package prop.
//
// The following shorthands are recognized:
//
//   - "!" and "n" for a negation (¬),
//   - "^" and "a" for a conjunction (∧),
//   - a lowercase "v" for a disjunction (∨),
//   - "->" for an implication (→),
//   - "<->" for a biconditional (↔).
//
// Any other lowercase letter is a variable and is upper-cased, and whitespace is removed.
// Since "v", "a" and "n" are operators, the corresponding variables must be typed in uppercase.
// Canonical input is left unchanged.
package shorthand

import (
	"strings"
	"unicode"
)

var arrows = strings.NewReplacer("<->", "↔", "->", "→")

// Normalize returns the canonical form of the given expression.
func Normalize(raw string) string {
	expr := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	expr = arrows.Replace(expr)
	return strings.Map(func(r rune) rune {
		switch r {
		case '!', 'n':
			return '¬'
		case '^', 'a':
			return '∧'
		case 'v':
			return '∨'
		}
		if r >= 'a' && r <= 'z' {
			return unicode.ToUpper(r)
		}
		return r
	}, expr)
}
