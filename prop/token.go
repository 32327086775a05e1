package prop

import "strings"

// Kind is the kind of a token.
type Kind uint8

// Available kinds of tokens.
const (
	False Kind = iota // The constant 0
	True              // The constant 1
	Var               // A variable, A to Z
	LParen
	RParen
	Not
	And
	Or
	Implies
	Iff
)

// A Token is an element of a canonical expression.
// Name is only meaningful for Var tokens.
type Token struct {
	Kind Kind
	Name rune
}

// Const returns the constant token for the value b.
func Const(b bool) Token {
	if b {
		return Token{Kind: True}
	}
	return Token{Kind: False}
}

// IsOperand returns true iff t is a constant or a variable.
func (t Token) IsOperand() bool {
	return t.Kind == False || t.Kind == True || t.Kind == Var
}

// priority is the rank used when converting an expression to postfix.
// The opening parenthesis is always pushed, the closing one always pops.
func (k Kind) priority() int {
	switch k {
	case LParen:
		return 100
	case Not:
		return 5
	case And:
		return 4
	case Or:
		return 3
	case Implies:
		return 2
	case Iff:
		return 1
	case RParen:
		return -100
	default:
		return 0
	}
}

// Glyph returns the canonical symbol of the kind.
// Var has no symbol of its own and yields 0.
func (k Kind) Glyph() rune {
	switch k {
	case False:
		return '0'
	case True:
		return '1'
	case LParen:
		return '('
	case RParen:
		return ')'
	case Not:
		return '¬'
	case And:
		return '∧'
	case Or:
		return '∨'
	case Implies:
		return '→'
	case Iff:
		return '↔'
	default:
		return 0
	}
}

func (t Token) String() string {
	if t.Kind == Var {
		return string(t.Name)
	}
	return string(t.Kind.Glyph())
}

// Tokens is a sequence of tokens, either infix or postfix.
type Tokens []Token

func (ts Tokens) String() string {
	var sb strings.Builder
	for _, t := range ts {
		sb.WriteString(t.String())
	}
	return sb.String()
}

func isVar(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// Tokenize splits a canonical expression into tokens.
// It fails on any rune that does not belong to the canonical alphabet.
func Tokenize(expr string) (Tokens, error) {
	res := make(Tokens, 0, len(expr))
	pos := 0
	for _, r := range expr {
		var tok Token
		switch r {
		case '0':
			tok.Kind = False
		case '1':
			tok.Kind = True
		case '(':
			tok.Kind = LParen
		case ')':
			tok.Kind = RParen
		case '¬':
			tok.Kind = Not
		case '∧':
			tok.Kind = And
		case '∨':
			tok.Kind = Or
		case '→':
			tok.Kind = Implies
		case '↔':
			tok.Kind = Iff
		default:
			if !isVar(r) {
				return nil, malformed(expr, pos, "unexpected symbol %q", r)
			}
			tok = Token{Kind: Var, Name: r}
		}
		res = append(res, tok)
		pos++
	}
	return res, nil
}
