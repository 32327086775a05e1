package prop

// Fold runs a postfix sequence on a stack machine whose values are of type T.
// Operands are turned into values by leaf, negations by not, and binary operators by binary.
// The right operand of a binary operator is popped first, then the left one.
// It fails if an operator lacks operands, if a parenthesis is met, or if the sequence does not
// reduce to exactly one value.
func Fold[T any](postfix Tokens, leaf func(Token) (T, error), not func(T) T, binary func(op Kind, left, right T) T) (T, error) {
	var (
		zero  T
		stack []T
	)
	for i, tok := range postfix {
		switch tok.Kind {
		case False, True, Var:
			v, err := leaf(tok)
			if err != nil {
				return zero, err
			}
			stack = append(stack, v)
		case Not:
			if len(stack) < 1 {
				return zero, malformed(postfix.String(), i, "missing operand for %s", tok)
			}
			stack[len(stack)-1] = not(stack[len(stack)-1])
		case And, Or, Implies, Iff:
			if len(stack) < 2 {
				return zero, malformed(postfix.String(), i, "missing operand for %s", tok)
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, binary(tok.Kind, left, right))
		default:
			return zero, malformed(postfix.String(), i, "unexpected %s in postfix expression", tok)
		}
	}
	switch len(stack) {
	case 1:
		return stack[0], nil
	case 0:
		return zero, malformed(postfix.String(), -1, "empty expression")
	default:
		return zero, malformed(postfix.String(), -1, "%d values left, missing operator", len(stack))
	}
}

// Eval evaluates a postfix sequence made of constants and operators.
func Eval(postfix Tokens) (bool, error) {
	return Fold(postfix, evalLeaf, evalNot, evalBinary)
}

func evalLeaf(t Token) (bool, error) {
	if t.Kind == Var {
		return false, &MalformedExpressionError{Expr: t.String(), Pos: -1, Reason: "variable was not assigned a value"}
	}
	return t.Kind == True, nil
}

func evalNot(b bool) bool { return !b }

func evalBinary(op Kind, left, right bool) bool {
	switch op {
	case And:
		return left && right
	case Or:
		return left || right
	case Implies:
		return !left || right
	case Iff:
		return (!left || right) && (!right || left)
	default:
		panic("invalid binary operator")
	}
}
