package prop

// ToPostfix converts an infix sequence of tokens to its postfix counterpart.
//
// Operands are output as they come. An operator is pushed on the stack when the stack is empty
// or when it has a higher priority than the top of the stack. Otherwise, every operator up to the
// nearest opening parenthesis is output before the new one is pushed, so operators of equal priority
// group from left to right. A closing parenthesis outputs every operator up to its matching
// opening parenthesis.
func ToPostfix(infix Tokens) (Tokens, error) {
	var (
		stack []Token
		out   = make(Tokens, 0, len(infix))
	)
	for i, tok := range infix {
		switch {
		case tok.IsOperand():
			out = append(out, tok)
		case tok.Kind == RParen:
			for {
				if len(stack) == 0 {
					return nil, malformed(infix.String(), i, "unbalanced closing parenthesis")
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == LParen {
					break
				}
				out = append(out, top)
			}
		case len(stack) == 0 || tok.Kind.priority() > stack[len(stack)-1].Kind.priority():
			stack = append(stack, tok)
		default:
			for len(stack) > 0 && stack[len(stack)-1].Kind != LParen {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.Kind == LParen {
			return nil, malformed(infix.String(), -1, "unbalanced opening parenthesis")
		}
		out = append(out, top)
		stack = stack[:len(stack)-1]
	}
	return out, nil
}

// Postfix converts the given canonical expression to postfix notation.
// For instance, "(A∧B→C)∨D" is converted to "AB∧C→D∨".
func Postfix(expr string) (string, error) {
	infix, err := Tokenize(expr)
	if err != nil {
		return "", err
	}
	post, err := ToPostfix(infix)
	if err != nil {
		return "", err
	}
	return post.String(), nil
}
