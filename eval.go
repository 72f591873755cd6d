package infix

// pendingOp is an operator stack entry: an operator token together with its
// registry descriptor, or a left bracket with a zero descriptor.
type pendingOp struct {
	tok Token
	op  op
}

// Evaluate reduces a token sequence to a single value with the shunting-yard
// algorithm. Operators are applied as soon as precedence allows rather than
// being reordered into postfix first. All state is local to the call, so
// evaluating the same sequence twice yields the same result.
//
// Arithmetic follows float64 semantics: division by zero and out-of-domain
// exponentiations produce infinities or NaN, never an error.
func Evaluate(tokens []Token) (float64, error) {
	var (
		operands []float64
		pending  []pendingOp
	)
	reduce := func(p pendingOp) error {
		if len(operands) < 2 {
			return &OperandError{Col: p.tok.Pos, Operator: p.tok.Sym}
		}
		right := operands[len(operands)-1]
		left := operands[len(operands)-2]
		operands = operands[:len(operands)-2]
		operands = append(operands, p.op.eval(left, right))
		return nil
	}
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNum:
			operands = append(operands, tok.Val)
		case TokenOp:
			o, ok := lookup(tok.Sym)
			if !ok {
				return 0, &OperatorError{Col: tok.Pos, Operator: tok.Sym}
			}
			for len(pending) > 0 {
				top := pending[len(pending)-1]
				if top.tok.Kind != TokenOp || !o.reduces(top.op) {
					break
				}
				pending = pending[:len(pending)-1]
				if err := reduce(top); err != nil {
					return 0, err
				}
			}
			pending = append(pending, pendingOp{tok: tok, op: o})
		case TokenLeftBracket:
			pending = append(pending, pendingOp{tok: tok})
		case TokenRightBracket:
			for {
				if len(pending) == 0 {
					return 0, &BracketError{Col: tok.Pos}
				}
				top := pending[len(pending)-1]
				pending = pending[:len(pending)-1]
				if top.tok.Kind == TokenLeftBracket {
					break
				}
				if err := reduce(top); err != nil {
					return 0, err
				}
			}
		default:
			panic("infix: invalid token " + tok.String())
		}
	}
	for len(pending) > 0 {
		top := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if top.tok.Kind != TokenOp {
			// Only an unmatched left bracket can still be here.
			return 0, &BracketError{Col: top.tok.Pos}
		}
		if err := reduce(top); err != nil {
			return 0, err
		}
	}
	if len(operands) == 0 {
		col := 1
		if n := len(tokens); n > 0 {
			col = tokens[n-1].Pos
		}
		return 0, &EmptyExpressionError{Col: col}
	}
	return operands[0], nil
}

// EvalString is a shortcut to tokenize and evaluate a string expression.
func EvalString(src string) (float64, error) {
	toks, err := TokenizeString(src)
	if err != nil {
		return 0, err
	}
	return Evaluate(toks)
}
