package infix

import "math"

// Operators contains the runes which are supported binary operators.
const Operators = "+-*/^"

// op describes a supported binary operator.
type op struct {
	// eval applies the operator.
	eval func(left, right float64) float64
	// prec is the precedence rank. Higher binds tighter.
	prec int
	// right indicates right-associativity.
	right bool
}

// reduces reports whether an operator already on the stack with descriptor
// top must be applied before o is pushed.
func (o op) reduces(top op) bool {
	if o.right {
		return o.prec < top.prec
	}
	return o.prec <= top.prec
}

// lookup is the operator registry. It returns the descriptor for a symbol
// and whether the symbol is a supported operator.
func lookup(sym rune) (op, bool) {
	switch sym {
	case '+':
		return op{func(l, r float64) float64 { return l + r }, 1, false}, true
	case '-':
		return op{func(l, r float64) float64 { return l - r }, 1, false}, true
	case '*':
		return op{func(l, r float64) float64 { return l * r }, 2, false}, true
	case '/':
		return op{func(l, r float64) float64 { return l / r }, 2, false}, true
	case '^':
		return op{math.Pow, 3, true}, true
	default:
		return op{}, false
	}
}
