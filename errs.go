package infix

import "strconv"

// NumberError indicates a number literal that fails to parse. It implements
// InputError.
type NumberError struct {
	// Col is the column at which the literal starts.
	Col int
	// Text is the run of characters that was scanned as the literal.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

// OperatorError indicates an operator character outside the supported set.
// It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the character that is not a supported operator.
	Operator rune
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unsupported operator "+strconv.QuoteRune(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError indicates unbalanced parentheses, detected either while
// closing a bracket or at the end of the expression. It implements
// InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
}

func (err *BracketError) Error() string {
	return errpos(err.Col, "mismatched parenthesis")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// OperandError indicates an operator with fewer than two operands available
// when its reduction is attempted. It implements InputError.
type OperandError struct {
	// Col is the position of the starved operator.
	Col int
	// Operator is the operator that could not be applied.
	Operator rune
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "missing operands for "+strconv.QuoteRune(err.Operator))
}

func (err *OperandError) Pos() int {
	return err.Col
}

// EmptyExpressionError indicates a token sequence with nothing to evaluate.
type EmptyExpressionError struct {
	// Col is the position at which the expression ended.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "empty expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*NumberError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)
