// Package infix evaluates infix arithmetic expressions.
//
// An expression is a single line of text combining floating-point literals
// with the binary operators + - * / ^, sign prefixes, and parentheses.
// Evaluation is a two-stage pipeline: Tokenize turns characters into a token
// sequence, and Evaluate reduces that sequence to a float64 with a
// shunting-yard algorithm over an operand stack and an operator stack.
// EvalString runs both stages.
//
// A + or - begins a signed number literal, rather than acting as a binary
// operator, whenever the previous token is not itself a number. One
// consequence is that "3--2" evaluates to 5: the second - starts the
// literal -2.
//
// Arithmetic follows IEEE-754 float64 semantics. Division by zero yields an
// infinity or NaN rather than an error, and ^ is math.Pow.
//
// Evaluations are independent and stateless; it is safe to evaluate
// expressions from multiple goroutines.
package infix
