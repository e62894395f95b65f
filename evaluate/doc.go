// SPDX-License-Identifier: MIT

// Package evaluate computes fully parenthesized arithmetic expressions with
// Dijkstra's two-stack algorithm.
//
// Tokens are separated by whitespace:
//
//	( 1 + ( ( 2 + 3 ) * ( 4 * 5 ) ) )
//	( ( 1 + sqrt ( 5.0 ) ) / 2.0 )
//
// "(" is skipped, operators go on an operator stack, numbers on a value
// stack, and ")" applies the most recent operator to the values it needs.
// The built-in operators are + - * / (binary) and sqrt (unary); WithOperator
// registers more. Arithmetic follows IEEE 754, so 1 / 0 is +Inf.
//
// Errors:
//
//   - ErrEmptyExpression      no tokens at all
//   - ErrInvalidToken         a token that is neither a number nor an operator
//   - ErrMalformedExpression  an operator without enough operands, a ")"
//     without an operator, or anything left over at the end
//   - ErrInvalidOperator      an operator registered with an arity other
//     than 1 or 2, without a function, or under a name that is empty,
//     contains whitespace, is a parenthesis or parses as a number
package evaluate
