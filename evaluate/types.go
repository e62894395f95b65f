// SPDX-License-Identifier: MIT

package evaluate

import (
	"errors"
	"math"
)

// Sentinel errors for expression evaluation.
var (
	// ErrEmptyExpression indicates an expression with no tokens.
	ErrEmptyExpression = errors.New("evaluate: empty expression")

	// ErrMalformedExpression indicates missing operands or operators, or
	// leftovers after the last token.
	ErrMalformedExpression = errors.New("evaluate: malformed expression")

	// ErrInvalidToken indicates a token that is neither a number nor a
	// known operator.
	ErrInvalidToken = errors.New("evaluate: invalid token")

	// ErrInvalidOperator indicates an operator registered with an
	// unsupported arity or a nil function.
	ErrInvalidOperator = errors.New("evaluate: invalid operator")
)

// Operator is a named function of Arity operands. Operands are passed in
// the order they appear in the expression.
type Operator struct {
	Arity int
	Apply func(args ...float64) float64
}

// Option configures Evaluate.
type Option func(*Options)

// Options holds the operator table used by Evaluate.
type Options struct {
	Operators map[string]Operator
}

// DefaultOptions returns the built-in operators + - * / and sqrt.
func DefaultOptions() Options {
	return Options{Operators: map[string]Operator{
		"+":    {Arity: 2, Apply: func(a ...float64) float64 { return a[0] + a[1] }},
		"-":    {Arity: 2, Apply: func(a ...float64) float64 { return a[0] - a[1] }},
		"*":    {Arity: 2, Apply: func(a ...float64) float64 { return a[0] * a[1] }},
		"/":    {Arity: 2, Apply: func(a ...float64) float64 { return a[0] / a[1] }},
		"sqrt": {Arity: 1, Apply: func(a ...float64) float64 { return math.Sqrt(a[0]) }},
	}}
}

// WithOperator registers name as an operator of the given arity, replacing
// a built-in of the same name.
func WithOperator(name string, arity int, apply func(args ...float64) float64) Option {
	return func(o *Options) {
		o.Operators[name] = Operator{Arity: arity, Apply: apply}
	}
}
