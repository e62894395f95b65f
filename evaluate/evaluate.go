// SPDX-License-Identifier: MIT

package evaluate

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/jlzhjp/algorithms/stack"
)

const (
	openParen  = "("
	closeParen = ")"
)

// Evaluate returns the value of expr.
func Evaluate(expr string, opts ...Option) (float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	for name, op := range o.Operators {
		if err := validateOperator(name, op); err != nil {
			return 0, err
		}
	}

	tokens := strings.Fields(expr)
	if len(tokens) == 0 {
		return 0, ErrEmptyExpression
	}

	var ops stack.Stack[string]
	var vals stack.Stack[float64]
	for i, token := range tokens {
		if err := step(&o, &ops, &vals, i, token); err != nil {
			return 0, err
		}
	}

	if !ops.Empty() || vals.Len() != 1 {
		return 0, fmt.Errorf("%w: %d operators and %d values left over",
			ErrMalformedExpression, ops.Len(), vals.Len())
	}

	return vals.Pop(), nil
}

// validateOperator rejects operators that could never be applied: a name
// that is not a single token, a parenthesis, or a number, an arity other
// than 1 or 2, or a nil function.
func validateOperator(name string, op Operator) error {
	switch {
	case name == "" || strings.ContainsFunc(name, unicode.IsSpace):
		return fmt.Errorf("%w: name %q is not a single token", ErrInvalidOperator, name)
	case name == openParen || name == closeParen:
		return fmt.Errorf("%w: name %q is a parenthesis", ErrInvalidOperator, name)
	}
	if _, err := strconv.ParseFloat(name, 64); err == nil {
		return fmt.Errorf("%w: name %q is a number", ErrInvalidOperator, name)
	}
	if (op.Arity != 1 && op.Arity != 2) || op.Apply == nil {
		return fmt.Errorf("%w: %q with arity %d", ErrInvalidOperator, name, op.Arity)
	}

	return nil
}

// step consumes the i-th token.
func step(o *Options, ops *stack.Stack[string], vals *stack.Stack[float64], i int, token string) error {
	switch {
	case token == openParen:
		return nil
	case token == closeParen:
		return reduce(o, ops, vals, i)
	}
	if _, ok := o.Operators[token]; ok {
		return ops.Push(token)
	}
	x, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return fmt.Errorf("%w: %q at token %d", ErrInvalidToken, token, i)
	}

	return vals.Push(x)
}

// reduce applies the top operator to its operands and pushes the result.
func reduce(o *Options, ops *stack.Stack[string], vals *stack.Stack[float64], i int) error {
	name, err := ops.TryPop()
	if err != nil {
		return fmt.Errorf("%w: %q at token %d has no operator", ErrMalformedExpression, closeParen, i)
	}
	op := o.Operators[name]
	if vals.Len() < op.Arity {
		return fmt.Errorf("%w: %q needs %d operands, have %d",
			ErrMalformedExpression, name, op.Arity, vals.Len())
	}
	args := make([]float64, op.Arity)
	for k := op.Arity - 1; k >= 0; k-- {
		args[k] = vals.Pop()
	}

	return vals.Push(op.Apply(args...))
}
