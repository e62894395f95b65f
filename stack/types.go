// SPDX-License-Identifier: MIT

package stack

import "errors"

// ErrEmptyStack is returned by TryPop and TryTop on an empty stack.
var ErrEmptyStack = errors.New("stack: empty stack")
