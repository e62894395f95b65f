// SPDX-License-Identifier: MIT

// Package stack provides Stack[T], a last-in-first-out adapter over
// vector.Vector[T]. The top of the stack is the last element of the vector;
// the stack keeps no other state.
//
// Push may fail with whatever the vector's allocator returns. Pop and Top
// panic on an empty stack; TryPop and TryTop report ErrEmptyStack instead.
//
// A Stack is not safe for concurrent use.
package stack
