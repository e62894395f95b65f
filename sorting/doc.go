// SPDX-License-Identifier: MIT

// Package sorting implements the classic comparison sorts over any indexed
// Sequence, *vector.Vector[T] included.
//
// What:
//
//   - Selection  O(n²) compares, n swaps, not stable
//   - Insertion  O(n²) worst, O(n) on sorted input, stable
//   - Shell      Knuth gaps 1, 4, 13, 40, ..., not stable
//   - Merge      top-down, O(n log n), O(n) auxiliary vector, stable
//   - Quick      deterministic shuffle then two-way partition, O(n log n) expected
//
// Each algorithm takes a strict less predicate; the Ordered* variants use
// the natural order of constraints.Ordered types.
//
// Determinism:
//
// Quick shuffles with a math/rand source seeded from Options.Seed. Seed 0
// selects a fixed default, so equal inputs and options always produce the
// same sequence of swaps.
//
// Errors:
//
//   - ErrNilSequence for a nil sequence or nil predicate.
//   - Merge additionally propagates allocation errors of its auxiliary
//     vector; the sequence is left unmodified in that case.
package sorting
