// SPDX-License-Identifier: MIT

// Package unionfind solves dynamic connectivity over n sites numbered
// 0..n-1 with three classic strategies, all stored in a vector.Vector[int]:
//
//   - QuickFind           Find O(1), Connect O(n)
//   - QuickUnion          Find and Connect O(tree height), worst case O(n)
//   - WeightedQuickUnion  size-weighted unions with path halving,
//     near-constant amortized Find and Connect
//
// Connect(p, q) merges the component of p into the component of q: after
// it, Find(p) returns what Find(q) returned before. WeightedQuickUnion
// keeps the root of the larger tree instead, and q's on a tie. Every method
// validates its sites and returns ErrSiteOutOfRange for a site outside
// [0, Len()).
package unionfind
