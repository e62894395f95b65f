// SPDX-License-Identifier: MIT

package sorting

import "math/rand"

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// shuffle applies a Fisher-Yates permutation to seq.
func shuffle[T any](seq Sequence[T], rng *rand.Rand) {
	for i := seq.Len() - 1; i > 0; i-- {
		swap(seq, i, rng.Intn(i+1))
	}
}
