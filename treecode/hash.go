package treecode

import "math/bits"

// Hash folds the occupied words, with their indices, into a single
// order sensitive value. Zero words do not contribute, so two codes of
// equal value hash identically regardless of how much backing capacity
// each happens to carry.
func (tc *Treecode) Hash() uint64 {
	var hash uint64

	for i, w := range tc.words {
		if w == 0 {
			continue
		}
		hash ^= (uint64(i) + 1) * 0x9e3779b97f4a7c15
		hash ^= w * 0xbf58476d1ce4e5b9
		hash = bits.RotateLeft64(hash, 27)
	}

	return hash
}
