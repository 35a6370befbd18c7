package treecode

import "fmt"

// IsPrefixOf reports whether tc addresses rhs itself or one of its
// ancestors: true iff tc's path is a leading subsequence of rhs's
// path. The empty (root) code is a prefix of everything, including
// itself.
func (tc *Treecode) IsPrefixOf(rhs *Treecode) bool {
	lenSelf := tc.CodeLength()

	if lenSelf == 0 {
		return true
	}

	lenRhs := rhs.CodeLength()
	if lenRhs == 0 || lenRhs < lenSelf {
		return false
	}

	if lenSelf < WordBitCount {
		return wordIsPrefixOf(tc.words[0], rhs.words[0])
	}

	// Full words below the sentinel word must match exactly; the
	// sentinel word is compared masked.
	sentinelWord := lenSelf / WordBitCount

	for i := 0; i < sentinelWord; i++ {
		if tc.words[i] != rhs.words[i] {
			return false
		}
	}

	return wordIsPrefixOf(tc.words[sentinelWord], rhs.words[sentinelWord])
}

// Eql reports value equality: same length and identical words up to
// and including the word holding the sentinel. Backing capacity is not
// part of the value.
func (tc *Treecode) Eql(rhs *Treecode) bool {
	if tc.CodeLength() != rhs.CodeLength() {
		return false
	}

	endWord := tc.CodeLength()/WordBitCount + 1
	endWord = min(endWord, len(tc.words), len(rhs.words))

	for i := 0; i < endWord; i++ {
		if tc.words[i] != rhs.words[i] {
			return false
		}
	}

	return true
}

// NextStepTowards returns the single branch taken from tc on the way
// to dest, which is the bit of dest at position CodeLength().
//
// tc must be a proper prefix of dest: a strict ancestor, never dest
// itself. At equal codes the bit at position CodeLength() is the
// sentinel, not a path step. Violating that is a bug in the caller,
// not bad input, and panics.
func (tc *Treecode) NextStepTowards(dest *Treecode) Branch {
	if tc.Eql(dest) || !tc.IsPrefixOf(dest) {
		panic(fmt.Sprintf("treecode: %v is not a proper prefix of %v", tc, dest))
	}

	selfLen := tc.CodeLength()
	word := dest.words[selfLen/WordBitCount]

	if word&(TreecodeWord(1)<<(selfLen%WordBitCount)) != 0 {
		return Right
	}
	return Left
}

// PathExists reports whether a monotonic (ancestor to descendant) path
// connects the nodes addressed by fst and snd, in either direction.
func PathExists(fst, snd *Treecode) bool {
	return fst.Eql(snd) || fst.IsPrefixOf(snd) || snd.IsPrefixOf(fst)
}
