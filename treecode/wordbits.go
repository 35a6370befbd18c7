package treecode

import "math/bits"

// Single word bit helpers. These mirror the whole-code operations for
// the common case where a path fits in word 0.

// setBitInWord returns word with the bit at bitIndex forced to the
// branch value, 0 for left and 1 for right.
func setBitInWord(word TreecodeWord, bitIndex int, branch Branch) TreecodeWord {
	if branch == Right {
		return word | (TreecodeWord(1) << bitIndex)
	}
	return word &^ (TreecodeWord(1) << bitIndex)
}

// wordAppend adds one path bit to a single treecode word. The sentinel
// is found from the leading zero count, the branch bit is written at
// the vacated sentinel position and the sentinel advances by one.
//
//	wordAppend(0b101, right) == 0b1101
//	wordAppend(0b101, left)  == 0b1001
//
// If the sentinel is already at the top bit the caller is responsible
// for placing the advanced sentinel in the next word; the data bit is
// still written here.
func wordAppend(word TreecodeWord, branch Branch) TreecodeWord {
	significantBits := WordBitCount - 1 - bits.LeadingZeros64(word)

	word = setBitInWord(word, significantBits, branch)

	if significantBits == WordBitCount-1 {
		return word
	}
	return setBitInWord(word, significantBits+1, Right)
}

// wordIsPrefixOf reports whether the path encoded in lhs is a leading
// subsequence of the path in rhs, for codes that fit in one word. The
// comparison masks away rhs bits at or above lhs's sentinel so that
// rhs's extra trailing steps never affect the result.
func wordIsPrefixOf(lhs, rhs TreecodeWord) bool {
	if lhs == rhs || lhs == Marker {
		return true
	}
	if lhs == 0 || rhs == 0 {
		return false
	}

	// mask covers the bits strictly below lhs's sentinel
	lhsLeadingZeros := bits.LeadingZeros64(lhs) + 1
	mask := (TreecodeWord(1) << (WordBitCount - lhsLeadingZeros)) - 1

	return (lhs & mask) == (rhs & mask)
}
