package treecode

import "math/bits"

// CodeLength returns the number of path steps encoded, which is the
// bit position of the sentinel. The root code has length 0.
//
// The length is never stored. It is derived by scanning from the most
// significant non zero word:
//
//	(WordBitCount - 1 - leadingZeros(word)) + wordIndex*WordBitCount
func (tc *Treecode) CodeLength() int {
	return codeLengthMeasured(tc.words)
}

func codeLengthMeasured(words []TreecodeWord) int {
	occupied := 0
	for i := len(words); i > 0; i-- {
		if words[i-1] != 0 {
			occupied = i - 1
			break
		}
	}

	if words[occupied] == 0 {
		// no sentinel anywhere, treat as the root
		return 0
	}

	count := WordBitCount - 1 - bits.LeadingZeros64(words[occupied])

	return count + occupied*WordBitCount
}
