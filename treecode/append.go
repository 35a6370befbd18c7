package treecode

// Append adds one path step immediately below the sentinel and
// advances the sentinel by one position. Amortized O(1): when the
// advanced sentinel would land beyond the allocated words the backing
// slice doubles, so the cost of growth is spread over many appends.
// The backing never shrinks.
//
// Appending to a code with no sentinel bit set is a caller bug and
// panics.
func (tc *Treecode) Append(branch Branch) {
	if len(tc.words) == 0 {
		panic("treecode: append to a code with no backing words")
	}

	currentLength := tc.CodeLength()
	if tc.words[currentLength/WordBitCount] == 0 {
		panic("treecode: append to a code with no sentinel")
	}

	newSentinelIndex := currentLength + 1

	// Fast path: the whole code, sentinel included, stays in word 0.
	if newSentinelIndex < WordBitCount {
		tc.words[0] = wordAppend(tc.words[0], branch)
		return
	}

	lastAllocatedIndex := len(tc.words)*WordBitCount - 1
	if newSentinelIndex > lastAllocatedIndex {
		tc.grow(len(tc.words) * 2)
	}

	newSentinelWord := newSentinelIndex / WordBitCount
	dataWord := currentLength / WordBitCount

	if newSentinelWord == dataWord {
		tc.words[newSentinelWord] = wordAppend(tc.words[newSentinelWord], branch)
		return
	}

	// The sentinel crosses into a fresh word. Write it there, then
	// overwrite the old sentinel position with the data bit.
	tc.words[newSentinelWord] = Marker
	tc.words[dataWord] = setBitInWord(tc.words[dataWord], WordBitCount-1, branch)
}

// grow reallocates the word slice to newWordCount, zero filling the
// new region. Growth is monotonic; grow is never called with a smaller
// count.
func (tc *Treecode) grow(newWordCount int) {
	words := make([]TreecodeWord, newWordCount)
	copy(words, tc.words)
	tc.words = words
}
