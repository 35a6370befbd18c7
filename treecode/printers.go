package treecode

import (
	"fmt"
	"strings"
)

// String renders the code as binary digits, most significant occupied
// word first. Words below the one holding the sentinel are zero padded
// to the full word width so no path bits are dropped. The sentinel
// prints as the leading 1.
func (tc *Treecode) String() string {
	occupied := 0
	for i := len(tc.words); i > 0; i-- {
		if tc.words[i-1] != 0 {
			occupied = i - 1
			break
		}
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "%b", tc.words[occupied])
	for i := occupied; i > 0; i-- {
		fmt.Fprintf(&sb, "%0*b", WordBitCount, tc.words[i-1])
	}

	return sb.String()
}
