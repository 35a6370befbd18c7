package treecode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringSingleWord(t *testing.T) {
	tests := []struct {
		word     TreecodeWord
		expected string
	}{
		{0x1, "1"},
		{0x3, "11"},
		{0xD, "1101"},
		{0x3B6, "1110110110"},
	}
	for _, tt := range tests {
		tc, err := NewWord(tt.word)
		require.NoError(t, err)
		require.Equal(t, tt.expected, tc.String())
	}
}

func TestStringMultiWord(t *testing.T) {
	// Lower words pad to the full word width so no path bits drop out.
	tc, err := NewFillCount(2, Marker)
	require.NoError(t, err)
	require.Equal(t, "1"+strings.Repeat("0", WordBitCount), tc.String())

	tc, err = NewFillCount(2, 0x3)
	require.NoError(t, err)
	tc.words[0] = 0x5
	require.Equal(
		t,
		"11"+strings.Repeat("0", WordBitCount-3)+"101",
		tc.String(),
	)
}

func TestStringUnaffectedByCapacity(t *testing.T) {
	tc, err := NewWord(0xD)
	require.NoError(t, err)

	grown := tc.Clone()
	grown.grow(4)

	require.Equal(t, tc.String(), grown.String())
}
