package treecode

import (
	"errors"
)

// TreecodeWord is the type of a single word in a Treecode. The encoding
// is width parametric; WordBitCount is the only place the width
// appears.
type TreecodeWord = uint64

const (
	// WordBitCount is the bit width of a single TreecodeWord.
	WordBitCount = 64

	// Marker is the sentinel bit pattern separating the unused zero
	// bits from the path bits.
	Marker TreecodeWord = 1
)

var (
	ErrZeroWord      = errors.New("a treecode word must contain at least the sentinel bit")
	ErrZeroFillCount = errors.New("a treecode needs at least one backing word")
)

// Branch is a single step of a path, the left or right child edge.
type Branch uint8

const (
	Left  Branch = 0
	Right Branch = 1
)

func (b Branch) String() string {
	if b == Left {
		return "left"
	}
	return "right"
}

// Treecode is a binary encoding of a path through a binary tree. See
// doc.go for the encoding. The zero value is not usable; construct
// with New, NewWord or NewFillCount.
type Treecode struct {
	words []TreecodeWord
}

// New returns the code for the empty path, which addresses the root.
func New() *Treecode {
	return &Treecode{words: []TreecodeWord{Marker}}
}

// NewWord builds a single word code from a raw packed value. The caller
// guarantees at least the sentinel bit is set; a zero word has no
// sentinel and is rejected.
func NewWord(w TreecodeWord) (*Treecode, error) {
	if w == 0 {
		return nil, ErrZeroWord
	}
	return &Treecode{words: []TreecodeWord{w}}, nil
}

// NewFillCount allocates count zeroed words and places word in the most
// significant slot. It exists to synthesize codes spanning multiple
// words without performing the equivalent appends one at a time.
func NewFillCount(count int, word TreecodeWord) (*Treecode, error) {
	if count < 1 {
		return nil, ErrZeroFillCount
	}
	if word == 0 {
		return nil, ErrZeroWord
	}
	words := make([]TreecodeWord, count)
	words[count-1] = word
	return &Treecode{words: words}, nil
}

// Clone deep-copies the code. The copy has an independent lifetime;
// mutating either side never affects the other.
func (tc *Treecode) Clone() *Treecode {
	words := make([]TreecodeWord, len(tc.words))
	copy(words, tc.words)
	return &Treecode{words: words}
}

// WordCapacity returns the number of backing words currently
// allocated. Capacity is not part of the value; Eql and Hash ignore
// it.
func (tc *Treecode) WordCapacity() int {
	return len(tc.words)
}

// Word returns the backing word at index i. Exposed for tests and for
// the dot exporter; i must be less than WordCapacity.
func (tc *Treecode) Word(i int) TreecodeWord {
	return tc.words[i]
}
