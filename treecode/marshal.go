package treecode

import (
	"errors"

	"github.com/fxamacker/cbor/v2"
)

var ErrCodeInvalid = errors.New("encoded treecode has no sentinel bit")

// MarshalCBOR encodes the occupied words as a CBOR array. Unoccupied
// capacity is trimmed first so that value-equal codes encode
// identically, mirroring Eql and Hash.
func (tc *Treecode) MarshalCBOR() ([]byte, error) {
	end := tc.CodeLength()/WordBitCount + 1
	end = min(end, len(tc.words))
	return cbor.Marshal(tc.words[:end])
}

// UnmarshalCBOR decodes a word array produced by MarshalCBOR. A code
// with no sentinel bit set is rejected rather than allowed to violate
// the encoding invariant.
func (tc *Treecode) UnmarshalCBOR(data []byte) error {
	var words []TreecodeWord
	if err := cbor.Unmarshal(data, &words); err != nil {
		return err
	}
	if len(words) == 0 || words[len(words)-1] == 0 {
		return ErrCodeInvalid
	}
	tc.words = words
	return nil
}
