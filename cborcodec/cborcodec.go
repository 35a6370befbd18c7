// Package cborcodec pins the CBOR encoding and decoding options used
// everywhere a tree or code is serialized, so that equal values always
// produce identical bytes.
package cborcodec

import (
	"github.com/fxamacker/cbor/v2"
)

var (
	// EncOptions are the pinned deterministic encoding options.
	EncOptions cbor.EncOptions = cbor.CoreDetEncOptions()

	// DecOptions reject duplicate map keys rather than silently taking
	// the last value.
	DecOptions cbor.DecOptions = cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}
)

type CBORCodec struct {
	encMode cbor.EncMode
	decMode cbor.DecMode
}

func NewCBORCodec(encOpts cbor.EncOptions, decOpts cbor.DecOptions) (CBORCodec, error) {
	var err error
	c := CBORCodec{}
	if c.encMode, err = encOpts.EncMode(); err != nil {
		return CBORCodec{}, err
	}
	if c.decMode, err = decOpts.DecMode(); err != nil {
		return CBORCodec{}, err
	}
	return c, nil
}

// NewDefault returns a codec with the pinned options.
func NewDefault() (CBORCodec, error) {
	return NewCBORCodec(EncOptions, DecOptions)
}

func (c CBORCodec) MarshalCBOR(v any) ([]byte, error) {
	return c.encMode.Marshal(v)
}

func (c CBORCodec) UnmarshalInto(data []byte, v any) error {
	return c.decMode.Unmarshal(data, v)
}
