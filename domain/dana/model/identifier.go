package model

import (
	"encoding/hex"

	"github.com/dana-network/danad/domain/dana/ruleerrors"
	"github.com/pkg/errors"
)

// IdentifierSize is the size in bytes of a transaction id or identity
// handle id.
const IdentifierSize = 32

// IdentifierStringSize is the length of an identifier in its display form.
const IdentifierStringSize = IdentifierSize * 2

// Identifier is a 32-byte transaction or handle id, held in wire order.
// Like a transaction id, it is displayed with its bytes reversed.
type Identifier [IdentifierSize]byte

// NewIdentifierFromString parses the display form of an identifier. The
// string must be exactly IdentifierStringSize hex characters.
func NewIdentifierFromString(str string) (Identifier, error) {
	if len(str) != IdentifierStringSize {
		return Identifier{}, errors.Wrapf(ruleerrors.ErrHashLength,
			"identifier string length is %d, while it should be %d", len(str), IdentifierStringSize)
	}

	var reversed Identifier
	_, err := hex.Decode(reversed[:], []byte(str))
	if err != nil {
		return Identifier{}, errors.Wrapf(ruleerrors.ErrInvalidHex, "identifier %q: %s", str, err)
	}

	var id Identifier
	for i, b := range reversed {
		id[IdentifierSize-1-i] = b
	}
	return id, nil
}

// NewIdentifierFromWireBytes creates an Identifier from its wire order bytes.
func NewIdentifierFromWireBytes(wireBytes []byte) (Identifier, error) {
	if len(wireBytes) != IdentifierSize {
		return Identifier{}, errors.Wrapf(ruleerrors.ErrHashLength,
			"identifier size is %d, while it should be %d", len(wireBytes), IdentifierSize)
	}
	var id Identifier
	copy(id[:], wireBytes)
	return id, nil
}

// String returns the display form of the identifier: the hex of its bytes
// in reverse order.
func (id Identifier) String() string {
	var reversed Identifier
	for i, b := range id {
		reversed[IdentifierSize-1-i] = b
	}
	return hex.EncodeToString(reversed[:])
}

// WireBytes returns a copy of the identifier in wire order.
func (id Identifier) WireBytes() []byte {
	clone := id
	return clone[:]
}
