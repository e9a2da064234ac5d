package identity

import (
	"encoding/hex"
	"unicode/utf8"

	"github.com/dana-network/danad/domain/dana/model"
	"github.com/dana-network/danad/domain/dana/registry"
	"github.com/dana-network/danad/domain/dana/ruleerrors"
	"github.com/dana-network/danad/domain/dana/sectionwriter"
	"github.com/pkg/errors"
)

// Section type tags, written as varbytes after the version byte.
var (
	genesisTag = []byte("GENESIS")
	sendTag    = []byte("SEND")
	burnTag    = []byte("BURN")
)

// IDGenesis builds a DNID GENESIS pushdata section, creating a new identity
// handle.
func IDGenesis(version int, genesisInfo *model.GenesisInfo) ([]byte, error) {
	versionByte, err := model.VersionByte(version)
	if err != nil {
		return nil, err
	}
	if !genesisInfo.Type.IsValid() {
		return nil, errors.Wrapf(ruleerrors.ErrUnsupportedType, "identity type %d", uint8(genesisInfo.Type))
	}
	err = checkLength(genesisInfo.Namespace, model.MinNamespaceLength, model.MaxNamespaceLength,
		ruleerrors.ErrNamespace, "namespace")
	if err != nil {
		return nil, err
	}
	err = checkLength(genesisInfo.Name, model.MinNameLength, model.MaxNameLength, ruleerrors.ErrName, "name")
	if err != nil {
		return nil, err
	}
	authPubkey, err := hex.DecodeString(genesisInfo.AuthPubkey)
	if err != nil {
		return nil, errors.Wrapf(ruleerrors.ErrInvalidHex, "authPubkey: %s", err)
	}

	return sectionwriter.WriteSection(func(w sectionwriter.Writer) error {
		err := writeHeader(w, versionByte, genesisTag)
		if err != nil {
			return err
		}
		err = w.PutU8(uint8(genesisInfo.Type))
		if err != nil {
			return err
		}
		err = sectionwriter.PutVarBytes(w, []byte(genesisInfo.Namespace))
		if err != nil {
			return err
		}
		err = sectionwriter.PutVarBytes(w, []byte(genesisInfo.Name))
		if err != nil {
			return err
		}
		return sectionwriter.PutVarBytes(w, authPubkey)
	})
}

// IDSend builds a DNID SEND pushdata section, moving the handle created by
// the transaction id to outputIndex.
func IDSend(version int, id string, outputIndex uint8) ([]byte, error) {
	versionByte, err := model.VersionByte(version)
	if err != nil {
		return nil, err
	}
	identifier, err := model.NewIdentifierFromString(id)
	if err != nil {
		return nil, err
	}

	return sectionwriter.WriteSection(func(w sectionwriter.Writer) error {
		err := writeHeader(w, versionByte, sendTag)
		if err != nil {
			return err
		}
		err = w.PutBytes(identifier.WireBytes())
		if err != nil {
			return err
		}
		return w.PutU8(outputIndex)
	})
}

// IDBurn builds a DNID BURN pushdata section, intentionally destroying the
// handle.
func IDBurn(version int, handleID string) ([]byte, error) {
	versionByte, err := model.VersionByte(version)
	if err != nil {
		return nil, err
	}
	identifier, err := model.NewIdentifierFromString(handleID)
	if err != nil {
		return nil, err
	}

	return sectionwriter.WriteSection(func(w sectionwriter.Writer) error {
		err := writeHeader(w, versionByte, burnTag)
		if err != nil {
			return err
		}
		return w.PutBytes(identifier.WireBytes())
	})
}

func writeHeader(w sectionwriter.Writer, version uint8, tag []byte) error {
	err := w.PutBytes(registry.DanaIDLokadID[:])
	if err != nil {
		return err
	}
	err = w.PutU8(version)
	if err != nil {
		return err
	}
	return sectionwriter.PutVarBytes(w, tag)
}

func checkLength(value string, minLength, maxLength int, ruleErr error, field string) error {
	if len(value) < minLength || len(value) > maxLength {
		return errors.Wrapf(ruleErr, "%s length is %d bytes, while it should be between %d and %d",
			field, len(value), minLength, maxLength)
	}
	if !utf8.ValidString(value) {
		return errors.Wrapf(ruleErr, "%s is not valid UTF-8", field)
	}
	return nil
}
