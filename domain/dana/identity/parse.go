package identity

import (
	"encoding/hex"
	"unicode/utf8"

	"github.com/dana-network/danad/domain/dana/model"
	"github.com/dana-network/danad/domain/dana/registry"
	"github.com/dana-network/danad/domain/dana/ruleerrors"
	"github.com/dana-network/danad/domain/dana/sectionwriter"
	"github.com/dana-network/danad/domain/dana/txscript"
	"github.com/pkg/errors"
)

// ParseSection decodes the body of a DNID section, that is everything after
// the LOKAD ID.
func ParseSection(body []byte) (*model.Section, error) {
	stack := txscript.NewPushStack(body)

	version, err := stack.ConsumeU8()
	if err != nil {
		return nil, err
	}
	err = model.CheckParsableVersion(version)
	if err != nil {
		return nil, err
	}

	sectionType, err := stack.ConsumeVarBytes()
	if err != nil {
		return nil, err
	}

	var section *model.Section
	switch string(sectionType) {
	case string(genesisTag):
		var danaID *model.DanaID
		danaID, err = parseGenesis(stack)
		section = newSection(registry.SubTypeGenesis, danaID)

	case string(sendTag):
		var reference *model.HandleReference
		reference, err = parseHandleReference(stack, true)
		section = newSection(registry.SubTypeSend, reference)

	case string(burnTag):
		var reference *model.HandleReference
		reference, err = parseHandleReference(stack, false)
		section = newSection(registry.SubTypeBurn, reference)

	default:
		return nil, errors.Wrapf(ruleerrors.ErrUnknownSectionType, "section type %q", sectionType)
	}
	if err != nil {
		return nil, err
	}

	if stack.Remaining() != 0 {
		return nil, errors.Wrapf(ruleerrors.ErrTrailingBytes,
			"%d bytes left after a %s section", stack.Remaining(), section.SubType)
	}
	return section, nil
}

func newSection(subType string, data model.SectionData) *model.Section {
	return &model.Section{
		App:     registry.AppDanaID,
		SubType: subType,
		Data:    data,
	}
}

func parseGenesis(stack *txscript.PushStack) (*model.DanaID, error) {
	typeByte, err := stack.ConsumeU8()
	if err != nil {
		return nil, err
	}
	identityType := model.IdentityType(typeByte)
	if !identityType.IsValid() {
		return nil, errors.Wrapf(ruleerrors.ErrInvalidType, "identity type %d", typeByte)
	}

	namespace, err := consumeBoundedString(stack, model.MinNamespaceLength, model.MaxNamespaceLength,
		ruleerrors.ErrInvalidNamespace, "namespace")
	if err != nil {
		return nil, err
	}
	name, err := consumeBoundedString(stack, model.MinNameLength, model.MaxNameLength,
		ruleerrors.ErrInvalidName, "name")
	if err != nil {
		return nil, err
	}

	authPubkeyLength, err := stack.ConsumeU8()
	if err != nil {
		return nil, err
	}
	if authPubkeyLength > sectionwriter.MaxVarBytesLength {
		return nil, errors.Wrapf(ruleerrors.ErrLength, "authPubkey length is %d", authPubkeyLength)
	}
	var authPubkey string
	if authPubkeyLength > 0 {
		authPubkeyBytes, err := stack.Consume(int(authPubkeyLength))
		if err != nil {
			return nil, err
		}
		authPubkey = hex.EncodeToString(authPubkeyBytes)
	}

	return &model.DanaID{
		Namespace:  namespace,
		Name:       name,
		Type:       identityType,
		AuthPubkey: authPubkey,
	}, nil
}

func parseHandleReference(stack *txscript.PushStack, hasOutputIndex bool) (*model.HandleReference, error) {
	idBytes, err := stack.Consume(model.IdentifierSize)
	if err != nil {
		return nil, err
	}
	id, err := model.NewIdentifierFromWireBytes(idBytes)
	if err != nil {
		return nil, err
	}
	reference := &model.HandleReference{ID: id}

	if hasOutputIndex {
		reference.OutputIndex, err = stack.ConsumeU8()
		if err != nil {
			return nil, err
		}
	}
	return reference, nil
}

func consumeBoundedString(stack *txscript.PushStack, minLength, maxLength int,
	ruleErr error, field string) (string, error) {

	length, err := stack.ConsumeU8()
	if err != nil {
		return "", err
	}
	if int(length) < minLength || int(length) > maxLength {
		return "", errors.Wrapf(ruleErr, "%s length is %d bytes, while it should be between %d and %d",
			field, length, minLength, maxLength)
	}
	value, err := stack.Consume(int(length))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(value) {
		return "", errors.Wrapf(ruleErr, "%s is not valid UTF-8", field)
	}
	return string(value), nil
}
