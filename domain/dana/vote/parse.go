package vote

import (
	"github.com/dana-network/danad/domain/dana/model"
	"github.com/dana-network/danad/domain/dana/registry"
	"github.com/dana-network/danad/domain/dana/ruleerrors"
	"github.com/dana-network/danad/domain/dana/txscript"
	"github.com/pkg/errors"
)

// ParseSection decodes the body of a DNVT section, that is everything after
// the LOKAD ID. Any nonzero direction byte decodes as model.VoteUp.
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

	directionByte, err := stack.ConsumeU8()
	if err != nil {
		return nil, err
	}
	direction := model.VoteDown
	if directionByte != 0 {
		direction = model.VoteUp
	}

	typeByte, err := stack.ConsumeU8()
	if err != nil {
		return nil, err
	}
	voteType := model.VoteType(typeByte)
	if !voteType.IsValid() {
		return nil, errors.Wrapf(ruleerrors.ErrUnsupportedVoteType, "vote type %d", typeByte)
	}

	voteByIDLength, err := stack.ConsumeU8()
	if err != nil {
		return nil, err
	}
	var voteByID *model.Identifier
	switch voteByIDLength {
	case 0:
	case model.IdentifierSize:
		id, err := consumeIdentifier(stack)
		if err != nil {
			return nil, err
		}
		voteByID = &id
	default:
		return nil, errors.Wrapf(ruleerrors.ErrUnsupportedVoteBy,
			"voteById length is %d, while it should be 0 or %d", voteByIDLength, model.IdentifierSize)
	}

	voteFor, err := consumeIdentifier(stack)
	if err != nil {
		return nil, err
	}
	amount, err := stack.ConsumeAmount()
	if err != nil {
		return nil, err
	}

	if stack.Remaining() != 0 {
		return nil, errors.Wrapf(ruleerrors.ErrTrailingBytes, "%d bytes left after a vote", stack.Remaining())
	}

	return &model.Section{
		App:     registry.AppDanaVote,
		SubType: registry.SubTypeVote,
		Data: &model.DanaVote{
			Direction: direction,
			Type:      voteType,
			VoteFor:   voteFor,
			Amount:    amount,
			VoteByID:  voteByID,
		},
	}, nil
}

func consumeIdentifier(stack *txscript.PushStack) (model.Identifier, error) {
	idBytes, err := stack.Consume(model.IdentifierSize)
	if err != nil {
		return model.Identifier{}, err
	}
	return model.NewIdentifierFromWireBytes(idBytes)
}
