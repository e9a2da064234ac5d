package vote

import (
	"github.com/dana-network/danad/domain/dana/model"
	"github.com/dana-network/danad/domain/dana/registry"
	"github.com/dana-network/danad/domain/dana/ruleerrors"
	"github.com/dana-network/danad/domain/dana/sectionwriter"
	"github.com/pkg/errors"
)

// DanaVote builds a DNVT pushdata section. voteFor and voteByID are given in
// display form. An empty voteByID encodes as a zero-length voteById field.
func DanaVote(version int, direction model.VoteDirection, voteType model.VoteType,
	voteFor string, amount uint64, voteByID string) ([]byte, error) {

	versionByte, err := model.VersionByte(version)
	if err != nil {
		return nil, err
	}
	if !direction.IsValid() {
		return nil, errors.Wrapf(ruleerrors.ErrUnsupportedVoteDirection, "vote direction %d", uint8(direction))
	}
	if !voteType.IsValid() {
		return nil, errors.Wrapf(ruleerrors.ErrUnsupportedVoteType, "vote type %d", uint8(voteType))
	}
	voteForID, err := model.NewIdentifierFromString(voteFor)
	if err != nil {
		return nil, errors.Wrapf(ruleerrors.ErrInvalidVoteFor, "voteFor: %s", err)
	}
	var voteByIDBytes []byte
	if voteByID != "" {
		id, err := model.NewIdentifierFromString(voteByID)
		if err != nil {
			return nil, errors.Wrapf(ruleerrors.ErrInvalidVoteByID, "voteById: %s", err)
		}
		voteByIDBytes = id.WireBytes()
	}
	if amount > model.MaxAmount {
		return nil, errors.Wrapf(ruleerrors.ErrAmountRange, "amount %d is above %d", amount, uint64(model.MaxAmount))
	}

	return sectionwriter.WriteSection(func(w sectionwriter.Writer) error {
		err := w.PutBytes(registry.DanaVoteLokadID[:])
		if err != nil {
			return err
		}
		err = w.PutU8(versionByte)
		if err != nil {
			return err
		}
		err = w.PutU8(uint8(direction))
		if err != nil {
			return err
		}
		err = w.PutU8(uint8(voteType))
		if err != nil {
			return err
		}
		err = sectionwriter.PutVarBytes(w, voteByIDBytes)
		if err != nil {
			return err
		}
		err = w.PutBytes(voteForID.WireBytes())
		if err != nil {
			return err
		}
		return sectionwriter.PutAmount(w, amount)
	})
}

// Encode builds the DNVT section for vote.
func Encode(version int, vote *model.DanaVote) ([]byte, error) {
	var voteByID string
	if vote.VoteByID != nil {
		voteByID = vote.VoteByID.String()
	}
	return DanaVote(version, vote.Direction, vote.Type, vote.VoteFor.String(), vote.Amount, voteByID)
}
