package main

import (
	"io"

	"github.com/dana-network/danad/domain/dana/model"
	"github.com/dana-network/danad/domain/dana/vote"
	"github.com/pkg/errors"
)

func castVote(conf *voteConfig, out io.Writer) error {
	direction, err := parseVoteDirection(conf.Direction)
	if err != nil {
		return err
	}
	voteType, err := parseVoteType(conf.Type)
	if err != nil {
		return err
	}
	section, err := vote.DanaVote(conf.Version, direction, voteType, conf.VoteFor, conf.Amount, conf.VoteByID)
	if err != nil {
		return err
	}
	log.Debugf("Built a %s vote for %s", direction, conf.VoteFor)
	return printSection(out, section)
}

func parseVoteDirection(direction string) (model.VoteDirection, error) {
	switch direction {
	case model.VoteUp.String():
		return model.VoteUp, nil
	case model.VoteDown.String():
		return model.VoteDown, nil
	}
	return 0, errors.Errorf("unknown vote direction %q", direction)
}

func parseVoteType(voteType string) (model.VoteType, error) {
	switch voteType {
	case model.VoteTypeByID.String():
		return model.VoteTypeByID, nil
	case model.VoteTypeByHash.String():
		return model.VoteTypeByHash, nil
	}
	return 0, errors.Errorf("unknown vote type %q", voteType)
}
