package main

import (
	"io"

	"github.com/dana-network/danad/domain/dana/identity"
	"github.com/dana-network/danad/domain/dana/model"
	"github.com/pkg/errors"
)

func genesis(conf *genesisConfig, out io.Writer) error {
	identityType, err := parseIdentityType(conf.Type)
	if err != nil {
		return err
	}
	section, err := identity.IDGenesis(conf.Version, &model.GenesisInfo{
		Name:       conf.Name,
		Namespace:  conf.Namespace,
		Type:       identityType,
		AuthPubkey: conf.AuthPubkey,
	})
	if err != nil {
		return err
	}
	log.Debugf("Built a GENESIS section for %s/%s", conf.Namespace, conf.Name)
	return printSection(out, section)
}

func parseIdentityType(identityType string) (model.IdentityType, error) {
	switch identityType {
	case model.IdentityTypeProfile.String():
		return model.IdentityTypeProfile, nil
	case model.IdentityTypePage.String():
		return model.IdentityTypePage, nil
	}
	return 0, errors.Errorf("unknown identity type %q", identityType)
}
