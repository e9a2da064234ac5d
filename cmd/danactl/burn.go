package main

import (
	"io"

	"github.com/dana-network/danad/domain/dana/identity"
)

func burn(conf *burnConfig, out io.Writer) error {
	section, err := identity.IDBurn(conf.Version, conf.HandleID)
	if err != nil {
		return err
	}
	log.Debugf("Built a BURN section for %s", conf.HandleID)
	return printSection(out, section)
}
