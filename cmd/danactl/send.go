package main

import (
	"io"

	"github.com/dana-network/danad/domain/dana/identity"
)

func send(conf *sendConfig, out io.Writer) error {
	section, err := identity.IDSend(conf.Version, conf.ID, conf.OutputIndex)
	if err != nil {
		return err
	}
	log.Debugf("Built a SEND section moving %s to output %d", conf.ID, conf.OutputIndex)
	return printSection(out, section)
}
