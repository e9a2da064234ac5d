package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dana-network/danad/infrastructure/logger"
	"github.com/dana-network/danad/util/panics"
	"github.com/dana-network/danad/version"
	"github.com/pkg/errors"
)

func main() {
	defer panics.HandlePanic(log)

	subCmd, conf := parseCommandLine()

	err := runCommand(subCmd, conf, os.Stdout)

	logger.BackendLog.Close()
	if err != nil {
		printErrorAndExit(err)
	}
}

func runCommand(subCmd string, conf interface{}, out io.Writer) error {
	switch subCmd {
	case genesisSubCmd:
		return genesis(conf.(*genesisConfig), out)
	case sendSubCmd:
		return send(conf.(*sendConfig), out)
	case burnSubCmd:
		return burn(conf.(*burnConfig), out)
	case voteSubCmd:
		return castVote(conf.(*voteConfig), out)
	case decodeSubCmd:
		return decode(conf.(*decodeConfig), out)
	case versionSubCmd:
		_, err := fmt.Fprintln(out, version.Version())
		return err
	}
	return errors.Errorf("unknown sub-command '%s'", subCmd)
}

func printErrorAndExit(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}
