package main

import (
	"os"

	"github.com/dana-network/danad/infrastructure/config"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	genesisSubCmd = "genesis"
	sendSubCmd    = "send"
	burnSubCmd    = "burn"
	voteSubCmd    = "vote"
	decodeSubCmd  = "decode"
	versionSubCmd = "version"
)

type configFlags struct {
	config.LogFlags
}

type genesisConfig struct {
	Name       string `long:"name" short:"n" description:"The identity name, 1 to 32 bytes" required:"true"`
	Namespace  string `long:"namespace" short:"s" description:"The identity namespace, 1 to 32 bytes" required:"true"`
	Type       string `long:"type" short:"t" description:"The identity type" choice:"profile" choice:"page" default:"profile"`
	AuthPubkey string `long:"auth-pubkey" short:"a" description:"Optional authorization public key (encoded in hex)"`
	Version    int    `long:"version" description:"The section version" default:"0"`
	config.LogFlags
}

type sendConfig struct {
	ID          string `long:"id" short:"i" description:"The id of the transaction that created the handle" required:"true"`
	OutputIndex uint8  `long:"output-index" short:"o" description:"The output the handle is sent to" required:"true"`
	Version     int    `long:"version" description:"The section version" default:"0"`
	config.LogFlags
}

type burnConfig struct {
	HandleID string `long:"handle-id" short:"i" description:"The id of the handle to burn" required:"true"`
	Version  int    `long:"version" description:"The section version" default:"0"`
	config.LogFlags
}

type voteConfig struct {
	VoteFor   string `long:"vote-for" short:"f" description:"The id or hash being voted for" required:"true"`
	Amount    uint64 `long:"amount" short:"a" description:"The vote amount, below 2^48" required:"true"`
	Direction string `long:"direction" short:"r" description:"The vote direction" choice:"up" choice:"down" default:"up"`
	Type      string `long:"type" short:"t" description:"What vote-for refers to" choice:"id" choice:"hash" default:"id"`
	VoteByID  string `long:"vote-by-id" short:"b" description:"Optional id of the identity casting the vote"`
	Version   int    `long:"version" description:"The section version" default:"0"`
	config.LogFlags
}

type decodeConfig struct {
	Scripts     []string `long:"script" short:"s" description:"An OP_RETURN script (encoded in hex), with or without its leading OP_RETURN. May be repeated" required:"true"`
	Concurrency int      `long:"concurrency" short:"c" description:"How many scripts to decode at once" default:"4"`
	config.LogFlags
}

type versionConfig struct {
	config.LogFlags
}

func parseCommandLine() (subCommand string, conf interface{}) {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)

	genesisConf := &genesisConfig{}
	parser.AddCommand(genesisSubCmd, "Builds an identity GENESIS section",
		"Builds a DNID GENESIS section creating a new identity handle, and the OP_RETURN script carrying it", genesisConf)

	sendConf := &sendConfig{}
	parser.AddCommand(sendSubCmd, "Builds an identity SEND section",
		"Builds a DNID SEND section moving an identity handle to another output, and the OP_RETURN script carrying it", sendConf)

	burnConf := &burnConfig{}
	parser.AddCommand(burnSubCmd, "Builds an identity BURN section",
		"Builds a DNID BURN section destroying an identity handle, and the OP_RETURN script carrying it", burnConf)

	voteConf := &voteConfig{}
	parser.AddCommand(voteSubCmd, "Builds a vote section",
		"Builds a DNVT section casting a vote, and the OP_RETURN script carrying it", voteConf)

	decodeConf := &decodeConfig{}
	parser.AddCommand(decodeSubCmd, "Decodes OP_RETURN scripts",
		"Decodes the EMPP sections of OP_RETURN scripts and prints the identity and vote sections found", decodeConf)

	versionConf := &versionConfig{}
	parser.AddCommand(versionSubCmd, "Prints the danactl version",
		"Prints the danactl version", versionConf)

	_, err := parser.Parse()

	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
		return "", nil
	}

	var logFlags *config.LogFlags
	switch parser.Command.Active.Name {
	case genesisSubCmd:
		logFlags, conf = &genesisConf.LogFlags, genesisConf
	case sendSubCmd:
		logFlags, conf = &sendConf.LogFlags, sendConf
	case burnSubCmd:
		logFlags, conf = &burnConf.LogFlags, burnConf
	case voteSubCmd:
		logFlags, conf = &voteConf.LogFlags, voteConf
	case decodeSubCmd:
		logFlags, conf = &decodeConf.LogFlags, decodeConf
	case versionSubCmd:
		logFlags, conf = &versionConf.LogFlags, versionConf
	}

	combineLogFlags(logFlags, &cfg.LogFlags)
	err = logFlags.ResolveLogging()
	if err != nil {
		printErrorAndExit(err)
	}

	return parser.Command.Active.Name, conf
}

func combineLogFlags(dst, src *config.LogFlags) {
	if dst.LogDir == "" {
		dst.LogDir = src.LogDir
	}
	if dst.DebugLevel == "" {
		dst.DebugLevel = src.DebugLevel
	}
}
