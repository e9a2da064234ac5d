package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/dana-network/danad/domain/dana/empp"
	"github.com/dana-network/danad/domain/dana/model"
	"github.com/dana-network/danad/domain/dana/registry"
	"github.com/dana-network/danad/domain/dana/ruleerrors"
	"github.com/dana-network/danad/domain/dana/txscript"
	"github.com/pkg/errors"
)

func decode(conf *decodeConfig, out io.Writer) error {
	scripts := make([][]byte, len(conf.Scripts))
	for i, scriptHex := range conf.Scripts {
		script, err := hex.DecodeString(scriptHex)
		if err != nil {
			return errors.Wrapf(ruleerrors.ErrInvalidHex, "script %d: %s", i, err)
		}
		// A body never starts with OP_RETURN, so a leading one belongs to a
		// full output script.
		if len(script) > 0 && script[0] == txscript.OpReturn {
			script = script[1:]
		}
		scripts[i] = script
	}

	results, err := empp.ParseOpReturns(context.Background(), scripts, conf.Concurrency)
	if err != nil {
		return err
	}

	for i, result := range results {
		if len(results) > 1 {
			fmt.Fprintf(out, "Script %d:\n", i)
		}
		if len(result.Sections) == 0 && len(result.Skipped) == 0 {
			fmt.Fprintln(out, "  No EMPP sections")
		}
		for _, section := range result.Sections {
			fmt.Fprintf(out, "  %s\n", formatSection(section))
		}
		for _, skipped := range result.Skipped {
			fmt.Fprintf(out, "  %s\n", formatSkipped(skipped))
		}
	}
	return nil
}

func formatSection(section model.Section) string {
	switch data := section.Data.(type) {
	case *model.DanaID:
		authPubkey := "none"
		if data.AuthPubkey != "" {
			authPubkey = data.AuthPubkey
		}
		return fmt.Sprintf("%s %s: namespace=%s name=%s type=%s authPubkey=%s",
			section.App, section.SubType, data.Namespace, data.Name, data.Type, authPubkey)

	case *model.HandleReference:
		if section.SubType == registry.SubTypeSend {
			return fmt.Sprintf("%s %s: id=%s outputIndex=%d", section.App, section.SubType, data.ID, data.OutputIndex)
		}
		return fmt.Sprintf("%s %s: handleId=%s", section.App, section.SubType, data.ID)

	case *model.DanaVote:
		voteByID := "none"
		if data.VoteByID != nil {
			voteByID = data.VoteByID.String()
		}
		return fmt.Sprintf("%s %s: direction=%s type=%s voteFor=%s amount=%d voteById=%s",
			section.App, section.SubType, data.Direction, data.Type, data.VoteFor, data.Amount, voteByID)
	}
	return fmt.Sprintf("%s %s", section.App, section.SubType)
}

func formatSkipped(skipped empp.SkippedSection) string {
	app := skipped.App
	if app == "" {
		app = "unknown app"
	}
	if skipped.Err == nil {
		return fmt.Sprintf("skipped section %d (%s, prefix %s): not decoded", skipped.Index, app, skipped.Prefix)
	}
	return fmt.Sprintf("skipped section %d (%s, prefix %s): %s", skipped.Index, app, skipped.Prefix, skipped.Err)
}
