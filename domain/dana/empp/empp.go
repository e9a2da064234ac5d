/*
Package empp decodes OP_RETURN scripts framed with the multi-push extension
(EMPP): an OP_RESERVED marker followed by one push per application section.
Each section starts with the 4-byte LOKAD ID of the application that owns
it.

Decoding is tolerant per section. A section with an unknown prefix, a
section of an application that is known but not decoded, and a malformed
section of a known application are all left out of ParseResult.Sections
and reported in ParseResult.Skipped, and decoding moves on to the next
section. Only a script whose push structure itself is broken fails as a
whole.
*/
package empp

import (
	"encoding/hex"

	"github.com/dana-network/danad/domain/dana/identity"
	"github.com/dana-network/danad/domain/dana/model"
	"github.com/dana-network/danad/domain/dana/registry"
	"github.com/dana-network/danad/domain/dana/ruleerrors"
	"github.com/dana-network/danad/domain/dana/txscript"
	"github.com/dana-network/danad/domain/dana/vote"
	"github.com/dana-network/danad/infrastructure/logger"
	"github.com/pkg/errors"
)

type sectionParser func(body []byte) (*model.Section, error)

var sectionParsers = map[registry.LokadID]sectionParser{
	registry.DanaIDLokadID:   identity.ParseSection,
	registry.DanaVoteLokadID: vote.ParseSection,
}

// SkippedSection describes an EMPP section that did not make it into
// ParseResult.Sections.
type SkippedSection struct {
	// Index is the position of the section among the script's sections,
	// starting at 0.
	Index int
	// Prefix is the hex of the section's first bytes, at most LokadIDSize.
	Prefix string
	// App is the owning application, or empty if the prefix is unknown.
	App string
	// Err is the reason the section was skipped. It is nil for sections of
	// applications that are recognized but not decoded, such as ALP.
	Err error
}

// ParseResult holds the outcome of decoding one OP_RETURN script.
type ParseResult struct {
	// Sections holds the decoded sections in script order.
	Sections []model.Section
	Skipped  []SkippedSection
}

// ParseOpReturn decodes the body of an OP_RETURN script, that is the script
// without its leading OP_RETURN opcode. A script that is not EMPP framed
// yields an empty result.
func ParseOpReturn(script []byte) (*ParseResult, error) {
	stackArray, err := txscript.NewPushStack(script).StackArray()
	if err != nil {
		return nil, err
	}
	return ParseMultipushStack(stackArray), nil
}

// ParseOpReturnHex is ParseOpReturn for a hex encoded script body.
func ParseOpReturnHex(scriptHex string) (*ParseResult, error) {
	script, err := hex.DecodeString(scriptHex)
	if err != nil {
		return nil, errors.Wrapf(ruleerrors.ErrInvalidHex, "OP_RETURN script: %s", err)
	}
	return ParseOpReturn(script)
}

// ParseOutputScript decodes a complete output script. Scripts that do not
// start with OP_RETURN yield an empty result.
func ParseOutputScript(script []byte) (*ParseResult, error) {
	if len(script) == 0 || script[0] != txscript.OpReturn {
		return &ParseResult{}, nil
	}
	return ParseOpReturn(script[1:])
}

// ParseMultipushStack decodes the pushes of an OP_RETURN script. The pushes
// are treated as EMPP sections only if the first one is the EMPP marker.
func ParseMultipushStack(stackArray [][]byte) *ParseResult {
	result := &ParseResult{}
	if len(stackArray) == 0 || !isEmppMarker(stackArray[0]) {
		return result
	}

	for i, section := range stackArray[1:] {
		parsed, skipped := parseSection(i, section)
		if skipped != nil {
			log.Debugf("Skipping EMPP section %d with prefix %s: %s", skipped.Index, skipped.Prefix,
				logger.NewLogClosure(func() string { return skipReason(skipped) }))
			result.Skipped = append(result.Skipped, *skipped)
			continue
		}
		result.Sections = append(result.Sections, *parsed)
	}
	return result
}

func isEmppMarker(push []byte) bool {
	return len(push) == 1 && push[0] == txscript.EmppMarker
}

func parseSection(index int, section []byte) (*model.Section, *SkippedSection) {
	prefixLength := registry.LokadIDSize
	if len(section) < prefixLength {
		prefixLength = len(section)
	}
	skipped := &SkippedSection{
		Index:  index,
		Prefix: hex.EncodeToString(section[:prefixLength]),
	}

	app, ok := registry.LookupPrefix(section)
	if !ok {
		skipped.Err = errors.Wrapf(ruleerrors.ErrUnknownLokadID, "section prefix %s", skipped.Prefix)
		return nil, skipped
	}
	skipped.App = app.Name

	parse, ok := sectionParsers[app.LokadID]
	if !ok {
		return nil, skipped
	}
	parsed, err := parse(section[registry.LokadIDSize:])
	if err != nil {
		skipped.Err = errors.Wrapf(err, "%s section", app.Name)
		return nil, skipped
	}
	return parsed, nil
}

func skipReason(skipped *SkippedSection) string {
	if skipped.Err == nil {
		return skipped.App + " sections are not decoded"
	}
	return skipped.Err.Error()
}
