// Package registry maps the 4-byte LOKAD ID that prefixes every EMPP
// section to the application that owns it. The table is fixed at build time
// and is safe for concurrent use.
package registry

import (
	"bytes"
	"encoding/hex"
	"sort"
)

// LokadIDSize is the size of the application prefix of an EMPP section.
const LokadIDSize = 4

// LokadID is the 4-byte application prefix of an EMPP section.
type LokadID [LokadIDSize]byte

func (id LokadID) String() string {
	return hex.EncodeToString(id[:])
}

// Known LOKAD IDs.
var (
	DanaIDLokadID   = LokadID{'D', 'N', 'I', 'D'}
	DanaVoteLokadID = LokadID{'D', 'N', 'V', 'T'}
	ALPLokadID      = LokadID{'S', 'L', 'P', '2'}
)

// Application names as reported in decoded sections.
const (
	AppDanaID   = "DanaId"
	AppDanaVote = "DanaVote"
	AppALP      = "ALP"
)

// Sub-types of decoded sections.
const (
	SubTypeGenesis = "genesis"
	SubTypeSend    = "send"
	SubTypeBurn    = "burn"
	SubTypeVote    = "cast"
)

// App describes an application known to the registry.
type App struct {
	LokadID LokadID
	Name    string
	// Parsed is false for applications whose sections are recognized but
	// not decoded.
	Parsed   bool
	subTypes []string
}

// SubTypes returns the sub-types the application's sections may carry.
func (a *App) SubTypes() []string {
	subTypes := make([]string, len(a.subTypes))
	copy(subTypes, a.subTypes)
	return subTypes
}

var knownApps = map[LokadID]App{
	DanaIDLokadID: {
		LokadID:  DanaIDLokadID,
		Name:     AppDanaID,
		Parsed:   true,
		subTypes: []string{SubTypeGenesis, SubTypeSend, SubTypeBurn},
	},
	DanaVoteLokadID: {
		LokadID:  DanaVoteLokadID,
		Name:     AppDanaVote,
		Parsed:   true,
		subTypes: []string{SubTypeVote},
	},
	ALPLokadID: {
		LokadID: ALPLokadID,
		Name:    AppALP,
		Parsed:  false,
	},
}

// Lookup returns the application that owns the given prefix.
func Lookup(lokadID LokadID) (App, bool) {
	app, ok := knownApps[lokadID]
	return app, ok
}

// LookupPrefix returns the application whose LOKAD ID prefixes section. A
// section shorter than LokadIDSize never matches.
func LookupPrefix(section []byte) (App, bool) {
	if len(section) < LokadIDSize {
		return App{}, false
	}
	var lokadID LokadID
	copy(lokadID[:], section[:LokadIDSize])
	return Lookup(lokadID)
}

// Apps returns every known application, ordered by LOKAD ID.
func Apps() []App {
	apps := make([]App, 0, len(knownApps))
	for _, app := range knownApps {
		apps = append(apps, app)
	}
	sort.Slice(apps, func(i, j int) bool {
		return bytes.Compare(apps[i].LokadID[:], apps[j].LokadID[:]) < 0
	})
	return apps
}
