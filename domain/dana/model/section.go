package model

// SectionData is the decoded body of a recognized EMPP section. It is
// implemented only by *DanaID, *HandleReference and *DanaVote, so a type
// switch over those three is exhaustive.
type SectionData interface {
	isSectionData()
}

// Section is one recognized EMPP section of an OP_RETURN script.
type Section struct {
	// App is the registry name of the owning application, e.g. "DanaId".
	App string
	// SubType distinguishes sections of the same app, e.g. "genesis".
	SubType string
	Data    SectionData
}

// DanaID is an identity decoded from a GENESIS section.
type DanaID struct {
	Namespace string
	Name      string
	Type      IdentityType
	// AuthPubkey is lowercase hex, empty when the section carries none.
	AuthPubkey string
}

// GenesisInfo returns the encoder input that produces id.
func (id *DanaID) GenesisInfo() *GenesisInfo {
	return &GenesisInfo{
		Name:       id.Name,
		Namespace:  id.Namespace,
		Type:       id.Type,
		AuthPubkey: id.AuthPubkey,
	}
}

// HandleReference points at an identity handle from a SEND or BURN section.
type HandleReference struct {
	ID Identifier
	// OutputIndex is the output the handle moves to. It is only set by SEND.
	OutputIndex uint8
}

// DanaVote is a vote, either decoded from a DNVT section or built for one.
type DanaVote struct {
	Direction VoteDirection
	Type      VoteType
	VoteFor   Identifier
	Amount    uint64
	// VoteByID is nil when the vote carries no voteById.
	VoteByID *Identifier
}

func (*DanaID) isSectionData()          {}
func (*HandleReference) isSectionData() {}
func (*DanaVote) isSectionData()        {}
