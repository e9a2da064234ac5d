package model

import "fmt"

// IdentityType is the kind of a Dana identity.
type IdentityType uint8

// Identity types.
const (
	IdentityTypeProfile IdentityType = 0
	IdentityTypePage    IdentityType = 1
)

// IsValid returns whether t is a known identity type.
func (t IdentityType) IsValid() bool {
	return t == IdentityTypeProfile || t == IdentityTypePage
}

func (t IdentityType) String() string {
	switch t {
	case IdentityTypeProfile:
		return "profile"
	case IdentityTypePage:
		return "page"
	}
	return fmt.Sprintf("unknown(%d)", uint8(t))
}

// VoteDirection is the direction of a vote.
type VoteDirection uint8

// Vote directions.
const (
	VoteDown VoteDirection = 0
	VoteUp   VoteDirection = 1
)

// IsValid returns whether d is Up or Down.
func (d VoteDirection) IsValid() bool {
	return d == VoteDown || d == VoteUp
}

func (d VoteDirection) String() string {
	switch d {
	case VoteDown:
		return "down"
	case VoteUp:
		return "up"
	}
	return fmt.Sprintf("unknown(%d)", uint8(d))
}

// VoteType tells what a vote's voteFor identifier refers to.
type VoteType uint8

// Vote types.
const (
	VoteTypeByID   VoteType = 1
	VoteTypeByHash VoteType = 2
)

// IsValid returns whether t is ById or ByHash.
func (t VoteType) IsValid() bool {
	return t == VoteTypeByID || t == VoteTypeByHash
}

func (t VoteType) String() string {
	switch t {
	case VoteTypeByID:
		return "id"
	case VoteTypeByHash:
		return "hash"
	}
	return fmt.Sprintf("unknown(%d)", uint8(t))
}

// Field bounds shared by the identity encoder and parser.
const (
	MinNamespaceLength = 1
	MaxNamespaceLength = 32
	MinNameLength      = 1
	MaxNameLength      = 32
)

// MaxAmount is the largest amount a vote can carry.
const MaxAmount = 1<<48 - 1

// GenesisInfo is the input for an identity GENESIS section.
type GenesisInfo struct {
	Name      string
	Namespace string
	Type      IdentityType
	// AuthPubkey is hex encoded, and may be empty. Either letter case is
	// accepted, a decoded section always reports it in lowercase.
	AuthPubkey string
}
