/*
Package identity encodes and decodes DNID sections, the EMPP pushdata
sections that create, transfer and destroy Dana identity handles.

A section starts with the LOKAD ID "DNID", a version byte and a varbytes tag
naming the action:

	GENESIS  type:u8 varbytes(namespace) varbytes(name) varbytes(authPubkey)
	SEND     id:32 outputIndex:u8
	BURN     handleId:32

Identifiers are given in their display form and written with their bytes
reversed. Encoders accept any version that fits in a byte, ParseSection only
accepts version 0.
*/
package identity
