/*
Package vote encodes and decodes DNVT sections, the EMPP pushdata sections
that cast a vote on a target, optionally on behalf of an identity:

	"DNVT" version:u8 direction:u8 type:u8 varbytes(voteById) voteFor:32 amount:u48

voteById is either empty or 32 bytes. The amount is written as a
little-endian u32 low word followed by a u16 high word.
*/
package vote
