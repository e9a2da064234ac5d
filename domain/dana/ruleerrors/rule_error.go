package ruleerrors

import (
	"github.com/pkg/errors"
)

// These constants are used to identify a specific RuleError.
var (
	// ErrUnsupportedVersion indicates a protocol version that cannot be
	// encoded (outside 0..255) or decoded (anything but 0).
	ErrUnsupportedVersion = newRuleError("ErrUnsupportedVersion")

	// ErrUnsupportedType indicates an identity type other than Profile or
	// Page was given to the encoder.
	ErrUnsupportedType = newRuleError("ErrUnsupportedType")

	// ErrInvalidType indicates a decoded identity type byte other than
	// Profile or Page.
	ErrInvalidType = newRuleError("ErrInvalidType")

	// ErrNamespace indicates a namespace given to the encoder is empty or
	// longer than MaxNamespaceLength bytes.
	ErrNamespace = newRuleError("ErrNamespace")

	// ErrName indicates a name given to the encoder is empty or longer than
	// MaxNameLength bytes.
	ErrName = newRuleError("ErrName")

	// ErrInvalidNamespace indicates a decoded namespace with an out of range
	// length or non UTF-8 content.
	ErrInvalidNamespace = newRuleError("ErrInvalidNamespace")

	// ErrInvalidName indicates a decoded name with an out of range length
	// or non UTF-8 content.
	ErrInvalidName = newRuleError("ErrInvalidName")

	// ErrHashLength indicates an identifier that is not exactly 64 hex
	// characters long.
	ErrHashLength = newRuleError("ErrHashLength")

	// ErrInvalidHex indicates a string that was expected to be hex
	// contains non-hex characters or has an odd length.
	ErrInvalidHex = newRuleError("ErrInvalidHex")

	// ErrInvalidVoteFor indicates a voteFor identifier that is not exactly
	// 64 hex characters.
	ErrInvalidVoteFor = newRuleError("ErrInvalidVoteFor")

	// ErrInvalidVoteByID indicates a voteById identifier that was supplied
	// but is not exactly 64 hex characters.
	ErrInvalidVoteByID = newRuleError("ErrInvalidVoteByID")

	// ErrAmountRange indicates an amount that does not fit in 48 bits.
	ErrAmountRange = newRuleError("ErrAmountRange")

	// ErrUnsupportedVoteBy indicates a decoded voteById length byte that is
	// neither 0 nor 32.
	ErrUnsupportedVoteBy = newRuleError("ErrUnsupportedVoteBy")

	// ErrUnsupportedVoteType indicates a vote type other than ById or
	// ByHash.
	ErrUnsupportedVoteType = newRuleError("ErrUnsupportedVoteType")

	// ErrUnsupportedVoteDirection indicates a vote direction other than Up
	// or Down was given to the encoder.
	ErrUnsupportedVoteDirection = newRuleError("ErrUnsupportedVoteDirection")

	// ErrLength indicates a varbytes payload longer than 127 bytes.
	ErrLength = newRuleError("ErrLength")

	// ErrTruncatedInput indicates the decoder ran out of bytes in the
	// middle of a field.
	ErrTruncatedInput = newRuleError("ErrTruncatedInput")

	// ErrUnknownSectionType indicates an identity section whose type tag is
	// not GENESIS, SEND or BURN.
	ErrUnknownSectionType = newRuleError("ErrUnknownSectionType")

	// ErrUnknownLokadID indicates an EMPP section whose 4-byte prefix does
	// not belong to any registered application.
	ErrUnknownLokadID = newRuleError("ErrUnknownLokadID")

	// ErrTrailingBytes indicates a section that has bytes left over after
	// its layout was fully read.
	ErrTrailingBytes = newRuleError("ErrTrailingBytes")

	// ErrNonPushOpcode indicates an OP_RETURN body that contains an opcode
	// which does not push data.
	ErrNonPushOpcode = newRuleError("ErrNonPushOpcode")

	// ErrWriterOverflow indicates the materializing pass of a section
	// writer produced more bytes than the length pass counted.
	ErrWriterOverflow = newRuleError("ErrWriterOverflow")
)

// RuleError identifies a rule violation of the Dana identity and vote
// protocols. The caller can use errors.Is to match a specific violation.
type RuleError struct {
	message string
	inner   error
}

func (e RuleError) Error() string {
	if e.inner != nil {
		return e.message + ": " + e.inner.Error()
	}
	return e.message
}

func (e RuleError) Unwrap() error {
	return e.inner
}

func (e RuleError) Cause() error {
	return e.inner
}

func newRuleError(message string) RuleError {
	return RuleError{message: message, inner: nil}
}

// IsRuleError returns whether err is, or wraps, a RuleError.
func IsRuleError(err error) bool {
	return errors.As(err, &RuleError{})
}
