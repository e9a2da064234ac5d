package txscript

import (
	"encoding/hex"
	"io"

	"github.com/dana-network/danad/domain/dana/ruleerrors"
	"github.com/dana-network/danad/util/binaryserializer"
	"github.com/pkg/errors"
)

// PushStack is a cursor over the body of an OP_RETURN script, or over the
// bytes of a single section. Every consume call advances it. It is not safe
// for concurrent use.
type PushStack struct {
	script []byte
	offset int
}

// NewPushStack returns a PushStack positioned at the start of script.
func NewPushStack(script []byte) *PushStack {
	return &PushStack{script: script}
}

// NewPushStackFromHex decodes scriptHex and returns a PushStack over it.
func NewPushStackFromHex(scriptHex string) (*PushStack, error) {
	script, err := hex.DecodeString(scriptHex)
	if err != nil {
		return nil, errors.Wrapf(ruleerrors.ErrInvalidHex, "script hex: %s", err)
	}
	return NewPushStack(script), nil
}

// Remaining returns the number of unconsumed bytes.
func (s *PushStack) Remaining() int {
	return len(s.script) - s.offset
}

// Read implements io.Reader so fixed-width fields can be read with
// binaryserializer.
func (s *PushStack) Read(p []byte) (int, error) {
	if s.Remaining() == 0 {
		return 0, io.EOF
	}
	n := copy(p, s.script[s.offset:])
	s.offset += n
	return n, nil
}

// Consume returns the next byteCount bytes. It fails with
// ruleerrors.ErrTruncatedInput if fewer are left, without advancing.
func (s *PushStack) Consume(byteCount int) ([]byte, error) {
	if byteCount < 0 || byteCount > s.Remaining() {
		return nil, errors.Wrapf(ruleerrors.ErrTruncatedInput,
			"cannot consume %d bytes, %d remaining", byteCount, s.Remaining())
	}
	data := s.script[s.offset : s.offset+byteCount]
	s.offset += byteCount
	return data, nil
}

// ConsumeU8 returns the next byte.
func (s *PushStack) ConsumeU8() (uint8, error) {
	val, err := binaryserializer.Uint8(s)
	if err != nil {
		return 0, truncated(err, "u8")
	}
	return val, nil
}

// ConsumeU16 returns the next two bytes as a little-endian uint16.
func (s *PushStack) ConsumeU16() (uint16, error) {
	if s.Remaining() < 2 {
		return 0, truncated(io.ErrUnexpectedEOF, "u16")
	}
	return binaryserializer.Uint16(s)
}

// ConsumeU32 returns the next four bytes as a little-endian uint32.
func (s *PushStack) ConsumeU32() (uint32, error) {
	if s.Remaining() < 4 {
		return 0, truncated(io.ErrUnexpectedEOF, "u32")
	}
	return binaryserializer.Uint32(s)
}

// ConsumeAmount returns the next six bytes as a 48-bit amount.
func (s *PushStack) ConsumeAmount() (uint64, error) {
	if s.Remaining() < 6 {
		return 0, truncated(io.ErrUnexpectedEOF, "amount")
	}
	return binaryserializer.Uint48(s)
}

// ConsumeVarBytes returns the payload of a one byte length prefixed field.
func (s *PushStack) ConsumeVarBytes() ([]byte, error) {
	length, err := s.ConsumeU8()
	if err != nil {
		return nil, err
	}
	return s.Consume(int(length))
}

// ConsumeNextPush parses one push operation and returns the pushed data and
// the opcode that pushed it. OP_0 pushes an empty slice. OP_1NEGATE,
// OP_RESERVED and OP_1 through OP_16 push their own opcode byte.
func (s *PushStack) ConsumeNextPush() (data []byte, opcode byte, err error) {
	opcode, err = s.ConsumeU8()
	if err != nil {
		return nil, 0, err
	}

	switch {
	case opcode == Op0:
		return []byte{}, opcode, nil

	case opcode >= OpData1 && opcode <= OpData75:
		data, err = s.Consume(int(opcode))

	case opcode == OpPushData1:
		var length uint8
		length, err = s.ConsumeU8()
		if err != nil {
			return nil, opcode, err
		}
		data, err = s.Consume(int(length))

	case opcode == OpPushData2:
		var length uint16
		length, err = s.ConsumeU16()
		if err != nil {
			return nil, opcode, err
		}
		data, err = s.Consume(int(length))

	case opcode == OpPushData4:
		var length uint32
		length, err = s.ConsumeU32()
		if err != nil {
			return nil, opcode, err
		}
		if uint64(length) > uint64(s.Remaining()) {
			return nil, opcode, errors.Wrapf(ruleerrors.ErrTruncatedInput,
				"OP_PUSHDATA4 of %d bytes, %d remaining", length, s.Remaining())
		}
		data, err = s.Consume(int(length))

	case isSingleBytePush(opcode):
		return []byte{opcode}, opcode, nil

	default:
		return nil, opcode, errors.Wrapf(ruleerrors.ErrNonPushOpcode,
			"opcode 0x%02x at offset %d", opcode, s.offset-1)
	}

	if err != nil {
		return nil, opcode, err
	}
	return data, opcode, nil
}

// StackArray consumes every remaining push and returns the non-empty ones in
// order. Empty pushes are dropped so indexes match the meaningful pushes.
func (s *PushStack) StackArray() ([][]byte, error) {
	var stackArray [][]byte
	for s.Remaining() > 0 {
		data, _, err := s.ConsumeNextPush()
		if err != nil {
			return nil, err
		}
		if len(data) == 0 {
			continue
		}
		stackArray = append(stackArray, data)
	}
	return stackArray, nil
}

func truncated(err error, field string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return errors.Wrapf(ruleerrors.ErrTruncatedInput, "reading %s", field)
	}
	return err
}
