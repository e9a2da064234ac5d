package txscript

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// MaxScriptElementSize is the maximum number of bytes a single push may
// carry.
const MaxScriptElementSize = 520

// ScriptBuilder provides a facility for building OP_RETURN scripts out of
// opcodes and data pushes.
//
// Errors are deferred to Script so calls can be chained:
//
//	script, err := NewScriptBuilder().AddOp(OpReturn).AddOp(OpReserved).
//		AddData(section).Script()
type ScriptBuilder struct {
	script []byte
	err    error
}

// NewScriptBuilder returns a new instance of a script builder.
func NewScriptBuilder() *ScriptBuilder {
	return &ScriptBuilder{
		script: make([]byte, 0, 223),
	}
}

// AddOp pushes the passed opcode to the end of the script.
func (b *ScriptBuilder) AddOp(opcode byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}
	b.script = append(b.script, opcode)
	return b
}

// AddData pushes data with the smallest push opcode that can carry its
// length. Unlike a general purpose builder it never turns single byte data
// into OP_1..OP_16, since EMPP sections must stay raw data.
func (b *ScriptBuilder) AddData(data []byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}

	dataLen := len(data)
	if dataLen > MaxScriptElementSize {
		b.err = errors.Errorf("adding a data element of %d bytes would exceed the "+
			"maximum allowed script element size of %d", dataLen, MaxScriptElementSize)
		return b
	}

	switch {
	case dataLen == 0:
		b.script = append(b.script, Op0)
		return b
	case dataLen <= OpData75:
		b.script = append(b.script, byte(dataLen))
	case dataLen <= 0xff:
		b.script = append(b.script, OpPushData1, byte(dataLen))
	default:
		buf := make([]byte, 2)
		binary.LittleEndian.PutUint16(buf, uint16(dataLen))
		b.script = append(b.script, OpPushData2)
		b.script = append(b.script, buf...)
	}

	b.script = append(b.script, data...)
	return b
}

// Script returns the currently built script. When any errors occurred while
// building the script, the script will be returned up the point of the first
// error along with the error.
func (b *ScriptBuilder) Script() ([]byte, error) {
	return b.script, b.err
}

// EmppScript builds a complete data-out script: OP_RETURN, the EMPP marker
// and one push per section.
func EmppScript(sections ...[]byte) ([]byte, error) {
	if len(sections) == 0 {
		return nil, errors.New("an EMPP script needs at least one section")
	}
	builder := NewScriptBuilder().AddOp(OpReturn).AddOp(EmppMarker)
	for i, section := range sections {
		if len(section) == 0 {
			return nil, errors.Errorf("EMPP section %d is empty", i)
		}
		builder.AddData(section)
	}
	return builder.Script()
}
