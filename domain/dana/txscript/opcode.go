package txscript

// These constants are the values of the opcodes the OP_RETURN push reader
// understands. Every other opcode is rejected.
const (
	Op0         = 0x00 // 0
	OpFalse     = 0x00 // 0 - AKA Op0
	OpData1     = 0x01 // 1
	OpData75    = 0x4b // 75
	OpPushData1 = 0x4c // 76
	OpPushData2 = 0x4d // 77
	OpPushData4 = 0x4e // 78
	Op1Negate   = 0x4f // 79
	OpReserved  = 0x50 // 80
	Op1         = 0x51 // 81 - AKA OpTrue
	OpTrue      = 0x51 // 81
	Op16        = 0x60 // 96
	OpReturn    = 0x6a // 106
)

// EmppMarker is the push that opens an eCash multi-push (EMPP) OP_RETURN.
const EmppMarker = OpReserved

// isSingleBytePush returns whether op pushes its own value rather than
// data that follows it.
func isSingleBytePush(op byte) bool {
	return op >= Op1Negate && op <= Op16
}
