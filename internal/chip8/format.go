package chip8

import "fmt"

// String returns the instruction in assembler notation, for example "drw V2, V3, $5".
// Unknown words are rendered as a data word.
func (i Instruction) String() string {
	if i.Op == OpUnknown || i.Op >= operationCount {
		return fmt.Sprintf("dw $%04X", i.Word)
	}
	params := i.formatParams()
	if params == "" {
		return i.Op.Mnemonic()
	}
	return i.Op.Mnemonic() + " " + params
}

// formatParams returns the formatted parameter string of the instruction.
func (i Instruction) formatParams() string {
	switch i.Op {
	case OpClear, OpReturn:
		return ""
	case OpSystem, OpJump, OpCall:
		return fmt.Sprintf("$%03X", i.NNN)
	case OpJumpOffset:
		return fmt.Sprintf("V0, $%03X", i.NNN)
	case OpSkipEqualByte, OpSkipNotEqualByte, OpLoadByte, OpAddByte, OpRandom:
		return fmt.Sprintf("V%X, $%02X", i.X, i.KK)
	case OpSkipEqualRegister, OpSkipNotEqualRegister, OpLoadRegister,
		OpOr, OpAnd, OpXor, OpAddRegister, OpSub, OpSubN:
		return fmt.Sprintf("V%X, V%X", i.X, i.Y)
	case OpShiftRight, OpShiftLeft, OpSkipKeyPressed, OpSkipKeyNotPressed:
		return fmt.Sprintf("V%X", i.X)
	case OpLoadIndex:
		return fmt.Sprintf("I, $%03X", i.NNN)
	case OpDraw:
		return fmt.Sprintf("V%X, V%X, $%X", i.X, i.Y, i.N)
	default:
		return i.formatMiscParams()
	}
}

// formatMiscParams formats the Fx family which all use a special operand.
func (i Instruction) formatMiscParams() string {
	switch i.Op {
	case OpLoadDelay:
		return fmt.Sprintf("V%X, DT", i.X)
	case OpWaitKey:
		return fmt.Sprintf("V%X, K", i.X)
	case OpSetDelay:
		return fmt.Sprintf("DT, V%X", i.X)
	case OpSetSound:
		return fmt.Sprintf("ST, V%X", i.X)
	case OpAddIndex:
		return fmt.Sprintf("I, V%X", i.X)
	case OpLoadFont:
		return fmt.Sprintf("F, V%X", i.X)
	case OpStoreBCD:
		return fmt.Sprintf("B, V%X", i.X)
	case OpStoreRegisters:
		return fmt.Sprintf("[I], V%X", i.X)
	case OpLoadRegisters:
		return fmt.Sprintf("V%X, [I]", i.X)
	default:
		return ""
	}
}
