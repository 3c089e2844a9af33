package chip8

// Instruction is a decoded 16 bit instruction word. The operand fields are
// always filled from their fixed nibble positions, the operation defines which
// of them are meaningful.
type Instruction struct {
	Word uint16
	Op   Operation

	X   uint8  // bits 8-11, register index
	Y   uint8  // bits 4-7, register index
	N   uint8  // bits 0-3, nibble
	KK  uint8  // bits 0-7, byte
	NNN uint16 // bits 0-11, address
}

// Decode maps an instruction word to its operation and operands.
// Words that do not match any pattern decode to OpUnknown.
func Decode(word uint16) Instruction {
	ins := Instruction{
		Word: word,
		X:    uint8(word>>8) & 0xF,
		Y:    uint8(word>>4) & 0xF,
		N:    uint8(word) & 0xF,
		KK:   uint8(word),
		NNN:  word & 0x0FFF,
	}
	ins.Op = decodeOperation(word, ins.N, ins.KK)
	return ins
}

func decodeOperation(word uint16, n, kk uint8) Operation {
	switch word >> 12 {
	case 0x0:
		switch word {
		case 0x00E0:
			return OpClear
		case 0x00EE:
			return OpReturn
		}
		return OpSystem
	case 0x1:
		return OpJump
	case 0x2:
		return OpCall
	case 0x3:
		return OpSkipEqualByte
	case 0x4:
		return OpSkipNotEqualByte
	case 0x5:
		if n == 0 {
			return OpSkipEqualRegister
		}
	case 0x6:
		return OpLoadByte
	case 0x7:
		return OpAddByte
	case 0x8:
		return decodeArithmetic(n)
	case 0x9:
		if n == 0 {
			return OpSkipNotEqualRegister
		}
	case 0xA:
		return OpLoadIndex
	case 0xB:
		return OpJumpOffset
	case 0xC:
		return OpRandom
	case 0xD:
		return OpDraw
	case 0xE:
		switch kk {
		case 0x9E:
			return OpSkipKeyPressed
		case 0xA1:
			return OpSkipKeyNotPressed
		}
	case 0xF:
		return decodeMisc(kk)
	}
	return OpUnknown
}

func decodeArithmetic(n uint8) Operation {
	switch n {
	case 0x0:
		return OpLoadRegister
	case 0x1:
		return OpOr
	case 0x2:
		return OpAnd
	case 0x3:
		return OpXor
	case 0x4:
		return OpAddRegister
	case 0x5:
		return OpSub
	case 0x6:
		return OpShiftRight
	case 0x7:
		return OpSubN
	case 0xE:
		return OpShiftLeft
	default:
		return OpUnknown
	}
}

func decodeMisc(kk uint8) Operation {
	switch kk {
	case 0x07:
		return OpLoadDelay
	case 0x0A:
		return OpWaitKey
	case 0x15:
		return OpSetDelay
	case 0x18:
		return OpSetSound
	case 0x1E:
		return OpAddIndex
	case 0x29:
		return OpLoadFont
	case 0x33:
		return OpStoreBCD
	case 0x55:
		return OpStoreRegisters
	case 0x65:
		return OpLoadRegisters
	default:
		return OpUnknown
	}
}
