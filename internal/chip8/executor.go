package chip8

import (
	"fmt"
)

// handler executes a decoded instruction. The program counter already points
// at the following instruction. A handler validates all accesses before it
// mutates any state.
type handler func(m *Machine, ins Instruction) error

var handlers = [operationCount]handler{
	OpSystem:               opSystem,
	OpClear:                opClear,
	OpReturn:               opReturn,
	OpJump:                 opJump,
	OpCall:                 opCall,
	OpSkipEqualByte:        opSkipEqualByte,
	OpSkipNotEqualByte:     opSkipNotEqualByte,
	OpSkipEqualRegister:    opSkipEqualRegister,
	OpLoadByte:             opLoadByte,
	OpAddByte:              opAddByte,
	OpLoadRegister:         opLoadRegister,
	OpOr:                   opOr,
	OpAnd:                  opAnd,
	OpXor:                  opXor,
	OpAddRegister:          opAddRegister,
	OpSub:                  opSub,
	OpShiftRight:           opShiftRight,
	OpSubN:                 opSubN,
	OpShiftLeft:            opShiftLeft,
	OpSkipNotEqualRegister: opSkipNotEqualRegister,
	OpLoadIndex:            opLoadIndex,
	OpJumpOffset:           opJumpOffset,
	OpRandom:               opRandom,
	OpDraw:                 opDraw,
	OpSkipKeyPressed:       opSkipKeyPressed,
	OpSkipKeyNotPressed:    opSkipKeyNotPressed,
	OpLoadDelay:            opLoadDelay,
	OpWaitKey:              opWaitKey,
	OpSetDelay:             opSetDelay,
	OpSetSound:             opSetSound,
	OpAddIndex:             opAddIndex,
	OpLoadFont:             opLoadFont,
	OpStoreBCD:             opStoreBCD,
	OpStoreRegisters:       opStoreRegisters,
	OpLoadRegisters:        opLoadRegisters,
}

// checkTarget verifies that a control transfer lands on an even address
// inside the program area.
func checkTarget(target uint16) error {
	if target < ProgramStart || target > MaxProgramCounter || target%InstructionSize != 0 {
		return fmt.Errorf("%w: jump target $%04X", ErrAddressOutOfBounds, target)
	}
	return nil
}

// skip advances the program counter over the next instruction.
func (m *Machine) skip() error {
	next := m.pc + InstructionSize
	if next > MaxProgramCounter {
		return rangeError(next, InstructionSize)
	}
	m.pc = next
	return nil
}

func (m *Machine) skipIf(condition bool) error {
	if !condition {
		return nil
	}
	return m.skip()
}

// opSystem ignores calls to native machine code routines.
func opSystem(*Machine, Instruction) error {
	return nil
}

func opClear(m *Machine, _ Instruction) error {
	m.framebuffer.clear()
	return nil
}

func opReturn(m *Machine, _ Instruction) error {
	target, err := m.stack.peek()
	if err != nil {
		return err
	}
	if err := checkTarget(target); err != nil {
		return err
	}
	if _, err := m.stack.pop(); err != nil {
		return err
	}
	m.pc = target
	return nil
}

func opJump(m *Machine, ins Instruction) error {
	if err := checkTarget(ins.NNN); err != nil {
		return err
	}
	m.pc = ins.NNN
	return nil
}

func opCall(m *Machine, ins Instruction) error {
	if err := checkTarget(ins.NNN); err != nil {
		return err
	}
	if err := m.stack.push(m.pc); err != nil {
		return err
	}
	m.pc = ins.NNN
	return nil
}

func opSkipEqualByte(m *Machine, ins Instruction) error {
	return m.skipIf(m.v[ins.X] == ins.KK)
}

func opSkipNotEqualByte(m *Machine, ins Instruction) error {
	return m.skipIf(m.v[ins.X] != ins.KK)
}

func opSkipEqualRegister(m *Machine, ins Instruction) error {
	return m.skipIf(m.v[ins.X] == m.v[ins.Y])
}

func opSkipNotEqualRegister(m *Machine, ins Instruction) error {
	return m.skipIf(m.v[ins.X] != m.v[ins.Y])
}

func opLoadByte(m *Machine, ins Instruction) error {
	m.v[ins.X] = ins.KK
	return nil
}

// opAddByte adds without carry, VF is not affected.
func opAddByte(m *Machine, ins Instruction) error {
	m.v[ins.X] += ins.KK
	return nil
}

func opLoadRegister(m *Machine, ins Instruction) error {
	m.v[ins.X] = m.v[ins.Y]
	return nil
}

func opOr(m *Machine, ins Instruction) error {
	m.v[ins.X] |= m.v[ins.Y]
	return nil
}

func opAnd(m *Machine, ins Instruction) error {
	m.v[ins.X] &= m.v[ins.Y]
	return nil
}

func opXor(m *Machine, ins Instruction) error {
	m.v[ins.X] ^= m.v[ins.Y]
	return nil
}

// setResult writes the result register before the flag so that the flag
// wins when the destination is VF.
func (m *Machine) setResult(x uint8, value byte, flag bool) {
	m.v[x] = value
	if flag {
		m.v[flagRegister] = 1
	} else {
		m.v[flagRegister] = 0
	}
}

func opAddRegister(m *Machine, ins Instruction) error {
	sum := uint16(m.v[ins.X]) + uint16(m.v[ins.Y])
	m.setResult(ins.X, byte(sum), sum > 0xFF)
	return nil
}

func opSub(m *Machine, ins Instruction) error {
	vx, vy := m.v[ins.X], m.v[ins.Y]
	m.setResult(ins.X, vx-vy, vx > vy)
	return nil
}

func opSubN(m *Machine, ins Instruction) error {
	vx, vy := m.v[ins.X], m.v[ins.Y]
	m.setResult(ins.X, vy-vx, vy > vx)
	return nil
}

// shiftSource returns the operand of the shift instructions.
func (m *Machine) shiftSource(ins Instruction) byte {
	if m.quirks.ShiftUsesVY {
		return m.v[ins.Y]
	}
	return m.v[ins.X]
}

func opShiftRight(m *Machine, ins Instruction) error {
	value := m.shiftSource(ins)
	m.setResult(ins.X, value>>1, value&0x01 != 0)
	return nil
}

func opShiftLeft(m *Machine, ins Instruction) error {
	value := m.shiftSource(ins)
	m.setResult(ins.X, value<<1, value&0x80 != 0)
	return nil
}

func opLoadIndex(m *Machine, ins Instruction) error {
	m.index = ins.NNN
	return nil
}

func opJumpOffset(m *Machine, ins Instruction) error {
	target := ins.NNN + uint16(m.v[0])
	if err := checkTarget(target); err != nil {
		return err
	}
	m.pc = target
	return nil
}

func opRandom(m *Machine, ins Instruction) error {
	m.v[ins.X] = m.random.Byte() & ins.KK
	return nil
}

func opDraw(m *Machine, ins Instruction) error {
	sprite, err := m.mem.read(m.index, int(ins.N))
	if err != nil {
		return err
	}
	collision := m.framebuffer.drawSprite(m.v[ins.X], m.v[ins.Y], sprite)
	m.setResult(flagRegister, m.v[flagRegister], collision)
	return nil
}

func opSkipKeyPressed(m *Machine, ins Instruction) error {
	return m.skipIf(m.keys[m.v[ins.X]&0xF])
}

func opSkipKeyNotPressed(m *Machine, ins Instruction) error {
	return m.skipIf(!m.keys[m.v[ins.X]&0xF])
}

func opLoadDelay(m *Machine, ins Instruction) error {
	m.v[ins.X] = m.delayTimer
	return nil
}

// opWaitKey stores the lowest pressed key. Without a pressed key the program
// counter is rewound so that the instruction is executed again by the next step.
func opWaitKey(m *Machine, ins Instruction) error {
	for key, pressed := range m.keys {
		if pressed {
			m.v[ins.X] = byte(key)
			return nil
		}
	}
	m.pc -= InstructionSize
	return nil
}

func opSetDelay(m *Machine, ins Instruction) error {
	m.delayTimer = m.v[ins.X]
	return nil
}

func opSetSound(m *Machine, ins Instruction) error {
	m.soundTimer = m.v[ins.X]
	return nil
}

func opAddIndex(m *Machine, ins Instruction) error {
	m.index += uint16(m.v[ins.X])
	return nil
}

func opLoadFont(m *Machine, ins Instruction) error {
	m.index = glyphAddress(m.v[ins.X])
	return nil
}

func opStoreBCD(m *Machine, ins Instruction) error {
	value := m.v[ins.X]
	digits := []byte{value / 100, value / 10 % 10, value % 10}
	return m.mem.write(m.index, digits)
}

func opStoreRegisters(m *Machine, ins Instruction) error {
	return m.mem.write(m.index, m.v[:int(ins.X)+1])
}

func opLoadRegisters(m *Machine, ins Instruction) error {
	data, err := m.mem.read(m.index, int(ins.X)+1)
	if err != nil {
		return err
	}
	copy(m.v[:], data)
	return nil
}
