package chip8

import (
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Operation identifies one of the 35 CHIP-8 operations.
type Operation uint8

// CHIP-8 operations, the comment lists the opcode pattern.
const (
	OpUnknown                Operation = iota // no matching pattern
	OpSystem                                  // 0nnn
	OpClear                                   // 00E0
	OpReturn                                  // 00EE
	OpJump                                    // 1nnn
	OpCall                                    // 2nnn
	OpSkipEqualByte                           // 3xkk
	OpSkipNotEqualByte                        // 4xkk
	OpSkipEqualRegister                       // 5xy0
	OpLoadByte                                // 6xkk
	OpAddByte                                 // 7xkk
	OpLoadRegister                            // 8xy0
	OpOr                                      // 8xy1
	OpAnd                                     // 8xy2
	OpXor                                     // 8xy3
	OpAddRegister                             // 8xy4
	OpSub                                     // 8xy5
	OpShiftRight                              // 8xy6
	OpSubN                                    // 8xy7
	OpShiftLeft                               // 8xyE
	OpSkipNotEqualRegister                    // 9xy0
	OpLoadIndex                               // Annn
	OpJumpOffset                              // Bnnn
	OpRandom                                  // Cxkk
	OpDraw                                    // Dxyn
	OpSkipKeyPressed                          // Ex9E
	OpSkipKeyNotPressed                       // ExA1
	OpLoadDelay                               // Fx07
	OpWaitKey                                 // Fx0A
	OpSetDelay                                // Fx15
	OpSetSound                                // Fx18
	OpAddIndex                                // Fx1E
	OpLoadFont                                // Fx29
	OpStoreBCD                                // Fx33
	OpStoreRegisters                          // Fx55
	OpLoadRegisters                           // Fx65

	operationCount
)

var operationNames = [operationCount]string{
	OpUnknown:              "unknown",
	OpSystem:               "system-call",
	OpClear:                "clear-screen",
	OpReturn:               "return",
	OpJump:                 "jump",
	OpCall:                 "call",
	OpSkipEqualByte:        "skip-if-equal-byte",
	OpSkipNotEqualByte:     "skip-if-not-equal-byte",
	OpSkipEqualRegister:    "skip-if-registers-equal",
	OpLoadByte:             "load-byte",
	OpAddByte:              "add-byte",
	OpLoadRegister:         "copy",
	OpOr:                   "or",
	OpAnd:                  "and",
	OpXor:                  "xor",
	OpAddRegister:          "add-with-carry",
	OpSub:                  "sub-with-borrow",
	OpShiftRight:           "shift-right",
	OpSubN:                 "subn-with-borrow",
	OpShiftLeft:            "shift-left",
	OpSkipNotEqualRegister: "skip-if-registers-not-equal",
	OpLoadIndex:            "load-index",
	OpJumpOffset:           "jump-with-offset",
	OpRandom:               "random-and",
	OpDraw:                 "draw-sprite",
	OpSkipKeyPressed:       "skip-if-key-pressed",
	OpSkipKeyNotPressed:    "skip-if-key-not-pressed",
	OpLoadDelay:            "read-delay-timer",
	OpWaitKey:              "block-for-key",
	OpSetDelay:             "set-delay-timer",
	OpSetSound:             "set-sound-timer",
	OpAddIndex:             "add-to-index",
	OpLoadFont:             "index-to-font-glyph",
	OpStoreBCD:             "store-bcd-digits",
	OpStoreRegisters:       "register-dump",
	OpLoadRegisters:        "register-load",
}

// instructions maps every operation to the shared CHIP-8 instruction definition
// that carries its assembler mnemonic.
var instructions = [operationCount]*chip8.Instruction{
	OpClear:                chip8.ClsInst,
	OpReturn:               chip8.RetInst,
	OpJump:                 chip8.JpInst,
	OpCall:                 chip8.CallInst,
	OpSkipEqualByte:        chip8.SeInst,
	OpSkipNotEqualByte:     chip8.SneInst,
	OpSkipEqualRegister:    chip8.SeInst,
	OpLoadByte:             chip8.LdInst,
	OpAddByte:              chip8.AddInst,
	OpLoadRegister:         chip8.LdInst,
	OpOr:                   chip8.OrInst,
	OpAnd:                  chip8.AndInst,
	OpXor:                  chip8.XorInst,
	OpAddRegister:          chip8.AddInst,
	OpSub:                  chip8.SubInst,
	OpShiftRight:           chip8.ShrInst,
	OpSubN:                 chip8.SubnInst,
	OpShiftLeft:            chip8.ShlInst,
	OpSkipNotEqualRegister: chip8.SneInst,
	OpLoadIndex:            chip8.LdInst,
	OpJumpOffset:           chip8.JpInst,
	OpRandom:               chip8.RndInst,
	OpDraw:                 chip8.DrwInst,
	OpSkipKeyPressed:       chip8.SkpInst,
	OpSkipKeyNotPressed:    chip8.SknpInst,
	OpLoadDelay:            chip8.LdInst,
	OpWaitKey:              chip8.LdInst,
	OpSetDelay:             chip8.LdInst,
	OpSetSound:             chip8.LdInst,
	OpAddIndex:             chip8.AddInst,
	OpLoadFont:             chip8.LdInst,
	OpStoreBCD:             chip8.LdInst,
	OpStoreRegisters:       chip8.LdInst,
	OpLoadRegisters:        chip8.LdInst,
}

// String returns the descriptive name of the operation.
func (o Operation) String() string {
	if o >= operationCount {
		return operationNames[OpUnknown]
	}
	return operationNames[o]
}

// Instruction returns the instruction definition of the operation.
// It returns nil for OpUnknown and OpSystem which have no mnemonic in the
// instruction set definition.
func (o Operation) Instruction() *chip8.Instruction {
	if o >= operationCount {
		return nil
	}
	return instructions[o]
}

// Mnemonic returns the assembler mnemonic of the operation.
func (o Operation) Mnemonic() string {
	switch o {
	case OpSystem:
		return "sys"
	case OpUnknown:
		return ""
	}
	if ins := o.Instruction(); ins != nil {
		return ins.Name
	}
	return ""
}

// IsJump returns true if the operation is an unconditional jump.
func (o Operation) IsJump() bool {
	return o.Instruction() == chip8.JpInst
}

// IsCall returns true if the operation is a subroutine call.
func (o Operation) IsCall() bool {
	return o.Instruction() == chip8.CallInst
}

// IsReturn returns true if the operation returns from a subroutine.
func (o Operation) IsReturn() bool {
	return o.Instruction() == chip8.RetInst
}

// IsSkip returns true if the operation conditionally skips the next instruction.
func (o Operation) IsSkip() bool {
	ins := o.Instruction()
	if ins == nil {
		return false
	}
	return chip8.SkipInstructions.Contains(ins.Name)
}

// transfersControl returns true if the operation sets the program counter to
// a target address instead of advancing it.
func (o Operation) transfersControl() bool {
	return o.IsJump() || o.IsCall() || o.IsReturn()
}

// ReadsMemory returns true if the operation reads from memory at the index register.
func (o Operation) ReadsMemory() bool {
	return o == OpDraw || o == OpLoadRegisters
}

// WritesMemory returns true if the operation writes to memory at the index register.
func (o Operation) WritesMemory() bool {
	return o == OpStoreBCD || o == OpStoreRegisters
}
