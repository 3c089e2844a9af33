package chip8

// CHIP-8 memory layout constants.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000

	// MaxAddress is the highest valid address in CHIP-8 memory space.
	MaxAddress = MemorySize - 1

	// ProgramStart is the memory address where CHIP-8 programs are loaded and
	// where execution begins.
	ProgramStart = 0x200

	// MaxProgramCounter is the highest address an instruction can be fetched from,
	// both bytes of the instruction word have to be inside memory.
	MaxProgramCounter = MaxAddress - 1

	// MaxROMSize is the largest ROM that fits into memory starting at ProgramStart.
	MaxROMSize = MemorySize - ProgramStart

	// FontStart is the address of the first font glyph.
	FontStart = 0x050
)

// Machine dimensions.
const (
	RegisterCount = 16
	StackDepth    = 16
	KeyCount      = 16

	DisplayWidth  = 64
	DisplayHeight = 32

	// TimerFrequency is the rate in Hz at which the delay and sound timers count down.
	TimerFrequency = 60

	// InstructionSize is the size of every CHIP-8 instruction in bytes.
	InstructionSize = 2
)

// flagRegister is the index of VF.
const flagRegister = 0xF
