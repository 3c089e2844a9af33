package chip8

import (
	"fmt"
	"slices"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// Machine is the CHIP-8 virtual machine state.
type Machine struct {
	v     [RegisterCount]byte
	index uint16
	pc    uint16
	mem   memory
	stack stack

	delayTimer byte
	soundTimer byte

	keys        [KeyCount]bool
	framebuffer Framebuffer

	rom []byte

	quirks Quirks
	random RandomSource
	logger *log.Logger
	trace  bool

	steps        uint64
	unknownCount uint64
	unknownWords set.Set[uint16]
}

// Diagnostics contains execution counters of a machine.
type Diagnostics struct {
	Steps        uint64   // successfully executed steps
	UnknownCount uint64   // executed unrecognized instruction words
	UnknownWords []uint16 // distinct unrecognized instruction words, sorted
}

// New returns a machine in power-on state with the font loaded.
func New(cfg Config) *Machine {
	m := &Machine{
		quirks:       cfg.Quirks,
		random:       cfg.Random,
		logger:       cfg.Logger,
		trace:        cfg.Trace,
		unknownWords: set.New[uint16](),
	}
	if m.random == nil {
		m.random = globalRandom{}
	}
	if m.logger == nil {
		logCfg := log.DefaultConfig()
		logCfg.Level = log.ErrorLevel
		m.logger = log.NewWithConfig(logCfg)
	}
	m.powerOn()
	return m
}

// powerOn resets all state except the loaded ROM and the diagnostics.
func (m *Machine) powerOn() {
	m.v = [RegisterCount]byte{}
	m.index = 0
	m.pc = ProgramStart
	m.mem = memory{}
	m.stack = stack{}
	m.delayTimer = 0
	m.soundTimer = 0
	m.keys = [KeyCount]bool{}
	m.framebuffer.clear()
	copy(m.mem[FontStart:], fontSet[:])
}

// LoadROM copies the ROM into memory at ProgramStart. A ROM that does not
// fit into memory is rejected and leaves the machine unmodified.
func (m *Machine) LoadROM(rom []byte) error {
	if len(rom) > MaxROMSize {
		return fmt.Errorf("%w: %d bytes exceed the maximum of %d bytes",
			ErrROMTooLarge, len(rom), MaxROMSize)
	}
	clear(m.mem[ProgramStart:])
	if err := m.mem.write(ProgramStart, rom); err != nil {
		return fmt.Errorf("writing rom to memory: %w", err)
	}
	m.rom = slices.Clone(rom)
	return nil
}

// Reset returns the machine to power-on state and reloads the last loaded ROM.
func (m *Machine) Reset() {
	m.powerOn()
	copy(m.mem[ProgramStart:], m.rom)
}

// Step executes a single fetch-decode-execute cycle. Unknown instruction words
// are skipped. On error the machine state is unchanged and the program counter
// still points at the faulting instruction.
func (m *Machine) Step() error {
	address := m.pc
	word, err := m.mem.word(address)
	if err != nil {
		return &StepError{Address: address, Err: err}
	}
	ins := Decode(word)

	next := address + InstructionSize
	if next > MaxProgramCounter && !ins.Op.transfersControl() {
		return &StepError{Address: address, Instruction: ins, Err: rangeError(next, InstructionSize)}
	}

	if m.trace {
		m.logger.Debug("Executing instruction",
			log.Hex("address", address),
			log.Hex("opcode", word),
			log.Stringer("instruction", ins))
	}

	m.pc = next
	if ins.Op == OpUnknown {
		m.recordUnknown(address, word)
		m.steps++
		return nil
	}

	if err := handlers[ins.Op](m, ins); err != nil {
		m.pc = address
		return &StepError{Address: address, Instruction: ins, Err: err}
	}
	m.steps++
	return nil
}

func (m *Machine) recordUnknown(address, word uint16) {
	m.unknownCount++
	if m.unknownWords.Contains(word) {
		return
	}
	m.unknownWords.Add(word)
	m.logger.Debug("Skipping unrecognized opcode",
		log.Hex("address", address),
		log.Hex("opcode", word),
		log.Err(ErrUnrecognizedOpcode))
}

// TickTimers decrements the delay and sound timers by one, stopping at zero.
// The host calls it at TimerFrequency.
func (m *Machine) TickTimers() {
	if m.delayTimer > 0 {
		m.delayTimer--
	}
	if m.soundTimer > 0 {
		m.soundTimer--
	}
}

// SetKey sets the pressed state of a keypad key.
func (m *Machine) SetKey(key uint8, pressed bool) error {
	if key >= KeyCount {
		return fmt.Errorf("%w: $%02X", ErrInvalidKey, key)
	}
	m.keys[key] = pressed
	return nil
}

// PC returns the program counter.
func (m *Machine) PC() uint16 {
	return m.pc
}

// Index returns the index register I.
func (m *Machine) Index() uint16 {
	return m.index
}

// Register returns the value of register Vx, x is masked to 0-F.
func (m *Machine) Register(x uint8) byte {
	return m.v[x&0xF]
}

// Registers returns a copy of V0-VF.
func (m *Machine) Registers() [RegisterCount]byte {
	return m.v
}

// StackDepth returns the number of return addresses on the call stack.
func (m *Machine) StackDepth() int {
	return m.stack.depth
}

func (m *Machine) DelayTimer() byte {
	return m.delayTimer
}

func (m *Machine) SoundTimer() byte {
	return m.soundTimer
}

// SoundActive returns whether the host should currently emit a tone.
func (m *Machine) SoundActive() bool {
	return m.soundTimer > 0
}

// Framebuffer returns a copy of the display.
func (m *Machine) Framebuffer() Framebuffer {
	return m.framebuffer
}

// Keypad returns a copy of the keypad state.
func (m *Machine) Keypad() [KeyCount]bool {
	return m.keys
}

// ReadMemory returns a copy of size bytes of memory starting at address.
func (m *Machine) ReadMemory(address uint16, size int) ([]byte, error) {
	data, err := m.mem.read(address, size)
	if err != nil {
		return nil, err
	}
	return slices.Clone(data), nil
}

// Diagnostics returns the execution counters.
func (m *Machine) Diagnostics() Diagnostics {
	return Diagnostics{
		Steps:        m.steps,
		UnknownCount: m.unknownCount,
		UnknownWords: set.Sorted(m.unknownWords),
	}
}
