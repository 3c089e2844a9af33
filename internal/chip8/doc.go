// Package chip8 implements the CHIP-8 virtual machine core.
//
// # Machine Overview
//
// CHIP-8 is an interpreted programming language developed in the 1970s for simple games
// on early microcomputers. This package emulates the classic machine with its full
// 35 instruction set and nothing beyond it.
//
// # Memory Layout
//
// The machine has 4KB of memory (0x000-MaxAddress):
//   - 0x000-0x1FF: Interpreter area, holds the font glyphs at FontStart
//   - ProgramStart-MaxAddress: Program and data area, the ROM is copied to ProgramStart
//
// The display buffer (64x32 pixels), the call stack and the keypad are kept outside
// of the addressable memory.
//
// # Execution
//
// A host calls Step once per emulated cycle. Step fetches the big-endian instruction word
// at the program counter, advances the counter by 2, decodes the word and dispatches it
// to the handler of the decoded operation. Unknown words are counted and skipped.
// The delay and sound timers are not touched by Step, the host drives them by calling
// TickTimers at 60 Hz from its own schedule.
//
// # Errors
//
// Stack overflow, stack underflow and out of bounds memory accesses are returned from
// Step wrapped in a *StepError. A failing step does not change the machine state, the
// program counter keeps pointing at the faulting instruction.
//
// # Concurrency
//
// A Machine is not safe for concurrent use. Hosts that run rendering, input and timers
// on separate goroutines have to serialize access, see the emulator package.
//
// # Usage Example
//
//	m := chip8.New(chip8.Config{})
//	if err := m.LoadROM(rom); err != nil {
//		return fmt.Errorf("loading rom: %w", err)
//	}
//	for {
//		if err := m.Step(); err != nil {
//			return fmt.Errorf("executing step: %w", err)
//		}
//	}
package chip8
