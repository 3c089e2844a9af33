package chip8

import (
	"errors"
	"fmt"
)

var (
	// ErrStackOverflow is returned when a call is executed with a full call stack.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned when a return is executed with an empty call stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrAddressOutOfBounds is returned for memory accesses or control transfers
	// that resolve outside of the machine memory.
	ErrAddressOutOfBounds = errors.New("address out of bounds")
	// ErrROMTooLarge is returned when a ROM does not fit into the program area.
	ErrROMTooLarge = errors.New("rom too large")
	// ErrInvalidKey is returned for keypad indexes above 0xF.
	ErrInvalidKey = errors.New("invalid key")
	// ErrUnrecognizedOpcode marks an instruction word that does not decode to any
	// operation. Step treats it as a no-op, it is only used for diagnostics.
	ErrUnrecognizedOpcode = errors.New("unrecognized opcode")
)

// StepError describes a failed step. It wraps the error kind so that errors.Is
// can be used to match the sentinel errors of this package.
type StepError struct {
	Address     uint16      // address of the faulting instruction
	Instruction Instruction // decoded faulting instruction
	Err         error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("executing %04X at $%03X (%s): %s",
		e.Instruction.Word, e.Address, e.Instruction, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// rangeError returns an out of bounds error for an access of size bytes at address.
func rangeError(address uint16, size int) error {
	return fmt.Errorf("%w: $%04X+%d", ErrAddressOutOfBounds, address, size)
}
