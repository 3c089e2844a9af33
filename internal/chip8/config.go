package chip8

import (
	"github.com/retroenv/retrogolib/log"
)

// Quirks selects between historical divergences of CHIP-8 interpreters.
type Quirks struct {
	// ShiftUsesVY makes 8xy6 and 8xyE shift Vy and store the result in Vx
	// instead of shifting Vx in place.
	ShiftUsesVY bool
}

// Config contains the machine configuration. The zero value is usable.
type Config struct {
	Quirks Quirks

	// Random is the byte source of the Cxkk instruction, nil selects a
	// randomly seeded source.
	Random RandomSource

	// Logger receives debug output about unknown opcodes and traced instructions,
	// nil disables logging.
	Logger *log.Logger

	// Trace logs every executed instruction at debug level.
	Trace bool
}
