// Package options contains the program options.
package options

import (
	"time"
)

// Parameters contains file path options.
type Parameters struct {
	Input string `arg:"positional" usage:"CHIP-8 ROM file to run"`
}

// Flags contains behavior options.
type Flags struct {
	Frontend string `flag:"f" usage:"frontend: auto, terminal, window, headless" default:"auto"`
	Trace    bool   `flag:"trace" usage:"log every executed instruction (requires -debug)"`
	Debug    bool   `flag:"debug" usage:"enable debug logging"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
}

// Timing contains the pacing options.
type Timing struct {
	InstructionsPerSecond int           `flag:"ips" usage:"instructions executed per second" default:"700"`
	TimerFrequency        int           `flag:"timer" usage:"delay and sound timer frequency in Hz" default:"60"`
	Duration              time.Duration `flag:"duration" usage:"stop after this duration, 0 runs until quit"`
	Seed                  uint64        `flag:"seed" usage:"random number generator seed, 0 uses a random seed"`
}

// Display contains the window options.
type Display struct {
	Scale int `flag:"scale" usage:"window pixel scale" default:"10"`
}

// Quirks contains the compatibility options of the machine.
type Quirks struct {
	ShiftUsesVY bool `flag:"shift-vy" usage:"8xy6/8xyE shift Vy into Vx instead of shifting Vx"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	Timing
	Display
	Quirks
}
