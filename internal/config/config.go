// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/emulator"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// MachineConfig returns the machine configuration for the program options.
func MachineConfig(opts options.Program, logger *log.Logger) chip8.Config {
	cfg := chip8.Config{
		Quirks: chip8.Quirks{
			ShiftUsesVY: opts.ShiftUsesVY,
		},
		Logger: logger,
		Trace:  opts.Trace,
	}
	if opts.Seed != 0 {
		cfg.Random = chip8.NewSeededRandom(opts.Seed)
	}
	return cfg
}

// EmulatorConfig returns the pacing configuration for the program options.
func EmulatorConfig(opts options.Program) emulator.Config {
	return emulator.Config{
		InstructionsPerSecond: opts.InstructionsPerSecond,
		TimerFrequency:        opts.TimerFrequency,
	}
}
