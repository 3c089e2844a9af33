package config

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}

func TestMachineConfig(t *testing.T) {
	logger := log.NewTestLogger(t)

	t.Run("defaults", func(t *testing.T) {
		cfg := MachineConfig(options.Program{}, logger)
		assert.False(t, cfg.Quirks.ShiftUsesVY)
		assert.False(t, cfg.Trace)
		assert.Nil(t, cfg.Random)
		assert.Equal(t, logger, cfg.Logger)
	})

	t.Run("seeded with quirks", func(t *testing.T) {
		opts := options.Program{
			Flags:  options.Flags{Trace: true},
			Timing: options.Timing{Seed: 7},
			Quirks: options.Quirks{ShiftUsesVY: true},
		}
		cfg := MachineConfig(opts, logger)
		assert.True(t, cfg.Quirks.ShiftUsesVY)
		assert.True(t, cfg.Trace)
		assert.NotNil(t, cfg.Random)

		// same seed, same sequence
		other := MachineConfig(opts, logger)
		for range 16 {
			assert.Equal(t, cfg.Random.Byte(), other.Random.Byte())
		}
	})
}

func TestEmulatorConfig(t *testing.T) {
	cfg := EmulatorConfig(options.Program{
		Timing: options.Timing{InstructionsPerSecond: 900, TimerFrequency: 50},
	})
	assert.Equal(t, 900, cfg.InstructionsPerSecond)
	assert.Equal(t, 50, cfg.TimerFrequency)
}
