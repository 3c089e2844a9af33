package emulator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func newTestEmulator(t *testing.T, cfg Config, words ...uint16) *Emulator {
	t.Helper()
	logger := log.NewTestLogger(t)

	rom := make([]byte, 0, 2*len(words))
	for _, word := range words {
		rom = append(rom, byte(word>>8), byte(word))
	}
	machine := chip8.New(chip8.Config{Logger: logger, Random: chip8.NewSeededRandom(1)})
	assert.NoError(t, machine.LoadROM(rom))
	return New(logger, machine, cfg)
}

func TestNew_Defaults(t *testing.T) {
	e := newTestEmulator(t, Config{})
	cfg := e.Config()
	assert.Equal(t, DefaultInstructionsPerSecond, cfg.InstructionsPerSecond)
	assert.Equal(t, DefaultTimerFrequency, cfg.TimerFrequency)
}

func TestNew_CapsRates(t *testing.T) {
	e := newTestEmulator(t, Config{InstructionsPerSecond: 1 << 40, TimerFrequency: 2_000_000_000})
	cfg := e.Config()
	assert.Equal(t, MaxInstructionsPerSecond, cfg.InstructionsPerSecond)
	assert.Equal(t, MaxTimerFrequency, cfg.TimerFrequency)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.True(t, errors.Is(e.Run(ctx), context.DeadlineExceeded))
}

func TestEmulator_RunSteps(t *testing.T) {
	e := newTestEmulator(t, Config{}, 0x6A3C, 0x7A01, 0x1202)

	assert.NoError(t, e.RunSteps(10))
	snapshot := e.Snapshot()
	assert.Equal(t, uint64(10), snapshot.Steps)
	assert.Equal(t, uint16(0x204), snapshot.PC)
	assert.Nil(t, snapshot.Err)
}

func TestEmulator_HaltsOnError(t *testing.T) {
	e := newTestEmulator(t, Config{}, 0x00EE)

	err := e.Step()
	assert.True(t, errors.Is(err, chip8.ErrStackUnderflow))

	err = e.RunSteps(1)
	assert.True(t, errors.Is(err, chip8.ErrStackUnderflow))
	assert.True(t, errors.Is(e.Snapshot().Err, chip8.ErrStackUnderflow))

	e.Reset()
	assert.Nil(t, e.Snapshot().Err)
}

func TestEmulator_SetKey(t *testing.T) {
	e := newTestEmulator(t, Config{}, 0xF50A, 0x1202)

	assert.NoError(t, e.RunSteps(3))
	assert.Equal(t, uint16(0x200), e.Snapshot().PC)

	assert.NoError(t, e.SetKey(0x4, true))
	assert.NoError(t, e.Step())
	assert.Equal(t, uint16(0x202), e.Snapshot().PC)

	err := e.SetKey(0x10, true)
	assert.True(t, errors.Is(err, chip8.ErrInvalidKey))
}

func TestEmulator_Run(t *testing.T) {
	e := newTestEmulator(t, Config{InstructionsPerSecond: 2000, TimerFrequency: 60},
		0x60FF, // ld V0, $FF
		0xF015, // ld DT, V0
		0x1204, // jp $204
	)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	err := e.Run(ctx)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	snapshot := e.Snapshot()
	assert.True(t, snapshot.Steps > 2)
	assert.True(t, snapshot.DelayTimer < 0xFF)
	assert.True(t, snapshot.DelayTimer > 0)
}

func TestEmulator_RunStepError(t *testing.T) {
	e := newTestEmulator(t, Config{InstructionsPerSecond: 1000}, 0x00EE)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	err := e.Run(ctx)
	assert.True(t, errors.Is(err, chip8.ErrStackUnderflow))
	assert.ErrorContains(t, err, "running machine")
	assert.True(t, time.Since(start) < time.Second, "halt did not stop the run")
}

func TestEmulator_ConcurrentAccess(t *testing.T) {
	e := newTestEmulator(t, Config{InstructionsPerSecond: 5000},
		0xA050, // ld I, glyph 0
		0xD015, // drw V0, V1, 5
		0x1202, // jp $202
	)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for ctx.Err() == nil {
			_ = e.Snapshot()
			_ = e.SetKey(1, true)
			_ = e.SetKey(1, false)
		}
	}()

	err := e.Run(ctx)
	wg.Wait()
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.True(t, e.Diagnostics().Steps > 0)
}
