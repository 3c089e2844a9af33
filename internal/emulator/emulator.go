// Package emulator runs a CHIP-8 machine in real time and provides a
// goroutine safe surface for frontends.
package emulator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/sync/errgroup"
)

// Default execution rates.
const (
	DefaultInstructionsPerSecond = 700
	DefaultTimerFrequency        = chip8.TimerFrequency
)

// Upper limits of the execution rates.
const (
	MaxInstructionsPerSecond = 1_000_000
	MaxTimerFrequency        = 1000
)

// batchRate is the number of instruction batches executed per second.
const batchRate = 240

// Config contains the pacing configuration.
type Config struct {
	InstructionsPerSecond int
	TimerFrequency        int
}

// Snapshot is a consistent copy of the machine state visible to a frontend.
type Snapshot struct {
	Framebuffer chip8.Framebuffer
	PC          uint16
	DelayTimer  byte
	SoundTimer  byte
	SoundActive bool
	Steps       uint64
	Err         error // step error that halted the machine
}

// Emulator paces a machine and serializes all access to it.
type Emulator struct {
	logger *log.Logger
	cfg    Config

	mu      sync.Mutex
	machine *chip8.Machine
	halted  error
	pending float64 // fractional instructions carried to the next batch
}

// New returns a new emulator for the machine. Zero rates select the defaults,
// rates above the limits are capped.
func New(logger *log.Logger, machine *chip8.Machine, cfg Config) *Emulator {
	if cfg.InstructionsPerSecond <= 0 {
		cfg.InstructionsPerSecond = DefaultInstructionsPerSecond
	}
	cfg.InstructionsPerSecond = min(cfg.InstructionsPerSecond, MaxInstructionsPerSecond)
	if cfg.TimerFrequency <= 0 {
		cfg.TimerFrequency = DefaultTimerFrequency
	}
	cfg.TimerFrequency = min(cfg.TimerFrequency, MaxTimerFrequency)
	return &Emulator{
		logger:  logger,
		cfg:     cfg,
		machine: machine,
	}
}

// Config returns the effective pacing configuration.
func (e *Emulator) Config() Config {
	return e.cfg
}

// Run executes instructions and ticks the timers until the context is done
// or a step fails. The timers run on their own schedule, independent of the
// instruction rate.
func (e *Emulator) Run(ctx context.Context) error {
	e.logger.Debug("Starting emulation",
		log.Int("instructions_per_second", e.cfg.InstructionsPerSecond),
		log.Int("timer_frequency", e.cfg.TimerFrequency))

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return e.runInstructions(ctx)
	})
	group.Go(func() error {
		return e.runTimers(ctx)
	})
	return group.Wait()
}

func (e *Emulator) runInstructions(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / batchRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := e.runBatch(); err != nil {
				return err
			}
		}
	}
}

// runBatch executes the instructions due for one batch interval.
func (e *Emulator) runBatch() error {
	e.mu.Lock()
	e.pending += float64(e.cfg.InstructionsPerSecond) / batchRate
	count := int(e.pending)
	e.pending -= float64(count)
	e.mu.Unlock()

	if err := e.RunSteps(count); err != nil {
		return fmt.Errorf("running machine: %w", err)
	}
	return nil
}

func (e *Emulator) runTimers(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(e.cfg.TimerFrequency))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			e.TickTimers()
		}
	}
}

// Step executes a single instruction.
func (e *Emulator) Step() error {
	return e.RunSteps(1)
}

// RunSteps executes count instructions while holding the lock. A failed step
// halts the emulator, all later calls return the same error.
func (e *Emulator) RunSteps(count int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.halted != nil {
		return e.halted
	}
	for range count {
		if err := e.machine.Step(); err != nil {
			e.halted = err
			e.logger.Debug("Machine halted",
				log.Hex("pc", e.machine.PC()),
				log.Err(err))
			return err
		}
	}
	return nil
}

// TickTimers decrements the machine timers once.
func (e *Emulator) TickTimers() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.machine.TickTimers()
}

// SetKey updates the pressed state of a keypad key.
func (e *Emulator) SetKey(key uint8, pressed bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.machine.SetKey(key, pressed); err != nil {
		return fmt.Errorf("setting key: %w", err)
	}
	return nil
}

// Reset restarts the loaded program and clears a halt.
func (e *Emulator) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.machine.Reset()
	e.halted = nil
	e.pending = 0
}

// Snapshot returns a copy of the state a frontend needs for rendering.
func (e *Emulator) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Snapshot{
		Framebuffer: e.machine.Framebuffer(),
		PC:          e.machine.PC(),
		DelayTimer:  e.machine.DelayTimer(),
		SoundTimer:  e.machine.SoundTimer(),
		SoundActive: e.machine.SoundActive(),
		Steps:       e.machine.Diagnostics().Steps,
		Err:         e.halted,
	}
}

// Diagnostics returns the execution counters of the machine.
func (e *Emulator) Diagnostics() chip8.Diagnostics {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.machine.Diagnostics()
}
