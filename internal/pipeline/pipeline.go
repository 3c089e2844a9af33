// Package pipeline orchestrates the emulation workflow stages.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/emulator"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/sync/errgroup"
)

// Pipeline orchestrates the complete emulation workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
	out      io.Writer // output of the headless frontend
}

// New creates a new emulation pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
		out:      os.Stdout,
	}
}

// Execute detects the frontend, loads the ROM and runs it until the user
// quits, the duration elapses, the context is done or the machine halts.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) error {
	frontendName := p.detector.Detect(opts)

	rom, err := p.loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading rom: %w", err)
	}

	return p.ExecuteWithROM(ctx, rom, opts, frontendName)
}

// ExecuteWithROM runs the emulation of an already loaded ROM with the given frontend.
func (p *Pipeline) ExecuteWithROM(ctx context.Context, rom []byte, opts options.Program, frontendName string) error {
	machine := chip8.New(config.MachineConfig(opts, p.logger))
	if err := machine.LoadROM(rom); err != nil {
		return fmt.Errorf("loading rom into machine: %w", err)
	}
	emu := emulator.New(p.logger, machine, config.EmulatorConfig(opts))

	fe, err := p.createFrontend(frontendName, opts)
	if err != nil {
		return fmt.Errorf("creating frontend: %w", err)
	}

	p.printInfo(opts, frontendName, len(rom))

	if opts.Duration > 0 && frontendName != frontend.Headless {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Duration)
		defer cancel()
	}

	err = p.run(ctx, emu, fe)
	p.printDiagnostics(emu.Diagnostics())
	return err
}

// createFrontend returns the frontend for the given name.
func (p *Pipeline) createFrontend(name string, opts options.Program) (frontend.Frontend, error) {
	switch name {
	case frontend.Terminal:
		return frontend.NewTerminal(p.logger, os.Stdin, os.Stdout), nil
	case frontend.Window:
		return frontend.NewWindow(p.logger, opts.Scale), nil
	case frontend.Headless:
		return frontend.NewHeadless(p.logger, p.out, opts.Duration), nil
	default:
		return nil, fmt.Errorf("unsupported frontend '%s'", name)
	}
}

// run executes the emulator in the background and the frontend on the calling
// goroutine, some window systems require the main goroutine.
func (p *Pipeline) run(ctx context.Context, emu *emulator.Emulator, fe frontend.Frontend) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, groupCtx := errgroup.WithContext(runCtx)
	group.Go(func() error {
		return emu.Run(groupCtx)
	})

	frontendErr := fe.Run(groupCtx, emu)
	cancel()
	emuErr := group.Wait()

	if emuErr != nil && !isContextError(emuErr) {
		return fmt.Errorf("emulating: %w", emuErr)
	}

	switch {
	case frontendErr == nil, errors.Is(frontendErr, frontend.ErrQuit):
		return nil
	case isContextError(frontendErr):
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil
		}
		return ctx.Err()
	default:
		return fmt.Errorf("running frontend: %w", frontendErr)
	}
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (p *Pipeline) printInfo(opts options.Program, frontendName string, size int) {
	if opts.Quiet {
		return
	}
	p.logger.Info("Running CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", size),
		log.String("frontend", frontendName),
	)
}

func (p *Pipeline) printDiagnostics(diag chip8.Diagnostics) {
	p.logger.Debug("Emulation finished",
		log.String("steps", fmt.Sprint(diag.Steps)),
		log.String("unknown_opcodes", fmt.Sprint(diag.UnknownCount)))

	if len(diag.UnknownWords) > 0 {
		p.logger.Warn("ROM used unrecognized opcodes",
			log.Int("distinct", len(diag.UnknownWords)),
			log.String("first", fmt.Sprintf("%04X", diag.UnknownWords[0])))
	}
}
