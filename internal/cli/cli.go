// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/emulator"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	opts.Input = args[0]
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <rom file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	if len(args) > 1 {
		return &UsageError{
			msg: fmt.Sprintf("only one ROM file can be run, got %d", len(args)),
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	name, err := frontend.Normalize(opts.Frontend)
	if err != nil {
		return err
	}
	opts.Frontend = name

	if opts.InstructionsPerSecond <= 0 || opts.InstructionsPerSecond > emulator.MaxInstructionsPerSecond {
		return fmt.Errorf("invalid instructions per second %d, must be between 1 and %d",
			opts.InstructionsPerSecond, emulator.MaxInstructionsPerSecond)
	}
	if opts.TimerFrequency <= 0 || opts.TimerFrequency > emulator.MaxTimerFrequency {
		return fmt.Errorf("invalid timer frequency %d, must be between 1 and %d",
			opts.TimerFrequency, emulator.MaxTimerFrequency)
	}
	if opts.Scale < 1 {
		return fmt.Errorf("invalid scale %d, must be at least 1", opts.Scale)
	}
	if opts.Duration < 0 {
		return fmt.Errorf("invalid duration %s, must not be negative", opts.Duration)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Frontend, "f", frontend.Auto, "frontend to use (auto/terminal/window/headless)")
	flags.IntVar(&opts.InstructionsPerSecond, "ips", emulator.DefaultInstructionsPerSecond, "instructions executed per second")
	flags.IntVar(&opts.TimerFrequency, "timer", emulator.DefaultTimerFrequency, "delay and sound timer frequency in Hz")
	flags.IntVar(&opts.Scale, "scale", 10, "pixel scale of the window frontend")
	flags.DurationVar(&opts.Duration, "duration", 0, "stop after the given duration, for example 5s")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed of the random number generator, 0 uses a random seed")
	flags.BoolVar(&opts.ShiftUsesVY, "shift-vy", false, "shift instructions shift Vy into Vx instead of shifting Vx in place")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, requires -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("retrochip8", log.String("version", buildinfo.Version(version, commit, date)))
}
