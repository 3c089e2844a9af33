// Package main implements a CHIP-8 execution tracer that runs a ROM for a
// fixed number of instructions and dumps the executed instructions and the
// final machine state.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrogolib/buildinfo"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

type optionFlags struct {
	input  string
	output string

	steps         int
	stepsPerFrame int
	seed          uint64
	shiftUsesVY   bool

	noTrace bool
	quiet   bool
}

func main() {
	options := readArguments()

	if !options.quiet {
		printBanner()
	}

	if err := dumpFile(options); err != nil {
		fmt.Println(fmt.Errorf("dumping failed: %w", err))
		os.Exit(1)
	}
}

func readArguments() optionFlags {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	options := optionFlags{}

	flags.StringVar(&options.output, "o", "", "name of the output file, printed on console if no name given")
	flags.IntVar(&options.steps, "steps", 1000, "number of instructions to execute")
	flags.IntVar(&options.stepsPerFrame, "spf", 12, "instructions executed per timer tick")
	flags.Uint64Var(&options.seed, "seed", 1, "seed of the random number generator")
	flags.BoolVar(&options.shiftUsesVY, "shift-vy", false, "shift instructions shift Vy into Vx")
	flags.BoolVar(&options.noTrace, "notrace", false, "do not output the executed instructions")
	flags.BoolVar(&options.quiet, "q", false, "perform operations quietly")

	err := flags.Parse(os.Args[1:])
	args := flags.Args()

	if err != nil || len(args) == 0 || options.steps < 0 || options.stepsPerFrame < 1 {
		printBanner()
		fmt.Printf("usage: chip8dump [options] <rom file>\n\n")
		flags.PrintDefaults()
		os.Exit(1)
	}
	options.input = args[0]

	return options
}

func printBanner() {
	fmt.Println("[-------------------------------------]")
	fmt.Println("[ chip8dump - CHIP-8 execution tracer ]")
	fmt.Printf("[-------------------------------------]\n\n")
	fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
}

func dumpFile(options optionFlags) error {
	rom, err := loader.New().Load(options.input)
	if err != nil {
		return fmt.Errorf("loading rom: %w", err)
	}

	machine := chip8.New(chip8.Config{
		Quirks: chip8.Quirks{ShiftUsesVY: options.shiftUsesVY},
		Random: chip8.NewSeededRandom(options.seed),
	})
	if err := machine.LoadROM(rom); err != nil {
		return fmt.Errorf("loading rom into machine: %w", err)
	}

	var runErr error
	err = writeOutput(options.output, func(w io.Writer) error {
		runErr = execute(w, machine, options)
		return writeState(w, machine)
	})
	if err != nil {
		return err
	}
	return runErr
}

// writeOutput calls write with a buffered writer for the named output file,
// the console is used if no name is given.
func writeOutput(name string, write func(w io.Writer) error) error {
	var outputFile io.WriteCloser = os.Stdout
	if name != "" {
		file, err := os.Create(name)
		if err != nil {
			return fmt.Errorf("creating file '%s': %w", name, err)
		}
		outputFile = file
	}

	w := bufio.NewWriter(outputFile)
	if err := write(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if outputFile != os.Stdout {
		if err := outputFile.Close(); err != nil {
			return fmt.Errorf("closing file: %w", err)
		}
	}
	return nil
}

// execute runs the machine and writes one line per executed instruction.
func execute(w io.Writer, machine *chip8.Machine, options optionFlags) error {
	for i := range options.steps {
		if i > 0 && i%options.stepsPerFrame == 0 {
			machine.TickTimers()
		}

		pc := machine.PC()
		if !options.noTrace {
			data, err := machine.ReadMemory(pc, chip8.InstructionSize)
			if err != nil {
				return err
			}
			word := uint16(data[0])<<8 | uint16(data[1])
			if _, err := fmt.Fprintf(w, "$%03X  %04X  %s\n", pc, word, chip8.Decode(word)); err != nil {
				return fmt.Errorf("writing trace: %w", err)
			}
		}

		if err := machine.Step(); err != nil {
			var stepErr *chip8.StepError
			if errors.As(err, &stepErr) {
				_, _ = fmt.Fprintf(w, "halted after %d instructions: %s\n", i, stepErr)
			}
			return err
		}
	}
	return nil
}

func writeState(w io.Writer, machine *chip8.Machine) error {
	registers := machine.Registers()
	if _, err := fmt.Fprintf(w, "\nPC=$%03X I=$%03X SP=%d DT=%02X ST=%02X\n",
		machine.PC(), machine.Index(), machine.StackDepth(), machine.DelayTimer(), machine.SoundTimer()); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	for x, value := range registers {
		sep := " "
		if x == len(registers)-1 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(w, "V%X=%02X%s", x, value, sep); err != nil {
			return fmt.Errorf("writing state: %w", err)
		}
	}

	diag := machine.Diagnostics()
	if diag.UnknownCount > 0 {
		if _, err := fmt.Fprintf(w, "unrecognized opcodes: %d (%d distinct)\n", diag.UnknownCount, len(diag.UnknownWords)); err != nil {
			return fmt.Errorf("writing state: %w", err)
		}
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	fb := machine.Framebuffer()
	return frontend.RenderText(w, &fb)
}
