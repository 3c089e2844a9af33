package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func newMachine(t *testing.T, rom []byte) *chip8.Machine {
	t.Helper()
	machine := chip8.New(chip8.Config{Random: chip8.NewSeededRandom(1)})
	assert.NoError(t, machine.LoadROM(rom))
	return machine
}

func TestExecute(t *testing.T) {
	machine := newMachine(t, []byte{
		0x60, 0x2A, // LD V0, $2A
		0x12, 0x02, // JP $202
	})

	var buf bytes.Buffer
	err := execute(&buf, machine, optionFlags{steps: 3, stepsPerFrame: 12})
	assert.NoError(t, err)
	assert.Equal(t, "$200  602A  ld V0, $2A\n$202  1202  jp $202\n$202  1202  jp $202\n", buf.String())
	assert.Equal(t, byte(0x2A), machine.Register(0))
}

func TestExecute_Halt(t *testing.T) {
	machine := newMachine(t, []byte{0x00, 0xEE})

	var buf bytes.Buffer
	err := execute(&buf, machine, optionFlags{steps: 5, stepsPerFrame: 12, noTrace: true})
	assert.True(t, errors.Is(err, chip8.ErrStackUnderflow))
	assert.Contains(t, buf.String(), "halted after 0 instructions")
}

func TestWriteState(t *testing.T) {
	machine := newMachine(t, []byte{0x6F, 0x01})
	assert.NoError(t, machine.Step())

	var buf bytes.Buffer
	assert.NoError(t, writeState(&buf, machine))

	output := buf.String()
	assert.Contains(t, output, "PC=$202 I=$000 SP=0 DT=00 ST=00")
	assert.Contains(t, output, "VF=01\n")
}
