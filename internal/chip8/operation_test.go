package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestOperation_Instruction(t *testing.T) {
	tests := []struct {
		op       Operation
		expected *chip8.Instruction
	}{
		{OpClear, chip8.ClsInst},
		{OpReturn, chip8.RetInst},
		{OpJump, chip8.JpInst},
		{OpJumpOffset, chip8.JpInst},
		{OpCall, chip8.CallInst},
		{OpSkipEqualRegister, chip8.SeInst},
		{OpSkipNotEqualRegister, chip8.SneInst},
		{OpLoadIndex, chip8.LdInst},
		{OpAddIndex, chip8.AddInst},
		{OpSubN, chip8.SubnInst},
		{OpDraw, chip8.DrwInst},
		{OpSkipKeyNotPressed, chip8.SknpInst},
		{OpSystem, nil},
		{OpUnknown, nil},
		{operationCount, nil},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.op.Instruction())
		})
	}
}

func TestOperation_Classification(t *testing.T) {
	tests := []struct {
		op     Operation
		jump   bool
		call   bool
		ret    bool
		skip   bool
		reads  bool
		writes bool
	}{
		{op: OpJump, jump: true},
		{op: OpJumpOffset, jump: true},
		{op: OpCall, call: true},
		{op: OpReturn, ret: true},
		{op: OpSkipEqualByte, skip: true},
		{op: OpSkipNotEqualByte, skip: true},
		{op: OpSkipEqualRegister, skip: true},
		{op: OpSkipNotEqualRegister, skip: true},
		{op: OpSkipKeyPressed, skip: true},
		{op: OpSkipKeyNotPressed, skip: true},
		{op: OpDraw, reads: true},
		{op: OpLoadRegisters, reads: true},
		{op: OpStoreBCD, writes: true},
		{op: OpStoreRegisters, writes: true},
		{op: OpLoadByte},
		{op: OpSystem},
		{op: OpUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			assert.Equal(t, tt.jump, tt.op.IsJump())
			assert.Equal(t, tt.call, tt.op.IsCall())
			assert.Equal(t, tt.ret, tt.op.IsReturn())
			assert.Equal(t, tt.skip, tt.op.IsSkip())
			assert.Equal(t, tt.reads, tt.op.ReadsMemory())
			assert.Equal(t, tt.writes, tt.op.WritesMemory())
			assert.Equal(t, tt.jump || tt.call || tt.ret, tt.op.transfersControl())
		})
	}
}

func TestOperation_String(t *testing.T) {
	names := make(map[string]Operation)
	for op := range operationCount {
		name := op.String()
		assert.NotEmpty(t, name)
		_, duplicate := names[name]
		assert.False(t, duplicate, name)
		names[name] = op
	}
	assert.Equal(t, "unknown", Operation(200).String())
}

func TestOperation_Mnemonic(t *testing.T) {
	assert.Equal(t, "sys", OpSystem.Mnemonic())
	assert.Equal(t, "", OpUnknown.Mnemonic())
	assert.Equal(t, chip8.DrwInst.Name, OpDraw.Mnemonic())
}

func TestHandlers_Complete(t *testing.T) {
	for op := OpUnknown + 1; op < operationCount; op++ {
		assert.True(t, handlers[op] != nil, op.String())
	}
}
