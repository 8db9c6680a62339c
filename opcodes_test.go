package i8085

import (
	"errors"
	"sort"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// unusedOpcodes are the 10 opcode values the 8085 does not assign.
var unusedOpcodes = []byte{0x08, 0x10, 0x18, 0x28, 0x38, 0xCB, 0xD9, 0xDD, 0xED, 0xFD}

func TestLookupUnusedOpcodes(t *testing.T) {
	for _, opcode := range unusedOpcodes {
		ins, err := Lookup(opcode)
		assert.True(t, errors.Is(err, ErrUnrecognizedOpcode))
		assert.True(t, ins == nil)
		assert.True(t, IsUnused(opcode))
	}
}

func TestTableCompleteness(t *testing.T) {
	unused := map[byte]struct{}{}
	for _, opcode := range unusedOpcodes {
		unused[opcode] = struct{}{}
	}

	valid := 0
	for i := 0; i < 256; i++ {
		opcode := byte(i)
		_, expectUnused := unused[opcode]
		assert.Equal(t, expectUnused, IsUnused(opcode))

		if expectUnused {
			continue
		}
		valid++

		ins, err := Lookup(opcode)
		assert.NoError(t, err)
		assert.NotNil(t, ins)
		assert.Equal(t, opcode, ins.Opcode)
		assert.True(t, ins.Size >= 1)
		assert.True(t, ins.Mnemonic != "")
		assert.True(t, ins.Usage != "")
		assert.True(t, len(ins.TStates) > 0)
		assert.Equal(t, len(ins.TStates), len(ins.Cycles))
		assert.True(t, sort.IntsAreSorted(ins.TStates))
		assert.True(t, sort.IntsAreSorted(ins.Cycles))
	}
	assert.Equal(t, 246, valid)
}

func TestInstructionSetAscending(t *testing.T) {
	assert.Equal(t, 246, len(InstructionSet))

	last := -1
	for _, ins := range InstructionSet {
		assert.True(t, int(ins.Opcode) > last)
		last = int(ins.Opcode)
	}
}

func TestLookupNop(t *testing.T) {
	ins, err := Lookup(0x00)
	assert.NoError(t, err)

	assert.Equal(t, "NOP", ins.Mnemonic)
	assert.Equal(t, 1, ins.Size)
	assert.Equal(t, byte(NoFlags), ins.Flags)
	assert.False(t, ins.AffectsAnyFlag())
	assert.False(t, ins.UsesAnyAddressing())
	assert.Equal(t, []int{4}, ins.TStates)
	assert.Equal(t, []int{1}, ins.Cycles)
}

func TestLookupMoveImmediate(t *testing.T) {
	ins, err := Lookup(0x3E)
	assert.NoError(t, err)

	assert.Equal(t, "MVI", ins.Mnemonic)
	assert.Equal(t, "MVI A, data 8", ins.Usage)
	assert.Equal(t, 2, ins.Size)
	assert.True(t, ins.UsesImmediate())
	assert.False(t, ins.UsesDirect())
	assert.False(t, ins.Conditional())
}

func TestLookupConditionalJump(t *testing.T) {
	ins, err := Lookup(0xC2)
	assert.NoError(t, err)

	assert.Equal(t, "JNZ", ins.Mnemonic)
	assert.Equal(t, 3, ins.Size)
	assert.True(t, ins.Conditional())
	assert.Equal(t, []int{7, 10}, ins.TStates)
	assert.Equal(t, []int{2, 3}, ins.Cycles)
	assert.True(t, ins.UsesImmediate())
	assert.False(t, ins.AffectsAnyFlag())
}

func TestLookupArithmetic(t *testing.T) {
	ins, err := Lookup(0x86) // ADD M
	assert.NoError(t, err)

	assert.Equal(t, "ADD", ins.Mnemonic)
	assert.True(t, ins.AffectsSign())
	assert.True(t, ins.AffectsZero())
	assert.True(t, ins.AffectsAuxCarry())
	assert.True(t, ins.AffectsParity())
	assert.True(t, ins.AffectsCarry())
	assert.True(t, ins.UsesRegisterIndirect())
	assert.False(t, ins.UsesRegister())

	ins, err = Lookup(0x09) // DAD B
	assert.NoError(t, err)
	assert.True(t, ins.AffectsCarry())
	assert.False(t, ins.AffectsZero())
	assert.True(t, ins.UsesRegister())
}

func TestLookupDirectAddressing(t *testing.T) {
	for _, opcode := range []byte{0x22, 0x2A, 0x32, 0x3A, 0xD3, 0xDB} {
		ins, err := Lookup(opcode)
		assert.NoError(t, err)
		assert.True(t, ins.UsesDirect())
	}
}

func TestLookupCall(t *testing.T) {
	ins, err := Lookup(0xCD)
	assert.NoError(t, err)

	assert.Equal(t, "CALL", ins.Mnemonic)
	assert.Equal(t, 3, ins.Size)
	assert.True(t, ins.UsesImmediate())
	assert.True(t, ins.UsesRegisterIndirect())
	assert.Equal(t, []int{18}, ins.TStates)
	assert.Equal(t, []int{5}, ins.Cycles)
}

func TestConditionalTimingVariants(t *testing.T) {
	for _, ins := range InstructionSet {
		_, conditional := ConditionalInstructions[ins.Mnemonic]
		assert.Equal(t, conditional, ins.Conditional())

		if conditional {
			assert.Equal(t, 2, len(ins.TStates))
		} else {
			assert.Equal(t, 1, len(ins.TStates))
		}
	}
}

func TestMoveBlock(t *testing.T) {
	// 0x40-0x7F is the MOV block except HLT at 0x76
	for opcode := 0x40; opcode <= 0x7F; opcode++ {
		ins, err := Lookup(byte(opcode))
		assert.NoError(t, err)

		if opcode == 0x76 {
			assert.Equal(t, "HLT", ins.Mnemonic)
			continue
		}
		assert.Equal(t, "MOV", ins.Mnemonic)
		assert.Equal(t, 1, ins.Size)

		memoryOperand := opcode&0x07 == 6 || opcode&0x38 == 0x30
		if memoryOperand {
			assert.Equal(t, []int{7}, ins.TStates)
			assert.True(t, ins.UsesRegisterIndirect())
		} else {
			assert.Equal(t, []int{4}, ins.TStates)
			assert.True(t, ins.UsesRegister())
		}
	}
}
