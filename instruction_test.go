package i8085

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestInstructionFlagProjections(t *testing.T) {
	ins := &Instruction{Flags: FlagZero | FlagCarry}

	assert.False(t, ins.AffectsSign())
	assert.True(t, ins.AffectsZero())
	assert.False(t, ins.AffectsAuxCarry())
	assert.False(t, ins.AffectsParity())
	assert.True(t, ins.AffectsCarry())
	assert.True(t, ins.AffectsAnyFlag())

	none := &Instruction{Flags: NoFlags}
	assert.False(t, none.AffectsAnyFlag())
}

func TestInstructionAddressingProjections(t *testing.T) {
	ins := &Instruction{Addressing: ImmediateAddressing | RegisterIndirectAddressing}

	assert.False(t, ins.UsesRegister())
	assert.True(t, ins.UsesImmediate())
	assert.True(t, ins.UsesRegisterIndirect())
	assert.False(t, ins.UsesDirect())
	assert.True(t, ins.UsesAnyAddressing())

	none := &Instruction{Addressing: NoAddressing}
	assert.False(t, none.UsesAnyAddressing())
}

func TestAddressingModesCombinable(t *testing.T) {
	modes := []AddressingMode{
		RegisterAddressing,
		ImmediateAddressing,
		RegisterIndirectAddressing,
		DirectAddressing,
	}

	var combined AddressingMode
	for _, mode := range modes {
		assert.Equal(t, AddressingMode(0), combined&mode)
		combined |= mode
	}
	assert.Equal(t, addressingModes, combined)
}

func TestMnemonicSets(t *testing.T) {
	for _, mnemonic := range []string{"JNZ", "CZ", "RPE", "RC"} {
		_, ok := ConditionalInstructions[mnemonic]
		assert.True(t, ok)
	}
	_, ok := ConditionalInstructions["JMP"]
	assert.False(t, ok)

	for _, mnemonic := range []string{"JMP", "RET", "PCHL", "RST", "HLT"} {
		_, ok := NotExecutingFollowingOpcodeInstructions[mnemonic]
		assert.True(t, ok)
	}
	_, ok = NotExecutingFollowingOpcodeInstructions["CALL"]
	assert.False(t, ok)
}
