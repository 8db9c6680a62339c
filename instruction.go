package i8085

// AddressingMode is a bit mask of the addressing modes used by an
// instruction. An instruction can combine modes, for example CALL fetches an
// immediate target address and pushes through the stack pointer.
type AddressingMode uint8

// Addressing modes.
const (
	// NoAddressing marks instructions that access no operand.
	NoAddressing AddressingMode = 0x00
	// RegisterAddressing accesses an operand in a register named by the opcode.
	RegisterAddressing AddressingMode = 0x01
	// ImmediateAddressing fetches operand bytes following the opcode.
	ImmediateAddressing AddressingMode = 0x02
	// RegisterIndirectAddressing accesses memory at an address held in a
	// register pair, usually HL or the stack pointer.
	RegisterIndirectAddressing AddressingMode = 0x04
	// DirectAddressing accesses memory or an I/O port at an address carried
	// in the bytes following the opcode.
	DirectAddressing AddressingMode = 0x08
)

// addressingModes covers every assigned addressing mode bit.
const addressingModes = RegisterAddressing | ImmediateAddressing |
	RegisterIndirectAddressing | DirectAddressing

// Instruction describes one opcode of the 8085. The descriptor fields are
// process-wide constant data and must not be modified.
type Instruction struct {
	// Opcode is the first instruction byte that selects this instruction.
	Opcode byte
	// Mnemonic is the assembler name, shared between opcode variants of the
	// same basic instruction ("MOV" for all 63 register move combinations).
	Mnemonic string
	// Usage shows a sample assembler use including operands, "MOV A, B".
	Usage string
	// Size is the full instruction length in bytes including the opcode.
	Size int
	// TStates holds all possible clock pulse counts in ascending order.
	// Conditional instructions have two entries, branch not taken first.
	TStates []int
	// Cycles holds all possible machine cycle counts in ascending order,
	// parallel to TStates.
	Cycles []int
	// Flags is the mask of flag register bits this instruction can change.
	Flags byte
	// Addressing is the mask of addressing modes used.
	Addressing AddressingMode
}

// AffectsSign returns true if the instruction can change the sign flag.
func (ins *Instruction) AffectsSign() bool {
	return ins.Flags&FlagSign != 0
}

// AffectsZero returns true if the instruction can change the zero flag.
func (ins *Instruction) AffectsZero() bool {
	return ins.Flags&FlagZero != 0
}

// AffectsAuxCarry returns true if the instruction can change the auxiliary
// carry flag.
func (ins *Instruction) AffectsAuxCarry() bool {
	return ins.Flags&FlagAuxCarry != 0
}

// AffectsParity returns true if the instruction can change the parity flag.
func (ins *Instruction) AffectsParity() bool {
	return ins.Flags&FlagParity != 0
}

// AffectsCarry returns true if the instruction can change the carry flag.
func (ins *Instruction) AffectsCarry() bool {
	return ins.Flags&FlagCarry != 0
}

// AffectsAnyFlag returns true if the instruction can change any flag.
func (ins *Instruction) AffectsAnyFlag() bool {
	return ins.Flags != NoFlags
}

// UsesRegister returns true if the instruction uses register addressing.
func (ins *Instruction) UsesRegister() bool {
	return ins.Addressing&RegisterAddressing != 0
}

// UsesImmediate returns true if the instruction uses immediate addressing.
func (ins *Instruction) UsesImmediate() bool {
	return ins.Addressing&ImmediateAddressing != 0
}

// UsesRegisterIndirect returns true if the instruction uses register
// indirect addressing.
func (ins *Instruction) UsesRegisterIndirect() bool {
	return ins.Addressing&RegisterIndirectAddressing != 0
}

// UsesDirect returns true if the instruction uses direct addressing.
func (ins *Instruction) UsesDirect() bool {
	return ins.Addressing&DirectAddressing != 0
}

// UsesAnyAddressing returns true if the instruction accesses any operand.
func (ins *Instruction) UsesAnyAddressing() bool {
	return ins.Addressing != NoAddressing
}

// Conditional returns true if the instruction has branch dependent timing.
func (ins *Instruction) Conditional() bool {
	return len(ins.TStates) > 1
}

// ConditionalInstructions contains all mnemonics with branch dependent
// timing.
var ConditionalInstructions = map[string]struct{}{
	"CC": {}, "CM": {}, "CNC": {}, "CNZ": {}, "CP": {}, "CPE": {},
	"CPO": {}, "CZ": {}, "JC": {}, "JM": {}, "JNC": {}, "JNZ": {},
	"JP": {}, "JPE": {}, "JPO": {}, "JZ": {}, "RC": {}, "RM": {},
	"RNC": {}, "RNZ": {}, "RP": {}, "RPE": {}, "RPO": {}, "RZ": {},
}

// NotExecutingFollowingOpcodeInstructions contains all mnemonics after which
// execution never continues at the following opcode. Useful for
// disassemblers to stop linear code tracing.
var NotExecutingFollowingOpcodeInstructions = map[string]struct{}{
	"HLT":  {},
	"JMP":  {},
	"PCHL": {},
	"RET":  {},
	"RST":  {},
}
