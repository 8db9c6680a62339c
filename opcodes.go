package i8085

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedOpcode is returned by Lookup for the 10 opcode values that
// the 8085 does not use.
var ErrUnrecognizedOpcode = errors.New("unrecognized opcode")

// Lookup returns the instruction descriptor for the given opcode byte. It
// returns ErrUnrecognizedOpcode for the unused opcode slots.
func Lookup(opcode byte) (*Instruction, error) {
	ins := Opcodes[opcode]
	if ins == nil {
		return nil, fmt.Errorf("%w: 0x%02X", ErrUnrecognizedOpcode, opcode)
	}
	return ins, nil
}

// IsUnused returns true if the opcode slot is not used by the 8085.
func IsUnused(opcode byte) bool {
	return Opcodes[opcode] == nil
}

// InstructionSet contains the 246 valid instruction descriptors in ascending
// opcode order.
var InstructionSet []*Instruction

// shorthands for the opcode table below.
const (
	aNone = NoAddressing
	aReg  = RegisterAddressing
	aImm  = ImmediateAddressing
	aInd  = RegisterIndirectAddressing
	aDir  = DirectAddressing

	flagsArith  = FlagSign | FlagZero | FlagAuxCarry | FlagParity | FlagCarry
	flagsIncDec = FlagSign | FlagZero | FlagAuxCarry | FlagParity
)

func ins(mnemonic, usage string, size int, flags byte, modes AddressingMode, tstates, cycles []int) *Instruction {
	return &Instruction{
		Mnemonic:   mnemonic,
		Usage:      usage,
		Size:       size,
		TStates:    tstates,
		Cycles:     cycles,
		Flags:      flags,
		Addressing: modes,
	}
}

// Opcodes maps every possible opcode byte to its instruction descriptor.
// The unused slots 0x08, 0x10, 0x18, 0x28, 0x38, 0xCB, 0xD9, 0xDD, 0xED and
// 0xFD are nil. Timing data follows the 8085 data sheet; conditional
// instructions list the branch not taken variant first.
var Opcodes = [256]*Instruction{
	0x00: ins("NOP", "NOP", 1, NoFlags, aNone, []int{4}, []int{1}),
	0x01: ins("LXI", "LXI B, data 16", 3, NoFlags, aImm, []int{10}, []int{3}),
	0x02: ins("STAX", "STAX B", 1, NoFlags, aInd, []int{7}, []int{2}),
	0x03: ins("INX", "INX B", 1, NoFlags, aReg, []int{6}, []int{1}),
	0x04: ins("INR", "INR B", 1, flagsIncDec, aReg, []int{4}, []int{1}),
	0x05: ins("DCR", "DCR B", 1, flagsIncDec, aReg, []int{4}, []int{1}),
	0x06: ins("MVI", "MVI B, data 8", 2, NoFlags, aImm, []int{7}, []int{2}),
	0x07: ins("RLC", "RLC", 1, FlagCarry, aNone, []int{4}, []int{1}),
	0x09: ins("DAD", "DAD B", 1, FlagCarry, aReg, []int{10}, []int{3}),
	0x0A: ins("LDAX", "LDAX B", 1, NoFlags, aInd, []int{7}, []int{2}),
	0x0B: ins("DCX", "DCX B", 1, NoFlags, aReg, []int{6}, []int{1}),
	0x0C: ins("INR", "INR C", 1, flagsIncDec, aReg, []int{4}, []int{1}),
	0x0D: ins("DCR", "DCR C", 1, flagsIncDec, aReg, []int{4}, []int{1}),
	0x0E: ins("MVI", "MVI C, data 8", 2, NoFlags, aImm, []int{7}, []int{2}),
	0x0F: ins("RRC", "RRC", 1, FlagCarry, aNone, []int{4}, []int{1}),

	0x11: ins("LXI", "LXI D, data 16", 3, NoFlags, aImm, []int{10}, []int{3}),
	0x12: ins("STAX", "STAX D", 1, NoFlags, aInd, []int{7}, []int{2}),
	0x13: ins("INX", "INX D", 1, NoFlags, aReg, []int{6}, []int{1}),
	0x14: ins("INR", "INR D", 1, flagsIncDec, aReg, []int{4}, []int{1}),
	0x15: ins("DCR", "DCR D", 1, flagsIncDec, aReg, []int{4}, []int{1}),
	0x16: ins("MVI", "MVI D, data 8", 2, NoFlags, aImm, []int{7}, []int{2}),
	0x17: ins("RAL", "RAL", 1, FlagCarry, aNone, []int{4}, []int{1}),
	0x19: ins("DAD", "DAD D", 1, FlagCarry, aReg, []int{10}, []int{3}),
	0x1A: ins("LDAX", "LDAX D", 1, NoFlags, aInd, []int{7}, []int{2}),
	0x1B: ins("DCX", "DCX D", 1, NoFlags, aReg, []int{6}, []int{1}),
	0x1C: ins("INR", "INR E", 1, flagsIncDec, aReg, []int{4}, []int{1}),
	0x1D: ins("DCR", "DCR E", 1, flagsIncDec, aReg, []int{4}, []int{1}),
	0x1E: ins("MVI", "MVI E, data 8", 2, NoFlags, aImm, []int{7}, []int{2}),
	0x1F: ins("RAR", "RAR", 1, FlagCarry, aNone, []int{4}, []int{1}),

	0x20: ins("RIM", "RIM", 1, NoFlags, aNone, []int{4}, []int{1}),
	0x21: ins("LXI", "LXI H, data 16", 3, NoFlags, aImm, []int{10}, []int{3}),
	0x22: ins("SHLD", "SHLD address", 3, NoFlags, aDir, []int{16}, []int{5}),
	0x23: ins("INX", "INX H", 1, NoFlags, aReg, []int{6}, []int{1}),
	0x24: ins("INR", "INR H", 1, flagsIncDec, aReg, []int{4}, []int{1}),
	0x25: ins("DCR", "DCR H", 1, flagsIncDec, aReg, []int{4}, []int{1}),
	0x26: ins("MVI", "MVI H, data 8", 2, NoFlags, aImm, []int{7}, []int{2}),
	0x27: ins("DAA", "DAA", 1, flagsArith, aNone, []int{4}, []int{1}),
	0x29: ins("DAD", "DAD H", 1, FlagCarry, aReg, []int{10}, []int{3}),
	0x2A: ins("LHLD", "LHLD address", 3, NoFlags, aDir, []int{16}, []int{5}),
	0x2B: ins("DCX", "DCX H", 1, NoFlags, aReg, []int{6}, []int{1}),
	0x2C: ins("INR", "INR L", 1, flagsIncDec, aReg, []int{4}, []int{1}),
	0x2D: ins("DCR", "DCR L", 1, flagsIncDec, aReg, []int{4}, []int{1}),
	0x2E: ins("MVI", "MVI L, data 8", 2, NoFlags, aImm, []int{7}, []int{2}),
	0x2F: ins("CMA", "CMA", 1, NoFlags, aNone, []int{4}, []int{1}),

	0x30: ins("SIM", "SIM", 1, NoFlags, aNone, []int{4}, []int{1}),
	0x31: ins("LXI", "LXI SP, data 16", 3, NoFlags, aImm, []int{10}, []int{3}),
	0x32: ins("STA", "STA address", 3, NoFlags, aDir, []int{13}, []int{4}),
	0x33: ins("INX", "INX SP", 1, NoFlags, aReg, []int{6}, []int{1}),
	0x34: ins("INR", "INR M", 1, flagsIncDec, aInd, []int{10}, []int{3}),
	0x35: ins("DCR", "DCR M", 1, flagsIncDec, aInd, []int{10}, []int{3}),
	0x36: ins("MVI", "MVI M, data 8", 2, NoFlags, aImm|aInd, []int{10}, []int{3}),
	0x37: ins("STC", "STC", 1, FlagCarry, aNone, []int{4}, []int{1}),
	0x39: ins("DAD", "DAD SP", 1, FlagCarry, aReg, []int{10}, []int{3}),
	0x3A: ins("LDA", "LDA address", 3, NoFlags, aDir, []int{13}, []int{4}),
	0x3B: ins("DCX", "DCX SP", 1, NoFlags, aReg, []int{6}, []int{1}),
	0x3C: ins("INR", "INR A", 1, flagsIncDec, aReg, []int{4}, []int{1}),
	0x3D: ins("DCR", "DCR A", 1, flagsIncDec, aReg, []int{4}, []int{1}),
	0x3E: ins("MVI", "MVI A, data 8", 2, NoFlags, aImm, []int{7}, []int{2}),
	0x3F: ins("CMC", "CMC", 1, FlagCarry, aNone, []int{4}, []int{1}),

	0x40: ins("MOV", "MOV B, B", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x41: ins("MOV", "MOV B, C", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x42: ins("MOV", "MOV B, D", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x43: ins("MOV", "MOV B, E", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x44: ins("MOV", "MOV B, H", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x45: ins("MOV", "MOV B, L", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x46: ins("MOV", "MOV B, M", 1, NoFlags, aInd, []int{7}, []int{2}),
	0x47: ins("MOV", "MOV B, A", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x48: ins("MOV", "MOV C, B", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x49: ins("MOV", "MOV C, C", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x4A: ins("MOV", "MOV C, D", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x4B: ins("MOV", "MOV C, E", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x4C: ins("MOV", "MOV C, H", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x4D: ins("MOV", "MOV C, L", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x4E: ins("MOV", "MOV C, M", 1, NoFlags, aInd, []int{7}, []int{2}),
	0x4F: ins("MOV", "MOV C, A", 1, NoFlags, aReg, []int{4}, []int{1}),

	0x50: ins("MOV", "MOV D, B", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x51: ins("MOV", "MOV D, C", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x52: ins("MOV", "MOV D, D", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x53: ins("MOV", "MOV D, E", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x54: ins("MOV", "MOV D, H", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x55: ins("MOV", "MOV D, L", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x56: ins("MOV", "MOV D, M", 1, NoFlags, aInd, []int{7}, []int{2}),
	0x57: ins("MOV", "MOV D, A", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x58: ins("MOV", "MOV E, B", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x59: ins("MOV", "MOV E, C", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x5A: ins("MOV", "MOV E, D", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x5B: ins("MOV", "MOV E, E", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x5C: ins("MOV", "MOV E, H", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x5D: ins("MOV", "MOV E, L", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x5E: ins("MOV", "MOV E, M", 1, NoFlags, aInd, []int{7}, []int{2}),
	0x5F: ins("MOV", "MOV E, A", 1, NoFlags, aReg, []int{4}, []int{1}),

	0x60: ins("MOV", "MOV H, B", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x61: ins("MOV", "MOV H, C", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x62: ins("MOV", "MOV H, D", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x63: ins("MOV", "MOV H, E", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x64: ins("MOV", "MOV H, H", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x65: ins("MOV", "MOV H, L", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x66: ins("MOV", "MOV H, M", 1, NoFlags, aInd, []int{7}, []int{2}),
	0x67: ins("MOV", "MOV H, A", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x68: ins("MOV", "MOV L, B", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x69: ins("MOV", "MOV L, C", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x6A: ins("MOV", "MOV L, D", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x6B: ins("MOV", "MOV L, E", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x6C: ins("MOV", "MOV L, H", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x6D: ins("MOV", "MOV L, L", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x6E: ins("MOV", "MOV L, M", 1, NoFlags, aInd, []int{7}, []int{2}),
	0x6F: ins("MOV", "MOV L, A", 1, NoFlags, aReg, []int{4}, []int{1}),

	0x70: ins("MOV", "MOV M, B", 1, NoFlags, aInd, []int{7}, []int{2}),
	0x71: ins("MOV", "MOV M, C", 1, NoFlags, aInd, []int{7}, []int{2}),
	0x72: ins("MOV", "MOV M, D", 1, NoFlags, aInd, []int{7}, []int{2}),
	0x73: ins("MOV", "MOV M, E", 1, NoFlags, aInd, []int{7}, []int{2}),
	0x74: ins("MOV", "MOV M, H", 1, NoFlags, aInd, []int{7}, []int{2}),
	0x75: ins("MOV", "MOV M, L", 1, NoFlags, aInd, []int{7}, []int{2}),
	0x76: ins("HLT", "HLT", 1, NoFlags, aNone, []int{5}, []int{2}),
	0x77: ins("MOV", "MOV M, A", 1, NoFlags, aInd, []int{7}, []int{2}),
	0x78: ins("MOV", "MOV A, B", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x79: ins("MOV", "MOV A, C", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x7A: ins("MOV", "MOV A, D", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x7B: ins("MOV", "MOV A, E", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x7C: ins("MOV", "MOV A, H", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x7D: ins("MOV", "MOV A, L", 1, NoFlags, aReg, []int{4}, []int{1}),
	0x7E: ins("MOV", "MOV A, M", 1, NoFlags, aInd, []int{7}, []int{2}),
	0x7F: ins("MOV", "MOV A, A", 1, NoFlags, aReg, []int{4}, []int{1}),

	0x80: ins("ADD", "ADD B", 1, flagsArith, aReg, []int{4}, []int{1}),
	0x81: ins("ADD", "ADD C", 1, flagsArith, aReg, []int{4}, []int{1}),
	0x82: ins("ADD", "ADD D", 1, flagsArith, aReg, []int{4}, []int{1}),
	0x83: ins("ADD", "ADD E", 1, flagsArith, aReg, []int{4}, []int{1}),
	0x84: ins("ADD", "ADD H", 1, flagsArith, aReg, []int{4}, []int{1}),
	0x85: ins("ADD", "ADD L", 1, flagsArith, aReg, []int{4}, []int{1}),
	0x86: ins("ADD", "ADD M", 1, flagsArith, aInd, []int{7}, []int{2}),
	0x87: ins("ADD", "ADD A", 1, flagsArith, aReg, []int{4}, []int{1}),
	0x88: ins("ADC", "ADC B", 1, flagsArith, aReg, []int{4}, []int{1}),
	0x89: ins("ADC", "ADC C", 1, flagsArith, aReg, []int{4}, []int{1}),
	0x8A: ins("ADC", "ADC D", 1, flagsArith, aReg, []int{4}, []int{1}),
	0x8B: ins("ADC", "ADC E", 1, flagsArith, aReg, []int{4}, []int{1}),
	0x8C: ins("ADC", "ADC H", 1, flagsArith, aReg, []int{4}, []int{1}),
	0x8D: ins("ADC", "ADC L", 1, flagsArith, aReg, []int{4}, []int{1}),
	0x8E: ins("ADC", "ADC M", 1, flagsArith, aInd, []int{7}, []int{2}),
	0x8F: ins("ADC", "ADC A", 1, flagsArith, aReg, []int{4}, []int{1}),

	0x90: ins("SUB", "SUB B", 1, flagsArith, aReg, []int{4}, []int{1}),
	0x91: ins("SUB", "SUB C", 1, flagsArith, aReg, []int{4}, []int{1}),
	0x92: ins("SUB", "SUB D", 1, flagsArith, aReg, []int{4}, []int{1}),
	0x93: ins("SUB", "SUB E", 1, flagsArith, aReg, []int{4}, []int{1}),
	0x94: ins("SUB", "SUB H", 1, flagsArith, aReg, []int{4}, []int{1}),
	0x95: ins("SUB", "SUB L", 1, flagsArith, aReg, []int{4}, []int{1}),
	0x96: ins("SUB", "SUB M", 1, flagsArith, aInd, []int{7}, []int{2}),
	0x97: ins("SUB", "SUB A", 1, flagsArith, aReg, []int{4}, []int{1}),
	0x98: ins("SBB", "SBB B", 1, flagsArith, aReg, []int{4}, []int{1}),
	0x99: ins("SBB", "SBB C", 1, flagsArith, aReg, []int{4}, []int{1}),
	0x9A: ins("SBB", "SBB D", 1, flagsArith, aReg, []int{4}, []int{1}),
	0x9B: ins("SBB", "SBB E", 1, flagsArith, aReg, []int{4}, []int{1}),
	0x9C: ins("SBB", "SBB H", 1, flagsArith, aReg, []int{4}, []int{1}),
	0x9D: ins("SBB", "SBB L", 1, flagsArith, aReg, []int{4}, []int{1}),
	0x9E: ins("SBB", "SBB M", 1, flagsArith, aInd, []int{7}, []int{2}),
	0x9F: ins("SBB", "SBB A", 1, flagsArith, aReg, []int{4}, []int{1}),

	0xA0: ins("ANA", "ANA B", 1, flagsArith, aReg, []int{4}, []int{1}),
	0xA1: ins("ANA", "ANA C", 1, flagsArith, aReg, []int{4}, []int{1}),
	0xA2: ins("ANA", "ANA D", 1, flagsArith, aReg, []int{4}, []int{1}),
	0xA3: ins("ANA", "ANA E", 1, flagsArith, aReg, []int{4}, []int{1}),
	0xA4: ins("ANA", "ANA H", 1, flagsArith, aReg, []int{4}, []int{1}),
	0xA5: ins("ANA", "ANA L", 1, flagsArith, aReg, []int{4}, []int{1}),
	0xA6: ins("ANA", "ANA M", 1, flagsArith, aInd, []int{7}, []int{2}),
	0xA7: ins("ANA", "ANA A", 1, flagsArith, aReg, []int{4}, []int{1}),
	0xA8: ins("XRA", "XRA B", 1, flagsArith, aReg, []int{4}, []int{1}),
	0xA9: ins("XRA", "XRA C", 1, flagsArith, aReg, []int{4}, []int{1}),
	0xAA: ins("XRA", "XRA D", 1, flagsArith, aReg, []int{4}, []int{1}),
	0xAB: ins("XRA", "XRA E", 1, flagsArith, aReg, []int{4}, []int{1}),
	0xAC: ins("XRA", "XRA H", 1, flagsArith, aReg, []int{4}, []int{1}),
	0xAD: ins("XRA", "XRA L", 1, flagsArith, aReg, []int{4}, []int{1}),
	0xAE: ins("XRA", "XRA M", 1, flagsArith, aInd, []int{7}, []int{2}),
	0xAF: ins("XRA", "XRA A", 1, flagsArith, aReg, []int{4}, []int{1}),

	0xB0: ins("ORA", "ORA B", 1, flagsArith, aReg, []int{4}, []int{1}),
	0xB1: ins("ORA", "ORA C", 1, flagsArith, aReg, []int{4}, []int{1}),
	0xB2: ins("ORA", "ORA D", 1, flagsArith, aReg, []int{4}, []int{1}),
	0xB3: ins("ORA", "ORA E", 1, flagsArith, aReg, []int{4}, []int{1}),
	0xB4: ins("ORA", "ORA H", 1, flagsArith, aReg, []int{4}, []int{1}),
	0xB5: ins("ORA", "ORA L", 1, flagsArith, aReg, []int{4}, []int{1}),
	0xB6: ins("ORA", "ORA M", 1, flagsArith, aInd, []int{7}, []int{2}),
	0xB7: ins("ORA", "ORA A", 1, flagsArith, aReg, []int{4}, []int{1}),
	0xB8: ins("CMP", "CMP B", 1, flagsArith, aReg, []int{4}, []int{1}),
	0xB9: ins("CMP", "CMP C", 1, flagsArith, aReg, []int{4}, []int{1}),
	0xBA: ins("CMP", "CMP D", 1, flagsArith, aReg, []int{4}, []int{1}),
	0xBB: ins("CMP", "CMP E", 1, flagsArith, aReg, []int{4}, []int{1}),
	0xBC: ins("CMP", "CMP H", 1, flagsArith, aReg, []int{4}, []int{1}),
	0xBD: ins("CMP", "CMP L", 1, flagsArith, aReg, []int{4}, []int{1}),
	0xBE: ins("CMP", "CMP M", 1, flagsArith, aInd, []int{7}, []int{2}),
	0xBF: ins("CMP", "CMP A", 1, flagsArith, aReg, []int{4}, []int{1}),

	0xC0: ins("RNZ", "RNZ", 1, NoFlags, aInd, []int{6, 12}, []int{1, 3}),
	0xC1: ins("POP", "POP B", 1, NoFlags, aInd, []int{10}, []int{3}),
	0xC2: ins("JNZ", "JNZ address", 3, NoFlags, aImm, []int{7, 10}, []int{2, 3}),
	0xC3: ins("JMP", "JMP address", 3, NoFlags, aImm, []int{10}, []int{3}),
	0xC4: ins("CNZ", "CNZ address", 3, NoFlags, aImm|aInd, []int{9, 18}, []int{2, 5}),
	0xC5: ins("PUSH", "PUSH B", 1, NoFlags, aInd, []int{12}, []int{3}),
	0xC6: ins("ADI", "ADI data 8", 2, flagsArith, aImm, []int{7}, []int{2}),
	0xC7: ins("RST", "RST 0", 1, NoFlags, aInd, []int{12}, []int{3}),
	0xC8: ins("RZ", "RZ", 1, NoFlags, aInd, []int{6, 12}, []int{1, 3}),
	0xC9: ins("RET", "RET", 1, NoFlags, aInd, []int{10}, []int{3}),
	0xCA: ins("JZ", "JZ address", 3, NoFlags, aImm, []int{7, 10}, []int{2, 3}),
	0xCC: ins("CZ", "CZ address", 3, NoFlags, aImm|aInd, []int{9, 18}, []int{2, 5}),
	0xCD: ins("CALL", "CALL address", 3, NoFlags, aImm|aInd, []int{18}, []int{5}),
	0xCE: ins("ACI", "ACI data 8", 2, flagsArith, aImm, []int{7}, []int{2}),
	0xCF: ins("RST", "RST 1", 1, NoFlags, aInd, []int{12}, []int{3}),

	0xD0: ins("RNC", "RNC", 1, NoFlags, aInd, []int{6, 12}, []int{1, 3}),
	0xD1: ins("POP", "POP D", 1, NoFlags, aInd, []int{10}, []int{3}),
	0xD2: ins("JNC", "JNC address", 3, NoFlags, aImm, []int{7, 10}, []int{2, 3}),
	0xD3: ins("OUT", "OUT port", 2, NoFlags, aDir, []int{10}, []int{3}),
	0xD4: ins("CNC", "CNC address", 3, NoFlags, aImm|aInd, []int{9, 18}, []int{2, 5}),
	0xD5: ins("PUSH", "PUSH D", 1, NoFlags, aInd, []int{12}, []int{3}),
	0xD6: ins("SUI", "SUI data 8", 2, flagsArith, aImm, []int{7}, []int{2}),
	0xD7: ins("RST", "RST 2", 1, NoFlags, aInd, []int{12}, []int{3}),
	0xD8: ins("RC", "RC", 1, NoFlags, aInd, []int{6, 12}, []int{1, 3}),
	0xDA: ins("JC", "JC address", 3, NoFlags, aImm, []int{7, 10}, []int{2, 3}),
	0xDB: ins("IN", "IN port", 2, NoFlags, aDir, []int{10}, []int{3}),
	0xDC: ins("CC", "CC address", 3, NoFlags, aImm|aInd, []int{9, 18}, []int{2, 5}),
	0xDE: ins("SBI", "SBI data 8", 2, flagsArith, aImm, []int{7}, []int{2}),
	0xDF: ins("RST", "RST 3", 1, NoFlags, aInd, []int{12}, []int{3}),

	0xE0: ins("RPO", "RPO", 1, NoFlags, aInd, []int{6, 12}, []int{1, 3}),
	0xE1: ins("POP", "POP H", 1, NoFlags, aInd, []int{10}, []int{3}),
	0xE2: ins("JPO", "JPO address", 3, NoFlags, aImm, []int{7, 10}, []int{2, 3}),
	0xE3: ins("XTHL", "XTHL", 1, NoFlags, aInd, []int{16}, []int{5}),
	0xE4: ins("CPO", "CPO address", 3, NoFlags, aImm|aInd, []int{9, 18}, []int{2, 5}),
	0xE5: ins("PUSH", "PUSH H", 1, NoFlags, aInd, []int{12}, []int{3}),
	0xE6: ins("ANI", "ANI data 8", 2, flagsArith, aImm, []int{7}, []int{2}),
	0xE7: ins("RST", "RST 4", 1, NoFlags, aInd, []int{12}, []int{3}),
	0xE8: ins("RPE", "RPE", 1, NoFlags, aInd, []int{6, 12}, []int{1, 3}),
	0xE9: ins("PCHL", "PCHL", 1, NoFlags, aReg, []int{6}, []int{1}),
	0xEA: ins("JPE", "JPE address", 3, NoFlags, aImm, []int{7, 10}, []int{2, 3}),
	0xEB: ins("XCHG", "XCHG", 1, NoFlags, aReg, []int{4}, []int{1}),
	0xEC: ins("CPE", "CPE address", 3, NoFlags, aImm|aInd, []int{9, 18}, []int{2, 5}),
	0xEE: ins("XRI", "XRI data 8", 2, flagsArith, aImm, []int{7}, []int{2}),
	0xEF: ins("RST", "RST 5", 1, NoFlags, aInd, []int{12}, []int{3}),

	0xF0: ins("RP", "RP", 1, NoFlags, aInd, []int{6, 12}, []int{1, 3}),
	0xF1: ins("POP", "POP PSW", 1, flagsArith, aInd, []int{10}, []int{3}),
	0xF2: ins("JP", "JP address", 3, NoFlags, aImm, []int{7, 10}, []int{2, 3}),
	0xF3: ins("DI", "DI", 1, NoFlags, aNone, []int{4}, []int{1}),
	0xF4: ins("CP", "CP address", 3, NoFlags, aImm|aInd, []int{9, 18}, []int{2, 5}),
	0xF5: ins("PUSH", "PUSH PSW", 1, NoFlags, aInd, []int{12}, []int{3}),
	0xF6: ins("ORI", "ORI data 8", 2, flagsArith, aImm, []int{7}, []int{2}),
	0xF7: ins("RST", "RST 6", 1, NoFlags, aInd, []int{12}, []int{3}),
	0xF8: ins("RM", "RM", 1, NoFlags, aInd, []int{6, 12}, []int{1, 3}),
	0xF9: ins("SPHL", "SPHL", 1, NoFlags, aReg, []int{6}, []int{1}),
	0xFA: ins("JM", "JM address", 3, NoFlags, aImm, []int{7, 10}, []int{2, 3}),
	0xFB: ins("EI", "EI", 1, NoFlags, aNone, []int{4}, []int{1}),
	0xFC: ins("CM", "CM address", 3, NoFlags, aImm|aInd, []int{9, 18}, []int{2, 5}),
	0xFE: ins("CPI", "CPI data 8", 2, flagsArith, aImm, []int{7}, []int{2}),
	0xFF: ins("RST", "RST 7", 1, NoFlags, aInd, []int{12}, []int{3}),
}

// validInstructions is the number of opcode values the 8085 assigns.
const validInstructions = 246

func init() {
	InstructionSet = make([]*Instruction, 0, validInstructions)

	for i, instruction := range Opcodes {
		if instruction == nil {
			continue
		}
		opcode := byte(i)
		instruction.Opcode = opcode

		if instruction.Size < 1 {
			panic(fmt.Sprintf("opcode 0x%02X: invalid size %d", opcode, instruction.Size))
		}
		if len(instruction.TStates) == 0 {
			panic(fmt.Sprintf("opcode 0x%02X: missing timing data", opcode))
		}
		if len(instruction.TStates) != len(instruction.Cycles) {
			panic(fmt.Sprintf("opcode 0x%02X: timing variant count mismatch", opcode))
		}
		for j := 1; j < len(instruction.TStates); j++ {
			if instruction.TStates[j] <= instruction.TStates[j-1] ||
				instruction.Cycles[j] <= instruction.Cycles[j-1] {
				panic(fmt.Sprintf("opcode 0x%02X: timing data not ascending", opcode))
			}
		}
		if instruction.Flags&^byte(flagsArith) != 0 {
			panic(fmt.Sprintf("opcode 0x%02X: invalid flag mask 0x%02X", opcode, instruction.Flags))
		}
		if instruction.Addressing&^addressingModes != 0 {
			panic(fmt.Sprintf("opcode 0x%02X: invalid addressing mask 0x%02X", opcode, instruction.Addressing))
		}

		InstructionSet = append(InstructionSet, instruction)
	}

	if len(InstructionSet) != validInstructions {
		panic(fmt.Sprintf("expected %d valid instructions, got %d", validInstructions, len(InstructionSet)))
	}
}
