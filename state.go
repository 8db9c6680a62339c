package i8085

import "errors"

// ErrReadOnly is returned by every setter of a read-only processor state.
var ErrReadOnly = errors.New("processor state is read-only")

// ProcessorState gives access to the programmable registers of the 8085:
// A, B, C, D, E, H, L, the flag register, the stack pointer and the program
// counter. The 8-bit registers are views into their owning 16-bit pair; a
// pair write is always bit-exact visible through the half getters and vice
// versa.
//
// Setters return an error so that read-only views can refuse mutation; the
// plain State implementation never fails. Register content before the first
// write is unspecified, mirroring the power-on state of the real chip.
// Implementations are not safe for concurrent use unless wrapped with
// NewSyncState.
type ProcessorState interface {
	// PSW is the processor status word: accumulator high byte, flag register
	// low byte.
	PSW() uint16
	SetPSW(word uint16) error
	// A is the accumulator, the high byte of the PSW.
	A() byte
	SetA(value byte) error
	// F is the flag register, the low byte of the PSW. Bits 1, 3 and 5 carry
	// no flag and are undefined.
	F() byte
	SetF(value byte) error

	BC() uint16
	SetBC(word uint16) error
	B() byte
	SetB(value byte) error
	C() byte
	SetC(value byte) error

	DE() uint16
	SetDE(word uint16) error
	D() byte
	SetD(value byte) error
	E() byte
	SetE(value byte) error

	HL() uint16
	SetHL(word uint16) error
	H() byte
	SetH(value byte) error
	L() byte
	SetL(value byte) error

	SP() uint16
	SetSP(word uint16) error
	PC() uint16
	SetPC(word uint16) error

	Sign() bool
	SetSign(flag bool) error
	Zero() bool
	SetZero(flag bool) error
	AuxCarry() bool
	SetAuxCarry(flag bool) error
	// Parity reports even parity; odd parity is its complement.
	Parity() bool
	SetParity(flag bool) error
	Carry() bool
	SetCarry(flag bool) error
}

// Compile-time check to ensure State implements ProcessorState.
var _ ProcessorState = (*State)(nil)

// State is the default ProcessorState implementation. The six 16-bit words
// below are the storage of record; all 8-bit register and flag views are
// computed from them, which keeps pair and half access consistent at all
// times. The zero value is a valid power-on state.
type State struct {
	psw uint16
	bc  uint16
	de  uint16
	hl  uint16
	sp  uint16
	pc  uint16
}

// NewState returns a processor state with all registers cleared.
func NewState() *State {
	return &State{}
}

// PSW returns the processor status word.
func (s *State) PSW() uint16 { return s.psw }

// SetPSW sets the processor status word.
func (s *State) SetPSW(word uint16) error {
	s.psw = word
	return nil
}

// A returns the accumulator.
func (s *State) A() byte { return high(s.psw) }

// SetA sets the accumulator, leaving the flag register untouched.
func (s *State) SetA(value byte) error {
	s.psw = setHigh(s.psw, value)
	return nil
}

// F returns the flag register.
func (s *State) F() byte { return low(s.psw) }

// SetF sets the flag register, leaving the accumulator untouched.
func (s *State) SetF(value byte) error {
	s.psw = setLow(s.psw, value)
	return nil
}

// BC returns the BC register pair.
func (s *State) BC() uint16 { return s.bc }

// SetBC sets the BC register pair.
func (s *State) SetBC(word uint16) error {
	s.bc = word
	return nil
}

// B returns register B, the high byte of BC.
func (s *State) B() byte { return high(s.bc) }

// SetB sets register B, leaving C untouched.
func (s *State) SetB(value byte) error {
	s.bc = setHigh(s.bc, value)
	return nil
}

// C returns register C, the low byte of BC.
func (s *State) C() byte { return low(s.bc) }

// SetC sets register C, leaving B untouched.
func (s *State) SetC(value byte) error {
	s.bc = setLow(s.bc, value)
	return nil
}

// DE returns the DE register pair.
func (s *State) DE() uint16 { return s.de }

// SetDE sets the DE register pair.
func (s *State) SetDE(word uint16) error {
	s.de = word
	return nil
}

// D returns register D, the high byte of DE.
func (s *State) D() byte { return high(s.de) }

// SetD sets register D, leaving E untouched.
func (s *State) SetD(value byte) error {
	s.de = setHigh(s.de, value)
	return nil
}

// E returns register E, the low byte of DE.
func (s *State) E() byte { return low(s.de) }

// SetE sets register E, leaving D untouched.
func (s *State) SetE(value byte) error {
	s.de = setLow(s.de, value)
	return nil
}

// HL returns the HL register pair.
func (s *State) HL() uint16 { return s.hl }

// SetHL sets the HL register pair.
func (s *State) SetHL(word uint16) error {
	s.hl = word
	return nil
}

// H returns register H, the high byte of HL.
func (s *State) H() byte { return high(s.hl) }

// SetH sets register H, leaving L untouched.
func (s *State) SetH(value byte) error {
	s.hl = setHigh(s.hl, value)
	return nil
}

// L returns register L, the low byte of HL.
func (s *State) L() byte { return low(s.hl) }

// SetL sets register L, leaving H untouched.
func (s *State) SetL(value byte) error {
	s.hl = setLow(s.hl, value)
	return nil
}

// SP returns the stack pointer.
func (s *State) SP() uint16 { return s.sp }

// SetSP sets the stack pointer.
func (s *State) SetSP(word uint16) error {
	s.sp = word
	return nil
}

// PC returns the program counter. It wraps modulo 65536 like any other
// 16-bit register; any special wraparound policy is the interpreter's
// concern.
func (s *State) PC() uint16 { return s.pc }

// SetPC sets the program counter.
func (s *State) SetPC(word uint16) error {
	s.pc = word
	return nil
}

// Sign returns the sign flag.
func (s *State) Sign() bool { return s.F()&FlagSign != 0 }

// SetSign sets or clears the sign flag, leaving all other flag register
// bits untouched.
func (s *State) SetSign(flag bool) error {
	return s.SetF(setFlag(s.F(), FlagSign, flag))
}

// Zero returns the zero flag.
func (s *State) Zero() bool { return s.F()&FlagZero != 0 }

// SetZero sets or clears the zero flag.
func (s *State) SetZero(flag bool) error {
	return s.SetF(setFlag(s.F(), FlagZero, flag))
}

// AuxCarry returns the auxiliary carry flag.
func (s *State) AuxCarry() bool { return s.F()&FlagAuxCarry != 0 }

// SetAuxCarry sets or clears the auxiliary carry flag.
func (s *State) SetAuxCarry(flag bool) error {
	return s.SetF(setFlag(s.F(), FlagAuxCarry, flag))
}

// Parity returns the parity flag, set for even parity.
func (s *State) Parity() bool { return s.F()&FlagParity != 0 }

// SetParity sets or clears the parity flag.
func (s *State) SetParity(flag bool) error {
	return s.SetF(setFlag(s.F(), FlagParity, flag))
}

// Carry returns the carry flag.
func (s *State) Carry() bool { return s.F()&FlagCarry != 0 }

// SetCarry sets or clears the carry flag.
func (s *State) SetCarry(flag bool) error {
	return s.SetF(setFlag(s.F(), FlagCarry, flag))
}

func high(word uint16) byte {
	return byte(word >> 8)
}

func low(word uint16) byte {
	return byte(word)
}

func setHigh(word uint16, value byte) uint16 {
	return word&0x00FF | uint16(value)<<8
}

func setLow(word uint16, value byte) uint16 {
	return word&0xFF00 | uint16(value)
}

func setFlag(flags, mask byte, flag bool) byte {
	if flag {
		return flags | mask
	}
	return flags &^ mask
}
