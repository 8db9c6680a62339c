package i8085

import "sync"

// Compile-time checks to ensure the wrappers implement ProcessorState.
var (
	_ ProcessorState = (*ReadOnlyState)(nil)
	_ ProcessorState = (*SyncState)(nil)
)

// ReadOnlyState is a view of a processor state that refuses every setter
// with ErrReadOnly. It is backed by the wrapped state; changes made to the
// wrapped state directly remain visible through the view.
type ReadOnlyState struct {
	state ProcessorState
}

// NewReadOnlyState wraps the given state into a read-only view.
func NewReadOnlyState(state ProcessorState) *ReadOnlyState {
	return &ReadOnlyState{state: state}
}

// PSW returns the processor status word of the wrapped state.
func (r *ReadOnlyState) PSW() uint16 { return r.state.PSW() }

// SetPSW always returns ErrReadOnly.
func (r *ReadOnlyState) SetPSW(uint16) error { return ErrReadOnly }

// A returns the accumulator of the wrapped state.
func (r *ReadOnlyState) A() byte { return r.state.A() }

// SetA always returns ErrReadOnly.
func (r *ReadOnlyState) SetA(byte) error { return ErrReadOnly }

// F returns the flag register of the wrapped state.
func (r *ReadOnlyState) F() byte { return r.state.F() }

// SetF always returns ErrReadOnly.
func (r *ReadOnlyState) SetF(byte) error { return ErrReadOnly }

// BC returns the BC pair of the wrapped state.
func (r *ReadOnlyState) BC() uint16 { return r.state.BC() }

// SetBC always returns ErrReadOnly.
func (r *ReadOnlyState) SetBC(uint16) error { return ErrReadOnly }

// B returns register B of the wrapped state.
func (r *ReadOnlyState) B() byte { return r.state.B() }

// SetB always returns ErrReadOnly.
func (r *ReadOnlyState) SetB(byte) error { return ErrReadOnly }

// C returns register C of the wrapped state.
func (r *ReadOnlyState) C() byte { return r.state.C() }

// SetC always returns ErrReadOnly.
func (r *ReadOnlyState) SetC(byte) error { return ErrReadOnly }

// DE returns the DE pair of the wrapped state.
func (r *ReadOnlyState) DE() uint16 { return r.state.DE() }

// SetDE always returns ErrReadOnly.
func (r *ReadOnlyState) SetDE(uint16) error { return ErrReadOnly }

// D returns register D of the wrapped state.
func (r *ReadOnlyState) D() byte { return r.state.D() }

// SetD always returns ErrReadOnly.
func (r *ReadOnlyState) SetD(byte) error { return ErrReadOnly }

// E returns register E of the wrapped state.
func (r *ReadOnlyState) E() byte { return r.state.E() }

// SetE always returns ErrReadOnly.
func (r *ReadOnlyState) SetE(byte) error { return ErrReadOnly }

// HL returns the HL pair of the wrapped state.
func (r *ReadOnlyState) HL() uint16 { return r.state.HL() }

// SetHL always returns ErrReadOnly.
func (r *ReadOnlyState) SetHL(uint16) error { return ErrReadOnly }

// H returns register H of the wrapped state.
func (r *ReadOnlyState) H() byte { return r.state.H() }

// SetH always returns ErrReadOnly.
func (r *ReadOnlyState) SetH(byte) error { return ErrReadOnly }

// L returns register L of the wrapped state.
func (r *ReadOnlyState) L() byte { return r.state.L() }

// SetL always returns ErrReadOnly.
func (r *ReadOnlyState) SetL(byte) error { return ErrReadOnly }

// SP returns the stack pointer of the wrapped state.
func (r *ReadOnlyState) SP() uint16 { return r.state.SP() }

// SetSP always returns ErrReadOnly.
func (r *ReadOnlyState) SetSP(uint16) error { return ErrReadOnly }

// PC returns the program counter of the wrapped state.
func (r *ReadOnlyState) PC() uint16 { return r.state.PC() }

// SetPC always returns ErrReadOnly.
func (r *ReadOnlyState) SetPC(uint16) error { return ErrReadOnly }

// Sign returns the sign flag of the wrapped state.
func (r *ReadOnlyState) Sign() bool { return r.state.Sign() }

// SetSign always returns ErrReadOnly.
func (r *ReadOnlyState) SetSign(bool) error { return ErrReadOnly }

// Zero returns the zero flag of the wrapped state.
func (r *ReadOnlyState) Zero() bool { return r.state.Zero() }

// SetZero always returns ErrReadOnly.
func (r *ReadOnlyState) SetZero(bool) error { return ErrReadOnly }

// AuxCarry returns the auxiliary carry flag of the wrapped state.
func (r *ReadOnlyState) AuxCarry() bool { return r.state.AuxCarry() }

// SetAuxCarry always returns ErrReadOnly.
func (r *ReadOnlyState) SetAuxCarry(bool) error { return ErrReadOnly }

// Parity returns the parity flag of the wrapped state.
func (r *ReadOnlyState) Parity() bool { return r.state.Parity() }

// SetParity always returns ErrReadOnly.
func (r *ReadOnlyState) SetParity(bool) error { return ErrReadOnly }

// Carry returns the carry flag of the wrapped state.
func (r *ReadOnlyState) Carry() bool { return r.state.Carry() }

// SetCarry always returns ErrReadOnly.
func (r *ReadOnlyState) SetCarry(bool) error { return ErrReadOnly }

// SyncState serializes every operation on the wrapped state behind a single
// lock, so no two operations interleave. Compose with NewReadOnlyState for a
// shared read-only view.
type SyncState struct {
	mu    sync.Mutex
	state ProcessorState
}

// NewSyncState wraps the given state into a synchronized one.
func NewSyncState(state ProcessorState) *SyncState {
	return &SyncState{state: state}
}

// PSW returns the processor status word.
func (s *SyncState) PSW() uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.PSW()
}

// SetPSW sets the processor status word.
func (s *SyncState) SetPSW(word uint16) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SetPSW(word)
}

// A returns the accumulator.
func (s *SyncState) A() byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.A()
}

// SetA sets the accumulator.
func (s *SyncState) SetA(value byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SetA(value)
}

// F returns the flag register.
func (s *SyncState) F() byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.F()
}

// SetF sets the flag register.
func (s *SyncState) SetF(value byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SetF(value)
}

// BC returns the BC pair.
func (s *SyncState) BC() uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.BC()
}

// SetBC sets the BC pair.
func (s *SyncState) SetBC(word uint16) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SetBC(word)
}

// B returns register B.
func (s *SyncState) B() byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.B()
}

// SetB sets register B.
func (s *SyncState) SetB(value byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SetB(value)
}

// C returns register C.
func (s *SyncState) C() byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.C()
}

// SetC sets register C.
func (s *SyncState) SetC(value byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SetC(value)
}

// DE returns the DE pair.
func (s *SyncState) DE() uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.DE()
}

// SetDE sets the DE pair.
func (s *SyncState) SetDE(word uint16) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SetDE(word)
}

// D returns register D.
func (s *SyncState) D() byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.D()
}

// SetD sets register D.
func (s *SyncState) SetD(value byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SetD(value)
}

// E returns register E.
func (s *SyncState) E() byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.E()
}

// SetE sets register E.
func (s *SyncState) SetE(value byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SetE(value)
}

// HL returns the HL pair.
func (s *SyncState) HL() uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.HL()
}

// SetHL sets the HL pair.
func (s *SyncState) SetHL(word uint16) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SetHL(word)
}

// H returns register H.
func (s *SyncState) H() byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.H()
}

// SetH sets register H.
func (s *SyncState) SetH(value byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SetH(value)
}

// L returns register L.
func (s *SyncState) L() byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.L()
}

// SetL sets register L.
func (s *SyncState) SetL(value byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SetL(value)
}

// SP returns the stack pointer.
func (s *SyncState) SP() uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SP()
}

// SetSP sets the stack pointer.
func (s *SyncState) SetSP(word uint16) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SetSP(word)
}

// PC returns the program counter.
func (s *SyncState) PC() uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.PC()
}

// SetPC sets the program counter.
func (s *SyncState) SetPC(word uint16) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SetPC(word)
}

// Sign returns the sign flag.
func (s *SyncState) Sign() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Sign()
}

// SetSign sets or clears the sign flag.
func (s *SyncState) SetSign(flag bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SetSign(flag)
}

// Zero returns the zero flag.
func (s *SyncState) Zero() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Zero()
}

// SetZero sets or clears the zero flag.
func (s *SyncState) SetZero(flag bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SetZero(flag)
}

// AuxCarry returns the auxiliary carry flag.
func (s *SyncState) AuxCarry() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.AuxCarry()
}

// SetAuxCarry sets or clears the auxiliary carry flag.
func (s *SyncState) SetAuxCarry(flag bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SetAuxCarry(flag)
}

// Parity returns the parity flag.
func (s *SyncState) Parity() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Parity()
}

// SetParity sets or clears the parity flag.
func (s *SyncState) SetParity(flag bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SetParity(flag)
}

// Carry returns the carry flag.
func (s *SyncState) Carry() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Carry()
}

// SetCarry sets or clears the carry flag.
func (s *SyncState) SetCarry(flag bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SetCarry(flag)
}
