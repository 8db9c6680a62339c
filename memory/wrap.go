package memory

import "sync"

// Compile-time checks to ensure the wrappers implement Memory.
var (
	_ Memory = (*ReadOnly)(nil)
	_ Memory = (*Synchronized)(nil)
)

// ReadOnly is a view of a memory instance that refuses Write with
// ErrReadOnly and withholds the backing array. Reads, address
// classification and snapshots are forwarded unchanged. It is backed by the
// wrapped instance; direct changes to it remain visible through the view.
type ReadOnly struct {
	mem Memory
}

// NewReadOnly wraps the given memory into a read-only view.
func NewReadOnly(mem Memory) *ReadOnly {
	return &ReadOnly{mem: mem}
}

// VariableAddressMask returns the variable address line mask.
func (r *ReadOnly) VariableAddressMask() uint16 {
	return r.mem.VariableAddressMask()
}

// FixedAddressMask returns the fixed address line mask.
func (r *ReadOnly) FixedAddressMask() uint16 {
	return r.mem.FixedAddressMask()
}

// Size returns the number of storage cells.
func (r *ReadOnly) Size() int {
	return r.mem.Size()
}

// Read returns the byte at the cell the address folds to.
func (r *ReadOnly) Read(address uint16) byte {
	return r.mem.Read(address)
}

// Write always fails with ErrReadOnly.
func (r *ReadOnly) Write(uint16, byte) error {
	return ErrReadOnly
}

// BackingArray always returns nil; direct access would bypass the
// read-only restriction.
func (r *ReadOnly) BackingArray() []byte {
	return nil
}

// Snapshot returns an independent copy of the storage buffer.
func (r *ReadOnly) Snapshot() []byte {
	return r.mem.Snapshot()
}

// Synchronized serializes every operation on the wrapped memory behind a
// single lock. The exclusion is per whole operation, not per cell.
type Synchronized struct {
	mu  sync.Mutex
	mem Memory
}

// NewSynchronized wraps the given memory into a synchronized one.
func NewSynchronized(mem Memory) *Synchronized {
	return &Synchronized{mem: mem}
}

// VariableAddressMask returns the variable address line mask.
func (s *Synchronized) VariableAddressMask() uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mem.VariableAddressMask()
}

// FixedAddressMask returns the fixed address line mask.
func (s *Synchronized) FixedAddressMask() uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mem.FixedAddressMask()
}

// Size returns the number of storage cells.
func (s *Synchronized) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mem.Size()
}

// Read returns the byte at the cell the address folds to.
func (s *Synchronized) Read(address uint16) byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mem.Read(address)
}

// Write stores a byte at the cell the address folds to.
func (s *Synchronized) Write(address uint16, value byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mem.Write(address, value)
}

// BackingArray returns the backing buffer of the wrapped memory. Direct
// buffer access bypasses the lock.
func (s *Synchronized) BackingArray() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mem.BackingArray()
}

// Snapshot returns an independent point-in-time copy of the storage buffer,
// taken under the lock.
func (s *Synchronized) Snapshot() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mem.Snapshot()
}
