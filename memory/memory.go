// Package memory models the folding 16-bit address bus of the 8085.
//
// A memory instance is configured with a pair of bit masks that partition
// the 16 address lines into variable lines, wired to the CPU, and fixed
// lines, tied to constant levels. Only 2^popcount(variableMask) storage
// cells exist; addresses that differ solely in unwired bit positions fold
// back to the same cell, mirroring real hardware.
package memory

import "errors"

// Errors returned by the memory package.
var (
	// ErrInvalidConfiguration is returned when the variable and fixed
	// address masks overlap.
	ErrInvalidConfiguration = errors.New("variable and fixed address masks overlap")
	// ErrOutOfRange is returned when a storage index does not fit the
	// configured variable address lines.
	ErrOutOfRange = errors.New("index out of range")
	// ErrReadOnly is returned when writing to read-only memory.
	ErrReadOnly = errors.New("memory is read-only")
)

// Memory is an 8-bit data, 16-bit address memory interface.
//
// Read and Write never fail on invalid or mirrored addresses: the address is
// folded onto a storage cell via the mask configuration. This is deliberate
// hardware fidelity, not error suppression. Write can fail with ErrReadOnly
// on read-only instances.
//
// Implementations are not safe for unsynchronized concurrent mutation;
// wrap with NewSynchronized for whole-operation mutual exclusion.
type Memory interface {
	// VariableAddressMask is 1 in the address bit positions wired to the CPU.
	// The number of 1 bits determines the storage size.
	VariableAddressMask() uint16
	// FixedAddressMask carries the constant levels of the unwired address
	// lines. It is also the lowest valid address.
	FixedAddressMask() uint16
	// Size returns the number of uniquely addressable cells, always a power
	// of two in [1, 65536].
	Size() int
	// Read returns the byte stored at the cell the address folds to.
	Read(address uint16) byte
	// Write stores a byte at the cell the address folds to.
	Write(address uint16, value byte) error
	// BackingArray returns the storage buffer backing this instance, or nil
	// if direct access is withheld. Mutating a returned buffer is visible
	// through Read.
	BackingArray() []byte
	// Snapshot returns an independent point-in-time copy of the storage
	// buffer, in storage index order.
	Snapshot() []byte
}

// IsValidAddress returns true if the address is accepted by the memory
// instance without folding: all unwired address bits match the fixed mask.
func IsValidAddress(m Memory, address uint16) bool {
	return address&^m.VariableAddressMask() == m.FixedAddressMask()
}
