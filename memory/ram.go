package memory

import (
	"fmt"
	"math/bits"
)

// Compile-time check to ensure RAM implements Memory.
var _ Memory = (*RAM)(nil)

// RAM is the default random access Memory implementation. The mask pair is
// fixed at construction; only the storage content mutates.
type RAM struct {
	variableMask uint16
	fixedMask    uint16
	data         []byte
}

// New creates a RAM instance for the given address mask pair. The storage
// size is 2^popcount(variableMask) bytes, all cleared. It fails with
// ErrInvalidConfiguration if the masks overlap.
func New(variableMask, fixedMask uint16) (*RAM, error) {
	if variableMask&fixedMask != 0 {
		return nil, fmt.Errorf("%w: variable 0x%04X fixed 0x%04X", ErrInvalidConfiguration, variableMask, fixedMask)
	}
	return &RAM{
		variableMask: variableMask,
		fixedMask:    fixedMask,
		data:         make([]byte, 1<<bits.OnesCount16(variableMask)),
	}, nil
}

// NewFullSize creates a RAM instance covering the complete 64 KiB address
// space with no fixed address lines.
func NewFullSize() *RAM {
	mem, _ := New(0xFFFF, 0x0000)
	return mem
}

// VariableAddressMask returns the variable address line mask.
func (mem *RAM) VariableAddressMask() uint16 {
	return mem.variableMask
}

// FixedAddressMask returns the fixed address line mask.
func (mem *RAM) FixedAddressMask() uint16 {
	return mem.fixedMask
}

// Size returns the number of storage cells.
func (mem *RAM) Size() int {
	return len(mem.data)
}

// Read returns the byte at the cell the address folds to. It accepts any
// address, valid or not.
func (mem *RAM) Read(address uint16) byte {
	return mem.data[mapToIndex(address, mem.variableMask)]
}

// Write stores a byte at the cell the address folds to. It accepts any
// address, valid or not, and never fails.
func (mem *RAM) Write(address uint16, value byte) error {
	mem.data[mapToIndex(address, mem.variableMask)] = value
	return nil
}

// BackingArray returns the storage buffer in storage index order. Mutations
// of the returned slice are visible through Read.
func (mem *RAM) BackingArray() []byte {
	return mem.data
}

// Snapshot returns an independent copy of the storage buffer.
func (mem *RAM) Snapshot() []byte {
	snapshot := make([]byte, len(mem.data))
	copy(snapshot, mem.data)
	return snapshot
}
