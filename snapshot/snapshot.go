// Package snapshot captures, restores and verifies memory save states.
//
// A snapshot is the dense storage buffer of a memory instance; external
// collaborators persisting snapshots must preserve it byte for byte together
// with the address mask pair that produced it. Verify gives them the check
// for that contract.
package snapshot

import (
	"fmt"

	"github.com/retroenv/i8085/memory"
	"github.com/retroenv/retrogolib/log"
)

// Capture returns an independent point-in-time copy of the memory content in
// storage index order. For a point-in-time guarantee under concurrent
// mutation the instance has to be wrapped with memory.NewSynchronized.
func Capture(mem memory.Memory) []byte {
	return mem.Snapshot()
}

// Restore writes a snapshot back into a memory instance with the same
// storage size. Every byte is written through the canonical address of its
// storage cell, so the target folds it to the identical cell the snapshot
// was taken from. Restoring into a read-only instance fails with
// memory.ErrReadOnly.
func Restore(mem memory.Memory, snapshot []byte) error {
	if len(snapshot) != mem.Size() {
		return fmt.Errorf("mismatched lengths, %d != %d", len(snapshot), mem.Size())
	}

	variableMask := mem.VariableAddressMask()
	fixedMask := mem.FixedAddressMask()
	for index, value := range snapshot {
		address, err := memory.MapToAddress(index, variableMask, fixedMask)
		if err != nil {
			return fmt.Errorf("mapping index %d: %w", index, err)
		}
		if err := mem.Write(address, value); err != nil {
			return fmt.Errorf("writing address 0x%04X: %w", address, err)
		}
	}
	return nil
}

// Verify compares the current memory content against a snapshot and logs up
// to 10 mismatched offsets. It returns an error describing the mismatch
// count if the contents differ.
func Verify(logger *log.Logger, mem memory.Memory, snapshot []byte) error {
	got := mem.Snapshot()
	if len(snapshot) != len(got) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(snapshot), len(got))
	}

	var diffs uint64
	for i := range snapshot {
		if snapshot[i] == got[i] {
			continue
		}

		diffs++
		if diffs < 10 {
			logger.Error("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", snapshot[i]),
				log.Hex("got", got[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches", diffs)
}
