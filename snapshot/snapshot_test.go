package snapshot

import (
	"errors"
	"testing"

	"github.com/retroenv/i8085/memory"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestCaptureRestoreRoundTrip(t *testing.T) {
	mem, err := memory.New(0x00FF, 0x4000)
	assert.NoError(t, err)
	for i := 0; i < mem.Size(); i++ {
		assert.NoError(t, mem.Write(uint16(0x4000+i), byte(i)))
	}

	snap := Capture(mem)

	restored, err := memory.New(0x00FF, 0x4000)
	assert.NoError(t, err)
	assert.NoError(t, Restore(restored, snap))

	for i := 0; i < restored.Size(); i++ {
		assert.Equal(t, byte(i), restored.Read(uint16(0x4000+i)))
	}
}

// Restoring works across mask configurations as long as the storage size
// matches, since snapshots are in storage index order.
func TestRestoreMirroredConfiguration(t *testing.T) {
	source, err := memory.New(0x00FF, 0x0000)
	assert.NoError(t, err)
	assert.NoError(t, source.Write(0x0005, 0xAB))

	target, err := memory.New(0xFF00, 0x0000)
	assert.NoError(t, err)
	assert.NoError(t, Restore(target, Capture(source)))

	// storage cell 5 of the target is addressed through address bit 8+
	assert.Equal(t, byte(0xAB), target.Read(0x0500))
}

func TestRestoreSizeMismatch(t *testing.T) {
	mem, err := memory.New(0x00FF, 0x0000)
	assert.NoError(t, err)

	assert.Error(t, Restore(mem, make([]byte, 16)))
}

func TestRestoreReadOnly(t *testing.T) {
	mem, err := memory.New(0x000F, 0x0000)
	assert.NoError(t, err)

	view := memory.NewReadOnly(mem)
	err = Restore(view, make([]byte, view.Size()))
	assert.True(t, errors.Is(err, memory.ErrReadOnly))
}

func TestVerify(t *testing.T) {
	logger := log.NewTestLogger(t)

	mem, err := memory.New(0x000F, 0x0000)
	assert.NoError(t, err)
	assert.NoError(t, mem.Write(0x0001, 0x11))

	snap := Capture(mem)
	assert.NoError(t, Verify(logger, mem, snap))

	assert.NoError(t, mem.Write(0x0001, 0x22))
	assert.Error(t, Verify(logger, mem, snap))

	assert.Error(t, Verify(logger, mem, make([]byte, 4)))
}
