package memory

import (
	"errors"
	"sync"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestReadOnly(t *testing.T) {
	mem, err := New(0x00FF, 0x0000)
	assert.NoError(t, err)
	assert.NoError(t, mem.Write(0x0010, 0x55))

	view := NewReadOnly(mem)
	assert.Equal(t, byte(0x55), view.Read(0x0010))
	assert.Equal(t, mem.Size(), view.Size())
	assert.Equal(t, mem.VariableAddressMask(), view.VariableAddressMask())
	assert.Equal(t, mem.FixedAddressMask(), view.FixedAddressMask())
	assert.True(t, IsValidAddress(view, 0x0010))

	err = view.Write(0x0010, 0xFF)
	assert.True(t, errors.Is(err, ErrReadOnly))
	assert.Equal(t, byte(0x55), mem.Read(0x0010))

	assert.True(t, view.BackingArray() == nil)

	snapshot := view.Snapshot()
	assert.Equal(t, byte(0x55), snapshot[0x10])

	// changes to the wrapped memory stay visible through the view
	assert.NoError(t, mem.Write(0x0010, 0x56))
	assert.Equal(t, byte(0x56), view.Read(0x0010))
}

func TestSynchronized(t *testing.T) {
	mem, err := New(0x00FF, 0x0000)
	assert.NoError(t, err)
	shared := NewSynchronized(mem)

	const writers = 8
	const rounds = 100

	var wg sync.WaitGroup
	wg.Add(writers)
	for w := 0; w < writers; w++ {
		go func(value byte) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				_ = shared.Write(uint16(i), value)
				_ = shared.Read(uint16(i))
				_ = shared.Snapshot()
			}
		}(byte(w))
	}
	wg.Wait()

	// every cell holds the value of one of the writers
	for i := 0; i < rounds; i++ {
		value := shared.Read(uint16(i))
		assert.True(t, value < writers)
	}
}

func TestSynchronizedReadOnlyComposition(t *testing.T) {
	mem, err := New(0x000F, 0x0000)
	assert.NoError(t, err)
	assert.NoError(t, mem.Write(0x0001, 0x11))

	shared := NewSynchronized(NewReadOnly(mem))
	assert.Equal(t, byte(0x11), shared.Read(0x0001))
	assert.True(t, errors.Is(shared.Write(0x0001, 0x22), ErrReadOnly))
	assert.True(t, shared.BackingArray() == nil)
}
