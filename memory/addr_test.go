package memory

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMapToAddress(t *testing.T) {
	tests := []struct {
		name         string
		index        int
		variableMask uint16
		fixedMask    uint16
		expected     uint16
	}{
		{"full address space", 0x1234, 0xFFFF, 0x0000, 0x1234},
		{"first cell", 0, 0x00FF, 0x0000, 0x0000},
		{"low byte only", 0x05, 0x00FF, 0x0000, 0x0005},
		{"fixed bits ored in", 0x05, 0x00FF, 0x4000, 0x4005},
		{"bits spread ascending", 0b101, 0x8181, 0x0000, 0x0101},
		{"single line", 1, 0x8000, 0x0000, 0x8000},
		{"no lines", 0, 0x0000, 0x1234, 0x1234},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			address, err := MapToAddress(tt.index, tt.variableMask, tt.fixedMask)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, address)
		})
	}
}

func TestMapToAddressOutOfRange(t *testing.T) {
	_, err := MapToAddress(-1, 0x00FF, 0x0000)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	_, err = MapToAddress(0x100, 0x00FF, 0x0000)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	_, err = MapToAddress(1, 0x0000, 0x0000)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	// largest valid index still maps
	address, err := MapToAddress(0xFF, 0x00FF, 0x0000)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x00FF), address)
}

func TestMapInvalidConfiguration(t *testing.T) {
	_, err := MapToAddress(0, 0x00FF, 0x0001)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))

	_, err = MapToIndex(0, 0x00FF, 0x0001)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}

func TestMapRoundTrip(t *testing.T) {
	masks := []struct {
		variableMask uint16
		fixedMask    uint16
	}{
		{0x00FF, 0x0000},
		{0x00FF, 0x4000},
		{0x0FF0, 0x8001},
		{0xAAAA, 0x5555},
		{0x0001, 0x0000},
		{0x0000, 0xFFFF},
	}

	for _, tt := range masks {
		size := 1
		for m := tt.variableMask; m != 0; m &= m - 1 {
			size <<= 1
		}
		for index := 0; index < size; index++ {
			address, err := MapToAddress(index, tt.variableMask, tt.fixedMask)
			assert.NoError(t, err)

			back, err := MapToIndex(address, tt.variableMask, tt.fixedMask)
			assert.NoError(t, err)
			assert.Equal(t, index, back)
		}
	}
}

// Folding back any address and mapping the resulting index to its canonical
// address must preserve the variable address bits.
func TestMapFoldingTotality(t *testing.T) {
	const variableMask, fixedMask = 0x1F0F, 0x4000

	for address := 0; address <= 0xFFFF; address++ {
		index, err := MapToIndex(uint16(address), variableMask, fixedMask)
		assert.NoError(t, err)

		canonical, err := MapToAddress(index, variableMask, fixedMask)
		assert.NoError(t, err)
		assert.Equal(t, uint16(address)&variableMask, canonical&variableMask)
	}
}
