package memory

import "fmt"

// MapToAddress translates a dense storage index into the canonical 16-bit
// address of the cell. The index bits are distributed into the bit positions
// set in variableMask in ascending order: the lowest set mask bit receives
// index bit 0. The fixed mask is then ORed in.
//
// It fails with ErrInvalidConfiguration if the masks overlap and with
// ErrOutOfRange if the index is negative or needs more bits than the
// variable mask provides.
func MapToAddress(index int, variableMask, fixedMask uint16) (uint16, error) {
	if variableMask&fixedMask != 0 {
		return 0, fmt.Errorf("%w: variable 0x%04X fixed 0x%04X", ErrInvalidConfiguration, variableMask, fixedMask)
	}
	if index < 0 {
		return 0, fmt.Errorf("%w: index %d < 0", ErrOutOfRange, index)
	}

	var address uint16
	indexBit := 1
	for maskBit := uint32(1); maskBit <= 0x8000; maskBit <<= 1 {
		if uint32(variableMask)&maskBit != 0 {
			if index&indexBit != 0 {
				address |= uint16(maskBit)
			}
			indexBit <<= 1
		}
	}
	if index >= indexBit {
		return 0, fmt.Errorf("%w: index %d >= %d", ErrOutOfRange, index, indexBit)
	}
	return address | fixedMask, nil
}

// MapToIndex translates any 16-bit address into the dense storage index of
// the cell it folds to: the address is masked with variableMask and the
// surviving bits are compacted in the same ascending order used by
// MapToAddress. The translation is total over all addresses, valid or not;
// this is what implements mirroring.
//
// It fails only with ErrInvalidConfiguration if the masks overlap.
func MapToIndex(address, variableMask, fixedMask uint16) (int, error) {
	if variableMask&fixedMask != 0 {
		return 0, fmt.Errorf("%w: variable 0x%04X fixed 0x%04X", ErrInvalidConfiguration, variableMask, fixedMask)
	}
	return mapToIndex(address, variableMask), nil
}

// mapToIndex compacts the variable address bits into a dense index. Callers
// must have validated the mask configuration.
func mapToIndex(address, variableMask uint16) int {
	index := 0
	indexBit := 1
	for maskBit := uint32(1); maskBit <= 0x8000; maskBit <<= 1 {
		if uint32(variableMask)&maskBit != 0 {
			if uint32(address)&maskBit != 0 {
				index |= indexBit
			}
			indexBit <<= 1
		}
	}
	return index
}
