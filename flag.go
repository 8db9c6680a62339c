package i8085

import "strings"

// Flag register bit masks. The flag register is the low byte of the processor
// status word; bits 1, 3 and 5 are not assigned to any flag, their content is
// undefined on read and ignored on write.
const (
	// FlagSign is set when the 8-bit result of an operation is negative
	// (most significant bit is 1).
	FlagSign = 0x80
	// FlagZero is set when the result is zero.
	FlagZero = 0x40
	// FlagAuxCarry is set when a carry out of bit 3 of the result is carried
	// into bit 4, used for BCD arithmetic.
	FlagAuxCarry = 0x10
	// FlagParity is set when the result has an even number of 1 bits.
	FlagParity = 0x04
	// FlagCarry is set when an arithmetic operation results in a carry.
	FlagCarry = 0x01

	// NoFlags indicates that no flags are affected.
	NoFlags = 0x00
)

// flagNames lists the canonical flag short names in flag register bit order,
// highest bit first.
var flagNames = []struct {
	mask byte
	name string
}{
	{FlagSign, "S"},
	{FlagZero, "Z"},
	{FlagAuxCarry, "AC"},
	{FlagParity, "P"},
	{FlagCarry, "CY"},
}

// FlagString returns a comma separated description of the flags set in the
// given mask, for example "Z,P,CY". It returns an empty string for NoFlags.
func FlagString(flags byte) string {
	names := make([]string, 0, len(flagNames))
	for _, f := range flagNames {
		if flags&f.mask != 0 {
			names = append(names, f.name)
		}
	}
	return strings.Join(names, ",")
}
