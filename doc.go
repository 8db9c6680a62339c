// Package i8085 provides Intel 8085 architecture support for emulators,
// disassemblers and debuggers.
//
// The package contains the instruction decode table with per-opcode timing,
// flag effect and addressing mode info, the programmable register set and the
// flag register bit vocabulary. The companion memory package models the
// folding 16-bit address bus.
package i8085
