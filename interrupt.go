package i8085

// Interrupt mask bit positions as read by the RIM instruction.
const (
	// MaskRst55, MaskRst65 and MaskRst75 report whether the respective
	// restart interrupt is masked.
	MaskRst55 = 0x01
	MaskRst65 = 0x02
	MaskRst75 = 0x04
	// InterruptEnable reports the state of the interrupt enable flip-flop.
	InterruptEnable = 0x08
	// Rst55Pending, Rst65Pending and Rst75Pending report pending interrupts.
	Rst55Pending = 0x10
	Rst65Pending = 0x20
	Rst75Pending = 0x40
	// SerialInputData is the SID pin level.
	SerialInputData = 0x80
)

// Interrupt mask bit positions as written by the SIM instruction. The three
// restart mask bits are shared with the RIM layout above.
const (
	// MaskSetEnable must be set for the restart mask bits to be applied.
	MaskSetEnable = 0x08
	// ResetRst75 clears the RST 7.5 flip-flop.
	ResetRst75 = 0x10
	// SerialOutputEnable must be set for SerialOutputData to be applied.
	SerialOutputEnable = 0x40
	// SerialOutputData is the new SOD pin level.
	SerialOutputData = 0x80
)
