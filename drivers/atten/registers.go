package atten

// Chip register addresses. Three attenuator channels are wired; the
// satellite pair is driven in lock-step by the volume controller.
const (
	AddrSatLeft  byte = 0x00
	AddrSatRight byte = 0x01
	AddrSub      byte = 0x02
)

// Data byte semantics. 0x00..0x4E are ordinary attenuation levels (lower is
// louder). 0x4F and 0xFF are the chip's mute codes.
const (
	DataFull     byte = 0x00
	DataFloor    byte = 0x4E
	DataMuteMark byte = 0x4F
	DataMuteAll  byte = 0xFF
)

// Timing contract, from the chip datasheet. Each clock phase must hold at
// least BitSettleUS before the next transition; the latch pulse holds twice
// that. The protocol is open-loop, so timing is the only correctness
// guarantee there is.
const (
	BitSettleUS = 1
	LatchUS     = 2 * BitSettleUS
)
