package types

// DockConfig is the per-board wiring and timing description supplied to the
// orchestrator. Boards embed their defaults in services/config.
type DockConfig struct {
	// Attenuator bus pins.
	PinClock int
	PinData  int
	PinLoad  int

	// Button pins, active-low with pull-ups.
	PinSatUp   int // satellite louder
	PinSatDown int // satellite quieter
	PinSubUp   int // subwoofer louder
	PinSubDown int // subwoofer quieter

	// Timings.
	DebounceMs   int64 // raw input must hold this long before it is trusted
	BootSettleMs int   // wait before first hardware write after power-up
	NudgeMs      int64 // one-shot state resend this long after boot

	// First-boot volume, used when the store has no valid record.
	DefaultSat Code
	DefaultSub Code

	Presets PresetTable
}
