package config

import "audiodock-go/types"

// -----------------------------------------------------------------------------
// Embedded configuration
//
// One entry per board revision. Values are build-time constants; there is no
// on-device config parser.
// -----------------------------------------------------------------------------

const boardPicoDock = "pico-dock"

// Presets step from full volume down to the attenuation floor. Index 0 is
// loudest, matching the chip's lower-is-louder coding.
var defaultPresets = types.PresetTable{
	0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38, 0x40, 0x4E,
}

var boardConfigs = map[string]types.DockConfig{
	boardPicoDock: {
		PinClock: 2,
		PinData:  3,
		PinLoad:  4,

		PinSatUp:   10,
		PinSatDown: 11,
		PinSubUp:   12,
		PinSubDown: 13,

		DebounceMs:   35,
		BootSettleMs: 1200, // downstream relays/rails need this before writes
		NudgeMs:      4000,

		DefaultSat: 0x20,
		DefaultSub: 0x20,

		Presets: defaultPresets,
	},
}
