package types

// ---- Attenuation codes ----

// Code is one attenuator register value. Lower is louder: 0x00 is full
// volume, 0x4E is the deepest attenuation the chip treats as an ordinary
// level. 0x4F and 0xFF are reserved mute markers, not levels.
type Code uint8

const (
	CodeFull     Code = 0x00 // no attenuation
	CodeFloor    Code = 0x4E // deepest attenuation before mute
	CodeMuteMark Code = 0x4F // cached marker: "muted", not a level
	CodeMuteAll  Code = 0xFF // transient all-ones mute, never cached
)

// Muted reports whether c is one of the reserved mute markers.
func (c Code) Muted() bool { return c >= CodeMuteMark }

// ---- Channel groups ----

// Group is a logical volume control spanning one or more chip addresses.
type Group uint8

const (
	GroupSatellites Group = iota // Sat-L + Sat-R, ganged
	GroupSubwoofer               // single address
)

func (g Group) String() string {
	switch g {
	case GroupSatellites:
		return "sat"
	case GroupSubwoofer:
		return "sub"
	}
	return "?"
}

// ---- Preset table ----

// PresetTable holds the ten build-time preset codes reachable from the
// console via SATL/SUBL/ALLL n.
type PresetTable [10]Code

// ---- Bus payloads ----

// VolumeValue is published retained under dock/volume/<group>/value.
type VolumeValue struct {
	Group Group
	Code  Code
}

// ButtonEvent is published under dock/button/<name> on each debounced press.
type ButtonEvent struct {
	Name string
	TSMs int64
}

// DockState is the retained status document under dock/state.
type DockState struct {
	Level  string // "booting", "steady"
	Status string // freeform short code
	TSMs   int64
}
