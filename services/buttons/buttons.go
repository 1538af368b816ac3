// services/buttons/buttons.go
package buttons

import (
	"audiodock-go/hal"
)

// DefaultWindowMs is the debounce window: a raw transition must hold this
// long before it is trusted.
const DefaultWindowMs = 35

// Button debounces one momentary, active-low input (pulled high at rest).
// Each raw flicker restarts the window, so contact bounce faster than the
// window produces no events at all.
type Button struct {
	name   string
	pin    hal.GPIOPin
	window int64 // ms

	stable       bool // committed level; true = high = not pressed
	raw          bool // most recent raw level
	lastChangeMs int64
}

// New assumes the line idles high so the first poll cannot report a phantom
// press.
func New(name string, pin hal.GPIOPin, windowMs int64) *Button {
	if windowMs <= 0 {
		windowMs = DefaultWindowMs
	}
	return &Button{name: name, pin: pin, window: windowMs, stable: true, raw: true}
}

func (b *Button) Name() string { return b.name }

// Configure sets the pin up as an input with pull-up biasing.
func (b *Button) Configure() error { return b.pin.ConfigureInput(hal.PullUp) }

// Down reports the committed (debounced) pressed state.
func (b *Button) Down() bool { return !b.stable }

// Poll samples the raw input and returns true exactly once per physical
// press: on the high-to-low commit after the level has held for the full
// window. Releases never report.
func (b *Button) Poll(nowMs int64) bool {
	lvl := b.pin.Get()
	if lvl != b.raw {
		b.raw = lvl
		b.lastChangeMs = nowMs
		return false
	}
	if nowMs-b.lastChangeMs > b.window && b.raw != b.stable {
		b.stable = b.raw
		return !b.stable
	}
	return false
}
