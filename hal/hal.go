// hal/hal.go
package hal

// ---- GPIO abstractions ----

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// GPIOPin is the narrow pin surface the firmware needs. The platform
// package supplies machine-backed pins on RP2 builds and fakes on the host.
type GPIOPin interface {
	ConfigureInput(pull Pull) error
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
	Number() int
}

// PinFactory supplies GPIO pins by the configured number scheme.
type PinFactory interface {
	ByNumber(n int) (GPIOPin, bool)
}

// ---- Timing ----

// Delayer holds execution for at least us microseconds. The attenuator's
// only correctness guarantee is timing, so implementations must not let the
// wait be shortened or elided; overshooting is fine.
type Delayer interface {
	DelayUS(us int)
}

// ---- Durable byte storage ----

// ByteStore is a tiny random-access view of wear-limited durable media
// (EEPROM on device, memory or a file on the host). Implementations do not
// need to deduplicate writes; callers read before writing.
type ByteStore interface {
	ReadByte(off int) (byte, error)
	WriteByte(off int, b byte) error
	Size() int
}

// ---- Console ----

// LinePort is a non-blocking byte source for the text command channel.
// ReadByte returns ok=false when nothing is pending.
type LinePort interface {
	ReadByte() (b byte, ok bool)
	WriteString(s string)
}
