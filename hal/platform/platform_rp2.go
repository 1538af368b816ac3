// hal/platform/platform_rp2.go
//go:build rp2040 || rp2350

package platform

import (
	"context"
	"machine"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/at24cx"

	"audiodock-go/hal"
)

// ----------------------------- GPIO (RP2) ------------------------------------

type rp2PinFactory struct{}

// DefaultPinFactory maps logical numbers directly to machine.Pin(n).
// This matches Pico/Pico 2 GP numbering.
func DefaultPinFactory() hal.PinFactory { return rp2PinFactory{} }

func (rp2PinFactory) ByNumber(n int) (hal.GPIOPin, bool) {
	// Constrain to RP2's user GPIOs (GP0..GP28).
	if n < 0 || n > 28 {
		return nil, false
	}
	return &rp2Pin{p: machine.Pin(n), n: n}, true
}

type rp2Pin struct {
	p machine.Pin
	n int
}

func (r *rp2Pin) ConfigureInput(pull hal.Pull) error {
	var mode machine.PinMode
	switch pull {
	case hal.PullUp:
		mode = machine.PinInputPullup
	case hal.PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r *rp2Pin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r *rp2Pin) Set(level bool) { r.p.Set(level) }
func (r *rp2Pin) Get() bool      { return r.p.Get() }
func (r *rp2Pin) Number() int    { return r.n }

// ----------------------------- Timing (RP2) -----------------------------------

// busyDelay spins on the monotonic clock. The attenuator needs a guaranteed
// minimum hold per clock phase; a scheduler yield could overshoot wildly but
// a busy-wait cannot undershoot or be optimized out.
type busyDelay struct{}

func (busyDelay) DelayUS(us int) {
	t0 := time.Now()
	d := time.Duration(us) * time.Microsecond
	for time.Since(t0) < d {
	}
}

func DefaultDelayer() hal.Delayer { return busyDelay{} }

// --------------------------- Byte store (RP2) ---------------------------------

// eepromStore adapts the AT24Cxx I²C EEPROM on the dock board to
// hal.ByteStore. The settings record occupies the first bytes of the array.
type eepromStore struct {
	dev at24cx.Device
}

func (s *eepromStore) ReadByte(off int) (byte, error) {
	return s.dev.ReadByte(uint16(off))
}

func (s *eepromStore) WriteByte(off int, b byte) error {
	return s.dev.WriteByte(uint16(off), b)
}

func (s *eepromStore) Size() int { return 256 }

// DefaultStore opens the settings EEPROM on i2c0 at board-default pins.
func DefaultStore() hal.ByteStore {
	bus := machine.I2C0
	_ = bus.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.I2C0_SDA_PIN,
		SCL:       machine.I2C0_SCL_PIN,
	})
	return &eepromStore{dev: at24cx.New(bus)}
}

// ------------------------------ Console (RP2) ----------------------------------

// uartPort adapts uartx to hal.LinePort. A pump goroutine keeps a small
// buffer filled so the control loop's ReadByte never blocks.
type uartPort struct {
	u  *uartx.UART
	ch chan byte
}

func (p *uartPort) pump() {
	buf := make([]byte, 64)
	for {
		n, err := p.u.RecvSomeContext(context.Background(), buf)
		if err != nil {
			continue
		}
		for i := 0; i < n; i++ {
			select {
			case p.ch <- buf[i]:
			default:
				// drop if the loop is far behind
			}
		}
	}
}

func (p *uartPort) ReadByte() (byte, bool) {
	select {
	case b := <-p.ch:
		return b, true
	default:
		return 0, false
	}
}

func (p *uartPort) WriteString(s string) { _, _ = p.u.Write([]byte(s)) }

// DefaultConsole opens UART0 at 115200 on board-default pins.
func DefaultConsole() hal.LinePort {
	hw := uartx.UART0
	// Zero pin values let uartx apply its board defaults.
	_ = hw.Configure(uartx.UARTConfig{BaudRate: 115200})
	p := &uartPort{u: hw, ch: make(chan byte, 256)}
	go p.pump()
	return p
}
