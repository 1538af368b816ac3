// drivers/atten/atten.go
//
// Bit-bang driver for the dock's three-wire serial attenuator (clock, data,
// load). A frame is an address byte followed by a data byte, both MSB-first;
// the chip samples the data line on each rising clock edge and latches the
// frame on the load pulse. There is no readback and no acknowledgement.
package atten

import (
	"audiodock-go/hal"
)

type Device struct {
	clk hal.GPIOPin
	dat hal.GPIOPin
	ld  hal.GPIOPin

	// Delays go through the injected Delayer so the per-phase hold cannot
	// be optimized away; see hal.Delayer.
	delay hal.Delayer
}

func New(clk, dat, ld hal.GPIOPin, delay hal.Delayer) *Device {
	return &Device{clk: clk, dat: dat, ld: ld, delay: delay}
}

// Configure drives all three lines to their inactive resting state (low).
func (d *Device) Configure() error {
	if err := d.clk.ConfigureOutput(false); err != nil {
		return err
	}
	if err := d.dat.ConfigureOutput(false); err != nil {
		return err
	}
	return d.ld.ConfigureOutput(false)
}

// Transmit programs one chip register: address byte then data byte. It is a
// fire-and-forget write; the chip offers no way to observe failure.
func (d *Device) Transmit(addr, data byte) {
	d.ld.Set(false)

	d.shiftByte(addr)
	d.shiftByte(data)

	// Latch the frame, then return the bus to rest.
	d.ld.Set(true)
	d.delay.DelayUS(LatchUS)
	d.ld.Set(false)
	d.clk.Set(false)
	d.dat.Set(false)
}

// shiftByte clocks out one byte MSB-first. The data line must be settled
// before each rising edge; both clock phases hold for BitSettleUS.
func (d *Device) shiftByte(b byte) {
	for i := 7; i >= 0; i-- {
		d.clk.Set(false)
		d.dat.Set(b&(1<<uint(i)) != 0)
		d.delay.DelayUS(BitSettleUS)
		d.clk.Set(true)
		d.delay.DelayUS(BitSettleUS)
	}
}
