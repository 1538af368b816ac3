// services/volume/volume.go
package volume

import (
	"audiodock-go/bus"
	"audiodock-go/drivers/atten"
	"audiodock-go/types"
	"audiodock-go/x/mathx"
)

// Transmitter is the write-only chip interface; drivers/atten satisfies it.
type Transmitter interface {
	Transmit(addr, data byte)
}

// Saver persists the current codes; services/settings satisfies it.
type Saver interface {
	Save(sat, sub types.Code) error
}

// Controller is the single source of truth for the applied volume and the
// only component that writes to the attenuator. It is not goroutine-safe;
// the orchestrator's loop is the sole caller.
type Controller struct {
	tx    Transmitter
	store Saver
	conn  *bus.Connection // optional status surface

	sat types.Code
	sub types.Code
}

func New(tx Transmitter, store Saver, conn *bus.Connection) *Controller {
	return &Controller{tx: tx, store: store, conn: conn}
}

// Sat returns the cached satellite code.
func (c *Controller) Sat() types.Code { return c.sat }

// Sub returns the cached subwoofer code.
func (c *Controller) Sub() types.Code { return c.sub }

// SetGroup writes code to every address in the group and caches it as-is.
// No clamping here: the console's raw hex path may program any byte.
func (c *Controller) SetGroup(g types.Group, code types.Code) {
	switch g {
	case types.GroupSatellites:
		c.tx.Transmit(atten.AddrSatLeft, byte(code))
		c.tx.Transmit(atten.AddrSatRight, byte(code))
		c.sat = code
	case types.GroupSubwoofer:
		c.tx.Transmit(atten.AddrSub, byte(code))
		c.sub = code
	}
	c.publish(g)
}

// SetAll programs satellites then subwoofer.
func (c *Controller) SetAll(sat, sub types.Code) {
	c.SetGroup(types.GroupSatellites, sat)
	c.SetGroup(types.GroupSubwoofer, sub)
}

// StepGroup nudges the group by delta (-1 = louder, +1 = quieter), saturating
// at the range ends, and persists the result. A muted group first normalizes
// to the attenuation floor so stepping out of mute moves predictably.
func (c *Controller) StepGroup(g types.Group, delta int) {
	var cur types.Code
	switch g {
	case types.GroupSatellites:
		cur = c.sat
	case types.GroupSubwoofer:
		cur = c.sub
	}
	next := mathx.Clamp(int(Normalize(cur))+delta, int(types.CodeFull), int(types.CodeFloor))
	c.SetGroup(g, types.Code(next))
	if err := c.store.Save(c.sat, c.sub); err != nil {
		println("Warn: volume: save failed:", err.Error())
	}
}

// Normalize maps mute markers (and anything past the floor) to the floor.
func Normalize(code types.Code) types.Code {
	if code.Muted() {
		return types.CodeFloor
	}
	return code
}

// MuteGroup asserts mute on one chip address through every code path the
// chip family is known to honor: mute marker, all-ones, then the floor.
// Variants differ and the bus is open-loop, so all three are sent.
func (c *Controller) MuteGroup(addr byte) {
	c.tx.Transmit(addr, atten.DataMuteMark)
	c.tx.Transmit(addr, atten.DataMuteAll)
	c.tx.Transmit(addr, atten.DataFloor)
}

// MuteAll mutes every address and caches the mute marker, which keeps
// "muted" distinguishable from "deepest but unmuted".
func (c *Controller) MuteAll() {
	c.MuteGroup(atten.AddrSatLeft)
	c.MuteGroup(atten.AddrSatRight)
	c.MuteGroup(atten.AddrSub)
	c.sat = types.CodeMuteMark
	c.sub = types.CodeMuteMark
	c.publish(types.GroupSatellites)
	c.publish(types.GroupSubwoofer)
}

func (c *Controller) publish(g types.Group) {
	if c.conn == nil {
		return
	}
	code := c.sat
	if g == types.GroupSubwoofer {
		code = c.sub
	}
	c.conn.Publish(bus.NewMessage(
		bus.T("dock", "volume", g.String(), "value"),
		types.VolumeValue{Group: g, Code: code},
		true,
	))
}
