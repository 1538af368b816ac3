//go:build !rp2040 && !rp2350

// dock-sim runs the full firmware loop on the host: console commands come
// from stdin, the attenuator waveform goes to fake pins, and the settings
// record lives in a small file so "power cycles" (restarts) behave like the
// real dock. A bus monitor mirrors every dock topic to stdout.
package main

import (
	"context"
	"fmt"

	"audiodock-go/bus"
	"audiodock-go/drivers/atten"
	"audiodock-go/hal"
	"audiodock-go/hal/platform"
	"audiodock-go/services/buttons"
	"audiodock-go/services/command"
	"audiodock-go/services/config"
	"audiodock-go/services/dock"
	"audiodock-go/services/settings"
	"audiodock-go/services/volume"
)

func main() {
	cfg := config.Default()
	cfg.BootSettleMs = 0 // nothing to settle on the host

	b := bus.NewBus(8)
	dockConn := b.NewConnection("dock")
	monConn := b.NewConnection("monitor")

	mon := monConn.Subscribe(bus.T("dock", "#"))
	go func() {
		for m := range mon.Channel() {
			fmt.Printf("[monitor] %s <- %v\n", m.Topic, m.Payload)
		}
	}()

	pins := platform.DefaultPinFactory()
	pin := func(n int) hal.GPIOPin {
		p, _ := pins.ByNumber(n)
		return p
	}

	att := atten.New(pin(cfg.PinClock), pin(cfg.PinData), pin(cfg.PinLoad), platform.DefaultDelayer())

	fs, err := platform.OpenFileStore("dock-settings.bin", settings.RecordLen)
	if err != nil {
		fmt.Println("cannot open settings file:", err)
		return
	}
	store := settings.New(fs, cfg.DefaultSat, cfg.DefaultSub)

	vol := volume.New(att, store, dockConn)
	console := platform.DefaultConsole()
	intp := command.New(vol, store, cfg.Presets, console)

	btns := [4]*buttons.Button{
		buttons.New("sat_up", pin(cfg.PinSatUp), cfg.DebounceMs),
		buttons.New("sat_down", pin(cfg.PinSatDown), cfg.DebounceMs),
		buttons.New("sub_up", pin(cfg.PinSubUp), cfg.DebounceMs),
		buttons.New("sub_down", pin(cfg.PinSubDown), cfg.DebounceMs),
	}

	svc := dock.New(dock.Deps{
		Cfg:      cfg,
		Atten:    att,
		Volume:   vol,
		Store:    store,
		Commands: intp,
		Buttons:  btns,
		Console:  console,
		Conn:     dockConn,
	})

	if err := svc.Boot(); err != nil {
		fmt.Println("boot failed:", err)
		return
	}
	fmt.Println("dock-sim ready; type commands (MUTE, SAT 1E, SATL 4, ...)")
	svc.Run(context.Background())
}
