package main

import (
	"context"
	"time"

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

func mustPin(pins hal.PinFactory, n int) hal.GPIOPin {
	p, ok := pins.ByNumber(n)
	if !ok {
		println("fatal: no such pin:", n)
		for {
			time.Sleep(time.Second)
		}
	}
	return p
}

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot: audiodock")

	cfg := config.Default()

	b := bus.NewBus(8)
	conn := b.NewConnection("dock")

	pins := platform.DefaultPinFactory()
	att := atten.New(
		mustPin(pins, cfg.PinClock),
		mustPin(pins, cfg.PinData),
		mustPin(pins, cfg.PinLoad),
		platform.DefaultDelayer(),
	)

	store := settings.New(platform.DefaultStore(), cfg.DefaultSat, cfg.DefaultSub)
	vol := volume.New(att, store, conn)
	console := platform.DefaultConsole()
	intp := command.New(vol, store, cfg.Presets, console)

	btns := [4]*buttons.Button{
		buttons.New("sat_up", mustPin(pins, cfg.PinSatUp), cfg.DebounceMs),
		buttons.New("sat_down", mustPin(pins, cfg.PinSatDown), cfg.DebounceMs),
		buttons.New("sub_up", mustPin(pins, cfg.PinSubUp), cfg.DebounceMs),
		buttons.New("sub_down", mustPin(pins, cfg.PinSubDown), cfg.DebounceMs),
	}

	svc := dock.New(dock.Deps{
		Cfg:      cfg,
		Atten:    att,
		Volume:   vol,
		Store:    store,
		Commands: intp,
		Buttons:  btns,
		Console:  console,
		Conn:     conn,
	})

	if err := svc.Boot(); err != nil {
		println("fatal: boot failed:", err.Error())
		return
	}
	svc.Run(context.Background())
}
