// services/dock/dock.go
//
// Orchestrator: boots the dock, then runs the single-threaded polling loop.
// All state mutation happens on this loop; each dispatched operation (one
// button step, one console command) completes before the next pass begins.
package dock

import (
	"context"
	"time"

	"audiodock-go/bus"
	"audiodock-go/hal"
	"audiodock-go/services/buttons"
	"audiodock-go/services/command"
	"audiodock-go/services/settings"
	"audiodock-go/services/volume"
	"audiodock-go/types"
	"audiodock-go/x/conv"
	"audiodock-go/x/timex"
)

// Loop states. Booting ends with the one-shot nudge; there is no way back.
const (
	stateBooting uint8 = iota
	stateSteady
)

const maxLineLen = 64

// Button order is fixed: satellite louder, satellite quieter, sub louder,
// sub quieter. press() maps indexes accordingly.
const (
	btnSatUp = iota
	btnSatDown
	btnSubUp
	btnSubDown
)

// Wire is the attenuator bus surface the orchestrator touches directly:
// resting the lines at boot. All data writes go through the volume
// controller. drivers/atten satisfies it.
type Wire interface {
	Configure() error
}

type Deps struct {
	Cfg      types.DockConfig
	Atten    Wire
	Volume   *volume.Controller
	Store    *settings.Store
	Commands *command.Interpreter
	Buttons  [4]*buttons.Button
	Console  hal.LinePort
	Conn     *bus.Connection // optional
}

type Service struct {
	d Deps

	state  uint8
	bootMs int64
	line   []byte
}

func New(d Deps) *Service {
	return &Service{d: d, line: make([]byte, 0, maxLineLen)}
}

// Boot runs once: rest the attenuator lines, bias the buttons, load the
// stored volume, wait out the hardware settle window, apply the state and
// write it back defensively so store and hardware agree.
func (s *Service) Boot() error {
	if err := s.d.Atten.Configure(); err != nil {
		return err
	}
	for _, b := range s.d.Buttons {
		if err := b.Configure(); err != nil {
			return err
		}
	}

	sat, sub := s.d.Store.Load()

	time.Sleep(time.Duration(s.d.Cfg.BootSettleMs) * time.Millisecond)

	s.d.Volume.SetAll(sat, sub)
	if err := s.d.Store.Save(s.d.Volume.Sat(), s.d.Volume.Sub()); err != nil {
		println("Warn: dock: boot save failed:", err.Error())
	}

	s.bootMs = timex.NowMs()
	s.state = stateBooting
	s.report("booting", "restored")
	s.d.Console.WriteString("dock up, SAT=" + conv.ByteHex(byte(s.d.Volume.Sat())) +
		" SUB=" + conv.ByteHex(byte(s.d.Volume.Sub())) + "\r\n")
	return nil
}

// Run polls until the context ends. Boot must have been called.
func (s *Service) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			println("Info: dock service stopping")
			return
		default:
		}
		s.step(timex.NowMs())
		time.Sleep(time.Millisecond)
	}
}

// step is one loop pass: buttons first, then at most one console command,
// then the one-shot nudge check.
func (s *Service) step(nowMs int64) {
	for i, b := range s.d.Buttons {
		if b.Poll(nowMs) {
			s.press(i, nowMs)
			break // at most one button step per pass
		}
	}

	s.pollConsole()

	if s.state == stateBooting && nowMs-s.bootMs >= s.d.Cfg.NudgeMs {
		// The amplifier has been seen to need a second assertion of its
		// settings after waking; resend whatever is cached, once.
		s.d.Volume.SetAll(s.d.Volume.Sat(), s.d.Volume.Sub())
		s.state = stateSteady
		s.report("steady", "nudged")
	}
}

func (s *Service) press(i int, nowMs int64) {
	switch i {
	case btnSatUp:
		s.d.Volume.StepGroup(types.GroupSatellites, -1)
	case btnSatDown:
		s.d.Volume.StepGroup(types.GroupSatellites, +1)
	case btnSubUp:
		s.d.Volume.StepGroup(types.GroupSubwoofer, -1)
	case btnSubDown:
		s.d.Volume.StepGroup(types.GroupSubwoofer, +1)
	}
	if s.d.Conn != nil {
		s.d.Conn.Publish(bus.NewMessage(
			bus.T("dock", "button", s.d.Buttons[i].Name()),
			types.ButtonEvent{Name: s.d.Buttons[i].Name(), TSMs: nowMs},
			false,
		))
	}
}

// pollConsole drains pending bytes into the line buffer and dispatches at
// most one complete line per pass. CR is ignored; LF terminates.
func (s *Service) pollConsole() {
	for {
		b, ok := s.d.Console.ReadByte()
		if !ok {
			return
		}
		switch b {
		case '\n':
			line := string(s.line)
			s.line = s.line[:0]
			s.dispatch(line)
			return
		case '\r':
			// ignore
		default:
			if len(s.line) < maxLineLen {
				s.line = append(s.line, b)
			}
		}
	}
}

func (s *Service) dispatch(line string) {
	if s.d.Conn != nil {
		s.d.Conn.Publish(bus.NewMessage(bus.T("dock", "console", "line"), line, false))
	}
	if s.d.Commands.Execute(line) {
		if err := s.d.Store.Save(s.d.Volume.Sat(), s.d.Volume.Sub()); err != nil {
			println("Warn: dock: save failed:", err.Error())
		}
	}
}

func (s *Service) report(level, status string) {
	println("Info: dock:", level, status)
	if s.d.Conn == nil {
		return
	}
	s.d.Conn.Publish(bus.NewMessage(
		bus.T("dock", "state"),
		types.DockState{Level: level, Status: status, TSMs: timex.NowMs()},
		true,
	))
}
