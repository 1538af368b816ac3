// services/command/command_test.go
package command

import (
	"strings"
	"testing"

	"audiodock-go/hal/platform"
	"audiodock-go/services/settings"
	"audiodock-go/services/volume"
	"audiodock-go/types"
)

var testPresets = types.PresetTable{
	0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38, 0x40, 0x4E,
}

type fakeTx struct {
	frames [][2]byte
}

func (f *fakeTx) Transmit(addr, data byte) {
	f.frames = append(f.frames, [2]byte{addr, data})
}

func newRig() (*Interpreter, *volume.Controller, *platform.MemStore, *platform.FakePort) {
	tx := &fakeTx{}
	mem := platform.NewMemStore(settings.RecordLen)
	store := settings.New(mem, 0x20, 0x20)
	vol := volume.New(tx, store, nil)
	out := &platform.FakePort{}
	return New(vol, store, testPresets, out), vol, mem, out
}

func TestRawHexCommand(t *testing.T) {
	in, vol, _, _ := newRig()

	if !in.Execute("SAT 1E") {
		t.Fatal("expected SAT 1E to report a state change")
	}
	if vol.Sat() != 0x1E {
		t.Errorf("sat = %#02x, want 0x1e", vol.Sat())
	}
}

func TestRawHexAcceptsAnyByte(t *testing.T) {
	in, vol, _, _ := newRig()

	// The raw path has no range restriction, by design.
	if !in.Execute("SUB FF") {
		t.Fatal("expected SUB FF to apply")
	}
	if vol.Sub() != 0xFF {
		t.Errorf("sub = %#02x, want 0xff", vol.Sub())
	}
}

func TestCaseAndWhitespaceInsensitive(t *testing.T) {
	in, vol, _, _ := newRig()

	if !in.Execute("  sat 1e  ") {
		t.Fatal("expected lower-case command to apply")
	}
	if vol.Sat() != 0x1E {
		t.Errorf("sat = %#02x, want 0x1e", vol.Sat())
	}
}

func TestPresetLookup(t *testing.T) {
	in, vol, _, _ := newRig()

	if !in.Execute("SATL 4") {
		t.Fatal("expected SATL 4 to apply")
	}
	if vol.Sat() != testPresets[4] {
		t.Errorf("sat = %#02x, want preset[4] = %#02x", vol.Sat(), testPresets[4])
	}
}

func TestPresetIndexOutOfRangeFallsThroughToHelp(t *testing.T) {
	in, vol, _, out := newRig()
	vol.SetGroup(types.GroupSatellites, 0x11)

	if in.Execute("SATL 20") {
		t.Error("out-of-range index must not report a change")
	}
	if vol.Sat() != 0x11 {
		t.Errorf("sat changed to %#02x on bad index", vol.Sat())
	}
	if !strings.Contains(out.Output(), "commands:") {
		t.Error("expected the generic help output")
	}
}

func TestAllAppliesBothGroups(t *testing.T) {
	in, vol, _, _ := newRig()

	if !in.Execute("ALLL 9") {
		t.Fatal("expected ALLL 9 to apply")
	}
	if vol.Sat() != testPresets[9] || vol.Sub() != testPresets[9] {
		t.Errorf("got (%#02x, %#02x), want preset[9] on both", vol.Sat(), vol.Sub())
	}

	if !in.Execute("ALL 2A") {
		t.Fatal("expected ALL 2A to apply")
	}
	if vol.Sat() != 0x2A || vol.Sub() != 0x2A {
		t.Errorf("got (%#02x, %#02x), want 0x2a on both", vol.Sat(), vol.Sub())
	}
}

func TestMute(t *testing.T) {
	in, vol, _, _ := newRig()

	if !in.Execute("MUTE") {
		t.Fatal("expected MUTE to report a change")
	}
	if vol.Sat() != types.CodeMuteMark || vol.Sub() != types.CodeMuteMark {
		t.Errorf("cached (%#02x, %#02x), want mute markers", vol.Sat(), vol.Sub())
	}
}

func TestFullVariants(t *testing.T) {
	in, vol, _, _ := newRig()
	vol.SetAll(0x30, 0x30)

	if !in.Execute("SATFULL") {
		t.Fatal("expected SATFULL to apply")
	}
	if vol.Sat() != types.CodeFull || vol.Sub() != 0x30 {
		t.Errorf("got (%#02x, %#02x) after SATFULL", vol.Sat(), vol.Sub())
	}

	if !in.Execute("FULL") {
		t.Fatal("expected FULL to apply")
	}
	if vol.Sat() != types.CodeFull || vol.Sub() != types.CodeFull {
		t.Errorf("got (%#02x, %#02x) after FULL", vol.Sat(), vol.Sub())
	}
}

func TestSavePersistsDirectly(t *testing.T) {
	in, vol, mem, _ := newRig()
	vol.SetAll(0x15, 0x25)

	// SAVE persists itself and reports no pending change to the caller.
	if in.Execute("SAVE") {
		t.Error("SAVE must not ask the caller to persist again")
	}
	sat, sub := settings.New(mem, 0, 0).Load()
	if sat != 0x15 || sub != 0x25 {
		t.Errorf("stored (%#02x, %#02x), want (0x15, 0x25)", sat, sub)
	}
}

func TestUnknownCommandGetsHelp(t *testing.T) {
	in, vol, _, out := newRig()
	vol.SetAll(0x10, 0x10)

	if in.Execute("LOUDER PLEASE") {
		t.Error("unknown command must not report a change")
	}
	if vol.Sat() != 0x10 || vol.Sub() != 0x10 {
		t.Error("unknown command must not mutate state")
	}
	if !strings.Contains(out.Output(), "commands:") {
		t.Error("expected help output")
	}
}

func TestBadHexFallsThroughToHelp(t *testing.T) {
	in, vol, _, out := newRig()
	vol.SetGroup(types.GroupSatellites, 0x22)

	if in.Execute("SAT ZZ") {
		t.Error("bad hex must not report a change")
	}
	if vol.Sat() != 0x22 {
		t.Error("bad hex must not mutate state")
	}
	if !strings.Contains(out.Output(), "commands:") {
		t.Error("expected help output")
	}
}

func TestEmptyLineIsQuiet(t *testing.T) {
	in, _, _, out := newRig()

	if in.Execute("   ") {
		t.Error("blank line must not report a change")
	}
	if out.Output() != "" {
		t.Errorf("blank line produced output %q", out.Output())
	}
}

func TestStatusLineAfterChange(t *testing.T) {
	in, _, _, out := newRig()

	in.Execute("SAT 1E")
	if !strings.Contains(out.Output(), "SAT=1E") {
		t.Errorf("expected a status line naming SAT=1E, got %q", out.Output())
	}
}
