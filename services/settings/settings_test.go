// services/settings/settings_test.go
package settings

import (
	"testing"

	"audiodock-go/hal/platform"
	"audiodock-go/types"
)

const (
	defSat types.Code = 0x20
	defSub types.Code = 0x20
)

func TestSaveLoadRoundTrip(t *testing.T) {
	m := platform.NewMemStore(RecordLen)
	s := New(m, defSat, defSub)

	if err := s.Save(0x1E, 0x33); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Fresh Store over the same media simulates a reboot.
	s2 := New(m, defSat, defSub)
	sat, sub := s2.Load()
	if sat != 0x1E || sub != 0x33 {
		t.Errorf("loaded (%#02x, %#02x), want (0x1e, 0x33)", sat, sub)
	}
}

func TestLoadUninitializedSelfHeals(t *testing.T) {
	m := platform.NewMemStore(RecordLen)
	s := New(m, defSat, defSub)

	sat, sub := s.Load()
	if sat != defSat || sub != defSub {
		t.Errorf("loaded (%#02x, %#02x), want defaults", sat, sub)
	}

	// The store must now carry a valid record.
	if b, _ := m.ReadByte(0); b != Magic {
		t.Errorf("magic byte not written, got %#02x", b)
	}
	s2 := New(m, 0x01, 0x02) // different defaults must not matter now
	sat, sub = s2.Load()
	if sat != defSat || sub != defSub {
		t.Errorf("reload got (%#02x, %#02x), want healed defaults", sat, sub)
	}
}

func TestLoadCorruptMagicSelfHeals(t *testing.T) {
	m := platform.NewMemStore(RecordLen)
	_ = m.WriteByte(0, 0xDE)
	_ = m.WriteByte(1, 0x11)
	_ = m.WriteByte(2, 0x22)
	s := New(m, defSat, defSub)

	sat, sub := s.Load()
	if sat != defSat || sub != defSub {
		t.Errorf("corrupt record must yield defaults, got (%#02x, %#02x)", sat, sub)
	}
	if b, _ := m.ReadByte(0); b != Magic {
		t.Errorf("store not re-initialized, magic = %#02x", b)
	}
}

func TestSaveIsIdempotentOnMedia(t *testing.T) {
	m := platform.NewMemStore(RecordLen)
	s := New(m, defSat, defSub)

	if err := s.Save(0x10, 0x20); err != nil {
		t.Fatalf("save: %v", err)
	}
	writes := m.Writes

	// Same state again: wear-limited media must see zero new writes.
	if err := s.Save(0x10, 0x20); err != nil {
		t.Fatalf("save: %v", err)
	}
	if m.Writes != writes {
		t.Errorf("idempotent save wrote %d extra bytes", m.Writes-writes)
	}

	// Changing one code writes exactly one byte.
	if err := s.Save(0x10, 0x21); err != nil {
		t.Fatalf("save: %v", err)
	}
	if m.Writes != writes+1 {
		t.Errorf("expected exactly 1 extra write, got %d", m.Writes-writes)
	}
}

func TestSaveMuteMarkerSurvivesReboot(t *testing.T) {
	m := platform.NewMemStore(RecordLen)
	s := New(m, defSat, defSub)

	if err := s.Save(types.CodeMuteMark, types.CodeMuteMark); err != nil {
		t.Fatalf("save: %v", err)
	}
	sat, sub := New(m, defSat, defSub).Load()
	if sat != types.CodeMuteMark || sub != types.CodeMuteMark {
		t.Errorf("loaded (%#02x, %#02x), want mute markers", sat, sub)
	}
}
