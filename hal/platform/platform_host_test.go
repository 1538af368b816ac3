//go:build !rp2040 && !rp2350

package platform

import (
	"path/filepath"
	"testing"

	"audiodock-go/hal"
)

func TestFakePinPullUpIdlesHigh(t *testing.T) {
	p := NewFakePin(10)
	if err := p.ConfigureInput(hal.PullUp); err != nil {
		t.Fatal(err)
	}
	if !p.Get() {
		t.Error("pulled-up input should idle high")
	}
	p.Drive(false)
	if p.Get() {
		t.Error("driven-low input should read low")
	}
}

func TestMemStoreBounds(t *testing.T) {
	m := NewMemStore(3)
	if err := m.WriteByte(3, 0xFF); err == nil {
		t.Error("expected out-of-range write to fail")
	}
	if _, err := m.ReadByte(-1); err == nil {
		t.Error("expected out-of-range read to fail")
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.bin")

	s, err := OpenFileStore(path, 3)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.WriteByte(0, 0xA5); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteByte(1, 0x1E); err != nil {
		t.Fatal(err)
	}

	s2, err := OpenFileStore(path, 3)
	if err != nil {
		t.Fatal(err)
	}
	if b, _ := s2.ReadByte(0); b != 0xA5 {
		t.Errorf("byte 0 = %#02x after reopen, want 0xa5", b)
	}
	if b, _ := s2.ReadByte(1); b != 0x1E {
		t.Errorf("byte 1 = %#02x after reopen, want 0x1e", b)
	}
}
