// services/settings/settings.go
package settings

import (
	"audiodock-go/hal"
	"audiodock-go/types"
)

// Record layout: a magic byte tags the 3-byte region as initialized, then
// the satellite and subwoofer codes at fixed offsets.
const (
	offMagic = 0
	offSat   = 1
	offSub   = 2

	Magic     byte = 0xA5
	RecordLen      = 3
)

// Store persists the last chosen volume on wear-limited durable media.
type Store struct {
	b      hal.ByteStore
	defSat types.Code
	defSub types.Code
}

func New(b hal.ByteStore, defSat, defSub types.Code) *Store {
	return &Store{b: b, defSat: defSat, defSub: defSub}
}

// Load returns the stored codes when the magic byte matches. A mismatch or
// read failure is treated as first boot: the defaults are returned and
// persisted immediately so the next boot finds a valid record.
func (s *Store) Load() (sat, sub types.Code) {
	m, err := s.b.ReadByte(offMagic)
	if err != nil || m != Magic {
		_ = s.Save(s.defSat, s.defSub)
		return s.defSat, s.defSub
	}
	bs, err1 := s.b.ReadByte(offSat)
	bb, err2 := s.b.ReadByte(offSub)
	if err1 != nil || err2 != nil {
		return s.defSat, s.defSub
	}
	return types.Code(bs), types.Code(bb)
}

// Save writes magic + both codes. Each byte is read first and rewritten only
// on change, so repeated saves of the same state cost no erase cycles.
func (s *Store) Save(sat, sub types.Code) error {
	if err := s.writeIfChanged(offMagic, Magic); err != nil {
		return err
	}
	if err := s.writeIfChanged(offSat, byte(sat)); err != nil {
		return err
	}
	return s.writeIfChanged(offSub, byte(sub))
}

func (s *Store) writeIfChanged(off int, b byte) error {
	cur, err := s.b.ReadByte(off)
	if err == nil && cur == b {
		return nil
	}
	return s.b.WriteByte(off, b)
}
