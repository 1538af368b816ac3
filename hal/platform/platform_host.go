// hal/platform/platform_host.go
//go:build !rp2040 && !rp2350

package platform

import (
	"bufio"
	"os"
	"sync"
	"time"

	"audiodock-go/errcode"
	"audiodock-go/hal"
)

// ----------------------------- GPIO (host) -----------------------------------

// FakePin implements hal.GPIOPin for host-side tests and the simulator.
type FakePin struct {
	mu      sync.Mutex
	number  int
	level   bool
	modeOut bool
	pull    hal.Pull

	// Watch, when set, observes every output transition. Used by driver
	// tests to reconstruct the wire waveform.
	Watch func(level bool)
}

func NewFakePin(n int) *FakePin { return &FakePin{number: n} }

func (p *FakePin) ConfigureInput(pull hal.Pull) error {
	p.mu.Lock()
	p.modeOut = false
	p.pull = pull
	// Pull-up biasing makes the idle input read high.
	if pull == hal.PullUp {
		p.level = true
	}
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	p.modeOut = true
	p.level = initial
	w := p.Watch
	p.mu.Unlock()
	if w != nil {
		w(initial)
	}
	return nil
}

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	p.level = level
	w := p.Watch
	p.mu.Unlock()
	if w != nil {
		w(level)
	}
}

func (p *FakePin) Get() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

func (p *FakePin) Number() int { return p.number }

// Drive simulates the external signal on an input pin (e.g. a button pulling
// the line low).
func (p *FakePin) Drive(level bool) {
	p.mu.Lock()
	p.level = level
	p.mu.Unlock()
}

type fakePinFactory struct {
	mu   sync.Mutex
	pins map[int]*FakePin
}

func (f *fakePinFactory) ByNumber(n int) (hal.GPIOPin, bool) {
	if n < 0 {
		return nil, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.pins[n]
	if !ok {
		p = NewFakePin(n)
		f.pins[n] = p
	}
	return p, true
}

// DefaultPinFactory returns a factory handing out host fake pins.
func DefaultPinFactory() hal.PinFactory {
	return &fakePinFactory{pins: map[int]*FakePin{}}
}

// ----------------------------- Timing (host) ---------------------------------

// SleepDelay burns wall time; good enough for the simulator where nothing
// samples the lines.
type SleepDelay struct{}

func (SleepDelay) DelayUS(us int) { time.Sleep(time.Duration(us) * time.Microsecond) }

// FakeDelay records delay requests for tests asserting the timing contract.
type FakeDelay struct {
	mu      sync.Mutex
	Calls   int
	TotalUS int
}

func (d *FakeDelay) DelayUS(us int) {
	d.mu.Lock()
	d.Calls++
	d.TotalUS += us
	d.mu.Unlock()
}

func DefaultDelayer() hal.Delayer { return SleepDelay{} }

// --------------------------- Byte store (host) --------------------------------

// MemStore is an in-memory hal.ByteStore that counts physical writes so
// tests can assert wear-avoidance behavior.
type MemStore struct {
	mu     sync.Mutex
	data   []byte
	Writes int
}

func NewMemStore(size int) *MemStore { return &MemStore{data: make([]byte, size)} }

func (s *MemStore) ReadByte(off int) (byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if off < 0 || off >= len(s.data) {
		return 0, errcode.StoreShort
	}
	return s.data[off], nil
}

func (s *MemStore) WriteByte(off int, b byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if off < 0 || off >= len(s.data) {
		return errcode.StoreShort
	}
	s.data[off] = b
	s.Writes++
	return nil
}

func (s *MemStore) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// FileStore persists the record to a small file so the simulator survives
// restarts the way the device survives power cycles.
type FileStore struct {
	mu   sync.Mutex
	path string
	data []byte
}

func OpenFileStore(path string, size int) (*FileStore, error) {
	s := &FileStore{path: path, data: make([]byte, size)}
	raw, err := os.ReadFile(path)
	if err == nil {
		copy(s.data, raw)
	}
	return s, nil
}

func (s *FileStore) ReadByte(off int) (byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if off < 0 || off >= len(s.data) {
		return 0, errcode.StoreShort
	}
	return s.data[off], nil
}

func (s *FileStore) WriteByte(off int, b byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if off < 0 || off >= len(s.data) {
		return errcode.StoreShort
	}
	s.data[off] = b
	return os.WriteFile(s.path, s.data, 0o644)
}

func (s *FileStore) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

func DefaultStore() hal.ByteStore { return NewMemStore(16) }

// ------------------------------ Console (host) --------------------------------

// FakePort is a scripted hal.LinePort for tests.
type FakePort struct {
	mu  sync.Mutex
	in  []byte
	Out []byte
}

func (p *FakePort) Feed(s string) {
	p.mu.Lock()
	p.in = append(p.in, s...)
	p.mu.Unlock()
}

func (p *FakePort) ReadByte() (byte, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.in) == 0 {
		return 0, false
	}
	b := p.in[0]
	p.in = p.in[1:]
	return b, true
}

func (p *FakePort) WriteString(s string) {
	p.mu.Lock()
	p.Out = append(p.Out, s...)
	p.mu.Unlock()
}

// Output returns everything written so far.
func (p *FakePort) Output() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return string(p.Out)
}

// stdinPort adapts os.Stdin to hal.LinePort for the simulator.
type stdinPort struct {
	ch chan byte
}

func newStdinPort() *stdinPort {
	p := &stdinPort{ch: make(chan byte, 256)}
	go func() {
		r := bufio.NewReader(os.Stdin)
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(p.ch)
				return
			}
			p.ch <- b
		}
	}()
	return p
}

func (p *stdinPort) ReadByte() (byte, bool) {
	select {
	case b, ok := <-p.ch:
		if !ok {
			return 0, false
		}
		return b, true
	default:
		return 0, false
	}
}

func (p *stdinPort) WriteString(s string) { os.Stdout.WriteString(s) }

func DefaultConsole() hal.LinePort { return newStdinPort() }
