package session

import (
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/glulx-runtime/errors"
	"github.com/wippyai/glulx-runtime/image"
	"github.com/wippyai/glulx-runtime/osdep"
	"github.com/wippyai/glulx-runtime/rng"
)

// Session is one VM run's view of the platform layer. It owns the
// randomness subsystem and the heap; both live exactly as long as the
// session.
type Session struct {
	cfg       Config
	program   []byte
	kind      image.Kind
	rng       *rng.RNG
	heap      *osdep.Heap
	onRestart []func()
}

// Start locates and classifies the configured program image and builds
// the session around it. A classification failure is a fatal startup
// error: the VM never begins executing.
func Start(cfg Config) (*Session, error) {
	if cfg.ImagePath == "" {
		return nil, errors.InvalidInput(errors.PhaseStartup, "no program image path configured")
	}

	s := &Session{
		cfg:  cfg,
		heap: osdep.NewHeap(cfg.HeapLimit),
		rng:  newRNG(cfg),
	}
	if cfg.Seed != 0 {
		s.rng.Seed(cfg.Seed)
	}

	if err := s.locate(); err != nil {
		return nil, err
	}
	return s, nil
}

func newRNG(cfg Config) *rng.RNG {
	switch {
	case cfg.Source != nil:
		return rng.New(rng.WithSource(cfg.Source))
	case cfg.ClockFallback:
		return rng.New(rng.WithFallback())
	}
	return rng.New()
}

// locate is the "program located" step: resolve the path to bytes,
// classify, and unwrap. Runs once per session start.
func (s *Session) locate() error {
	data, err := os.ReadFile(s.cfg.ImagePath)
	if err != nil {
		return errors.Load("read program image", err)
	}

	program, kind, err := image.Program(data)
	if err != nil {
		return err
	}

	s.program = program
	s.kind = kind

	Logger().Info("program located",
		zap.String("path", s.cfg.ImagePath),
		zap.Stringer("kind", kind),
		zap.Int("program_bytes", len(program)),
	)
	return nil
}

// Restart re-resolves and re-classifies the program image, resets the
// heap and the random generator to their configured startup state, and
// invokes registered restart handlers. The front-end shell calls this
// when the interpreted program asks to start over.
func (s *Session) Restart() error {
	if err := s.locate(); err != nil {
		return err
	}

	s.heap = osdep.NewHeap(s.cfg.HeapLimit)
	s.rng.Seed(s.cfg.Seed)

	for _, fn := range s.onRestart {
		fn()
	}
	return nil
}

// OnRestart registers a handler invoked after each successful Restart.
func (s *Session) OnRestart(fn func()) {
	s.onRestart = append(s.onRestart, fn)
}

// Program returns the located bytecode image.
func (s *Session) Program() []byte {
	return s.program
}

// Kind reports how the image was packaged.
func (s *Session) Kind() image.Kind {
	return s.kind
}

// SetRandomSeed seeds the session's random subsystem. Zero selects the
// native source; nonzero selects the deterministic generator. Never fails.
func (s *Session) SetRandomSeed(seed uint32) {
	s.rng.Seed(seed)
}

// GetRandom draws one 32-bit value from the selected source. Never fails.
func (s *Session) GetRandom() uint32 {
	return s.rng.Uint32()
}

// RNG exposes the owned random subsystem.
func (s *Session) RNG() *rng.RNG {
	return s.rng
}

// Alloc allocates from the session heap; nil signals failure.
func (s *Session) Alloc(size uint32) []byte {
	return s.heap.Alloc(size)
}

// Realloc resizes a heap block with ANSI semantics; nil signals failure
// with the original block intact.
func (s *Session) Realloc(buf []byte, size uint32) []byte {
	return s.heap.Realloc(buf, size)
}

// Free releases a heap block. Free(nil) is a no-op.
func (s *Session) Free(buf []byte) {
	s.heap.Free(buf)
}

// Heap exposes the owned allocator.
func (s *Session) Heap() *osdep.Heap {
	return s.heap
}
