package rng

import (
	"sync"

	glulxruntime "github.com/wippyai/glulx-runtime"
)

// RNG is the VM's randomness subsystem: a runtime-selectable dispatcher
// over a host-native Source and a Deterministic generator. The VM core
// holds exactly one RNG per session; it is an owned value, not a process
// global.
//
// Mode and generator state form one atomic unit. The VM core is
// single-threaded, but the mutex guarantees a Seed racing a Uint32 can
// never observe a torn half-updated state.
type RNG struct {
	native   Source
	det      Deterministic
	mu       sync.Mutex
	fallback bool
	useNat   bool
}

var _ glulxruntime.RandomSource = (*RNG)(nil)

// Option configures an RNG.
type Option func(*RNG)

// WithSource installs a host-specific native source in place of the
// default CryptoSource.
func WithSource(s Source) Option {
	return func(r *RNG) {
		r.native = s
		r.fallback = false
	}
}

// WithFallback configures the RNG for a host with no usable native
// source: native mode degrades to the deterministic generator reseeded
// from the wall clock.
func WithFallback() Option {
	return func(r *RNG) {
		r.native = NewFallbackSource()
		r.fallback = true
	}
}

// New creates an RNG in native mode backed by OS entropy unless
// configured otherwise.
func New(opts ...Option) *RNG {
	r := &RNG{useNat: true}
	for _, opt := range opts {
		opt(r)
	}
	if r.native == nil {
		r.native = NewCryptoSource()
	}
	return r
}

// Seed selects the random source and seeds it. Zero switches to the
// native source and re-randomizes it; any nonzero value switches to the
// deterministic generator initialized from that value. Never fails.
func (r *RNG) Seed(seed uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if seed == 0 {
		r.useNat = true
		r.native.Reseed()
		return
	}
	r.useNat = false
	r.det.Seed(seed)
}

// Uint32 returns one value from the selected source, uniform over the
// full 32-bit range. Never fails.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.useNat {
		return r.native.Uint32()
	}
	return r.det.Uint32()
}

// Native reports whether the RNG is currently in native mode.
func (r *RNG) Native() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.useNat
}

// Fallback reports whether the native source is the documented
// deterministic-from-clock substitution rather than true host entropy.
func (r *RNG) Fallback() bool {
	return r.fallback
}
