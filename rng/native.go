package rng

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
	"time"
)

// Source is the capability contract a host-native random source must
// satisfy. Reseed re-randomizes the source from entropy or the clock; it
// takes no arguments and is only invoked when the VM is seeded with zero.
// Uint32 must be uniform over the full 32-bit range; sources with a
// narrower native range must extend it, not truncate.
type Source interface {
	Reseed()
	Uint32() uint32
}

// CryptoSource draws from the OS entropy pool via crypto/rand.
// This is the default native source.
type CryptoSource struct{}

// NewCryptoSource creates a Source backed by OS entropy.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{}
}

// Reseed is a no-op: the kernel entropy pool needs no reseeding.
func (s *CryptoSource) Reseed() {}

func (s *CryptoSource) Uint32() uint32 {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand.Read should never fail on a properly configured
		// system. Return 0 rather than panic to keep draws total.
		return 0
	}
	return binary.LittleEndian.Uint32(buf[:])
}

// ClockSource draws from math/rand seeded from the wall clock.
// Non-reproducible across runs, but cheaper than OS entropy.
type ClockSource struct {
	r *mrand.Rand
}

// NewClockSource creates a clock-seeded math/rand source.
func NewClockSource() *ClockSource {
	return &ClockSource{
		r: mrand.New(mrand.NewSource(time.Now().UnixNano())), //nolint:gosec // native mode is not cryptographic
	}
}

func (s *ClockSource) Reseed() {
	s.r.Seed(time.Now().UnixNano())
}

func (s *ClockSource) Uint32() uint32 {
	return uint32(s.r.Uint64())
}

// FallbackSource is the documented substitution for hosts with no usable
// native source: the same deterministic generator, reseeded from the wall
// clock on every Reseed. A caller asking "is this truly non-reproducible"
// must check RNG.Fallback rather than assume OS entropy.
type FallbackSource struct {
	gen Deterministic
}

// NewFallbackSource creates a clock-seeded deterministic fallback source.
func NewFallbackSource() *FallbackSource {
	s := &FallbackSource{}
	s.Reseed()
	return s
}

func (s *FallbackSource) Reseed() {
	s.gen.Seed(uint32(time.Now().Unix()))
}

func (s *FallbackSource) Uint32() uint32 {
	return s.gen.Uint32()
}
