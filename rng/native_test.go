package rng

import "testing"

func TestCryptoSource_Uint32(t *testing.T) {
	s := NewCryptoSource()
	s.Reseed() // no-op, must not panic

	v1, v2 := s.Uint32(), s.Uint32()
	if v1 == 0 && v2 == 0 {
		t.Error("both crypto draws are zero, unlikely")
	}
}

func TestClockSource_Uint32(t *testing.T) {
	s := NewClockSource()

	seen := make(map[uint32]bool)
	for i := 0; i < 16; i++ {
		seen[s.Uint32()] = true
	}
	if len(seen) < 2 {
		t.Error("clock source draws show no variation")
	}

	s.Reseed()
	_ = s.Uint32()
}

func TestFallbackSource_IsDeterministicFromClock(t *testing.T) {
	// Two fallback sources reseeded within the same wall-clock second
	// produce the same sequence; that is the documented substitution, not
	// a bug. Only the draw machinery is asserted here.
	s := NewFallbackSource()
	v1 := s.Uint32()
	v2 := s.Uint32()
	if v1 == v2 {
		t.Error("consecutive fallback draws should differ")
	}

	s.Reseed()
	if s.Uint32() == 0 && s.Uint32() == 0 {
		t.Error("fallback draws after reseed both zero")
	}
}
