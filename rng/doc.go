// Package rng implements the VM's dual-mode random number subsystem.
//
// The VM's "set random seed" instruction routes here. A nonzero seed selects
// a deterministic xoshiro128** generator whose draw sequence is a pure
// function of the seed and the draw count, identical on every host and
// build; this is what makes interpreted programs testable under a fixed
// seed. A zero seed selects a host-native source re-randomized from OS
// entropy or the clock.
//
//	r := rng.New()
//	r.Seed(42)       // deterministic, reproducible everywhere
//	a := r.Uint32()
//	r.Seed(0)        // host entropy, not reproducible
//	b := r.Uint32()
//
// Hosts without a usable entropy source can construct the RNG with
// WithFallback, which substitutes the deterministic generator seeded from
// the wall clock. The substitution is reported by Fallback, never silent.
package rng
