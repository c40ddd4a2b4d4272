// Package glulxruntime provides the platform-dependency layer for a
// Glulx-style bytecode VM interpreter.
//
// The VM's instruction dispatch, stack/heap model, and opcode semantics live
// elsewhere; this library supplies the host-specific primitives the opcode
// layer calls through an abstract boundary, so the VM core never touches the
// host runtime directly.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	glulx-runtime/       Root package with the core Allocator contract
//	├── rng/             Dual-mode random number subsystem (the core)
//	├── osdep/           OS shim: heap allocator, sort wrapper, safer pow
//	├── image/           Program image classification and archive extraction
//	├── session/         VM session startup: locate, classify, restart hooks
//	├── errors/          Structured error types for debugging
//	└── cmd/run/         Image inspector CLI with interactive mode
//
// # Randomness
//
// The VM exposes a "set random seed" instruction to interpreted programs.
// Seeding with a nonzero value selects a deterministic xoshiro128** generator
// whose output is bit-for-bit reproducible across every host and build;
// seeding with zero selects a host-native entropy source. See package rng.
//
//	r := rng.New()
//	r.Seed(42)        // deterministic from here on
//	v := r.Uint32()
//	r.Seed(0)         // back to host entropy
//
// # Sessions
//
// A Session owns one random generator and one heap for its lifetime and
// performs the startup classification of a program image (raw bytecode vs
// archive-wrapped):
//
//	sess, err := session.Start(session.Config{ImagePath: "game.gblorb"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sess.SetRandomSeed(42)
//	v := sess.GetRandom()
//
// # Thread Safety
//
// The VM core is single-threaded and is the sole caller in the steady state.
// rng.RNG nevertheless guards its mode and state as one atomic unit, so a
// seed operation can never expose a torn half-updated state to a draw.
package glulxruntime
