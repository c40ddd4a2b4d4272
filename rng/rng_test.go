package rng

import "testing"

// stubSource records calls so dispatch behavior is observable.
type stubSource struct {
	reseeds int
	draws   int
	value   uint32
}

func (s *stubSource) Reseed() { s.reseeds++ }

func (s *stubSource) Uint32() uint32 {
	s.draws++
	return s.value
}

func TestRNG_DefaultsToNativeMode(t *testing.T) {
	stub := &stubSource{value: 0xABCD1234}
	r := New(WithSource(stub))

	if !r.Native() {
		t.Fatal("new RNG should start in native mode")
	}
	if got := r.Uint32(); got != 0xABCD1234 {
		t.Errorf("Uint32() = %#x, want stub value", got)
	}
	if stub.draws != 1 {
		t.Errorf("native source drawn %d times, want 1", stub.draws)
	}
}

func TestRNG_SeedZeroReseedsNative(t *testing.T) {
	stub := &stubSource{}
	r := New(WithSource(stub))

	r.Seed(0)
	if stub.reseeds != 1 {
		t.Errorf("Seed(0) reseeded native source %d times, want 1", stub.reseeds)
	}
	if !r.Native() {
		t.Error("Seed(0) should select native mode")
	}
}

func TestRNG_NonzeroSeedSelectsDeterministic(t *testing.T) {
	stub := &stubSource{value: 0xFFFFFFFF}
	r := New(WithSource(stub))

	r.Seed(1)
	if r.Native() {
		t.Fatal("nonzero seed should select deterministic mode")
	}
	if stub.reseeds != 0 {
		t.Error("nonzero seed must not touch the native source")
	}

	for i, want := range seed1Draws {
		if got := r.Uint32(); got != want {
			t.Fatalf("draw %d = %#08x, want %#08x", i, got, want)
		}
	}
	if stub.draws != 0 {
		t.Error("deterministic mode must not draw from the native source")
	}
}

func TestRNG_ReproducibilityAsymmetry(t *testing.T) {
	// Deterministic(seed=42) is reproducible across independently
	// constructed generators; Native(seed=0) is explicitly not asserted
	// reproducible, only well-formed.
	a, b := New(), New()
	a.Seed(42)
	b.Seed(42)
	for i := 0; i < 10_000; i++ {
		if va, vb := a.Uint32(), b.Uint32(); va != vb {
			t.Fatalf("deterministic draw %d diverged: %#x vs %#x", i, va, vb)
		}
	}

	a.Seed(0)
	if !a.Native() {
		t.Fatal("Seed(0) should return to native mode")
	}
	v1, v2 := a.Uint32(), a.Uint32()
	if v1 == 0 && v2 == 0 {
		t.Error("two native draws both zero, entropy source looks broken")
	}
}

func TestRNG_ReseedRestartsSequence(t *testing.T) {
	r := New()
	r.Seed(7)
	first := []uint32{r.Uint32(), r.Uint32(), r.Uint32()}

	r.Seed(7)
	for i, want := range first {
		if got := r.Uint32(); got != want {
			t.Fatalf("draw %d after reseed = %#x, want %#x", i, got, want)
		}
	}
}

func TestRNG_ModeRoundTrip(t *testing.T) {
	stub := &stubSource{value: 99}
	r := New(WithSource(stub))

	r.Seed(5)
	det := r.Uint32()
	r.Seed(0)
	if got := r.Uint32(); got != 99 {
		t.Errorf("native draw = %d, want 99", got)
	}
	r.Seed(5)
	if got := r.Uint32(); got != det {
		t.Errorf("returning to seed 5 should restart its sequence: %#x vs %#x", got, det)
	}
}

func TestRNG_FallbackReported(t *testing.T) {
	r := New(WithFallback())
	if !r.Fallback() {
		t.Error("WithFallback should be reported by Fallback()")
	}
	if New().Fallback() {
		t.Error("default RNG should not report fallback")
	}
	if New(WithSource(&stubSource{})).Fallback() {
		t.Error("explicit source should not report fallback")
	}

	// Fallback native mode still yields a defined draw sequence.
	r.Seed(0)
	_ = r.Uint32()
	_ = r.Uint32()
}
