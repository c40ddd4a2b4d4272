package rng

// Deterministic is the xoshiro128** pseudo-random number generator.
// Adapted from the public domain C implementation at
// https://prng.di.unimi.it/xoshiro128starstar.c
//
// Output depends only on 32-bit unsigned arithmetic, so a given seed
// produces the same draw sequence on every host, build, and compiler.
type Deterministic struct {
	state [4]uint32
}

// SplitMix32 avalanche constants.
const (
	goldenGamma = 0x9E3779B9
	mixMul1     = 0x85EBCA6B
	mixMul2     = 0xC2B2AE35
)

// Seed derives the 128-bit generator state from a 32-bit seed using
// SplitMix32. The quality of SplitMix32 itself does not matter much; it
// only has to spread the seed bits across all four state words so that
// adjacent seeds yield unrelated states. Every input is valid, including
// zero: the golden-ratio increment offsets the accumulator before the
// first mix, so the all-zero state can never be produced.
func (d *Deterministic) Seed(seed uint32) {
	for ix := 0; ix < 4; ix++ {
		seed += goldenGamma
		s := seed
		s ^= s >> 15
		s *= mixMul1
		s ^= s >> 13
		s *= mixMul2
		s ^= s >> 16
		d.state[ix] = s
	}
}

// Uint32 draws the next value and advances the state. The result is
// computed from state word 1 before the update; there is no way to peek
// without advancing.
func (d *Deterministic) Uint32() uint32 {
	result := rotl(d.state[1]*5, 7) * 9

	t := d.state[1] << 9

	d.state[2] ^= d.state[0]
	d.state[3] ^= d.state[1]
	d.state[1] ^= d.state[2]
	d.state[0] ^= d.state[3]

	d.state[2] ^= t

	d.state[3] = rotl(d.state[3], 11)

	return result
}

func rotl(x uint32, k int) uint32 {
	return (x << k) | (x >> (32 - k))
}
