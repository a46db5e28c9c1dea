// Package mis - RNG utilities for the randomized heuristic.
//
// Policy:
//   - Seed != 0 ⇒ deterministic stream, identical across runs and platforms.
//   - Seed == 0 ⇒ a fresh seed is read from OS entropy for every run.
//   - math/rand.Rand is NOT goroutine-safe; each run owns its generator unless
//     the caller injects one with WithRand.
package mis

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// runRNG returns the generator for one run according to o.
func runRNG(o Options) *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}

	return rngFromSeed(o.Seed)
}

// rngFromSeed returns a *rand.Rand seeded with seed, or with entropy when
// seed is zero.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = entropySeed()
	}

	return rand.New(rand.NewSource(s))
}

// entropySeed reads 8 bytes from crypto/rand. If the OS source fails the
// wall clock is used instead; the result is still non-reproducible.
func entropySeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return time.Now().UnixNano()
	}

	return int64(binary.LittleEndian.Uint64(buf[:]))
}

// DeriveSeed mixes a parent seed and a stream id into a new seed with a
// SplitMix64 finalizer, so that per-job streams derived from one base seed
// are decorrelated. A zero result is remapped to keep it deterministic
// under the Seed == 0 ⇒ entropy rule.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		x = 1
	}

	return int64(x)
}
