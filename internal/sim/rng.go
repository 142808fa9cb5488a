package sim

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource is the single randomness handle the engine consumes. It is
// always passed explicitly so a play's resolution is reproducible given a
// seed, and so parallel simulations do not share state.
type RandomSource interface {
	Float64() float64 // [0, 1)
}

// cryptoRNG is the default source, backed by crypto/rand.
type cryptoRNG struct{}

func (cryptoRNG) Float64() float64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		// fall back to math/rand/v2
		return rand.Float64()
	}

	// top 53 bits => uniform float in [0, 1)
	u := binary.BigEndian.Uint64(buf[:]) >> 11
	return float64(u) / (1 << 53)
}

func DefaultRNG() RandomSource { return cryptoRNG{} }

// seededRNG is a replicable source for tests and Monte Carlo runs.
type seededRNG struct{ r *rand.Rand }

func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) Float64() float64 { return s.r.Float64() }

// percent draws a uniform roll in [0, 100).
func percent(rng RandomSource) int {
	return int(rng.Float64() * 100)
}

// between draws a uniform integer in [lo, hi].
func between(rng RandomSource, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + int(rng.Float64()*float64(hi-lo+1))
}
