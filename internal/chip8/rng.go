package chip8

import (
	"math/rand/v2"
)

// RandomSource provides uniformly distributed bytes for the random instruction.
type RandomSource interface {
	Byte() byte
}

type pcgRandom struct {
	rng *rand.Rand
}

// NewSeededRandom returns a deterministic random source for the given seed.
func NewSeededRandom(seed uint64) RandomSource {
	return &pcgRandom{
		rng: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
	}
}

// Byte returns the next random byte.
func (r *pcgRandom) Byte() byte {
	return byte(r.rng.UintN(256))
}

type globalRandom struct{}

// Byte returns a random byte from the randomly seeded global generator.
func (globalRandom) Byte() byte {
	return byte(rand.UintN(256))
}
