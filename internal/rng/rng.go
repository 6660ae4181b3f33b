// Package rng provides the randomness source the simulation draws from.
// Domain code never calls a package-level generator; it receives a Source
// so tests can substitute a seeded or scripted sequence.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"time"
)

// Source yields uniform random integers in [0, n).
type Source interface {
	IntN(n int) int
}

type pcgSource struct {
	r *rand.Rand
}

func (s *pcgSource) IntN(n int) int { return s.r.IntN(n) }

// NewSeeded returns a reproducible Source for the given seed.
func NewSeeded(seed uint64) Source {
	return &pcgSource{r: rand.New(rand.NewPCG(seed, 0))}
}

// New returns a Source seeded from the operating system entropy pool,
// falling back to the wall clock if that fails.
func New() Source {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return NewSeeded(uint64(time.Now().UnixNano()))
	}
	return NewSeeded(binary.LittleEndian.Uint64(b[:]))
}

// Scripted replays a fixed sequence, reduced modulo n on each draw. The
// sequence repeats once exhausted. Tests use it to pin stochastic
// branches to a known path.
type Scripted struct {
	Values []int
	pos    int
}

func (s *Scripted) IntN(n int) int {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return v % n
}

// Consumed reports how many draws have been taken.
func (s *Scripted) Consumed() int { return s.pos }
