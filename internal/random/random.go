// Package random supplies the shaped random draws the sampling engine is
// built on. Every derived operation is expressed in terms of a single
// uniform Float64 primitive so tests can substitute a deterministic source.
package random

import (
	"crypto/rand"
	"encoding/binary"
	"log"
	mathrand "math/rand/v2"
	"sync"
)

// Source produces uniform floats in [0,1). Degraded reports whether the
// source has fallen back from its preferred entropy supply; it is a
// diagnostic for tests and logs, not part of the sampling contract.
type Source interface {
	Float64() float64
	Degraded() bool
}

// SecureSource reads crypto/rand and silently falls back to math/rand/v2
// if the system entropy source fails. Sampling favors availability over
// randomness quality: a caller never sees an error from a draw.
type SecureSource struct {
	mu       sync.Mutex
	fallback *mathrand.Rand
	degraded bool
}

// NewSecureSource returns the default production source.
func NewSecureSource() *SecureSource {
	return &SecureSource{
		fallback: mathrand.New(mathrand.NewPCG(mathrand.Uint64(), mathrand.Uint64())),
	}
}

// Float64 returns a uniform value in [0,1).
func (s *SecureSource) Float64() float64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		s.mu.Lock()
		if !s.degraded {
			s.degraded = true
			log.Printf("op=random.fallback err=%v", err)
		}
		v := s.fallback.Float64()
		s.mu.Unlock()
		return v
	}
	// 53 bits of mantissa, same construction math/rand uses.
	return float64(binary.BigEndian.Uint64(buf[:])>>11) / (1 << 53)
}

// Degraded reports whether any draw has used the fallback PRNG.
func (s *SecureSource) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// SeededSource is a deterministic Source for reproducible tests.
type SeededSource struct {
	mu  sync.Mutex
	rng *mathrand.Rand
}

func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{rng: mathrand.New(mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *SeededSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *SeededSource) Degraded() bool { return false }
