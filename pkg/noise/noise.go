// Package noise provides the bounded random offsets ("jitter") applied to
// hand-drawn shapes when they are constructed.
//
// Every sample lies in [-Amplitude, +Amplitude]. The package-level [Default]
// source draws from the process-wide math/rand/v2 generator, so it needs no
// seeding and may be called repeatedly without coordination. Tests and tools
// that need reproducible output can use [New] with a fixed seed, or the
// [Sequence] and [Zero] sources.
//
// Jitter is sampled once per shape at construction time and then frozen; a
// shape is never re-jittered on redraw or reload.
package noise

import "math/rand/v2"

// Amplitude is the largest absolute offset a Source may return.
const Amplitude = 5.0

// Source produces jitter samples in [-Amplitude, +Amplitude].
type Source interface {
	Sample() float64
}

type global struct{}

func (global) Sample() float64 { return scale(rand.Float64()) }

// Default is the process-wide jitter source used by the hand-drawn
// constructors when no explicit source is given.
var Default Source = global{}

// Sample returns one offset from [Default].
func Sample() float64 { return Default.Sample() }

// Rand is a seeded Source. It is not safe for concurrent use.
type Rand struct {
	rng *rand.Rand
}

// New creates a reproducible Source from seed.
func New(seed uint64) *Rand {
	return &Rand{rng: rand.New(rand.NewPCG(seed, seed^0xdeadbeef))}
}

// Sample returns the next offset.
func (r *Rand) Sample() float64 { return scale(r.rng.Float64()) }

// scale maps u in [0, 1) onto (-Amplitude, +Amplitude].
func scale(u float64) float64 {
	return Amplitude - 2*Amplitude*u
}

// Zero is a Source that never jitters.
type Zero struct{}

// Sample always returns 0.
func (Zero) Sample() float64 { return 0 }

// Sequence replays a fixed list of offsets, wrapping around when exhausted.
// Values outside the allowed range are clamped.
type Sequence struct {
	vals []float64
	next int
}

// NewSequence returns a Source that yields vals in order.
func NewSequence(vals ...float64) *Sequence {
	return &Sequence{vals: vals}
}

// Sample returns the next value of the sequence, or 0 if it is empty.
func (s *Sequence) Sample() float64 {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.next%len(s.vals)]
	s.next++
	return max(-Amplitude, min(v, Amplitude))
}
