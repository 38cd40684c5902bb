// Package noise provides seeded coherent noise sources and a plane map
// builder used to fill heightfield tiles.
package noise

import (
	"errors"
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// ErrUnknownKind is returned for an unsupported noise kind.
var ErrUnknownKind = errors.New("noise: unknown kind")

// Source generates a 2D noise value. Implementations are deterministic for a
// given seed and safe for concurrent use once built.
type Source interface {
	Noise2D(x, y float64) float64
}

// Kind names a noise algorithm.
type Kind string

// Supported kinds.
const (
	KindPerlin  Kind = "perlin"
	KindSimplex Kind = "simplex"
)

// Config selects and parameterizes a noise source. Seed is always explicit.
type Config struct {
	Kind      Kind    `yaml:"kind"`
	Seed      int64   `yaml:"seed"`
	Octaves   int     `yaml:"octaves"`
	Alpha     float64 `yaml:"alpha"`     // amplitude falloff per octave
	Beta      float64 `yaml:"beta"`      // frequency gain per octave
	Frequency float64 `yaml:"frequency"` // scale applied to plane coordinates
	Amplitude float64 `yaml:"amplitude"` // height scale applied to samples, zero means 1
}

// DefaultConfig returns fBm Perlin settings close to a classic fbm terrain.
func DefaultConfig(seed int64) Config {
	return Config{
		Kind:      KindPerlin,
		Seed:      seed,
		Octaves:   6,
		Alpha:     2,
		Beta:      2,
		Frequency: 1.5,
		Amplitude: 0.5,
	}
}

// New builds the source described by cfg.
func New(cfg Config) (Source, error) {
	switch cfg.Kind {
	case KindPerlin, "":
		return NewFbm(cfg.Seed, cfg.Alpha, cfg.Beta, cfg.Octaves), nil
	case KindSimplex:
		return NewSimplex(cfg.Seed, cfg.Octaves), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind)
	}
}

// Fbm is fractal Perlin noise.
type Fbm struct {
	p *perlin.Perlin
}

// NewFbm returns octave Perlin noise. Alpha and beta default to 2 when zero,
// octaves to 1 when not positive.
func NewFbm(seed int64, alpha, beta float64, octaves int) *Fbm {
	if alpha == 0 {
		alpha = 2
	}
	if beta == 0 {
		beta = 2
	}
	if octaves <= 0 {
		octaves = 1
	}
	return &Fbm{p: perlin.NewPerlin(alpha, beta, octaves, seed)}
}

// Noise2D implements Source.
func (f *Fbm) Noise2D(x, y float64) float64 {
	return f.p.Noise2D(x, y)
}

// Simplex is summed-octave OpenSimplex noise.
type Simplex struct {
	octaves []opensimplex.Noise
}

// NewSimplex returns OpenSimplex noise with the given number of octaves, each
// seeded from seed+octave.
func NewSimplex(seed int64, octaves int) *Simplex {
	if octaves <= 0 {
		octaves = 1
	}
	s := &Simplex{octaves: make([]opensimplex.Noise, octaves)}
	for i := range s.octaves {
		s.octaves[i] = opensimplex.New(seed + int64(i))
	}
	return s
}

// Noise2D implements Source. Octave k has frequency 2^k and weight 2^-k.
func (s *Simplex) Noise2D(x, y float64) float64 {
	var sum float64
	freq, amp := 1.0, 1.0
	for _, o := range s.octaves {
		sum += amp * o.Eval2(x*freq, y*freq)
		freq *= 2
		amp *= 0.5
	}
	return sum
}
