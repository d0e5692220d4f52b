// Package noise provides the 3-D sampling primitives expression trees are
// built from: scalar generators, fractal accumulators, combinators, modifiers
// and spatial transforms. Every sampler is pure and safe for concurrent use.
package noise

// MaxOctaves caps the octave count of every fractal sampler.
const MaxOctaves = 32

// Sampler is a pure noise function over 3-D points. Results are
// conventionally in [-1, 1], although combinators may exceed that range.
type Sampler interface {
	Sample(x, y, z float64) float64
}

// SamplerFunc adapts a plain function to the Sampler interface.
type SamplerFunc func(x, y, z float64) float64

// Sample implements Sampler.
func (f SamplerFunc) Sample(x, y, z float64) float64 { return f(x, y, z) }

// SourceFunc builds a seeded generator, used by fractal samplers to derive
// one differently seeded source per octave.
type SourceFunc func(seed uint32) Sampler

type constant float64

func (c constant) Sample(_, _, _ float64) float64 { return float64(c) }

// Constant returns a sampler that yields the same value everywhere.
func Constant(value float64) Sampler { return constant(value) }

func lerp(a, b, alpha float64) float64 { return a + alpha*(b-a) }

// sCurve is the cubic smoothing curve used for falloff blending.
func sCurve(a float64) float64 { return a * a * (3.0 - 2.0*a) }

// quintic is the degree-5 fade curve used by gradient lattice noise.
func quintic(t float64) float64 { return t * t * t * (t*(t*6.0-15.0) + 10.0) }

func floorInt(v float64) int {
	i := int(v)
	if v < float64(i) {
		return i - 1
	}
	return i
}
