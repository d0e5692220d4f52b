package noise

import "math"

// buildSources derives one differently seeded generator per octave. The
// octave count must already be clamped to [1, MaxOctaves] by the caller.
func buildSources(src SourceFunc, seed, octaves uint32) []Sampler {
	sources := make([]Sampler, octaves)
	for i := range sources {
		sources[i] = src(seed + uint32(i))
	}
	return sources
}

type fbm struct {
	sources     []Sampler
	frequency   float64
	lacunarity  float64
	persistence float64
}

// NewFbm returns fractional Brownian motion: octaves of src summed with
// geometrically decreasing amplitude.
func NewFbm(src SourceFunc, seed, octaves uint32, frequency, lacunarity, persistence float64) Sampler {
	return &fbm{buildSources(src, seed, octaves), frequency, lacunarity, persistence}
}

func (f *fbm) Sample(x, y, z float64) float64 {
	x *= f.frequency
	y *= f.frequency
	z *= f.frequency
	result := 0.0
	amplitude := 1.0
	for _, source := range f.sources {
		result += source.Sample(x, y, z) * amplitude
		amplitude *= f.persistence
		x *= f.lacunarity
		y *= f.lacunarity
		z *= f.lacunarity
	}
	return result
}

type billow struct {
	sources     []Sampler
	frequency   float64
	lacunarity  float64
	persistence float64
}

// NewBillow returns billowy fBm: each octave contributes the absolute value
// of its sample remapped to [-1, 1], producing cloud-like lobes.
func NewBillow(src SourceFunc, seed, octaves uint32, frequency, lacunarity, persistence float64) Sampler {
	return &billow{buildSources(src, seed, octaves), frequency, lacunarity, persistence}
}

func (b *billow) Sample(x, y, z float64) float64 {
	x *= b.frequency
	y *= b.frequency
	z *= b.frequency
	result := 0.0
	amplitude := 1.0
	for _, source := range b.sources {
		result += (math.Abs(source.Sample(x, y, z))*2.0 - 1.0) * amplitude
		amplitude *= b.persistence
		x *= b.lacunarity
		y *= b.lacunarity
		z *= b.lacunarity
	}
	return result
}

type basicMulti struct {
	sources     []Sampler
	frequency   float64
	lacunarity  float64
	persistence float64
}

// NewBasicMulti returns a basic multifractal: after the first octave, each
// octave's contribution is scaled by the accumulated value so far.
func NewBasicMulti(src SourceFunc, seed, octaves uint32, frequency, lacunarity, persistence float64) Sampler {
	return &basicMulti{buildSources(src, seed, octaves), frequency, lacunarity, persistence}
}

func (m *basicMulti) Sample(x, y, z float64) float64 {
	x *= m.frequency
	y *= m.frequency
	z *= m.frequency
	result := m.sources[0].Sample(x, y, z)
	amplitude := 1.0
	for _, source := range m.sources[1:] {
		x *= m.lacunarity
		y *= m.lacunarity
		z *= m.lacunarity
		amplitude *= m.persistence
		signal := source.Sample(x, y, z) * amplitude
		result += signal * result
	}
	return result
}

type hybridMulti struct {
	sources     []Sampler
	frequency   float64
	lacunarity  float64
	persistence float64
}

// NewHybridMulti returns Musgrave's hybrid multifractal, which dampens
// high-frequency detail in valleys while keeping it on peaks.
func NewHybridMulti(src SourceFunc, seed, octaves uint32, frequency, lacunarity, persistence float64) Sampler {
	return &hybridMulti{buildSources(src, seed, octaves), frequency, lacunarity, persistence}
}

func (m *hybridMulti) Sample(x, y, z float64) float64 {
	x *= m.frequency
	y *= m.frequency
	z *= m.frequency
	result := m.sources[0].Sample(x, y, z) * m.persistence
	weight := result
	amplitude := m.persistence
	for _, source := range m.sources[1:] {
		if weight > 1.0 {
			weight = 1.0
		}
		x *= m.lacunarity
		y *= m.lacunarity
		z *= m.lacunarity
		amplitude *= m.persistence
		signal := source.Sample(x, y, z) * amplitude * weight
		result += signal
		weight *= signal
	}
	return result
}

type ridgedMulti struct {
	sources     []Sampler
	frequency   float64
	lacunarity  float64
	persistence float64
	attenuation float64
	scale       float64
}

// NewRidgedMulti returns ridged multifractal noise. Each octave's sample is
// inverted around its absolute value and squared, forming sharp ridges; the
// attenuation controls how strongly a ridge suppresses the next octave.
func NewRidgedMulti(src SourceFunc, seed, octaves uint32, frequency, lacunarity, persistence, attenuation float64) Sampler {
	scale := 0.0
	amplitude := 1.0
	for i := uint32(0); i < octaves; i++ {
		scale += amplitude
		amplitude *= persistence
	}
	return &ridgedMulti{buildSources(src, seed, octaves), frequency, lacunarity, persistence, attenuation, scale}
}

func (m *ridgedMulti) Sample(x, y, z float64) float64 {
	x *= m.frequency
	y *= m.frequency
	z *= m.frequency
	result := 0.0
	weight := 1.0
	amplitude := 1.0
	for _, source := range m.sources {
		signal := 1.0 - math.Abs(source.Sample(x, y, z))
		signal *= signal
		signal *= weight

		weight = signal
		if m.attenuation != 0.0 {
			weight = signal / m.attenuation
		}
		if weight > 1.0 {
			weight = 1.0
		} else if weight < 0.0 {
			weight = 0.0
		}

		result += signal * amplitude
		amplitude *= m.persistence
		x *= m.lacunarity
		y *= m.lacunarity
		z *= m.lacunarity
	}
	// Remap the accumulated ridges into [-1, 1].
	return result*2.0/m.scale - 1.0
}

type turbulence struct {
	source   Sampler
	xDistort Sampler
	yDistort Sampler
	zDistort Sampler
	power    float64
}

// NewTurbulence distorts the input point of source with three fractal noise
// fields before sampling. Roughness is the octave count of the distortion
// fields and power scales the displacement.
func NewTurbulence(source Sampler, src SourceFunc, seed uint32, frequency, power float64, roughness uint32) Sampler {
	const lacunarity, persistence = 2.0, 0.5
	return &turbulence{
		source:   source,
		xDistort: NewFbm(src, seed, roughness, frequency, lacunarity, persistence),
		yDistort: NewFbm(src, seed+1, roughness, frequency, lacunarity, persistence),
		zDistort: NewFbm(src, seed+2, roughness, frequency, lacunarity, persistence),
		power:    power,
	}
}

func (t *turbulence) Sample(x, y, z float64) float64 {
	dx := x + t.xDistort.Sample(x, y, z)*t.power
	dy := y + t.yDistort.Sample(x, y, z)*t.power
	dz := z + t.zDistort.Sample(x, y, z)*t.power
	return t.source.Sample(dx, dy, dz)
}
