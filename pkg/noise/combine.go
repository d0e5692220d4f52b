package noise

import "math"

// Add sums the samples of two sources.
func Add(a, b Sampler) Sampler {
	return SamplerFunc(func(x, y, z float64) float64 {
		return a.Sample(x, y, z) + b.Sample(x, y, z)
	})
}

// Multiply multiplies the samples of two sources.
func Multiply(a, b Sampler) Sampler {
	return SamplerFunc(func(x, y, z float64) float64 {
		return a.Sample(x, y, z) * b.Sample(x, y, z)
	})
}

// Min yields the smaller of two sources' samples.
func Min(a, b Sampler) Sampler {
	return SamplerFunc(func(x, y, z float64) float64 {
		return math.Min(a.Sample(x, y, z), b.Sample(x, y, z))
	})
}

// Max yields the larger of two sources' samples.
func Max(a, b Sampler) Sampler {
	return SamplerFunc(func(x, y, z float64) float64 {
		return math.Max(a.Sample(x, y, z), b.Sample(x, y, z))
	})
}

// Power raises the first source's sample to the second source's sample.
func Power(a, b Sampler) Sampler {
	return SamplerFunc(func(x, y, z float64) float64 {
		return math.Pow(a.Sample(x, y, z), b.Sample(x, y, z))
	})
}

// Blend linearly interpolates between two sources, with the control source's
// sample remapped from [-1, 1] to the interpolation weight.
func Blend(a, b, control Sampler) Sampler {
	return SamplerFunc(func(x, y, z float64) float64 {
		alpha := (control.Sample(x, y, z) + 1.0) / 2.0
		return lerp(a.Sample(x, y, z), b.Sample(x, y, z), alpha)
	})
}

// Select yields b where the control source's sample falls inside
// [lower, upper] and a elsewhere, smoothly blended across a falloff band at
// both edges.
func Select(a, b, control Sampler, lower, upper, falloff float64) Sampler {
	if upper < lower {
		lower, upper = upper, lower
	}
	return SamplerFunc(func(x, y, z float64) float64 {
		cv := control.Sample(x, y, z)
		if falloff > 0.0 {
			switch {
			case cv < lower-falloff:
				return a.Sample(x, y, z)
			case cv < lower+falloff:
				alpha := sCurve((cv - (lower - falloff)) / (2.0 * falloff))
				return lerp(a.Sample(x, y, z), b.Sample(x, y, z), alpha)
			case cv < upper-falloff:
				return b.Sample(x, y, z)
			case cv < upper+falloff:
				alpha := sCurve((cv - (upper - falloff)) / (2.0 * falloff))
				return lerp(b.Sample(x, y, z), a.Sample(x, y, z), alpha)
			default:
				return a.Sample(x, y, z)
			}
		}
		if cv < lower || cv > upper {
			return a.Sample(x, y, z)
		}
		return b.Sample(x, y, z)
	})
}
