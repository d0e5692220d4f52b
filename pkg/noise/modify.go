package noise

import (
	"math"
	"sort"
)

// Abs yields the absolute value of the source's sample.
func Abs(source Sampler) Sampler {
	return SamplerFunc(func(x, y, z float64) float64 {
		return math.Abs(source.Sample(x, y, z))
	})
}

// Negate yields the negation of the source's sample.
func Negate(source Sampler) Sampler {
	return SamplerFunc(func(x, y, z float64) float64 {
		return -source.Sample(x, y, z)
	})
}

// Clamp bounds the source's sample to [lower, upper]. Swapped bounds are
// reordered.
func Clamp(source Sampler, lower, upper float64) Sampler {
	if upper < lower {
		lower, upper = upper, lower
	}
	return SamplerFunc(func(x, y, z float64) float64 {
		v := source.Sample(x, y, z)
		if v < lower {
			return lower
		}
		if v > upper {
			return upper
		}
		return v
	})
}

// Exponent remaps the source's sample to [0, 1], raises it to the given
// exponent and remaps back to [-1, 1].
func Exponent(source Sampler, exponent float64) Sampler {
	return SamplerFunc(func(x, y, z float64) float64 {
		v := (source.Sample(x, y, z) + 1.0) / 2.0
		return math.Pow(math.Abs(v), exponent)*2.0 - 1.0
	})
}

// ScaleBias multiplies the source's sample by scale, then adds bias.
func ScaleBias(source Sampler, scale, bias float64) Sampler {
	return SamplerFunc(func(x, y, z float64) float64 {
		return source.Sample(x, y, z)*scale + bias
	})
}

// CurvePoint maps one input sample value to an output value.
type CurvePoint struct {
	Input  float64
	Output float64
}

// Curve maps the source's sample through a cubic spline defined by at least
// four control points with distinct inputs. The precondition is the caller's
// responsibility; trees degrade invalid curves to a constant source before
// construction.
func Curve(source Sampler, points []CurvePoint) Sampler {
	sorted := make([]CurvePoint, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Input < sorted[j].Input })

	last := len(sorted) - 1
	clampIdx := func(i int) int {
		if i < 0 {
			return 0
		}
		if i > last {
			return last
		}
		return i
	}
	return SamplerFunc(func(x, y, z float64) float64 {
		v := source.Sample(x, y, z)
		pos := sort.Search(len(sorted), func(i int) bool { return sorted[i].Input > v })

		i1 := clampIdx(pos - 1)
		i2 := clampIdx(pos)
		if i1 == i2 {
			// Outside the spline; hold the edge output.
			return sorted[i1].Output
		}
		i0 := clampIdx(pos - 2)
		i3 := clampIdx(pos + 1)

		in0, in1 := sorted[i1].Input, sorted[i2].Input
		alpha := (v - in0) / (in1 - in0)
		return cubic(sorted[i0].Output, sorted[i1].Output, sorted[i2].Output, sorted[i3].Output, alpha)
	})
}

func cubic(n0, n1, n2, n3, a float64) float64 {
	p := (n3 - n2) - (n0 - n1)
	q := (n0 - n1) - p
	r := n2 - n0
	return p*a*a*a + q*a*a + r*a + n1
}

// Terrace maps the source's sample onto a terrace-forming curve built from
// at least two non-identical control points. Inverted terraces curve toward
// the upper point of each step instead of the lower one.
func Terrace(source Sampler, points []float64, inverted bool) Sampler {
	sorted := make([]float64, len(points))
	copy(sorted, points)
	sort.Float64s(sorted)

	last := len(sorted) - 1
	clampIdx := func(i int) int {
		if i < 0 {
			return 0
		}
		if i > last {
			return last
		}
		return i
	}
	return SamplerFunc(func(x, y, z float64) float64 {
		v := source.Sample(x, y, z)
		pos := sort.SearchFloat64s(sorted, v)

		i0 := clampIdx(pos - 1)
		i1 := clampIdx(pos)
		if i0 == i1 {
			return sorted[i1]
		}

		value0, value1 := sorted[i0], sorted[i1]
		alpha := (v - value0) / (value1 - value0)
		if inverted {
			alpha = 1.0 - alpha
			value0, value1 = value1, value0
		}
		alpha *= alpha
		return lerp(value0, value1, alpha)
	})
}
