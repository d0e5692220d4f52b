package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinDepth = 3
)

// NewPerlin returns classic Perlin gradient noise for the given seed.
func NewPerlin(seed uint32) Sampler {
	p := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinDepth, int64(seed))
	return SamplerFunc(func(x, y, z float64) float64 {
		return p.Noise3D(x, y, z)
	})
}

// NewOpenSimplex returns OpenSimplex noise for the given seed.
func NewOpenSimplex(seed uint32) Sampler {
	n := opensimplex.New(int64(seed))
	return SamplerFunc(n.Eval3)
}

// NewSuperSimplex returns the smoother, normalized OpenSimplex variant.
func NewSuperSimplex(seed uint32) Sampler {
	n := opensimplex.NewNormalized(int64(seed))
	return SamplerFunc(func(x, y, z float64) float64 {
		return n.Eval3(x, y, z)*2.0 - 1.0
	})
}

// NewValue returns interpolated lattice value noise for the given seed.
func NewValue(seed uint32) Sampler {
	t := newPermTable(seed)
	cell := func(xi, yi, zi int) float64 {
		return float64(t.hash(xi, yi, zi))/127.5 - 1.0
	}
	return SamplerFunc(func(x, y, z float64) float64 {
		x0, y0, z0 := floorInt(x), floorInt(y), floorInt(z)
		tx := quintic(x - float64(x0))
		ty := quintic(y - float64(y0))
		tz := quintic(z - float64(z0))

		c000 := cell(x0, y0, z0)
		c100 := cell(x0+1, y0, z0)
		c010 := cell(x0, y0+1, z0)
		c110 := cell(x0+1, y0+1, z0)
		c001 := cell(x0, y0, z0+1)
		c101 := cell(x0+1, y0, z0+1)
		c011 := cell(x0, y0+1, z0+1)
		c111 := cell(x0+1, y0+1, z0+1)

		return lerp(
			lerp(lerp(c000, c100, tx), lerp(c010, c110, tx), ty),
			lerp(lerp(c001, c101, tx), lerp(c011, c111, tx), ty),
			tz,
		)
	})
}

// NewCheckerboard returns the unit checkerboard generator, alternating
// between -1 and 1. The size parameter doubles the cell side per step.
func NewCheckerboard(size uint32) Sampler {
	if size > 30 {
		size = 30
	}
	side := float64(uint32(1) << size)
	return SamplerFunc(func(x, y, z float64) float64 {
		sum := floorInt(x/side) + floorInt(y/side) + floorInt(z/side)
		if sum&1 == 0 {
			return -1.0
		}
		return 1.0
	})
}

// NewCylinders returns concentric cylinders around the y axis with the given
// radial frequency.
func NewCylinders(frequency float64) Sampler {
	return SamplerFunc(func(x, _, z float64) float64 {
		x *= frequency
		z *= frequency
		center := math.Sqrt(x*x + z*z)
		inner := center - math.Floor(center)
		outer := 1.0 - inner
		nearest := math.Min(inner, outer)
		return 1.0 - nearest*4.0
	})
}
