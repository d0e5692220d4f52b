package noise

// Perlin-surflet noise: gradient lattice noise where each corner contributes
// a radially attenuated surflet instead of being blended with fade curves.
// The kernel (1 - d^2)^4 limits each contribution to the unit sphere around
// its corner, which removes the axis-aligned artifacts of classic Perlin.

// NewPerlinSurflet returns surflet-kernel gradient noise for the given seed.
func NewPerlinSurflet(seed uint32) Sampler {
	t := newPermTable(seed)
	return SamplerFunc(func(x, y, z float64) float64 {
		x0, y0, z0 := floorInt(x), floorInt(y), floorInt(z)
		fx := x - float64(x0)
		fy := y - float64(y0)
		fz := z - float64(z0)

		var total float64
		for ci := 0; ci <= 1; ci++ {
			for cj := 0; cj <= 1; cj++ {
				for ck := 0; ck <= 1; ck++ {
					dx := fx - float64(ci)
					dy := fy - float64(cj)
					dz := fz - float64(ck)
					attn := 1.0 - (dx*dx + dy*dy + dz*dz)
					if attn <= 0 {
						continue
					}
					attn *= attn
					attn *= attn
					total += attn * gradDot(t.hash(x0+ci, y0+cj, z0+ck), dx, dy, dz)
				}
			}
		}

		// Scale the summed surflets to cover [-1, 1].
		return total * 3.16
	})
}
