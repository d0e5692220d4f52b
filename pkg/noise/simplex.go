package noise

// 3-D simplex noise after Ken Perlin's improved algorithm. Output is in
// [-1, 1].

const (
	simplexF3 = 1.0 / 3.0
	simplexG3 = 1.0 / 6.0
)

// NewSimplex returns simplex noise for the given seed.
func NewSimplex(seed uint32) Sampler {
	t := newPermTable(seed)
	return SamplerFunc(func(x, y, z float64) float64 {
		// Skew input space to determine the simplex cell.
		s := (x + y + z) * simplexF3
		i := floorInt(x + s)
		j := floorInt(y + s)
		k := floorInt(z + s)

		u := float64(i+j+k) * simplexG3
		x0 := x - (float64(i) - u)
		y0 := y - (float64(j) - u)
		z0 := z - (float64(k) - u)

		// Rank the coordinates to find which simplex we are in.
		var i1, j1, k1, i2, j2, k2 int
		if x0 >= y0 {
			switch {
			case y0 >= z0:
				i1, i2, j2 = 1, 1, 1
			case x0 >= z0:
				i1, i2, k2 = 1, 1, 1
			default:
				k1, i2, k2 = 1, 1, 1
			}
		} else {
			switch {
			case y0 < z0:
				k1, j2, k2 = 1, 1, 1
			case x0 < z0:
				j1, j2, k2 = 1, 1, 1
			default:
				j1, i2, j2 = 1, 1, 1
			}
		}

		x1 := x0 - float64(i1) + simplexG3
		y1 := y0 - float64(j1) + simplexG3
		z1 := z0 - float64(k1) + simplexG3
		x2 := x0 - float64(i2) + 2.0*simplexG3
		y2 := y0 - float64(j2) + 2.0*simplexG3
		z2 := z0 - float64(k2) + 2.0*simplexG3
		x3 := x0 - 1.0 + 3.0*simplexG3
		y3 := y0 - 1.0 + 3.0*simplexG3
		z3 := z0 - 1.0 + 3.0*simplexG3

		var total float64
		corner := func(cx, cy, cz float64, ci, cj, ck int) {
			f := 0.6 - cx*cx - cy*cy - cz*cz
			if f <= 0 {
				return
			}
			f *= f
			total += f * f * gradDot(t.hash(i+ci, j+cj, k+ck), cx, cy, cz)
		}
		corner(x0, y0, z0, 0, 0, 0)
		corner(x1, y1, z1, i1, j1, k1)
		corner(x2, y2, z2, i2, j2, k2)
		corner(x3, y3, z3, 1, 1, 1)

		// Scale to cover [-1, 1].
		return 32.0 * total
	})
}
