package noise

import "math"

// DistanceFunc measures the distance between a sample point and a cell's
// feature point.
type DistanceFunc func(dx, dy, dz float64) float64

// The four distance metrics supported by the Worley generator.
var (
	Chebyshev DistanceFunc = func(dx, dy, dz float64) float64 {
		return math.Max(math.Abs(dx), math.Max(math.Abs(dy), math.Abs(dz)))
	}
	Euclidean DistanceFunc = func(dx, dy, dz float64) float64 {
		return math.Sqrt(dx*dx + dy*dy + dz*dz)
	}
	EuclideanSquared DistanceFunc = func(dx, dy, dz float64) float64 {
		return dx*dx + dy*dy + dz*dz
	}
	Manhattan DistanceFunc = func(dx, dy, dz float64) float64 {
		return math.Abs(dx) + math.Abs(dy) + math.Abs(dz)
	}
)

// WorleyReturn selects what the Worley generator reports for a sample point.
type WorleyReturn uint8

const (
	// ReturnDistance reports the distance to the nearest feature point.
	ReturnDistance WorleyReturn = iota
	// ReturnValue reports the hashed value of the nearest cell.
	ReturnValue
)

// NewWorley returns cell (Worley) noise. Each lattice cell owns one feature
// point; the sample reports either the distance to the nearest feature point
// or the nearest cell's hashed value, remapped into [-1, 1].
func NewWorley(seed uint32, frequency float64, distance DistanceFunc, ret WorleyReturn) Sampler {
	t := newPermTable(seed)
	if distance == nil {
		distance = Euclidean
	}
	feature := func(xi, yi, zi int) (fx, fy, fz, value float64) {
		hx := t.hash(xi, yi, zi)
		hy := t.hash(xi+31, yi+57, zi+13)
		hz := t.hash(xi+89, yi+17, zi+43)
		fx = float64(xi) + float64(hx)/256.0
		fy = float64(yi) + float64(hy)/256.0
		fz = float64(zi) + float64(hz)/256.0
		value = float64(hx)/127.5 - 1.0
		return
	}
	return SamplerFunc(func(x, y, z float64) float64 {
		x *= frequency
		y *= frequency
		z *= frequency
		xc, yc, zc := floorInt(x), floorInt(y), floorInt(z)

		best := math.MaxFloat64
		bestValue := 0.0
		for xi := xc - 1; xi <= xc+1; xi++ {
			for yi := yc - 1; yi <= yc+1; yi++ {
				for zi := zc - 1; zi <= zc+1; zi++ {
					fx, fy, fz, value := feature(xi, yi, zi)
					d := distance(fx-x, fy-y, fz-z)
					if d < best {
						best = d
						bestValue = value
					}
				}
			}
		}

		if ret == ReturnValue {
			return bestValue
		}
		return math.Min(best, 1.0)*2.0 - 1.0
	})
}
