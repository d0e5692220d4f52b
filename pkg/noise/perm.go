package noise

import "math/rand/v2"

// permTable is a seeded, doubled permutation of [0, 256) used by the lattice
// generators for gradient and feature-point hashing.
type permTable [512]uint8

func newPermTable(seed uint32) *permTable {
	r := rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15))
	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}
	r.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })

	t := &permTable{}
	for i := range t {
		t[i] = p[i&255]
	}
	return t
}

func (t *permTable) hash(xi, yi, zi int) uint8 {
	return t[int(t[int(t[xi&255])+(yi&255)])+(zi&255)]
}

// grad3 are the twelve edge-centre gradient vectors shared by the gradient
// lattice generators.
var grad3 = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

func gradDot(hash uint8, x, y, z float64) float64 {
	g := grad3[hash%12]
	return g[0]*x + g[1]*y + g[2]*z
}
