package engine

import "math/rand/v2"

// shufflePoolSize is the number of precomputed tile-coordinate shuffles.
// Versions select a shuffle by modulo, so concurrently updating images
// rarely fill in with the same pattern.
const shufflePoolSize = 32

// shuffles is the process-wide, read-only pool of coordinate permutations.
var shuffles = buildShuffles()

func buildShuffles() [shufflePoolSize][TileCount]uint8 {
	var pool [shufflePoolSize][TileCount]uint8
	for i := range pool {
		r := rand.New(rand.NewPCG(uint64(i)+1, 0))
		for j := range pool[i] {
			pool[i][j] = uint8(j)
		}
		r.Shuffle(TileCount, func(a, b int) {
			pool[i][a], pool[i][b] = pool[i][b], pool[i][a]
		})
	}
	return pool
}

// ShuffledCoords returns the full tile-coordinate permutation for a version.
// The result is shared and must not be modified.
func ShuffledCoords(version int) []uint8 {
	if version < 0 {
		version = -version
	}
	return shuffles[version%shufflePoolSize][:]
}
