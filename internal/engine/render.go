package engine

import (
	"noisegraph/internal/render"
	"noisegraph/pkg/expr"
)

const (
	// TileSize is the number of pixels along one side of a tile.
	TileSize = 8
	// GridSize is the number of tiles along one side of a preview image.
	GridSize = 16
	// ImageSize is the number of pixels along one side of a preview image.
	ImageSize = TileSize * GridSize
	// TileCount is the number of tiles per preview image; a tile coordinate
	// is a single byte.
	TileCount = GridSize * GridSize
)

// TileRequest locates one tile of a preview image in sample space.
type TileRequest struct {
	Coord uint8
	Scale float64
	X     float64
	Y     float64
}

// CoordOrigin returns the pixel origin of a tile coordinate within the
// preview image.
func CoordOrigin(coord uint8) (row, col int) {
	return int(coord/GridSize) * TileSize, int(coord%GridSize) * TileSize
}

// RenderTile samples the tree into one 8×8 grayscale block, row-major. The
// tree is sampled at z = 0 on a grid of pixel centres offset by (X, Y) and
// multiplied by Scale; samples are remapped from [-1, 1] to [0, 255] and
// clamped, so out-of-range samples saturate instead of wrapping.
func RenderTile(tree *expr.Expr, req TileRequest) [TileSize * TileSize]uint8 {
	const step = 1.0 / float64(ImageSize)
	const halfStep = step / 2.0

	row, col := CoordOrigin(req.Coord)
	sampler := tree.Noise()

	var block [TileSize * TileSize]uint8
	for py := 0; py < TileSize; py++ {
		sy := (float64(row+py)*step + halfStep + req.Y) * req.Scale
		for px := 0; px < TileSize; px++ {
			sx := (float64(col+px)*step + halfStep + req.X) * req.Scale
			v := (sampler.Sample(sx, sy, 0.0) + 1.0) / 2.0 * 255.0
			if v < 0.0 {
				v = 0.0
			} else if v > 255.0 {
				v = 255.0
			}
			block[py*TileSize+px] = uint8(v)
		}
	}
	return block
}

// RenderImage renders a full preview synchronously, compositing every tile
// through the same path the worker pool uses.
func RenderImage(tree *expr.Expr, scale, x, y float64) *render.GrayBuffer {
	buf := render.NewGrayBuffer(ImageSize, ImageSize)
	for coord := 0; coord < TileCount; coord++ {
		block := RenderTile(tree, TileRequest{Coord: uint8(coord), Scale: scale, X: x, Y: y})
		row, col := CoordOrigin(uint8(coord))
		buf.SetBlock(row, col, TileSize, block[:])
	}
	return buf
}
