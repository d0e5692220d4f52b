//go:build ebiten

package app

import (
	"image"

	"noisegraph/internal/engine"
	"noisegraph/internal/render"
	"noisegraph/pkg/expr"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const previewImage engine.ImageID = 0

// Viewer adapts a preview of one expression tree to the ebiten.Game
// interface. It is the consumer side of the rendering engine: each frame it
// drains completed tiles, re-checks their versions and composites the
// accepted ones into the displayed texture.
type Viewer struct {
	engine *engine.Engine
	tree   *expr.Expr

	texture *ebiten.Image
	pix     [engine.TileSize * engine.TileSize * 4]byte

	viewScale float64
	viewX     float64
	viewY     float64

	windowScale int
}

// New constructs a Viewer for the provided tree and requests its first
// preview.
func New(tree *expr.Expr, windowScale, workers int) *Viewer {
	v := &Viewer{
		engine:      engine.New(workers, nil),
		tree:        tree,
		texture:     ebiten.NewImage(engine.ImageSize, engine.ImageSize),
		viewScale:   1.0,
		windowScale: windowScale,
	}
	v.submit()
	return v
}

// submit re-requests the full preview under a fresh version.
func (v *Viewer) submit() {
	v.engine.Submit(engine.Update{
		Image: previewImage,
		Tree:  v.tree,
		Scale: v.viewScale,
		X:     v.viewX,
		Y:     v.viewY,
	})
}

// Update handles per-frame input and tile compositing.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		_ = v.engine.Close()
		return ebiten.Termination
	}

	changed := false
	pan := 0.1 * v.viewScale
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		v.viewX -= pan
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		v.viewX += pan
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		v.viewY -= pan
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		v.viewY += pan
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		v.viewScale *= 1.25
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		v.viewScale /= 1.25
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.viewScale, v.viewX, v.viewY = 1.0, 0.0, 0.0
		changed = true
	}
	if changed {
		v.submit()
	}

	for _, tile := range v.engine.Completed() {
		if current, ok := v.engine.Version(tile.Image); !ok || current != tile.Version {
			continue
		}
		row, col := engine.CoordOrigin(tile.Coord)
		render.FillGrayRGBA(v.pix[:], tile.Pixels[:])
		rect := image.Rect(col, row, col+engine.TileSize, row+engine.TileSize)
		v.texture.SubImage(rect).(*ebiten.Image).WritePixels(v.pix[:])
	}
	return nil
}

// Draw renders the composited preview.
func (v *Viewer) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(v.windowScale), float64(v.windowScale))
	screen.DrawImage(v.texture, op)
}

// Layout returns the logical screen size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return engine.ImageSize * v.windowScale, engine.ImageSize * v.windowScale
}
