//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"noisegraph/internal/app"
	"noisegraph/internal/engine"
	"noisegraph/internal/graph"
	"noisegraph/pkg/expr"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	tree, err := loadTree(cfg.Tree)
	if err != nil {
		log.Fatal(err)
	}

	viewer := app.New(tree, cfg.Scale, cfg.Workers)

	ebiten.SetWindowTitle("noisegraph")
	ebiten.SetWindowSize(engine.ImageSize*cfg.Scale, engine.ImageSize*cfg.Scale)

	if err := ebiten.RunGame(viewer); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// loadTree reads an exported tree, or compiles a default Perlin graph when
// no file is given.
func loadTree(path string) (*expr.Expr, error) {
	if path != "" {
		return expr.Load(path)
	}
	g := graph.New()
	root := g.Add(graph.NewNode(expr.KindPerlin))
	return graph.Compile(g, root), nil
}
