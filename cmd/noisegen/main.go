// Command noisegen works with exported expression trees from the command
// line: rendering them to PNG previews and patching their named parameters.
package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"noisegraph/internal/engine"
	"noisegraph/pkg/expr"
)

func main() {
	root := &cobra.Command{
		Use:           "noisegen",
		Short:         "Render and patch exported noise expression trees",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRenderCmd(), newSetCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "noisegen:", err)
		os.Exit(1)
	}
}

func newRenderCmd() *cobra.Command {
	var (
		out   string
		scale float64
		x     float64
		y     float64
	)
	cmd := &cobra.Command{
		Use:   "render <tree file>",
		Short: "Render an exported tree to a grayscale PNG preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			tree, err := expr.Load(args[0])
			if err != nil {
				return err
			}

			buf := engine.RenderImage(tree, scale, x, y)
			img := image.NewGray(image.Rect(0, 0, buf.W, buf.H))
			copy(img.Pix, buf.Pixels())

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			defer f.Close()
			if err := png.Encode(f, img); err != nil {
				return fmt.Errorf("encoding %s: %w", out, err)
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "preview.png", "output PNG file")
	cmd.Flags().Float64Var(&scale, "scale", 1.0, "sample-space zoom")
	cmd.Flags().Float64Var(&x, "x", 0.0, "sample-space x offset")
	cmd.Flags().Float64Var(&y, "y", 0.0, "sample-space y offset")
	return cmd
}

func newSetCmd() *cobra.Command {
	var asUint bool
	cmd := &cobra.Command{
		Use:   "set <tree file> <name> <value>",
		Short: "Patch every parameter with the given name and rewrite the tree",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			path, name := args[0], args[1]
			tree, err := expr.Load(path)
			if err != nil {
				return err
			}

			if asUint {
				value, err := strconv.ParseUint(args[2], 10, 32)
				if err != nil {
					return fmt.Errorf("parsing %q as uint32: %w", args[2], err)
				}
				tree.SetU32(name, uint32(value))
			} else {
				value, err := strconv.ParseFloat(args[2], 64)
				if err != nil {
					return fmt.Errorf("parsing %q as float64: %w", args[2], err)
				}
				tree.SetF64(name, value)
			}
			return expr.Save(path, tree)
		},
	}
	cmd.Flags().BoolVarP(&asUint, "uint", "u", false, "patch uint32 parameters (seeds, octaves) instead of float64")
	return cmd
}
