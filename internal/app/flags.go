package app

import "flag"

// Config represents the command-line parameters for the preview viewer.
type Config struct {
	Tree    string
	Scale   int
	Workers int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 4}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Tree, "tree", c.Tree, "exported expression tree to preview (defaults to a Perlin generator)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.Workers, "workers", c.Workers, "tile render workers (0 = one per CPU)")
}
