package app

import "flag"

// Config represents the command-line parameters for the GUI viewer.
type Config struct {
	Width    int
	Height   int
	Pattern  string
	Random   bool
	Seed     int64
	Scale    int
	SPS      int
	Toroidal bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 96, Height: 64, Pattern: "glider", Seed: 42, Scale: 8, SPS: 10}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "world width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "world height in cells")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern from the zoo catalog")
	fs.BoolVar(&c.Random, "random", c.Random, "seed with random data instead of a pattern")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.SPS, "sps", c.SPS, "simulation steps per second")
	fs.BoolVar(&c.Toroidal, "toroidal", c.Toroidal, "wrap the edges of the world")
}
