package app

import "flag"

// Config represents the command-line parameters for the visualizer.
type Config struct {
	Width      int
	Height     int
	Resolution int
	Scale      int
	Speed      int
	HUDWidth   int
	Seed       int64
	Defense    int
	Attack     int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:      800,
		Height:     600,
		Resolution: 5,
		Scale:      5,
		Speed:      30,
		HUDWidth:   240,
		Seed:       1337,
		Defense:    5,
		Attack:     5,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "canvas width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "canvas height in pixels")
	fs.IntVar(&c.Resolution, "resolution", c.Resolution, "pixels per landscape cell")
	fs.IntVar(&c.Scale, "scale", c.Scale, "screen pixels per landscape cell")
	fs.IntVar(&c.Speed, "speed", c.Speed, "simulation steps per second")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "control panel width in pixels (0 hides it)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for landscape and noise")
	fs.IntVar(&c.Defense, "defense", c.Defense, "defender strength (1-10)")
	fs.IntVar(&c.Attack, "attack", c.Attack, "adversary strength (1-10)")
}
