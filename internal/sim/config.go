package sim

import "strconv"

// Params holds the tunable values the engine reads every step.
type Params struct {
	DefenseStrength int
	AttackStrength  int

	SmoothingIterations int
	ContourLevels       int
	FieldSpacing        int
}

// Config controls landscape dimensions and seeding for one simulation world.
type Config struct {
	Width      int
	Height     int
	Resolution int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:      800,
		Height:     600,
		Resolution: 5,
		Seed:       1337,
		Params: Params{
			DefenseStrength:     5,
			AttackStrength:      5,
			SmoothingIterations: 1,
			ContourLevels:       12,
			FieldSpacing:        8,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["resolution"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Resolution = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["defense_strength"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Params.DefenseStrength = clampStrength(parsed)
		}
	}
	if v, ok := cfg["attack_strength"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Params.AttackStrength = clampStrength(parsed)
		}
	}
	if v, ok := cfg["smoothing_iterations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.SmoothingIterations = parsed
		}
	}
	if v, ok := cfg["contour_levels"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.ContourLevels = parsed
		}
	}
	if v, ok := cfg["field_spacing"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.FieldSpacing = parsed
		}
	}
	return c
}

func clampStrength(v int) int { return clampInt(v, 1, 10) }
