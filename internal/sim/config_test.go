package sim

import "testing"

func TestFromMapNilGivesDefaults(t *testing.T) {
	if got, want := FromMap(nil), DefaultConfig(); got != want {
		t.Fatalf("FromMap(nil) = %+v, want defaults %+v", got, want)
	}
}

func TestFromMapParsesValues(t *testing.T) {
	c := FromMap(map[string]string{
		"w":                    "400",
		"h":                    "300",
		"resolution":           "4",
		"seed":                 "99",
		"defense_strength":     "3",
		"attack_strength":      "8",
		"smoothing_iterations": "2",
		"contour_levels":       "16",
		"field_spacing":        "6",
	})
	if c.Width != 400 || c.Height != 300 || c.Resolution != 4 || c.Seed != 99 {
		t.Fatalf("world values not applied: %+v", c)
	}
	if c.Params.DefenseStrength != 3 || c.Params.AttackStrength != 8 {
		t.Fatalf("strengths not applied: %+v", c.Params)
	}
	if c.Params.SmoothingIterations != 2 || c.Params.ContourLevels != 16 || c.Params.FieldSpacing != 6 {
		t.Fatalf("landscape values not applied: %+v", c.Params)
	}
}

func TestFromMapClampsStrengths(t *testing.T) {
	c := FromMap(map[string]string{
		"defense_strength": "0",
		"attack_strength":  "25",
	})
	if c.Params.DefenseStrength != 1 {
		t.Fatalf("defense strength = %d, want clamp to 1", c.Params.DefenseStrength)
	}
	if c.Params.AttackStrength != 10 {
		t.Fatalf("attack strength = %d, want clamp to 10", c.Params.AttackStrength)
	}
}

func TestFromMapIgnoresGarbage(t *testing.T) {
	c := FromMap(map[string]string{
		"w":          "not-a-number",
		"resolution": "-3",
		"seed":       "",
	})
	want := DefaultConfig()
	if c != want {
		t.Fatalf("garbage values mutated config: %+v", c)
	}
}
