package sim

import (
	"strconv"

	"github.com/nudro/adversarial-mini-max-game/internal/core"
)

// Parameters reports the current tunables for the HUD panel.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				intParam("resolution", "Resolution", w.cfg.Resolution),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Agents",
			Params: []core.Parameter{
				intParam("defense_strength", "Defense strength", p.DefenseStrength),
				intParam("attack_strength", "Attack strength", p.AttackStrength),
			},
		},
		{
			Name: "Landscape",
			Params: []core.Parameter{
				intParam("smoothing_iterations", "Smoothing iterations", p.SmoothingIterations),
				intParam("contour_levels", "Contour levels", p.ContourLevels),
				intParam("field_spacing", "Field spacing", p.FieldSpacing),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables adjustable from the HUD.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key: "defense_strength", Label: "Defense strength", Type: core.ParamTypeInt,
			Step: 1, Min: 1, Max: 10, HasMin: true, HasMax: true,
		},
		{
			Key: "attack_strength", Label: "Attack strength", Type: core.ParamTypeInt,
			Step: 1, Min: 1, Max: 10, HasMin: true, HasMax: true,
		},
		{
			Key: "contour_levels", Label: "Contour levels", Type: core.ParamTypeInt,
			Step: 1, Min: 4, Max: 24, HasMin: true, HasMax: true,
		},
	}
}

// SetIntParameter applies a HUD adjustment. Strengths apply on the next
// step; contour levels rebuild the overlay cache immediately.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "defense_strength":
		w.cfg.Params.DefenseStrength = clampStrength(value)
		return true
	case "attack_strength":
		w.cfg.Params.AttackStrength = clampStrength(value)
		return true
	case "contour_levels":
		if value <= 0 {
			return false
		}
		w.cfg.Params.ContourLevels = value
		w.contours = Contours(w.grid, value)
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}
