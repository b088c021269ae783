//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/nudro/adversarial-mini-max-game/internal/app"
	"github.com/nudro/adversarial-mini-max-game/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg := sim.DefaultConfig()
	simCfg.Width = cfg.Width
	simCfg.Height = cfg.Height
	simCfg.Resolution = cfg.Resolution
	simCfg.Seed = cfg.Seed
	simCfg.Params.DefenseStrength = cfg.Defense
	simCfg.Params.AttackStrength = cfg.Attack

	world, err := sim.NewWorld(simCfg)
	if err != nil {
		log.Fatalf("create world: %v", err)
	}

	game := app.New(world, cfg)
	grid := world.Grid()

	ebiten.SetWindowTitle("minimax — adversarial landscape")
	ebiten.SetWindowSize(grid.Cols*cfg.Scale+cfg.HUDWidth, grid.Rows*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
