package main

import (
	"flag"
	"fmt"
	"math"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/nudro/adversarial-mini-max-game/internal/sim"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type matchup struct {
	defense int
	attack  int
}

type matchupResult struct {
	matchup

	meanDefenderLoss  float64
	meanAdversaryLoss float64
	meanGap           float64
	meanAdvTravel     float64
	targetedJumps     int
}

func main() {
	steps := flag.Int("steps", 500, "steps to simulate per matchup")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("width", 400, "canvas width for sweep runs")
	height := flag.Int("height", 300, "canvas height for sweep runs")
	seed := flag.Int64("seed", 1337, "base seed; each matchup offsets it")
	minStrength := flag.Int("min", 1, "lowest strength to sweep")
	maxStrength := flag.Int("max", 10, "highest strength to sweep")
	var overrides kvList
	flag.Var(&overrides, "set", "engine override in key=value form (repeatable)")
	flag.Parse()

	base := sim.DefaultConfig()
	base.Width = *width
	base.Height = *height
	base.Seed = *seed
	if len(overrides) > 0 {
		kv := map[string]string{}
		for _, entry := range overrides {
			parts := strings.SplitN(entry, "=", 2)
			if len(parts) != 2 {
				continue
			}
			kv[parts[0]] = parts[1]
		}
		merged := sim.FromMap(kv)
		base.Resolution = merged.Resolution
		base.Params.SmoothingIterations = merged.Params.SmoothingIterations
		base.Params.ContourLevels = merged.Params.ContourLevels
		base.Params.FieldSpacing = merged.Params.FieldSpacing
	}

	var matchups []matchup
	for defense := *minStrength; defense <= *maxStrength; defense++ {
		for attack := *minStrength; attack <= *maxStrength; attack++ {
			matchups = append(matchups, matchup{defense: defense, attack: attack})
		}
	}

	totalSteps := int64(len(matchups)) * int64(*steps)
	fmt.Printf("Sweeping %d matchups, %s total steps (%d workers)\n",
		len(matchups), humanize.Comma(totalSteps), *workers)

	jobs := make(chan matchup)
	results := make(chan matchupResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for m := range jobs {
				results <- runMatchup(base, m, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, m := range matchups {
			jobs <- m
		}
		close(jobs)
	}()

	start := time.Now()
	var all []matchupResult
	for res := range results {
		all = append(all, res)
	}
	elapsed := time.Since(start)

	sort.Slice(all, func(i, j int) bool {
		if all[i].meanGap != all[j].meanGap {
			return all[i].meanGap > all[j].meanGap
		}
		if all[i].defense != all[j].defense {
			return all[i].defense < all[j].defense
		}
		return all[i].attack < all[j].attack
	})

	fmt.Printf("\nMatchups by mean loss gap (defender - adversary), elapsed %s:\n",
		elapsed.Round(time.Millisecond))
	for i, res := range all {
		if i >= 15 {
			fmt.Printf("... %d more\n", len(all)-i)
			break
		}
		fmt.Printf("%2d) D%-2d vs A%-2d  gap=%+.4f  defLoss=%.4f  advLoss=%.4f  advTravel=%.3f  jumps=%d\n",
			i+1, res.defense, res.attack, res.meanGap,
			res.meanDefenderLoss, res.meanAdversaryLoss, res.meanAdvTravel, res.targetedJumps)
	}
}

// runMatchup plays one strength pairing for the requested steps. Each
// matchup gets its own deterministic seed so results are independent of
// worker scheduling.
func runMatchup(base sim.Config, m matchup, steps int) matchupResult {
	cfg := base
	cfg.Seed = base.Seed + int64(m.defense)*100 + int64(m.attack)
	cfg.Params.DefenseStrength = m.defense
	cfg.Params.AttackStrength = m.attack

	world, err := sim.NewWorld(cfg)
	if err != nil {
		// A bad base config fails every matchup the same way; report zeros.
		return matchupResult{matchup: m}
	}

	var defSum, advSum, travelSum float64
	prev := world.Snapshot().Adversary
	for i := 0; i < steps; i++ {
		world.Step()
		st := world.Snapshot()
		defSum += st.DefenderLoss
		advSum += st.AdversaryLoss
		travelSum += math.Hypot(st.Adversary.X-prev.X, st.Adversary.Y-prev.Y)
		prev = st.Adversary
	}

	n := float64(steps)
	return matchupResult{
		matchup:           m,
		meanDefenderLoss:  defSum / n,
		meanAdversaryLoss: advSum / n,
		meanGap:           (defSum - advSum) / n,
		meanAdvTravel:     travelSum / n,
		targetedJumps:     world.Stats().TargetedJumps,
	}
}
