package main

import (
	"flag"
	"fmt"

	"github.com/overkillgames/pacsnake/internal/game"
)

// runStats summarizes one headless run from its event log.
type runStats struct {
	runIndex int
	seed     int64

	ticksRun   int
	finalState game.RunState
	score      int
	wave       int

	itemsCollected int
	powerPickups   int
	ghostsEaten    int
	livesLost      int
	trailDeaths    int
	modeChanges    int
	firstDeathTick int
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 7200, "ticks per run (60 per simulated second)")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	fmt.Printf("=== PacSnake Headless Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d\n\n", runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runOnce(i+1, seed, ticks)
		all = append(all, stats)
		printRun(stats)
	}
	printSummary(all)
}

// runOnce plays one autopilot-driven game for at most the given tick count.
func runOnce(index int, seed int64, ticks int) runStats {
	sim := game.NewSim(game.WithSeed(seed))
	pilot := game.NewAutopilot(seed + 1)
	sim.StartGame()

	const dt = 1.0 / 60.0
	ran := 0
	for t := 0; t < ticks; t++ {
		pilot.Steer(sim)
		sim.Update(dt)
		ran++
		if sim.State == game.StateGameOver {
			break
		}
	}

	stats := runStats{
		runIndex:       index,
		seed:           seed,
		ticksRun:       ran,
		finalState:     sim.State,
		score:          sim.Player.Score,
		wave:           sim.Wave,
		firstDeathTick: -1,
	}

	for _, e := range sim.Events.Entries() {
		switch {
		case e.Category == "item" && e.Key == "pickup":
			stats.itemsCollected++
			if e.Value == "big" {
				stats.powerPickups++
			}
		case e.Category == "ghost" && e.Key == "eaten":
			stats.ghostsEaten++
		case e.Category == "life" && e.Key == "lost":
			stats.livesLost++
			if stats.firstDeathTick < 0 {
				stats.firstDeathTick = e.Tick
			}
		case e.Category == "trail" && e.Key == "collision":
			stats.trailDeaths++
		case e.Category == "mode" && e.Key == "change":
			stats.modeChanges++
		}
	}
	return stats
}

func printRun(s runStats) {
	fmt.Printf("-- run %d (seed=%d) --\n", s.runIndex, s.seed)
	fmt.Printf("  ticks=%d state=%s score=%d wave=%d\n", s.ticksRun, s.finalState, s.score, s.wave)
	fmt.Printf("  items=%d power=%d ghosts_eaten=%d lives_lost=%d trail_deaths=%d mode_changes=%d",
		s.itemsCollected, s.powerPickups, s.ghostsEaten, s.livesLost, s.trailDeaths, s.modeChanges)
	if s.firstDeathTick >= 0 {
		fmt.Printf(" first_death=T%d", s.firstDeathTick)
	}
	fmt.Println()
	fmt.Println()
}

func printSummary(all []runStats) {
	if len(all) == 0 {
		return
	}
	var score, waves, items, eaten, lost, trail int
	gameOvers := 0
	for _, s := range all {
		score += s.score
		waves += s.wave
		items += s.itemsCollected
		eaten += s.ghostsEaten
		lost += s.livesLost
		trail += s.trailDeaths
		if s.finalState == game.StateGameOver {
			gameOvers++
		}
	}
	n := float64(len(all))
	fmt.Printf("== summary over %d runs ==\n", len(all))
	fmt.Printf("  avg_score=%.1f avg_wave=%.2f avg_items=%.1f\n", float64(score)/n, float64(waves)/n, float64(items)/n)
	fmt.Printf("  avg_ghosts_eaten=%.2f avg_lives_lost=%.2f avg_trail_deaths=%.2f game_overs=%d/%d\n",
		float64(eaten)/n, float64(lost)/n, float64(trail)/n, gameOvers, len(all))
}
