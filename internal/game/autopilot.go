package game

import "math/rand"

// trailAvoidPenalty makes the autopilot treat a trail-occupied neighbour as
// effectively unreachable without forbidding it outright (dead ends).
const trailAvoidPenalty = 1000

// Autopilot is a scripted player used by headless runs and soak tests: it
// steers toward the nearest remaining item while avoiding its own live
// trail. It drives the simulation only through the public input surface.
type Autopilot struct {
	rng *rand.Rand
}

func NewAutopilot(seed int64) *Autopilot {
	return &Autopilot{rng: rand.New(rand.NewSource(seed))} // #nosec G404 -- scripted driver
}

// Steer buffers a direction for the current tick. Decisions happen at tile
// centers, mirroring where a human turn would land.
func (ap *Autopilot) Steer(s *Sim) {
	if s.State != StatePlaying {
		return
	}
	p := &s.Player.Actor
	if p.Dir != DirNone && !atTileCenter(p.X, p.Y) {
		return
	}

	cell := s.Map.WrapIfTunnel(p.Cell())
	target, ok := ap.nearestItem(s, cell)
	if !ok {
		return
	}

	options := s.Map.ValidDirections(cell)
	if len(options) == 0 {
		return
	}
	// Avoid immediate reversal unless cornered, like the pursuers do; it
	// keeps the bot from sawing back and forth over its own trail.
	if back := p.Dir.Opposite(); len(options) > 1 {
		for i, d := range options {
			if d == back {
				options = append(options[:i], options[i+1:]...)
				break
			}
		}
	}

	best := options[0]
	bestScore := ap.scoreDir(s, cell, best, target)
	for _, d := range options[1:] {
		score := ap.scoreDir(s, cell, d, target)
		if score < bestScore || (score == bestScore && ap.rng.Intn(2) == 0) {
			best, bestScore = d, score
		}
	}
	s.SetWantDir(best)
}

func (ap *Autopilot) scoreDir(s *Sim, cell GridCell, d Direction, target GridCell) int {
	next := s.Map.Neighbor(cell, d)
	score := manhattan(next, target)
	if s.Trail.Occupied(next) {
		score += trailAvoidPenalty
	}
	return score
}

func (ap *Autopilot) nearestItem(s *Sim, from GridCell) (GridCell, bool) {
	best := GridCell{}
	bestDist := -1
	for cell := range s.items {
		d := manhattan(from, cell)
		if bestDist < 0 || d < bestDist {
			best, bestDist = cell, d
		}
	}
	return best, bestDist >= 0
}
