package game

// Mode is the global pursuit mode every ghost shares.
type Mode uint8

const (
	ModeScatter Mode = iota // ghosts head for their fixed corners
	ModeChase               // personality-specific pursuit
)

func (m Mode) String() string {
	if m == ModeChase {
		return "chase"
	}
	return "scatter"
}

// scheduleEntry is one leg of the fixed scatter/chase rotation.
type scheduleEntry struct {
	mode     Mode
	duration float64 // seconds
}

// chaseScatterSchedule alternates modes with shortening scatter legs; the
// final entry holds indefinitely.
var chaseScatterSchedule = []scheduleEntry{
	{ModeScatter, 7.0},
	{ModeChase, 20.0},
	{ModeScatter, 7.0},
	{ModeChase, 20.0},
	{ModeScatter, 5.0},
	{ModeChase, 20.0},
	{ModeScatter, 5.0},
	{ModeChase, 9999.0},
}

// AI tuning.
const (
	pinkyLookAhead = 4 // cells ahead of the player Pinky aims for
	inkyLookAhead  = 2 // cells ahead used as Inky's pivot point
	clydeShyDist   = 6 // Manhattan distance at which Clyde retreats

	// tieBreakReplaceProb is the chance an equally-scored direction replaces
	// the current best during target seeking. Deliberately tunable; the value
	// is inherited behaviour with no deeper rationale.
	tieBreakReplaceProb = 0.35
)

// targetFunc computes a ghost's chase-mode target cell.
type targetFunc func(s *Sim, g *Ghost) GridCell

// chaseTargets dispatches chase targeting by personality.
var chaseTargets = [personalityCount]targetFunc{
	Blinky: blinkyTarget,
	Pinky:  pinkyTarget,
	Inky:   inkyTarget,
	Clyde:  clydeTarget,
}

// playerFacing is the direction ghost targeting treats the player as facing:
// the travel direction, falling back to the buffered one, then left.
func (s *Sim) playerFacing() Direction {
	d := s.Player.Dir
	if d == DirNone {
		d = s.Player.WantDir
	}
	if d == DirNone {
		d = DirLeft
	}
	return d
}

// blinkyTarget chases the player's cell directly.
func blinkyTarget(s *Sim, _ *Ghost) GridCell {
	return s.Player.Cell()
}

// pinkyTarget aims a few cells ahead of the player's facing, stopping at
// walls, to cut corners off.
func pinkyTarget(s *Sim, _ *Ghost) GridCell {
	return s.Map.CellAhead(s.Player.Cell(), s.playerFacing(), pinkyLookAhead)
}

// inkyTarget mirrors Blinky through a point two cells ahead of the player:
// target = pivot + (pivot - blinky), clamped to the map.
func inkyTarget(s *Sim, _ *Ghost) GridCell {
	pivot := s.Map.CellAhead(s.Player.Cell(), s.playerFacing(), inkyLookAhead)
	blinky := s.ghostRegistry[Blinky]
	if blinky == nil {
		return pivot
	}
	bc := blinky.Cell()
	return GridCell{
		Col: clampInt(2*pivot.Col-bc.Col, 0, s.Map.Cols-1),
		Row: clampInt(2*pivot.Row-bc.Row, 0, s.Map.Rows-1),
	}
}

// clydeTarget chases directly but flees to its corner whenever it gets close,
// producing the flee-then-re-engage loop.
func clydeTarget(s *Sim, g *Ghost) GridCell {
	p := s.Player.Cell()
	if manhattan(g.Cell(), p) <= clydeShyDist {
		return g.ScatterTarget
	}
	return p
}

// ghostTarget returns the cell a ghost is steering toward this tick.
// Frightened movement never consults targets, so callers skip this then.
func (s *Sim) ghostTarget(g *Ghost) GridCell {
	if s.GhostMode == ModeScatter {
		return g.ScatterTarget
	}
	return chaseTargets[g.Personality](s, g)
}

// chooseDir picks a ghost's next direction from its current cell:
//   - never reverse unless reverse is the only exit
//   - frightened: uniform random over the remaining options
//   - otherwise: minimize Manhattan distance from the wrap-adjusted neighbour
//     to the target, breaking exact ties stochastically
//
// A fully enclosed ghost holds (DirNone) rather than faulting.
func (s *Sim) chooseDir(g *Ghost, target GridCell, frightened bool) Direction {
	cell := g.Cell()
	options := s.Map.ValidDirections(cell)
	if len(options) == 0 {
		return DirNone
	}

	if back := g.Dir.Opposite(); len(options) > 1 {
		for i, d := range options {
			if d == back {
				options = append(options[:i], options[i+1:]...)
				break
			}
		}
	}

	if frightened {
		return options[s.rng.Intn(len(options))]
	}

	best := options[0]
	bestScore := manhattan(s.Map.Neighbor(cell, best), target)
	for _, d := range options[1:] {
		score := manhattan(s.Map.Neighbor(cell, d), target)
		switch {
		case score < bestScore:
			best, bestScore = d, score
		case score == bestScore && s.rng.Float64() < tieBreakReplaceProb:
			best = d
		}
	}
	return best
}

// advanceModeSchedule counts the current leg down and flips mode when it
// expires. The last entry holds indefinitely: no flip, no reversal, no log.
// Every real mode flip force-reverses the active ghosts; dead and exiting
// ghosts are left alone.
func (s *Sim) advanceModeSchedule(dt float64) {
	s.modeTimer -= dt
	if s.modeTimer > 0 {
		return
	}
	if s.modeIndex >= len(chaseScatterSchedule)-1 {
		s.modeTimer = chaseScatterSchedule[s.modeIndex].duration
		return
	}
	s.modeIndex++
	s.GhostMode = chaseScatterSchedule[s.modeIndex].mode
	s.modeTimer = chaseScatterSchedule[s.modeIndex].duration
	for _, g := range s.Ghosts {
		if g.Active() {
			g.Dir = g.Dir.Opposite()
		}
	}
	s.Events.Add(s.Tick, "--", "mode", "change", s.GhostMode.String(), float64(s.modeIndex))
}

// updateGhosts runs the per-ghost state machines: respawn countdowns, the
// forced exit climb, and normal AI-driven movement.
func (s *Sim) updateGhosts(dt float64) {
	frightened := s.PowerTimer > 0
	speed := ghostSpeedNormal
	if frightened {
		speed = ghostSpeedAfraid
	}

	for _, g := range s.Ghosts {
		if g.Dead {
			g.RespawnTimer -= dt
			if g.RespawnTimer <= 0 {
				g.Dead = false
				g.X, g.Y = s.houseX, s.houseY
				g.SnapToTileCenter()
				g.Dir = DirUp
				g.ExitTimer = ghostExitDuration
				s.Events.Add(s.Tick, g.Personality.String(), "ghost", "respawn", "", 0)
			}
			continue
		}

		if g.ExitTimer > 0 {
			g.ExitTimer -= dt
			tryStep(s.Map, &g.Actor, DirUp, ghostSpeedNormal)
			handleWrap(s.Map, &g.Actor)
			continue
		}

		if atTileCenter(g.X, g.Y) {
			var target GridCell
			if !frightened {
				target = s.ghostTarget(g)
			}
			g.Dir = s.chooseDir(g, target, frightened)
		}

		// A blocked step means the discrete plan and the continuous body
		// disagree; re-pick immediately so the ghost never stalls a tick.
		if !tryStep(s.Map, &g.Actor, g.Dir, speed) {
			var target GridCell
			if !frightened {
				target = s.ghostTarget(g)
			}
			g.Dir = s.chooseDir(g, target, frightened)
			tryStep(s.Map, &g.Actor, g.Dir, speed)
		}

		handleWrap(s.Map, &g.Actor)
	}
}

// scatterCorner returns the fixed corner target for a personality.
func scatterCorner(p Personality, tm *TileMap) GridCell {
	switch p {
	case Blinky:
		return GridCell{Col: tm.Cols - 2, Row: 1}
	case Pinky:
		return GridCell{Col: 1, Row: 1}
	case Inky:
		return GridCell{Col: tm.Cols - 2, Row: tm.Rows - 2}
	default:
		return GridCell{Col: 1, Row: tm.Rows - 2}
	}
}
