package game

import (
	"math"
	"math/rand"
	"time"
)

// waveBannerSeconds is how long the wave banner shows after a clear.
const waveBannerSeconds = 2.0

// RunState is the coarse game phase.
type RunState uint8

const (
	StateMenu RunState = iota
	StatePlaying
	StateGameOver
)

func (rs RunState) String() string {
	switch rs {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "menu"
	}
}

// Sim is the complete headless simulation: map, actors, trail, timers, and
// the run state machine. It has no rendering dependency; the ebiten layer
// and the headless report both drive it through Update and read Snapshot.
// All state is owned here and mutated only inside Update.
type Sim struct {
	Map    *TileMap
	Player *Player
	Ghosts []*Ghost
	Trail  *Trail
	Events *EventLog

	State RunState
	Wave  int
	Tick  int
	Now   float64 // simulation clock, seconds

	GhostMode Mode
	modeIndex int
	modeTimer float64

	PowerTimer  float64 // >0 means ghosts are frightened and vulnerable
	BannerTimer float64

	// Live items this wave, rebuilt from the static map on each clear.
	items map[GridCell]TileKind

	// Ghosts hold position until the player's first successful move of each
	// life, then for a further fixed release delay.
	ghostWaitForMove bool
	ghostHoldTimer   float64

	// ghostRegistry resolves a personality to its ghost once at level build;
	// nil entries mean the level spawned fewer than four ghosts.
	ghostRegistry [personalityCount]*Ghost

	houseX, houseY float64

	rng *rand.Rand
}

// SimOption configures a Sim at construction.
type SimOption func(*Sim)

// WithSeed fixes the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return func(s *Sim) {
		s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay randomness
	}
}

// WithLevel replaces the built-in maze.
func WithLevel(tm *TileMap) SimOption {
	return func(s *Sim) {
		s.Map = tm
	}
}

// NewSim builds a simulation on the default level in the menu state.
func NewSim(opts ...SimOption) *Sim {
	s := &Sim{
		Map:    DefaultLevel(),
		Trail:  NewTrail(),
		Events: NewEventLog(),
		State:  StateMenu,
		Wave:   1,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())), // #nosec G404 -- gameplay randomness
	}
	for _, opt := range opts {
		opt(s)
	}

	px, py := gridToWorld(s.Map.PlayerSpawn)
	s.Player = &Player{Actor: Actor{X: px, Y: py}, Lives: playerStartLives}

	for i, spawn := range s.Map.GhostSpawns {
		p := Personality(i % int(personalityCount))
		gx, gy := gridToWorld(spawn)
		g := &Ghost{
			Actor:         Actor{X: gx, Y: gy, Dir: s.randomDir()},
			Personality:   p,
			ScatterTarget: scatterCorner(p, s.Map),
			SpawnX:        gx,
			SpawnY:        gy,
		}
		s.Ghosts = append(s.Ghosts, g)
		if s.ghostRegistry[p] == nil {
			s.ghostRegistry[p] = g
		}
	}

	s.houseX, s.houseY = px, py
	if len(s.Map.GhostSpawns) > 0 {
		s.houseX, s.houseY = gridToWorld(s.Map.GhostSpawns[0])
	}

	s.GhostMode = chaseScatterSchedule[0].mode
	s.modeTimer = chaseScatterSchedule[0].duration
	s.rebuildItems()
	s.resetPositions()
	return s
}

func (s *Sim) randomDir() Direction {
	return moveDirs[s.rng.Intn(len(moveDirs))]
}

// rebuildItems restores every item recorded in the static layout.
func (s *Sim) rebuildItems() {
	s.items = make(map[GridCell]TileKind)
	for r := 0; r < s.Map.Rows; r++ {
		for c := 0; c < s.Map.Cols; c++ {
			cell := GridCell{Col: c, Row: r}
			if k := s.Map.KindAt(cell); k == TileSmallItem || k == TileBigItem {
				s.items[cell] = k
			}
		}
	}
}

// resetPositions returns all actors to their spawns and clears the trail.
// Used after a life loss and on wave clear; actors are repositioned, never
// recreated.
func (s *Sim) resetPositions() {
	s.Player.X, s.Player.Y = gridToWorld(s.Map.PlayerSpawn)
	s.Player.Dir = DirNone
	s.Player.WantDir = DirNone
	s.Player.SnapToTileCenter()

	s.Trail.Clear()
	s.ghostWaitForMove = true
	s.ghostHoldTimer = 0

	for _, g := range s.Ghosts {
		g.X, g.Y = g.SpawnX, g.SpawnY
		g.Dead = false
		g.RespawnTimer = 0
		g.ExitTimer = 0
		g.Dir = s.randomDir()
		g.SnapToTileCenter()
	}
}

// resetRun is the hard reset for a fresh game: score, lives, wave, clock,
// schedule, items, and positions.
func (s *Sim) resetRun() {
	s.Wave = 1
	s.BannerTimer = 0
	s.PowerTimer = 0
	s.Now = 0
	s.Tick = 0

	s.modeIndex = 0
	s.GhostMode = chaseScatterSchedule[0].mode
	s.modeTimer = chaseScatterSchedule[0].duration

	s.Player.Score = 0
	s.Player.Lives = playerStartLives

	s.rebuildItems()
	s.resetPositions()
}

// StartGame begins play from the menu or game-over screen.
func (s *Sim) StartGame() {
	s.resetRun()
	s.State = StatePlaying
}

// SetWantDir buffers the player's desired direction. This is the whole input
// surface: key-to-direction mapping lives with the caller.
func (s *Sim) SetWantDir(d Direction) {
	s.Player.WantDir = d
}

// Frightened reports whether ghosts are currently vulnerable.
func (s *Sim) Frightened() bool {
	return s.PowerTimer > 0
}

// ItemsRemaining is the number of uncollected items this wave.
func (s *Sim) ItemsRemaining() int {
	return len(s.items)
}

// ItemAt returns the live item kind at a cell, if any.
func (s *Sim) ItemAt(cell GridCell) (TileKind, bool) {
	k, ok := s.items[cell]
	return k, ok
}

// inTunnelTransit reports whether the player is off the visible bounds on a
// tunnel row. Trail recording and collision checks pause during transit.
func (s *Sim) inTunnelTransit() bool {
	row := int(math.Floor(s.Player.Y / tileSize))
	if !s.Map.IsTunnelRow(row) {
		return false
	}
	return s.Player.X < 0 || s.Player.X > s.Map.PixelWidth()
}

// Update advances the simulation one tick. Order within the tick is fixed:
// timers, player turn/move, trail insert/prune, item pickup, wave-clear
// check, mode schedule, ghost movement/AI, contact resolution.
func (s *Sim) Update(dt float64) {
	if s.State != StatePlaying {
		return
	}
	s.Tick++
	s.Now += dt

	// Timers.
	if s.ghostHoldTimer > 0 {
		s.ghostHoldTimer = math.Max(0, s.ghostHoldTimer-dt)
	}
	if s.BannerTimer > 0 {
		s.BannerTimer -= dt
	}
	if s.PowerTimer > 0 {
		s.PowerTimer -= dt
		if s.PowerTimer <= 0 {
			s.PowerTimer = 0
			s.Events.Add(s.Tick, "--", "power", "end", "", 0)
		}
	}

	// Player turn and step.
	resolveTurn(s.Map, &s.Player.Actor, playerSpeed)
	moved := tryStep(s.Map, &s.Player.Actor, s.Player.Dir, playerSpeed)
	s.Player.UpdateMouth(dt, moved)

	if s.ghostWaitForMove && moved {
		s.ghostWaitForMove = false
		s.ghostHoldTimer = ghostReleaseDelay
	}

	if handleWrap(s.Map, &s.Player.Actor) {
		s.Trail.BreakContinuity()
	}

	// Trail insertion, then pruning.
	if moved && !s.inTunnelTransit() {
		cell := s.Map.WrapIfTunnel(s.Player.Cell())
		if s.Trail.Advance(cell, s.Now) {
			s.Events.Add(s.Tick, "player", "trail", "collision",
				cell.String(), 0)
			s.loseLife()
			return
		}
	}
	s.Trail.Prune(s.Now, TrailLifetime(s.Wave))

	// Item pickup.
	s.collectItems()

	// Wave clear.
	if len(s.items) == 0 {
		s.waveClear()
		return
	}

	// Mode schedule.
	s.advanceModeSchedule(dt)

	// Ghost movement and contact. Both pause until the player's head start
	// has elapsed.
	if s.ghostWaitForMove || s.ghostHoldTimer > 0 {
		return
	}
	s.updateGhosts(dt)
	s.resolveGhostContact()
}

// collectItems picks up the item under the player, if any, and triggers
// power mode for big items.
func (s *Sim) collectItems() {
	cell := s.Map.WrapIfTunnel(s.Player.Cell())
	kind, ok := s.items[cell]
	if !ok {
		return
	}
	delete(s.items, cell)

	switch kind {
	case TileBigItem:
		s.Player.Score += bigItemScore
		s.PowerTimer = powerModeDuration
		for _, g := range s.Ghosts {
			if g.Active() {
				g.Dir = g.Dir.Opposite()
			}
		}
		s.Events.Add(s.Tick, "player", "item", "pickup", "big", bigItemScore)
		s.Events.Add(s.Tick, "--", "power", "start", "", powerModeDuration)
	default:
		s.Player.Score += smallItemScore
		s.Events.Add(s.Tick, "player", "item", "pickup", "small", smallItemScore)
	}
}

// resolveGhostContact handles player/ghost overlap: eat the ghost while
// powered, lose a life otherwise. Dead and exiting ghosts never collide.
func (s *Sim) resolveGhostContact() {
	for _, g := range s.Ghosts {
		if !g.Active() || !s.actorsOverlap(&s.Player.Actor, &g.Actor) {
			continue
		}
		if s.PowerTimer > 0 {
			s.Player.Score += ghostEatenScore
			g.Dead = true
			g.RespawnTimer = ghostRespawnDelay
			// Off-map until respawn; dead ghosts never sit in play.
			g.X, g.Y = -100, -100
			g.Dir = DirNone
			s.Events.Add(s.Tick, g.Personality.String(), "ghost", "eaten", "", ghostEatenScore)
		} else {
			s.loseLife()
			return
		}
	}
}

// actorsOverlap is the axis-aligned body overlap test used for all
// actor-vs-actor contact.
func (s *Sim) actorsOverlap(a, b *Actor) bool {
	return math.Abs(a.X-b.X) < actorBodySize && math.Abs(a.Y-b.Y) < actorBodySize
}

// loseLife decrements lives, then either resets positions or ends the run.
func (s *Sim) loseLife() {
	s.Player.Lives--
	s.Events.Add(s.Tick, "player", "life", "lost", "", float64(s.Player.Lives))
	if s.Player.Lives <= 0 {
		s.State = StateGameOver
		s.Player.Dir = DirNone
		s.Player.WantDir = DirNone
		s.Trail.Clear()
		s.Events.Add(s.Tick, "--", "life", "game_over", "", float64(s.Player.Score))
		return
	}
	s.resetPositions()
}

// waveClear advances to the next wave: items rebuilt from the static layout,
// trail cleared, power mode dropped, schedule restarted from its first
// entry, and everyone back at spawn behind the banner.
func (s *Sim) waveClear() {
	s.Wave++
	s.BannerTimer = waveBannerSeconds
	s.PowerTimer = 0

	s.modeIndex = 0
	s.GhostMode = chaseScatterSchedule[0].mode
	s.modeTimer = chaseScatterSchedule[0].duration

	s.Trail.Clear()
	s.rebuildItems()
	s.resetPositions()
	s.Events.Add(s.Tick, "--", "wave", "clear", "", float64(s.Wave))
}
