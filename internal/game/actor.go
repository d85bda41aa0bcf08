package game

// Movement tuning.
const (
	playerSpeed        = 4.0 // player pixels per tick
	ghostSpeedNormal   = 3.0 // ghost pixels per tick
	ghostSpeedAfraid   = 2.0 // frightened ghosts are slightly slower
	actorBodySize      = tileSize - 6
	playerStartLives   = 3
	playerMouthPeriod  = 0.12 // seconds per mouth open/close flip
	ghostRespawnDelay  = 5.0  // seconds off-map after being eaten
	ghostExitDuration  = 1.2  // seconds of forced upward movement after respawn
	ghostReleaseDelay  = 1.0  // seconds between the player's first move and ghost release
	ghostEatenScore    = 200
	smallItemScore     = 10
	bigItemScore       = 50
	powerModeDuration  = 8.0 // seconds of frightened mode per big item
)

// Actor is the shared movable-body state: a continuous pixel position, the
// current travel direction, and the buffered direction requested by input
// or AI.
type Actor struct {
	X, Y    float64
	Dir     Direction
	WantDir Direction
}

// Cell returns the grid cell the actor's center is in.
func (a *Actor) Cell() GridCell {
	return worldToGrid(a.X, a.Y)
}

// SnapToTileCenter hard-snaps the actor onto the center of its current cell.
// Used on spawns and resets so float drift never accumulates across lives.
func (a *Actor) SnapToTileCenter() {
	a.X, a.Y = gridToWorld(a.Cell())
}

// Player is the controllable actor plus its run-scoped counters and the
// mouth animation phase the presentation layer reads.
type Player struct {
	Actor
	Score int
	Lives int

	MouthOpen  bool
	mouthTimer float64
}

// UpdateMouth advances the chomp animation. The mouth stays open while the
// player is not moving.
func (p *Player) UpdateMouth(dt float64, moving bool) {
	if !moving {
		p.MouthOpen = true
		p.mouthTimer = 0
		return
	}
	p.mouthTimer += dt
	if p.mouthTimer >= playerMouthPeriod {
		p.mouthTimer = 0
		p.MouthOpen = !p.MouthOpen
	}
}

// Personality selects a ghost's chase-targeting behaviour.
type Personality uint8

const (
	Blinky Personality = iota // direct chaser
	Pinky                     // ambusher, aims ahead of the player
	Inky                      // flanker, mirrors Blinky through a point ahead
	Clyde                     // shy chaser, backs off to its corner when close
	personalityCount          // sentinel
)

func (p Personality) String() string {
	switch p {
	case Blinky:
		return "blinky"
	case Pinky:
		return "pinky"
	case Inky:
		return "inky"
	case Clyde:
		return "clyde"
	default:
		return "unknown"
	}
}

// Ghost is a pursuing actor. Dead ghosts sit off-map until RespawnTimer
// expires; freshly respawned ghosts run ExitTimer down while moving straight
// up out of the house, ignoring AI.
type Ghost struct {
	Actor
	Personality   Personality
	ScatterTarget GridCell
	SpawnX        float64
	SpawnY        float64

	Dead         bool
	RespawnTimer float64
	ExitTimer    float64
}

// Exiting reports whether the ghost is in its forced post-respawn climb.
func (g *Ghost) Exiting() bool {
	return !g.Dead && g.ExitTimer > 0
}

// Active reports whether the ghost is in normal play: alive and done exiting.
// Only active ghosts chase, reverse on mode flips, or collide with the player.
func (g *Ghost) Active() bool {
	return !g.Dead && g.ExitTimer <= 0
}
