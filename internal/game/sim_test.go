package game

import "testing"

const testDt = 1.0 / 60.0

// pickupLevel separates the player's corridor from a walled ghost pocket so
// pickups can be tested without contact interference.
var pickupLevel = []string{
	"#########",
	"#P..o#.G#",
	"#########",
}

// teleport drops the player onto a cell center mid-test.
func teleport(s *Sim, cell GridCell) {
	s.Player.X, s.Player.Y = gridToWorld(cell)
}

func TestSim_StartGameResetsRun(t *testing.T) {
	s := NewSim(WithSeed(1))
	s.Player.Score = 500
	s.Player.Lives = 1
	s.Wave = 4

	s.StartGame()
	if s.State != StatePlaying {
		t.Fatalf("state = %v", s.State)
	}
	if s.Player.Score != 0 || s.Player.Lives != playerStartLives || s.Wave != 1 {
		t.Fatalf("run not reset: score=%d lives=%d wave=%d",
			s.Player.Score, s.Player.Lives, s.Wave)
	}
	if s.GhostMode != ModeScatter {
		t.Fatal("schedule must restart in scatter")
	}
	if s.ItemsRemaining() == 0 {
		t.Fatal("items must be rebuilt")
	}
}

func TestSim_SmallItemPickup(t *testing.T) {
	s := simOn(t, pickupLevel, 1)
	s.StartGame()
	cell := GridCell{Col: 2, Row: 1}
	teleport(s, cell)

	s.Update(testDt)
	if s.Player.Score != smallItemScore {
		t.Fatalf("score = %d, want %d", s.Player.Score, smallItemScore)
	}
	if _, ok := s.ItemAt(cell); ok {
		t.Fatal("picked-up item must be gone")
	}
	if s.Frightened() {
		t.Fatal("small items never trigger power mode")
	}
}

func TestSim_BigItemTriggersPowerAndReversal(t *testing.T) {
	s := simOn(t, pickupLevel, 1)
	s.StartGame()
	g := s.Ghosts[0]
	dirBefore := g.Dir

	teleport(s, GridCell{Col: 4, Row: 1})
	s.Update(testDt)

	if s.Player.Score != bigItemScore {
		t.Fatalf("score = %d, want %d", s.Player.Score, bigItemScore)
	}
	if s.PowerTimer != powerModeDuration {
		t.Fatalf("power timer = %f, want %f", s.PowerTimer, powerModeDuration)
	}
	if !s.Frightened() {
		t.Fatal("big item must frighten the ghosts")
	}
	if g.Dir != dirBefore.Opposite() {
		t.Fatal("active ghosts reverse on the pickup tick")
	}
	if s.Events.Count("power", "start") != 1 {
		t.Fatal("power start must be logged")
	}
}

func TestSim_PowerReversalSkipsExitingGhosts(t *testing.T) {
	s := simOn(t, pickupLevel, 1)
	s.StartGame()
	g := s.Ghosts[0]
	g.ExitTimer = 1.0
	g.Dir = DirUp

	teleport(s, GridCell{Col: 4, Row: 1})
	s.Update(testDt)

	if !s.Frightened() {
		t.Fatal("big item must still trigger power mode")
	}
	if g.Dir != DirUp {
		t.Fatal("exiting ghosts must not be reversed by a power pickup")
	}
}

func TestSim_TickEventOrder(t *testing.T) {
	s := simOn(t, pickupLevel, 1)
	s.StartGame()
	// Force the first schedule flip onto the same tick as a pickup.
	s.modeTimer = testDt / 2
	teleport(s, GridCell{Col: 2, Row: 1})
	s.Update(testDt)

	var pickupAt, flipAt = -1, -1
	for i, e := range s.Events.Entries() {
		if e.Tick != s.Tick {
			continue
		}
		switch {
		case e.Category == "item" && e.Key == "pickup":
			pickupAt = i
		case e.Category == "mode" && e.Key == "change":
			flipAt = i
		}
	}
	if pickupAt < 0 || flipAt < 0 {
		t.Fatalf("expected a pickup and a mode flip on tick %d", s.Tick)
	}
	// Item pickup resolves before the mode schedule within a tick.
	if pickupAt > flipAt {
		t.Fatal("pickup must be logged before the same-tick mode flip")
	}
}

func TestSim_PowerTimerExpires(t *testing.T) {
	s := simOn(t, pickupLevel, 1)
	s.StartGame()
	s.PowerTimer = 2 * testDt

	s.Update(testDt)
	if !s.Frightened() {
		t.Fatal("still inside the power window")
	}
	s.Update(testDt)
	if s.Frightened() {
		t.Fatal("power mode must end when the timer runs out")
	}
	if s.Events.Count("power", "end") != 1 {
		t.Fatal("power end must be logged")
	}
}

func TestSim_FrightenedContactEatsGhost(t *testing.T) {
	s := NewSim(WithSeed(1))
	s.StartGame()
	s.PowerTimer = 5
	g := s.Ghosts[0]
	g.X, g.Y = s.Player.X, s.Player.Y

	s.resolveGhostContact()
	if !g.Dead {
		t.Fatal("contact while powered must kill the ghost")
	}
	if s.Player.Score != ghostEatenScore {
		t.Fatalf("score = %d, want %d", s.Player.Score, ghostEatenScore)
	}
	if g.RespawnTimer != ghostRespawnDelay {
		t.Fatalf("respawn timer = %f, want %f", g.RespawnTimer, ghostRespawnDelay)
	}
	if s.Map.IsWalkable(g.Cell()) {
		t.Fatal("dead ghosts sit off-map")
	}
	if s.Player.Lives != playerStartLives {
		t.Fatal("eating a ghost never costs a life")
	}
}

func TestSim_NormalContactCostsLife(t *testing.T) {
	s := NewSim(WithSeed(1))
	s.StartGame()
	g := s.Ghosts[0]
	g.X, g.Y = s.Player.X, s.Player.Y
	s.Trail.Advance(GridCell{Col: 1, Row: 1}, s.Now)

	s.resolveGhostContact()
	if s.Player.Lives != playerStartLives-1 {
		t.Fatalf("lives = %d, want %d", s.Player.Lives, playerStartLives-1)
	}
	if s.State != StatePlaying {
		t.Fatal("losing one life keeps the run going")
	}
	if s.Player.Cell() != s.Map.PlayerSpawn {
		t.Fatal("player must reset to spawn")
	}
	if len(s.Trail.Segments()) != 0 {
		t.Fatal("trail must be wiped on life loss")
	}
	if !s.ghostWaitForMove {
		t.Fatal("ghosts must wait for the next first move")
	}
}

func TestSim_DeadAndExitingGhostsNeverCollide(t *testing.T) {
	s := NewSim(WithSeed(1))
	s.StartGame()
	for _, g := range s.Ghosts {
		g.X, g.Y = s.Player.X, s.Player.Y
		g.Dead = true
	}
	s.resolveGhostContact()
	if s.Player.Lives != playerStartLives {
		t.Fatal("dead ghosts must not collide")
	}

	for _, g := range s.Ghosts {
		g.Dead = false
		g.ExitTimer = 1.0
	}
	s.resolveGhostContact()
	if s.Player.Lives != playerStartLives {
		t.Fatal("exiting ghosts must not collide")
	}
}

func TestSim_LastLifeEndsRun(t *testing.T) {
	s := NewSim(WithSeed(1))
	s.StartGame()
	s.Player.Lives = 1

	s.loseLife()
	if s.State != StateGameOver {
		t.Fatalf("state = %v, want game over", s.State)
	}
	if s.Events.Count("life", "game_over") != 1 {
		t.Fatal("game over must be logged")
	}
	// Updates are inert outside of play.
	tick := s.Tick
	s.Update(testDt)
	if s.Tick != tick {
		t.Fatal("game-over state must not advance the simulation")
	}
}

func TestSim_TrailCollisionCostsLife(t *testing.T) {
	s := simOn(t, pickupLevel, 1)
	s.StartGame()

	// Age a trail cell past the grace window right in the player's path.
	ahead := GridCell{Col: 2, Row: 1}
	s.Trail.Advance(ahead, s.Now)
	s.Now += trailGrace + 0.1

	s.SetWantDir(DirRight)
	for i := 0; i < 30 && s.Player.Lives == playerStartLives; i++ {
		s.Update(testDt)
	}
	if s.Player.Lives != playerStartLives-1 {
		t.Fatal("stepping on stale trail must cost a life")
	}
	if s.Events.Count("trail", "collision") != 1 {
		t.Fatal("trail collision must be logged")
	}
}

func TestSim_WaveClear(t *testing.T) {
	s := NewSim(WithSeed(1))
	s.StartGame()
	total := s.ItemsRemaining()
	s.items = map[GridCell]TileKind{}
	s.PowerTimer = 3
	s.modeIndex = 2

	s.Update(testDt)
	if s.Wave != 2 {
		t.Fatalf("wave = %d, want 2", s.Wave)
	}
	if s.ItemsRemaining() != total {
		t.Fatalf("items = %d, want the full layout %d", s.ItemsRemaining(), total)
	}
	if s.BannerTimer != waveBannerSeconds {
		t.Fatalf("banner = %f, want %f", s.BannerTimer, waveBannerSeconds)
	}
	if s.PowerTimer != 0 {
		t.Fatal("power mode must drop on wave clear")
	}
	if s.modeIndex != 0 || s.GhostMode != ModeScatter {
		t.Fatal("mode schedule must restart on wave clear")
	}
	if len(s.Trail.Segments()) != 0 {
		t.Fatal("trail must be wiped on wave clear")
	}
	if TrailLifetime(s.Wave) <= TrailLifetime(1) {
		t.Fatal("wave 2 trail must outlive wave 1 trail")
	}
}

func TestSim_GhostsHoldUntilFirstMovePlusDelay(t *testing.T) {
	s := simOn(t, pickupLevel, 1)
	s.StartGame()
	g := s.Ghosts[0]
	gx, gy := g.X, g.Y

	// No input: ghosts stay frozen indefinitely.
	for i := 0; i < 30; i++ {
		s.Update(testDt)
	}
	if g.X != gx || g.Y != gy {
		t.Fatal("ghosts must not move before the player does")
	}

	// First successful player move arms the release delay.
	s.SetWantDir(DirRight)
	s.Update(testDt)
	if s.ghostWaitForMove {
		t.Fatal("first move must clear the wait flag")
	}
	if s.ghostHoldTimer != ghostReleaseDelay {
		t.Fatalf("hold timer = %f, want %f", s.ghostHoldTimer, ghostReleaseDelay)
	}
	if g.X != gx || g.Y != gy {
		t.Fatal("ghosts stay frozen through the release delay")
	}

	// Ride out the delay; the ghost pocket keeps it away from the player.
	for i := 0; i < 62; i++ {
		s.Update(testDt)
	}
	if g.X == gx && g.Y == gy {
		t.Fatal("ghosts must move once the delay has elapsed")
	}
}

func TestSim_TunnelTransitPausesTrail(t *testing.T) {
	s := simOn(t, []string{
		"#######",
		".P.....",
		"#######",
	}, 1)
	s.StartGame()
	if s.inTunnelTransit() {
		t.Fatal("on-screen player is not in transit")
	}
	s.Player.X = -10
	if !s.inTunnelTransit() {
		t.Fatal("off-screen player on a tunnel row is in transit")
	}
	// Off-screen on a non-tunnel row never counts.
	s2 := simOn(t, pickupLevel, 1)
	s2.Player.X = -10
	if s2.inTunnelTransit() {
		t.Fatal("non-tunnel rows have no transit")
	}
}

func TestSim_SnapshotMirrorsState(t *testing.T) {
	s := NewSim(WithSeed(1))
	s.StartGame()
	s.Player.Score = 120
	s.PowerTimer = 3
	s.Trail.Advance(GridCell{Col: 1, Row: 1}, s.Now)

	snap := s.Snapshot()
	if snap.Score != 120 || snap.Lives != playerStartLives || snap.Wave != 1 {
		t.Fatalf("snapshot run state: %+v", snap)
	}
	if !snap.Frightened || snap.PowerTimer != 3 {
		t.Fatal("snapshot must carry power state")
	}
	if len(snap.Ghosts) != len(s.Ghosts) {
		t.Fatalf("ghost count = %d", len(snap.Ghosts))
	}
	if len(snap.Items) != s.ItemsRemaining() {
		t.Fatalf("item count = %d", len(snap.Items))
	}
	if len(snap.Trail) != 1 || snap.Trail[0].Age != 0 {
		t.Fatalf("trail snapshot: %+v", snap.Trail)
	}
	if snap.TrailLifetime != TrailLifetime(1) {
		t.Fatal("snapshot must expose the current trail lifetime")
	}
}

func TestSim_AutopilotSoak(t *testing.T) {
	s := NewSim(WithSeed(42))
	pilot := NewAutopilot(43)
	s.StartGame()

	for tick := 0; tick < 2000 && s.State == StatePlaying; tick++ {
		pilot.Steer(s)
		s.Update(testDt)

		if !s.inTunnelTransit() {
			cell := s.Map.WrapIfTunnel(s.Player.Cell())
			if !s.Map.IsWalkable(cell) {
				t.Fatalf("tick %d: player inside a wall at %v", tick, cell)
			}
		}
		for _, g := range s.Ghosts {
			if g.Dead {
				continue
			}
			if g.X > -tileSize && s.Map.KindAt(g.Cell()) == TileWall && !s.Map.IsTunnelRow(g.Cell().Row) {
				t.Fatalf("tick %d: %v inside a wall at %v", tick, g.Personality, g.Cell())
			}
		}
	}
	if s.Player.Score == 0 {
		t.Fatal("a 2000-tick soak should collect at least one item")
	}
}
