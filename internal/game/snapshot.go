package game

// Snapshot is the read-only view the presentation layer consumes each tick.
// Nothing in the simulation depends on what a consumer does with it.
type Snapshot struct {
	State RunState
	Score int
	Lives int
	Wave  int

	Mode       Mode
	Frightened bool
	PowerTimer float64
	BannerTime float64

	Player PlayerSnapshot
	Ghosts []GhostSnapshot
	Items  []ItemSnapshot
	Trail  []TrailPoint

	TrailLifetime float64
}

type PlayerSnapshot struct {
	X, Y      float64
	Dir       Direction
	WantDir   Direction
	MouthOpen bool
}

type GhostSnapshot struct {
	X, Y        float64
	Dir         Direction
	Personality Personality
	Dead        bool
	Exiting     bool
}

type ItemSnapshot struct {
	Cell GridCell
	Big  bool
}

// TrailPoint is one trail segment with its age, so consumers can fade it
// without knowing the clock.
type TrailPoint struct {
	X, Y float64
	Cell GridCell
	Age  float64
}

// Snapshot captures the current presentation-facing state.
func (s *Sim) Snapshot() Snapshot {
	snap := Snapshot{
		State:         s.State,
		Score:         s.Player.Score,
		Lives:         s.Player.Lives,
		Wave:          s.Wave,
		Mode:          s.GhostMode,
		Frightened:    s.Frightened(),
		PowerTimer:    s.PowerTimer,
		BannerTime:    s.BannerTimer,
		TrailLifetime: TrailLifetime(s.Wave),
		Player: PlayerSnapshot{
			X:         s.Player.X,
			Y:         s.Player.Y,
			Dir:       s.Player.Dir,
			WantDir:   s.Player.WantDir,
			MouthOpen: s.Player.MouthOpen,
		},
	}

	for _, g := range s.Ghosts {
		snap.Ghosts = append(snap.Ghosts, GhostSnapshot{
			X:           g.X,
			Y:           g.Y,
			Dir:         g.Dir,
			Personality: g.Personality,
			Dead:        g.Dead,
			Exiting:     g.Exiting(),
		})
	}

	for cell, kind := range s.items {
		snap.Items = append(snap.Items, ItemSnapshot{Cell: cell, Big: kind == TileBigItem})
	}

	for _, seg := range s.Trail.Segments() {
		snap.Trail = append(snap.Trail, TrailPoint{
			X:    seg.X,
			Y:    seg.Y,
			Cell: seg.Cell,
			Age:  s.Now - seg.T,
		})
	}
	return snap
}
