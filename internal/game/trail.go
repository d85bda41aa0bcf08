package game

// Trail tuning.
const (
	trailBaseLifetime = 1.15 // seconds a trail cell stays hazardous at wave 1
	trailGrace        = 0.15 // revisiting your own trail within this window is free
	trailWaveBonusPct = 0.12 // lifetime growth per wave past the first
)

// TrailSegment is one logged trail cell with its insertion time, kept in
// visit order for interpolation, pruning, and fading render.
type TrailSegment struct {
	Cell GridCell
	X, Y float64 // cell center, cached for the presentation layer
	T    float64 // simulation time of insertion
}

// Trail is the decaying hazard the player leaves behind: a cell→timestamp
// occupancy map for O(1) collision checks plus the ordered segment log.
type Trail struct {
	cells    map[GridCell]float64
	segments []TrailSegment
	lastCell GridCell
	hasLast  bool

	// skipNext suppresses the first record after a tunnel wrap so the jump
	// across the screen never writes a phantom segment.
	skipNext bool
}

func NewTrail() *Trail {
	return &Trail{cells: make(map[GridCell]float64)}
}

// TrailLifetime is the hazard duration for a wave. Lifetime grows
// monotonically with wave, keeping old trail dangerous for longer.
func TrailLifetime(wave int) float64 {
	return trailBaseLifetime * (1.0 + float64(wave-1)*trailWaveBonusPct)
}

// record marks one cell occupied at time now. It reports a collision when
// the cell already carries a visit older than the grace window; a visit
// within the window is the player's own fresh trail and only refreshes the
// timestamp. New cells are appended to the segment log.
func (t *Trail) record(cell GridCell, now float64) bool {
	if prev, ok := t.cells[cell]; ok && now-prev >= trailGrace {
		return true
	}
	t.cells[cell] = now
	if t.hasLast && t.lastCell == cell {
		return false
	}
	t.lastCell = cell
	t.hasLast = true
	x, y := gridToWorld(cell)
	t.segments = append(t.segments, TrailSegment{Cell: cell, X: x, Y: y, T: now})
	return false
}

// Advance records the player's arrival in a cell, interpolating every
// intermediate cell when more than one grid step happened since the last
// record so a fast crossing cannot jump the hazard. Each recorded cell can
// independently signal a collision. A jump that changes both axes records
// only the destination (no diagonal paths exist in normal movement).
func (t *Trail) Advance(cell GridCell, now float64) bool {
	if t.skipNext {
		t.skipNext = false
		t.lastCell = cell
		t.hasLast = true
		return false
	}
	if !t.hasLast {
		return t.record(cell, now)
	}
	last := t.lastCell
	if last == cell {
		return t.record(cell, now)
	}

	dc := cell.Col - last.Col
	dr := cell.Row - last.Row
	switch {
	case dc != 0 && dr != 0:
		return t.record(cell, now)
	case dc != 0:
		step := 1
		if dc < 0 {
			step = -1
		}
		for c := last.Col + step; c != cell.Col+step; c += step {
			if t.record(GridCell{Col: c, Row: last.Row}, now) {
				return true
			}
		}
	default:
		step := 1
		if dr < 0 {
			step = -1
		}
		for r := last.Row + step; r != cell.Row+step; r += step {
			if t.record(GridCell{Col: last.Col, Row: r}, now) {
				return true
			}
		}
	}
	return false
}

// BreakContinuity forgets the last-visited cell and skips the next record.
// Called on tunnel wrap so re-entry starts a fresh trail run.
func (t *Trail) BreakContinuity() {
	t.skipNext = true
	t.hasLast = false
}

// Prune drops every cell and segment older than the lifetime. Run once per
// tick so the occupancy map never holds an expired entry.
func (t *Trail) Prune(now, lifetime float64) {
	cutoff := now - lifetime
	kept := t.segments[:0]
	for _, seg := range t.segments {
		if seg.T >= cutoff {
			kept = append(kept, seg)
		}
	}
	t.segments = kept
	for cell, ts := range t.cells {
		if ts < cutoff {
			delete(t.cells, cell)
		}
	}
}

// Clear wipes all trail state (death, reset, wave clear).
func (t *Trail) Clear() {
	t.cells = make(map[GridCell]float64)
	t.segments = t.segments[:0]
	t.hasLast = false
	t.skipNext = false
}

// Segments returns the live segment log in visit order.
func (t *Trail) Segments() []TrailSegment {
	return t.segments
}

// Occupied reports whether a cell currently carries trail.
func (t *Trail) Occupied(cell GridCell) bool {
	_, ok := t.cells[cell]
	return ok
}
