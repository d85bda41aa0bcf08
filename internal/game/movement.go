package game

import "math"

// turnSnapPx is the turn-assist tolerance: a buffered turn is accepted when
// the off-axis coordinate is within this many pixels of the tile-center axis.
// Checking only at dead-center drops turns whenever a step overshoots the
// center between ticks.
const turnSnapPx = 5.0

// bodyHitsWall reports whether an actor body centered at (x,y) overlaps any
// wall cell. Cells outside the map are open space so tunnel transit is never
// blocked; walls on the border keep actors in everywhere else.
func bodyHitsWall(tm *TileMap, x, y float64) bool {
	const half = actorBodySize / 2.0
	minCol := int(math.Floor((x - half) / tileSize))
	maxCol := int(math.Floor((x + half - 1e-9) / tileSize))
	minRow := int(math.Floor((y - half) / tileSize))
	maxRow := int(math.Floor((y + half - 1e-9) / tileSize))
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			cell := GridCell{Col: c, Row: r}
			if tm.inBounds(cell) && tm.kinds[r][c] == TileWall {
				return true
			}
		}
	}
	return false
}

// tryStep attempts one fixed-distance step in a direction. On wall contact
// the position reverts and the step reports failure; a blocked step is a
// movement outcome, not an error. DirNone never moves.
func tryStep(tm *TileMap, a *Actor, d Direction, speed float64) bool {
	if d == DirNone {
		return false
	}
	dc, dr := d.Vec()
	oldX, oldY := a.X, a.Y
	a.X += float64(dc) * speed
	a.Y += float64(dr) * speed
	if bodyHitsWall(tm, a.X, a.Y) {
		a.X, a.Y = oldX, oldY
		return false
	}
	return true
}

// canMove is the predictive wall check: would a step in this direction
// succeed without moving the actor. DirNone trivially succeeds.
func canMove(tm *TileMap, a *Actor, d Direction, speed float64) bool {
	if d == DirNone {
		return true
	}
	dc, dr := d.Vec()
	return !bodyHitsWall(tm, a.X+float64(dc)*speed, a.Y+float64(dr)*speed)
}

// snapForTurn nudges the actor onto the turn axis when it is within
// turnSnapPx of the tile-center line for the desired direction. Returns
// whether the snap landed.
func snapForTurn(a *Actor, d Direction) bool {
	cx, cy := gridToWorld(a.Cell())
	switch d {
	case DirUp, DirDown:
		if math.Abs(a.X-cx) <= turnSnapPx {
			a.X = cx
			return true
		}
	case DirLeft, DirRight:
		if math.Abs(a.Y-cy) <= turnSnapPx {
			a.Y = cy
			return true
		}
	}
	return false
}

// resolveTurn runs the per-tick turn state machine: turn-assist snap for the
// buffered direction, then tile-center adoption, then a stop when the current
// direction has run into a dead end.
func resolveTurn(tm *TileMap, a *Actor, speed float64) {
	if a.WantDir != a.Dir && a.WantDir != DirNone {
		oldX, oldY := a.X, a.Y
		if snapForTurn(a, a.WantDir) {
			if canMove(tm, a, a.WantDir, speed) {
				a.Dir = a.WantDir
			} else {
				// Snap was speculative; the turn is still blocked.
				a.X, a.Y = oldX, oldY
			}
		}
	}

	if atTileCenter(a.X, a.Y) {
		if a.WantDir != a.Dir && canMove(tm, a, a.WantDir, speed) {
			a.Dir = a.WantDir
		}
		if !canMove(tm, a, a.Dir, speed) {
			a.Dir = DirNone
		}
	}
}

// handleWrap teleports an actor that has crossed the outer boundary by more
// than half a tile on a tunnel row to the opposite edge. Returns whether a
// wrap happened so the caller can suppress trail bookkeeping for one tick.
// The row is derived from Y alone because X is out of range mid-transit.
func handleWrap(tm *TileMap, a *Actor) bool {
	row := int(math.Floor(a.Y / tileSize))
	if !tm.IsTunnelRow(row) {
		return false
	}
	w := tm.PixelWidth()
	switch {
	case a.X < -tileSize/2:
		a.X = w + tileSize/2
		return true
	case a.X > w+tileSize/2:
		a.X = -tileSize / 2
		return true
	}
	return false
}
