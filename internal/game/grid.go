package game

import (
	"fmt"
	"math"
)

// Tile geometry. All world positions are pixel coordinates with y growing
// downward; grid cell (0,0) is the top-left tile.
const (
	tileSize  = 28  // pixel size of one grid tile
	centerEps = 1.2 // tile-center tolerance in pixels, independent of step speed
)

// GridCell identifies one tile by column and row. Equality is by value.
type GridCell struct {
	Col int
	Row int
}

func (c GridCell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Direction is a grid-locked movement direction.
type Direction uint8

const (
	DirNone  Direction = iota // stopped
	DirUp                     // -row
	DirDown                   // +row
	DirLeft                   // -col
	DirRight                  // +col
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "stop"
	}
}

// Vec returns the grid-space delta for one step in this direction.
func (d Direction) Vec() (dc, dr int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction (no-reverse rule, forced reversals).
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// moveDirs lists the four walkable directions in a fixed enumeration order.
var moveDirs = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// gridToWorld returns the pixel center of a cell. Exact inverse of
// worldToGrid for any in-bounds cell.
func gridToWorld(cell GridCell) (x, y float64) {
	return float64(cell.Col)*tileSize + tileSize/2, float64(cell.Row)*tileSize + tileSize/2
}

// worldToGrid returns the cell containing a pixel position (floor-based, so
// positions left of column 0 map to negative columns during tunnel transit).
func worldToGrid(x, y float64) GridCell {
	return GridCell{
		Col: int(math.Floor(x / tileSize)),
		Row: int(math.Floor(y / tileSize)),
	}
}

// atTileCenter reports whether a position is close enough to its cell center
// on both axes. This is the only gate for turning and AI re-decision, checked
// every tick because a fast actor can cross the exact center between ticks.
func atTileCenter(x, y float64) bool {
	cx, cy := gridToWorld(worldToGrid(x, y))
	return math.Abs(x-cx) < centerEps && math.Abs(y-cy) < centerEps
}

// manhattan is the grid taxicab distance, the AI pathing heuristic.
func manhattan(a, b GridCell) int {
	return absInt(a.Col-b.Col) + absInt(a.Row-b.Row)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
