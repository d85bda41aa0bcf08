package game

import "fmt"

// TileKind identifies the static content of a cell in the level layout.
type TileKind uint8

const (
	TileFloor      TileKind = iota // open corridor
	TileWall                       // blocks movement
	TileSmallItem                  // regular dot
	TileBigItem                    // power pellet
	TilePlayerSpawn
	TileGhostSpawn
	tileKindCount // sentinel
)

// TileMap is the immutable walkability grid built once at level load.
// Item kinds record the static layout only; live item state belongs to the
// simulation so waves can rebuild it without touching the map.
type TileMap struct {
	Cols int
	Rows int

	kinds [][]TileKind

	// tunnelRows[r] is true when row r is open on both boundary columns,
	// enabling wraparound. Computed once at build time.
	tunnelRows []bool

	PlayerSpawn GridCell
	GhostSpawns []GridCell
}

// ParseLevel builds a TileMap from a fixed-width rune grid. Recognized
// symbols: '#' wall, '.' small item, 'o' big item, 'P' player spawn (exactly
// one), 'G' ghost spawn (zero or more), ' ' empty corridor.
func ParseLevel(lines []string) (*TileMap, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("level: empty layout")
	}
	cols := len(lines[0])
	tm := &TileMap{
		Cols:        cols,
		Rows:        len(lines),
		kinds:       make([][]TileKind, len(lines)),
		tunnelRows:  make([]bool, len(lines)),
		PlayerSpawn: GridCell{Col: -1, Row: -1},
	}

	for r, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("level: row %d has width %d, want %d", r, len(line), cols)
		}
		tm.kinds[r] = make([]TileKind, cols)
		for c, ch := range line {
			cell := GridCell{Col: c, Row: r}
			switch ch {
			case '#':
				tm.kinds[r][c] = TileWall
			case '.':
				tm.kinds[r][c] = TileSmallItem
			case 'o':
				tm.kinds[r][c] = TileBigItem
			case 'P':
				if tm.PlayerSpawn.Col >= 0 {
					return nil, fmt.Errorf("level: duplicate player spawn at (%d,%d)", c, r)
				}
				tm.kinds[r][c] = TilePlayerSpawn
				tm.PlayerSpawn = cell
			case 'G':
				tm.kinds[r][c] = TileGhostSpawn
				tm.GhostSpawns = append(tm.GhostSpawns, cell)
			case ' ':
				tm.kinds[r][c] = TileFloor
			default:
				return nil, fmt.Errorf("level: unknown symbol %q at (%d,%d)", ch, c, r)
			}
		}
	}
	if tm.PlayerSpawn.Col < 0 {
		return nil, fmt.Errorf("level: no player spawn")
	}

	for r := 0; r < tm.Rows; r++ {
		tm.tunnelRows[r] = tm.kinds[r][0] != TileWall && tm.kinds[r][cols-1] != TileWall
	}
	return tm, nil
}

// KindAt returns the static kind of a cell, or TileWall when out of bounds.
func (tm *TileMap) KindAt(cell GridCell) TileKind {
	if !tm.inBounds(cell) {
		return TileWall
	}
	return tm.kinds[cell.Row][cell.Col]
}

func (tm *TileMap) inBounds(cell GridCell) bool {
	return cell.Row >= 0 && cell.Row < tm.Rows && cell.Col >= 0 && cell.Col < tm.Cols
}

// IsWalkable reports whether a cell is inside the map and not a wall.
func (tm *TileMap) IsWalkable(cell GridCell) bool {
	return tm.inBounds(cell) && tm.kinds[cell.Row][cell.Col] != TileWall
}

// IsTunnelRow reports whether a row wraps at the left/right boundary.
func (tm *TileMap) IsTunnelRow(row int) bool {
	return row >= 0 && row < tm.Rows && tm.tunnelRows[row]
}

// WrapIfTunnel wraps out-of-range columns to the opposite edge on tunnel rows
// and returns other cells unchanged. Applied uniformly wherever neighbour
// cells are computed so edge behaviour never diverges.
func (tm *TileMap) WrapIfTunnel(cell GridCell) GridCell {
	if !tm.IsTunnelRow(cell.Row) {
		return cell
	}
	if cell.Col < 0 {
		cell.Col = tm.Cols - 1
	} else if cell.Col >= tm.Cols {
		cell.Col = 0
	}
	return cell
}

// Neighbor returns the wrap-adjusted cell one step away in a direction.
func (tm *TileMap) Neighbor(cell GridCell, d Direction) GridCell {
	dc, dr := d.Vec()
	return tm.WrapIfTunnel(GridCell{Col: cell.Col + dc, Row: cell.Row + dr})
}

// ValidDirections returns the outgoing directions from a cell whose
// destination, after tunnel wrap, is walkable.
func (tm *TileMap) ValidDirections(cell GridCell) []Direction {
	var out []Direction
	for _, d := range moveDirs {
		if tm.IsWalkable(tm.Neighbor(cell, d)) {
			out = append(out, d)
		}
	}
	return out
}

// IsIntersection reports whether a cell offers a genuine choice: more than
// two exits, or exactly two that are not opposites.
func (tm *TileMap) IsIntersection(cell GridCell) bool {
	dirs := tm.ValidDirections(cell)
	if len(dirs) > 2 {
		return true
	}
	return len(dirs) == 2 && dirs[0] != dirs[1].Opposite()
}

// CellAhead walks n cells forward in a direction, stopping early at the last
// walkable cell. Used by the ambush-style ghost targeting.
func (tm *TileMap) CellAhead(cell GridCell, d Direction, n int) GridCell {
	for i := 0; i < n; i++ {
		next := tm.Neighbor(cell, d)
		if !tm.IsWalkable(next) {
			return cell
		}
		cell = next
	}
	return cell
}

// PixelWidth is the playfield width in pixels.
func (tm *TileMap) PixelWidth() float64 { return float64(tm.Cols) * tileSize }

// PixelHeight is the playfield height in pixels.
func (tm *TileMap) PixelHeight() float64 { return float64(tm.Rows) * tileSize }
