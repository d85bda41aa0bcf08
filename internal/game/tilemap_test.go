package game

import "testing"

// mustLevel parses a test layout or fails the test.
func mustLevel(t *testing.T, lines []string) *TileMap {
	t.Helper()
	tm, err := ParseLevel(lines)
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}
	return tm
}

func TestParseLevel_Default(t *testing.T) {
	tm := DefaultLevel()
	if tm.Cols != 28 || tm.Rows != 22 {
		t.Fatalf("default level is %dx%d, want 28x22", tm.Cols, tm.Rows)
	}
	if tm.PlayerSpawn != (GridCell{Col: 13, Row: 14}) {
		t.Fatalf("player spawn = %v", tm.PlayerSpawn)
	}
	if len(tm.GhostSpawns) != 4 {
		t.Fatalf("ghost spawns = %d, want 4", len(tm.GhostSpawns))
	}
	for _, spawn := range tm.GhostSpawns {
		if spawn.Row != 12 {
			t.Fatalf("ghost spawn %v not in the house row", spawn)
		}
	}
}

func TestParseLevel_Errors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
	}{
		{"empty", nil},
		{"ragged", []string{"###", "##"}},
		{"no player", []string{"###", "#.#", "###"}},
		{"two players", []string{"#####", "#P.P#", "#####"}},
		{"bad symbol", []string{"###", "#X#", "###"}},
	}
	for _, tc := range cases {
		if _, err := ParseLevel(tc.lines); err == nil {
			t.Errorf("%s: expected parse error", tc.name)
		}
	}
}

func TestTileMap_TunnelRows(t *testing.T) {
	tm := DefaultLevel()
	for r := 0; r < tm.Rows; r++ {
		want := r == 10 || r == 11
		if got := tm.IsTunnelRow(r); got != want {
			t.Errorf("row %d tunnel = %v, want %v", r, got, want)
		}
	}
}

func TestTileMap_WrapIfTunnel(t *testing.T) {
	tm := DefaultLevel()
	if got := tm.WrapIfTunnel(GridCell{Col: -1, Row: 10}); got != (GridCell{Col: 27, Row: 10}) {
		t.Fatalf("left wrap = %v", got)
	}
	if got := tm.WrapIfTunnel(GridCell{Col: 28, Row: 11}); got != (GridCell{Col: 0, Row: 11}) {
		t.Fatalf("right wrap = %v", got)
	}
	// Non-tunnel rows never wrap.
	if got := tm.WrapIfTunnel(GridCell{Col: -1, Row: 5}); got != (GridCell{Col: -1, Row: 5}) {
		t.Fatalf("non-tunnel wrap = %v", got)
	}
}

func TestTileMap_ValidDirectionsNeverEnterWalls(t *testing.T) {
	tm := DefaultLevel()
	for r := 0; r < tm.Rows; r++ {
		for c := 0; c < tm.Cols; c++ {
			cell := GridCell{Col: c, Row: r}
			if !tm.IsWalkable(cell) {
				continue
			}
			for _, d := range tm.ValidDirections(cell) {
				next := tm.Neighbor(cell, d)
				if !tm.inBounds(next) {
					t.Fatalf("dir %v from %v leaves the map", d, cell)
				}
				if tm.KindAt(next) == TileWall {
					t.Fatalf("dir %v from %v enters a wall at %v", d, cell, next)
				}
			}
		}
	}
}

func TestTileMap_IsIntersection(t *testing.T) {
	tm := mustLevel(t, []string{
		"#####",
		"##.##",
		"#P..#",
		"##.##",
		"#####",
	})
	if !tm.IsIntersection(GridCell{Col: 2, Row: 2}) {
		t.Fatal("4-way cross should be an intersection")
	}
	// Straight corridor cell: two opposite exits only.
	if tm.IsIntersection(GridCell{Col: 1, Row: 2}) {
		t.Fatal("corridor end should not be an intersection")
	}
	// Corner: two non-opposite exits.
	corner := mustLevel(t, []string{
		"####",
		"#P.#",
		"##.#",
		"####",
	})
	if !corner.IsIntersection(GridCell{Col: 2, Row: 1}) {
		t.Fatal("corner should be an intersection")
	}
}

func TestTileMap_CellAhead(t *testing.T) {
	tm := mustLevel(t, []string{
		"######",
		"#P...#",
		"######",
	})
	start := GridCell{Col: 1, Row: 1}
	if got := tm.CellAhead(start, DirRight, 2); got != (GridCell{Col: 3, Row: 1}) {
		t.Fatalf("2 ahead = %v", got)
	}
	// Stops early at the wall.
	if got := tm.CellAhead(start, DirRight, 10); got != (GridCell{Col: 4, Row: 1}) {
		t.Fatalf("ahead through wall = %v", got)
	}
	if got := tm.CellAhead(start, DirUp, 3); got != start {
		t.Fatalf("blocked ahead = %v, want unchanged", got)
	}
}

func TestTileMap_CellAheadWrapsTunnels(t *testing.T) {
	tm := mustLevel(t, []string{
		"#####",
		".P...",
		"#####",
	})
	start := GridCell{Col: 1, Row: 1}
	// Walking 4 right from col 1 crosses the right edge and wraps to col 0.
	if got := tm.CellAhead(start, DirRight, 4); got != (GridCell{Col: 0, Row: 1}) {
		t.Fatalf("wrapped ahead = %v", got)
	}
}
