package game

// defaultLevel is the built-in maze layout.
//
//	# = wall
//	. = small item
//	o = big item (power pellet)
//	P = player spawn
//	G = ghost spawn
//	space = empty corridor
//
// Rows 10 and 11 are open on both edges and form the wrap tunnels.
var defaultLevel = []string{
	"############################",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#o####.#####.##.#####.####o#",
	"#.####.#####.##.#####.####.#",
	"#..........................#",
	"#.####.##.########.##.####.#",
	"#.####.##.########.##.####.#",
	"#......##....##....##......#",
	"######.#####.##.#####.######",
	"      .#####.##.#####.      ",
	"      .#####.##.#####.      ",
	"######.##...GGGG...##.######",
	"######.##.###..###.##.######",
	"#............P.............#",
	"#.####.#####.##.#####.####.#",
	"#o..##.......##.......##..o#",
	"###.##.##.########.##.##.###",
	"#......##....##....##......#",
	"#.##########.##.##########.#",
	"#..........................#",
	"############################",
}

// DefaultLevel parses the built-in maze. The layout is a compile-time
// constant, so a parse failure is a programmer error.
func DefaultLevel() *TileMap {
	tm, err := ParseLevel(defaultLevel)
	if err != nil {
		panic("game: built-in level is invalid: " + err.Error())
	}
	return tm
}
