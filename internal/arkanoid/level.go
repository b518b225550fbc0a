package arkanoid

import "math/rand"

// BrickSpec describes one cell of a layout grid before it is placed on
// the playfield. HP == 0 means empty space.
type BrickSpec struct {
	HP     int
	Points int
}

// Layout is an immutable brick grid definition for one level. The Game
// instantiates positioned Bricks from it at level load; layouts are never
// mutated during play.
type Layout struct {
	ID     string
	Name   string
	Width  int // columns
	Height int // rows
	Cells  [][]BrickSpec
}

// CountBricks returns the number of destructible bricks in the layout.
func (l *Layout) CountBricks() int {
	count := 0
	for _, row := range l.Cells {
		for _, c := range row {
			if c.HP > 0 {
				count++
			}
		}
	}
	return count
}

// ParseLayout creates a Layout from an ASCII map.
// Characters:
//
//	'#'       normal brick, 1 HP, 10 points
//	'1'-'9'   normal brick, 1 HP, 10 * digit points
//	'H'/'h'   hard brick, 2 HP, 20 points
//	'.'       empty
//
// Any other character counts as empty. Short lines are padded with empty
// cells to the widest line.
func ParseLayout(id, name string, lines []string) *Layout {
	maxWidth := 0
	for _, line := range lines {
		if len(line) > maxWidth {
			maxWidth = len(line)
		}
	}

	layout := &Layout{
		ID:     id,
		Name:   name,
		Width:  maxWidth,
		Height: len(lines),
		Cells:  make([][]BrickSpec, len(lines)),
	}

	for row, line := range lines {
		layout.Cells[row] = make([]BrickSpec, maxWidth)
		for col := range maxWidth {
			var ch byte = '.'
			if col < len(line) {
				ch = line[col]
			}

			switch {
			case ch == '#':
				layout.Cells[row][col] = BrickSpec{HP: 1, Points: 10}
			case ch >= '1' && ch <= '9':
				layout.Cells[row][col] = BrickSpec{HP: 1, Points: int(ch-'0') * 10}
			case ch == 'H' || ch == 'h':
				layout.Cells[row][col] = BrickSpec{HP: 2, Points: 20}
			}
		}
	}

	return layout
}

// ScatterLayout generates a layout with count bricks placed at random
// grid cells, seeded for determinism. Mirrors the classic random brick
// placement of the original arcade boards.
func ScatterLayout(seed int64, width, height, count int) *Layout {
	if count > width*height {
		count = width * height
	}

	rng := rand.New(rand.NewSource(seed))
	coords := rng.Perm(width * height)[:count]

	layout := &Layout{
		ID:     "scatter",
		Name:   "Scatter",
		Width:  width,
		Height: height,
		Cells:  make([][]BrickSpec, height),
	}
	for row := range layout.Cells {
		layout.Cells[row] = make([]BrickSpec, width)
	}
	for _, c := range coords {
		layout.Cells[c/width][c%width] = BrickSpec{HP: 1, Points: 10}
	}
	return layout
}

// BuiltinLayouts returns the built-in campaign levels.
func BuiltinLayouts() []*Layout {
	return []*Layout{
		ParseLayout("classic", "Classic", []string{
			"####################",
			"####################",
			"####################",
			"####################",
			"####################",
		}),

		ParseLayout("pyramid", "Pyramid", []string{
			"........####........",
			"......########......",
			"....############....",
			"..################..",
			"####################",
		}),

		ParseLayout("checker", "Checkerboard", []string{
			"#.#.#.#.#.#.#.#.#.#.",
			".#.#.#.#.#.#.#.#.#.#",
			"#.#.#.#.#.#.#.#.#.#.",
			".#.#.#.#.#.#.#.#.#.#",
			"#.#.#.#.#.#.#.#.#.#.",
			".#.#.#.#.#.#.#.#.#.#",
		}),

		ParseLayout("diamond", "Diamond", []string{
			".........22.........",
			"........2222........",
			".......222222.......",
			"......22222222......",
			".....2222222222.....",
			"......22222222......",
			".......222222.......",
			"........2222........",
			".........22.........",
		}),

		ParseLayout("fortress", "Fortress", []string{
			"HHHHHHHHHHHHHHHHHHHH",
			"H..................H",
			"H.################.H",
			"H.################.H",
			"H.################.H",
			"H..................H",
			"HHHHHHHHHHHHHHHHHHHH",
		}),

		ParseLayout("striped", "Striped", []string{
			"33333333333333333333",
			"....................",
			"22222222222222222222",
			"....................",
			"####################",
			"....................",
			"####################",
		}),

		ParseLayout("invaders", "Invaders", []string{
			"..#..........#......",
			".###........###.....",
			"#####......#####....",
			"#.#.#......#.#.#....",
			"#####......#####....",
			"....................",
			"..#..........#......",
			".###........###.....",
			"#####......#####....",
			"#.#.#......#.#.#....",
			"#####......#####....",
		}),

		ParseLayout("boss", "Final Boss", []string{
			"HHHHHHHHHHHHHHHHHHHH",
			"H##################H",
			"H##################H",
			"H##################H",
			"H##################H",
			"H##################H",
			"HHHHHHHHHHHHHHHHHHHH",
		}),
	}
}

