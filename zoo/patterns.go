package zoo

import "github.com/avolkov/go-life/model"

// fromRows builds a bounding-box sized grid from literal pattern rows,
// reading '#' as Alive and anything else as Dead
func fromRows(rows []string) *model.Grid {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	g := model.NewGrid(width, height)
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] == '#' {
				_ = g.Set(x, y, model.Alive)
			}
		}
	}
	return g
}

// Glider returns a 3x3 grid containing a glider.
// https://www.conwaylife.com/wiki/Glider
func Glider() *model.Grid {
	return fromRows([]string{
		" # ",
		"  #",
		"###",
	})
}

// RPentomino returns a 3x3 grid containing an r-pentomino.
// https://www.conwaylife.com/wiki/R-pentomino
func RPentomino() *model.Grid {
	return fromRows([]string{
		" ##",
		"## ",
		" # ",
	})
}

// LightWeightSpaceship returns a 5x4 grid containing a lightweight spaceship.
// https://www.conwaylife.com/wiki/Lightweight_spaceship
func LightWeightSpaceship() *model.Grid {
	return fromRows([]string{
		" #  #",
		"#    ",
		"#   #",
		"#### ",
	})
}
