package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
)

var (
	// ErrOutOfBounds signals a coordinate outside the grid extent.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidArgument signals a negative or inconsistent size, crop window, or merge offset.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Cell is the state of a single grid position, Dead or Alive.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// Grid represents the game board as a dense row-major cell buffer
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates a new grid with the specified dimensions, all cells Dead
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// NewSquareGrid creates a new grid with equal width and height
func NewSquareGrid(size int) *Grid {
	return NewGrid(size, size)
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// GetTotalCells returns the total number of cells in the grid
func (g *Grid) GetTotalCells() int {
	return g.width * g.height
}

// GetAliveCells returns the number of Alive cells
func (g *Grid) GetAliveCells() (count int) {
	for _, cell := range g.cells {
		if cell == Alive {
			count++
		}
	}
	return
}

// GetDeadCells returns the number of Dead cells
func (g *Grid) GetDeadCells() int {
	return g.GetTotalCells() - g.GetAliveCells()
}

// index returns the flat row-major offset of a coordinate
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// inBounds reports whether the coordinate lies within the grid extent
func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the state of the cell at the given coordinate
func (g *Grid) Get(x, y int) (Cell, error) {
	if !g.inBounds(x, y) {
		return Dead, errors.Wrapf(ErrOutOfBounds, "[Get] cell (%d,%d) outside %dx%d grid", x, y, g.width, g.height)
	}
	return g.cells[g.index(x, y)], nil
}

// Set overwrites the cell at the given coordinate
func (g *Grid) Set(x, y int, value Cell) error {
	if !g.inBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "[Set] cell (%d,%d) outside %dx%d grid", x, y, g.width, g.height)
	}
	g.cells[g.index(x, y)] = value
	return nil
}

// at returns a mutable reference to the cell at the given coordinate,
// applying the same bounds check as Get and Set
func (g *Grid) at(x, y int) (*Cell, error) {
	if !g.inBounds(x, y) {
		return nil, errors.Wrapf(ErrOutOfBounds, "[at] cell (%d,%d) outside %dx%d grid", x, y, g.width, g.height)
	}
	return &g.cells[g.index(x, y)], nil
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	clone := &Grid{
		width:  g.width,
		height: g.height,
		cells:  make([]Cell, len(g.cells)),
	}
	copy(clone.cells, g.cells)
	return clone
}

// Equal reports whether both grids have the same dimensions and cell values
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, cell := range g.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}

// Clear resets every cell to Dead
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Dead
	}
}

// Resize changes the grid dimensions, preserving the overlapping region
// cell-for-cell and padding newly exposed cells with Dead
func (g *Grid) Resize(newWidth, newHeight int) error {
	if newWidth < 0 || newHeight < 0 {
		return errors.Wrapf(ErrInvalidArgument, "[Resize] negative dimensions %dx%d", newWidth, newHeight)
	}
	resized := make([]Cell, newWidth*newHeight)
	keptWidth := min(g.width, newWidth)
	keptHeight := min(g.height, newHeight)
	for y := 0; y < keptHeight; y++ {
		for x := 0; x < keptWidth; x++ {
			resized[y*newWidth+x] = g.cells[g.index(x, y)]
		}
	}
	g.width = newWidth
	g.height = newHeight
	g.cells = resized
	return nil
}

// ResizeSquare resizes the grid to equal width and height
func (g *Grid) ResizeSquare(size int) error {
	return g.Resize(size, size)
}

// Crop returns a new grid containing the cells in the half-open window
// [x0,x1) x [y0,y1), with the origin shifted to (0,0). The receiver is
// left unmodified.
func (g *Grid) Crop(x0, y0, x1, y1 int) (*Grid, error) {
	if x0 < 0 || x0 > g.width || x1 < 0 || x1 > g.width ||
		y0 < 0 || y0 > g.height || y1 < 0 || y1 > g.height {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"[Crop] window (%d,%d)-(%d,%d) outside %dx%d grid", x0, y0, x1, y1, g.width, g.height)
	}
	if x1 < x0 || y1 < y0 {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"[Crop] window (%d,%d)-(%d,%d) has negative size", x0, y0, x1, y1)
	}
	cropped := NewGrid(x1-x0, y1-y0)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			cropped.cells[cropped.index(x-x0, y-y0)] = g.cells[g.index(x, y)]
		}
	}
	return cropped, nil
}

// Merge overlays the other grid onto this one at offset (x0,y0). With
// aliveOnly false every covered cell is copied; with aliveOnly true only
// Dead cells are promoted to Alive, so an Alive cell never regresses to Dead.
func (g *Grid) Merge(other *Grid, x0, y0 int, aliveOnly bool) error {
	if x0 < 0 || y0 < 0 || x0 > g.width || y0 > g.height {
		return errors.Wrapf(ErrInvalidArgument, "[Merge] offset (%d,%d) outside %dx%d grid", x0, y0, g.width, g.height)
	}
	if x0+other.width > g.width || y0+other.height > g.height {
		return errors.Wrapf(ErrInvalidArgument,
			"[Merge] %dx%d grid at offset (%d,%d) does not fit within %dx%d grid",
			other.width, other.height, x0, y0, g.width, g.height)
	}
	for y := 0; y < other.height; y++ {
		for x := 0; x < other.width; x++ {
			target, err := g.at(x0+x, y0+y)
			if err != nil {
				return err
			}
			value := other.cells[other.index(x, y)]
			if aliveOnly {
				if value == Alive {
					*target = Alive
				}
			} else {
				*target = value
			}
		}
	}
	return nil
}

// Rotate returns a new grid rotated by rotation*90 degrees, clockwise for
// positive values and counter-clockwise for negative ones. The rotation is
// normalized modulo 4 so execution time is independent of its magnitude.
func (g *Grid) Rotate(rotation int) *Grid {
	switch (rotation%4 + 4) % 4 {
	case 1: // 90 degrees clockwise, dimensions swap
		rotated := NewGrid(g.height, g.width)
		for y := 0; y < rotated.height; y++ {
			for x := 0; x < rotated.width; x++ {
				rotated.cells[rotated.index(x, y)] = g.cells[g.index(y, g.height-1-x)]
			}
		}
		return rotated
	case 2: // 180 degrees, same dimensions
		rotated := NewGrid(g.width, g.height)
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				rotated.cells[rotated.index(x, y)] = g.cells[g.index(g.width-1-x, g.height-1-y)]
			}
		}
		return rotated
	case 3: // 90 degrees counter-clockwise, dimensions swap
		rotated := NewGrid(g.height, g.width)
		for y := 0; y < rotated.height; y++ {
			for x := 0; x < rotated.width; x++ {
				rotated.cells[rotated.index(x, y)] = g.cells[g.index(g.width-1-y, x)]
			}
		}
		return rotated
	default:
		return g.Clone()
	}
}

// GetHash returns an MD5 hash of the current grid state
func (g *Grid) GetHash() string {
	h := md5.New()
	for _, cell := range g.cells {
		h.Write([]byte{byte(cell)})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Randomize fills the grid with random living cells
func (g *Grid) Randomize(density float64) {
	for i := range g.cells {
		if rand.Float64() < density {
			g.cells[i] = Alive
		} else {
			g.cells[i] = Dead
		}
	}
}
