package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/avolkov/go-life/rules"
)

// World runs Conway's Game of Life over two equally sized grids, writing
// each generation from the current buffer into the next and swapping them
type World struct {
	current *Grid
	next    *Grid
}

// NewWorld creates a world with the specified dimensions, all cells Dead
func NewWorld(width, height int) *World {
	return &World{
		current: NewGrid(width, height),
		next:    NewGrid(width, height),
	}
}

// NewSquareWorld creates a world with equal width and height
func NewSquareWorld(size int) *World {
	return NewWorld(size, size)
}

// NewWorldFromGrid creates a world whose current state is a copy of the
// given grid, so later changes to the argument do not leak into the world
func NewWorldFromGrid(initial *Grid) *World {
	return &World{
		current: initial.Clone(),
		next:    NewGrid(initial.GetWidth(), initial.GetHeight()),
	}
}

// GetState returns the current state grid without copying. The returned
// grid is a view; callers must not modify it.
func (w *World) GetState() *Grid {
	return w.current
}

// GetWidth returns the width of the world
func (w *World) GetWidth() int {
	return w.current.GetWidth()
}

// GetHeight returns the height of the world
func (w *World) GetHeight() int {
	return w.current.GetHeight()
}

// GetTotalCells returns the total number of cells in the world
func (w *World) GetTotalCells() int {
	return w.current.GetTotalCells()
}

// GetAliveCells returns the number of Alive cells in the current state
func (w *World) GetAliveCells() int {
	return w.current.GetAliveCells()
}

// GetDeadCells returns the number of Dead cells in the current state
func (w *World) GetDeadCells() int {
	return w.current.GetDeadCells()
}

// Resize resizes the current state grid, preserving its content within the
// kept region. The next state buffer is reallocated fresh.
func (w *World) Resize(newWidth, newHeight int) error {
	if err := w.current.Resize(newWidth, newHeight); err != nil {
		return err
	}
	w.next = NewGrid(newWidth, newHeight)
	return nil
}

// ResizeSquare resizes the world to equal width and height
func (w *World) ResizeSquare(size int) error {
	return w.Resize(size, size)
}

// wrap maps v onto [0,n) with a true mathematical modulo, so a negative
// offset wraps to the far edge
func wrap(v, n int) int {
	return (v%n + n) % n
}

// countAliveNeighbours counts Alive cells in the 3x3 neighbourhood centred
// on (x,y), excluding the centre. Non-toroidal counting treats coordinates
// outside the grid as Dead; toroidal counting wraps them to the far edge.
func (w *World) countAliveNeighbours(x, y int, toroidal bool) (count int) {
	var (
		width  = w.current.width
		height = w.current.height
	)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if toroidal {
				nx, ny = wrap(nx, width), wrap(ny, height)
			} else if !w.current.inBounds(nx, ny) {
				continue
			}
			if w.current.cells[w.current.index(nx, ny)] == Alive {
				count++
			}
		}
	}
	return
}

// Step advances the world by one generation, reading from the current grid
// and writing into the next, then swaps the two buffers in O(1). Rows are
// computed in parallel across the available CPUs.
func (w *World) Step(toroidal bool) {
	var (
		eg            errgroup.Group
		width         = w.current.width
		height        = w.current.height
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, height)
		)
		if startRow >= height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := 0; x < width; x++ {
					idx := w.current.index(x, y)
					alive := w.current.cells[idx] == Alive
					if rules.ApplyConwayRules(w.countAliveNeighbours(x, y, toroidal), alive) {
						w.next.cells[idx] = Alive
					} else {
						w.next.cells[idx] = Dead
					}
				}
			}
			return nil
		})
	}

	// Workers never fail; Wait only joins them before the buffer swap.
	_ = eg.Wait()

	w.current, w.next = w.next, w.current
}

// Advance steps the world forward the given number of generations in order
func (w *World) Advance(steps int, toroidal bool) {
	for i := 0; i < steps; i++ {
		w.Step(toroidal)
	}
}
