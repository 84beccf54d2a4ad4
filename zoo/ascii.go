package zoo

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/avolkov/go-life/model"
)

// LoadAscii reads a .gol file and parses it as a grid of cells. The file
// holds a "<width> <height>" header line followed by exactly height rows of
// exactly width characters from {' ', '#'}, each terminated by a newline.
func LoadAscii(path string) (*model.Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrIO, "[LoadAscii] cannot open %s: %v", path, err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	header, err := reader.ReadString('\n')
	if err != nil {
		return nil, errors.Wrapf(ErrFormat, "[LoadAscii] missing header line in %s", path)
	}

	var width, height int
	if _, err = fmt.Sscanf(header, "%d %d", &width, &height); err != nil {
		return nil, errors.Wrapf(ErrFormat, "[LoadAscii] bad header %q in %s", strings.TrimSuffix(header, "\n"), path)
	}
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrFormat, "[LoadAscii] non-positive dimensions %dx%d in %s", width, height, path)
	}

	grid := model.NewGrid(width, height)
	for y := 0; y < height; y++ {
		row, err := reader.ReadString('\n')
		if err != nil {
			return nil, errors.Wrapf(ErrFormat, "[LoadAscii] row %d of %s missing its newline", y, path)
		}
		row = strings.TrimSuffix(row, "\n")
		if len(row) != width {
			return nil, errors.Wrapf(ErrFormat, "[LoadAscii] row %d of %s is %d characters, want %d", y, path, len(row), width)
		}
		for x := 0; x < width; x++ {
			switch row[x] {
			case '#':
				_ = grid.Set(x, y, model.Alive)
			case ' ':
				// Dead, already the default
			default:
				return nil, errors.Wrapf(ErrFormat, "[LoadAscii] illegal character %q at (%d,%d) in %s", row[x], x, y, path)
			}
		}
	}
	return grid, nil
}

// SaveAscii writes a grid to a .gol file in the format parsed by LoadAscii
func SaveAscii(path string, grid *model.Grid) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(ErrIO, "[SaveAscii] cannot open %s for writing: %v", path, err)
	}
	defer file.Close()

	var (
		writer = bufio.NewWriter(file)
		width  = grid.GetWidth()
		height = grid.GetHeight()
	)
	fmt.Fprintf(writer, "%d %d\n", width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell, _ := grid.Get(x, y)
			if cell == model.Alive {
				writer.WriteByte('#')
			} else {
				writer.WriteByte(' ')
			}
		}
		writer.WriteByte('\n')
	}
	if err = writer.Flush(); err != nil {
		return errors.Wrapf(ErrIO, "[SaveAscii] write to %s failed: %v", path, err)
	}
	return nil
}
