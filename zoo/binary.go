package zoo

import (
	"encoding/binary"
	"os"

	"github.com/pkg/errors"

	"github.com/avolkov/go-life/model"
)

// headerSize is the two little-endian int32 dimensions of a .bgol file.
const headerSize = 8

// LoadBinary reads a .bgol file and parses it as a grid of cells. After the
// 8 byte width/height header the body packs 8 cells per byte, LSB first, so
// bit b of byte i holds the cell at flattened row-major index i*8+b. Padding
// bits past width*height are ignored.
func LoadBinary(path string) (*model.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrIO, "[LoadBinary] cannot open %s: %v", path, err)
	}
	if len(data) < headerSize {
		return nil, errors.Wrapf(ErrFormat, "[LoadBinary] %s is %d bytes, want at least the %d byte header", path, len(data), headerSize)
	}

	var (
		width  = int(int32(binary.LittleEndian.Uint32(data[0:4])))
		height = int(int32(binary.LittleEndian.Uint32(data[4:8])))
	)
	if width < 0 || height < 0 {
		return nil, errors.Wrapf(ErrFormat, "[LoadBinary] negative dimensions %dx%d in %s", width, height, path)
	}
	var (
		total = width * height
		body  = data[headerSize:]
	)
	if len(body) < (total+7)/8 {
		return nil, errors.Wrapf(ErrFormat, "[LoadBinary] body of %s is %d bytes, want %d for a %dx%d grid",
			path, len(body), (total+7)/8, width, height)
	}

	grid := model.NewGrid(width, height)
	for idx := 0; idx < total; idx++ {
		if (body[idx/8]>>(idx%8))&1 == 1 {
			_ = grid.Set(idx%width, idx/width, model.Alive)
		}
	}
	return grid, nil
}

// SaveBinary writes a grid to a .bgol file in the format parsed by
// LoadBinary, zero-padding the unused high bits of the final byte
func SaveBinary(path string, grid *model.Grid) error {
	var (
		width  = grid.GetWidth()
		height = grid.GetHeight()
		total  = width * height
	)
	payload := make([]byte, headerSize+(total+7)/8)
	binary.LittleEndian.PutUint32(payload[0:4], uint32(width))
	binary.LittleEndian.PutUint32(payload[4:8], uint32(height))

	body := payload[headerSize:]
	for idx := 0; idx < total; idx++ {
		cell, _ := grid.Get(idx%width, idx/width)
		if cell == model.Alive {
			body[idx/8] |= 1 << (idx % 8)
		}
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return errors.Wrapf(ErrIO, "[SaveBinary] cannot write %s: %v", path, err)
	}
	return nil
}
