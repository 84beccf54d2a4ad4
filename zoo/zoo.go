// Package zoo constructs Grid objects containing well known Game of Life
// creatures and loads and saves grids in the ascii .gol and binary .bgol
// file formats.
package zoo

import "github.com/pkg/errors"

var (
	// ErrFormat signals a structurally malformed .gol or .bgol file.
	ErrFormat = errors.New("malformed life file")
	// ErrIO signals a file that cannot be opened for reading or writing.
	ErrIO = errors.New("file i/o failure")
)
