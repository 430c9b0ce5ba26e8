package zoo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golife/pkg/grid"
)

// ErrFormat reports malformed persisted grid data.
var ErrFormat = errors.New("zoo: invalid file format")

// ReadASCII parses the text format: a "width height" header line followed by
// height rows of exactly width cells, '#' alive and ' ' dead, each row
// terminated by a newline.
func ReadASCII(r io.Reader) (*grid.Grid, error) {
	br := bufio.NewReader(r)
	line, err := br.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("%w: missing header", ErrFormat)
	}
	var width, height int
	if _, err := fmt.Sscanf(line, "%d %d", &width, &height); err != nil {
		return nil, fmt.Errorf("%w: bad header %q", ErrFormat, strings.TrimSuffix(line, "\n"))
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative size %dx%d", ErrFormat, width, height)
	}
	g, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}
	cells := g.Cells()
	for y := 0; y < height; y++ {
		row, err := br.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("%w: truncated at row %d", ErrFormat, y)
		}
		if len(row) != width+1 {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrFormat, y, len(row)-1, width)
		}
		for x := 0; x < width; x++ {
			switch row[x] {
			case '#':
				cells[y*width+x] = grid.Alive
			case ' ':
			default:
				return nil, fmt.Errorf("%w: invalid cell %q at (%d,%d)", ErrFormat, row[x], x, y)
			}
		}
	}
	return g, nil
}

// WriteASCII serializes the grid in the text format.
func WriteASCII(w io.Writer, g *grid.Grid) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", g.Width(), g.Height())
	cells := g.Cells()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if cells[y*g.Width()+x] == grid.Alive {
				bw.WriteByte('#')
			} else {
				bw.WriteByte(' ')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// LoadASCII reads a .gol file from disk.
func LoadASCII(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadASCII(f)
}

// SaveASCII writes a .gol file to disk.
func SaveASCII(path string, g *grid.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteASCII(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
