package zoo

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"golife/pkg/grid"
)

// maxDimension guards against allocating for a corrupt header.
const maxDimension = 1 << 20

// ReadBinary parses the packed format: a 4-byte big-endian width and height
// followed by ceil(width*height/8) bytes of row-major cells, one bit per
// cell, most significant bit first, 1 alive and 0 dead.
func ReadBinary(r io.Reader) (*grid.Grid, error) {
	var header [8]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("%w: truncated header", ErrFormat)
	}
	width := int(binary.BigEndian.Uint32(header[0:4]))
	height := int(binary.BigEndian.Uint32(header[4:8]))
	if width > maxDimension || height > maxDimension {
		return nil, fmt.Errorf("%w: unreasonable size %dx%d", ErrFormat, width, height)
	}
	g, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}
	total := width * height
	packed := make([]byte, (total+7)/8)
	if _, err := io.ReadFull(r, packed); err != nil {
		return nil, fmt.Errorf("%w: truncated cell data", ErrFormat)
	}
	cells := g.Cells()
	for i := 0; i < total; i++ {
		if (packed[i/8]>>(7-i%8))&1 == 1 {
			cells[i] = grid.Alive
		}
	}
	return g, nil
}

// WriteBinary serializes the grid in the packed format. Trailing bits of the
// final byte stay zero.
func WriteBinary(w io.Writer, g *grid.Grid) error {
	var header [8]byte
	binary.BigEndian.PutUint32(header[0:4], uint32(g.Width()))
	binary.BigEndian.PutUint32(header[4:8], uint32(g.Height()))
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	cells := g.Cells()
	packed := make([]byte, (len(cells)+7)/8)
	for i, c := range cells {
		if c == grid.Alive {
			packed[i/8] |= 1 << (7 - i%8)
		}
	}
	_, err := w.Write(packed)
	return err
}

// LoadBinary reads a .bgol file from disk.
func LoadBinary(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadBinary(f)
}

// SaveBinary writes a .bgol file to disk.
func SaveBinary(path string, g *grid.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteBinary(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
