package terrain

import (
	"fmt"
	"reflect"
)

// Grid is a rectangular arrangement of tiles. Grid[i][j] sits after the
// tiles Grid[<i][j] along +X and after Grid[i][<j] along +Y.
type Grid [][]Tile

// Dims returns the number of rows (along X) and columns (along Y).
func (g Grid) Dims() (rows, cols int) {
	if len(g) == 0 {
		return 0, 0
	}
	return len(g), len(g[0])
}

// Len returns the number of tiles.
func (g Grid) Len() int {
	n := 0
	for _, row := range g {
		n += len(row)
	}
	return n
}

// Validate checks that the grid is non-empty and rectangular, holds no nil
// tiles, and that tiles share a width along each row and a depth along each
// column.
func (g Grid) Validate() error {
	rows, cols := g.Dims()
	if rows == 0 || cols == 0 {
		return ErrEmptyGrid
	}
	for i, row := range g {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d tiles, want %d", ErrMisalignedTiles, i, len(row), cols)
		}
		for j, t := range row {
			if isNil(t) {
				return fmt.Errorf("%w: at [%d][%d]", ErrNilTile, i, j)
			}
		}
	}
	for i, row := range g {
		w := row[0].Size().Width
		for j, t := range row {
			if t.Size().Width != w {
				return fmt.Errorf("%w: width of [%d][%d] is %g, row uses %g", ErrMisalignedTiles, i, j, t.Size().Width, w)
			}
		}
	}
	for j := 0; j < cols; j++ {
		d := g[0][j].Size().Depth
		for i := range g {
			if g[i][j].Size().Depth != d {
				return fmt.Errorf("%w: depth of [%d][%d] is %g, column uses %g", ErrMisalignedTiles, i, j, g[i][j].Size().Depth, d)
			}
		}
	}
	return nil
}

// isNil catches typed nil pointers stored in the Tile interface.
func isNil(t Tile) bool {
	if t == nil {
		return true
	}
	v := reflect.ValueOf(t)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
