// Package layouts assembles named terrain grids from the tile variants in
// package terrain.
package layouts

import (
	"errors"
	"fmt"

	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/pkg/noise"
	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/pkg/surface"
	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/pkg/terrain"
)

// DefaultSubdivisions is the mesh density used by the fixed-signature
// layout functions.
const DefaultSubdivisions = 1

var (
	ErrUnknownLayout = errors.New("layouts: unknown layout")
	ErrNoHeights     = errors.New("layouts: steps needs at least one height")
)

// TableTop is a 2x3 block: a ramp up, a raised flat and a ramp down, twice
// side by side.
func TableTop(size, height float64) (terrain.Grid, error) {
	return tableTop(size, height, DefaultSubdivisions)
}

func tableTop(size, height float64, sub int) (terrain.Grid, error) {
	type slot struct {
		slope bool
		o     terrain.Orientation
	}
	plan := [2][3]slot{
		{
			{true, terrain.Oriented(terrain.MirrorNone, terrain.RotateNinety)},
			{false, terrain.Oriented(terrain.MirrorNone, terrain.RotateNinety)},
			{true, terrain.Oriented(terrain.MirrorYZ, terrain.RotateTwoSeventy)},
		},
		{
			{true, terrain.Oriented(terrain.MirrorYZ, terrain.RotateNinety)},
			{false, terrain.Oriented(terrain.MirrorNone, terrain.RotateTwoSeventy)},
			{true, terrain.Oriented(terrain.MirrorNone, terrain.RotateTwoSeventy)},
		},
	}

	grid := make(terrain.Grid, len(plan))
	for i, row := range plan {
		grid[i] = make([]terrain.Tile, len(row))
		for j, s := range row {
			var (
				t   terrain.Tile
				err error
			)
			if s.slope {
				t, err = terrain.NewStepSlope(size, height, sub, s.o)
			} else {
				t, err = terrain.NewStep(size, height, sub, s.o)
			}
			if err != nil {
				return nil, fmt.Errorf("table top [%d][%d]: %w", i, j, err)
			}
			grid[i][j] = t
		}
	}
	return grid, nil
}

// Steps builds one row per height: a ramp up to the height, a ramp back
// down and a flat landing. Rows run along +Y.
func Steps(size float64, heights []float64) (terrain.Grid, error) {
	return steps(size, heights, DefaultSubdivisions)
}

func steps(size float64, heights []float64, sub int) (terrain.Grid, error) {
	if len(heights) == 0 {
		return nil, ErrNoHeights
	}
	up := terrain.Oriented(terrain.MirrorNone, terrain.RotateNinety)
	down := terrain.Oriented(terrain.MirrorNone, terrain.RotateTwoSeventy)

	grid := make(terrain.Grid, 0, len(heights))
	for i, h := range heights {
		ascent, err := terrain.NewStepSlope(size, h, sub, up)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		descent, err := terrain.NewStepSlope(size, h, sub, down)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		landing, err := terrain.NewPlane(terrain.Square(size), sub, terrain.Orientation{})
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		grid = append(grid, []terrain.Tile{ascent, descent, landing})
	}
	return grid, nil
}

// Wave is a 3x3 block of function tiles carrying a cosine along X. The outer
// ring fades the wave to zero height and slope at the block edge, and every
// seam between tiles is continuous in height and slope.
func Wave(size, height, wavelength float64) (terrain.Grid, error) {
	return wave(size, height, wavelength, DefaultSubdivisions, terrain.NormalFixed)
}

func wave(size, height, wavelength float64, sub int, normals terrain.NormalMode) (terrain.Grid, error) {
	if !(wavelength > 0) {
		return nil, fmt.Errorf("layouts: wavelength must be positive, got %g", wavelength)
	}
	cos := surface.Cosine{Amplitude: height, Wavelength: wavelength, Axis: surface.AxisX}

	grid := make(terrain.Grid, 3)
	for i := range grid {
		grid[i] = make([]terrain.Tile, 3)
		for j := range grid[i] {
			var term surface.Term = surface.Shift{Base: cos, DX: float64(i) * size, DY: float64(j) * size}
			term = edgeFade(term, surface.AxisX, i, size)
			term = edgeFade(term, surface.AxisY, j, size)

			t, err := terrain.NewFunction(terrain.Square(size), sub, surface.New(term), normals, terrain.Orientation{})
			if err != nil {
				return nil, fmt.Errorf("wave [%d][%d]: %w", i, j, err)
			}
			grid[i][j] = t
		}
	}
	return grid, nil
}

// edgeFade fades term across the tile when it sits on the first or last
// index of a 3-tile span.
func edgeFade(term surface.Term, axis surface.Axis, idx int, size float64) surface.Term {
	switch idx {
	case 0:
		return surface.Fade{Base: term, Axis: axis, Length: size, Rising: true}
	case 2:
		return surface.Fade{Base: term, Axis: axis, Length: size}
	default:
		return term
	}
}

// PerlinPlane is a single noise tile. The seed comes from cfg, so equal
// inputs give bit-identical terrain.
func PerlinPlane(size float64, subdivisions int, cfg noise.Config) (terrain.Grid, error) {
	return perlinPlane(size, subdivisions, cfg, terrain.NormalFixed)
}

func perlinPlane(size float64, sub int, cfg noise.Config, normals terrain.NormalMode) (terrain.Grid, error) {
	src, err := noise.New(cfg)
	if err != nil {
		return nil, err
	}
	t, err := terrain.PerlinFromNoise(src, terrain.PerlinOptions{
		Size:         terrain.Square(size),
		Subdivisions: sub,
		Frequency:    cfg.Frequency,
		Amplitude:    cfg.Amplitude,
		Normals:      normals,
	})
	if err != nil {
		return nil, fmt.Errorf("perlin plane: %w", err)
	}
	return terrain.Grid{{t}}, nil
}

// Flat is a single plane tile.
func Flat(size float64, subdivisions int) (terrain.Grid, error) {
	p, err := terrain.NewPlane(terrain.Square(size), subdivisions, terrain.Orientation{})
	if err != nil {
		return nil, err
	}
	return terrain.Grid{{p}}, nil
}
