// Package terrain provides terrain tiles: fixed-footprint surface patches
// that answer contact queries and export a triangle mesh of the same surface.
package terrain

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// Construction errors.
var (
	ErrNegativeSubdivisions = errors.New("terrain: subdivisions must not be negative")
	ErrInvalidSize          = errors.New("terrain: tile size must be positive and finite")
	ErrNonSquareRotation    = errors.New("terrain: quarter-turn rotation needs a square tile")
	ErrNilSampler           = errors.New("terrain: nil height sampler")
	ErrSamplerOrigin        = errors.New("terrain: height sampler must start at the tile origin")
	ErrSamplerDims          = errors.New("terrain: quarter-turn rotation needs a square sample lattice")
	ErrEmptyGrid            = errors.New("terrain: empty tile grid")
	ErrNilTile              = errors.New("terrain: nil tile in grid")
	ErrMisalignedTiles      = errors.New("terrain: tile sizes do not line up")
)

// Size is a tile footprint in world units.
type Size struct {
	Width float64 `yaml:"width" json:"width"` // along X
	Depth float64 `yaml:"depth" json:"depth"` // along Y
}

// Square returns a size x size footprint.
func Square(size float64) Size {
	return Size{Width: size, Depth: size}
}

// IsSquare reports whether the footprint is square.
func (s Size) IsSquare() bool {
	return s.Width == s.Depth
}

// Interference describes a point penetrating a tile surface.
type Interference struct {
	Magnitude float64 // penetration depth, >= 0
	Position  r3.Vec  // surface point directly above the query point
	Normal    r3.Vec  // unit outward surface normal
}

// NormalMode selects how sloped tiles report contact normals.
type NormalMode uint8

const (
	// NormalFixed always reports +Z. This is the long-standing behaviour of
	// function and noise tiles and the zero value.
	NormalFixed NormalMode = iota
	// NormalGradient derives the normal from the local surface gradient.
	NormalGradient
)

// String returns the config name of the mode.
func (m NormalMode) String() string {
	if m == NormalGradient {
		return "gradient"
	}
	return "fixed"
}

// ParseNormalMode parses "fixed" or "gradient"; anything else is fixed.
func ParseNormalMode(s string) NormalMode {
	if s == "gradient" {
		return NormalGradient
	}
	return NormalFixed
}

var up = r3.Vec{Z: 1}

// normal returns the contact normal for a surface with gradient (dx, dy).
func (m NormalMode) normal(dx, dy float64) r3.Vec {
	if m == NormalFixed {
		return up
	}
	return gradientNormal(dx, dy)
}

func gradientNormal(dx, dy float64) r3.Vec {
	return r3.Unit(r3.Vec{X: -dx, Y: -dy, Z: 1})
}

// contact builds the interference of p against a surface of height h.
func contact(p r3.Vec, h float64, n r3.Vec) (Interference, bool) {
	if !(p.Z < h) {
		return Interference{}, false
	}
	return Interference{
		Magnitude: h - p.Z,
		Position:  r3.Vec{X: p.X, Y: p.Y, Z: h},
		Normal:    n,
	}, true
}

// Tile is a terrain patch. Tiles are immutable after construction, so
// Interference may be called from any number of goroutines.
type Tile interface {
	// Interference tests a point given in the tile's local frame. The second
	// result is false when the point is not below the surface or lies outside
	// the surface's defined domain.
	Interference(p r3.Vec) (Interference, bool)
	// Mesh returns the triangulated surface in the tile's local frame.
	Mesh() *Mesh
	// Size returns the footprint.
	Size() Size
}
