package terrain

import (
	"fmt"
	gomath "math"
)

// Mirror reflects a tile across a vertical plane through its centre.
type Mirror uint8

// Mirror values. YZ flips X, XZ flips Y.
const (
	MirrorNone Mirror = iota
	MirrorYZ
	MirrorXZ
	MirrorBoth
)

// String returns the config name of the mirror.
func (m Mirror) String() string {
	switch m {
	case MirrorNone:
		return "none"
	case MirrorYZ:
		return "yz"
	case MirrorXZ:
		return "xz"
	case MirrorBoth:
		return "both"
	default:
		return fmt.Sprintf("Mirror(%d)", m)
	}
}

func (m Mirror) flips() (fx, fy bool) {
	return m == MirrorYZ || m == MirrorBoth, m == MirrorXZ || m == MirrorBoth
}

func (m Mirror) point(x, y, w, d float64) (float64, float64) {
	fx, fy := m.flips()
	if fx {
		x = w - x
	}
	if fy {
		y = d - y
	}
	return x, y
}

func (m Mirror) vector(x, y float64) (float64, float64) {
	fx, fy := m.flips()
	if fx {
		x = -x
	}
	if fy {
		y = -y
	}
	return x, y
}

// Rotate turns a tile counter-clockwise about +Z through its centre.
type Rotate uint8

// Rotate values.
const (
	RotateZero Rotate = iota
	RotateNinety
	RotateOneEighty
	RotateTwoSeventy
)

// String returns the angle in degrees.
func (r Rotate) String() string {
	switch r {
	case RotateZero:
		return "0"
	case RotateNinety:
		return "90"
	case RotateOneEighty:
		return "180"
	case RotateTwoSeventy:
		return "270"
	default:
		return fmt.Sprintf("Rotate(%d)", r)
	}
}

// QuarterTurn reports whether the rotation swaps the X and Y axes.
func (r Rotate) QuarterTurn() bool {
	return r == RotateNinety || r == RotateTwoSeventy
}

func (r Rotate) inverse() Rotate {
	return (4 - r) % 4
}

// point rotates (x, y) within a w x d footprint. Quarter turns assume w == d.
func (r Rotate) point(x, y, w, d float64) (float64, float64) {
	switch r {
	case RotateNinety:
		return w - y, x
	case RotateOneEighty:
		return w - x, d - y
	case RotateTwoSeventy:
		return y, w - x
	default:
		return x, y
	}
}

func (r Rotate) vector(x, y float64) (float64, float64) {
	switch r {
	case RotateNinety:
		return -y, x
	case RotateOneEighty:
		return -x, -y
	case RotateTwoSeventy:
		return y, -x
	default:
		return x, y
	}
}

// Orientation places a tile's logical shape in its footprint: rotate first,
// then mirror.
type Orientation struct {
	Mirror Mirror
	Rotate Rotate
}

// Oriented is shorthand for Orientation{Mirror: m, Rotate: r}.
func Oriented(m Mirror, r Rotate) Orientation {
	return Orientation{Mirror: m, Rotate: r}
}

// IsIdentity reports whether the orientation leaves the tile unchanged.
func (o Orientation) IsIdentity() bool {
	return o.Mirror == MirrorNone && o.Rotate == RotateZero
}

func (o Orientation) validate(size Size) error {
	if o.Mirror > MirrorBoth || o.Rotate > RotateTwoSeventy {
		return fmt.Errorf("terrain: invalid orientation %v", o)
	}
	if o.Rotate.QuarterTurn() && !size.IsSquare() {
		return fmt.Errorf("%w: %gx%g rotated %s", ErrNonSquareRotation, size.Width, size.Depth, o.Rotate)
	}
	return nil
}

// ToTile maps a logical point to the tile frame.
func (o Orientation) ToTile(x, y float64, size Size) (float64, float64) {
	x, y = o.Rotate.point(x, y, size.Width, size.Depth)
	return o.Mirror.point(x, y, size.Width, size.Depth)
}

// ToLogical maps a tile-frame point back to the logical frame.
func (o Orientation) ToLogical(x, y float64, size Size) (float64, float64) {
	x, y = o.Mirror.point(x, y, size.Width, size.Depth)
	return o.Rotate.inverse().point(x, y, size.Width, size.Depth)
}

// GradientToTile maps a logical gradient to the tile frame. The linear part
// of every orientation is orthogonal, so gradients transform like vectors.
func (o Orientation) GradientToTile(dx, dy float64) (float64, float64) {
	dx, dy = o.Rotate.vector(dx, dy)
	return o.Mirror.vector(dx, dy)
}

// logicalIndex maps a tile-frame lattice index to the logical lattice index
// on an nx x ny vertex grid.
func (o Orientation) logicalIndex(i, j, nx, ny int) (int, int) {
	x, y := o.ToLogical(float64(i), float64(j), Size{Width: float64(nx - 1), Depth: float64(ny - 1)})
	return int(gomath.Round(x)), int(gomath.Round(y))
}
