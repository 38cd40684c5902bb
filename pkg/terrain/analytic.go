package terrain

import (
	"fmt"
	gomath "math"

	"gonum.org/v1/gonum/spatial/r3"
)

// field is a height function in a tile's logical frame.
type field interface {
	Height(x, y float64) float64
	Gradient(x, y float64) (dx, dy float64)
}

// analytic evaluates a logical field through an orientation. Plane, Step,
// StepSlope and Function tiles are all built on it, so their contact
// queries and meshes share one height definition.
type analytic struct {
	size         Size
	subdivisions int
	orient       Orientation
	field        field
}

func newAnalytic(size Size, subdivisions int, o Orientation, f field) (analytic, error) {
	if err := validateSize(size); err != nil {
		return analytic{}, err
	}
	if subdivisions < 0 {
		return analytic{}, fmt.Errorf("%w: got %d", ErrNegativeSubdivisions, subdivisions)
	}
	if err := o.validate(size); err != nil {
		return analytic{}, err
	}
	return analytic{size: size, subdivisions: subdivisions, orient: o, field: f}, nil
}

func validateSize(s Size) error {
	ok := func(v float64) bool { return v > 0 && !gomath.IsInf(v, 0) }
	if !ok(s.Width) || !ok(s.Depth) {
		return fmt.Errorf("%w: %gx%g", ErrInvalidSize, s.Width, s.Depth)
	}
	return nil
}

// evaler is a field that computes height and gradient in one pass.
type evaler interface {
	Eval(x, y float64) (h, dx, dy float64)
}

func evalField(f field, x, y float64) (h, dx, dy float64) {
	if e, ok := f.(evaler); ok {
		return e.Eval(x, y)
	}
	dx, dy = f.Gradient(x, y)
	return f.Height(x, y), dx, dy
}

// eval returns height and tile-frame gradient at a tile-frame point.
func (a analytic) eval(x, y float64) (h, dx, dy float64) {
	if a.orient.IsIdentity() {
		return evalField(a.field, x, y)
	}
	lx, ly := a.orient.ToLogical(x, y, a.size)
	h, gx, gy := evalField(a.field, lx, ly)
	dx, dy = a.orient.GradientToTile(gx, gy)
	return h, dx, dy
}

func (a analytic) interference(p r3.Vec, mode NormalMode) (Interference, bool) {
	h, dx, dy := a.eval(p.X, p.Y)
	return contact(p, h, mode.normal(dx, dy))
}

// mesh samples the field on a (subdivisions+2)^2 lattice over the footprint.
func (a analytic) mesh() *Mesh {
	n := a.subdivisions + 2
	return BuildGridMesh(n, n, func(i, j int) GridVertex {
		x := a.size.Width * float64(i) / float64(n-1)
		y := a.size.Depth * float64(j) / float64(n-1)
		h, dx, dy := a.eval(x, y)
		return GridVertex{
			Position: [3]float32{float32(x), float32(y), float32(h)},
			Normal:   gradientMeshNormal(dx, dy),
			UV:       gridUV(i, j, n, n),
		}
	})
}

// level is a flat field at a fixed height.
type level float64

func (l level) Height(_, _ float64) float64              { return float64(l) }
func (l level) Gradient(_, _ float64) (float64, float64) { return 0, 0 }

// ramp rises linearly from 0 at x=0 to height at x=length.
type ramp struct {
	height, length float64
}

func (r ramp) Height(x, _ float64) float64              { return r.height * x / r.length }
func (r ramp) Gradient(_, _ float64) (float64, float64) { return r.height / r.length, 0 }
