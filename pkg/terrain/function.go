package terrain

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/pkg/surface"
)

// Function is a tile whose height is an analytic surface.
type Function struct {
	analytic
	surface surface.Surface
	normals NormalMode
}

// NewFunction returns a tile over s. normals selects the contact normal; the
// mesh always uses the analytic gradient.
func NewFunction(size Size, subdivisions int, s surface.Surface, normals NormalMode, o Orientation) (*Function, error) {
	a, err := newAnalytic(size, subdivisions, o, s)
	if err != nil {
		return nil, err
	}
	return &Function{analytic: a, surface: s, normals: normals}, nil
}

// Surface returns the tile's height function.
func (f *Function) Surface() surface.Surface { return f.surface }

// Interference implements Tile.
func (f *Function) Interference(p r3.Vec) (Interference, bool) {
	return f.interference(p, f.normals)
}

// Mesh implements Tile.
func (f *Function) Mesh() *Mesh { return f.mesh() }

// Size implements Tile.
func (f *Function) Size() Size { return f.size }
