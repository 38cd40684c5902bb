package terrain

import "gonum.org/v1/gonum/spatial/r3"

// Plane is flat ground at height zero.
type Plane struct {
	analytic
}

// NewPlane returns a flat tile. Subdivisions controls mesh density only.
func NewPlane(size Size, subdivisions int, o Orientation) (*Plane, error) {
	a, err := newAnalytic(size, subdivisions, o, level(0))
	if err != nil {
		return nil, err
	}
	return &Plane{analytic: a}, nil
}

// Interference implements Tile. Points below z=0 collide.
func (p *Plane) Interference(pt r3.Vec) (Interference, bool) {
	return contact(pt, 0, up)
}

// Mesh implements Tile.
func (p *Plane) Mesh() *Mesh { return p.mesh() }

// Size implements Tile.
func (p *Plane) Size() Size { return p.size }
