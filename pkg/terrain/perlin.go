package terrain

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/pkg/heightfield"
	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/pkg/noise"
)

// Perlin is a tile over a sampled height table, usually filled from a
// noise source. Contact queries interpolate the table bilinearly and the
// mesh uses the stored samples directly.
type Perlin struct {
	size    Size
	sampler *heightfield.Sampler
	normals NormalMode
	orient  Orientation
}

// PerlinOptions configures PerlinFromNoise.
type PerlinOptions struct {
	Size         Size
	Subdivisions int
	Frequency    float64 // noise-plane scale, zero means 1
	Amplitude    float64 // height scale, zero means 1
	Normals      NormalMode
	Orientation  Orientation
}

// NewPerlin wraps a sampler whose lattice starts at (0, 0). The footprint
// is the sampler's extent.
func NewPerlin(sampler *heightfield.Sampler, normals NormalMode, o Orientation) (*Perlin, error) {
	if sampler == nil {
		return nil, ErrNilSampler
	}
	b := sampler.Bounds()
	if b.MinX != 0 || b.MinY != 0 {
		return nil, fmt.Errorf("%w: starts at (%g, %g)", ErrSamplerOrigin, b.MinX, b.MinY)
	}
	size := Size{Width: b.MaxX, Depth: b.MaxY}
	if err := validateSize(size); err != nil {
		return nil, err
	}
	if err := o.validate(size); err != nil {
		return nil, err
	}
	if nx, ny := sampler.Dims(); o.Rotate.QuarterTurn() && nx != ny {
		return nil, fmt.Errorf("%w: %dx%d", ErrSamplerDims, nx, ny)
	}
	return &Perlin{size: size, sampler: sampler, normals: normals, orient: o}, nil
}

// PerlinFromNoise samples src on a (subdivisions+2)^2 lattice over [-1, 1]^2
// of the noise plane and spreads it evenly over opts.Size.
func PerlinFromNoise(src noise.Source, opts PerlinOptions) (*Perlin, error) {
	if opts.Subdivisions < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeSubdivisions, opts.Subdivisions)
	}
	if err := validateSize(opts.Size); err != nil {
		return nil, err
	}
	amplitude := opts.Amplitude
	if amplitude == 0 {
		amplitude = 1
	}
	n := opts.Subdivisions + 2
	pm := noise.BuildPlaneMap(src, n, n, noise.UnitBounds, noise.UnitBounds, opts.Frequency)
	xs := heightfield.Uniform(0, opts.Size.Width, n)
	ys := heightfield.Uniform(0, opts.Size.Depth, n)
	sampler, err := heightfield.New(xs, ys, pm.Scaled(amplitude))
	if err != nil {
		return nil, fmt.Errorf("terrain: sample noise: %w", err)
	}
	return NewPerlin(sampler, opts.Normals, opts.Orientation)
}

// Sampler returns the underlying height table.
func (p *Perlin) Sampler() *heightfield.Sampler { return p.sampler }

// Interference implements Tile. Points outside the sampled footprint never
// collide.
func (p *Perlin) Interference(pt r3.Vec) (Interference, bool) {
	x, y := p.orient.ToLogical(pt.X, pt.Y, p.size)
	h, ok := p.sampler.Height(x, y)
	if !ok {
		return Interference{}, false
	}
	n := up
	if p.normals == NormalGradient {
		dx, dy, _ := p.sampler.Gradient(x, y)
		n = gradientNormal(p.orient.GradientToTile(dx, dy))
	}
	return contact(pt, h, n)
}

// Mesh implements Tile. Vertices sit on the sample lattice; interior
// normals come from the forward edges, the last row and column face up.
func (p *Perlin) Mesh() *Mesh {
	nx, ny := p.sampler.Dims()
	if p.orient.Rotate.QuarterTurn() {
		nx, ny = ny, nx
	}

	pos := make([][][3]float32, nx)
	for i := range pos {
		pos[i] = make([][3]float32, ny)
		for j := range pos[i] {
			li, lj := p.orient.logicalIndex(i, j, nx, ny)
			x, y := p.orient.ToTile(p.sampler.X(li), p.sampler.Y(lj), p.size)
			pos[i][j] = [3]float32{float32(x), float32(y), float32(p.sampler.At(li, lj))}
		}
	}

	upArr := [3]float32{0, 0, 1}
	return BuildGridMesh(nx, ny, func(i, j int) GridVertex {
		n := upArr
		if i < nx-1 && j < ny-1 {
			n = edgeNormal(pos[i][j], pos[i+1][j], pos[i][j+1])
		}
		return GridVertex{Position: pos[i][j], Normal: n, UV: gridUV(i, j, nx, ny)}
	})
}

// Size implements Tile.
func (p *Perlin) Size() Size { return p.size }
