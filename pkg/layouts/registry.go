package layouts

import (
	"fmt"
	"sort"

	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/pkg/noise"
	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/pkg/terrain"
)

// Layout names accepted by Build.
const (
	LayoutFlat     = "flat"
	LayoutTableTop = "table_top"
	LayoutSteps    = "steps"
	LayoutWave     = "wave"
	LayoutPerlin   = "perlin"
)

// Params describes a layout by name plus the parameters it reads. Fields a
// layout does not use are ignored.
type Params struct {
	Layout       string
	Size         float64
	Height       float64
	Heights      []float64
	Wavelength   float64
	Subdivisions int
	Normals      terrain.NormalMode
	Noise        noise.Config
}

type builder func(Params) (terrain.Grid, error)

var registry = map[string]builder{
	LayoutFlat: func(s Params) (terrain.Grid, error) {
		return Flat(s.Size, s.Subdivisions)
	},
	LayoutTableTop: func(s Params) (terrain.Grid, error) {
		return tableTop(s.Size, s.Height, s.Subdivisions)
	},
	LayoutSteps: func(s Params) (terrain.Grid, error) {
		return steps(s.Size, s.Heights, s.Subdivisions)
	},
	LayoutWave: func(s Params) (terrain.Grid, error) {
		return wave(s.Size, s.Height, s.Wavelength, s.Subdivisions, s.Normals)
	},
	LayoutPerlin: func(s Params) (terrain.Grid, error) {
		return perlinPlane(s.Size, s.Subdivisions, s.Noise, s.Normals)
	},
}

// Names returns the registered layout names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build assembles the layout named by p and checks the result forms a
// well-formed grid.
func Build(p Params) (terrain.Grid, error) {
	build, ok := registry[p.Layout]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownLayout, p.Layout, Names())
	}
	grid, err := build(p)
	if err != nil {
		return nil, err
	}
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("layouts: %s: %w", p.Layout, err)
	}
	return grid, nil
}
