package terrain

import "gonum.org/v1/gonum/spatial/r3"

// Step is flat ground raised to a constant height.
type Step struct {
	analytic
	height float64
}

// NewStep returns a square tile flat at height.
func NewStep(size, height float64, subdivisions int, o Orientation) (*Step, error) {
	a, err := newAnalytic(Square(size), subdivisions, o, level(height))
	if err != nil {
		return nil, err
	}
	return &Step{analytic: a, height: height}, nil
}

// Height returns the step height.
func (s *Step) Height() float64 { return s.height }

// Interference implements Tile.
func (s *Step) Interference(p r3.Vec) (Interference, bool) {
	return contact(p, s.height, up)
}

// Mesh implements Tile.
func (s *Step) Mesh() *Mesh { return s.mesh() }

// Size implements Tile.
func (s *Step) Size() Size { return s.size }

// StepSlope is a ramp climbing from 0 to height across the tile. Unrotated,
// it rises along +X.
type StepSlope struct {
	analytic
	height float64
}

// NewStepSlope returns a square ramp tile.
func NewStepSlope(size, height float64, subdivisions int, o Orientation) (*StepSlope, error) {
	a, err := newAnalytic(Square(size), subdivisions, o, ramp{height: height, length: size})
	if err != nil {
		return nil, err
	}
	return &StepSlope{analytic: a, height: height}, nil
}

// Height returns the rise of the ramp.
func (s *StepSlope) Height() float64 { return s.height }

// Interference implements Tile. The normal is the ramp's true normal.
func (s *StepSlope) Interference(p r3.Vec) (Interference, bool) {
	return s.interference(p, NormalGradient)
}

// Mesh implements Tile.
func (s *StepSlope) Mesh() *Mesh { return s.mesh() }

// Size implements Tile.
func (s *StepSlope) Size() Size { return s.size }
