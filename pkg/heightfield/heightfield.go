// Package heightfield provides a non-uniform grid of height samples with
// bilinear lookup.
package heightfield

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Construction errors.
var (
	ErrTooFewSamples     = errors.New("heightfield: need at least 2 samples per axis")
	ErrNotIncreasing     = errors.New("heightfield: sample coordinates must be strictly increasing")
	ErrDimensionMismatch = errors.New("heightfield: height table dimensions do not match coordinates")
	ErrNonFinite         = errors.New("heightfield: non-finite value")
)

// Sampler is an immutable table of heights z[xi][yi] sampled at xs x ys.
type Sampler struct {
	xs      []float64
	ys      []float64
	heights [][]float64
}

// Bounds is the extent of a sampler.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// New validates and copies the inputs into a Sampler.
func New(xs, ys []float64, heights [][]float64) (*Sampler, error) {
	if err := checkAxis("x", xs); err != nil {
		return nil, err
	}
	if err := checkAxis("y", ys); err != nil {
		return nil, err
	}
	if len(heights) != len(xs) {
		return nil, fmt.Errorf("%w: %d columns for %d x samples", ErrDimensionMismatch, len(heights), len(xs))
	}

	s := &Sampler{
		xs:      append([]float64(nil), xs...),
		ys:      append([]float64(nil), ys...),
		heights: make([][]float64, len(xs)),
	}
	for i, col := range heights {
		if len(col) != len(ys) {
			return nil, fmt.Errorf("%w: column %d has %d values for %d y samples", ErrDimensionMismatch, i, len(col), len(ys))
		}
		if !finite(col) {
			return nil, fmt.Errorf("%w: height column %d", ErrNonFinite, i)
		}
		s.heights[i] = append([]float64(nil), col...)
	}
	return s, nil
}

func checkAxis(name string, a []float64) error {
	if len(a) < 2 {
		return fmt.Errorf("%w: %s axis has %d", ErrTooFewSamples, name, len(a))
	}
	if !finite(a) {
		return fmt.Errorf("%w: %s axis", ErrNonFinite, name)
	}
	for i := 1; i < len(a); i++ {
		if !(a[i] > a[i-1]) {
			return fmt.Errorf("%w: %s[%d]=%g after %g", ErrNotIncreasing, name, i, a[i], a[i-1])
		}
	}
	return nil
}

func finite(a []float64) bool {
	if floats.HasNaN(a) {
		return false
	}
	for _, v := range a {
		if math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// find returns i such that a[i] <= t <= a[i+1] with 0 <= i <= len(a)-2.
// The last interval is closed on both ends; an interior sample resolves to
// the interval on its left.
func find(a []float64, t float64) (int, bool) {
	n := len(a)
	if !(t >= a[0] && t <= a[n-1]) {
		return 0, false
	}
	k := sort.SearchFloat64s(a, t)
	if k == 0 {
		return 0, true
	}
	return k - 1, true
}

// cell locates the interpolation cell containing (x, y).
func (s *Sampler) cell(x, y float64) (i, j int, ok bool) {
	i, ok = find(s.xs, x)
	if !ok {
		return 0, 0, false
	}
	j, ok = find(s.ys, y)
	if !ok {
		return 0, 0, false
	}
	return i, j, true
}

// Height returns the bilinearly interpolated height at (x, y). The second
// result is false when either coordinate is outside the sampled range.
func (s *Sampler) Height(x, y float64) (float64, bool) {
	i, j, ok := s.cell(x, y)
	if !ok {
		return 0, false
	}

	x1, x2 := s.xs[i], s.xs[i+1]
	y1, y2 := s.ys[j], s.ys[j+1]
	q11 := s.heights[i][j]
	q12 := s.heights[i][j+1]
	q21 := s.heights[i+1][j]
	q22 := s.heights[i+1][j+1]

	r1 := ((x2-x)/(x2-x1))*q11 + ((x-x1)/(x2-x1))*q21
	r2 := ((x2-x)/(x2-x1))*q12 + ((x-x1)/(x2-x1))*q22

	return ((y2-y)/(y2-y1))*r1 + ((y-y1)/(y2-y1))*r2, true
}

// Gradient returns the partial derivatives of the bilinear patch containing
// (x, y).
func (s *Sampler) Gradient(x, y float64) (dx, dy float64, ok bool) {
	i, j, ok := s.cell(x, y)
	if !ok {
		return 0, 0, false
	}

	x1, x2 := s.xs[i], s.xs[i+1]
	y1, y2 := s.ys[j], s.ys[j+1]
	q11 := s.heights[i][j]
	q12 := s.heights[i][j+1]
	q21 := s.heights[i+1][j]
	q22 := s.heights[i+1][j+1]
	area := (x2 - x1) * (y2 - y1)

	dx = ((y2-y)*(q21-q11) + (y-y1)*(q22-q12)) / area
	dy = ((x2-x)*(q12-q11) + (x-x1)*(q22-q21)) / area
	return dx, dy, true
}

// Dims returns the number of samples along x and y.
func (s *Sampler) Dims() (nx, ny int) {
	return len(s.xs), len(s.ys)
}

// X returns the i-th x sample coordinate.
func (s *Sampler) X(i int) float64 { return s.xs[i] }

// Y returns the j-th y sample coordinate.
func (s *Sampler) Y(j int) float64 { return s.ys[j] }

// At returns the stored height at sample (i, j).
func (s *Sampler) At(i, j int) float64 { return s.heights[i][j] }

// Xs returns a copy of the x sample coordinates.
func (s *Sampler) Xs() []float64 { return append([]float64(nil), s.xs...) }

// Ys returns a copy of the y sample coordinates.
func (s *Sampler) Ys() []float64 { return append([]float64(nil), s.ys...) }

// Table returns a copy of the height table.
func (s *Sampler) Table() [][]float64 {
	out := make([][]float64, len(s.heights))
	for i, col := range s.heights {
		out[i] = append([]float64(nil), col...)
	}
	return out
}

// Bounds returns the sampled extent and the height range.
func (s *Sampler) Bounds() Bounds {
	b := Bounds{
		MinX: s.xs[0], MaxX: s.xs[len(s.xs)-1],
		MinY: s.ys[0], MaxY: s.ys[len(s.ys)-1],
		MinZ: math.Inf(1), MaxZ: math.Inf(-1),
	}
	for _, col := range s.heights {
		b.MinZ = math.Min(b.MinZ, floats.Min(col))
		b.MaxZ = math.Max(b.MaxZ, floats.Max(col))
	}
	return b
}

// Uniform returns n evenly spaced coordinates covering [lo, hi].
func Uniform(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}
