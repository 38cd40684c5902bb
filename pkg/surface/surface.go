// Package surface builds analytic height functions by summing terms that
// each know their own gradient.
package surface

import "math"

// Term is a scalar height field with its analytic gradient.
// Implementations are pure functions of position.
type Term interface {
	Height(x, y float64) float64
	Gradient(x, y float64) (dx, dy float64)
}

// Axis selects the horizontal coordinate a term varies along.
type Axis uint8

// Axis values.
const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

func (a Axis) pick(x, y float64) float64 {
	if a == AxisY {
		return y
	}
	return x
}

// Surface is the ordered sum of its terms.
type Surface struct {
	Terms []Term
}

// New returns a Surface over the given terms.
func New(terms ...Term) Surface {
	return Surface{Terms: terms}
}

// Height implements Term.
func (s Surface) Height(x, y float64) float64 {
	var h float64
	for _, t := range s.Terms {
		h += t.Height(x, y)
	}
	return h
}

// Gradient implements Term.
func (s Surface) Gradient(x, y float64) (dx, dy float64) {
	for _, t := range s.Terms {
		tx, ty := t.Gradient(x, y)
		dx += tx
		dy += ty
	}
	return dx, dy
}

// Eval returns height and gradient in one pass.
func (s Surface) Eval(x, y float64) (h, dx, dy float64) {
	for _, t := range s.Terms {
		h += t.Height(x, y)
		tx, ty := t.Gradient(x, y)
		dx += tx
		dy += ty
	}
	return h, dx, dy
}

// Constant is a flat offset.
type Constant float64

// Height implements Term.
func (c Constant) Height(_, _ float64) float64 { return float64(c) }

// Gradient implements Term.
func (c Constant) Gradient(_, _ float64) (float64, float64) { return 0, 0 }

// Ramp is a plane through the origin: SlopeX*x + SlopeY*y.
type Ramp struct {
	SlopeX, SlopeY float64
}

// Height implements Term.
func (r Ramp) Height(x, y float64) float64 { return r.SlopeX*x + r.SlopeY*y }

// Gradient implements Term.
func (r Ramp) Gradient(_, _ float64) (float64, float64) { return r.SlopeX, r.SlopeY }

// Cosine is Amplitude*cos(2*pi*u/Wavelength + Phase), u along Axis.
type Cosine struct {
	Amplitude  float64
	Wavelength float64
	Phase      float64
	Axis       Axis
}

func (c Cosine) k() float64 { return 2 * math.Pi / c.Wavelength }

// Height implements Term.
func (c Cosine) Height(x, y float64) float64 {
	return c.Amplitude * math.Cos(c.k()*c.Axis.pick(x, y)+c.Phase)
}

// Gradient implements Term.
func (c Cosine) Gradient(x, y float64) (float64, float64) {
	d := -c.Amplitude * c.k() * math.Sin(c.k()*c.Axis.pick(x, y)+c.Phase)
	if c.Axis == AxisY {
		return 0, d
	}
	return d, 0
}

// Fade scales Base by a smoothstep weight along Axis. The weight goes from 0
// at Start to 1 at Start+Length when Rising, the reverse otherwise, and is
// clamped outside that span. Its slope is zero at both ends, so a faded
// surface meets its unfaded neighbour and flat ground with matching slope.
type Fade struct {
	Base   Term
	Axis   Axis
	Start  float64
	Length float64
	Rising bool
}

// weight returns w and dw/du at coordinate u.
func (f Fade) weight(u float64) (w, dw float64) {
	t := (u - f.Start) / f.Length
	switch {
	case t <= 0:
		w = 0
	case t >= 1:
		w = 1
	default:
		w = t * t * (3 - 2*t)
		dw = 6 * t * (1 - t) / f.Length
	}
	if !f.Rising {
		w, dw = 1-w, -dw
	}
	return w, dw
}

// Height implements Term.
func (f Fade) Height(x, y float64) float64 {
	w, _ := f.weight(f.Axis.pick(x, y))
	return w * f.Base.Height(x, y)
}

// Gradient implements Term.
func (f Fade) Gradient(x, y float64) (float64, float64) {
	w, dw := f.weight(f.Axis.pick(x, y))
	bx, by := f.Base.Gradient(x, y)
	dx, dy := w*bx, w*by
	if dw != 0 {
		h := f.Base.Height(x, y)
		if f.Axis == AxisY {
			dy += dw * h
		} else {
			dx += dw * h
		}
	}
	return dx, dy
}

// Shift evaluates Base at (x+DX, y+DY), placing a term defined in a larger
// frame onto a tile.
type Shift struct {
	Base   Term
	DX, DY float64
}

// Height implements Term.
func (s Shift) Height(x, y float64) float64 { return s.Base.Height(x+s.DX, y+s.DY) }

// Gradient implements Term.
func (s Shift) Gradient(x, y float64) (float64, float64) { return s.Base.Gradient(x+s.DX, y+s.DY) }
