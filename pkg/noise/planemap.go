package noise

// PlaneMap is a width x height grid of noise samples taken over a
// rectangular region of the noise plane. Values are stored [x][y].
type PlaneMap struct {
	Width, Height int
	values        [][]float64
}

// Bounds is an inclusive coordinate range on the noise plane.
type Bounds struct {
	Lo, Hi float64
}

// UnitBounds is the [-1, 1] range the terrain tiles sample over.
var UnitBounds = Bounds{Lo: -1, Hi: 1}

// BuildPlaneMap samples src on a width x height lattice spanning xb x yb.
// The lattice includes both bounds; each coordinate is multiplied by
// frequency before evaluation (zero means 1).
func BuildPlaneMap(src Source, width, height int, xb, yb Bounds, frequency float64) *PlaneMap {
	if frequency == 0 {
		frequency = 1
	}
	m := &PlaneMap{Width: width, Height: height, values: make([][]float64, width)}
	for i := 0; i < width; i++ {
		u := lerpIndex(xb, i, width)
		col := make([]float64, height)
		for j := 0; j < height; j++ {
			v := lerpIndex(yb, j, height)
			col[j] = src.Noise2D(u*frequency, v*frequency)
		}
		m.values[i] = col
	}
	return m
}

func lerpIndex(b Bounds, i, n int) float64 {
	if n < 2 {
		return b.Lo
	}
	return b.Lo + (b.Hi-b.Lo)*float64(i)/float64(n-1)
}

// Get returns the sample at (x, y).
func (m *PlaneMap) Get(x, y int) float64 {
	return m.values[x][y]
}

// Scaled returns the samples multiplied by amplitude as a fresh [x][y] table.
func (m *PlaneMap) Scaled(amplitude float64) [][]float64 {
	out := make([][]float64, m.Width)
	for i, col := range m.values {
		out[i] = make([]float64, len(col))
		for j, v := range col {
			out[i][j] = v * amplitude
		}
	}
	return out
}
