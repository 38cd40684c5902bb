package export

import (
	"context"
	"fmt"
	"io"
	gomath "math"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/internal/world"
)

// probeZ is far below any terrain, so every probe inside the grid collides.
const probeZ = -1e6

// SampleRecord is one probed surface point.
type SampleRecord struct {
	X       float64 `csv:"x"`
	Y       float64 `csv:"y"`
	Height  float64 `csv:"height"`
	NormalX float64 `csv:"normal_x"`
	NormalY float64 `csv:"normal_y"`
	NormalZ float64 `csv:"normal_z"`
	Row     int     `csv:"row"`
	Col     int     `csv:"col"`
}

// Probe samples the surface on a regular lattice with the given spacing,
// covering the grid bounds inclusively. Records run along Y within X.
func Probe(ctx context.Context, w *world.World, step float64) ([]SampleRecord, error) {
	if !(step > 0) {
		return nil, fmt.Errorf("export: probe step must be positive, got %g", step)
	}
	b := w.Bounds()
	nx := latticeCount(b.MaxX-b.MinX, step)
	ny := latticeCount(b.MaxY-b.MinY, step)

	points := make([]r3.Vec, 0, nx*ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			points = append(points, r3.Vec{
				X: min(b.MinX+float64(i)*step, b.MaxX),
				Y: min(b.MinY+float64(j)*step, b.MaxY),
				Z: probeZ,
			})
		}
	}

	contacts, err := w.InterferenceBatch(ctx, points)
	if err != nil {
		return nil, fmt.Errorf("export: probe: %w", err)
	}
	records := make([]SampleRecord, 0, len(points))
	for _, c := range contacts {
		if !c.Hit {
			continue
		}
		records = append(records, SampleRecord{
			X:       c.Point.X,
			Y:       c.Point.Y,
			Height:  c.Interference.Position.Z,
			NormalX: c.Interference.Normal.X,
			NormalY: c.Interference.Normal.Y,
			NormalZ: c.Interference.Normal.Z,
			Row:     c.Row,
			Col:     c.Col,
		})
	}
	return records, nil
}

// latticeCount is the number of samples spaced step apart on [0, span],
// counting both ends. A span that is a whole number of steps up to
// rounding error keeps its far sample.
func latticeCount(span, step float64) int {
	return int(gomath.Floor(span/step+1e-9)) + 1
}

// WriteSamplesCSV probes w and writes the records with a header row.
func WriteSamplesCSV(ctx context.Context, out io.Writer, w *world.World, step float64) (int, error) {
	records, err := Probe(ctx, w, step)
	if err != nil {
		return 0, err
	}
	if err := gocsv.Marshal(records, out); err != nil {
		return 0, fmt.Errorf("export: write samples: %w", err)
	}
	return len(records), nil
}

// ReadSamplesCSV parses records written by WriteSamplesCSV.
func ReadSamplesCSV(in io.Reader) ([]SampleRecord, error) {
	var records []SampleRecord
	if err := gocsv.Unmarshal(in, &records); err != nil {
		return nil, fmt.Errorf("export: read samples: %w", err)
	}
	return records, nil
}
