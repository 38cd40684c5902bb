package export

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	gomath "math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/internal/world"
)

// HeightImage renders surface height as 16-bit grayscale, black at the
// lowest sample and white at the highest. resolution is the pixel count
// along the longer side of the grid. Pixel (px, py) samples world
// (x, y) with py growing toward -Y so the image reads like a map.
func HeightImage(ctx context.Context, w *world.World, resolution int) (*image.Gray16, error) {
	if resolution < 2 {
		return nil, fmt.Errorf("export: resolution must be at least 2, got %d", resolution)
	}
	b := w.Bounds()
	width, depth := b.MaxX-b.MinX, b.MaxY-b.MinY
	scale := gomath.Max(width, depth) / float64(resolution-1)
	nx := int(gomath.Round(width/scale)) + 1
	ny := int(gomath.Round(depth/scale)) + 1

	points := make([]r3.Vec, nx*ny)
	for py := 0; py < ny; py++ {
		for px := 0; px < nx; px++ {
			points[py*nx+px] = r3.Vec{
				X: min(b.MinX+float64(px)*scale, b.MaxX),
				Y: max(b.MaxY-float64(py)*scale, b.MinY),
				Z: probeZ,
			}
		}
	}

	contacts, err := w.InterferenceBatch(ctx, points)
	if err != nil {
		return nil, fmt.Errorf("export: height image: %w", err)
	}
	heights := make([]float64, len(points))
	for k, c := range contacts {
		if c.Hit {
			heights[k] = c.Interference.Position.Z
		}
	}
	lo, hi := floats.Min(heights), floats.Max(heights)

	img := image.NewGray16(image.Rect(0, 0, nx, ny))
	for k, h := range heights {
		var v uint16
		if hi > lo {
			v = uint16(gomath.Round((h - lo) / (hi - lo) * gomath.MaxUint16))
		}
		img.SetGray16(k%nx, k/nx, color.Gray16{Y: v})
	}
	return img, nil
}

// WriteHeightPNG encodes HeightImage as PNG.
func WriteHeightPNG(ctx context.Context, out io.Writer, w *world.World, resolution int) error {
	img, err := HeightImage(ctx, w, resolution)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("export: write png: %w", err)
	}
	return nil
}
