// Package world places a terrain grid in world space and answers contact
// queries against it.
package world

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/internal/config"
	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/internal/logger"
	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/pkg/layouts"
	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/pkg/math"
	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/pkg/terrain"
)

// World is an immutable grid of tiles with derived world offsets. Grid[i][j]
// starts at (xs[i], ys[j]).
type World struct {
	grid terrain.Grid
	xs   []float64 // rows+1 boundaries along X
	ys   []float64 // cols+1 boundaries along Y
}

// Contact is the result of one batched query.
type Contact struct {
	Point        r3.Vec
	Row, Col     int
	Hit          bool
	Interference terrain.Interference
}

// PlacedMesh is a tile mesh with its placement in world space.
type PlacedMesh struct {
	Row    int           `json:"row"`
	Col    int           `json:"col"`
	Offset [3]float32    `json:"offset"`
	Model  math.Mat4     `json:"model"`
	Mesh   *terrain.Mesh `json:"mesh"`
}

// Bounds is the world-space footprint of the grid.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// New validates grid and computes tile offsets.
func New(grid terrain.Grid) (*World, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	rows, cols := grid.Dims()
	w := &World{
		grid: grid,
		xs:   make([]float64, rows+1),
		ys:   make([]float64, cols+1),
	}
	for i := 0; i < rows; i++ {
		w.xs[i+1] = w.xs[i] + grid[i][0].Size().Width
	}
	for j := 0; j < cols; j++ {
		w.ys[j+1] = w.ys[j] + grid[0][j].Size().Depth
	}
	return w, nil
}

// Build assembles the layout described by cfg.
func Build(cfg *config.Config) (*World, error) {
	log := logger.Named("world")

	grid, err := layouts.Build(cfg.LayoutParams())
	if err != nil {
		return nil, fmt.Errorf("building layout %s: %w", cfg.Terrain.Layout, err)
	}
	w, err := New(grid)
	if err != nil {
		return nil, err
	}

	rows, cols := grid.Dims()
	b := w.Bounds()
	log.Info("terrain built",
		zap.String("layout", cfg.Terrain.Layout),
		zap.Int("rows", rows),
		zap.Int("cols", cols),
		zap.Float64("width", b.MaxX-b.MinX),
		zap.Float64("depth", b.MaxY-b.MinY))
	if cfg.Terrain.Layout == layouts.LayoutPerlin {
		log.Debug("noise", zap.String("kind", string(cfg.Noise.Kind)), zap.Int64("seed", cfg.Noise.Seed))
	}
	return w, nil
}

// Grid returns the tiles.
func (w *World) Grid() terrain.Grid { return w.grid }

// Offset returns the world position of tile (i, j)'s origin.
func (w *World) Offset(i, j int) r3.Vec {
	return r3.Vec{X: w.xs[i], Y: w.ys[j]}
}

// Bounds returns the footprint covered by the grid.
func (w *World) Bounds() Bounds {
	return Bounds{
		MinX: w.xs[0], MaxX: w.xs[len(w.xs)-1],
		MinY: w.ys[0], MaxY: w.ys[len(w.ys)-1],
	}
}

// span returns the interval of bounds holding t. A point on a shared edge
// belongs to the lower tile; the far edge of the last tile is inclusive.
func span(bounds []float64, t float64) (int, bool) {
	if !(t >= bounds[0] && t <= bounds[len(bounds)-1]) {
		return 0, false
	}
	return max(sort.SearchFloat64s(bounds, t)-1, 0), true
}

// Locate finds the tile under world (x, y) and the point in its local frame.
func (w *World) Locate(x, y float64) (i, j int, lx, ly float64, ok bool) {
	i, okX := span(w.xs, x)
	j, okY := span(w.ys, y)
	if !okX || !okY {
		return 0, 0, 0, 0, false
	}
	return i, j, x - w.xs[i], y - w.ys[j], true
}

// Interference tests a world-space point. The contact position is returned
// in world space. Points outside the grid never collide.
func (w *World) Interference(p r3.Vec) (terrain.Interference, bool) {
	_, _, in, ok := w.interference(p)
	return in, ok
}

func (w *World) interference(p r3.Vec) (i, j int, in terrain.Interference, ok bool) {
	i, j, lx, ly, found := w.Locate(p.X, p.Y)
	if !found {
		return 0, 0, terrain.Interference{}, false
	}
	in, ok = w.grid[i][j].Interference(r3.Vec{X: lx, Y: ly, Z: p.Z})
	if ok {
		in.Position = r3.Add(in.Position, w.Offset(i, j))
	}
	return i, j, in, ok
}

// InterferenceBatch tests every point concurrently and returns results in
// input order. Tiles are read-only, so workers share them without locking.
// Cancelling ctx stops scheduling and returns ctx's error.
func (w *World) InterferenceBatch(ctx context.Context, points []r3.Vec) ([]Contact, error) {
	out := make([]Contact, len(points))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for k, p := range points {
		if gctx.Err() != nil {
			break
		}
		k, p := k, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			i, j, in, hit := w.interference(p)
			out[k] = Contact{Point: p, Row: i, Col: j, Hit: hit, Interference: in}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Meshes returns every tile mesh with its world placement, row by row.
func (w *World) Meshes() []PlacedMesh {
	rows, cols := w.grid.Dims()
	out := make([]PlacedMesh, 0, rows*cols)
	for i, row := range w.grid {
		for j, t := range row {
			off := [3]float32{float32(w.xs[i]), float32(w.ys[j]), 0}
			out = append(out, PlacedMesh{
				Row:    i,
				Col:    j,
				Offset: off,
				Model:  math.Translate(off[0], off[1], off[2]),
				Mesh:   t.Mesh(),
			})
		}
	}
	return out
}

// WorldPositions returns the mesh positions transformed by the model matrix.
func (pm PlacedMesh) WorldPositions() [][3]float32 {
	out := make([][3]float32, len(pm.Mesh.Positions))
	for k, p := range pm.Mesh.Positions {
		out[k] = pm.Model.TransformPoint(p)
	}
	return out
}

// WorldNormals returns the mesh normals in world space.
func (pm PlacedMesh) WorldNormals() [][3]float32 {
	out := make([][3]float32, len(pm.Mesh.Normals))
	for k, n := range pm.Mesh.Normals {
		out[k] = pm.Model.TransformDirection(n)
	}
	return out
}

// MergedMesh joins every tile into a single world-space mesh, tiles in the
// order Meshes returns them. UVs stay per tile.
func (w *World) MergedMesh() *terrain.Mesh {
	placed := w.Meshes()
	merged := &terrain.Mesh{}
	for _, pm := range placed {
		base := uint32(len(merged.Positions))
		merged.Positions = append(merged.Positions, pm.WorldPositions()...)
		merged.Normals = append(merged.Normals, pm.WorldNormals()...)
		merged.UVs = append(merged.UVs, pm.Mesh.UVs...)
		for _, idx := range pm.Mesh.Indices {
			merged.Indices = append(merged.Indices, base+idx)
		}
	}
	if len(merged.Positions) == 0 {
		return merged
	}
	lo := math.FromArray(merged.Positions[0])
	hi := lo
	for _, p := range merged.Positions[1:] {
		lo, hi = lo.Min(math.FromArray(p)), hi.Max(math.FromArray(p))
	}
	merged.Bounds = terrain.Bounds{Min: lo.Array(), Max: hi.Array()}
	return merged
}
