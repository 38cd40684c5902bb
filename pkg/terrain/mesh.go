package terrain

import (
	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/pkg/math"
)

// Mesh holds a triangulated tile surface ready for GPU upload.
// Positions, Normals and UVs are parallel arrays; Indices holds
// counter-clockwise triangles (seen from +Z).
type Mesh struct {
	Positions [][3]float32 `json:"positions"`
	Normals   [][3]float32 `json:"normals"`
	UVs       [][2]float32 `json:"uvs"`
	Indices   []uint32     `json:"indices"`
	Bounds    Bounds       `json:"bounds"`
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min [3]float32 `json:"min"`
	Max [3]float32 `json:"max"`
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the vertex indices of triangle k.
func (m *Mesh) Triangle(k int) (a, b, c uint32) {
	return m.Indices[3*k], m.Indices[3*k+1], m.Indices[3*k+2]
}

// GridVertex is one sample of a tile surface on the mesh lattice.
type GridVertex struct {
	Position [3]float32
	Normal   [3]float32
	UV       [2]float32
}

// GridIndices triangulates an nx x ny vertex lattice whose vertex (i, j) has
// index i*ny + j, i along +X and j along +Y. Each cell with corners
// bl, tl = bl+1, br = bl+ny, tr = br+1 becomes (bl, br, tr) and (bl, tr, tl).
func GridIndices(nx, ny int) []uint32 {
	if nx < 2 || ny < 2 {
		return nil
	}
	indices := make([]uint32, 0, (nx-1)*(ny-1)*6)
	stride := uint32(ny)
	for i := 0; i < nx-1; i++ {
		for j := 0; j < ny-1; j++ {
			bl := uint32(i)*stride + uint32(j)
			tl := bl + 1
			br := bl + stride
			tr := br + 1

			indices = append(indices,
				bl, br, tr,
				bl, tr, tl,
			)
		}
	}
	return indices
}

// BuildGridMesh samples vertex at every lattice point of an nx x ny grid and
// triangulates it with GridIndices.
func BuildGridMesh(nx, ny int, vertex func(i, j int) GridVertex) *Mesh {
	n := nx * ny
	mesh := &Mesh{
		Positions: make([][3]float32, 0, n),
		Normals:   make([][3]float32, 0, n),
		UVs:       make([][2]float32, 0, n),
		Bounds: Bounds{
			Min: [3]float32{1e10, 1e10, 1e10},
			Max: [3]float32{-1e10, -1e10, -1e10},
		},
	}

	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			v := vertex(i, j)
			mesh.Positions = append(mesh.Positions, v.Position)
			mesh.Normals = append(mesh.Normals, v.Normal)
			mesh.UVs = append(mesh.UVs, v.UV)
			updateBounds(&mesh.Bounds, v.Position)
		}
	}

	mesh.Indices = GridIndices(nx, ny)
	return mesh
}

// gridUV maps lattice (i, j) to texture space, V running down the tile.
func gridUV(i, j, nx, ny int) [2]float32 {
	u := float32(i) / float32(nx-1)
	v := float32(j) / float32(ny-1)
	return [2]float32{u, 1 - v}
}

// gradientMeshNormal converts a surface gradient into a unit vertex normal.
func gradientMeshNormal(dx, dy float64) [3]float32 {
	return math.Vec3{X: float32(-dx), Y: float32(-dy), Z: 1}.Normalize().Array()
}

// edgeNormal is the normal of the plane spanned by the forward edges from p
// to its +X neighbour px and +Y neighbour py.
func edgeNormal(p, px, py [3]float32) [3]float32 {
	o := math.FromArray(p)
	u := math.FromArray(px).Sub(o)
	v := math.FromArray(py).Sub(o)
	return u.Cross(v).Normalize().Array()
}

func updateBounds(b *Bounds, p [3]float32) {
	lo := math.FromArray(b.Min).Min(math.FromArray(p))
	hi := math.FromArray(b.Max).Max(math.FromArray(p))
	b.Min = lo.Array()
	b.Max = hi.Array()
}
