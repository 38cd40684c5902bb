package export

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/internal/world"
	"github.com/crispyDyne/Capstone-Vehicle-Sim-Project-Team3/pkg/terrain"
)

var json = jsoniter.Config{
	EscapeHTML:                    false,
	SortMapKeys:                   true,
	TagKey:                        "json",
	ObjectFieldMustBeSimpleString: true,
	CaseSensitive:                 true,
}.Froze()

// MeshDocument is the JSON payload handed to a renderer.
type MeshDocument struct {
	Layout    string             `json:"layout"`
	Vertices  int                `json:"vertices"`
	Triangles int                `json:"triangles"`
	Tiles     []world.PlacedMesh `json:"tiles"`
	Merged    *terrain.Mesh      `json:"merged,omitempty"` // all tiles in world space
}

// NewMeshDocument collects every placed tile mesh of w, plus the joined
// world-space mesh when merged is set.
func NewMeshDocument(layout string, w *world.World, merged bool) MeshDocument {
	doc := MeshDocument{Layout: layout, Tiles: w.Meshes()}
	if merged {
		doc.Merged = w.MergedMesh()
	}
	for _, pm := range doc.Tiles {
		doc.Vertices += pm.Mesh.VertexCount()
		doc.Triangles += pm.Mesh.TriangleCount()
	}
	return doc
}

// WriteMeshJSON encodes the placed meshes of w.
func WriteMeshJSON(out io.Writer, layout string, w *world.World, merged bool) (MeshDocument, error) {
	doc := NewMeshDocument(layout, w, merged)
	if err := json.NewEncoder(out).Encode(doc); err != nil {
		return doc, fmt.Errorf("export: write meshes: %w", err)
	}
	return doc, nil
}

// ReadMeshJSON decodes a document written by WriteMeshJSON.
func ReadMeshJSON(in io.Reader) (MeshDocument, error) {
	var doc MeshDocument
	if err := json.NewDecoder(in).Decode(&doc); err != nil {
		return doc, fmt.Errorf("export: read meshes: %w", err)
	}
	return doc, nil
}
