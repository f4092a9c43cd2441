// Package mesh defines the triangle mesh values exchanged by the baking
// pipeline: textured meshes on the way in, vertex-colored meshes on the way
// out.
package mesh

import (
	"github.com/flywave/go3d/vec2"
	"github.com/flywave/go3d/vec3"
)

// TexturedMesh is an indexed triangle mesh with a texture reference.
// Indices address Positions and UVs in parallel; every consecutive triple of
// indices forms one triangle.
type TexturedMesh struct {
	Indices     []uint32
	Positions   []vec3.T
	UVs         []vec2.T
	TexturePath string
	ID          int
	Name        string
}

// ColoredMesh is the baked counterpart of a TexturedMesh: same topology and
// geometry, with one normalized RGB color per vertex instead of UVs.
type ColoredMesh struct {
	Indices   []uint32
	Positions []vec3.T
	Colors    []vec3.T
	ID        int
	Name      string
}

// TriangleCount returns the number of complete triangles in the index buffer.
// Trailing indices that do not form a full triple are not counted.
func (m *TexturedMesh) TriangleCount() int {
	return len(m.Indices) / 3
}
