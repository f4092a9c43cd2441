package bake

import (
	"github.com/flywave/go3d/vec3"
	"go.uber.org/zap"

	"github.com/meshforge/vbake/internal/mesh"
)

// Baker converts textured meshes to vertex-colored meshes. Decoded textures
// are cached per path for the lifetime of the Baker, so a batch of meshes
// sharing one texture decodes it once.
//
// A Baker is not safe for concurrent use; ConvertAllParallel gives each
// worker its own instance.
type Baker struct {
	// SolidFaceColor bakes one averaged color per triangle instead of an
	// independent sample per vertex.
	SolidFaceColor bool

	log    *zap.Logger
	images map[string]*Image
}

// New creates a Baker with the given sampling policy. A nil logger disables
// logging.
func New(solidFaceColor bool, log *zap.Logger) *Baker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Baker{
		SolidFaceColor: solidFaceColor,
		log:            log,
		images:         make(map[string]*Image),
	}
}

// Convert bakes one mesh. The output shares no memory with the input: indices
// and positions are copied verbatim, colors are freshly sampled. The texture
// is decoded at most once per path; sampling never touches the file again.
func (b *Baker) Convert(m *mesh.TexturedMesh) (*mesh.ColoredMesh, error) {
	if m.TexturePath == "" {
		return nil, &InvalidMeshError{MeshName: m.Name, Reason: "no texture to bake from"}
	}
	if err := m.Validate(); err != nil {
		return nil, &InvalidMeshError{MeshName: m.Name, Reason: err.Error()}
	}

	img, err := b.texture(m.TexturePath)
	if err != nil {
		return nil, err
	}

	colors := make([]vec3.T, len(m.Positions))
	if b.SolidFaceColor {
		bakeFaces(img, m, colors)
	} else {
		for i, uv := range m.UVs {
			colors[i] = Sample(img, uv)
		}
	}

	b.log.Debug("baked vertex colors",
		zap.String("mesh", m.Name),
		zap.Int("vertices", len(m.Positions)),
		zap.Int("triangles", m.TriangleCount()),
		zap.Bool("solid_faces", b.SolidFaceColor))

	return &mesh.ColoredMesh{
		Indices:   append([]uint32(nil), m.Indices...),
		Positions: append([]vec3.T(nil), m.Positions...),
		Colors:    colors,
		ID:        m.ID,
		Name:      m.Name,
	}, nil
}

// bakeFaces assigns each triangle a single color, the component-wise mean of
// its three corner samples. Triangles are walked in index order and a shared
// vertex keeps the color of the last triangle that touched it; colors are
// never blended across faces. Trailing indices short of a full triple are
// skipped, leaving their vertices at the zero color.
func bakeFaces(img *Image, m *mesh.TexturedMesh, colors []vec3.T) {
	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]

		c0 := Sample(img, m.UVs[i0])
		c1 := Sample(img, m.UVs[i1])
		c2 := Sample(img, m.UVs[i2])

		avg := vec3.Add(&c0, &c1)
		avg = vec3.Add(&avg, &c2)
		avg.Scale(1.0 / 3.0)

		colors[i0] = avg
		colors[i1] = avg
		colors[i2] = avg
	}
}

func (b *Baker) texture(path string) (*Image, error) {
	if img, ok := b.images[path]; ok {
		return img, nil
	}
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	b.images[path] = img
	return img, nil
}
