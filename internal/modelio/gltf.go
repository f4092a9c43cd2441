package modelio

import (
	"fmt"
	"path/filepath"

	"github.com/flywave/go3d/vec2"
	"github.com/flywave/go3d/vec3"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/meshforge/vbake/internal/mesh"
)

// ExportGLB writes the baked meshes as a binary glTF with POSITION and
// COLOR_0 accessors, one mesh and node per input, so any glTF viewer can
// inspect the result without a texture on disk.
func ExportGLB(path string, meshes []mesh.ColoredMesh) error {
	doc := gltf.NewDocument()

	for i := range meshes {
		m := &meshes[i]

		pos := make([][3]float32, len(m.Positions))
		for j, p := range m.Positions {
			pos[j] = [3]float32(p)
		}
		col := make([][3]float32, len(m.Colors))
		for j, c := range m.Colors {
			col[j] = [3]float32(c)
		}

		prim := &gltf.Primitive{
			Indices: gltf.Index(modeler.WriteIndices(doc, append([]uint32(nil), m.Indices...))),
			Attributes: map[string]uint32{
				"POSITION": modeler.WritePosition(doc, pos),
				"COLOR_0":  modeler.WriteColor(doc, col),
			},
		}
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name:       m.Name,
			Primitives: []*gltf.Primitive{prim},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: m.Name,
			Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	}

	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// LoadGLB reads a glTF (text or binary) into textured meshes, one per
// primitive. Each primitive needs POSITION, TEXCOORD_0, indices and a
// material whose base color texture references an image by URI; embedded
// images cannot be baked from and are rejected.
func LoadGLB(path string) ([]mesh.TexturedMesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening model %s: %w", path, err)
	}
	dir := filepath.Dir(path)

	var meshes []mesh.TexturedMesh
	for _, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			tm, err := primitiveToMesh(doc, gm, prim, dir)
			if err != nil {
				return nil, fmt.Errorf("%s: mesh %q primitive %d: %w", path, gm.Name, pi, err)
			}
			tm.ID = len(meshes)
			meshes = append(meshes, *tm)
		}
	}
	return meshes, nil
}

func primitiveToMesh(doc *gltf.Document, gm *gltf.Mesh, prim *gltf.Primitive, dir string) (*mesh.TexturedMesh, error) {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	uvIdx, ok := prim.Attributes["TEXCOORD_0"]
	if !ok {
		return nil, fmt.Errorf("no TEXCOORD_0 attribute")
	}
	if prim.Indices == nil {
		return nil, fmt.Errorf("primitive is not indexed")
	}

	rawPos, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("reading positions: %w", err)
	}
	rawUV, err := modeler.ReadTextureCoord(doc, doc.Accessors[uvIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("reading texture coordinates: %w", err)
	}
	indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
	if err != nil {
		return nil, fmt.Errorf("reading indices: %w", err)
	}

	texture, err := baseColorTexture(doc, prim)
	if err != nil {
		return nil, err
	}
	if !filepath.IsAbs(texture) {
		texture = filepath.Join(dir, texture)
	}

	positions := make([]vec3.T, len(rawPos))
	for i, p := range rawPos {
		positions[i] = vec3.T(p)
	}
	uvs := make([]vec2.T, len(rawUV))
	for i, uv := range rawUV {
		uvs[i] = vec2.T(uv)
	}

	return &mesh.TexturedMesh{
		Indices:     indices,
		Positions:   positions,
		UVs:         uvs,
		TexturePath: texture,
		Name:        gm.Name,
	}, nil
}

// baseColorTexture resolves the primitive's material to its base color image
// URI.
func baseColorTexture(doc *gltf.Document, prim *gltf.Primitive) (string, error) {
	if prim.Material == nil || int(*prim.Material) >= len(doc.Materials) {
		return "", fmt.Errorf("no material")
	}
	mat := doc.Materials[*prim.Material]
	if mat.PBRMetallicRoughness == nil || mat.PBRMetallicRoughness.BaseColorTexture == nil {
		return "", fmt.Errorf("material %q has no base color texture", mat.Name)
	}
	texIdx := mat.PBRMetallicRoughness.BaseColorTexture.Index
	if int(texIdx) >= len(doc.Textures) || doc.Textures[texIdx].Source == nil {
		return "", fmt.Errorf("material %q references a missing texture", mat.Name)
	}
	img := doc.Images[*doc.Textures[texIdx].Source]
	if img.URI == "" {
		return "", fmt.Errorf("material %q uses an embedded image, need a file URI", mat.Name)
	}
	return img.URI, nil
}
