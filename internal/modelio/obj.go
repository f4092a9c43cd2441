// Package modelio loads textured meshes from model files and exports baked
// results. It is the file-format glue around the baking core: Wavefront OBJ
// and glTF in, binary glTF with vertex colors out.
package modelio

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/flywave/go3d/vec2"
	"github.com/flywave/go3d/vec3"

	"github.com/meshforge/vbake/internal/mesh"
)

// objGroup accumulates one material group while scanning a file. OBJ keeps
// separate index spaces for positions and texture coordinates, so vertices
// are unified per (position, uv) pair before they fit the mesh data model.
type objGroup struct {
	name      string
	texture   string
	indices   []uint32
	positions []vec3.T
	uvs       []vec2.T
	lookup    map[[2]int]uint32
}

// LoadOBJ parses a Wavefront OBJ file into one TexturedMesh per material
// group, in the order the groups first appear. Supported subset: v, vt,
// triangulated or fan faces, usemtl and mtllib with map_Kd. Texture paths
// resolve relative to the OBJ's directory.
func LoadOBJ(path string) ([]mesh.TexturedMesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening model %s: %w", path, err)
	}
	defer f.Close()

	dir := filepath.Dir(path)

	var (
		positions []vec3.T
		uvs       []vec2.T
		textures  = make(map[string]string) // material name -> texture path
		groups    []*objGroup
		current   *objGroup
	)

	group := func(material string) *objGroup {
		for _, g := range groups {
			if g.name == material {
				return g
			}
		}
		g := &objGroup{
			name:    material,
			texture: textures[material],
			lookup:  make(map[[2]int]uint32),
		}
		groups = append(groups, g)
		return g
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "mtllib":
			if len(fields) < 2 {
				return nil, fmt.Errorf("%s:%d: mtllib without a file", path, lineNo)
			}
			mtl, err := parseMTL(filepath.Join(dir, fields[1]))
			if err != nil {
				return nil, err
			}
			for name, tex := range mtl {
				textures[name] = tex
			}

		case "usemtl":
			if len(fields) < 2 {
				return nil, fmt.Errorf("%s:%d: usemtl without a name", path, lineNo)
			}
			current = group(fields[1])

		case "v":
			p, err := parseFloats3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: vertex: %w", path, lineNo, err)
			}
			positions = append(positions, p)

		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("%s:%d: texture coordinate needs 2 components", path, lineNo)
			}
			u, err := parseFloat(fields[1])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: texture coordinate: %w", path, lineNo, err)
			}
			v, err := parseFloat(fields[2])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: texture coordinate: %w", path, lineNo, err)
			}
			uvs = append(uvs, vec2.T{u, v})

		case "f":
			if current == nil {
				current = group("default")
			}
			if err := current.addFace(fields[1:], positions, uvs); err != nil {
				return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading model %s: %w", path, err)
	}

	meshes := make([]mesh.TexturedMesh, 0, len(groups))
	for i, g := range groups {
		tex := g.texture
		if tex == "" {
			tex = textures[g.name]
		}
		if tex != "" && !filepath.IsAbs(tex) {
			tex = filepath.Join(dir, tex)
		}
		meshes = append(meshes, mesh.TexturedMesh{
			Indices:     g.indices,
			Positions:   g.positions,
			UVs:         g.uvs,
			TexturePath: tex,
			ID:          i,
			Name:        g.name,
		})
	}
	return meshes, nil
}

// addFace unifies the face's corners into the group's vertex list and
// triangulates polygons as a fan around the first corner.
func (g *objGroup) addFace(corners []string, positions []vec3.T, uvs []vec2.T) error {
	if len(corners) < 3 {
		return fmt.Errorf("face with %d corners", len(corners))
	}

	idx := make([]uint32, len(corners))
	for i, c := range corners {
		vi, ti, err := parseCorner(c)
		if err != nil {
			return err
		}
		vi = resolveIndex(vi, len(positions))
		ti = resolveIndex(ti, len(uvs))
		if vi < 0 || vi >= len(positions) {
			return fmt.Errorf("vertex reference %s out of range", c)
		}

		key := [2]int{vi, ti}
		id, ok := g.lookup[key]
		if !ok {
			id = uint32(len(g.positions))
			g.lookup[key] = id
			g.positions = append(g.positions, positions[vi])
			if ti >= 0 && ti < len(uvs) {
				g.uvs = append(g.uvs, uvs[ti])
			} else {
				g.uvs = append(g.uvs, vec2.T{})
			}
		}
		idx[i] = id
	}

	for i := 1; i+1 < len(idx); i++ {
		g.indices = append(g.indices, idx[0], idx[i], idx[i+1])
	}
	return nil
}

// parseCorner splits a face corner reference: v, v/vt, v/vt/vn or v//vn.
// The returned indices are still 1-based (or negative for relative refs);
// a missing texture coordinate comes back as 0.
func parseCorner(s string) (vi, ti int, err error) {
	parts := strings.Split(s, "/")
	vi, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("face corner %q: %w", s, err)
	}
	if len(parts) > 1 && parts[1] != "" {
		ti, err = strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, fmt.Errorf("face corner %q: %w", s, err)
		}
	}
	return vi, ti, nil
}

// resolveIndex converts an OBJ 1-based or negative-relative index into a
// 0-based one. 0 (absent) maps to -1.
func resolveIndex(i, n int) int {
	switch {
	case i > 0:
		return i - 1
	case i < 0:
		return n + i
	default:
		return -1
	}
}

// parseMTL extracts material name to diffuse texture mappings from an MTL
// file. Materials without a map_Kd entry are kept with an empty path so the
// baker can reject them explicitly.
func parseMTL(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening material library %s: %w", path, err)
	}
	defer f.Close()

	out := make(map[string]string)
	var current string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		switch fields[0] {
		case "newmtl":
			current = fields[1]
			out[current] = ""
		case "map_Kd":
			if current != "" {
				out[current] = fields[len(fields)-1]
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading material library %s: %w", path, err)
	}
	return out, nil
}

func parseFloat(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	return float32(v), err
}

func parseFloats3(fields []string) (vec3.T, error) {
	var out vec3.T
	if len(fields) < 3 {
		return out, fmt.Errorf("need 3 components, have %d", len(fields))
	}
	for i := 0; i < 3; i++ {
		v, err := parseFloat(fields[i])
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}
