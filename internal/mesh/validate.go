package mesh

import "fmt"

// Validate reports structural problems that would make baking unsafe.
// It does not reject index buffers whose length is not a multiple of 3;
// incomplete trailing triangles are tolerated downstream.
func (m *TexturedMesh) Validate() error {
	if len(m.UVs) != len(m.Positions) {
		return fmt.Errorf("%d uvs for %d positions", len(m.UVs), len(m.Positions))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Positions) {
			return fmt.Errorf("index %d at offset %d out of range (%d vertices)", idx, i, len(m.Positions))
		}
	}
	return nil
}
