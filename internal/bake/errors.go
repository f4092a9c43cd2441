package bake

import "fmt"

// InvalidMeshError reports a mesh that cannot be baked as given, e.g. one
// without a texture reference. No file I/O has happened when it is returned.
type InvalidMeshError struct {
	MeshName string
	Reason   string
}

func (e *InvalidMeshError) Error() string {
	return fmt.Sprintf("invalid mesh %q: %s", e.MeshName, e.Reason)
}

// ImageLoadError reports a texture file that could not be opened or decoded.
type ImageLoadError struct {
	Path string
	Err  error
}

func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("loading texture %s: %v", e.Path, e.Err)
}

func (e *ImageLoadError) Unwrap() error { return e.Err }
