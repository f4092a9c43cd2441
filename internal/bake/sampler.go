package bake

import (
	gomath "math"

	"github.com/flywave/go3d/vec2"
	"github.com/flywave/go3d/vec3"
)

// Sample returns the nearest texture sample for uv with repeat wrapping.
// Coordinates outside [0,1) tile the image infinitely. The vertical axis is
// flipped because image rows run top-down while UV space runs bottom-up.
// Channels come back normalized to [0,1].
func Sample(img *Image, uv vec2.T) vec3.T {
	u := uv[0] - float32(gomath.Floor(float64(uv[0])))
	v := uv[1] - float32(gomath.Floor(float64(uv[1])))

	// mod guards the u just below 1 case where scaling lands on the edge
	px := int(u*float32(img.Width)) % img.Width
	py := int(v*float32(img.Height)) % img.Height
	py = img.Height - 1 - py

	o := (py*img.Width + px) * 3
	return vec3.T{
		float32(img.Pix[o]) / 255,
		float32(img.Pix[o+1]) / 255,
		float32(img.Pix[o+2]) / 255,
	}
}
