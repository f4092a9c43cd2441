// Package bake converts textured meshes into vertex-colored meshes by
// sampling their source textures, so a color-only rendering path can draw
// them without any texture binding.
package bake

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is a decoded texture: a Width x Height grid of 8-bit RGB samples
// with row 0 at the top of the image, stride 3. Alpha is discarded at decode
// time. Immutable once produced.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

// LoadImage decodes the texture at path into a flat RGB grid. Any format
// registered with the image package is accepted (PNG, JPEG, GIF, BMP, TIFF,
// WebP). Failures come back as *ImageLoadError.
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ImageLoadError{Path: path, Err: err}
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, &ImageLoadError{Path: path, Err: err}
	}

	b := src.Bounds()
	img := &Image{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    make([]uint8, b.Dx()*b.Dy()*3),
	}

	// NRGBA conversion drops alpha without premultiplying it into the
	// color channels
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			img.Pix[i] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			i += 3
		}
	}
	return img, nil
}
