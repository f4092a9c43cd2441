package bake

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func TestLoadImagePNG(t *testing.T) {
	path := writeQuadPNG(t, t.TempDir())

	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage() error: %v", err)
	}
	if img.Width != 2 || img.Height != 2 {
		t.Fatalf("dimensions %dx%d, want 2x2", img.Width, img.Height)
	}
	if len(img.Pix) != 12 {
		t.Fatalf("pix length %d, want 12", len(img.Pix))
	}
	// row 0 is the top row: red then green
	want := []uint8{255, 0, 0, 0, 255, 0, 0, 0, 255, 255, 255, 255}
	for i, p := range img.Pix {
		if p != want[i] {
			t.Errorf("pix[%d] = %d, want %d", i, p, want[i])
		}
	}
}

func TestLoadImageBMP(t *testing.T) {
	dir := t.TempDir()
	src := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	src.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	src.SetNRGBA(1, 0, color.NRGBA{0, 255, 0, 255})
	src.SetNRGBA(2, 0, color.NRGBA{0, 0, 255, 255})

	path := filepath.Join(dir, "strip.bmp")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating file: %v", err)
	}
	if err := bmp.Encode(f, src); err != nil {
		t.Fatalf("encoding bmp: %v", err)
	}
	f.Close()

	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage() error: %v", err)
	}
	if img.Width != 3 || img.Height != 1 {
		t.Fatalf("dimensions %dx%d, want 3x1", img.Width, img.Height)
	}
	if img.Pix[0] != 255 || img.Pix[4] != 255 || img.Pix[8] != 255 {
		t.Errorf("unexpected pixels %v", img.Pix)
	}
}

func TestLoadImageDropsAlphaUnpremultiplied(t *testing.T) {
	dir := t.TempDir()
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{200, 100, 50, 128})

	path := filepath.Join(dir, "alpha.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating file: %v", err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	f.Close()

	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage() error: %v", err)
	}
	// the color channels keep their stored values, alpha is just dropped
	if img.Pix[0] != 200 || img.Pix[1] != 100 || img.Pix[2] != 50 {
		t.Errorf("pix = %v, want [200 100 50]", img.Pix)
	}
}

func TestLoadImageMissingFile(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "absent.png"))
	var load *ImageLoadError
	if !errors.As(err, &load) {
		t.Fatalf("error = %v, want *ImageLoadError", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error %v does not wrap os.ErrNotExist", err)
	}
}

func TestLoadImageUndecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not an image at all"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadImage(path)
	var load *ImageLoadError
	if !errors.As(err, &load) {
		t.Fatalf("error = %v, want *ImageLoadError", err)
	}
}
