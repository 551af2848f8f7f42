package texture

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"
)

func TestLoadImage_PNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "BaseColor.png")
	src := uniformImage(8, color.NRGBA{R: 120, G: 80, B: 30, A: 255})
	if err := WritePNG(src, path); err != nil {
		t.Fatalf("Failed to write test image: %v", err)
	}

	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("Expected PNG to decode, got: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 8 || bounds.Dy() != 8 {
		t.Errorf("Expected 8x8 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
	r, g, b, _ := img.At(0, 0).RGBA()
	if uint8(r>>8) != 120 || uint8(g>>8) != 80 || uint8(b>>8) != 30 {
		t.Errorf("Unexpected pixel value: %d %d %d", r>>8, g>>8, b>>8)
	}
}

func TestLoadImage_TGA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Normal.tga")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	src := uniformImage(8, color.NRGBA{R: 128, G: 128, B: 255, A: 255})
	if err := tga.Encode(file, src); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	file.Close()

	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("Expected TGA to decode, got: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 8 || bounds.Dy() != 8 {
		t.Errorf("Expected 8x8 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestLoadImage_UppercaseExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "AO.PNG")
	src := uniformImage(4, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	if err := WritePNG(src, path); err != nil {
		t.Fatalf("Failed to write test image: %v", err)
	}

	if _, err := LoadImage(path); err != nil {
		t.Errorf("Expected case-insensitive extension match, got: %v", err)
	}
}

func TestLoadImage_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texture.xcf")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err := LoadImage(path)
	if err == nil {
		t.Fatal("Expected error for unsupported extension, got nil")
	}
}
