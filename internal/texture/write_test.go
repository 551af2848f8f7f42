package texture

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestWritePNG_Deterministic(t *testing.T) {
	dir := t.TempDir()
	img := uniformImage(8, color.NRGBA{R: 12, G: 200, B: 44, A: 255})

	pathA := filepath.Join(dir, "a.png")
	pathB := filepath.Join(dir, "b.png")

	if err := WritePNG(img, pathA); err != nil {
		t.Fatalf("First write failed: %v", err)
	}
	if err := WritePNG(img, pathB); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}

	dataA, err := os.ReadFile(pathA)
	if err != nil {
		t.Fatalf("Failed to read first file: %v", err)
	}
	dataB, err := os.ReadFile(pathB)
	if err != nil {
		t.Fatalf("Failed to read second file: %v", err)
	}

	if !bytes.Equal(dataA, dataB) {
		t.Error("Identical images should encode to byte-identical files")
	}
}

func TestWritePNG_OverwritesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	if err := os.WriteFile(path, []byte("stale content"), 0644); err != nil {
		t.Fatalf("Failed to seed file: %v", err)
	}

	img := uniformImage(4, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	if err := WritePNG(img, path); err != nil {
		t.Fatalf("Overwrite failed: %v", err)
	}

	loaded, err := LoadImage(path)
	if err != nil {
		t.Fatalf("Overwritten file should decode as PNG: %v", err)
	}
	if loaded.Bounds().Dx() != 4 {
		t.Errorf("Expected 4px wide image, got %d", loaded.Bounds().Dx())
	}
}

func TestWritePNG_BadDirectory(t *testing.T) {
	img := uniformImage(2, color.NRGBA{A: 255})

	err := WritePNG(img, filepath.Join(t.TempDir(), "missing", "out.png"))
	if err == nil {
		t.Error("Expected error for missing directory, got nil")
	}
}

func TestLoadImage_MissingFile(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "nope.png"))
	if err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func TestGrayscaleSquare_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ao.png")

	src := uniformImage(16, color.NRGBA{R: 90, G: 90, B: 90, A: 255})
	if err := WritePNG(src, path); err != nil {
		t.Fatalf("Failed to write source: %v", err)
	}

	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	gray := GrayscaleSquare(img, 8)

	bounds := gray.Bounds()
	if bounds.Dx() != 8 || bounds.Dy() != 8 {
		t.Errorf("Expected 8x8, got %dx%d", bounds.Dx(), bounds.Dy())
	}
	if got := gray.GrayAt(4, 4).Y; !within(got, 90) {
		t.Errorf("Expected luminance ~90, got %d", got)
	}
}
