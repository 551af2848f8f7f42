package texture

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// decoders maps the supported input extensions to their decode functions.
// Dispatch is by extension rather than image.Decode sniffing: TGA carries no
// magic bytes, and the tga package registers itself with an empty magic
// string, which would shadow every other registered format.
var decoders = map[string]func(io.Reader) (image.Image, error){
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".bmp":  bmp.Decode,
	".tif":  tiff.Decode,
	".tiff": tiff.Decode,
	".tga":  tga.Decode,
}

// LoadImage decodes the image file at path, choosing the decoder by file
// extension (case-insensitive).
func LoadImage(path string) (image.Image, error) {
	decode, ok := decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("unsupported image format: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer file.Close()

	img, err := decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// GrayscaleSquare scales img to size×size and converts it to 8-bit grayscale
// using the standard luminance weights.
func GrayscaleSquare(img image.Image, size int) *image.Gray {
	resized := ResizeSquare(img, size)
	gray := image.NewGray(resized.Bounds())
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			gray.Set(x, y, resized.NRGBAAt(x, y))
		}
	}
	return gray
}
