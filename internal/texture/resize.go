package texture

import (
	"image"

	"golang.org/x/image/draw"
)

// ResizeSquare scales src to an exact size×size image using Catmull-Rom
// resampling. Non-square sources are stretched: both axes are scaled to the
// target independently, so the aspect ratio is not preserved.
func ResizeSquare(src image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Rect, src, src.Bounds(), draw.Src, nil)
	return dst
}
