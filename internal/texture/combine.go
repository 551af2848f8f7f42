package texture

import (
	"fmt"
	"image"
	"image/color"

	"github.com/CanadianSniper/DayZ-Texture-Exporter/internal/model"
)

// Channel fill levels for missing optional sources
const (
	// WhiteFill is used for the R and B channels of _as and _smdi
	WhiteFill uint8 = 255

	// MetallicFill substitutes a missing Metallic map (dielectric surface)
	MetallicFill uint8 = 0

	// RoughnessFill substitutes a missing Roughness map (mid roughness)
	RoughnessFill uint8 = 128
)

// Sources holds the decoded input maps available to a run. Absent slots are
// simply missing from the map (or nil).
type Sources map[model.TextureSlot]image.Image

// Compose builds the packed size×size image for one output type:
//
//	_co    BaseColor passed through as RGB
//	_nohq  Normal passed through as RGB
//	_as    R=white, G=AO luminance, B=white
//	_smdi  R=white, G=Metallic luminance, B=inverted Roughness (gloss)
//
// It returns an error when the output type has no usable source data; the
// caller logs the error and skips that map.
func Compose(outputType model.OutputType, sources Sources, size int) (*image.NRGBA, error) {
	switch outputType {
	case model.OutputCO:
		src := sources[model.SlotBaseColor]
		if src == nil {
			return nil, fmt.Errorf("_co needs a BaseColor input")
		}
		return ResizeSquare(src, size), nil

	case model.OutputNOHQ:
		src := sources[model.SlotNormal]
		if src == nil {
			return nil, fmt.Errorf("_nohq needs a Normal input")
		}
		return ResizeSquare(src, size), nil

	case model.OutputAS:
		src := sources[model.SlotAO]
		if src == nil {
			return nil, fmt.Errorf("_as needs an AO input")
		}
		ao := GrayscaleSquare(src, size)
		return mergeChannels(flatGray(size, WhiteFill), ao, flatGray(size, WhiteFill)), nil

	case model.OutputSMDI:
		metallic := sources[model.SlotMetallic]
		roughness := sources[model.SlotRoughness]
		if metallic == nil && roughness == nil {
			return nil, fmt.Errorf("_smdi needs a Metallic or Roughness input")
		}
		metal := grayOrFill(metallic, size, MetallicFill)
		gloss := invertGray(grayOrFill(roughness, size, RoughnessFill))
		return mergeChannels(flatGray(size, WhiteFill), metal, gloss), nil

	default:
		return nil, fmt.Errorf("unknown output type: %s", outputType)
	}
}

// mergeChannels packs three 8-bit planes into the R, G and B channels of one
// opaque image. All planes must be size-matched; callers produce them from
// GrayscaleSquare or flatGray at the same size.
func mergeChannels(r, g, b *image.Gray) *image.NRGBA {
	bounds := r.Bounds()
	out := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.SetNRGBA(x, y, color.NRGBA{
				R: r.GrayAt(x, y).Y,
				G: g.GrayAt(x, y).Y,
				B: b.GrayAt(x, y).Y,
				A: 255,
			})
		}
	}
	return out
}

// invertGray returns 255-v for every pixel (roughness to gloss).
func invertGray(src *image.Gray) *image.Gray {
	out := image.NewGray(src.Bounds())
	for i, v := range src.Pix {
		out.Pix[i] = 255 - v
	}
	return out
}

// flatGray returns a size×size plane filled with a constant level.
func flatGray(size int, level uint8) *image.Gray {
	out := image.NewGray(image.Rect(0, 0, size, size))
	for i := range out.Pix {
		out.Pix[i] = level
	}
	return out
}

// grayOrFill converts src to a size×size luminance plane, substituting a
// constant fill when the source is absent.
func grayOrFill(src image.Image, size int, fill uint8) *image.Gray {
	if src == nil {
		return flatGray(size, fill)
	}
	return GrayscaleSquare(src, size)
}
