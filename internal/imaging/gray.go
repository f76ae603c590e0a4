package imaging

import (
	"fmt"
	"image"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/canny-edge-mcp/internal/canny"
)

// GrayMode selects how color pixels are reduced to a single intensity.
type GrayMode string

const (
	// GrayBT601 uses the ITU-R BT.601 luma weights 0.299R + 0.587G + 0.114B.
	GrayBT601 GrayMode = "bt601"

	// GrayLightness uses CIE L* (perceptual lightness) scaled to [0,1].
	GrayLightness GrayMode = "lightness"
)

// ParseGrayMode maps a user-supplied name to a GrayMode. An empty string
// selects GrayBT601.
func ParseGrayMode(s string) (GrayMode, error) {
	switch GrayMode(s) {
	case "", GrayBT601:
		return GrayBT601, nil
	case GrayLightness:
		return GrayLightness, nil
	default:
		return "", fmt.Errorf("unknown gray mode %q (want %q or %q)", s, GrayBT601, GrayLightness)
	}
}

// ToGray converts img into an intensity field with values in [0,1].
//
// *image.Gray sources are read directly regardless of mode. Fully
// transparent pixels are treated as black in GrayLightness mode.
func ToGray(img image.Image, mode GrayMode) (*canny.Field, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	f := canny.NewField(width, height)

	if g, ok := img.(*image.Gray); ok {
		for y := 0; y < height; y++ {
			row := f.Row(y)
			src := g.Pix[y*g.Stride : y*g.Stride+width]
			for x, v := range src {
				row[x] = float32(v) / 255.0
			}
		}
		return f, nil
	}

	switch mode {
	case "", GrayBT601:
		for y := 0; y < height; y++ {
			row := f.Row(y)
			for x := 0; x < width; x++ {
				r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
				rf := float64(r>>8) / 255.0
				gf := float64(g>>8) / 255.0
				bf := float64(b>>8) / 255.0
				row[x] = float32(0.299*rf + 0.587*gf + 0.114*bf)
			}
		}
	case GrayLightness:
		for y := 0; y < height; y++ {
			row := f.Row(y)
			for x := 0; x < width; x++ {
				c, ok := colorful.MakeColor(img.At(x+bounds.Min.X, y+bounds.Min.Y))
				if !ok {
					continue
				}
				l, _, _ := c.Lab()
				row[x] = float32(clampUnit(l))
			}
		}
	default:
		return nil, fmt.Errorf("unknown gray mode %q", mode)
	}

	return f, nil
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
