package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/ironsheep/canny-edge-mcp/internal/canny"
)

// FieldToGray renders a field as an 8-bit image by scaling with 255 and
// saturating: negative samples become 0 and samples above 1 become 255.
// NaN renders as 0.
func FieldToGray(f *canny.Field) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.Width(), f.Height()))
	for y := 0; y < f.Height(); y++ {
		dst := img.Pix[y*img.Stride : y*img.Stride+f.Width()]
		for x, v := range f.Row(y) {
			dst[x] = saturate(float64(v) * 255)
		}
	}
	return img
}

// DirectionToGray renders a direction field with (θ+π)/(2π) mapped onto
// 0..255, so -π is black and π is white.
func DirectionToGray(f *canny.Field) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.Width(), f.Height()))
	for y := 0; y < f.Height(); y++ {
		dst := img.Pix[y*img.Stride : y*img.Stride+f.Width()]
		for x, v := range f.Row(y) {
			dst[x] = saturate((float64(v) + math.Pi) / (2 * math.Pi) * 255)
		}
	}
	return img
}

// saturate rounds v to the nearest integer and clamps it to 0..255.
func saturate(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(math.Round(v))
	}
}

// encodePNGBase64 encodes img as PNG and returns the base64 payload.
func encodePNGBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
