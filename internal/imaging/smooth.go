package imaging

import (
	"fmt"
	"math"

	"github.com/anthonynsimon/bild/blur"

	"github.com/ironsheep/canny-edge-mcp/internal/canny"
)

// SmoothMethod selects the Gaussian smoothing implementation.
type SmoothMethod string

const (
	// SmoothKernel convolves the float field with a square Gaussian kernel.
	// Precision is preserved; borders are reflected without repeating the
	// edge sample (gfedcb|abcdefgh|gfedcba).
	SmoothKernel SmoothMethod = "kernel"

	// SmoothBild renders the field to 8-bit, blurs it with bild and converts
	// back. Faster on large images but quantizes intensities to 1/255.
	SmoothBild SmoothMethod = "bild"
)

// ParseSmoothMethod maps a user-supplied name to a SmoothMethod. An empty
// string selects SmoothKernel.
func ParseSmoothMethod(s string) (SmoothMethod, error) {
	switch SmoothMethod(s) {
	case "", SmoothKernel:
		return SmoothKernel, nil
	case SmoothBild:
		return SmoothBild, nil
	default:
		return "", fmt.Errorf("unknown smoothing method %q (want %q or %q)", s, SmoothKernel, SmoothBild)
	}
}

// Smooth applies a Gaussian blur to f and returns a new field.
//
// For SmoothKernel, size is the odd kernel width (3 reproduces a 3x3
// blur). A sigma <= 0 is derived from size as 0.3*((size-1)/2 - 1) + 0.8.
// For SmoothBild, sigma is passed as the bild blur radius and size is
// ignored.
func Smooth(f *canny.Field, method SmoothMethod, size int, sigma float64) (*canny.Field, error) {
	switch method {
	case "", SmoothKernel:
		if size < 1 || size%2 == 0 {
			return nil, fmt.Errorf("kernel size must be a positive odd number, got %d", size)
		}
		if sigma <= 0 {
			sigma = 0.3*(float64(size-1)*0.5-1) + 0.8
		}
		return convolveSeparable(f, gaussianKernel(size, sigma)), nil
	case SmoothBild:
		if sigma <= 0 {
			return nil, fmt.Errorf("bild smoothing needs a positive sigma, got %g", sigma)
		}
		blurred := blur.Gaussian(FieldToGray(f), sigma)
		out := canny.NewField(f.Width(), f.Height())
		for y := 0; y < f.Height(); y++ {
			row := out.Row(y)
			off := y * blurred.Stride
			for x := range row {
				row[x] = float32(blurred.Pix[off+4*x]) / 255.0
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown smoothing method %q", method)
	}
}

// gaussianKernel returns a normalized 1-D Gaussian of the given odd size.
func gaussianKernel(size int, sigma float64) []float64 {
	k := make([]float64, size)
	r := size / 2
	var sum float64
	for i := range k {
		d := float64(i - r)
		k[i] = math.Exp(-(d * d) / (2 * sigma * sigma))
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// convolveSeparable applies k horizontally then vertically.
func convolveSeparable(f *canny.Field, k []float64) *canny.Field {
	w, h := f.Width(), f.Height()
	r := len(k) / 2

	tmp := canny.NewField(w, h)
	for y := 0; y < h; y++ {
		src, dst := f.Row(y), tmp.Row(y)
		for x := 0; x < w; x++ {
			var sum float64
			for i, kv := range k {
				sum += float64(src[reflect101(x+i-r, w)]) * kv
			}
			dst[x] = float32(sum)
		}
	}

	out := canny.NewField(w, h)
	for y := 0; y < h; y++ {
		dst := out.Row(y)
		for x := 0; x < w; x++ {
			var sum float64
			for i, kv := range k {
				sum += float64(tmp.At(x, reflect101(y+i-r, h))) * kv
			}
			dst[x] = float32(sum)
		}
	}
	return out
}

// reflect101 maps an out-of-range index back into [0, n) by mirroring
// around the first and last samples without repeating them.
func reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		} else {
			i = 2*n - 2 - i
		}
	}
	return i
}
