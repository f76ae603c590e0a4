package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Region is a rectangle in source-image pixel coordinates. (X1,Y1) is
// inclusive and (X2,Y2) exclusive.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Rect returns the region as an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// PrepareRegion restricts img to region (when non-nil) and rescales the
// result by scale. A scale of 0 or 1 leaves the size unchanged; resizing
// uses a Lanczos filter.
func PrepareRegion(img image.Image, region *Region, scale float64) (image.Image, error) {
	if scale < 0 {
		return nil, fmt.Errorf("scale must not be negative, got %g", scale)
	}

	bounds := img.Bounds()
	out := img
	if region != nil {
		if region.X1 < bounds.Min.X || region.Y1 < bounds.Min.Y || region.X2 > bounds.Max.X || region.Y2 > bounds.Max.Y {
			return nil, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
				region.X1, region.Y1, region.X2, region.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
		}
		if region.X1 >= region.X2 || region.Y1 >= region.Y2 {
			return nil, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
		}
		out = imaging.Crop(img, region.Rect())
	}

	if scale != 0 && scale != 1 {
		newWidth := int(float64(out.Bounds().Dx()) * scale)
		newHeight := int(float64(out.Bounds().Dy()) * scale)
		if newWidth < 1 || newHeight < 1 {
			return nil, fmt.Errorf("scale %g reduces image to %dx%d", scale, newWidth, newHeight)
		}
		out = imaging.Resize(out, newWidth, newHeight, imaging.Lanczos)
	}

	return out, nil
}
