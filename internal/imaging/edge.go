package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/ironsheep/canny-edge-mcp/internal/canny"
)

// EdgeOptions configures the full edge detection pipeline.
type EdgeOptions struct {
	// Thresholds are applied to the thinned gradient magnitude. Intensities
	// are in [0,1] and the Sobel kernel is unnormalized, so magnitudes range
	// from 0 to about 5.7.
	Thresholds canny.Thresholds

	GrayMode   GrayMode
	Smoothing  SmoothMethod
	KernelSize int
	Sigma      float64

	// Region optionally restricts detection to part of the image.
	Region *Region
	// Scale resizes the (cropped) image before detection. 0 means 1.
	Scale float64

	Workers int
}

// DefaultEdgeOptions returns thresholds 0.2/0.3, BT.601 gray conversion and
// a 3x3 Gaussian with sigma 0.8.
func DefaultEdgeOptions() EdgeOptions {
	return EdgeOptions{
		Thresholds: canny.Thresholds{Low: 0.2, High: 0.3},
		GrayMode:   GrayBT601,
		Smoothing:  SmoothKernel,
		KernelSize: 3,
		Sigma:      0.8,
		Scale:      1,
	}
}

// Analysis holds every intermediate buffer of one pipeline run.
type Analysis struct {
	// Gray is the intensity field before smoothing.
	Gray *canny.Field
	// Smoothed is the blurred intensity field fed to the Sobel operator.
	Smoothed *canny.Field

	*canny.Stages
}

// Analyze runs gray conversion, smoothing, Sobel and the edge detector on
// img and returns every stage.
//
// Thresholds are validated before any pixel is processed. Images (after
// region and scale) smaller than 3x3 are rejected.
func Analyze(img image.Image, opts EdgeOptions) (*Analysis, error) {
	if err := opts.Thresholds.Validate(); err != nil {
		return nil, err
	}

	src, err := PrepareRegion(img, opts.Region, opts.Scale)
	if err != nil {
		return nil, err
	}
	b := src.Bounds()
	if b.Dx() < 3 || b.Dy() < 3 {
		return nil, fmt.Errorf("%w: image is %dx%d, need at least 3x3", canny.ErrInvalidDimensions, b.Dx(), b.Dy())
	}

	gray, err := ToGray(src, opts.GrayMode)
	if err != nil {
		return nil, err
	}
	smoothed, err := Smooth(gray, opts.Smoothing, opts.KernelSize, opts.Sigma)
	if err != nil {
		return nil, err
	}
	dx, dy, err := Sobel(smoothed)
	if err != nil {
		return nil, err
	}
	stages, err := canny.Run(dx, dy, opts.Thresholds, canny.Options{Workers: opts.Workers})
	if err != nil {
		return nil, err
	}

	return &Analysis{Gray: gray, Smoothed: smoothed, Stages: stages}, nil
}

// Stage is one rendered intermediate buffer.
type Stage struct {
	// Name is a stable identifier such as "smoothed" or "edges".
	Name string
	// FileName is the conventional file name for saving the stage.
	FileName string
	Image    *image.Gray
}

// StageImages renders every stage of a in pipeline order. Float stages are
// scaled by 255 and saturated; the direction stage maps -π..π to 0..255.
func (a *Analysis) StageImages() []Stage {
	return []Stage{
		{Name: "smoothed", FileName: "Gaussian-Filtered-Image.jpg", Image: FieldToGray(a.Smoothed)},
		{Name: "sobel_x", FileName: "Sobel-Filtered-Image(x-axis).jpg", Image: FieldToGray(a.DX)},
		{Name: "sobel_y", FileName: "Sobel-Filtered-Image(y-axis).jpg", Image: FieldToGray(a.DY)},
		{Name: "magnitude", FileName: "Gradient-Image.jpg", Image: FieldToGray(a.Gradient.Magnitude)},
		{Name: "direction", FileName: "Gradient-Direction-Image.jpg", Image: DirectionToGray(a.Gradient.Direction)},
		{Name: "non_maximum_suppression", FileName: "Non-Maximum-Suppression-Image.jpg", Image: FieldToGray(a.Thinned)},
		{Name: "edges", FileName: "Canny-Filtered-Image.jpg", Image: a.Edges},
	}
}

// EdgeDetectResult contains an edge map encoded as base64 PNG.
//
// The image is grayscale with edges in white (255) and background in
// black (0).
type EdgeDetectResult struct {
	// Width of the output image in pixels (region and scale applied).
	Width int `json:"width"`

	// Height of the output image in pixels (region and scale applied).
	Height int `json:"height"`

	ThresholdLow  float32 `json:"threshold_low"`
	ThresholdHigh float32 `json:"threshold_high"`

	// Stats counts strong, weak, promoted and final edge pixels.
	Stats canny.Stats `json:"stats"`

	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`
}

// EdgeDetect performs Canny edge detection on img.
//
// # Algorithm
//
//  1. Grayscale conversion (BT.601 luma or CIE lightness)
//  2. Gaussian smoothing
//  3. Sobel derivatives dx, dy
//  4. magnitude = sqrt(dx² + dy²), direction = atan2(dy, dx)
//  5. Non-maximum suppression along the quantized gradient direction
//  6. Hysteresis: pixels at or above the high threshold are edges; pixels
//     at or above the low threshold are edges only when 8-connected to a
//     strong pixel through other candidates
//
// # Threshold Selection
//
// Thresholds apply to the gradient magnitude of an image with intensities
// in [0,1]. A hard black/white step yields a magnitude of about 4.
// Recommended starting points:
//   - Photographs: low=0.2, high=0.3
//   - Clean diagrams: low=0.5, high=1.5
//   - Noisy scans: low=0.4, high=1.0 with sigma 1.4 and kernel size 5
func EdgeDetect(img image.Image, opts EdgeOptions) (*EdgeDetectResult, error) {
	a, err := Analyze(img, opts)
	if err != nil {
		return nil, err
	}

	encoded, err := encodePNGBase64(a.Edges)
	if err != nil {
		return nil, fmt.Errorf("failed to encode edge image: %w", err)
	}

	return &EdgeDetectResult{
		Width:         a.Edges.Bounds().Dx(),
		Height:        a.Edges.Bounds().Dy(),
		ThresholdLow:  opts.Thresholds.Low,
		ThresholdHigh: opts.Thresholds.High,
		Stats:         a.Stats,
		ImageBase64:   encoded,
		MimeType:      "image/png",
	}, nil
}

// StageResult is one encoded intermediate stage.
type StageResult struct {
	Name        string `json:"name"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EdgeStagesResult contains every pipeline stage encoded as base64 PNG.
type EdgeStagesResult struct {
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Stats  canny.Stats   `json:"stats"`
	Stages []StageResult `json:"stages"`
}

// EdgeStages runs the pipeline and returns each intermediate buffer.
// It is meant for debugging threshold and smoothing choices.
func EdgeStages(img image.Image, opts EdgeOptions) (*EdgeStagesResult, error) {
	a, err := Analyze(img, opts)
	if err != nil {
		return nil, err
	}

	stages := a.StageImages()
	out := &EdgeStagesResult{
		Width:  a.Edges.Bounds().Dx(),
		Height: a.Edges.Bounds().Dy(),
		Stats:  a.Stats,
		Stages: make([]StageResult, 0, len(stages)),
	}
	for _, s := range stages {
		encoded, err := encodePNGBase64(s.Image)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s stage: %w", s.Name, err)
		}
		out.Stages = append(out.Stages, StageResult{Name: s.Name, ImageBase64: encoded, MimeType: "image/png"})
	}
	return out, nil
}

// GradientSampleResult describes the detector state at one pixel.
type GradientSampleResult struct {
	X int `json:"x"`
	Y int `json:"y"`

	Intensity float32 `json:"intensity"`
	DX        float32 `json:"dx"`
	DY        float32 `json:"dy"`
	Magnitude float32 `json:"magnitude"`

	DirectionRadians float64 `json:"direction_radians"`
	DirectionDegrees float64 `json:"direction_degrees"`

	// Octant names the neighbor pair used by non-maximum suppression.
	Octant string `json:"octant"`

	// Thinned is the magnitude after suppression (0 or Magnitude).
	Thinned float32 `json:"thinned"`

	// Class is "non-edge", "weak" or "strong".
	Class string `json:"class"`

	// Edge reports whether the pixel is set in the final edge map.
	Edge bool `json:"edge"`
}

// SampleGradient reports gradient, suppression and hysteresis values at
// (x, y) of an analysis. Coordinates are in the analyzed image (after region
// and scale).
func SampleGradient(a *Analysis, x, y int) (*GradientSampleResult, error) {
	w, h := a.Gray.Width(), a.Gray.Height()
	if x < 0 || y < 0 || x >= w || y >= h {
		return nil, fmt.Errorf("coordinates (%d, %d) outside image bounds (0-%d, 0-%d)", x, y, w-1, h-1)
	}

	dir := float64(a.Gradient.Direction.At(x, y))
	return &GradientSampleResult{
		X:                x,
		Y:                y,
		Intensity:        a.Smoothed.At(x, y),
		DX:               a.DX.At(x, y),
		DY:               a.DY.At(x, y),
		Magnitude:        a.Gradient.Magnitude.At(x, y),
		DirectionRadians: dir,
		DirectionDegrees: math.Round(dir*180/math.Pi*100) / 100,
		Octant:           canny.OctantOf(dir).String(),
		Thinned:          a.Thinned.At(x, y),
		Class:            a.ClassAt(x, y).String(),
		Edge:             a.Edges.GrayAt(x, y).Y == 255,
	}, nil
}
