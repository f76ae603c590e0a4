package detection

import (
	"fmt"
	"image"
	"sort"
)

// Bounds represents a rectangular bounding box in pixel coordinates.
// (X1, Y1) is the top-left pixel and (X2, Y2) the bottom-right pixel, both
// inclusive.
type Bounds struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Point represents a 2D coordinate in pixel space.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Segment is one 8-connected run of edge pixels.
type Segment struct {
	Bounds Bounds `json:"bounds"`

	// Start is the first pixel of the segment in row-major order.
	Start Point `json:"start"`

	Width  int `json:"width"`
	Height int `json:"height"`

	// Pixels is the number of edge pixels in the segment.
	Pixels int `json:"pixels"`

	// Endpoints counts pixels with exactly one edge neighbor. An open curve
	// has two; a closed contour usually has none.
	Endpoints int `json:"endpoints"`

	// Closed reports a segment without endpoints that encloses some area.
	Closed bool `json:"closed"`
}

// SegmentsResult contains the segments of one edge map.
type SegmentsResult struct {
	// Segments is sorted by pixel count, largest first.
	Segments []Segment `json:"segments"`

	Count int `json:"count"`

	// EdgePixels is the total number of edge pixels, including those in
	// segments dropped by the size filter.
	EdgePixels int `json:"edge_pixels"`
}

// neighbors8 lists the offsets of the 8-connected neighborhood.
var neighbors8 = [8]image.Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Segments groups the edge pixels (value 255) of edges into 8-connected
// segments. Segments with fewer than minPixels pixels are dropped; a
// minPixels below 1 keeps everything.
//
// Ties in size are ordered top to bottom, then left to right.
func Segments(edges *image.Gray, minPixels int) (*SegmentsResult, error) {
	if edges == nil {
		return nil, fmt.Errorf("edge map is nil")
	}

	b := edges.Bounds()
	width, height := b.Dx(), b.Dy()
	isEdge := func(x, y int) bool {
		if x < 0 || y < 0 || x >= width || y >= height {
			return false
		}
		return edges.GrayAt(b.Min.X+x, b.Min.Y+y).Y == 255
	}

	visited := make([]bool, width*height)
	result := &SegmentsResult{Segments: make([]Segment, 0)}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if visited[y*width+x] || !isEdge(x, y) {
				continue
			}
			seg := traceSegment(isEdge, visited, width, x, y)
			result.EdgePixels += seg.Pixels
			if seg.Pixels >= minPixels {
				result.Segments = append(result.Segments, seg)
			}
		}
	}

	sort.SliceStable(result.Segments, func(i, j int) bool {
		return result.Segments[i].Pixels > result.Segments[j].Pixels
	})
	result.Count = len(result.Segments)
	return result, nil
}

// traceSegment flood-fills the segment containing (startX, startY) with an
// explicit stack and marks its pixels in visited.
func traceSegment(isEdge func(x, y int) bool, visited []bool, width, startX, startY int) Segment {
	seg := Segment{
		Bounds: Bounds{X1: startX, Y1: startY, X2: startX, Y2: startY},
		Start:  Point{X: startX, Y: startY},
	}

	visited[startY*width+startX] = true
	stack := []Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		seg.Pixels++
		seg.Bounds.X1 = min(seg.Bounds.X1, p.X)
		seg.Bounds.Y1 = min(seg.Bounds.Y1, p.Y)
		seg.Bounds.X2 = max(seg.Bounds.X2, p.X)
		seg.Bounds.Y2 = max(seg.Bounds.Y2, p.Y)

		degree := 0
		for _, d := range neighbors8 {
			nx, ny := p.X+d.X, p.Y+d.Y
			if !isEdge(nx, ny) {
				continue
			}
			degree++
			if i := ny*width + nx; !visited[i] {
				visited[i] = true
				stack = append(stack, Point{X: nx, Y: ny})
			}
		}
		if degree == 1 {
			seg.Endpoints++
		}
	}

	seg.Width = seg.Bounds.X2 - seg.Bounds.X1 + 1
	seg.Height = seg.Bounds.Y2 - seg.Bounds.Y1 + 1
	seg.Closed = seg.Endpoints == 0 && seg.Width >= 3 && seg.Height >= 3
	return seg
}
