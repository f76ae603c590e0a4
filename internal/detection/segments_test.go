package detection

import (
	"image"
	"image/color"
	"testing"
)

// createEdgeMap creates a black edge map with the given pixels set to 255.
func createEdgeMap(width, height int, pts ...Point) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for _, p := range pts {
		img.SetGray(p.X, p.Y, color.Gray{Y: 255})
	}
	return img
}

// rectangleOutline returns the outline pixels of the inclusive rectangle.
func rectangleOutline(x1, y1, x2, y2 int) []Point {
	var pts []Point
	for x := x1; x <= x2; x++ {
		pts = append(pts, Point{x, y1}, Point{x, y2})
	}
	for y := y1 + 1; y < y2; y++ {
		pts = append(pts, Point{x1, y}, Point{x2, y})
	}
	return pts
}

func TestSegments_Empty(t *testing.T) {
	result, err := Segments(createEdgeMap(10, 10), 0)
	if err != nil {
		t.Fatalf("Segments failed: %v", err)
	}
	if result.Count != 0 || result.EdgePixels != 0 {
		t.Errorf("expected no segments, got %+v", result)
	}
}

func TestSegments_Line(t *testing.T) {
	var pts []Point
	for x := 2; x <= 8; x++ {
		pts = append(pts, Point{x, 5})
	}

	result, err := Segments(createEdgeMap(12, 12, pts...), 1)
	if err != nil {
		t.Fatalf("Segments failed: %v", err)
	}
	if result.Count != 1 {
		t.Fatalf("expected 1 segment, got %d", result.Count)
	}

	seg := result.Segments[0]
	if seg.Pixels != 7 {
		t.Errorf("Pixels: got %d, want 7", seg.Pixels)
	}
	if seg.Bounds != (Bounds{X1: 2, Y1: 5, X2: 8, Y2: 5}) {
		t.Errorf("Bounds: got %+v", seg.Bounds)
	}
	if seg.Width != 7 || seg.Height != 1 {
		t.Errorf("size: got %dx%d, want 7x1", seg.Width, seg.Height)
	}
	if seg.Start != (Point{2, 5}) {
		t.Errorf("Start: got %+v, want (2,5)", seg.Start)
	}
	if seg.Endpoints != 2 || seg.Closed {
		t.Errorf("open line: got endpoints=%d closed=%v", seg.Endpoints, seg.Closed)
	}
}

func TestSegments_DiagonalIsConnected(t *testing.T) {
	img := createEdgeMap(10, 10, Point{1, 1}, Point{2, 2}, Point{3, 3}, Point{4, 4})

	result, err := Segments(img, 0)
	if err != nil {
		t.Fatalf("Segments failed: %v", err)
	}
	if result.Count != 1 {
		t.Fatalf("diagonal pixels should form one segment, got %d", result.Count)
	}
	if result.Segments[0].Pixels != 4 {
		t.Errorf("Pixels: got %d, want 4", result.Segments[0].Pixels)
	}
}

func TestSegments_ClosedContour(t *testing.T) {
	img := createEdgeMap(20, 20, rectangleOutline(3, 4, 12, 10)...)

	result, err := Segments(img, 0)
	if err != nil {
		t.Fatalf("Segments failed: %v", err)
	}
	if result.Count != 1 {
		t.Fatalf("expected 1 segment, got %d", result.Count)
	}
	seg := result.Segments[0]
	if !seg.Closed || seg.Endpoints != 0 {
		t.Errorf("rectangle outline should be closed, got endpoints=%d closed=%v", seg.Endpoints, seg.Closed)
	}
	if seg.Width != 10 || seg.Height != 7 {
		t.Errorf("size: got %dx%d, want 10x7", seg.Width, seg.Height)
	}
	if seg.Pixels != 2*10+2*5 {
		t.Errorf("Pixels: got %d, want 30", seg.Pixels)
	}
}

func TestSegments_SortAndFilter(t *testing.T) {
	pts := []Point{{1, 1}} // isolated pixel
	for x := 5; x <= 7; x++ {
		pts = append(pts, Point{x, 2})
	}
	for y := 5; y <= 14; y++ {
		pts = append(pts, Point{10, y})
	}
	img := createEdgeMap(20, 20, pts...)

	result, err := Segments(img, 2)
	if err != nil {
		t.Fatalf("Segments failed: %v", err)
	}
	if result.EdgePixels != 14 {
		t.Errorf("EdgePixels: got %d, want 14", result.EdgePixels)
	}
	if result.Count != 2 {
		t.Fatalf("expected 2 segments after filtering, got %d", result.Count)
	}
	if result.Segments[0].Pixels != 10 || result.Segments[1].Pixels != 3 {
		t.Errorf("segments not sorted by size: got %d, %d", result.Segments[0].Pixels, result.Segments[1].Pixels)
	}
}

func TestSegments_IgnoresNonEdgeValues(t *testing.T) {
	img := createEdgeMap(5, 5, Point{2, 2})
	img.SetGray(1, 1, color.Gray{Y: 128})

	result, err := Segments(img, 0)
	if err != nil {
		t.Fatalf("Segments failed: %v", err)
	}
	if result.EdgePixels != 1 {
		t.Errorf("only 255 pixels are edges, got %d", result.EdgePixels)
	}
}

func TestSegments_Nil(t *testing.T) {
	if _, err := Segments(nil, 0); err == nil {
		t.Error("expected error for nil edge map")
	}
}
