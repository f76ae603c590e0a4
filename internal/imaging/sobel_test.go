package imaging

import (
	"testing"

	"github.com/ironsheep/canny-edge-mcp/internal/canny"
)

func TestSobel_VerticalStep(t *testing.T) {
	f := canny.NewField(5, 5)
	for y := 0; y < 5; y++ {
		for x := 2; x < 5; x++ {
			f.Set(x, y, 1)
		}
	}

	dx, dy, err := Sobel(f)
	if err != nil {
		t.Fatalf("Sobel failed: %v", err)
	}

	wantRow := []float32{0, 4, 4, 0, 0}
	for y := 0; y < 5; y++ {
		for x, want := range wantRow {
			if got := dx.At(x, y); got != want {
				t.Errorf("dx(%d,%d): got %v, want %v", x, y, got, want)
			}
			if got := dy.At(x, y); got != 0 {
				t.Errorf("dy(%d,%d): got %v, want 0", x, y, got)
			}
		}
	}
}

func TestSobel_HorizontalStepSign(t *testing.T) {
	f := canny.NewField(4, 4)
	for x := 0; x < 4; x++ {
		f.Set(x, 2, 1)
		f.Set(x, 3, 1)
	}

	dx, dy, err := Sobel(f)
	if err != nil {
		t.Fatalf("Sobel failed: %v", err)
	}
	if dy.At(1, 1) != 4 {
		t.Errorf("dy(1,1): got %v, want 4 (intensity increases downward)", dy.At(1, 1))
	}
	if dx.At(1, 1) != 0 {
		t.Errorf("dx(1,1): got %v, want 0", dx.At(1, 1))
	}
}

func TestSobel_TooSmall(t *testing.T) {
	if _, _, err := Sobel(canny.NewField(1, 5)); err == nil {
		t.Error("expected error for 1-pixel-wide field")
	}
}
