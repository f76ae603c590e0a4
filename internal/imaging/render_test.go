package imaging

import (
	"encoding/base64"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/ironsheep/canny-edge-mcp/internal/canny"
)

func TestFieldToGray_Saturates(t *testing.T) {
	f, err := canny.FieldFrom(6, 1, []float32{-0.5, 0, 0.5, 1, 3, float32(math.NaN())})
	if err != nil {
		t.Fatalf("FieldFrom failed: %v", err)
	}
	img := FieldToGray(f)

	want := []uint8{0, 0, 128, 255, 255, 0}
	for x, w := range want {
		if got := img.GrayAt(x, 0).Y; got != w {
			t.Errorf("pixel %d: got %d, want %d", x, got, w)
		}
	}
}

func TestDirectionToGray(t *testing.T) {
	f, _ := canny.FieldFrom(3, 1, []float32{-math.Pi, 0, math.Pi})
	img := DirectionToGray(f)

	want := []uint8{0, 128, 255}
	for x, w := range want {
		if got := img.GrayAt(x, 0).Y; got != w {
			t.Errorf("pixel %d: got %d, want %d", x, got, w)
		}
	}
}

func TestEncodePNGBase64(t *testing.T) {
	f := canny.NewField(7, 3)
	encoded, err := encodePNGBase64(FieldToGray(f))
	if err != nil {
		t.Fatalf("encodePNGBase64 failed: %v", err)
	}
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(strings.NewReader(string(decoded)))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	if img.Bounds().Dx() != 7 || img.Bounds().Dy() != 3 {
		t.Errorf("dimensions: got %dx%d, want 7x3", img.Bounds().Dx(), img.Bounds().Dy())
	}
}
