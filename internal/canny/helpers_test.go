package canny

import (
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// fieldOf builds a field from rows of equal length.
func fieldOf(t *testing.T, rows [][]float32) *Field {
	t.Helper()
	require.NotEmpty(t, rows)
	w := len(rows[0])
	data := make([]float32, 0, w*len(rows))
	for _, r := range rows {
		require.Len(t, r, w)
		data = append(data, r...)
	}
	f, err := FieldFrom(w, len(rows), data)
	require.NoError(t, err)
	return f
}

// randomField fills a field with values in [-scale, scale).
func randomField(rng *rand.Rand, w, h int, scale float32) *Field {
	f := NewField(w, h)
	for i := range f.data {
		f.data[i] = (rng.Float32()*2 - 1) * scale
	}
	return f
}

// gradientOf builds a gradient directly from magnitude and direction rows.
func gradientOf(t *testing.T, mag, dir [][]float32) *Gradient {
	t.Helper()
	return &Gradient{Magnitude: fieldOf(t, mag), Direction: fieldOf(t, dir)}
}

// constRows returns h rows of w copies of v.
func constRows(w, h int, v float32) [][]float32 {
	rows := make([][]float32, h)
	for y := range rows {
		rows[y] = make([]float32, w)
		for x := range rows[y] {
			rows[y][x] = v
		}
	}
	return rows
}

// edgePixels lists the coordinates set to 255.
func edgePixels(img *image.Gray) []image.Point {
	var pts []image.Point
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.GrayAt(x, y).Y == 255 {
				pts = append(pts, image.Pt(x, y))
			}
		}
	}
	return pts
}

// assertBinaryWithZeroBorder checks values are 0/255 and the border is 0.
func assertBinaryWithZeroBorder(t *testing.T, img *image.Gray) {
	t.Helper()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := img.GrayAt(x, y).Y
			require.Truef(t, v == 0 || v == 255, "pixel (%d,%d) = %d, want 0 or 255", x, y, v)
			if x == 0 || y == 0 || x == b.Max.X-1 || y == b.Max.Y-1 {
				require.Equalf(t, uint8(0), v, "border pixel (%d,%d)", x, y)
			}
		}
	}
}
