package imaging

import (
	"fmt"

	"github.com/ironsheep/canny-edge-mcp/internal/canny"
)

// Sobel computes the horizontal and vertical 3x3 Sobel derivatives of f.
//
//	dx kernel      dy kernel
//	-1  0  1       -1 -2 -1
//	-2  0  2        0  0  0
//	-1  0  1        1  2  1
//
// dx is positive where intensity increases to the right, dy where it
// increases downward. Borders are reflected as in [Smooth].
func Sobel(f *canny.Field) (dx, dy *canny.Field, err error) {
	w, h := f.Width(), f.Height()
	if w < 2 || h < 2 {
		return nil, nil, fmt.Errorf("sobel needs at least 2x2 pixels, got %dx%d", w, h)
	}

	dx = canny.NewField(w, h)
	dy = canny.NewField(w, h)
	for y := 0; y < h; y++ {
		up, mid, down := f.Row(reflect101(y-1, h)), f.Row(y), f.Row(reflect101(y+1, h))
		gxRow, gyRow := dx.Row(y), dy.Row(y)
		for x := 0; x < w; x++ {
			l, r := reflect101(x-1, w), reflect101(x+1, w)
			gxRow[x] = (up[r] - up[l]) + 2*(mid[r]-mid[l]) + (down[r] - down[l])
			gyRow[x] = (down[l] - up[l]) + 2*(down[x]-up[x]) + (down[r] - up[r])
		}
	}
	return dx, dy, nil
}
