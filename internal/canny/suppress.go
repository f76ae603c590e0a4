package canny

import "fmt"

// Suppress thins gradient ridges to single-pixel width.
//
// Each interior pixel keeps its magnitude only when it is greater than or
// equal to both neighbors selected by its [Octant]; otherwise it becomes 0.
// The comparison is exact (no epsilon). Border pixels are always 0.
//
// The returned field only ever holds 0 or the unmodified input magnitude.
// A NaN magnitude, or a NaN neighbor, fails the comparison and is
// suppressed.
func Suppress(g *Gradient, opts Options) (*Field, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: gradient is nil", ErrInvalidDimensions)
	}
	if err := checkPair("magnitude", g.Magnitude, "direction", g.Direction); err != nil {
		return nil, err
	}

	mag := g.Magnitude
	w, h := mag.Width(), mag.Height()
	out := NewField(w, h)

	forRows(1, h-1, opts.Workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			dirRow, outRow := g.Direction.Row(y), out.Row(y)
			for x := 1; x < w-1; x++ {
				v := mag.At(x, y)
				off := OctantOf(float64(dirRow[x])).Offsets()
				n1 := mag.At(x+off[0].X, y+off[0].Y)
				n2 := mag.At(x+off[1].X, y+off[1].Y)
				if v >= n1 && v >= n2 {
					outRow[x] = v
				}
			}
		}
	})

	return out, nil
}
