package canny

import "math"

// Gradient holds the per-pixel gradient magnitude and direction.
//
// Magnitude is sqrt(dx² + dy²) and is never negative for finite input.
// Direction is atan2(dy, dx) in radians, in (-π, π].
type Gradient struct {
	Magnitude *Field
	Direction *Field
}

// Width returns the gradient grid width.
func (g *Gradient) Width() int { return g.Magnitude.Width() }

// Height returns the gradient grid height.
func (g *Gradient) Height() int { return g.Magnitude.Height() }

// Direction is kept in (-π, π]: atan2 yields -π for a negative-zero dy
// with negative dx, and float32 rounding maps angles just above -π onto it.
const (
	posPi = float32(math.Pi)
	negPi = -posPi
)

// NewGradient computes magnitude and direction from the horizontal and
// vertical derivative fields. Every pixel is computed, borders included.
//
// dx and dy must have the same dimensions, at least 3x3; otherwise an error
// wrapping ErrInvalidDimensions is returned and nothing is computed.
func NewGradient(dx, dy *Field, opts Options) (*Gradient, error) {
	if err := checkPair("dx", dx, "dy", dy); err != nil {
		return nil, err
	}

	w, h := dx.Width(), dx.Height()
	g := &Gradient{
		Magnitude: NewField(w, h),
		Direction: NewField(w, h),
	}

	forRows(0, h, opts.Workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			gxRow, gyRow := dx.Row(y), dy.Row(y)
			magRow, dirRow := g.Magnitude.Row(y), g.Direction.Row(y)
			for x := range gxRow {
				gx, gy := float64(gxRow[x]), float64(gyRow[x])
				magRow[x] = float32(math.Sqrt(gx*gx + gy*gy))
				d := float32(math.Atan2(gy, gx))
				if d == negPi {
					d = posPi
				}
				dirRow[x] = d
			}
		}
	})

	return g, nil
}
