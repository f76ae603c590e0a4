package canny

import (
	"image"
	"math"
)

// Octant is the gradient orientation folded onto [0, π) and quantized into
// four bins. A direction and its opposite fall in the same bin.
type Octant uint8

const (
	// Horizontal covers [0, π/8] and [7π/8, π): compare (x-1,y) and (x+1,y).
	Horizontal Octant = iota
	// DiagonalNESW covers (π/8, 3π/8]: compare (x-1,y-1) and (x+1,y+1).
	DiagonalNESW
	// Vertical covers (3π/8, 5π/8]: compare (x,y-1) and (x,y+1).
	Vertical
	// DiagonalNWSE covers (5π/8, 7π/8): compare (x+1,y-1) and (x-1,y+1).
	DiagonalNWSE
)

// neighborOffsets holds the two comparison offsets per octant as (dx, dy).
var neighborOffsets = [4][2]image.Point{
	Horizontal:   {{X: -1, Y: 0}, {X: 1, Y: 0}},
	DiagonalNESW: {{X: -1, Y: -1}, {X: 1, Y: 1}},
	Vertical:     {{X: 0, Y: -1}, {X: 0, Y: 1}},
	DiagonalNWSE: {{X: 1, Y: -1}, {X: -1, Y: 1}},
}

// OctantOf classifies a gradient direction in radians. Negative angles are
// folded by adding π. Boundary angles go to the first bin that includes them
// in the order Horizontal, DiagonalNESW, Vertical, DiagonalNWSE.
func OctantOf(theta float64) Octant {
	if theta < 0 {
		theta += math.Pi
	}
	switch {
	case theta <= math.Pi/8 || theta >= 7*math.Pi/8:
		return Horizontal
	case theta <= 3*math.Pi/8:
		return DiagonalNESW
	case theta <= 5*math.Pi/8:
		return Vertical
	default:
		return DiagonalNWSE
	}
}

// Offsets returns the pixel offsets of the two neighbors compared during
// non-maximum suppression.
func (o Octant) Offsets() [2]image.Point {
	return neighborOffsets[o&3]
}

// String returns a short human-readable name.
func (o Octant) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case DiagonalNESW:
		return "diagonal-ne-sw"
	case Vertical:
		return "vertical"
	case DiagonalNWSE:
		return "diagonal-nw-se"
	default:
		return "unknown"
	}
}
