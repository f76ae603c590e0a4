package canny

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOctantOf(t *testing.T) {
	tests := []struct {
		name  string
		theta float64
		want  Octant
	}{
		{"zero", 0, Horizontal},
		{"pi", math.Pi, Horizontal},
		{"minus pi", -math.Pi, Horizontal},
		{"just under pi/8", math.Pi/8 - 0.01, Horizontal},
		{"pi/8 boundary", math.Pi / 8, Horizontal},
		{"quarter", math.Pi / 4, DiagonalNESW},
		{"minus three quarters", -3 * math.Pi / 4, DiagonalNESW},
		{"3pi/8 boundary", 3 * math.Pi / 8, DiagonalNESW},
		{"half", math.Pi / 2, Vertical},
		{"minus half", -math.Pi / 2, Vertical},
		{"5pi/8 boundary", 5 * math.Pi / 8, Vertical},
		{"three quarters", 3 * math.Pi / 4, DiagonalNWSE},
		{"minus quarter", -math.Pi / 4, DiagonalNWSE},
		{"7pi/8 boundary", 7 * math.Pi / 8, Horizontal},
		{"just over 7pi/8", 7*math.Pi/8 + 0.01, Horizontal},
		{"minus small", -0.05, Horizontal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OctantOf(tt.theta))
		})
	}
}

func TestOctantOffsets(t *testing.T) {
	for o := Horizontal; o <= DiagonalNWSE; o++ {
		off := o.Offsets()
		// The two neighbors are always opposite each other.
		assert.Equal(t, -off[0].X, off[1].X, o.String())
		assert.Equal(t, -off[0].Y, off[1].Y, o.String())
	}
	assert.Equal(t, "vertical", Vertical.String())
	assert.Equal(t, "unknown", Octant(9).String())
}
