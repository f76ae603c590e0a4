package canny

import (
	"fmt"
	"image"
	"math"
)

// EdgeClass is the initial hysteresis classification of a pixel.
type EdgeClass uint8

const (
	NonEdge EdgeClass = iota
	Weak
	Strong
)

// String returns a short human-readable name.
func (c EdgeClass) String() string {
	switch c {
	case NonEdge:
		return "non-edge"
	case Weak:
		return "weak"
	case Strong:
		return "strong"
	default:
		return "unknown"
	}
}

// Thresholds are the two hysteresis limits on the thinned magnitude.
type Thresholds struct {
	// Low is the minimum magnitude of a weak candidate.
	Low float32
	// High is the minimum magnitude of a strong edge.
	High float32
}

// Validate reports an error wrapping ErrInvalidThresholds unless
// 0 <= Low < High and both values are finite.
func (t Thresholds) Validate() error {
	lo, hi := float64(t.Low), float64(t.High)
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return fmt.Errorf("%w: thresholds must be finite (low=%v, high=%v)", ErrInvalidThresholds, t.Low, t.High)
	}
	if t.Low < 0 || t.High < 0 {
		return fmt.Errorf("%w: thresholds must not be negative (low=%v, high=%v)", ErrInvalidThresholds, t.Low, t.High)
	}
	if t.Low >= t.High {
		return fmt.Errorf("%w: low threshold %v must be below high threshold %v", ErrInvalidThresholds, t.Low, t.High)
	}
	return nil
}

// classOf classifies a single magnitude. NaN is never an edge.
func (t Thresholds) classOf(v float32) EdgeClass {
	switch {
	case v >= t.High:
		return Strong
	case v >= t.Low:
		return Weak
	default:
		return NonEdge
	}
}

// Stats counts pixels per hysteresis outcome.
type Stats struct {
	Strong   int `json:"strong_pixels"`
	Weak     int `json:"weak_pixels"`
	Promoted int `json:"promoted_pixels"`
	Edge     int `json:"edge_pixels"`
}

// Classify returns the row-major EdgeClass of every pixel of thinned.
// Border pixels are always NonEdge.
func Classify(thinned *Field, t Thresholds) ([]EdgeClass, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := checkInterior("thinned", thinned); err != nil {
		return nil, err
	}
	return classify(thinned, t), nil
}

func classify(thinned *Field, t Thresholds) []EdgeClass {
	w, h := thinned.Width(), thinned.Height()
	classes := make([]EdgeClass, w*h)
	for y := 1; y < h-1; y++ {
		row := thinned.Row(y)
		for x := 1; x < w-1; x++ {
			classes[y*w+x] = t.classOf(row[x])
		}
	}
	return classes
}

// Hysteresis produces the binary edge map for a thinned magnitude field.
//
// Strong pixels are edges. A weak pixel is an edge if and only if a chain of
// 8-connected weak or strong pixels links it to a strong pixel. Edges are
// 255 in the output; everything else, including all border pixels, is 0.
//
// Thresholds are validated before any pixel is examined.
func Hysteresis(thinned *Field, t Thresholds) (*image.Gray, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := checkInterior("thinned", thinned); err != nil {
		return nil, err
	}
	out, _ := hysteresis(thinned, t)
	return out, nil
}

// hysteresis floods outward from every strong pixel with an explicit stack
// of row-major pixel indices. The output image doubles as the visited set.
func hysteresis(thinned *Field, t Thresholds) (*image.Gray, Stats) {
	w, h := thinned.Width(), thinned.Height()
	classes := classify(thinned, t)
	out := image.NewGray(image.Rect(0, 0, w, h))

	var st Stats
	stack := make([]int, 0, 64)
	for i, c := range classes {
		switch c {
		case Strong:
			st.Strong++
			out.Pix[(i/w)*out.Stride+i%w] = 255
			stack = append(stack, i)
		case Weak:
			st.Weak++
		}
	}

	// Border pixels are NonEdge, so every pixel on the stack is interior and
	// all eight neighbors are in bounds.
	neighbors := [8]int{-w - 1, -w, -w + 1, -1, 1, w - 1, w, w + 1}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range neighbors {
			n := i + d
			if classes[n] != Weak {
				continue
			}
			p := (n/w)*out.Stride + n%w
			if out.Pix[p] != 0 {
				continue
			}
			out.Pix[p] = 255
			st.Promoted++
			stack = append(stack, n)
		}
	}

	st.Edge = st.Strong + st.Promoted
	return out, st
}
