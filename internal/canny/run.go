package canny

import (
	"image"
	"time"
)

// Stages keeps every buffer produced by one detector run.
type Stages struct {
	DX       *Field
	DY       *Field
	Gradient *Gradient
	Thinned  *Field
	Edges    *image.Gray
	Stats    Stats

	Thresholds Thresholds
}

// ClassAt returns the hysteresis class of the thinned pixel at (x, y).
// Border and out-of-range pixels are NonEdge.
func (s *Stages) ClassAt(x, y int) EdgeClass {
	w, h := s.Thinned.Width(), s.Thinned.Height()
	if x < 1 || y < 1 || x >= w-1 || y >= h-1 {
		return NonEdge
	}
	return s.Thresholds.classOf(s.Thinned.At(x, y))
}

// Run executes gradient estimation, non-maximum suppression and hysteresis
// on the derivative fields dx and dy.
//
// Thresholds are checked first, then dimensions; on either failure no pixel
// is processed. The returned Stages references dx and dy without copying
// them.
func Run(dx, dy *Field, t Thresholds, opts Options) (*Stages, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := checkPair("dx", dx, "dy", dy); err != nil {
		return nil, err
	}

	log := Logger()
	start := time.Now()

	grad, err := NewGradient(dx, dy, opts)
	if err != nil {
		return nil, err
	}
	gradDone := time.Now()

	thinned, err := Suppress(grad, opts)
	if err != nil {
		return nil, err
	}
	nmsDone := time.Now()

	edges, st := hysteresis(thinned, t)

	log.Debug("canny run complete",
		"width", dx.Width(),
		"height", dx.Height(),
		"workers", opts.Workers,
		"low", t.Low,
		"high", t.High,
		"gradient", gradDone.Sub(start),
		"suppression", nmsDone.Sub(gradDone),
		"hysteresis", time.Since(nmsDone),
		"strong", st.Strong,
		"weak", st.Weak,
		"promoted", st.Promoted,
	)

	return &Stages{
		DX:       dx,
		DY:       dy,
		Gradient: grad,
		Thinned:  thinned,
		Edges:    edges,
		Stats:    st,

		Thresholds: t,
	}, nil
}
