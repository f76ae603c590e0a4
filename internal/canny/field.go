package canny

import "fmt"

// Field is a width x height grid of float32 samples in row-major order.
//
// Intermediate stages of the detector (derivatives, magnitude, direction,
// thinned magnitude) are all Fields of the same size.
type Field struct {
	width  int
	height int
	data   []float32
}

// NewField allocates a zero-filled field. Non-positive dimensions yield an
// empty field.
func NewField(width, height int) *Field {
	if width <= 0 || height <= 0 {
		return &Field{}
	}
	return &Field{
		width:  width,
		height: height,
		data:   make([]float32, width*height),
	}
}

// FieldFrom wraps data as a width x height field. The slice is used
// directly, not copied; it must hold exactly width*height samples.
func FieldFrom(width, height int, data []float32) (*Field, error) {
	if width <= 0 || height <= 0 || len(data) != width*height {
		return nil, fmt.Errorf("%w: %d samples for %dx%d field", ErrInvalidDimensions, len(data), width, height)
	}
	return &Field{width: width, height: height, data: data}, nil
}

// Width returns the number of columns.
func (f *Field) Width() int { return f.width }

// Height returns the number of rows.
func (f *Field) Height() int { return f.height }

// At returns the sample at column x, row y. Coordinates are not checked
// beyond the slice bounds check.
func (f *Field) At(x, y int) float32 {
	return f.data[y*f.width+x]
}

// Set stores v at column x, row y.
func (f *Field) Set(x, y int, v float32) {
	f.data[y*f.width+x] = v
}

// Row returns row y as a slice aliasing the field's storage.
func (f *Field) Row(y int) []float32 {
	return f.data[y*f.width : (y+1)*f.width]
}

// Data returns the backing row-major slice.
func (f *Field) Data() []float32 { return f.data }

// SameSize reports whether f and o have identical dimensions.
func (f *Field) SameSize(o *Field) bool {
	return o != nil && f.width == o.width && f.height == o.height
}

// Clone returns a deep copy of f.
func (f *Field) Clone() *Field {
	c := NewField(f.width, f.height)
	copy(c.data, f.data)
	return c
}

// checkInterior verifies the field exists and has at least one interior pixel.
func checkInterior(name string, f *Field) error {
	if f == nil {
		return fmt.Errorf("%w: %s field is nil", ErrInvalidDimensions, name)
	}
	if f.width < 3 || f.height < 3 {
		return fmt.Errorf("%w: %s field is %dx%d, need at least 3x3", ErrInvalidDimensions, name, f.width, f.height)
	}
	return nil
}

// checkPair verifies two fields are usable and share dimensions.
func checkPair(aName string, a *Field, bName string, b *Field) error {
	if err := checkInterior(aName, a); err != nil {
		return err
	}
	if err := checkInterior(bName, b); err != nil {
		return err
	}
	if !a.SameSize(b) {
		return fmt.Errorf("%w: %s is %dx%d but %s is %dx%d",
			ErrInvalidDimensions, aName, a.width, a.height, bName, b.width, b.height)
	}
	return nil
}
