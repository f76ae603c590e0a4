package canny

import "errors"

var (
	// ErrInvalidDimensions reports mismatched input sizes or inputs smaller
	// than 3x3 (no interior pixels).
	ErrInvalidDimensions = errors.New("canny: invalid dimensions")

	// ErrInvalidThresholds reports a negative or non-finite threshold, or a
	// low threshold that is not strictly below the high threshold.
	ErrInvalidThresholds = errors.New("canny: invalid thresholds")
)
