// Package canny implements the numerical core of a gradient-based edge
// detector: gradient estimation, directional non-maximum suppression and
// double-threshold hysteresis.
//
// The package consumes plain float32 grids ([Field]) produced by the caller.
// Decoding, grayscale conversion, smoothing and the Sobel convolution that
// yields the two derivative fields are the caller's responsibility (see the
// internal/imaging package).
//
// # Pipeline
//
//	dx, dy  -> NewGradient -> Suppress -> Hysteresis -> *image.Gray (0/255)
//
// Every stage allocates and returns a fresh buffer; inputs are never
// modified. [Run] chains the three stages and keeps every intermediate
// buffer in a [Stages] value for inspection.
//
// # Borders
//
// Gradient values are computed for every pixel. Non-maximum suppression and
// hysteresis only process interior pixels (1 <= x < width-1,
// 1 <= y < height-1); border pixels are always 0 in their output.
//
// # Errors
//
// Dimension problems are reported as [ErrInvalidDimensions] and threshold
// problems as [ErrInvalidThresholds]. Both are wrapped with context and can
// be matched with errors.Is. Non-finite samples are not errors: NaN
// magnitudes never survive suppression and +Inf behaves as a very strong
// edge.
//
// # Concurrency
//
// All functions are safe for concurrent use on distinct inputs. With
// Options.Workers > 1 the gradient and suppression stages split rows across
// goroutines; results are identical to the sequential path.
package canny
