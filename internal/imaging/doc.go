// Package imaging connects decoded images to the edge detector in package
// canny.
//
// It covers everything around the numeric core: loading and caching image
// files, reducing color to a [0,1] intensity field, Gaussian smoothing,
// Sobel derivatives, region-of-interest cropping and scaling, and rendering
// each stage back to an 8-bit image.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner,
// X increasing rightward and Y increasing downward. For regions, (x1,y1) is
// inclusive and (x2,y2) exclusive. Coordinates passed to [SampleGradient]
// refer to the analyzed image, after region and scale are applied.
//
// # Thread Safety
//
// [ImageCache] is safe for concurrent use. The pipeline functions are
// stateless and may run concurrently on different images.
package imaging
