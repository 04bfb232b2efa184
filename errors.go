package softrast

import "errors"

// Errors returned at construction and presentation boundaries. Rendering
// itself never fails: degenerate and clipped-away triangles are skipped.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("softrast: invalid dimensions")

	// ErrVertexCount is returned by Draw when the vertex list is not a
	// whole number of triangles. The complete triangles are still drawn.
	ErrVertexCount = errors.New("softrast: vertex count is not a multiple of 3")

	// ErrTopology is returned by Draw for primitive topologies other than
	// triangle lists and strips.
	ErrTopology = errors.New("softrast: unsupported primitive topology")

	// ErrInvalidColor is returned by ParseHex for malformed hex colors.
	ErrInvalidColor = errors.New("softrast: invalid hex color")
)
