package mesh

import "github.com/arl/math32"

// Point is a 2D position in map space. The mesh is strictly planar: no
// component of this module ever carries a third (Z) coordinate.
type Point struct {
	X, Y float32
}

// Rect describes the rectangular domain boundary points are generated
// along.
type Rect struct {
	Left, Top, Width, Height float32
}

// DefaultCurvature is the perpendicular quadratic inset applied to
// boundary samples, in the same length unit as Rect. It is load-bearing:
// a triangulator may fail (or produce slivers) on perfectly collinear
// hull samples.
const DefaultCurvature float32 = 1.0

// curveOffset returns the perpendicular displacement applied to a
// boundary sample at fractional position t (0 at one corner, 1 at the
// next) along an edge: a quadratic term that peaks at the corners and
// vanishes at the edge midpoint.
func curveOffset(t, curvature float32) float32 {
	c := t - 0.5
	return 4 * curvature * c * c
}

// edgeCount returns the number of samples placed along an edge of the
// given length, spaced by spacing once the curvature inset at both ends
// is accounted for.
func edgeCount(length, curvature, spacing float32) int {
	n := int(math32.Ceil((length - 2*curvature) / spacing))
	if n < 1 {
		n = 1
	}
	return n
}

// GenerateBoundary produces the interior boundary samples (placed just
// inside rect, curved perpendicular to each edge) and the exterior
// mirror set (placed just outside rect). The order of returned points is
// unspecified beyond being deterministic for a fixed input.
func GenerateBoundary(rect Rect, spacing, curvature float32) (interior, exterior []Point) {
	nTop := edgeCount(rect.Width, curvature, spacing)
	nSide := edgeCount(rect.Height, curvature, spacing)

	add := func(edge int, t float32) {
		d := curveOffset(t, curvature)
		var x, y float32
		switch edge {
		case 0: // top
			x, y = rect.Left+t*rect.Width, rect.Top
			interior = append(interior, Point{x, y + d})
			exterior = append(exterior, Point{x, y - d})
		case 1: // right
			x, y = rect.Left+rect.Width, rect.Top+t*rect.Height
			interior = append(interior, Point{x - d, y})
			exterior = append(exterior, Point{x + d, y})
		case 2: // bottom
			x, y = rect.Left+(1-t)*rect.Width, rect.Top+rect.Height
			interior = append(interior, Point{x, y - d})
			exterior = append(exterior, Point{x, y + d})
		case 3: // left
			x, y = rect.Left, rect.Top+(1-t)*rect.Height
			interior = append(interior, Point{x + d, y})
			exterior = append(exterior, Point{x - d, y})
		}
	}

	for i := 0; i < nTop; i++ {
		add(0, (float32(i)+0.5)/float32(nTop))
	}
	for i := 0; i < nSide; i++ {
		add(1, (float32(i)+0.5)/float32(nSide))
	}
	for i := 0; i < nTop; i++ {
		add(2, (float32(i)+0.5)/float32(nTop))
	}
	for i := 0; i < nSide; i++ {
		add(3, (float32(i)+0.5)/float32(nSide))
	}
	return interior, exterior
}
