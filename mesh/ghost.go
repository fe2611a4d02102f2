package mesh

import "github.com/arl/assertgo"

// TriangulatorOutput is the external collaborator's raw result: a
// Delaunay (or Delaunay-like, see GridTriangulation) triangulation with
// unpaired half-edges (-1) along the hull.
type TriangulatorOutput struct {
	Points    []Point
	Triangles []int32
	Halfedges []int32
}

// CloseGhosts appends one ghost region and one ghost triangle per
// unpaired hull side so that every side has an opposite. It mutates
// nothing in out; it returns new, larger arrays plus the index of the
// appended ghost region.
func CloseGhosts(out TriangulatorOutput) (points []Point, triangles, halfedges []int32, ghostRegion, numSolidSides int32, status Status) {
	numSides := int32(len(out.Triangles))
	if numSides%3 != 0 || len(out.Halfedges) != int(numSides) {
		return nil, nil, nil, 0, 0, Failure | MalformedInput
	}

	// 1. find every unpaired side, remembering the last one seen per
	// owning region so we can walk the hull starting from any of them.
	unpairedSideOfRegion := make(map[int32]int32)
	var unpaired []int32
	for s := int32(0); s < numSides; s++ {
		if out.Halfedges[s] == NoSide {
			unpairedSideOfRegion[out.Triangles[s]] = s
			unpaired = append(unpaired, s)
		}
	}
	u := int32(len(unpaired))
	if u == 0 {
		// already closed: the ghost region is the last point, and the
		// solid sides are those before the first triangle that names it.
		points = append([]Point(nil), out.Points...)
		triangles = append([]int32(nil), out.Triangles...)
		halfedges = append([]int32(nil), out.Halfedges...)
		ghostRegion = int32(len(points)) - 1
		numSolidSides = numSides
		for s := int32(0); s < numSides; s++ {
			if triangles[s] == ghostRegion {
				numSolidSides = 3 * Triangle(s)
				break
			}
		}
		return points, triangles, halfedges, ghostRegion, numSolidSides, Success
	}

	oldLen := numSides
	newLen := oldLen + 3*u

	triangles = make([]int32, newLen)
	halfedges = make([]int32, newLen)
	copy(triangles, out.Triangles)
	copy(halfedges, out.Halfedges)

	ghostRegion = int32(len(out.Points))
	points = make([]Point, ghostRegion+1)
	copy(points, out.Points)
	// ghost region coordinates are a sentinel: never referenced
	// numerically, see IsGhostRegion.
	points[ghostRegion] = Point{X: 0, Y: 0}

	beginRegion := func(s int32) int32 { return triangles[s] }
	endRegion := func(s int32) int32 { return triangles[Next(s)] }

	s := unpaired[0]
	for i := int32(0); i < u; i++ {
		sGhost := oldLen + 3*i
		halfedges[s] = sGhost
		halfedges[sGhost] = s
		triangles[sGhost] = endRegion(s)
		triangles[sGhost+1] = beginRegion(s)
		triangles[sGhost+2] = ghostRegion

		k := oldLen + (3*i+4)%(3*u)
		halfedges[sGhost+2] = k
		halfedges[k] = sGhost + 2

		s = unpairedSideOfRegion[triangles[Next(s)]]
	}

	assert.True(validateGhostClosure(triangles, halfedges),
		"ghost closure produced an inconsistent opposite() pairing")

	return points, triangles, halfedges, ghostRegion, oldLen, Success
}

// validateGhostClosure checks opposite(opposite(s)) == s for every side;
// it is only ever invoked from inside an assert.True call, so it is a
// no-op cost under a non-debug build.
func validateGhostClosure(triangles, halfedges []int32) bool {
	for s, o := range halfedges {
		if o < 0 || o >= int32(len(halfedges)) {
			return false
		}
		if halfedges[o] != int32(s) {
			return false
		}
	}
	return true
}
