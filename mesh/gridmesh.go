package mesh

// GridTriangulation builds a regular quad-grid triangulation: cols x rows
// cells, each split into two triangles along its rising diagonal, over a
// (cols+1) x (rows+1) point grid spaced by cellSize starting at origin.
// It is a legitimate, fully specified triangulation satisfying exactly
// the triangles[3T]/halfedges[3T] contract an external Delaunay
// triangulator would hand to CloseGhosts — used where tests and the CLI
// demo path need a larger mesh than a literal handful of points, without
// smuggling a Delaunay implementation into a module whose spec treats
// one as an external collaborator.
func GridTriangulation(origin Point, cols, rows int, cellSize float32) TriangulatorOutput {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	pointIdx := func(c, r int) int32 { return int32(r*(cols+1) + c) }

	points := make([]Point, (cols+1)*(rows+1))
	for r := 0; r <= rows; r++ {
		for c := 0; c <= cols; c++ {
			points[pointIdx(c, r)] = Point{
				X: origin.X + float32(c)*cellSize,
				Y: origin.Y + float32(r)*cellSize,
			}
		}
	}

	numTriangles := 2 * cols * rows
	triangles := make([]int32, 0, numTriangles*3)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			bl, br := pointIdx(c, r), pointIdx(c+1, r)
			tl, tr := pointIdx(c, r+1), pointIdx(c+1, r+1)
			// lower-left triangle, then upper-right, both wound CCW in a
			// y-down grid so begin_region/end_region agree with Next().
			triangles = append(triangles, bl, br, tl)
			triangles = append(triangles, br, tr, tl)
		}
	}

	halfedges := matchHalfedges(triangles)
	return TriangulatorOutput{Points: points, Triangles: triangles, Halfedges: halfedges}
}

// matchHalfedges pairs every directed side with the opposite-direction
// side sharing its two endpoints, leaving hull sides at NoSide; this is
// the same bookkeeping an external Delaunay triangulator performs
// internally, exposed here because GridTriangulation has to do it too.
func matchHalfedges(triangles []int32) []int32 {
	halfedges := make([]int32, len(triangles))
	for i := range halfedges {
		halfedges[i] = NoSide
	}
	type edgeKey struct{ a, b int32 }
	lookup := make(map[edgeKey]int32, len(triangles))
	for s := int32(0); s < int32(len(triangles)); s++ {
		a, b := triangles[s], triangles[Next(s)]
		if opp, ok := lookup[edgeKey{b, a}]; ok {
			halfedges[s] = opp
			halfedges[opp] = s
			delete(lookup, edgeKey{b, a})
			continue
		}
		lookup[edgeKey{a, b}] = s
	}
	return halfedges
}
