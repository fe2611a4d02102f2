package mapgen

// assignRegionElevation sets a region's elevation to the average of its
// incident triangles' elevations, except water regions are coerced
// non-positive so lakes and ocean never read as dry land.
func (g *Map) assignRegionElevation() Status {
	m := g.Mesh
	g.RElevation = make([]float32, m.NumRegions)

	var triangles []int32
	for r := int32(0); r < m.NumRegions; r++ {
		var st Status
		triangles, st = m.TrianglesAroundRegion(r, triangles[:0])
		if Failed(st) {
			return st
		}
		if len(triangles) == 0 {
			continue
		}
		var sum float32
		for _, t := range triangles {
			sum += g.TElevation[t]
		}
		avg := sum / float32(len(triangles))
		if g.VWater[r] && avg >= 0 {
			avg = -0.001
		}
		g.RElevation[r] = avg
	}
	return Success
}
