package mapgen

import "github.com/arl/terrainmesh/mesh"

// findCoastTriangles tests every triangle once, in index order, emitting
// those with at least one ocean region and at least one non-ocean region
// among their three regions.
func findCoastTriangles(m *mesh.TriangleMesh, vOcean []bool) []int32 {
	var coasts []int32
	for t := int32(0); t < m.NumTriangles(); t++ {
		var regions [3]int32
		m.RegionsAroundTriangle(t, regions[:])
		hasOcean, hasLand := false, false
		for _, r := range regions {
			if vOcean[r] {
				hasOcean = true
			} else {
				hasLand = true
			}
		}
		if hasOcean && hasLand {
			coasts = append(coasts, t)
		}
	}
	return coasts
}
