package mapgen

import "github.com/arl/terrainmesh/mesh"

// triangleAllRegions reports whether pred holds for all three regions
// incident to t.
func triangleAllRegions(m *mesh.TriangleMesh, t int32, pred func(int32) bool) bool {
	var regions [3]int32
	m.RegionsAroundTriangle(t, regions[:])
	for _, r := range regions {
		if !pred(r) {
			return false
		}
	}
	return true
}

// simpleElevation computes a BFS distance field from the coastal
// triangles, normalized separately on the land and ocean sides so
// elevation stays in [-1, 1].
func simpleElevation(m *mesh.TriangleMesh, vOcean []bool, coastT []int32) ([]float32, Status) {
	n := m.NumTriangles()
	dist := make([]float32, n)
	for i := range dist {
		dist[i] = -1
	}
	queue := make([]int32, 0, len(coastT))
	for _, t := range coastT {
		dist[t] = 0
		queue = append(queue, t)
	}

	var neighbors [3]int32
	for head := 0; head < len(queue); head++ {
		t := queue[head]
		m.TrianglesAroundTriangle(t, neighbors[:])
		for _, n2 := range neighbors {
			if n2 < 0 || n2 >= n {
				continue
			}
			if dist[n2] != -1 {
				continue
			}
			dist[n2] = dist[t] + 1
			queue = append(queue, n2)
		}
	}

	isOcean := func(t int32) bool {
		return triangleAllRegions(m, t, func(r int32) bool { return vOcean[r] })
	}

	var maxLand, maxOcean float32
	for t := int32(0); t < n; t++ {
		if dist[t] < 0 {
			continue
		}
		if isOcean(t) {
			if dist[t] > maxOcean {
				maxOcean = dist[t]
			}
		} else if dist[t] > maxLand {
			maxLand = dist[t]
		}
	}
	if maxLand == 0 {
		maxLand = 1
	}
	if maxOcean == 0 {
		maxOcean = 1
	}

	elevation := make([]float32, n)
	for t := int32(0); t < n; t++ {
		d := dist[t]
		if d < 0 {
			d = 0
		}
		if isOcean(t) {
			elevation[t] = -d / maxOcean
		} else {
			elevation[t] = d / maxLand
		}
	}
	return elevation, Success
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// paintedElevation is the constraint-painted mode: a low-resolution
// grid bilinearly sampled per triangle, coastal triangles forced to
// exactly 0, land blended between noise roughness and mountain-distance
// slope, water deepened with coast distance and noise.
func (g *Map) paintedElevation() []float32 {
	m := g.Mesh
	n := m.NumTriangles()
	elevation := make([]float32, n)

	for t := int32(0); t < n; t++ {
		p := m.TrianglePos[t]
		e := g.Param.Constraints.sampleAt(p.X/1000, p.Y/1000)
		if e == 0 {
			e = 0.001
		}
		elevation[t] = e
	}

	isElevOcean := func(t int32) bool { return elevation[t] < 0 }
	for t := int32(0); t < n; t++ {
		coastal := m.IsGhostTriangle(t)
		if !coastal {
			var neighbors [3]int32
			m.TrianglesAroundTriangle(t, neighbors[:])
			oceanCount := 0
			for _, n2 := range neighbors {
				if n2 >= 0 && n2 < n && isElevOcean(n2) {
					oceanCount++
				}
			}
			coastal = oceanCount >= 1 && oceanCount < 3
		}
		if coastal {
			elevation[t] = 0
		}
	}

	for t := int32(0); t < n; t++ {
		if elevation[t] == 0 {
			continue
		}
		noise0 := g.precomputedNoise[0][t]
		noise1 := g.precomputedNoise[1][t]
		noise2 := g.precomputedNoise[2][t]
		noise4 := g.precomputedNoise[4][t]

		if elevation[t] < 0 {
			elevation[t] *= 2 + noise1
			elevation[t] = clamp(elevation[t], -1, 1)
			continue
		}

		e := elevation[t]
		noisiness := 1 - 0.5*(1+noise0)
		eh := (1 + noisiness*noise4 + (1-noisiness)*noise2) / 50
		if eh < 0.01 {
			eh = 0.01
		}
		em := 1 - (g.mountainSlope/1000)*g.TMountainDistance[t]
		if em < 0.01 {
			em = 0.01
		}
		weight := e * e
		elevation[t] = clamp((1-weight)*eh+weight*em, -1, 1)
	}

	return elevation
}
