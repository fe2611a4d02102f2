package mapgen

import "github.com/arl/terrainmesh/mesh"

// assignDownslope runs a min-priority search over triangles keyed by
// each triangle's own elevation: seeds are pushed at their raw
// elevation, and whichever seed's frontier reaches an unclaimed land
// triangle first claims it, recording the side that points back down
// toward the coast. t_downslope_s stores that side; order_t records
// triangles in the order their downslope side was assigned, so flow.go
// can later walk it in reverse, from ridge line to coast. Because the
// priority is each triangle's own elevation rather than an accumulated
// path cost, this pass alone can leave local closed basins along the
// tree; monotonizing those away is deferred to the reverse pass in
// flow.go, after routing is fixed.
func (g *Map) assignDownslope() Status {
	m := g.Mesh
	n := m.NumTriangles()

	g.TDownslopeS = make([]int32, n)
	for i := range g.TDownslopeS {
		g.TDownslopeS[i] = mesh.NoSide
	}
	g.OrderT = make([]int32, 0, n)

	seeded := make([]bool, n)
	pool := newNodePool(n)
	queue := newNodeQueue(n)

	seed := func(t int32) {
		if seeded[t] {
			return
		}
		seeded[t] = true
		nd := pool.at(t)
		nd.total = g.TElevation[t]
		queue.push(nd)
	}

	if g.Param.OceanRouting {
		for t := int32(0); t < n; t++ {
			if m.IsGhostTriangle(t) || g.TElevation[t] <= 0 {
				seed(t)
			}
		}
	} else {
		for _, t := range g.CoastT {
			seed(t)
		}
	}

	var neighbors [3]int32
	var sides [3]int32
	for !queue.empty() {
		cur := queue.pop()

		m.TrianglesAroundTriangle(cur.triangle, neighbors[:])
		m.SidesAroundTriangle(cur.triangle, sides[:])
		for i, nb := range neighbors {
			if nb < 0 || nb >= n {
				continue
			}
			if seeded[nb] || g.TElevation[nb] < 0 {
				continue
			}
			g.TDownslopeS[nb] = m.Opposite(sides[i])

			seeded[nb] = true
			nbNode := pool.at(nb)
			nbNode.total = g.TElevation[nb]
			queue.push(nbNode)
			g.OrderT = append(g.OrderT, nb)
		}
	}

	return Success
}
