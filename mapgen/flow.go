package mapgen

import "github.com/arl/terrainmesh/mesh"

// initFlow seeds t_flow: every land triangle (t_elevation >= 0) starts
// carrying 0.2 * t_moisture^2 as river flow; ocean triangles start at
// zero and stay there, since accumulateFlow never routes flow into them.
func (g *Map) initFlow() {
	n := g.Mesh.NumTriangles()
	g.TFlow = make([]float32, n)
	g.SFlow = make([]float32, g.Mesh.NumSides)
	for t := int32(0); t < n; t++ {
		if g.TElevation[t] >= 0 {
			v := g.TMoisture[t]
			g.TFlow[t] = 0.2 * v * v
		}
	}
}

// accumulateFlow walks order_t in reverse (ridge line to coast), the
// single fused pass that both accumulates flow into each tributary's
// downslope parent and monotonizes elevation along the way: once a
// parent's elevation is known to exceed its tributary's, it is lowered
// to match, eliminating the closed basins assignDownslope's
// elevation-keyed search can leave behind. Routing itself is never
// revisited here, only elevation and the two flow fields.
func (g *Map) accumulateFlow() {
	g.initFlow()

	for i := len(g.OrderT) - 1; i >= 0; i-- {
		t1 := g.OrderT[i]
		s := g.TDownslopeS[t1]
		if s == mesh.NoSide {
			continue
		}
		t2 := g.Mesh.OuterTriangle(s)

		if g.TElevation[t2] >= 0 {
			g.TFlow[t2] += g.TFlow[t1]
			g.SFlow[s] += g.TFlow[t1]

			if g.TElevation[t2] > g.TElevation[t1] {
				g.TElevation[t2] = g.TElevation[t1]
			}
		}
	}
}
