package mapgen

import (
	"github.com/arl/terrainmesh/mesh"
	"github.com/arl/terrainmesh/noise"
)

// assignWater computes v_water[r]: ghost and boundary regions are
// always water; everything else follows a noise-shaped coastline
// predicate in normalized [-1,1]^2 space.
func (g *Map) assignWater() {
	m := g.Mesh
	g.VWater = make([]bool, m.NumRegions)
	for r := int32(0); r < m.NumRegions; r++ {
		if m.IsGhostRegion(r) || m.IsBoundaryRegion(r) {
			g.VWater[r] = true
			continue
		}
		p := m.RegionPos[r]
		nx := (p.X - 500) / 500
		ny := (p.Y - 500) / 500
		n := noise.Mix(g.fbmWater(nx, ny), 0.5, g.Param.Water.Round)
		d2 := nx*nx + ny*ny
		g.VWater[r] = n-(1-g.Param.Water.Inflate)*d2 < 0
	}
}

// fbmWater samples the fractal-brownian-motion coastline noise, using
// the water-dedicated noise source so it never correlates with mountain
// or moisture noise.
func (g *Map) fbmWater(x, y float32) float32 {
	return noise.FBM(g.waterNoise, x, y)
}

// assignOcean flood-fills from the ghost region through water-adjacent
// regions: a region is ocean iff it is water and reachable from the
// ghost seed via a chain of water neighbors. O(R).
func (g *Map) assignOcean() Status {
	m := g.Mesh
	g.VOcean = make([]bool, m.NumRegions)

	ghost := m.GhostRegion()
	g.VOcean[ghost] = true
	queue := []int32{ghost}

	var neighbors []int32
	var st Status
	for len(queue) > 0 {
		r := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		neighbors, st = m.RegionsAroundRegion(r, neighbors[:0])
		if mesh.Failed(st) {
			return st
		}
		for _, n := range neighbors {
			if g.VOcean[n] || !g.VWater[n] {
				continue
			}
			g.VOcean[n] = true
			queue = append(queue, n)
		}
	}
	return Success
}
