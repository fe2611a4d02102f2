package mapgen

import "github.com/arl/math32"

// windOrder sorts every region index by its projection onto the wind
// direction, so sweeping the slice in order visits regions upwind
// before their downwind neighbors. Cached on Map since it only depends
// on WindAngleDeg and region positions, not on any generated field.
func (g *Map) windOrder() []int32 {
	if g.cachedWindOrder != nil {
		return g.cachedWindOrder
	}
	m := g.Mesh
	angle := g.Param.WindAngleDeg * math32.Pi / 180
	dx, dy := math32.Cos(angle), math32.Sin(angle)

	order := make([]int32, m.NumRegions)
	proj := make([]float32, m.NumRegions)
	for r := int32(0); r < m.NumRegions; r++ {
		order[r] = r
		p := m.RegionPos[r]
		proj[r] = p.X*dx + p.Y*dy
	}

	// Insertion sort is fine here: called once per Generate and the
	// region count is bounded by spacing, not by map resolution.
	for i := 1; i < len(order); i++ {
		j := i
		for j > 0 && proj[order[j-1]] > proj[order[j]] {
			order[j-1], order[j] = order[j], order[j-1]
			j--
		}
	}

	rank := make([]int32, m.NumRegions)
	for i, r := range order {
		rank[r] = int32(i)
	}

	g.cachedWindOrder = order
	g.windRank = rank
	return order
}

// assignMoisture sweeps regions in wind order. Each region starts from
// the average humidity of its upwind neighbors, deposits a fixed
// fraction of that as baseline rainfall, picks up evaporation if it is
// below sea level, and converts any humidity above what the local
// elevation can hold into orographic rainfall. r_moisture stores the
// rainfall actually deposited; r_humidity stores what the air still
// carries onward.
func (g *Map) assignMoisture() Status {
	m := g.Mesh
	n := m.NumRegions
	g.RHumidity = make([]float32, n)
	g.RMoisture = make([]float32, n)

	order := g.windOrder()
	var neighbors []int32
	for _, r := range order {
		var st Status
		neighbors, st = m.RegionsAroundRegion(r, neighbors[:0])
		if Failed(st) {
			return st
		}

		var upwindSum float32
		var count int
		for _, nb := range neighbors {
			if g.windRank[nb] < g.windRank[r] {
				upwindSum += g.RHumidity[nb]
				count++
			}
		}
		var upwindMoisture float32
		if count > 0 {
			upwindMoisture = upwindSum / float32(count)
		}

		humidity := upwindMoisture
		rainfall := 0.9 * upwindMoisture

		if m.IsBoundaryRegion(r) {
			humidity = 1.0
		}

		elevation := g.RElevation[r]
		if elevation < 0 {
			humidity += 0.5 * -elevation
		}

		if threshold := 1 - elevation; humidity > threshold {
			converted := 0.5 * (humidity - threshold)
			rainfall += converted
			humidity -= converted
		}

		g.RMoisture[r] = rainfall
		g.RHumidity[r] = humidity
	}
	return Success
}

// assignTriangleMoisture averages incident regions' moisture onto each
// triangle, mirroring assignRegionElevation's averaging shape.
func (g *Map) assignTriangleMoisture() {
	m := g.Mesh
	g.TMoisture = make([]float32, m.NumTriangles())
	for t := int32(0); t < m.NumTriangles(); t++ {
		var regions [3]int32
		m.RegionsAroundTriangle(t, regions[:])
		var sum float32
		for _, r := range regions {
			sum += g.RMoisture[r]
		}
		g.TMoisture[t] = sum / 3
	}
}
