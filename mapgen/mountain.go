package mapgen

import (
	"github.com/arl/math32"
	"github.com/arl/terrainmesh/mesh"
)

// defaultMountainSlope controls how quickly the mountain term of land
// elevation falls off with distance from the nearest mountain peak in
// paintedElevation.
const defaultMountainSlope float32 = 20

// noiseOffsetScale pairs each of the five precomputed noise channels
// with the (offset, scale) combination it samples at.
var noiseOffsetScale = [5]struct{ offset, scale float32 }{
	{0, 1},
	{1000, 1},
	{2000, 2},
	{3000, 4},
	{4000, 8},
}

// chooseMountainPeaks scatters peak triangles across the land mesh so
// that the expected spacing between peaks is density triangles, using
// g's rng so the choice is reproducible from Param.Seed.
func (g *Map) chooseMountainPeaks() []int32 {
	m := g.Mesh
	n := m.NumSolidTriangles()
	if n == 0 || g.Param.MountainDensity <= 0 {
		return nil
	}

	var peaks []int32
	for t := int32(0); t < n; t++ {
		if triangleAllRegions(m, t, func(r int32) bool { return g.VWater[r] }) {
			continue
		}
		if g.rng.Float() < 1/g.Param.MountainDensity {
			peaks = append(peaks, t)
		}
	}
	return peaks
}

// calculateMountainDistance is a multi-source BFS from the peak
// triangles, accumulating Euclidean arc length along TrianglePos edges
// rather than hop count so the distance field has continuous slope.
func (g *Map) calculateMountainDistance(peaks []int32) []float32 {
	m := g.Mesh
	n := m.NumTriangles()
	distance := make([]float32, n)
	visited := make([]bool, n)
	for i := range distance {
		distance[i] = math32.MaxFloat32
	}

	type item struct {
		t int32
		d float32
	}
	queue := make([]item, 0, len(peaks))
	for _, p := range peaks {
		distance[p] = 0
		queue = append(queue, item{p, 0})
	}

	var neighbors [3]int32
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if visited[cur.t] {
			continue
		}
		visited[cur.t] = true

		m.TrianglesAroundTriangle(cur.t, neighbors[:])
		for _, nb := range neighbors {
			if nb < 0 || nb >= n || visited[nb] {
				continue
			}
			step := arcLength(m.TrianglePos[cur.t], m.TrianglePos[nb])
			nd := cur.d + step
			if nd < distance[nb] {
				distance[nb] = nd
				queue = append(queue, item{nb, nd})
			}
		}
	}

	for t := int32(0); t < n; t++ {
		if distance[t] == math32.MaxFloat32 {
			distance[t] = 0
		}
	}
	return distance
}

func arcLength(a, b mesh.Point) float32 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return math32.Sqrt(dx*dx + dy*dy)
}

// precalculateNoise samples five fixed (offset, scale) combinations of
// the terrain noise source at every triangle position, feeding the
// roughness blend in paintedElevation.
func (g *Map) precalculateNoise() [5][]float32 {
	m := g.Mesh
	n := m.NumTriangles()
	var out [5][]float32
	for i, os := range noiseOffsetScale {
		arr := make([]float32, n)
		for t := int32(0); t < n; t++ {
			p := m.TrianglePos[t]
			x := (p.X+os.offset)/1000*os.scale
			y := (p.Y+os.offset)/1000*os.scale
			arr[t] = g.terrainNoise.Noise2D(x, y, 0)
		}
		out[i] = arr
	}
	return out
}
