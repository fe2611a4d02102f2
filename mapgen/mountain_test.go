package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseMountainPeaksSkipsAllWaterTriangles(t *testing.T) {
	m := gridMesh(t, 8, 8)
	p := testParam()
	p.MountainDensity = 4
	g := New(m, p)
	g.assignWater()

	peaks := g.chooseMountainPeaks()
	for _, tri := range peaks {
		assert.False(t, triangleAllRegions(m, tri, func(r int32) bool { return g.VWater[r] }))
	}
}

func TestChooseMountainPeaksEmptyWhenDensityZero(t *testing.T) {
	m := gridMesh(t, 4, 4)
	p := testParam()
	p.MountainDensity = 0
	g := New(m, p)
	g.assignWater()
	assert.Empty(t, g.chooseMountainPeaks())
}

func TestCalculateMountainDistanceZeroAtPeaks(t *testing.T) {
	m := gridMesh(t, 8, 8)
	g := New(m, testParam())
	g.assignWater()

	peaks := []int32{0, 5}
	dist := g.calculateMountainDistance(peaks)
	require.Len(t, dist, int(m.NumTriangles()))
	for _, p := range peaks {
		assert.Zero(t, dist[p])
	}
}

func TestCalculateMountainDistanceIncreasesWithHops(t *testing.T) {
	m := gridMesh(t, 8, 8)
	g := New(m, testParam())
	g.assignWater()

	dist := g.calculateMountainDistance([]int32{0})
	var farthestNeighbor [3]int32
	m.TrianglesAroundTriangle(0, farthestNeighbor[:])
	for _, n := range farthestNeighbor {
		if n >= 0 && n < m.NumTriangles() {
			assert.Greater(t, dist[n], float32(0))
		}
	}
}
