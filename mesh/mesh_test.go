package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closedSquareMesh(t *testing.T) *TriangleMesh {
	t.Helper()
	points, triangles, halfedges, _, numSolidSides, st := CloseGhosts(squareTriangulation())
	require.True(t, Succeeded(st))
	m, st := New(points, triangles, halfedges, numSolidSides, 4)
	require.True(t, Succeeded(st))
	return m
}

func TestTriangleMeshSizes(t *testing.T) {
	m := closedSquareMesh(t)
	assert.Equal(t, int32(18), m.NumSides)
	assert.Equal(t, int32(6), m.NumTriangles())
	assert.Equal(t, int32(2), m.NumSolidTriangles())
	assert.Equal(t, int32(5), m.NumRegions)
	assert.Equal(t, int32(4), m.NumSolidRegions())
	assert.Equal(t, int32(4), m.GhostRegion())
}

func TestTriangleMeshOppositeBijection(t *testing.T) {
	m := closedSquareMesh(t)
	for s := int32(0); s < m.NumSides; s++ {
		o := m.Opposite(s)
		assert.NotEqual(t, NoSide, o)
		assert.Equal(t, s, m.Opposite(o))
		assert.Equal(t, m.EndRegion(s), m.BeginRegion(Next(s)))
	}
}

func TestTriangleMeshGhostPredicates(t *testing.T) {
	m := closedSquareMesh(t)
	assert.False(t, m.IsGhostTriangle(0))
	assert.False(t, m.IsGhostTriangle(1))
	for tri := int32(2); tri < 6; tri++ {
		assert.True(t, m.IsGhostTriangle(tri))
	}
	assert.True(t, m.IsGhostRegion(4))
	assert.False(t, m.IsGhostRegion(0))
}

func TestTriangleMeshSolidCentroid(t *testing.T) {
	m := closedSquareMesh(t)
	// triangle 0 = regions 0,1,2 = (0,0),(1,0),(1,1)
	want := Point{X: (0 + 1 + 1) / 3.0, Y: (0 + 0 + 1) / 3.0}
	got := m.TrianglePos[0]
	assert.InDelta(t, want.X, got.X, 1e-5)
	assert.InDelta(t, want.Y, got.Y, 1e-5)
}

func TestSidesAroundRegionVisitsEachOnce(t *testing.T) {
	m := closedSquareMesh(t)
	seen := make(map[int32]bool)
	for r := int32(0); r < m.NumRegions; r++ {
		var sides []int32
		sides, st := m.SidesAroundRegion(r, sides[:0])
		require.True(t, Succeeded(st))
		for _, s := range sides {
			assert.Equal(t, r, m.EndRegion(s), "side %d around region %d should end at it", s, r)
			assert.False(t, seen[s], "side %d visited twice", s)
			seen[s] = true
		}
	}
	assert.Equal(t, int(m.NumSides), len(seen))
}

func TestTrianglesAroundTriangleUsesNeighbors(t *testing.T) {
	m := closedSquareMesh(t)
	var out [3]int32
	m.TrianglesAroundTriangle(0, out[:])
	// triangle 0 shares its diagonal with triangle 1, and its two hull
	// sides with ghost triangles.
	found1 := false
	for _, n := range out {
		if n == 1 {
			found1 = true
		}
	}
	assert.True(t, found1)
}
