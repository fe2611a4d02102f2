package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arl/terrainmesh/mesh"
)

func prepareElevation(t *testing.T, g *Map) {
	t.Helper()
	m := g.Mesh
	require.True(t, Succeeded(g.assignOcean()))
	g.CoastT = findCoastTriangles(m, g.VOcean)
	elevation, st := simpleElevation(m, g.VOcean, g.CoastT)
	require.True(t, Succeeded(st))
	g.TElevation = elevation
}

func TestAssignDownslopeSeedsHaveNoSide(t *testing.T) {
	m := gridMesh(t, 8, 8)
	p := testParam()
	p.OceanRouting = true
	g := New(m, p)
	g.assignWater()
	prepareElevation(t, g)

	require.True(t, Succeeded(g.assignDownslope()))
	for t2 := int32(0); t2 < m.NumTriangles(); t2++ {
		if triangleAllRegions(m, t2, func(r int32) bool { return g.VOcean[r] }) {
			assert.Equal(t, mesh.NoSide, g.TDownslopeS[t2])
		}
	}
}

func TestAssignDownslopeOrderCoversEveryReachedTriangle(t *testing.T) {
	m := gridMesh(t, 8, 8)
	p := testParam()
	p.OceanRouting = false
	g := New(m, p)
	g.assignWater()
	prepareElevation(t, g)

	require.True(t, Succeeded(g.assignDownslope()))
	assert.LessOrEqual(t, len(g.OrderT), int(m.NumTriangles()))
	seen := make(map[int32]bool, len(g.OrderT))
	for _, tr := range g.OrderT {
		assert.False(t, seen[tr], "triangle %d appears twice in order_t", tr)
		seen[tr] = true
	}
	for tr := int32(0); tr < m.NumTriangles(); tr++ {
		if g.TDownslopeS[tr] != mesh.NoSide {
			assert.True(t, seen[tr], "triangle %d has a downslope side but is missing from order_t", tr)
		}
	}
}

func TestAssignDownslopeTargetIsLowerOrEqualElevation(t *testing.T) {
	m := gridMesh(t, 8, 8)
	g := New(m, testParam())
	g.assignWater()
	prepareElevation(t, g)

	require.True(t, Succeeded(g.assignDownslope()))
	for _, tr := range g.OrderT {
		s := g.TDownslopeS[tr]
		if s == mesh.NoSide {
			continue
		}
		parent := m.OuterTriangle(s)
		assert.LessOrEqual(t, g.TElevation[parent], g.TElevation[tr]+1e-3)
	}
}
