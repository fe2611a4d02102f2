package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindOrderIsAPermutationOfRegions(t *testing.T) {
	m := gridMesh(t, 6, 6)
	g := New(m, testParam())

	order := g.windOrder()
	require.Len(t, order, int(m.NumRegions))
	seen := make(map[int32]bool, len(order))
	for _, r := range order {
		assert.False(t, seen[r], "region %d appears twice in wind order", r)
		seen[r] = true
	}
}

func TestWindOrderSortsByProjection(t *testing.T) {
	m := gridMesh(t, 6, 6)
	p := testParam()
	p.WindAngleDeg = 0
	g := New(m, p)

	order := g.windOrder()
	for i := 1; i < len(order); i++ {
		assert.LessOrEqual(t, m.RegionPos[order[i-1]].X, m.RegionPos[order[i]].X)
	}
}

func TestAssignMoistureBoundaryRegionsForceFullHumidity(t *testing.T) {
	m := gridMesh(t, 6, 6)
	g := New(m, testParam())
	g.assignWater()
	g.RElevation = make([]float32, m.NumRegions)

	require.True(t, Succeeded(g.assignMoisture()))
	for r := int32(0); r < m.NumRegions; r++ {
		if m.IsBoundaryRegion(r) {
			assert.Equal(t, float32(1), g.RHumidity[r])
		}
	}
}

func TestAssignMoistureWaterEvaporatesByDepth(t *testing.T) {
	m := gridMesh(t, 6, 6)
	g := New(m, testParam())
	g.assignWater()
	g.RElevation = make([]float32, m.NumRegions)

	// order[0] has no upwind neighbors at all (it is the wind-order
	// minimum), so its humidity is fully determined by the boundary
	// override, if any, plus its own evaporation term.
	order := g.windOrder()
	r := order[0]
	g.RElevation[r] = -0.4

	want := float32(0.5 * 0.4)
	if m.IsBoundaryRegion(r) {
		want += 1.0
	}

	require.True(t, Succeeded(g.assignMoisture()))
	assert.InDelta(t, want, g.RHumidity[r], 1e-6)
}
