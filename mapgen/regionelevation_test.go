package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignRegionElevationAveragesIncidentTriangles(t *testing.T) {
	m := gridMesh(t, 6, 6)
	g := New(m, testParam())
	g.TElevation = make([]float32, m.NumTriangles())
	for i := range g.TElevation {
		g.TElevation[i] = 0.5
	}
	g.VWater = make([]bool, m.NumRegions)

	require.True(t, Succeeded(g.assignRegionElevation()))
	for r := int32(0); r < m.NumRegions; r++ {
		if m.IsGhostRegion(r) {
			continue
		}
		assert.InDelta(t, 0.5, g.RElevation[r], 1e-5)
	}
}

func TestAssignRegionElevationCoercesWaterNonPositive(t *testing.T) {
	m := gridMesh(t, 6, 6)
	g := New(m, testParam())
	g.TElevation = make([]float32, m.NumTriangles())
	for i := range g.TElevation {
		g.TElevation[i] = 0.8
	}
	g.VWater = make([]bool, m.NumRegions)
	for r := range g.VWater {
		g.VWater[r] = true
	}

	require.True(t, Succeeded(g.assignRegionElevation()))
	for r := int32(0); r < m.NumRegions; r++ {
		assert.LessOrEqual(t, g.RElevation[r], float32(0))
	}
}
