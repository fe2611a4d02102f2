package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignWaterGhostAndBoundaryAlwaysWater(t *testing.T) {
	m := gridMesh(t, 8, 8)
	g := New(m, testParam())
	g.assignWater()

	require.Len(t, g.VWater, int(m.NumRegions))
	assert.True(t, g.VWater[m.GhostRegion()])
	for r := int32(0); r < m.NumRegions; r++ {
		if m.IsBoundaryRegion(r) {
			assert.True(t, g.VWater[r], "boundary region %d is not water", r)
		}
	}
}

func TestAssignOceanReachesOnlyWaterRegions(t *testing.T) {
	m := gridMesh(t, 8, 8)
	g := New(m, testParam())
	g.assignWater()
	st := g.assignOcean()
	require.True(t, Succeeded(st))

	assert.True(t, g.VOcean[m.GhostRegion()])
	for r := int32(0); r < m.NumRegions; r++ {
		if g.VOcean[r] {
			assert.True(t, g.VWater[r], "region %d is ocean but not water", r)
		}
	}
}
