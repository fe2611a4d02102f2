package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateEndToEndPopulatesEveryField(t *testing.T) {
	m := gridMesh(t, 10, 10)
	g := New(m, testParam())

	require.True(t, Succeeded(g.Generate()))

	assert.Len(t, g.VWater, int(m.NumRegions))
	assert.Len(t, g.VOcean, int(m.NumRegions))
	assert.Len(t, g.RElevation, int(m.NumRegions))
	assert.Len(t, g.TElevation, int(m.NumTriangles()))
	assert.Len(t, g.RHumidity, int(m.NumRegions))
	assert.Len(t, g.RMoisture, int(m.NumRegions))
	assert.Len(t, g.TMoisture, int(m.NumTriangles()))
	assert.Len(t, g.TDownslopeS, int(m.NumTriangles()))
	assert.Len(t, g.TFlow, int(m.NumTriangles()))
	assert.Len(t, g.SFlow, int(m.NumSides))

	for _, d := range []string{"water", "ocean", "coast", "mountains", "elevation",
		"region-elevation", "moisture", "triangle-moisture", "downslope", "flow"} {
		assert.GreaterOrEqual(t, g.BuildContext().AccumulatedTime(d).Nanoseconds(), int64(0))
	}
	assert.NotEmpty(t, g.BuildContext().Messages())
}

func TestGenerateIsDeterministicForSameSeed(t *testing.T) {
	m := gridMesh(t, 8, 8)
	p := testParam()

	g1 := New(m, p)
	require.True(t, Succeeded(g1.Generate()))

	g2 := New(m, p)
	require.True(t, Succeeded(g2.Generate()))

	require.Equal(t, len(g1.TElevation), len(g2.TElevation))
	for i := range g1.TElevation {
		assert.Equal(t, g1.TElevation[i], g2.TElevation[i])
	}
}

func TestGenerateRespectsPaintedConstraints(t *testing.T) {
	m := gridMesh(t, 6, 6)
	p := testParam()
	p.Constraints = Constraints{
		Size:   2,
		Values: []int8{-80, -80, 80, 80},
	}
	g := New(m, p)
	require.True(t, Succeeded(g.Generate()))
	assert.Len(t, g.TElevation, int(m.NumTriangles()))
}
