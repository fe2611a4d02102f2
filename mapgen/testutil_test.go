package mapgen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arl/terrainmesh/mesh"
)

// gridMesh builds a closed, ghost-bounded mesh over a cols x rows quad
// grid, large enough to exercise flood fill, BFS and Dijkstra stages
// without a real Delaunay triangulator.
func gridMesh(t *testing.T, cols, rows int) *mesh.TriangleMesh {
	t.Helper()
	out := mesh.GridTriangulation(mesh.Point{}, cols, rows, 10)
	points, triangles, halfedges, _, numSolidSides, st := mesh.CloseGhosts(out)
	require.True(t, mesh.Succeeded(st))
	m, st := mesh.New(points, triangles, halfedges, numSolidSides, 0)
	require.True(t, mesh.Succeeded(st))
	return m
}

func testParam() Param {
	p := DefaultParam()
	p.Seed = 42
	return p
}
