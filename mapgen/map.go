// Package mapgen turns a closed TriangleMesh into a fully populated
// terrain: water and ocean classification, elevation, mountains, wind
// and moisture, downslope routing and river flow.
package mapgen

import (
	"github.com/arl/terrainmesh/buildctx"
	"github.com/arl/terrainmesh/mesh"
	"github.com/arl/terrainmesh/noise"
	"github.com/arl/terrainmesh/prng"
)

// noise channel salts keep the per-concern sources from correlating
// even when they share a seed.
const (
	waterSalt   uint64 = 0x9e3779b97f4a7c15
	terrainSalt uint64 = 0xbf58476d1ce4e5b9
)

// Map holds every per-triangle and per-region field the generator
// computes, generated in place over a fixed TriangleMesh.
type Map struct {
	Mesh  *mesh.TriangleMesh
	Param Param

	VWater []bool
	VOcean []bool

	RElevation []float32
	TElevation []float32

	RHumidity []float32
	RMoisture []float32
	TMoisture []float32

	PeakT             []int32
	TMountainDistance []float32

	CoastT []int32

	TDownslopeS []int32
	OrderT      []int32
	TFlow       []float32
	SFlow       []float32

	waterNoise   *noise.Source
	terrainNoise *noise.Source

	precomputedNoise [5][]float32
	mountainSlope    float32

	rng *prng.Source
	bc  *buildctx.Context

	cachedWindOrder []int32
	windRank        []int32
}

// New prepares a Map ready for Generate, seeding every random source
// from Param.Seed so two calls with the same mesh and Param produce
// identical output.
func New(m *mesh.TriangleMesh, p Param) *Map {
	seed := uint64(p.Seed)
	return &Map{
		Mesh:          m,
		Param:         p,
		waterNoise:    noise.New(seed^waterSalt, 5),
		terrainNoise:  noise.New(seed^terrainSalt, 2),
		mountainSlope: defaultMountainSlope,
		rng:           prng.New(seed),
		bc:            buildctx.New(),
	}
}

// BuildContext exposes the diagnostics accumulated by Generate on this
// Map: per-stage timings and a bounded log of progress/warning/error
// messages. Timings and messages add up across repeated Generate calls.
func (g *Map) BuildContext() *buildctx.Context { return g.bc }

// Generate runs the full pipeline (water, ocean, coast, mountains,
// elevation, region elevation, wind/moisture, downslope routing, flow
// accumulation) in order, stopping at the first stage that fails.
func (g *Map) Generate() Status {
	stage := func(name string, fn func() Status) Status {
		g.bc.StartTimer(name)
		defer g.bc.StopTimer(name)
		st := fn()
		if Failed(st) {
			g.bc.Log(buildctx.Error, "%s failed: %v", name, st)
		}
		return st
	}

	if st := stage("water", func() Status { g.assignWater(); return Success }); Failed(st) {
		return st
	}
	if st := stage("ocean", g.assignOcean); Failed(st) {
		return st
	}

	g.bc.StartTimer("coast")
	g.CoastT = findCoastTriangles(g.Mesh, g.VOcean)
	g.bc.StopTimer("coast")

	g.bc.StartTimer("mountains")
	g.PeakT = g.chooseMountainPeaks()
	g.TMountainDistance = g.calculateMountainDistance(g.PeakT)
	g.precomputedNoise = g.precalculateNoise()
	g.bc.StopTimer("mountains")

	g.bc.StartTimer("elevation")
	if g.Param.Constraints.Size > 0 {
		g.TElevation = g.paintedElevation()
	} else {
		elevation, st := simpleElevation(g.Mesh, g.VOcean, g.CoastT)
		if Failed(st) {
			g.bc.StopTimer("elevation")
			return st
		}
		g.TElevation = elevation
	}
	g.bc.StopTimer("elevation")

	if st := stage("region-elevation", g.assignRegionElevation); Failed(st) {
		return st
	}
	if st := stage("moisture", g.assignMoisture); Failed(st) {
		return st
	}

	g.bc.StartTimer("triangle-moisture")
	g.assignTriangleMoisture()
	g.bc.StopTimer("triangle-moisture")

	if st := stage("downslope", g.assignDownslope); Failed(st) {
		return st
	}

	g.bc.StartTimer("flow")
	g.accumulateFlow()
	g.bc.StopTimer("flow")

	g.bc.Log(buildctx.Progress, "generation complete: %d regions, %d triangles",
		g.Mesh.NumRegions, g.Mesh.NumTriangles())
	return Success
}
