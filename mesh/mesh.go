package mesh

import (
	"github.com/arl/assertgo"
	"github.com/arl/math32"
)

// GhostTriangleOffset is the fixed distance a ghost triangle's position
// is displaced outside its unpaired side, along the side's outward
// normal.
const GhostTriangleOffset float32 = 10

// maxCirculationSteps bounds region circulation; exceeding it means the
// mesh is corrupt.
const maxCirculationSteps = 100

// TriangleMesh is the typed, immutable (after construction) index-based
// dual mesh: triangle-major sides, their opposite pairing, and the
// regions/triangles they connect. All traversal primitives are pure
// functions of these dense arrays. Circulations write into a caller-owned
// output buffer; TrianglesAroundRegion and RegionsAroundRegion also
// allocate a temporary side list per call.
type TriangleMesh struct {
	// Triangles holds, for each side s, the region the side starts from
	// (begin_region(s)). Length is NumSides.
	Triangles []int32
	// Halfedges holds, for each side s, its opposite side (or NoSide
	// before ghost closure). Length is NumSides.
	Halfedges []int32
	// RegionPos holds the (x, y) of every region, including the ghost
	// region whose coordinates are a sentinel and must never be read
	// numerically.
	RegionPos []Point
	// EntrySide holds, for every region r, one incoming side s with
	// end_region(s) == r, such that circulating opposite(next(.)) from
	// it visits every incident side exactly once.
	EntrySide []int32

	// TrianglePos holds the derived centroid (solid triangles) or
	// displaced-outward position (ghost triangles) of every triangle.
	TrianglePos []Point

	NumSides           int32
	NumSolidSides      int32
	NumRegions         int32
	NumBoundaryRegions int32
}

// New builds a TriangleMesh from the ghost-closed arrays and the count of
// boundary regions (the regions closest to the original rectangle's
// perimeter, determined by the caller from point-generation order). It
// computes entry sides and triangle positions, i.e. it performs the
// equivalent of the original design's `_update`.
func New(points []Point, triangles, halfedges []int32, numSolidSides, numBoundaryRegions int32) (*TriangleMesh, Status) {
	if len(triangles) != len(halfedges) || len(triangles)%3 != 0 {
		return nil, Failure | MalformedInput
	}
	m := &TriangleMesh{
		Triangles:          triangles,
		Halfedges:          halfedges,
		RegionPos:          points,
		NumSides:           int32(len(triangles)),
		NumSolidSides:      numSolidSides,
		NumRegions:         int32(len(points)),
		NumBoundaryRegions: numBoundaryRegions,
	}
	if st := m.update(); Failed(st) {
		return nil, st
	}
	return m, Success
}

func (m *TriangleMesh) update() Status {
	m.EntrySide = make([]int32, m.NumRegions)
	for i := range m.EntrySide {
		m.EntrySide[i] = NoSide
	}
	for s := int32(0); s < m.NumSides; s++ {
		r := m.EndRegion(s)
		if m.EntrySide[r] == NoSide || m.Halfedges[s] == NoSide {
			// Prefer a side whose opposite is unset (hull boundary) so a
			// pre-closure circulation starting here terminates cleanly;
			// after closure any such side is equally valid since every
			// circulation is cyclic.
			m.EntrySide[r] = s
		}
	}

	m.TrianglePos = make([]Point, m.NumTriangles())
	for t := int32(0); t < m.NumTriangles(); t++ {
		m.TrianglePos[t] = m.computeTrianglePos(t)
	}

	if st := m.sanityCheck(); Failed(st) {
		return st
	}
	return Success
}

func (m *TriangleMesh) computeTrianglePos(t int32) Point {
	if m.IsGhostTriangle(t) {
		s := 3 * t
		a := m.RegionPos[m.BeginRegion(s)]
		b := m.RegionPos[m.EndRegion(s)]
		mx, my := (a.X+b.X)/2, (a.Y+b.Y)/2
		// outward normal of the directed edge a->b, rotated -90deg.
		dx, dy := b.X-a.X, b.Y-a.Y
		nx, ny := dy, -dx
		length := math32.Sqrt(nx*nx + ny*ny)
		if length == 0 {
			return Point{mx, my}
		}
		return Point{mx + nx/length*GhostTriangleOffset, my + ny/length*GhostTriangleOffset}
	}
	var cx, cy float32
	for i := int32(0); i < 3; i++ {
		p := m.RegionPos[m.Triangles[3*t+i]]
		cx += p.X
		cy += p.Y
	}
	return Point{cx / 3, cy / 3}
}

// --- sizes ---

// NumTriangles returns the number of triangles, solid and ghost.
func (m *TriangleMesh) NumTriangles() int32 { return m.NumSides / 3 }

// NumSolidTriangles returns the number of non-ghost triangles.
func (m *TriangleMesh) NumSolidTriangles() int32 { return m.NumSolidSides / 3 }

// NumSolidRegions returns the number of non-ghost regions.
func (m *TriangleMesh) NumSolidRegions() int32 { return m.NumRegions - 1 }

// GhostRegion returns the index of the single ghost region.
func (m *TriangleMesh) GhostRegion() int32 { return m.NumRegions - 1 }

// --- half-edge arithmetic (component A, exposed as methods for
// discoverability against a concrete mesh) ---

func (m *TriangleMesh) Opposite(s int32) int32      { return m.Halfedges[s] }
func (m *TriangleMesh) BeginRegion(s int32) int32   { return m.Triangles[s] }
func (m *TriangleMesh) EndRegion(s int32) int32     { return m.Triangles[Next(s)] }
func (m *TriangleMesh) InnerTriangle(s int32) int32 { return Triangle(s) }
func (m *TriangleMesh) OuterTriangle(s int32) int32 { return Triangle(m.Opposite(s)) }

// --- predicates ---

func (m *TriangleMesh) IsGhostSide(s int32) bool     { return s >= m.NumSolidSides }
func (m *TriangleMesh) IsGhostTriangle(t int32) bool { return m.IsGhostSide(3 * t) }
func (m *TriangleMesh) IsGhostRegion(r int32) bool   { return r == m.NumRegions-1 }
func (m *TriangleMesh) IsBoundaryRegion(r int32) bool {
	return r < m.NumBoundaryRegions
}
func (m *TriangleMesh) IsBoundarySide(s int32) bool {
	return m.IsGhostSide(s) && s%3 == 0
}

// --- circulations ---

// SidesAroundTriangle fills out (which must have length 3) with the
// three sides of t, in order, returning it.
func (m *TriangleMesh) SidesAroundTriangle(t int32, out []int32) []int32 {
	out[0], out[1], out[2] = 3*t, 3*t+1, 3*t+2
	return out
}

// RegionsAroundTriangle fills out with the three regions incident to t.
func (m *TriangleMesh) RegionsAroundTriangle(t int32, out []int32) []int32 {
	out[0] = m.Triangles[3*t]
	out[1] = m.Triangles[3*t+1]
	out[2] = m.Triangles[3*t+2]
	return out
}

// TrianglesAroundTriangle fills out with the (up to 3) neighbor
// triangles of t, reached across each of its sides.
func (m *TriangleMesh) TrianglesAroundTriangle(t int32, out []int32) []int32 {
	out[0] = m.OuterTriangle(3 * t)
	out[1] = m.OuterTriangle(3*t + 1)
	out[2] = m.OuterTriangle(3*t + 2)
	return out
}

// SidesAroundRegion appends to out (which the caller owns and may reuse
// across calls by passing out[:0]) every side s with end_region(s) == r,
// in CCW order, starting from EntrySide[r]. It aborts with BadCirculation
// if the mesh is corrupt enough that circulation doesn't close within
// maxCirculationSteps.
func (m *TriangleMesh) SidesAroundRegion(r int32, out []int32) ([]int32, Status) {
	start := m.EntrySide[r]
	if start == NoSide {
		return out, Success
	}
	incoming := start
	for steps := 0; ; steps++ {
		if steps > maxCirculationSteps {
			return out, Failure | BadCirculation
		}
		out = append(out, incoming)
		outgoing := Next(incoming)
		incoming = m.Opposite(outgoing)
		if incoming == NoSide || incoming == start {
			break
		}
	}
	return out, Success
}

// TrianglesAroundRegion appends to out every triangle incident to r, in
// the same order as SidesAroundRegion.
func (m *TriangleMesh) TrianglesAroundRegion(r int32, out []int32) ([]int32, Status) {
	var sides []int32
	sides, st := m.SidesAroundRegion(r, sides[:0])
	if Failed(st) {
		return out, st
	}
	for _, s := range sides {
		out = append(out, Triangle(s))
	}
	return out, Success
}

// RegionsAroundRegion appends to out every region adjacent to r.
func (m *TriangleMesh) RegionsAroundRegion(r int32, out []int32) ([]int32, Status) {
	var sides []int32
	sides, st := m.SidesAroundRegion(r, sides[:0])
	if Failed(st) {
		return out, st
	}
	for _, s := range sides {
		out = append(out, m.BeginRegion(s))
	}
	return out, Success
}

// sanityCheck verifies the mesh's structural invariants (opposite()
// pairing and end_region()/begin_region() agreement across a side and
// its successor). The check runs in every build and reports a violation
// as Failure|UnpairedSide; only the assert.True panic is limited to
// debug builds.
func (m *TriangleMesh) sanityCheck() Status {
	ok := true
	for s := int32(0); s < m.NumSides && ok; s++ {
		o := m.Opposite(s)
		if o == NoSide {
			continue
		}
		ok = m.Opposite(o) == s && m.EndRegion(s) == m.BeginRegion(Next(s))
	}
	assert.True(ok, "mesh failed opposite()/end_region() invariants")
	if !ok {
		return Failure | UnpairedSide
	}
	return Success
}
