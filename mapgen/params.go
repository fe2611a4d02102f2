package mapgen

// WaterParams tunes the noise-based water predicate.
type WaterParams struct {
	Round   float32 // blend factor between raw fbm noise and a flat 0.5.
	Inflate float32 // how much the edge-distance water penalty is reduced; higher values leave more land toward the edges.
}

// Constraints is a low-resolution painted elevation grid sampled
// bilinearly during constraint-painted elevation. Values are in
// [-128,127] representing elevations in [-1,1) via division by 128.
type Constraints struct {
	Size   int32
	Values []int8 // Size*Size, row-major.
}

// Param bundles every input the map generator needs beyond the mesh
// itself.
type Param struct {
	Seed            uint32
	Spacing         float32
	WindAngleDeg    float32
	Water           WaterParams
	Constraints     Constraints
	MountainDensity float32 // expected triangles per peak, default 1500.

	// OceanRouting controls downslope-routing seeding: when true (the
	// default), downslope routing is seeded from every ocean/coastal
	// triangle so ocean triangles also get a t_downslope_s, enabling
	// renderers to draw ocean flow at the cost of a larger Dijkstra
	// frontier. When false, only coastal triangles are seeded.
	OceanRouting bool
}

// DefaultParam returns a Param with reasonable starting constants,
// suitable as a starting point for `terraingen config`.
func DefaultParam() Param {
	return Param{
		Seed:            1,
		Spacing:         20,
		WindAngleDeg:    0,
		Water:           WaterParams{Round: 0.5, Inflate: 0.4},
		MountainDensity: 1500,
		OceanRouting:    true,
	}
}

// sampleAt bilinearly samples the constraint grid at normalized
// coordinates u, v in [0,1), clamping to the grid edges.
func (c Constraints) sampleAt(u, v float32) float32 {
	if c.Size <= 0 || len(c.Values) == 0 {
		return 0
	}
	last := float32(c.Size - 1)
	fx := u * last
	fy := v * last
	if fx < 0 {
		fx = 0
	}
	if fy < 0 {
		fy = 0
	}
	if fx > last {
		fx = last
	}
	if fy > last {
		fy = last
	}
	x0 := int32(fx)
	y0 := int32(fy)
	x1, y1 := x0+1, y0+1
	if x1 >= c.Size {
		x1 = c.Size - 1
	}
	if y1 >= c.Size {
		y1 = c.Size - 1
	}
	tx, ty := fx-float32(x0), fy-float32(y0)

	at := func(x, y int32) float32 {
		return float32(c.Values[y*c.Size+x]) / 128
	}
	top := at(x0, y0) + tx*(at(x1, y0)-at(x0, y0))
	bot := at(x0, y1) + tx*(at(x1, y1)-at(x0, y1))
	return top + ty*(bot-top)
}
