package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/arl/terrainmesh/mapgen"
	"github.com/arl/terrainmesh/mesh"
)

var (
	genConfigPath string
	genOutPath    string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "run the map-generation pipeline and report a summary",
	Long: `Build a grid-triangulated mesh, close its ghost boundary, then run
the full map-generation pipeline over it: water, ocean, elevation,
mountains, wind, moisture, downslope routing and river flow.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := defaultConfig()
		if genConfigPath != "" {
			check(unmarshalYAMLFile(genConfigPath, &cfg))
		}

		cols := int(cfg.Width / cfg.CellSize)
		rows := int(cfg.Height / cfg.CellSize)
		out := mesh.GridTriangulation(mesh.Point{}, cols, rows, cfg.CellSize)

		points, triangles, halfedges, _, numSolidSides, st := mesh.CloseGhosts(out)
		if mesh.Failed(st) {
			check(st)
		}

		m, st := mesh.New(points, triangles, halfedges, numSolidSides, 0)
		if mesh.Failed(st) {
			check(st)
		}

		g := mapgen.New(m, cfg.Param)
		if st := g.Generate(); mapgen.Failed(st) {
			check(st)
		}

		printSummary(m, g)

		if genOutPath != "" {
			check(marshalYAMLFile(genOutPath, g.TElevation))
			fmt.Printf("elevation field written to '%s'\n", genOutPath)
		}
	},
}

func printSummary(m *mesh.TriangleMesh, g *mapgen.Map) {
	p := message.NewPrinter(language.English)

	var ocean, water int32
	for r := int32(0); r < m.NumRegions; r++ {
		if g.VOcean[r] {
			ocean++
		}
		if g.VWater[r] {
			water++
		}
	}

	p.Printf("regions:    %d (%d water, %d ocean)\n", m.NumRegions, water, ocean)
	p.Printf("triangles:  %d (%d solid)\n", m.NumTriangles(), m.NumSolidTriangles())
	p.Printf("peaks:      %d\n", len(g.PeakT))
	p.Printf("coast:      %d triangles\n", len(g.CoastT))

	for _, stage := range []string{"water", "ocean", "coast", "mountains", "elevation",
		"region-elevation", "moisture", "triangle-moisture", "downslope", "flow"} {
		if d := g.BuildContext().AccumulatedTime(stage); d > 0 {
			p.Printf("  %-18s %v\n", stage, d)
		}
	}
}

func init() {
	RootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "settings file (defaults used if omitted)")
	generateCmd.Flags().StringVar(&genOutPath, "out", "", "write the elevation field to this YAML file")
}
