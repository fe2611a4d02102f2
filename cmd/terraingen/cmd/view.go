package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/arl/terrainmesh/mapgen"
	"github.com/arl/terrainmesh/mesh"
)

var (
	oceanStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("17")).Background(lipgloss.Color("17"))
	waterStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Background(lipgloss.Color("25"))
	coastStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	lowlandStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	highlandStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("94"))
	peakStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	titleViewStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Padding(0, 1)
)

var viewKeys = struct {
	quit key.Binding
	help key.Binding
}{
	quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
}

// viewModel renders a generated Map as a grid of colored glyphs, one per
// solid triangle, printed in full below a title line; the view does not
// scroll.
type viewModel struct {
	m    *mesh.TriangleMesh
	g    *mapgen.Map
	cols int

	showHelp bool
	width    int
	height   int
}

func (vm viewModel) Init() tea.Cmd { return nil }

func (vm viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		vm.width, vm.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, viewKeys.quit):
			return vm, tea.Quit
		case key.Matches(msg, viewKeys.help):
			vm.showHelp = !vm.showHelp
		}
	}
	return vm, nil
}

func glyph(vm viewModel, t int32) string {
	switch {
	case vm.m.IsGhostTriangle(t):
		return " "
	case triangleAllRegions(vm.g, t):
		return oceanStyle.Render(" ")
	}

	e := vm.g.TElevation[t]
	switch {
	case e < 0:
		return waterStyle.Render(" ")
	case e < 0.05:
		return coastStyle.Render(".")
	case e < 0.4:
		return lowlandStyle.Render("^")
	case e < 0.75:
		return highlandStyle.Render("^")
	default:
		return peakStyle.Render("A")
	}
}

// triangleAllRegions reports whether every region incident to t is
// ocean, used here only to pick the rendering glyph.
func triangleAllRegions(g *mapgen.Map, t int32) bool {
	var regions [3]int32
	g.Mesh.RegionsAroundTriangle(t, regions[:])
	for _, r := range regions {
		if !g.VOcean[r] {
			return false
		}
	}
	return true
}

func (vm viewModel) View() string {
	var b strings.Builder
	b.WriteString(titleViewStyle.Render(fmt.Sprintf("terraingen  %d regions  %d triangles",
		vm.m.NumRegions, vm.m.NumTriangles())))
	b.WriteString("\n")

	n := vm.m.NumSolidTriangles()
	for t := int32(0); t < n; t++ {
		b.WriteString(glyph(vm, t))
		if (t+1)%int32(vm.cols) == 0 {
			b.WriteString("\n")
		}
	}

	if vm.showHelp {
		b.WriteString(helpStyle.Render("q: quit   ?: toggle help"))
	}
	return b.String()
}

var viewConfigPath string

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "inspect a generated map in the terminal",
	Long: `Build a grid-triangulated mesh, run the map-generation pipeline,
then render the result as a colored ASCII grid in an interactive
terminal viewer.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := defaultConfig()
		if viewConfigPath != "" {
			check(unmarshalYAMLFile(viewConfigPath, &cfg))
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

		vm := viewModel{m: m, g: g, cols: 2 * cols}
		if _, err := tea.NewProgram(vm).Run(); err != nil {
			check(err)
		}
	},
}

func init() {
	RootCmd.AddCommand(viewCmd)
	viewCmd.Flags().StringVar(&viewConfigPath, "config", "", "settings file (defaults used if omitted)")
}
