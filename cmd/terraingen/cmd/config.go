package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arl/terrainmesh/mapgen"
)

// Config bundles everything terraingen needs beyond mapgen.Param: the
// rectangle and cell size used to build the demonstration grid mesh
// (spec's Delaunay triangulator is an external collaborator, so the CLI
// exercises the pipeline against mesh.GridTriangulation instead).
type Config struct {
	Width, Height float32
	CellSize      float32
	Param         mapgen.Param
}

func defaultConfig() Config {
	return Config{
		Width:    1000,
		Height:   1000,
		CellSize: 20,
		Param:    mapgen.DefaultParam(),
	}
}

var configCmd = &cobra.Command{
	Use:   "config [FILE]",
	Short: "write a settings file prefilled with defaults",
	Long: `Write a settings file in YAML format, prefilled with default values.

If FILE is not provided, 'terraingen.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "terraingen.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		ok, err := confirmIfExists(path, fmt.Sprintf("file '%s' already exists, overwrite? [y/N]", path))
		if !ok {
			if err == nil {
				fmt.Println("aborted by user")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}
		check(marshalYAMLFile(path, defaultConfig()))
		fmt.Printf("settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
