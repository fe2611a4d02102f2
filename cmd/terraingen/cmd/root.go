package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "terraingen",
	Short: "generate procedural island terrain",
	Long: `terraingen builds a triangle/polygon dual mesh and runs the
map-generation pipeline over it: water and ocean classification,
elevation, mountains, wind and moisture, downslope routing and river
flow.

	- generate   run the pipeline and write its output
	- config     write a settings file prefilled with defaults
	- view       inspect a generated map in the terminal`,
}

// Execute adds all child commands to the root command and runs it. Called
// once by main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
