package main

import "github.com/arl/terrainmesh/cmd/terraingen/cmd"

func main() {
	cmd.Execute()
}
