package mapgen

import "github.com/arl/terrainmesh/mesh"

// Status is the same bit-flag status type mesh construction uses;
// map-generation stages fail for the same reason mesh construction does
// (a corrupt mesh), so they share one vocabulary.
type Status = mesh.Status

const (
	Success      = mesh.Success
	Failure      = mesh.Failure
	InProgress   = mesh.InProgress
	InvalidParam = mesh.InvalidParam
	OutOfNodes   = mesh.OutOfNodes
)

// Succeeded reports whether status represents success.
func Succeeded(s Status) bool { return mesh.Succeeded(s) }

// Failed reports whether status represents a failure.
func Failed(s Status) bool { return mesh.Failed(s) }
