package mesh

import "fmt"

// Status represents the outcome of a mesh construction or traversal
// operation as a set of bit flags, following the same high-level/detail
// split the underlying triangulation contract expects: failures are
// programmer errors (malformed input), not recoverable runtime
// conditions.
type Status uint32

// High level status.
const (
	Failure    Status = 1 << 31 // Operation failed.
	Success    Status = 1 << 30 // Operation succeeded.
	InProgress Status = 1 << 29 // Operation still in progress (long BFS/Dijkstra runs).

	// StatusDetailMask isolates the detail bits below.
	StatusDetailMask = 0x0fffffff

	MalformedInput   Status = 1 << 0 // triangles/halfedges arrays are inconsistent.
	UnpairedSide     Status = 1 << 1 // a side has opposite == NoSide after ghost closure.
	BadCirculation   Status = 1 << 2 // region circulation did not return to start within the step bound.
	InvalidParam     Status = 1 << 3 // an input parameter was invalid.
	OutOfNodes       Status = 1 << 4 // a Dijkstra/BFS search ran out of queue capacity.
	ResidualFrontier Status = 1 << 5 // search exited with unreached land left in the queue.
)

// Error implements the error interface so a Status can be returned/wrapped
// like any other Go error at package boundaries.
func (s Status) Error() string {
	if s&Failure != 0 {
		switch s & StatusDetailMask {
		case MalformedInput:
			return "malformed triangulator input"
		case UnpairedSide:
			return "side has no opposite after ghost closure"
		case BadCirculation:
			return "region circulation failed to close"
		case InvalidParam:
			return "invalid parameter"
		case OutOfNodes:
			return "search ran out of nodes"
		default:
			return fmt.Sprintf("unspecified mesh error 0x%x", uint32(s))
		}
	}
	if s&InProgress != 0 {
		return "in progress"
	}
	return "success"
}

// Succeeded reports whether status represents success.
func Succeeded(s Status) bool { return s&Success != 0 }

// Failed reports whether status represents a failure.
func Failed(s Status) bool { return s&Failure != 0 }

// HasDetail reports whether a specific detail bit is set.
func HasDetail(s Status, detail Status) bool { return s&detail != 0 }
