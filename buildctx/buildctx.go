// Package buildctx provides the build/run diagnostics context used by
// map generation: named-stage timers plus a bounded
// log of progress/warning/error messages, in the spirit of a recast-style
// BuildContext. There is no cancellation or retry here — per the pipeline's
// error model, a run either completes or is discarded by the caller.
package buildctx

import (
	"fmt"
	"log"
	"time"
)

// MaxMessages bounds the in-memory message ring; messages beyond this are
// dropped rather than growing the buffer unbounded.
const MaxMessages = 1000

// Category classifies a logged message.
type Category uint8

const (
	Progress Category = iota
	Warning
	Error
)

func (c Category) prefix() string {
	switch c {
	case Progress:
		return "PROG"
	case Warning:
		return "WARN"
	default:
		return "ERR"
	}
}

// Context accumulates per-stage timings and diagnostic messages for map
// generation. It is not safe for concurrent
// use; the pipeline is single-threaded per spec.
type Context struct {
	start    map[string]time.Time
	acc      map[string]time.Duration
	messages []string
}

// New returns an empty Context.
func New() *Context {
	return &Context{
		start: make(map[string]time.Time),
		acc:   make(map[string]time.Duration),
	}
}

// StartTimer begins timing the named stage.
func (c *Context) StartTimer(stage string) {
	c.start[stage] = time.Now()
}

// StopTimer stops timing the named stage, accumulating elapsed time across
// calls (a stage may be entered more than once, e.g. re-running moisture
// after a wind-angle change).
func (c *Context) StopTimer(stage string) {
	started, ok := c.start[stage]
	if !ok {
		return
	}
	c.acc[stage] += time.Since(started)
	delete(c.start, stage)
}

// AccumulatedTime returns the total time spent in the named stage.
func (c *Context) AccumulatedTime(stage string) time.Duration {
	return c.acc[stage]
}

// Log records a message under category, dropping it silently once
// MaxMessages has been reached (diagnostics must never fail the run).
func (c *Context) Log(cat Category, format string, args ...interface{}) {
	if len(c.messages) >= MaxMessages {
		return
	}
	c.messages = append(c.messages, cat.prefix()+" "+fmt.Sprintf(format, args...))
}

// Messages returns the recorded log in order.
func (c *Context) Messages() []string {
	return c.messages
}

// DumpLog prints a header followed by every recorded message, via the
// standard logger, for interactive debugging of a run.
func (c *Context) DumpLog(header string, args ...interface{}) {
	log.Printf(header, args...)
	for _, m := range c.messages {
		log.Println(m)
	}
}
