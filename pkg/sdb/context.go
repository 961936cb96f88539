package sdb

import (
	"context"
	"io"
	"os"

	"github.com/delphix/sdb-go/pkg/target"
)

// HistoryStore records the lines a session has evaluated.
type HistoryStore interface {
	// Add appends one line.
	Add(line string) error
	// List returns all recorded lines, oldest first.
	List() ([]string, error)
}

// Context carries everything commands need while a pipeline runs.
type Context struct {
	Target   *target.Target
	Registry *Registry
	// Out is where commands print. Err is where diagnostics go.
	Out io.Writer
	Err io.Writer
	// History is the session's command history, if any.
	History HistoryStore

	ctx context.Context
}

// NewContext returns a Context bound to ctx for cancellation, printing
// to the standard streams.
func NewContext(ctx context.Context, t *target.Target, r *Registry) *Context {
	return &Context{Target: t, Registry: r, Out: os.Stdout, Err: os.Stderr, ctx: ctx}
}

// Interrupted reports whether the evaluation has been cancelled.
// Commands with long-running loops that don't consume their input stream
// should poll it.
func (c *Context) Interrupted() bool {
	return c.ctx != nil && c.ctx.Err() != nil
}

// checkInterrupt throws ErrInterrupt if the evaluation has been
// cancelled.
func (c *Context) checkInterrupt() {
	if c.Interrupted() {
		Throw(ErrInterrupt)
	}
}
