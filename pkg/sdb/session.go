package sdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/delphix/sdb-go/pkg/diag"
	"github.com/delphix/sdb-go/pkg/sys"
	"github.com/delphix/sdb-go/pkg/target"
)

// Session evaluates lines against one target. It owns the mapping from
// errors to exit statuses; the interactive shell and the one-shot -e
// mode both sit on top of it.
type Session struct {
	Target   *target.Target
	Registry *Registry
	History  HistoryStore
	Out, Err io.Writer
}

// NewSession returns a session printing to the standard streams.
func NewSession(t *target.Target, r *Registry) *Session {
	return &Session{Target: t, Registry: r, Out: os.Stdout, Err: os.Stderr}
}

// Eval evaluates one line under ctx. It returns the line's exit status
// (0 success, 1 reported error, 2 argument parsing failure) and whether
// the session should end.
func (s *Session) Eval(ctx context.Context, line string) (code int, quit bool) {
	c := &Context{
		Target:   s.Target,
		Registry: s.Registry,
		History:  s.History,
		Out:      s.Out,
		Err:      s.Err,
		ctx:      ctx,
	}
	err := s.eval(c, line)
	switch {
	case err == nil:
		return 0, false
	case errors.Is(err, ErrExit):
		return 0, true
	case errors.Is(err, ErrInterrupt), errors.Is(err, errBrokenPipe):
		return 1, false
	}
	var argErr *CommandArgumentsError
	if errors.As(err, &argErr) {
		// Usage and details went to s.Err when the stage was built.
		return 2, false
	}
	if sdbErr, ok := err.(Error); ok {
		fmt.Fprintln(s.Out, sdbErr.Text())
		return 1, false
	}
	var parseErr *diag.Error
	if errors.As(err, &parseErr) {
		diag.ShowError(s.Err, parseErr)
		return 1, false
	}
	s.internalError(err)
	return 1, false
}

func (s *Session) eval(c *Context, line string) (err error) {
	defer Catch(&err)
	logger.Println("eval:", line)
	exprs, err := Tokenize(line)
	if err != nil {
		return err
	}
	if len(exprs) == 0 {
		return nil
	}
	out, shell, err := build(c, Empty, exprs)
	if err != nil {
		return err
	}
	if shell != "" {
		return runShell(c, out, shell)
	}
	for obj := range out {
		c.checkInterrupt()
		text, rerr := obj.Render()
		if rerr != nil {
			return &GenericError{Message: rerr.Error()}
		}
		fmt.Fprintln(c.Out, text)
	}
	return nil
}

// internalError reports an error that escaped the command error
// taxonomy. Such an error is a bug in the debugger itself.
func (s *Session) internalError(err error) {
	fmt.Fprintf(s.Err, "sdb: internal error: %v\n", err)
	fmt.Fprint(s.Err, sys.DumpStack())
	fmt.Fprintln(s.Err, "Please report this at https://github.com/delphix/sdb-go/issues")
}
