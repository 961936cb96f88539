// Package shell implements the sdb program proper: it opens a debug
// target, builds the command registry and evaluates commands, either
// interactively or from a script.
package shell

import (
	"context"
	"fmt"
	"os"

	"github.com/delphix/sdb-go/pkg/cmds"
	"github.com/delphix/sdb-go/pkg/logutil"
	"github.com/delphix/sdb-go/pkg/prog"
	"github.com/delphix/sdb-go/pkg/sdb"
	"github.com/delphix/sdb-go/pkg/sys"
	"github.com/delphix/sdb-go/pkg/target"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram. It handles all invocations not claimed
// by an earlier subprogram, so it must come last in the composition.
type Program struct{}

func (p Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	t, err := openTarget(f, args)
	if err != nil {
		return err
	}

	reg := sdb.NewRegistry()
	cmds.Register(reg)

	if f.Eval != "" {
		return evalOnce(fds, t, reg, f.Eval)
	}
	if sys.IsATTY(fds[0].Fd()) {
		Interact(fds, &Config{Target: t, Registry: reg, Quiet: f.Quiet})
		return nil
	}
	Script(fds, &Config{Target: t, Registry: reg})
	return nil
}

// openTarget builds the debug target from the command line. Exactly one
// of a core image path or a -connect address must be given.
func openTarget(f *prog.Flags, args []string) (*target.Target, error) {
	switch {
	case len(args) > 1:
		return nil, prog.BadUsage("want at most one core image")
	case f.Connect != "" && len(args) == 1:
		return nil, prog.BadUsage("cannot use both a core image and -connect")
	case f.Connect != "":
		t, err := target.Connect(context.Background(), f.Connect)
		if err != nil {
			return nil, fmt.Errorf("cannot connect to %s: %v", f.Connect, err)
		}
		return t, nil
	case len(args) == 1:
		img, err := target.LoadImage(args[0])
		if err != nil {
			return nil, err
		}
		return target.FromImage(img)
	default:
		return nil, prog.BadUsage("need a core image or a -connect address")
	}
}

// evalOnce evaluates a single command line and exits with its code. Used
// for the -e flag.
func evalOnce(fds [3]*os.File, t *target.Target, reg *sdb.Registry, line string) error {
	sess := sdb.NewSession(t, reg)
	sess.Out = fds[1]
	sess.Err = fds[2]
	ctx, done := interruptible(context.Background())
	defer done()
	code, _ := sess.Eval(ctx, line)
	return prog.Exit(code)
}
