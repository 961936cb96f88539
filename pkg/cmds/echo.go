package cmds

import (
	"github.com/delphix/sdb-go/pkg/sdb"
	"github.com/delphix/sdb-go/pkg/target"
)

// Echo passes its input through unchanged, then appends one void pointer
// object per integer literal given as an argument.
type Echo struct {
	sdb.Base
	addrs []uint64
}

var echoReg = &sdb.Registration{
	Names:   []string{"echo", "cc"},
	Usage:   "echo [address ...]",
	Summary: "turn integer literals into objects and append them to the pipeline",
	New:     func() sdb.Command { return &Echo{} },
}

func (cmd *Echo) Parse(args []string) error {
	args, err := remainderArgs(args)
	if err != nil {
		return err
	}
	for _, arg := range args {
		v, err := parseIntArg(cmd.Name, arg)
		if err != nil {
			return err
		}
		cmd.addrs = append(cmd.addrs, v)
	}
	return nil
}

func (cmd *Echo) Run(c *sdb.Context, in sdb.Stream) sdb.Stream {
	return func(yield func(target.Object) bool) {
		for obj := range in {
			if !yield(obj) {
				return
			}
		}
		vp := lookupTypeOrThrow(c, cmd.Name, "void *")
		for _, addr := range cmd.addrs {
			if !yield(c.Target.Value(vp, addr)) {
				return
			}
		}
	}
}
