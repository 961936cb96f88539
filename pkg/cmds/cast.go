package cmds

import (
	"fmt"

	"github.com/delphix/sdb-go/pkg/sdb"
	"github.com/delphix/sdb-go/pkg/target"
)

// Cast converts every object of the pipeline to the given type. The
// remaining arguments are joined, so multi-token type names need no
// quoting.
type Cast struct {
	sdb.Base
	typeName string
}

var castReg = &sdb.Registration{
	Names:   []string{"cast"},
	Usage:   "cast <type>",
	Summary: "cast every object of the pipeline to the given type",
	New:     func() sdb.Command { return &Cast{} },
}

func (cmd *Cast) Parse(args []string) error {
	args, err := remainderArgs(args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return &sdb.CommandArgumentsError{
			Command: cmd.Name,
			Detail:  "the following arguments are required: <type>",
		}
	}
	cmd.typeName = joinRemainder(args)
	return nil
}

func (cmd *Cast) Run(c *sdb.Context, in sdb.Stream) sdb.Stream {
	return func(yield func(target.Object) bool) {
		typ, err := c.Target.LookupType(cmd.typeName)
		if err != nil {
			sdb.Throw(&sdb.CommandError{
				Command: cmd.Name,
				Message: fmt.Sprintf("could not find type '%s'", cmd.typeName),
			})
		}
		for obj := range in {
			cast, err := obj.Cast(typ)
			if err != nil {
				sdb.Throw(&sdb.CommandError{Command: cmd.Name, Message: err.Error()})
			}
			if !yield(cast) {
				return
			}
		}
	}
}
