package cmds

import (
	"fmt"

	"github.com/delphix/sdb-go/pkg/sdb"
	"github.com/delphix/sdb-go/pkg/target"
)

// Ptype prints the definition of a type. Bare struct, enum and union tag
// names resolve without their keyword, so 'ptype test_struct' works.
type Ptype struct {
	sdb.Base
	typeName string
}

var ptypeReg = &sdb.Registration{
	Names:   []string{"ptype"},
	Usage:   "ptype <type>",
	Summary: "print the definition of a type",
	New:     func() sdb.Command { return &Ptype{} },
}

func (cmd *Ptype) Parse(args []string) error {
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

func (cmd *Ptype) Run(c *sdb.Context, in sdb.Stream) sdb.Stream {
	return func(func(target.Object) bool) {
		typ, ok := lookupTypeLenient(c, cmd.typeName)
		if !ok {
			sdb.Throw(&sdb.CommandError{
				Command: cmd.Name,
				Message: fmt.Sprintf("couldn't find typedef, struct, enum, nor union named '%s'",
					cmd.typeName),
			})
		}
		fmt.Fprintln(c.Out, typ.Definition())
	}
}
