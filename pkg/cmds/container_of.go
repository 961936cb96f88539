package cmds

import (
	"fmt"

	"github.com/delphix/sdb-go/pkg/sdb"
	"github.com/delphix/sdb-go/pkg/target"
)

// ContainerOf converts pointers to a member into pointers to the
// enclosing struct, like the kernel's container_of macro.
type ContainerOf struct {
	sdb.Base
	structName string
	memberName string
}

var containerOfReg = &sdb.Registration{
	Names:   []string{"container_of"},
	Usage:   "container_of <type> <member>",
	Summary: "convert member pointers into pointers to the enclosing struct",
	New:     func() sdb.Command { return &ContainerOf{} },
}

func (cmd *ContainerOf) Parse(args []string) error {
	_, rest, err := parseArgs(cmd.Name, args)
	if err != nil {
		return err
	}
	if len(rest) != 2 {
		return &sdb.CommandArgumentsError{
			Command: cmd.Name,
			Detail:  "the following arguments are required: <type> <member>",
		}
	}
	cmd.structName, cmd.memberName = rest[0], rest[1]
	return nil
}

func (cmd *ContainerOf) Run(c *sdb.Context, in sdb.Stream) sdb.Stream {
	return func(yield func(target.Object) bool) {
		typ, err := structType(c, cmd.Name, cmd.structName)
		if err != nil {
			sdb.Throw(err)
		}
		m, ok := typ.Canonical().Member(cmd.memberName)
		if !ok {
			sdb.Throw(&sdb.CommandError{
				Command: cmd.Name,
				Message: fmt.Sprintf("'%s' has no member '%s'", typ, cmd.memberName),
			})
		}
		ptr := target.PointerTo(typ)
		for obj := range in {
			if obj.Type().Canonical().Kind != target.KindPointer {
				sdb.Throw(&sdb.CommandError{
					Command: cmd.Name,
					Message: fmt.Sprintf("'%s' is not a pointer type", obj.Type()),
				})
			}
			addr, err := obj.Uint64()
			if err != nil {
				sdb.Throw(&sdb.CommandError{Command: cmd.Name, Message: err.Error()})
			}
			if addr < m.Offset {
				sdb.Throw(&sdb.CommandError{
					Command: cmd.Name,
					Message: fmt.Sprintf("address %#x underflows the offset of '%s'", addr, cmd.memberName),
				})
			}
			if !yield(c.Target.Value(ptr, addr-m.Offset)) {
				return
			}
		}
	}
}
