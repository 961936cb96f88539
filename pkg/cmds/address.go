package cmds

import (
	"strconv"
	"strings"

	"github.com/delphix/sdb-go/pkg/sdb"
	"github.com/delphix/sdb-go/pkg/target"
)

// Address turns objects into pointers to them. Objects that already are
// pointers pass through unchanged. Arguments name symbols or give raw
// hex addresses; those are appended after the input.
type Address struct {
	sdb.Base
	args []string
}

var addressReg = &sdb.Registration{
	Names:   []string{"address", "addr"},
	Usage:   "address [symbol|hex ...]",
	Summary: "return the address of the given objects or symbols",
	New:     func() sdb.Command { return &Address{} },
}

func (cmd *Address) Parse(args []string) error {
	args, err := remainderArgs(args)
	if err != nil {
		return err
	}
	cmd.args = args
	return nil
}

func (cmd *Address) Run(c *sdb.Context, in sdb.Stream) sdb.Stream {
	return func(yield func(target.Object) bool) {
		for obj := range in {
			if obj.Type().Canonical().Kind == target.KindPointer {
				if !yield(obj) {
					return
				}
				continue
			}
			ptr, err := obj.AddressOf()
			if err != nil {
				sdb.Throw(&sdb.CommandError{Command: cmd.Name, Message: err.Error()})
			}
			if !yield(ptr) {
				return
			}
		}
		for _, arg := range cmd.args {
			if !yield(cmd.resolve(c, arg)) {
				return
			}
		}
	}
}

// resolve turns one argument into a pointer object: a hex literal
// becomes a void pointer, anything else is looked up as a symbol.
func (cmd *Address) resolve(c *sdb.Context, arg string) target.Object {
	digits := strings.TrimPrefix(strings.TrimPrefix(arg, "0x"), "0X")
	if v, err := strconv.ParseUint(digits, 16, 64); err == nil {
		return c.Target.Value(lookupTypeOrThrow(c, cmd.Name, "void *"), v)
	}
	obj, err := c.Target.Symbol(arg)
	if err != nil {
		sdb.Throw(&sdb.SymbolNotFoundError{Command: cmd.Name, Symbol: arg})
	}
	ptr, err := obj.AddressOf()
	if err != nil {
		sdb.Throw(&sdb.CommandError{Command: cmd.Name, Message: err.Error()})
	}
	return ptr
}
