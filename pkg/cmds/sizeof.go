package cmds

import (
	"fmt"

	"github.com/delphix/sdb-go/pkg/sdb"
	"github.com/delphix/sdb-go/pkg/target"
)

// Sizeof yields the size of the named types, and of the types of any
// input objects.
type Sizeof struct {
	sdb.Base
	typeNames []string
}

var sizeofReg = &sdb.Registration{
	Names:   []string{"sizeof"},
	Usage:   "sizeof [type ...]",
	Summary: "print the size of types in bytes",
	New:     func() sdb.Command { return &Sizeof{} },
}

func (cmd *Sizeof) Parse(args []string) error {
	args, err := remainderArgs(args)
	if err != nil {
		return err
	}
	cmd.typeNames = args
	return nil
}

func (cmd *Sizeof) Run(c *sdb.Context, in sdb.Stream) sdb.Stream {
	return func(yield func(target.Object) bool) {
		st := lookupTypeOrThrow(c, cmd.Name, "size_t")
		emit := func(typ *target.Type) bool {
			size := typ.Canonical().Size
			if size == 0 {
				sdb.Throw(&sdb.CommandError{
					Command: cmd.Name,
					Message: fmt.Sprintf("cannot get size of incomplete type '%s'", typ),
				})
			}
			return yield(c.Target.Value(st, size))
		}
		for obj := range in {
			if !emit(obj.Type()) {
				return
			}
		}
		for _, tname := range cmd.typeNames {
			typ, ok := lookupTypeLenient(c, tname)
			if !ok {
				sdb.Throw(&sdb.CommandError{
					Command: cmd.Name,
					Message: fmt.Sprintf("could not find type '%s'", tname),
				})
			}
			if !emit(typ) {
				return
			}
		}
	}
}
