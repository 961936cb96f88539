package cmds

import (
	"fmt"
	"strconv"

	"github.com/delphix/sdb-go/pkg/sdb"
	"github.com/delphix/sdb-go/pkg/target"
)

// Array yields the elements of array objects. Pointer objects work too,
// but need an explicit element count.
type Array struct {
	sdb.Base
	nelems uint64
	given  bool
}

var arrayReg = &sdb.Registration{
	Names:   []string{"array"},
	Usage:   "array [nelems]",
	Summary: "walk the elements of an array",
	New:     func() sdb.Command { return &Array{} },
}

func (cmd *Array) Parse(args []string) error {
	_, rest, err := parseArgs(cmd.Name, args)
	if err != nil {
		return err
	}
	switch len(rest) {
	case 0:
		return nil
	case 1:
		n, err := strconv.ParseUint(rest[0], 0, 64)
		if err != nil {
			return &sdb.CommandInvalidInputError{Command: cmd.Name, Argument: rest[0]}
		}
		cmd.nelems, cmd.given = n, true
		return nil
	}
	return &sdb.CommandArgumentsError{Command: cmd.Name, Detail: "expected a single element count"}
}

func (cmd *Array) Run(c *sdb.Context, in sdb.Stream) sdb.Stream {
	return func(yield func(target.Object) bool) {
		for obj := range in {
			n := cmd.nelems
			switch can := obj.Type().Canonical(); can.Kind {
			case target.KindArray:
				if !cmd.given {
					n = can.Len
				} else if n > can.Len {
					fmt.Fprintf(c.Out, "warning: requested size %d exceeds type size %d\n",
						n, can.Len)
					n = can.Len
				}
			case target.KindPointer:
				if !cmd.given {
					sdb.Throw(&sdb.CommandError{
						Command: cmd.Name,
						Message: fmt.Sprintf("'%s' is a pointer - please specify the number of elements",
							obj.Type()),
					})
				}
			default:
				sdb.Throw(&sdb.CommandError{
					Command: cmd.Name,
					Message: fmt.Sprintf("'%s' is not an array nor a pointer type", obj.Type()),
				})
			}
			for i := uint64(0); i < n; i++ {
				elem, err := obj.Index(i)
				if err != nil {
					sdb.Throw(&sdb.CommandError{Command: cmd.Name, Message: err.Error()})
				}
				if !yield(elem) {
					return
				}
			}
		}
	}
}
