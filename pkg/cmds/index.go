package cmds

import (
	"github.com/delphix/sdb-go/pkg/sdb"
	"github.com/delphix/sdb-go/pkg/target"
)

// Index picks a single element out of each array or pointer object.
type Index struct {
	sdb.Base
	idx uint64
}

var indexReg = &sdb.Registration{
	Names:   []string{"index", "idx"},
	Usage:   "index <n>",
	Summary: "pick the n-th element of each array or pointer",
	New:     func() sdb.Command { return &Index{} },
}

func (cmd *Index) Parse(args []string) error {
	_, rest, err := parseArgs(cmd.Name, args)
	if err != nil {
		return err
	}
	if len(rest) != 1 {
		return &sdb.CommandArgumentsError{
			Command: cmd.Name,
			Detail:  "the following arguments are required: <n>",
		}
	}
	n, err := parseIntArg(cmd.Name, rest[0])
	if err != nil {
		return err
	}
	cmd.idx = n
	return nil
}

func (cmd *Index) Run(c *sdb.Context, in sdb.Stream) sdb.Stream {
	return func(yield func(target.Object) bool) {
		for obj := range in {
			elem, err := obj.Index(cmd.idx)
			if err != nil {
				sdb.Throw(&sdb.CommandError{Command: cmd.Name, Message: err.Error()})
			}
			if !yield(elem) {
				return
			}
		}
	}
}
