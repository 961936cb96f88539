package cmds

import (
	"github.com/delphix/sdb-go/pkg/sdb"
	"github.com/delphix/sdb-go/pkg/target"
)

// Sum drains the pipeline and yields the sum of its integer values.
type Sum struct {
	sdb.Base
}

var sumReg = &sdb.Registration{
	Names:   []string{"sum"},
	Usage:   "sum",
	Summary: "return the sum of the objects in the pipeline",
	New:     func() sdb.Command { return &Sum{} },
}

func (cmd *Sum) Run(c *sdb.Context, in sdb.Stream) sdb.Stream {
	return func(yield func(target.Object) bool) {
		total := uint64(0)
		for obj := range in {
			interruptPoint(c)
			v, err := obj.Uint64()
			if err != nil {
				sdb.Throw(&sdb.CommandError{Command: cmd.Name, Message: err.Error()})
			}
			total += v
		}
		typ := lookupTypeOrThrow(c, cmd.Name, "uint64_t")
		yield(c.Target.Value(typ, total))
	}
}
