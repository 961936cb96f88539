package cmds

import (
	"github.com/delphix/sdb-go/pkg/sdb"
	"github.com/delphix/sdb-go/pkg/target"
)

// Count drains the pipeline and yields the number of objects it saw.
type Count struct {
	sdb.Base
}

var countReg = &sdb.Registration{
	Names:   []string{"count", "cnt", "wc"},
	Usage:   "count",
	Summary: "return a count of the objects in the pipeline",
	New:     func() sdb.Command { return &Count{} },
}

func (cmd *Count) Run(c *sdb.Context, in sdb.Stream) sdb.Stream {
	return func(yield func(target.Object) bool) {
		n := uint64(0)
		for range in {
			interruptPoint(c)
			n++
		}
		typ := lookupTypeOrThrow(c, cmd.Name, "uint64_t")
		yield(c.Target.Value(typ, n))
	}
}
