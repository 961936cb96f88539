package cmds

import (
	"github.com/delphix/sdb-go/pkg/sdb"
	"github.com/delphix/sdb-go/pkg/target"
)

// Deref dereferences every pointer object of the pipeline.
type Deref struct {
	sdb.Base
}

var derefReg = &sdb.Registration{
	Names:   []string{"deref"},
	Usage:   "deref",
	Summary: "dereference the pointer objects of the pipeline",
	New:     func() sdb.Command { return &Deref{} },
}

func (cmd *Deref) Run(c *sdb.Context, in sdb.Stream) sdb.Stream {
	return func(yield func(target.Object) bool) {
		for obj := range in {
			deref, err := obj.Deref()
			if err != nil {
				sdb.Throw(&sdb.CommandError{Command: cmd.Name, Message: err.Error()})
			}
			if !yield(deref) {
				return
			}
		}
	}
}
