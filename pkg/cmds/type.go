package cmds

import (
	"fmt"

	"github.com/delphix/sdb-go/pkg/sdb"
	"github.com/delphix/sdb-go/pkg/target"
)

// Type prints the type of every object of the pipeline.
type Type struct {
	sdb.Base
}

var typeReg = &sdb.Registration{
	Names:   []string{"type"},
	Usage:   "type",
	Summary: "print the type of the objects of the pipeline",
	New:     func() sdb.Command { return &Type{} },
}

func (cmd *Type) Run(c *sdb.Context, in sdb.Stream) sdb.Stream {
	return func(func(target.Object) bool) {
		for obj := range in {
			fmt.Fprintln(c.Out, obj.Type())
		}
	}
}
