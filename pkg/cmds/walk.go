package cmds

import (
	"fmt"

	"github.com/delphix/sdb-go/pkg/sdb"
	"github.com/delphix/sdb-go/pkg/target"
)

// Walk dispatches each input object to the walker registered for its
// type. With no input at the end of a pipeline it lists the walkers.
type Walk struct {
	sdb.Base
}

var walkReg = &sdb.Registration{
	Names:   []string{"walk"},
	Usage:   "walk",
	Summary: "walk the elements of each input container",
	New:     func() sdb.Command { return &Walk{} },
}

func (cmd *Walk) Run(c *sdb.Context, in sdb.Stream) sdb.Stream {
	return func(yield func(target.Object) bool) {
		seen := false
		for obj := range in {
			seen = true
			w := sdb.FindWalker(c, obj.Type())
			if w == nil {
				sdb.Throw(&sdb.CommandError{
					Command: cmd.Name,
					Message: fmt.Sprintf("no walker found for input of type %s\n%s",
						obj.Type(), sdb.WalkerTable(c)),
				})
			}
			if !forwardWalk(c, w, obj, yield) {
				return
			}
		}
		if !seen && cmd.Last {
			fmt.Fprint(c.Out, sdb.WalkerTable(c))
		}
	}
}

func forwardWalk(c *sdb.Context, w sdb.Walker, obj target.Object, yield func(target.Object) bool) bool {
	for elem := range w.Walk(c, obj) {
		if !yield(elem) {
			return false
		}
	}
	return true
}
