package cmds

import (
	"github.com/delphix/sdb-go/pkg/sdb"
	"github.com/delphix/sdb-go/pkg/target"
)

// Exit ends the session.
type Exit struct {
	sdb.Base
}

var exitReg = &sdb.Registration{
	Names:   []string{"exit", "quit"},
	Usage:   "exit",
	Summary: "exit the debugger",
	New:     func() sdb.Command { return &Exit{} },
}

func (cmd *Exit) Run(c *sdb.Context, in sdb.Stream) sdb.Stream {
	return func(yield func(target.Object) bool) {
		sdb.Throw(sdb.ErrExit)
	}
}
