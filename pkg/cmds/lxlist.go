package cmds

import (
	"github.com/delphix/sdb-go/pkg/sdb"
	"github.com/delphix/sdb-go/pkg/target"
)

// LxList walks a Linux doubly-linked list, following next pointers from
// the head until the head recurs. Each yielded object is a node address
// as a void pointer, ready for container_of.
type LxList struct {
	sdb.Base
}

var lxlistReg = &sdb.Registration{
	Names:   []string{"lxlist", "linux_list"},
	Usage:   "lxlist",
	Summary: "walk a linux doubly-linked list",
	New:     func() sdb.Command { return &LxList{} },
}

func (cmd *LxList) WalkType() string { return "struct list_head *" }

func (cmd *LxList) InputType() string { return cmd.WalkType() }

func (cmd *LxList) Run(c *sdb.Context, in sdb.Stream) sdb.Stream {
	return sdb.WalkInput(c, cmd, in)
}

func (cmd *LxList) Walk(c *sdb.Context, obj target.Object) sdb.Stream {
	return func(yield func(target.Object) bool) {
		voidp := lookupTypeOrThrow(c, cmd.Name, "void *")
		head, err := obj.Uint64()
		if err != nil {
			sdb.Throw(&sdb.CommandError{Command: cmd.Name, Message: err.Error()})
		}
		node := obj
		for {
			interruptPoint(c)
			next, err := node.Member("next")
			if err != nil {
				sdb.Throw(&sdb.CommandError{Command: cmd.Name, Message: err.Error()})
			}
			addr, err := next.Uint64()
			if err != nil {
				sdb.Throw(&sdb.CommandError{Command: cmd.Name, Message: err.Error()})
			}
			if addr == head || addr == 0 {
				return
			}
			if !yield(node.Target().Value(voidp, addr)) {
				return
			}
			node = next
		}
	}
}
