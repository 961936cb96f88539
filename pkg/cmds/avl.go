package cmds

import (
	"github.com/delphix/sdb-go/pkg/sdb"
	"github.com/delphix/sdb-go/pkg/target"
)

// Avl walks an AVL tree in order. Each yielded object is the address of
// an enclosing element, computed by backing the node pointer up by the
// tree's avl_offset.
type Avl struct {
	sdb.Base
}

var avlReg = &sdb.Registration{
	Names:   []string{"avl"},
	Usage:   "avl",
	Summary: "walk the elements of an avl tree",
	New:     func() sdb.Command { return &Avl{} },
}

func (cmd *Avl) WalkType() string { return "avl_tree_t *" }

// InputType lets raw addresses pipe straight in: a void pointer input is
// cast to the tree type before the walk.
func (cmd *Avl) InputType() string { return cmd.WalkType() }

func (cmd *Avl) Run(c *sdb.Context, in sdb.Stream) sdb.Stream {
	return sdb.WalkInput(c, cmd, in)
}

func (cmd *Avl) Walk(c *sdb.Context, obj target.Object) sdb.Stream {
	return func(yield func(target.Object) bool) {
		root := cmd.member(obj, "avl_root")
		offObj := cmd.member(obj, "avl_offset")
		off, err := offObj.Uint64()
		if err != nil {
			sdb.Throw(&sdb.CommandError{Command: cmd.Name, Message: err.Error()})
		}
		voidp := lookupTypeOrThrow(c, cmd.Name, "void *")
		cmd.walkNode(c, voidp, root, off, yield)
	}
}

// walkNode recursively yields the subtree rooted at node, left child
// first. A null pointer ends the recursion.
func (cmd *Avl) walkNode(c *sdb.Context, voidp *target.Type, node target.Object, off uint64, yield func(target.Object) bool) bool {
	addr, err := node.Uint64()
	if err != nil {
		sdb.Throw(&sdb.CommandError{Command: cmd.Name, Message: err.Error()})
	}
	if addr == 0 {
		return true
	}
	interruptPoint(c)
	children := cmd.member(node, "avl_child")
	left, err := children.Index(0)
	if err != nil {
		sdb.Throw(&sdb.CommandError{Command: cmd.Name, Message: err.Error()})
	}
	if !cmd.walkNode(c, voidp, left, off, yield) {
		return false
	}
	if !yield(node.Target().Value(voidp, addr-off)) {
		return false
	}
	right, err := children.Index(1)
	if err != nil {
		sdb.Throw(&sdb.CommandError{Command: cmd.Name, Message: err.Error()})
	}
	return cmd.walkNode(c, voidp, right, off, yield)
}

func (cmd *Avl) member(obj target.Object, name string) target.Object {
	m, err := obj.Member(name)
	if err != nil {
		sdb.Throw(&sdb.CommandError{Command: cmd.Name, Message: err.Error()})
	}
	return m
}
