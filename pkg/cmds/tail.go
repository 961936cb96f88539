package cmds

import (
	"github.com/delphix/sdb-go/pkg/sdb"
	"github.com/delphix/sdb-go/pkg/target"
)

// Tail yields the last n objects of the pipeline. It has to buffer that
// many objects while draining its input.
type Tail struct {
	sdb.Base
	count int
}

var tailReg = &sdb.Registration{
	Names:   []string{"tail"},
	Usage:   "tail [-n] [count]",
	Summary: "return the last objects of the pipeline",
	New:     func() sdb.Command { return &Tail{} },
}

func (cmd *Tail) Parse(args []string) error {
	n, err := parseCountArgs(cmd.Name, args)
	if err != nil {
		return err
	}
	cmd.count = n
	return nil
}

func (cmd *Tail) Run(c *sdb.Context, in sdb.Stream) sdb.Stream {
	return func(yield func(target.Object) bool) {
		if cmd.count == 0 {
			for range in {
				interruptPoint(c)
			}
			return
		}
		var buf []target.Object
		for obj := range in {
			interruptPoint(c)
			buf = append(buf, obj)
			if len(buf) > cmd.count {
				buf = buf[1:]
			}
		}
		for _, obj := range buf {
			if !yield(obj) {
				return
			}
		}
	}
}
