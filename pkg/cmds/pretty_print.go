package cmds

import (
	"fmt"
	"iter"

	"github.com/delphix/sdb-go/pkg/sdb"
	"github.com/delphix/sdb-go/pkg/target"
)

// PrettyPrint dispatches the input stream to the pretty-printer
// registered for the type of its first object.
type PrettyPrint struct {
	sdb.Base
}

var prettyPrintReg = &sdb.Registration{
	Names:   []string{"pretty_print", "pp"},
	Usage:   "pretty_print",
	Summary: "pretty-print the input objects",
	New:     func() sdb.Command { return &PrettyPrint{} },
}

func (cmd *PrettyPrint) Run(c *sdb.Context, in sdb.Stream) sdb.Stream {
	return func(yield func(target.Object) bool) {
		next, stop := iter.Pull(in)
		defer stop()
		first, ok := next()
		if !ok {
			sdb.Throw(&sdb.CommandError{
				Command: cmd.Name,
				Message: "could not find pretty-printer\n" + sdb.PrinterTable(c),
			})
		}
		p := sdb.FindPrinter(c, first.Type())
		if p == nil {
			sdb.Throw(&sdb.CommandError{
				Command: cmd.Name,
				Message: fmt.Sprintf("could not find pretty-printer for type %s\n%s",
					first.Type(), sdb.PrinterTable(c)),
			})
		}
		rest := func(yield func(target.Object) bool) {
			if !yield(first) {
				return
			}
			for {
				obj, ok := next()
				if !ok {
					return
				}
				if !yield(obj) {
					return
				}
			}
		}
		sdb.PrintInput(c, p, rest)
	}
}
