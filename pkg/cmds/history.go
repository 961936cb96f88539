package cmds

import (
	"fmt"

	"github.com/delphix/sdb-go/pkg/sdb"
	"github.com/delphix/sdb-go/pkg/target"
)

// History displays the command history, optionally limited to the last
// count entries.
type History struct {
	sdb.Base
	count uint64
	given bool
}

var historyReg = &sdb.Registration{
	Names:   []string{"history"},
	Usage:   "history [count]",
	Summary: "display command history",
	New:     func() sdb.Command { return &History{} },
}

func (cmd *History) Parse(args []string) error {
	_, rest, err := parseArgs(cmd.Name, args)
	if err != nil {
		return err
	}
	switch len(rest) {
	case 0:
		return nil
	case 1:
		n, err := parseIntArg(cmd.Name, rest[0])
		if err != nil {
			return err
		}
		cmd.count, cmd.given = n, true
		return nil
	}
	return &sdb.CommandArgumentsError{Command: cmd.Name, Detail: "expected a single count"}
}

func (cmd *History) Run(c *sdb.Context, in sdb.Stream) sdb.Stream {
	return func(yield func(target.Object) bool) {
		if c.History == nil {
			return
		}
		lines, err := c.History.List()
		if err != nil {
			sdb.Throw(&sdb.CommandError{Command: cmd.Name, Message: err.Error()})
		}
		start := 0
		if cmd.given && cmd.count < uint64(len(lines)) {
			start = len(lines) - int(cmd.count)
		}
		for i, line := range lines[start:] {
			fmt.Fprintf(c.Out, "%5d  %s\n", start+i+1, line)
		}
	}
}
