package cmds

import (
	"fmt"
	"sort"
	"strings"

	"github.com/delphix/sdb-go/pkg/getopt"
	"github.com/delphix/sdb-go/pkg/sdb"
	"github.com/delphix/sdb-go/pkg/target"
)

// Help prints command usage. With no argument it lists every command;
// with -v it prints the full help of each one.
type Help struct {
	sdb.Base
	verbose bool
	cmd     string
}

var helpReg = &sdb.Registration{
	Names:   []string{"help"},
	Usage:   "help [-v] [cmd]",
	Summary: "print command usage",
	New:     func() sdb.Command { return &Help{} },
}

var verboseSpec = &getopt.OptionSpec{Short: 'v', Long: "verbose", Arity: getopt.NoArgument}

func (cmd *Help) Parse(args []string) error {
	opts, rest, err := parseArgs(cmd.Name, args, verboseSpec)
	if err != nil {
		return err
	}
	for _, opt := range opts {
		if opt.Spec == verboseSpec {
			cmd.verbose = true
		}
	}
	switch len(rest) {
	case 0:
	case 1:
		cmd.cmd = rest[0]
	default:
		return &sdb.CommandArgumentsError{
			Command: cmd.Name,
			Detail:  "expected at most one command name",
		}
	}
	return nil
}

func (cmd *Help) Run(c *sdb.Context, in sdb.Stream) sdb.Stream {
	return func(yield func(target.Object) bool) {
		if cmd.cmd != "" {
			reg, ok := c.Registry.Lookup(cmd.cmd)
			if !ok {
				fmt.Fprintln(c.Out, "Unknown command: "+cmd.cmd)
				return
			}
			sdb.Help(c.Out, reg)
			return
		}
		regs := append([]*sdb.Registration(nil), c.Registry.Registrations()...)
		sort.Slice(regs, func(i, j int) bool { return regs[i].Names[0] < regs[j].Names[0] })
		for _, reg := range regs {
			if cmd.verbose {
				sdb.Help(c.Out, reg)
				continue
			}
			fmt.Fprintf(c.Out, "%-20s %s\n", strings.Join(reg.Names, ", "), reg.Summary)
		}
	}
}
