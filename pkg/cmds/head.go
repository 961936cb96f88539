package cmds

import (
	"strconv"

	"github.com/delphix/sdb-go/pkg/getopt"
	"github.com/delphix/sdb-go/pkg/sdb"
	"github.com/delphix/sdb-go/pkg/target"
)

var countSpec = &getopt.OptionSpec{Short: 'n', Long: "count", Arity: getopt.RequiredArgument}

// Head yields the first n objects of the pipeline and stops pulling on
// its input after that.
type Head struct {
	sdb.Base
	count int
}

var headReg = &sdb.Registration{
	Names:   []string{"head"},
	Usage:   "head [-n] [count]",
	Summary: "return the first objects of the pipeline",
	New:     func() sdb.Command { return &Head{} },
}

func (cmd *Head) Parse(args []string) error {
	n, err := parseCountArgs(cmd.Name, args)
	if err != nil {
		return err
	}
	cmd.count = n
	return nil
}

// parseCountArgs accepts either -n N or a bare positional count, with a
// default of 10.
func parseCountArgs(name string, args []string) (int, error) {
	opts, rest, err := parseArgs(name, args, countSpec)
	if err != nil {
		return 0, err
	}
	count := 10
	seen := false
	for _, opt := range opts {
		if opt.Spec == countSpec {
			n, err := strconv.Atoi(opt.Argument)
			if err != nil || n < 0 {
				return 0, &sdb.CommandInvalidInputError{Command: name, Argument: opt.Argument}
			}
			count, seen = n, true
		}
	}
	switch {
	case len(rest) == 0:
		return count, nil
	case len(rest) > 1 || seen:
		return 0, &sdb.CommandArgumentsError{
			Command: name,
			Detail:  "expected a single count",
		}
	}
	n, err := strconv.Atoi(rest[0])
	if err != nil || n < 0 {
		return 0, &sdb.CommandInvalidInputError{Command: name, Argument: rest[0]}
	}
	return n, nil
}

func (cmd *Head) Run(c *sdb.Context, in sdb.Stream) sdb.Stream {
	return func(yield func(target.Object) bool) {
		n := cmd.count
		if n == 0 {
			return
		}
		for obj := range in {
			if !yield(obj) {
				return
			}
			if n--; n == 0 {
				return
			}
		}
	}
}
