// Package cmds provides the built-in commands of the debugger: the
// generic pipeline stages (echo, filter, head, count and friends), the
// type-oriented inspectors (cast, member, sizeof, ptype, container_of),
// the role dispatchers (walk, pretty_print) and the session commands
// (help, history, exit).
package cmds

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/delphix/sdb-go/pkg/getopt"
	"github.com/delphix/sdb-go/pkg/sdb"
	"github.com/delphix/sdb-go/pkg/target"
)

// Register adds every built-in command to r.
func Register(r *sdb.Registry) {
	for _, reg := range commands {
		r.Register(reg)
	}
}

var commands = []*sdb.Registration{
	echoReg,
	filterReg,
	headReg,
	tailReg,
	countReg,
	sumReg,
	memberReg,
	addressReg,
	castReg,
	coerceReg,
	derefReg,
	sizeofReg,
	ptypeReg,
	typeReg,
	containerOfReg,
	arrayReg,
	indexReg,
	walkReg,
	prettyPrintReg,
	helpReg,
	historyReg,
	exitReg,
	avlReg,
	lxlistReg,
}

var helpSpec = &getopt.OptionSpec{Short: 'h', Long: "help", Arity: getopt.NoArgument}

// parseArgs parses args against specs plus the uniform -h option. A -h
// anywhere wins and turns into ErrHelp.
func parseArgs(name string, args []string, specs ...*getopt.OptionSpec) ([]*getopt.Option, []string, error) {
	all := append([]*getopt.OptionSpec{helpSpec}, specs...)
	opts, rest, err := getopt.Parse(args, all, getopt.GNU)
	if err != nil {
		return nil, nil, &sdb.CommandArgumentsError{Command: name, Detail: err.Error()}
	}
	for _, opt := range opts {
		if opt.Spec == helpSpec {
			return nil, nil, sdb.ErrHelp
		}
	}
	return opts, rest, nil
}

// remainderArgs handles commands that swallow the rest of the line
// verbatim, like cast and filter. Only a leading -h asks for help.
func remainderArgs(args []string) ([]string, error) {
	if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
		return nil, sdb.ErrHelp
	}
	return args, nil
}

// parseIntArg parses an integer literal in any of the C bases.
func parseIntArg(name, arg string) (uint64, error) {
	if v, err := strconv.ParseUint(arg, 0, 64); err == nil {
		return v, nil
	}
	if v, err := strconv.ParseInt(arg, 0, 64); err == nil {
		return uint64(v), nil
	}
	return 0, &sdb.CommandInvalidInputError{Command: name, Argument: arg}
}

// structType resolves tname to a struct type, accepting both bare tags
// and typedefs to structs.
func structType(c *sdb.Context, name, tname string) (*target.Type, error) {
	switch tname {
	case "struct", "union", "class":
		return nil, &sdb.CommandError{
			Command: name,
			Message: fmt.Sprintf("skip keyword '%s' and try again", tname),
		}
	}
	typ, err := c.Target.LookupType(tname)
	if err != nil {
		styp, serr := c.Target.LookupType("struct " + tname)
		if serr != nil {
			return nil, &sdb.CommandError{Command: name, Message: serr.Error()}
		}
		return styp, nil
	}
	if typ.Kind == target.KindStruct {
		return typ, nil
	}
	if typ.Kind != target.KindTypedef {
		return nil, &sdb.CommandError{
			Command: name,
			Message: fmt.Sprintf("%s is not a struct nor a typedef to a struct", tname),
		}
	}
	if typ.Canonical().Kind != target.KindStruct {
		return nil, &sdb.CommandError{
			Command: name,
			Message: fmt.Sprintf("%s is not a typedef to a struct", tname),
		}
	}
	return typ, nil
}

// interruptPoint gives long draining loops a chance to stop when the
// evaluation is cancelled.
func interruptPoint(c *sdb.Context) {
	if c.Interrupted() {
		sdb.Throw(sdb.ErrInterrupt)
	}
}

// lookupTypeOrThrow resolves a type name inside a running stream.
func lookupTypeOrThrow(c *sdb.Context, name, tname string) *target.Type {
	typ, err := c.Target.LookupType(tname)
	if err != nil {
		sdb.Throw(&sdb.CommandError{Command: name, Message: err.Error()})
	}
	return typ
}

// lookupTypeLenient resolves tname, trying the struct, enum and union
// keywords for the bare tag names C programmers type.
func lookupTypeLenient(c *sdb.Context, tname string) (*target.Type, bool) {
	for _, prefix := range []string{"", "struct ", "enum ", "union "} {
		if typ, err := c.Target.LookupType(prefix + tname); err == nil {
			return typ, true
		}
	}
	return nil, false
}

// joinRemainder joins tokens back into the spelling of a type name.
func joinRemainder(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
