package cmds

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/delphix/sdb-go/pkg/sdb"
	"github.com/delphix/sdb-go/pkg/target"
)

// Filter passes through the objects for which a comparison expression
// holds. The expression is a single argument of the form
// obj[.path] OP literal.
type Filter struct {
	sdb.Base
	lhs []pathTerm
	op  string
	rhs filterRHS
}

type rhsKind int

const (
	rhsInt rhsKind = iota
	rhsString
	rhsPath
)

type filterRHS struct {
	kind  rhsKind
	ival  int64
	s     string
	terms []pathTerm
}

var filterOperators = []string{"==", "!=", ">", "<", ">=", "<="}

var filterReg = &sdb.Registration{
	Names:   []string{"filter"},
	Usage:   "filter <expression>",
	Summary: "filter the objects of the pipeline by a comparison expression",
	Description: `The expression compares the current object, or a member path rooted
at it, against an integer literal, a quoted string or another member
path, e.g.:

    filter 'obj.ts_int == 1'
    filter "obj > 0x1000"`,
	New: func() sdb.Command { return &Filter{} },
}

func (cmd *Filter) Parse(args []string) error {
	args, err := remainderArgs(args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return &sdb.CommandArgumentsError{
			Command: cmd.Name,
			Detail:  "the following arguments are required: <expression>",
		}
	}
	if len(args) > 1 {
		return &sdb.CommandArgumentsError{
			Command: cmd.Name,
			Detail:  "the expression must be a single (quoted) argument",
		}
	}
	words := strings.Fields(args[0])
	opIdx := -1
	for _, cand := range filterOperators {
		for i, w := range words {
			if w == cand {
				cmd.op = cand
				opIdx = i
				break
			}
		}
		if opIdx >= 0 {
			break
		}
	}
	if opIdx < 0 {
		return &sdb.CommandInvalidInputError{
			Command:  cmd.Name,
			Argument: "comparison operator is missing",
		}
	}
	if opIdx == 0 {
		return &sdb.CommandInvalidInputError{
			Command:  cmd.Name,
			Argument: "left hand side of expression is missing",
		}
	}
	if opIdx == len(words)-1 {
		return &sdb.CommandInvalidInputError{
			Command:  cmd.Name,
			Argument: "right hand side of expression is missing",
		}
	}
	lhs, err := cmd.parseSide(strings.Join(words[:opIdx], " "))
	if err != nil {
		return err
	}
	cmd.lhs = lhs
	return cmd.parseRHS(strings.Join(words[opIdx+1:], " "))
}

// parseSide parses an accessor path rooted at obj.
func (cmd *Filter) parseSide(side string) ([]pathTerm, error) {
	if strings.Contains(side, "->") {
		return nil, &sdb.CommandEvalSyntaxError{
			Command: cmd.Name,
			Message: "use '.' instead of '->' to access members",
		}
	}
	if side != "obj" && !strings.HasPrefix(side, "obj.") && !strings.HasPrefix(side, "obj[") {
		return nil, &sdb.CommandEvalSyntaxError{
			Command: cmd.Name,
			Message: fmt.Sprintf("invalid expression side '%s'; expressions operate on 'obj'", side),
		}
	}
	path := strings.TrimPrefix(side, "obj")
	path = strings.TrimPrefix(path, ".")
	if path == "" {
		return nil, nil
	}
	return parsePath(cmd.Name, path)
}

func (cmd *Filter) parseRHS(rhs string) error {
	if v, err := strconv.ParseInt(rhs, 0, 64); err == nil {
		cmd.rhs = filterRHS{kind: rhsInt, ival: v}
		return nil
	}
	if v, err := strconv.ParseUint(rhs, 0, 64); err == nil {
		cmd.rhs = filterRHS{kind: rhsInt, ival: int64(v)}
		return nil
	}
	if len(rhs) >= 2 {
		if q := rhs[0]; (q == '"' || q == '\'') && rhs[len(rhs)-1] == q {
			cmd.rhs = filterRHS{kind: rhsString, s: rhs[1 : len(rhs)-1]}
			return nil
		}
	}
	if rhs == "obj" || strings.HasPrefix(rhs, "obj.") || strings.HasPrefix(rhs, "obj[") {
		terms, err := cmd.parseSide(rhs)
		if err != nil {
			return err
		}
		cmd.rhs = filterRHS{kind: rhsPath, terms: terms}
		return nil
	}
	return &sdb.CommandEvalSyntaxError{
		Command: cmd.Name,
		Message: fmt.Sprintf("cannot parse right hand side '%s'", rhs),
	}
}

func (cmd *Filter) Run(c *sdb.Context, in sdb.Stream) sdb.Stream {
	return func(yield func(target.Object) bool) {
		for obj := range in {
			match, ok := cmd.eval(c, obj)
			if !ok {
				continue
			}
			if match && !yield(obj) {
				return
			}
		}
	}
}

// eval evaluates the expression against one object. ok is false when the
// object was skipped with a warning.
func (cmd *Filter) eval(c *sdb.Context, obj target.Object) (match, ok bool) {
	lhs, ok := walkPath(c, cmd.Name, obj, cmd.lhs)
	if !ok {
		return false, false
	}
	if cmd.rhs.kind == rhsString {
		return cmd.compareString(lhs), true
	}
	rval := cmd.rhs.ival
	if cmd.rhs.kind == rhsPath {
		robj, ok := walkPath(c, cmd.Name, obj, cmd.rhs.terms)
		if !ok {
			return false, false
		}
		v, err := robj.Int64()
		if err != nil {
			sdb.Throw(&sdb.CommandInvalidInputError{
				Command:  cmd.Name,
				Argument: fmt.Sprintf("right hand side has unsupported type (%s)", robj.Type()),
			})
		}
		rval = v
	}
	return cmd.compareInt(lhs, rval), true
}

func (cmd *Filter) compareInt(lhs target.Object, rval int64) bool {
	can := lhs.Type().Canonical()
	if can.Kind != target.KindInt && can.Kind != target.KindPointer {
		sdb.Throw(&sdb.CommandInvalidInputError{
			Command:  cmd.Name,
			Argument: fmt.Sprintf("left hand side has unsupported type (%s)", lhs.Type()),
		})
	}
	if can.Kind == target.KindInt && can.Signed {
		lv, err := lhs.Int64()
		if err != nil {
			sdb.Throw(&sdb.CommandError{Command: cmd.Name, Message: err.Error()})
		}
		return holds(cmd.op, cmpOrdered(lv, rval))
	}
	lv, err := lhs.Uint64()
	if err != nil {
		sdb.Throw(&sdb.CommandError{Command: cmd.Name, Message: err.Error()})
	}
	return holds(cmd.op, cmpOrdered(lv, uint64(rval)))
}

func (cmd *Filter) compareString(lhs target.Object) bool {
	can := lhs.Type().Canonical()
	charArray := can.Kind == target.KindArray || can.Kind == target.KindPointer
	if !charArray {
		sdb.Throw(&sdb.CommandInvalidInputError{
			Command:  cmd.Name,
			Argument: fmt.Sprintf("left hand side has unsupported type (%s)", lhs.Type()),
		})
	}
	s, err := lhs.CString()
	if err != nil {
		sdb.Throw(&sdb.CommandError{Command: cmd.Name, Message: err.Error()})
	}
	return holds(cmd.op, strings.Compare(s, cmd.rhs.s))
}

func cmpOrdered[T int64 | uint64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func holds(op string, cmp int) bool {
	switch op {
	case "==":
		return cmp == 0
	case "!=":
		return cmp != 0
	case ">":
		return cmp > 0
	case "<":
		return cmp < 0
	case ">=":
		return cmp >= 0
	}
	return cmp <= 0
}
