package cmds

import (
	"fmt"
	"strconv"

	"github.com/delphix/sdb-go/pkg/sdb"
	"github.com/delphix/sdb-go/pkg/target"
)

// pathTerm is one step of an accessor path: a member access or an array
// index.
type pathTerm struct {
	member string // member name; empty for an index term
	index  uint64
}

// parsePath parses accessor expressions like ts_voidp, [1] or
// cs_struct.ts_array[0]. Member access spelled -> is accepted wherever .
// is; the object model dereferences pointers on member access anyway.
func parsePath(name, expr string) ([]pathTerm, error) {
	bad := func(format string, args ...any) ([]pathTerm, error) {
		return nil, &sdb.CommandEvalSyntaxError{
			Command: name,
			Message: fmt.Sprintf(format, args...),
		}
	}
	if expr == "" {
		return bad("empty member expression")
	}
	var terms []pathTerm
	i := 0
	for i < len(expr) {
		switch {
		case expr[i] == '[':
			end := i + 1
			for end < len(expr) && expr[end] != ']' {
				end++
			}
			if end == len(expr) {
				return bad("expected ']' in '%s'", expr)
			}
			idx, err := strconv.ParseUint(expr[i+1:end], 0, 64)
			if err != nil {
				return bad("expected an array index in '%s'", expr)
			}
			terms = append(terms, pathTerm{index: idx})
			i = end + 1
		case expr[i] == '.' || (expr[i] == '-' && i+1 < len(expr) && expr[i+1] == '>'):
			if len(terms) == 0 {
				return bad("unexpected character '%c' in '%s'", expr[i], expr)
			}
			if expr[i] == '.' {
				i++
			} else {
				i += 2
			}
			name, next, ok := ident(expr, i)
			if !ok {
				return bad("expected a member name in '%s'", expr)
			}
			terms = append(terms, pathTerm{member: name})
			i = next
		case len(terms) == 0:
			name, next, ok := ident(expr, i)
			if !ok {
				return bad("unexpected character '%c' in '%s'", expr[i], expr)
			}
			terms = append(terms, pathTerm{member: name})
			i = next
		default:
			return bad("unexpected character '%c' in '%s'", expr[i], expr)
		}
	}
	return terms, nil
}

// ident scans an identifier at expr[i:].
func ident(expr string, i int) (name string, next int, ok bool) {
	if i == len(expr) || !isIdentStart(expr[i]) {
		return "", i, false
	}
	end := i
	for end < len(expr) && isIdentPart(expr[end]) {
		end++
	}
	return expr[i:end], end, true
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || ('0' <= c && c <= '9')
}

// walkPath applies terms to obj. An index past the end of an array
// prints a warning and skips the object.
func walkPath(c *sdb.Context, name string, obj target.Object, terms []pathTerm) (target.Object, bool) {
	cur := obj
	for _, term := range terms {
		if term.member != "" {
			next, err := cur.Member(term.member)
			if err != nil {
				sdb.Throw(&sdb.CommandError{Command: name, Message: err.Error()})
			}
			cur = next
			continue
		}
		if can := cur.Type().Canonical(); can.Kind == target.KindArray && term.index >= can.Len {
			fmt.Fprintf(c.Out, "warning: array index %d exceeds array size %d of type '%s'\n",
				term.index, can.Len, cur.Type())
			return target.Object{}, false
		}
		next, err := cur.Index(term.index)
		if err != nil {
			sdb.Throw(&sdb.CommandError{Command: name, Message: err.Error()})
		}
		cur = next
	}
	return cur, true
}

// Member walks struct members and array elements of its input objects.
type Member struct {
	sdb.Base
	terms []pathTerm
}

var memberReg = &sdb.Registration{
	Names:   []string{"member"},
	Usage:   "member <expr> [<expr> ...]",
	Summary: "walk struct and union members and array elements",
	Description: `Accessor expressions use C syntax: ts_int, cs_struct.ts_array[0],
cs_structp->ts_int. Multiple expressions are applied in sequence.`,
	New: func() sdb.Command { return &Member{} },
}

func (cmd *Member) Parse(args []string) error {
	args, err := remainderArgs(args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return &sdb.CommandArgumentsError{
			Command: cmd.Name,
			Detail:  "the following arguments are required: <member>",
		}
	}
	for _, arg := range args {
		terms, err := parsePath(cmd.Name, arg)
		if err != nil {
			return err
		}
		cmd.terms = append(cmd.terms, terms...)
	}
	return nil
}

func (cmd *Member) Run(c *sdb.Context, in sdb.Stream) sdb.Stream {
	return func(yield func(target.Object) bool) {
		for obj := range in {
			out, ok := walkPath(c, cmd.Name, obj, cmd.terms)
			if !ok {
				continue
			}
			if !yield(out) {
				return
			}
		}
	}
}
