package sdb

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"syscall"

	"github.com/delphix/sdb-go/pkg/logutil"
	"github.com/delphix/sdb-go/pkg/target"
)

var logger = logutil.GetLogger("[sdb] ")

// build resolves and parses every stage of a tokenized line and chains
// the stages over in. The returned shell string is non-empty if the line
// ends in a shell escape.
func build(c *Context, in Stream, exprs []Expr) (Stream, string, error) {
	var stages []Command
	shell := ""
	for _, e := range exprs {
		if e.Kind == ShellExpr {
			shell = e.Tokens[0]
			continue
		}
		name := e.Tokens[0]
		reg, ok := c.Registry.Lookup(name)
		if !ok {
			return nil, "", &CommandNotFoundError{Command: name}
		}
		cmd := newCommand(reg, name)
		if err := cmd.Parse(e.Tokens[1:]); err != nil {
			if errors.Is(err, ErrHelp) {
				Help(c.Out, reg)
				return nil, "", &CommandArgumentsError{Command: name}
			}
			var argErr *CommandArgumentsError
			if errors.As(err, &argErr) {
				fmt.Fprintf(c.Err, "usage: %s\n", reg.Usage)
				fmt.Fprintf(c.Err, "%s: error: %s\n", name, argErr.Detail)
			}
			return nil, "", err
		}
		stages = append(stages, cmd)
	}
	if len(stages) > 0 {
		stages[0].base().First = true
		stages[len(stages)-1].base().Last = true
	}
	out := in
	for _, stage := range stages {
		out = dispatch(c, stage, out)
	}
	return out, shell, nil
}

// Invoke evaluates one line over in and collects the resulting objects.
// Output the commands print themselves, like help text or pretty-printed
// structures, still goes to c.Out. With a trailing shell escape the
// rendered stream is consumed by the shell and the result is empty.
func Invoke(c *Context, in Stream, line string) (objs []target.Object, err error) {
	defer Catch(&err)
	exprs, err := Tokenize(line)
	if err != nil {
		return nil, err
	}
	out, shell, err := build(c, in, exprs)
	if err != nil {
		return nil, err
	}
	if shell != "" {
		return nil, runShell(c, out, shell)
	}
	for obj := range out {
		c.checkInterrupt()
		objs = append(objs, obj)
	}
	return objs, nil
}

// runShell renders every object of in, one per line, into the standard
// input of a shell running cmdline.
func runShell(c *Context, in Stream, cmdline string) error {
	proc := exec.Command("/bin/sh", "-c", cmdline)
	proc.Stdout = c.Out
	proc.Stderr = c.Err
	stdin, err := proc.StdinPipe()
	if err != nil {
		return err
	}
	if err := proc.Start(); err != nil {
		stdin.Close()
		return err
	}
	var wErr error
	for obj := range in {
		c.checkInterrupt()
		if _, wErr = io.WriteString(stdin, obj.String()+"\n"); wErr != nil {
			break
		}
	}
	stdin.Close()
	if err := proc.Wait(); err != nil {
		logger.Println("shell escape:", err)
	}
	if wErr != nil {
		if errors.Is(wErr, syscall.EPIPE) {
			return errBrokenPipe
		}
		return wErr
	}
	return nil
}
