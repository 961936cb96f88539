package sdb

import "strings"

// Command is one stage of a pipeline.
//
// Parse validates and stores the stage's arguments before anything runs.
// Run transforms the stage's input stream into its output stream; errors
// discovered while the stream is being consumed are raised with Throw.
type Command interface {
	Parse(args []string) error
	Run(c *Context, in Stream) Stream
	base() *Base
}

// Base carries the state common to all commands. Implementations embed
// it and override Parse if they take arguments.
type Base struct {
	// Name is the name the command was invoked under; invoking an alias
	// resolves here.
	Name string
	// Reg points back to the command's registration.
	Reg *Registration
	// First and Last record the stage's position in its pipeline.
	First bool
	Last  bool
}

func (b *Base) base() *Base { return b }

// Parse rejects everything but -h. Commands that take arguments
// override it.
func (b *Base) Parse(args []string) error {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return ErrHelp
		}
	}
	if len(args) > 0 {
		return &CommandArgumentsError{
			Command: b.Name,
			Detail:  "unrecognized arguments: " + strings.Join(args, " "),
		}
	}
	return nil
}

// InputTyped is implemented by commands that declare the input type they
// operate on. The executor coerces compatible values to that type before
// the command sees them.
type InputTyped interface {
	InputType() string
}
