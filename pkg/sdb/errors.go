package sdb

import "errors"

// Error is the interface of all errors the debugger reports to the user.
// Text is the full message shown in a session, with the program name
// prefixed.
type Error interface {
	error
	Text() string
}

// Sentinel errors recognized by the evaluation loop.
var (
	// ErrExit is thrown by the exit command to end the session.
	ErrExit = errors.New("exit")
	// ErrHelp is returned from Parse when -h is given; the session prints
	// the command's help text instead of running the pipeline.
	ErrHelp = errors.New("help requested")
	// ErrInterrupt is thrown when the evaluation context is cancelled.
	ErrInterrupt = errors.New("interrupted")
)

// errBrokenPipe reports that a shell escape's child exited before
// consuming all of its input. The session treats it as a reported error
// but prints nothing.
var errBrokenPipe = errors.New("broken pipe")

func text(err error) string { return "sdb: " + err.Error() }

// GenericError is an error without an originating command.
type GenericError struct {
	Message string
}

func (e *GenericError) Error() string { return e.Message }
func (e *GenericError) Text() string  { return text(e) }

// CommandError is an error generated by a running command. The more
// specific errors below are preferred where they apply.
type CommandError struct {
	Command string
	Message string
}

func (e *CommandError) Error() string { return e.Command + ": " + e.Message }
func (e *CommandError) Text() string  { return text(e) }

// CommandNotFoundError is reported when a pipeline names an unknown
// command.
type CommandNotFoundError struct {
	Command string
}

func (e *CommandNotFoundError) Error() string {
	return "cannot recognize command: " + e.Command
}
func (e *CommandNotFoundError) Text() string { return text(e) }

// CommandArgumentsError reports that a command rejected the shape of its
// arguments. Detail says what was wrong with them; the session prints it
// next to the command's usage line and then suppresses the error itself.
type CommandArgumentsError struct {
	Command string
	Detail  string
}

func (e *CommandArgumentsError) Error() string {
	return e.Command + ": invalid arguments. Use -h to get argument descriptions"
}
func (e *CommandArgumentsError) Text() string { return text(e) }

// CommandInvalidInputError reports a malformed argument value, as opposed
// to a malformed argument shape.
type CommandInvalidInputError struct {
	Command  string
	Argument string
}

func (e *CommandInvalidInputError) Error() string {
	return e.Command + ": invalid input: " + e.Argument
}
func (e *CommandInvalidInputError) Text() string { return text(e) }

// CommandEvalSyntaxError reports a malformed embedded expression, like
// the predicate of filter.
type CommandEvalSyntaxError struct {
	Command string
	Message string
}

func (e *CommandEvalSyntaxError) Error() string { return e.Command + ": " + e.Message }
func (e *CommandEvalSyntaxError) Text() string  { return text(e) }

// SymbolNotFoundError reports a reference to a symbol the target does
// not have.
type SymbolNotFoundError struct {
	Command string
	Symbol  string
}

func (e *SymbolNotFoundError) Error() string {
	return e.Command + ": symbol not found: " + e.Symbol
}
func (e *SymbolNotFoundError) Text() string { return text(e) }
