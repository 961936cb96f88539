// Package progtest provides utilities for testing subprograms.
package progtest

import (
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/delphix/sdb-go/pkg/must"
	"github.com/delphix/sdb-go/pkg/prog"
)

// Case is a test case that can be used in Test.
type Case struct {
	args  []string
	stdin string

	wantExit   int
	wantStdout output
	wantStderr output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return fmt.Sprintf("text containing %q", o.content)
	}
	return fmt.Sprintf("text %q", o.content)
}

// ThatSdb returns a new Case with the given arguments.
func ThatSdb(args ...string) Case {
	return Case{args: append([]string{"sdb"}, args...)}
}

// WithStdin returns an altered Case that provides the given input to the
// program's stdin.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// don't have any expectations.
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit code.
func (c Case) ExitsWith(code int) Case {
	c.wantExit = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.wantStdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program
// run to write output to stdout containing the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.wantStdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program run to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.wantStderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program
// run to write output to stderr containing the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.wantStderr = output{content: s, partial: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args[1:], " "), func(t *testing.T) {
			t.Helper()
			exit, stdout, stderr := Run(p, c.stdin, c.args...)
			if exit != c.wantExit {
				t.Errorf("got exit code %v, want %v", exit, c.wantExit)
			}
			checkOutput(t, "stdout", stdout, c.wantStdout)
			checkOutput(t, "stderr", stderr, c.wantStderr)
		})
	}
}

func checkOutput(t *testing.T, what, got string, want output) {
	t.Helper()
	if want.partial {
		if !strings.Contains(got, want.content) {
			t.Errorf("got %s %q, want %v", what, got, want)
		}
	} else if got != want.content {
		t.Errorf("got %s %q, want %v", what, got, want)
	}
}

// Run runs a program with the given stdin content and full argument list,
// program name included, and returns its exit code and captured output.
func Run(p prog.Program, stdin string, args ...string) (exit int, stdout, stderr string) {
	r0, w0 := must.Pipe()
	go func() {
		io.WriteString(w0, stdin)
		w0.Close()
	}()
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()
	outCh := capture(r1)
	errCh := capture(r2)
	exit = prog.Run([3]*os.File{r0, w1, w2}, args, p)
	r0.Close()
	w1.Close()
	w2.Close()
	return exit, <-outCh, <-errCh
}

// capture reads everything from r in a goroutine, so that the program under
// test never blocks writing to a full pipe.
func capture(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		b, _ := io.ReadAll(r)
		r.Close()
		ch <- string(b)
	}()
	return ch
}
