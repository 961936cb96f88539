package cmds_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/delphix/sdb-go/pkg/cmds"
	"github.com/delphix/sdb-go/pkg/sdb"
	"github.com/delphix/sdb-go/pkg/target/targettest"
)

// newSession builds a session over the fixture image with every built-in
// command registered.
func newSession(t *testing.T) (*sdb.Session, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	tgt := targettest.New(t)
	t.Cleanup(func() { tgt.Close() })
	r := sdb.NewRegistry()
	cmds.Register(r)
	s := sdb.NewSession(tgt, r)
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	s.Out = out
	s.Err = errOut
	return s, out, errOut
}

// run evaluates one line against a fresh session and returns its full
// output and exit status.
func run(t *testing.T, line string) (string, int) {
	t.Helper()
	s, out, _ := newSession(t)
	code, _ := s.Eval(context.Background(), line)
	return out.String(), code
}

// wantOut evaluates line and requires it to succeed with exactly the
// given output.
func wantOut(t *testing.T, line, want string) {
	t.Helper()
	out, code := run(t, line)
	if code != 0 {
		t.Fatalf("%q exited with %d, output:\n%s", line, code, out)
	}
	if out != want {
		t.Errorf("%q printed %q, want %q", line, out, want)
	}
}

// wantErr evaluates line and requires the given exit status and a
// substring of the combined output.
func wantErr(t *testing.T, line string, code int, contains string) {
	t.Helper()
	s, out, errOut := newSession(t)
	got, _ := s.Eval(context.Background(), line)
	if got != code {
		t.Fatalf("%q exited with %d, want %d; output:\n%s%s",
			line, got, code, out.String(), errOut.String())
	}
	text := out.String() + errOut.String()
	if !strings.Contains(text, contains) {
		t.Errorf("%q printed %q, want it to contain %q", line, text, contains)
	}
}

func TestRegister(t *testing.T) {
	r := sdb.NewRegistry()
	cmds.Register(r)
	for _, name := range []string{
		"echo", "cc", "filter", "head", "tail", "count", "cnt", "wc", "sum",
		"member", "address", "addr", "cast", "coerce", "deref", "sizeof",
		"ptype", "type", "container_of", "array", "index", "idx", "walk",
		"pretty_print", "pp", "help", "history", "exit", "quit",
		"avl", "lxlist", "linux_list",
	} {
		if _, ok := r.Lookup(name); !ok {
			t.Errorf("command %q not registered", name)
		}
	}
	if len(r.Walkers()) != 2 {
		t.Errorf("got %d walkers, want avl and lxlist", len(r.Walkers()))
	}
}

// Aliases resolve to the same command and produce identical output.
func TestAliases(t *testing.T) {
	for _, lines := range [][2]string{
		{"echo 0x1 0x2 | count", "echo 0x1 0x2 | wc"},
		{"echo 0x1 0x2 | count", "echo 0x1 0x2 | cnt"},
		{"echo 0xa", "cc 0xa"},
		{"addr test_avl | type", "address test_avl | type"},
	} {
		a, codeA := run(t, lines[0])
		b, codeB := run(t, lines[1])
		if a != b || codeA != codeB {
			t.Errorf("%q and %q differ: %q (%d) vs %q (%d)",
				lines[0], lines[1], a, codeA, b, codeB)
		}
	}
}
