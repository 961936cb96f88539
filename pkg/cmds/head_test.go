package cmds_test

import (
	"context"
	"testing"

	"github.com/delphix/sdb-go/pkg/sdb"
	"github.com/delphix/sdb-go/pkg/target"
)

func TestHead(t *testing.T) {
	wantOut(t, "echo 0x0 0x1 0x2 | head 2", "(void *)0x0\n(void *)0x1\n")
	wantOut(t, "echo 0x0 0x1 0x2 | head -n 2", "(void *)0x0\n(void *)0x1\n")
	wantOut(t, "echo 0x0 0x1 0x2 | head --count 2", "(void *)0x0\n(void *)0x1\n")
	wantOut(t, "echo 0x0 0x1 0x2 | head 0", "")

	// The default count is 10, which passes this short stream through.
	wantOut(t, "echo 0x0 0x1 0x2 | head", "(void *)0x0\n(void *)0x1\n(void *)0x2\n")
	wantOut(t, "echo 0x0 | head 5", "(void *)0x0\n")
}

func TestHead_Errors(t *testing.T) {
	wantErr(t, "echo 0x0 | head 1 2", 2, "head: error: expected a single count")
	wantErr(t, "echo 0x0 | head -n 1 2", 2, "head: error: expected a single count")
	wantErr(t, "echo 0x0 | head cat", 1, "sdb: head: invalid input: cat")
	wantErr(t, "echo 0x0 | head -n -5", 1, "sdb: head: invalid input: -5")
}

// emitCounting yields up to n integers and records how many the
// downstream actually pulled.
type emitCounting struct {
	sdb.Base
	n      int
	pulled *int
}

func (cmd *emitCounting) Run(c *sdb.Context, in sdb.Stream) sdb.Stream {
	return func(yield func(target.Object) bool) {
		typ, err := c.Target.LookupType("uint64_t")
		if err != nil {
			sdb.Throw(&sdb.CommandError{Command: cmd.Name, Message: err.Error()})
		}
		for i := 0; i < cmd.n; i++ {
			*cmd.pulled++
			if !yield(c.Target.Value(typ, uint64(i))) {
				return
			}
		}
	}
}

func TestHead_StopsPullingEarly(t *testing.T) {
	s, out, _ := newSession(t)
	pulled := 0
	s.Registry.Register(&sdb.Registration{
		Names:   []string{"emitn"},
		Usage:   "emitn",
		Summary: "emit counted integers",
		New:     func() sdb.Command { return &emitCounting{n: 1000, pulled: &pulled} },
	})

	code, _ := s.Eval(context.Background(), "emitn | head 3")
	if code != 0 {
		t.Fatalf("Eval(emitn | head 3) = %d, want 0", code)
	}
	if want := "(uint64_t)0\n(uint64_t)1\n(uint64_t)2\n"; out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
	if pulled != 3 {
		t.Errorf("upstream produced %d objects, want 3", pulled)
	}
}
