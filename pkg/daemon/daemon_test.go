package daemon

import (
	"context"
	"net"
	"os"
	"testing"
	"time"

	. "github.com/delphix/sdb-go/pkg/prog/progtest"
	"github.com/delphix/sdb-go/pkg/target"
	"github.com/delphix/sdb-go/pkg/target/targettest"
	"github.com/delphix/sdb-go/pkg/testutil"
)

func TestProgram_TerminatesIfCannotListen(t *testing.T) {
	setup(t)

	// Keep the port busy so the daemon cannot bind it.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	Test(t, Program{},
		ThatSdb("-listen", ln.Addr().String(), "core.yaml").
			ExitsWith(2).
			WritesStdoutContaining("failed to listen on"),
	)
}

func TestProgram_ServesClientRequests(t *testing.T) {
	setup(t)
	addr, stop := startServer(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), testutil.Scaled(5*time.Second))
	defer cancel()
	remote, err := target.Connect(ctx, addr.String())
	if err != nil {
		t.Fatal(err)
	}
	defer remote.Close()

	obj, err := remote.Symbol("global_int")
	if err != nil {
		t.Fatal(err)
	}
	if v, err := obj.Int64(); err != nil || v != 16909060 {
		t.Errorf("remote global_int = %d, %v", v, err)
	}
}

func TestProgram_BadCLI(t *testing.T) {
	setup(t)

	Test(t, Program{},
		ThatSdb().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),

		ThatSdb("-listen", "127.0.0.1:0").
			ExitsWith(2).
			WritesStderrContaining("need exactly one core image to serve"),

		ThatSdb("-listen", "127.0.0.1:0", "no-such.yaml").
			ExitsWith(2).
			WritesStderrContaining("no-such.yaml"),
	)
}

func setup(t *testing.T) {
	testutil.InTempDir(t)
	testutil.MustWriteFile("core.yaml", targettest.ImageYAML)
}

// startServer runs the daemon on an ephemeral port and returns the bound
// address together with a function that shuts the daemon down.
func startServer(t *testing.T) (net.Addr, func()) {
	ready := make(chan net.Addr, 1)
	sigCh := make(chan os.Signal)
	p := Program{serveOpts: ServeOpts{Ready: ready, Signals: sigCh}}

	done := make(chan struct{})
	go func() {
		defer close(done)
		exit, stdout, stderr := Run(p, "", "sdbd", "-listen", "127.0.0.1:0", "core.yaml")
		if exit != 0 {
			t.Errorf("daemon exited with %v", exit)
			t.Logf("stdout:\n%s", stdout)
			t.Logf("stderr:\n%s", stderr)
		}
	}()

	addr := <-ready
	var once bool
	return addr, func() {
		if !once {
			once = true
			close(sigCh)
			<-done
		}
	}
}
