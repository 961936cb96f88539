// Package daemon implements the serving side of remote debugging: it
// loads a core image and answers the snapshot and memory-read requests of
// connecting sessions. It backs the sdbd binary.
package daemon

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/delphix/sdb-go/pkg/logutil"
	"github.com/delphix/sdb-go/pkg/prog"
	"github.com/delphix/sdb-go/pkg/target"
)

var logger = logutil.GetLogger("[daemon] ")

// Program is the daemon subprogram. It runs when -listen is given.
type Program struct {
	// Used in tests.
	serveOpts ServeOpts
}

func (p Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if f.Listen == "" {
		return prog.ErrNotSuitable
	}
	if len(args) != 1 {
		return prog.BadUsage("need exactly one core image to serve")
	}
	img, err := target.LoadImage(args[0])
	if err != nil {
		return err
	}
	t, err := target.FromImage(img)
	if err != nil {
		return err
	}

	// The daemon is meant to run under a supervisor, so the log goes to
	// stdout unless -log redirects it.
	if f.Log == "" {
		logutil.SetOutput(fds[1])
	}
	return prog.Exit(Serve(t, f.Listen, p.serveOpts))
}

// ServeOpts keeps options that can be passed to Serve.
type ServeOpts struct {
	// If not nil, will receive the bound address once the daemon is ready
	// to serve requests, and then be closed.
	Ready chan<- net.Addr
	// Causes the daemon to abort if closed or sent any data. If nil, Serve
	// will set up its own signal channel by listening to SIGINT and SIGTERM.
	Signals <-chan os.Signal
}

// Serve listens on addr and serves the target to every connection until a
// termination signal arrives. It returns the exit status for the process.
func Serve(t *target.Target, addr string, opts ServeOpts) int {
	logger.Println("pid is", syscall.Getpid())
	logger.Println("going to listen", addr)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Printf("failed to listen on %s: %v", addr, err)
		logger.Println("aborting")
		return 2
	}

	sigCh := opts.Signals
	if sigCh == nil {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(ch)
		sigCh = ch
	}

	if opts.Ready != nil {
		opts.Ready <- ln.Addr()
		close(opts.Ready)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		sig := <-sigCh
		logger.Printf("received signal %v", sig)
		cancel()
	}()

	if err := t.Serve(ctx, ln); err != nil {
		logger.Println("could not serve:", err)
		return 2
	}
	logger.Println("exiting")
	return 0
}
