package shell

import (
	"context"
	"os"
	"os/signal"

	"github.com/delphix/sdb-go/pkg/sys"
)

// interruptible derives a context canceled by the first interrupt signal.
// Each evaluation installs a fresh handler via the returned cleanup
// function, so a pending interrupt never leaks into the next line.
func interruptible(parent context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(parent)
	sigCh := sys.NotifySignals()
	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigCh:
				if sig == os.Interrupt {
					cancel()
				}
			case <-done:
				return
			}
		}
	}()
	return ctx, func() {
		signal.Stop(sigCh)
		close(done)
		cancel()
	}
}
