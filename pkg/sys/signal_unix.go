//go:build unix

package sys

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

func notifySignals() chan os.Signal {
	// This catches every signal regardless of whether it is ignored.
	sigCh := make(chan os.Signal, sigsChanBufferSize)
	signal.Notify(sigCh)
	// Calling signal.Notify will reset the signal ignore status, so we need to
	// call signal.Ignore every time we call signal.Notify. Keeping the
	// terminal-control signals ignored matters when a pipeline hands the
	// terminal to an external shell command.
	signal.Ignore(unix.SIGTTIN, unix.SIGTTOU, unix.SIGTSTP)
	return sigCh
}
