//go:build unix

package progtest

import (
	"io"
	"os"

	"github.com/creack/pty"

	"github.com/delphix/sdb-go/pkg/must"
	"github.com/delphix/sdb-go/pkg/prog"
)

// Interactive runs a program with its stdin connected to a pseudo-terminal
// that feeds the given input, as if a user typed it. The terminal is closed
// after the input is written; a program still reading at that point sees end
// of input.
func Interactive(p prog.Program, input string, args ...string) (exit int, stdout, stderr string) {
	ptmx, tty := must.OK2(pty.Open())
	go func() {
		// Drain the echo so the written input never fills the terminal buffer.
		go io.Copy(io.Discard, ptmx)
		io.WriteString(ptmx, input)
		ptmx.Close()
	}()
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()
	outCh := capture(r1)
	errCh := capture(r2)
	exit = prog.Run([3]*os.File{tty, w1, w2}, args, p)
	tty.Close()
	w1.Close()
	w2.Close()
	return exit, <-outCh, <-errCh
}
