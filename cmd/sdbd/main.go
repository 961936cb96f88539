// Sdbd serves a core image to remote sdb sessions. It listens on the
// address given by -listen and answers snapshot and memory-read requests
// over JSON-RPC, one connection per session.
package main

import (
	"os"

	"github.com/delphix/sdb-go/pkg/buildinfo"
	"github.com/delphix/sdb-go/pkg/daemon"
	"github.com/delphix/sdb-go/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(&buildinfo.Program{}, &daemon.Program{})))
}
