// Sdb is an interactive debugger shell. It evaluates pipelines of typed
// commands against a core image or a remote target, with walkers and
// pretty-printers dispatched on the type of the values flowing through.
package main

import (
	"os"

	"github.com/delphix/sdb-go/pkg/buildinfo"
	"github.com/delphix/sdb-go/pkg/prog"
	"github.com/delphix/sdb-go/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(&buildinfo.Program{}, &shell.Program{})))
}
