package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/delphix/sdb-go/pkg/strutil"
)

// minEditor is a minimal line editor: it prints the prompt and reads one
// line at a time, with no editing capability beyond what the terminal
// driver provides.
type minEditor struct {
	in  *bufio.Reader
	out io.Writer
}

func newMinEditor(in, out *os.File) *minEditor {
	return &minEditor{bufio.NewReader(in), out}
}

// ReadLine reads a line, blocking until one is available. A line ending
// in EOF without a newline is still returned, along with io.EOF.
func (ed *minEditor) ReadLine() (string, error) {
	fmt.Fprint(ed.out, prompt)
	line, err := ed.in.ReadString('\n')
	return strutil.ChopLineEnding(line), err
}
